package config

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"adtgen/internal/analyze"
	"adtgen/internal/gen"
	"adtgen/internal/implicit"
	"adtgen/internal/synth"
)

// Naming controls how generated types are named.
type Naming struct {
	// CaseSuffix is trimmed from case-class declarations ("pointCase" -> "Point").
	CaseSuffix string `yaml:"case_suffix"`
	// ClassSuffix is trimmed from implicit-class bases ("ServiceBase" -> "Service").
	ClassSuffix string `yaml:"class_suffix"`
}

// Log configures the process logger.
type Log struct {
	Level  string `yaml:"level"`  // debug, info, warn or error
	Format string `yaml:"format"` // text or json
}

// Config is the complete generator configuration.
type Config struct {
	// Prefix is the directive prefix, as in //adt:case.
	Prefix string `yaml:"prefix"`
	// Output is the base name of the file generated into every package.
	Output string `yaml:"output"`
	// DryRun renders without writing files.
	DryRun bool `yaml:"dry_run"`
	// MaxDepth bounds nested implicit resolution.
	MaxDepth int `yaml:"max_depth"`
	// InterfacePolicy is skip, warn or error.
	InterfacePolicy string `yaml:"interface_policy"`
	// TuplePackage is the import path of the tuple family.
	TuplePackage string `yaml:"tuple_package"`
	// KeepUnformatted writes a sidecar when generated code cannot be formatted.
	KeepUnformatted bool `yaml:"keep_unformatted"`
	Naming          Naming `yaml:"naming"`
	Log             Log    `yaml:"log"`
}

// Default returns the default configuration.
func Default() *Config {
	opts := synth.DefaultOptions()

	return &Config{
		Prefix:          analyze.DefaultDirectivePrefix,
		Output:          gen.DefaultFilename,
		MaxDepth:        implicit.DefaultMaxDepth,
		InterfacePolicy: string(opts.InterfacePolicy),
		TuplePackage:    opts.TuplePkg,
		KeepUnformatted: true,
		Naming: Naming{
			CaseSuffix:  opts.CaseSuffix,
			ClassSuffix: opts.ClassSuffix,
		},
		Log: Log{Level: "info", Format: "text"},
	}
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data over the defaults. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return cfg, nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error

	if !token.IsIdentifier(strings.ReplaceAll(c.Prefix, "-", "_")) {
		errs = append(errs, fmt.Errorf("prefix %q must be an identifier", c.Prefix))
	}

	if c.Output == "" || filepath.Base(c.Output) != c.Output || filepath.Ext(c.Output) != ".go" {
		errs = append(errs, fmt.Errorf("output %q must be a .go file name without directories", c.Output))
	} else if strings.HasSuffix(c.Output, "_test.go") {
		errs = append(errs, fmt.Errorf("output %q must not be a test file", c.Output))
	}

	if c.MaxDepth < 1 {
		errs = append(errs, fmt.Errorf("max_depth must be positive, got %d", c.MaxDepth))
	}

	if _, err := synth.ParsePolicy(c.InterfacePolicy); err != nil {
		errs = append(errs, err)
	}

	if c.TuplePackage == "" {
		errs = append(errs, errors.New("tuple_package must not be empty"))
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log level %q is not one of debug, info, warn, error", c.Log.Level))
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log format %q is not one of text, json", c.Log.Format))
	}

	return errors.Join(errs...)
}

// SynthOptions converts the configuration for the synthesizer.
func (c *Config) SynthOptions() synth.Options {
	policy, _ := synth.ParsePolicy(c.InterfacePolicy)

	return synth.Options{
		InterfacePolicy: policy,
		CaseSuffix:      c.Naming.CaseSuffix,
		ClassSuffix:     c.Naming.ClassSuffix,
		TuplePkg:        c.TuplePackage,
	}
}

// ResolverConfig converts the configuration for the resolver.
func (c *Config) ResolverConfig() implicit.Config {
	return implicit.Config{MaxDepth: c.MaxDepth}
}

// GeneratorConfig converts the configuration for the rendering backend.
func (c *Config) GeneratorConfig() gen.GeneratorConfig {
	return gen.GeneratorConfig{
		Filename:        c.Output,
		Tool:            "adtgen",
		KeepUnformatted: c.KeepUnformatted,
	}
}
