package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adtgen/internal/synth"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "adt", cfg.Prefix)
	assert.Equal(t, "adt_gen.go", cfg.Output)
	assert.Equal(t, "skip", cfg.InterfacePolicy)
	assert.Equal(t, 16, cfg.MaxDepth)
	assert.Equal(t, "adtgen/tuple", cfg.TuplePackage)
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
output: zz_adt.go
max_depth: 4
interface_policy: warn
naming:
  class_suffix: Impl
log:
  level: debug
`))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "zz_adt.go", cfg.Output)
	assert.Equal(t, 4, cfg.MaxDepth)
	assert.Equal(t, "Impl", cfg.Naming.ClassSuffix)
	assert.Equal(t, "Case", cfg.Naming.CaseSuffix, "unset keys keep their default")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)

	opts := cfg.SynthOptions()
	assert.Equal(t, synth.PolicyWarn, opts.InterfacePolicy)
	assert.Equal(t, "Impl", opts.ClassSuffix)
	assert.Equal(t, 4, cfg.ResolverConfig().MaxDepth)
	assert.Equal(t, "zz_adt.go", cfg.GeneratorConfig().Filename)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse([]byte("prefx: adt\n"))
	assert.ErrorContains(t, err, "failed to parse config YAML")
}

func TestValidate_ReportsEverything(t *testing.T) {
	cfg := Default()
	cfg.Prefix = "a b"
	cfg.Output = "gen/out.go"
	cfg.MaxDepth = 0
	cfg.InterfacePolicy = "loud"
	cfg.TuplePackage = ""
	cfg.Log.Level = "trace"
	cfg.Log.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)

	for _, want := range []string{"prefix", "output", "max_depth", "interface policy", "tuple_package", "log level", "log format"} {
		assert.ErrorContains(t, err, want)
	}

	cfg = Default()
	cfg.Output = "adt_test.go"
	assert.ErrorContains(t, cfg.Validate(), "test file")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adtgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prefix: gen\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "gen", cfg.Prefix)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}
