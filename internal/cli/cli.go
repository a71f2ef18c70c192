package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"adtgen/internal/config"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitDiagnostics = 1 // generation reported errors
	ExitUsage       = 2 // bad flags or configuration
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options is the parsed command line.
type Options struct {
	Config   *config.Config
	Patterns []string
	// Dump prints the catalog of annotated declarations.
	Dump bool
}

// Parse processes command-line arguments. It returns the options, whether the
// program should exit cleanly (after -help), or an ExitError. Flags override
// values read from the -config file.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	flagSet := flag.NewFlagSet("adtgen", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
adtgen - generates case classes and implicit classes from //adt: directives.

Usage:
  adtgen [options] [PACKAGES]

Arguments:
  PACKAGES
    Go package patterns to process. Defaults to ".".

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to a YAML configuration file.")
	outFlag := flagSet.String("out", "", "Base name of the generated file in each package.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Render without writing files.")
	policyFlag := flagSet.String("interface-policy", "", "Unsatisfiable implicit interfaces: 'skip', 'warn' or 'error'.")
	depthFlag := flagSet.Int("max-depth", 0, "Maximum nesting of implicit resolution.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'.")
	dumpFlag := flagSet.Bool("dump", false, "Print the catalog of annotated declarations.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}

		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	cfg := config.Default()

	if *configFlag != "" {
		loaded, err := config.LoadFile(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
		}

		cfg = loaded
	}

	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.Output = *outFlag
		case "dry-run":
			cfg.DryRun = *dryRunFlag
		case "interface-policy":
			cfg.InterfacePolicy = strings.ToLower(*policyFlag)
		case "max-depth":
			cfg.MaxDepth = *depthFlag
		case "log-level":
			cfg.Log.Level = strings.ToLower(*logLevelFlag)
		case "log-format":
			cfg.Log.Format = strings.ToLower(*logFormatFlag)
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid configuration: " + err.Error()}
	}

	patterns := flagSet.Args()
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	return &Options{Config: cfg, Patterns: patterns, Dump: *dumpFlag}, false, nil
}
