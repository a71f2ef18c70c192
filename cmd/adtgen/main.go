// Package main provides the CLI entrypoint for adtgen.
//
// adtgen is a go:generate tool that:
//   - Loads Go packages (AST + go/types) and collects //adt: directives
//   - Resolves implicit parameters against //adt:context values
//   - Generates case classes and implicit classes into adt_gen.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"adtgen/internal/cli"
	"adtgen/internal/ctxlog"
	"adtgen/internal/diagnostic"
	"adtgen/internal/driver"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitDiagnostics)
	}
}

// run parses args, generates and reports diagnostics to errW.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	opts, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}

	if shouldExit {
		return nil
	}

	cfg := opts.Config
	logger := cli.NewLogger(cfg.Log.Level, cfg.Log.Format, errW)
	ctx = ctxlog.WithLogger(ctx, logger)

	res, err := driver.Run(ctx, cfg, opts.Patterns...)
	if res != nil {
		if opts.Dump {
			driver.Dump(outW, res.Catalog)
		}

		if perr := diagnostic.Fprint(errW, res.Diagnostics, cli.UseColor(errW)); perr != nil {
			logger.Error("printing diagnostics", "error", perr)
		}
	}

	if err != nil {
		return err
	}

	if res.Failed() {
		return &cli.ExitError{
			Code:    cli.ExitDiagnostics,
			Message: fmt.Sprintf("adtgen: %d error(s), nothing written", len(res.Diagnostics.Errors)),
		}
	}

	return nil
}
