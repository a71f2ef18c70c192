package diagnostic

import (
	"fmt"
	"io"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
)

// Fprint writes every diagnostic, errors first, one per line followed by its
// suggestions. Severity labels are colored when color is set.
func Fprint(w io.Writer, d Diagnostics, color bool) error {
	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			if _, err := fmt.Fprintf(w, "%s: %s\n", label(diag.Severity, color), diag); err != nil {
				return err
			}

			for _, s := range diag.Suggestions {
				if _, err := fmt.Fprintf(w, "\t%s\n", s); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func label(s DiagnosticSeverity, color bool) string {
	if !color {
		return s.String()
	}

	switch s {
	case DiagnosticError:
		return ansiRed + s.String() + ansiReset
	case DiagnosticWarning:
		return ansiYellow + s.String() + ansiReset
	default:
		return ansiCyan + s.String() + ansiReset
	}
}
