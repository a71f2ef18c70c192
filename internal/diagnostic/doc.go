// Package diagnostic provides structured errors, warnings and notes
// accumulated during one generation run.
//
// Key capabilities:
//   - Implicit resolution failures (no match, ambiguous, cycles)
//   - Unsupported arities and unreadable declarations
//   - Source positions for every per-site problem
//   - Terminal-friendly printing
package diagnostic
