// Package match finds the known name closest to a misspelled one, for the
// "did you mean" hints attached to directive diagnostics.
//
// Key functions:
//   - Closest: picks the best known name for an unknown word
//   - Similarity: normalized edit-distance score of two identifiers
//   - NormalizeIdent: folds case and separators before comparing
package match
