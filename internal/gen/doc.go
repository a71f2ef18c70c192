// Package gen renders emission instructions to Go source.
//
// Generation uses text/template + go/format. The synthesizer hands over
// emit.File values whose code is a stream of fragments; package-level
// references are qualified here and the import block is derived from the
// references actually rendered.
//
// Output per package:
//   - one struct type per generated declaration
//   - interface conformance assertions (var _ I = (*T)(nil))
//   - constructors and methods in instruction order
package gen
