// Package analyze loads Go packages and exposes them to the generator as a
// narrow host model.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find
// declarations carrying //adt: directives and to answer the only questions the
// generator asks about the source: is type A assignable to type B, which
// members does a declaration have, and which methods does an interface list.
//
// Key types:
//   - Decl: one annotated declaration (struct type or package-level var)
//   - Element: a field, method, constructor or interface method of a Decl
//   - Host: the oracle interface; TypesHost implements it over go/types
package analyze
