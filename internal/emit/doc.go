// Package emit defines the instructions the synthesizer hands to the
// rendering backend.
//
// Generated declarations are described as data: a TypeDecl receives
// superinterfaces, fields and methods; method bodies are statement and
// expression trees. Trees are flattened into a Code token stream of literal,
// type-reference and identifier fragments. Package qualifiers are never
// spelled here, the backend resolves them from the fragments.
package emit
