// Package spec holds the in-memory description of annotated declarations.
//
// A Spec is built once per declaration from the members the host reports,
// in declaration order, and is read-only afterwards. The Catalog is the list
// of every spec of one generation run; it is queried in full, never indexed.
package spec
