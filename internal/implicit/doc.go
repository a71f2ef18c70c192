// Package implicit resolves implicit parameters to provider expressions.
//
// Providers are the fields and single-result methods of context specs. A
// requested type is matched against every provider by host assignability:
// exactly one match succeeds, none or several fail. A method provider has its
// own parameters resolved the same way, which yields a nested call tree such
// as Owner.Cfg(LoggerOwner.Logger).
//
// Failures never stop generation. Resolve records one diagnostic at the
// requesting site and returns a nil placeholder.
package implicit
