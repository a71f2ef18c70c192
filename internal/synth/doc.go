// Package synth turns specs into emission instructions.
//
// For every implicit class it generates a type embedding the base struct,
// with forwarding constructors and methods whose implicit parameters are
// filled by the resolver, and implementations of the interfaces listed in
// implements=. For every case class it generates an immutable value type
// with a constructor, accessors, copy-setters and tuple destructuring.
//
// The package is a pure transformation: it produces emit declarations and
// diagnostics, nothing is rendered or written here.
package synth
