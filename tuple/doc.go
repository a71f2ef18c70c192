// Package tuple provides fixed-arity tuples and their assignment
// counterparts.
//
// Tuple0 through Tuple22 hold 0..MaxArity heterogeneously typed values in
// positional slots V1..VN. Tuples are plain values: nothing in this package
// writes to a tuple, and assigning one copies its slots. Equal holds exactly when
// Compare returns 0; pointers compare by identity and NaN equals itself. As
// map keys they follow Go's == instead. They print slot by slot. For
// every arity there is an AssignN that is bound to N storage locations and
// copies a tuple into them:
//
//	var name string
//	var age int
//	t := tuple.Bind2(&name, &age).From(tuple.Of2("ada", 36))
//
// Arities 1..MaxArity are generated by cmd/tuplegen; larger arities do not
// exist.
package tuple

//go:generate go run adtgen/cmd/tuplegen -max 22 -out tuples_gen.go
