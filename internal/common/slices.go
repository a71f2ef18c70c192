package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsSingle returns true if the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// IsMultiple returns true if the slice has more than one element.
func IsMultiple[S ~[]E, E any](s S) bool {
	return len(s) > 1
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// FlatFilterMap walks a two-level collection: for each outer element it walks
// the elements returned by inner, keeps the pairs accepted by keep and
// projects them with project. Output order is outer order, then inner order.
func FlatFilterMap[O, I, R any](
	outer []O,
	inner func(O) []I,
	keep func(O, I) bool,
	project func(O, I) R,
) []R {
	var out []R

	for _, o := range outer {
		for _, i := range inner(o) {
			if keep(o, i) {
				out = append(out, project(o, i))
			}
		}
	}

	return out
}
