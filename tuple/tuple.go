package tuple

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// MaxArity is the largest generated arity.
const MaxArity = 22

// Tuple is implemented by every arity.
type Tuple interface {
	Arity() int
	Get(i int) any
	Values() []any
	String() string
}

// Tuple0 is the empty tuple.
type Tuple0 struct{}

// Of0 returns the empty tuple.
func Of0() Tuple0 {
	return Tuple0{}
}

// Arity returns 0.
func (Tuple0) Arity() int {
	return 0
}

// Get always panics: the empty tuple has no slots.
func (t Tuple0) Get(i int) any {
	return get(t.Values(), i)
}

// Values returns an empty slice.
func (Tuple0) Values() []any {
	return []any{}
}

// Equal always reports true.
func (Tuple0) Equal(Tuple0) bool {
	return true
}

// Compare always returns 0.
func (Tuple0) Compare(Tuple0) int {
	return 0
}

// String returns "()".
func (t Tuple0) String() string {
	return formatValues(t.Values())
}

// Assign0 is the assignment counterpart of Tuple0; it binds nothing.
type Assign0 struct{}

// Bind0 returns an Assign0.
func Bind0() Assign0 {
	return Assign0{}
}

// From returns t unchanged.
func (Assign0) From(t Tuple0) Tuple0 {
	return t
}

// get returns the 1-based i-th value and panics outside 1..len(values).
func get(values []any, i int) any {
	if i < 1 || i > len(values) {
		panic(fmt.Sprintf("tuple: index %d out of range [1..%d]", i, len(values)))
	}

	return values[i-1]
}

func formatValues(values []any) string {
	var sb strings.Builder

	sb.WriteByte('(')

	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}

		fmt.Fprint(&sb, v)
	}

	sb.WriteByte(')')

	return sb.String()
}

// equalValues holds exactly when compareValues returns 0.
func equalValues(a, b []any) bool {
	return len(a) == len(b) && compareValues(a, b) == 0
}

func compareValues(a, b []any) int {
	for i := range min(len(a), len(b)) {
		if c := compareValue(reflect.ValueOf(a[i]), reflect.ValueOf(b[i])); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a), len(b))
}

// compareValue is the canonical order of slot values. Invalid (untyped nil)
// sorts first and values of different dynamic types order by type name.
// Otherwise a Compare(T) int method decides when T has one, as time.Time
// does; numbers, strings and bools order naturally, with NaN equal to itself
// and below every other float; arrays, slices, structs and maps order
// element by element. Pointers, channels and funcs order by identity, not by
// what they point to, and nil sorts before non-nil.
func compareValue(xv, yv reflect.Value) int {
	switch {
	case !xv.IsValid() && !yv.IsValid():
		return 0
	case !xv.IsValid():
		return -1
	case !yv.IsValid():
		return 1
	}

	if xv.Type() != yv.Type() {
		return cmp.Compare(xv.Type().String(), yv.Type().String())
	}

	if c, ok := compareByMethod(xv, yv); ok {
		return c
	}

	switch xv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(xv.Int(), yv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(xv.Uint(), yv.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(xv.Float(), yv.Float())
	case reflect.Complex64, reflect.Complex128:
		x, y := xv.Complex(), yv.Complex()
		if c := cmp.Compare(real(x), real(y)); c != 0 {
			return c
		}

		return cmp.Compare(imag(x), imag(y))
	case reflect.String:
		return cmp.Compare(xv.String(), yv.String())
	case reflect.Bool:
		return compareBool(xv.Bool(), yv.Bool())
	case reflect.Pointer, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return cmp.Compare(xv.Pointer(), yv.Pointer())
	case reflect.Interface:
		if c, done := compareNil(xv, yv); done {
			return c
		}

		return compareValue(xv.Elem(), yv.Elem())
	case reflect.Array:
		return compareSeq(xv, yv)
	case reflect.Slice:
		if c, done := compareNil(xv, yv); done {
			return c
		}

		return compareSeq(xv, yv)
	case reflect.Struct:
		for i := range xv.NumField() {
			if c := compareValue(xv.Field(i), yv.Field(i)); c != 0 {
				return c
			}
		}

		return 0
	case reflect.Map:
		if c, done := compareNil(xv, yv); done {
			return c
		}

		return compareMap(xv, yv)
	}

	return 0
}

// compareNil orders nil before non-nil; done is false when neither is nil.
func compareNil(xv, yv reflect.Value) (int, bool) {
	switch xn, yn := xv.IsNil(), yv.IsNil(); {
	case xn && yn:
		return 0, true
	case xn:
		return -1, true
	case yn:
		return 1, true
	}

	return 0, false
}

func compareSeq(xv, yv reflect.Value) int {
	for i := range min(xv.Len(), yv.Len()) {
		if c := compareValue(xv.Index(i), yv.Index(i)); c != 0 {
			return c
		}
	}

	return cmp.Compare(xv.Len(), yv.Len())
}

// compareMap orders maps by size, then by their sorted keys, then by the
// values of those keys.
func compareMap(xv, yv reflect.Value) int {
	if c := cmp.Compare(xv.Len(), yv.Len()); c != 0 {
		return c
	}

	xk, yk := sortedKeys(xv), sortedKeys(yv)

	for i := range xk {
		if c := compareValue(xk[i], yk[i]); c != 0 {
			return c
		}
	}

	for _, k := range xk {
		if c := compareValue(xv.MapIndex(k), yv.MapIndex(k)); c != 0 {
			return c
		}
	}

	return 0
}

func sortedKeys(m reflect.Value) []reflect.Value {
	keys := m.MapKeys()
	slices.SortFunc(keys, compareValue)

	return keys
}

// compareByMethod uses a Compare(T) int method of T when T has one.
func compareByMethod(xv, yv reflect.Value) (int, bool) {
	if !xv.CanInterface() || !yv.CanInterface() {
		return 0, false
	}

	m := xv.MethodByName("Compare")
	if !m.IsValid() {
		return 0, false
	}

	mt := m.Type()
	if mt.NumIn() != 1 || mt.In(0) != xv.Type() || mt.NumOut() != 1 || mt.Out(0).Kind() != reflect.Int {
		return 0, false
	}

	return int(m.Call([]reflect.Value{yv})[0].Int()), true
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
