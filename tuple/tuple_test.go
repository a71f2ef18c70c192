package tuple_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adtgen/tuple"
)

func TestGet_ReturnsPositionalValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		tuple tuple.Tuple
		want  []any
	}{
		{"arity 0", tuple.Of0(), []any{}},
		{"arity 1", tuple.Of1("a"), []any{"a"}},
		{"arity 2", tuple.Of2(1, "b"), []any{1, "b"}},
		{"arity 3", tuple.Of3(1, 2.5, true), []any{1, 2.5, true}},
		{"arity 10", tuple.Of10(1, 2, 3, 4, 5, 6, 7, 8, 9, "ten"), []any{1, 2, 3, 4, 5, 6, 7, 8, 9, "ten"}},
		{
			"arity 22",
			tuple.Of22(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, "last"),
			[]any{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, "last"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, len(tc.want), tc.tuple.Arity())
			assert.Equal(t, tc.want, tc.tuple.Values())

			for i, v := range tc.want {
				assert.Equal(t, v, tc.tuple.Get(i+1))
			}
		})
	}
}

func TestGet_OutOfRangePanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "tuple: index 0 out of range [1..2]", func() { tuple.Of2(1, 2).Get(0) })
	assert.PanicsWithValue(t, "tuple: index 3 out of range [1..2]", func() { tuple.Of2(1, 2).Get(3) })
	assert.Panics(t, func() { tuple.Of0().Get(1) })
}

func TestUnpack(t *testing.T) {
	t.Parallel()

	name, age, ok := tuple.Of3("ada", 36, true).Unpack()
	assert.Equal(t, "ada", name)
	assert.Equal(t, 36, age)
	assert.True(t, ok)

	assert.Equal(t, 7, tuple.Of1(7).Unpack())
}

func TestAssign_From(t *testing.T) {
	t.Parallel()

	t.Run("arity 2", func(t *testing.T) {
		t.Parallel()

		var name string
		var age int

		src := tuple.Of2("ada", 36)
		got := tuple.Bind2(&name, &age).From(src)

		assert.Equal(t, "ada", name)
		assert.Equal(t, 36, age)
		assert.Equal(t, src, got)
	})

	t.Run("arity 0", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, tuple.Of0(), tuple.Bind0().From(tuple.Of0()))
	})

	t.Run("arity 22", func(t *testing.T) {
		t.Parallel()

		var s [22]int
		a := tuple.Bind22(&s[0], &s[1], &s[2], &s[3], &s[4], &s[5], &s[6], &s[7], &s[8], &s[9], &s[10],
			&s[11], &s[12], &s[13], &s[14], &s[15], &s[16], &s[17], &s[18], &s[19], &s[20], &s[21])
		src := tuple.Of22(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22)

		got := a.From(src)

		for i := range s {
			assert.Equal(t, i+1, s[i])
		}
		assert.True(t, got.Equal(src))
	})

	t.Run("chains in expression position", func(t *testing.T) {
		t.Parallel()

		var x, y int
		assert.Equal(t, "(1, 2)", tuple.Bind2(&x, &y).From(tuple.Of2(1, 2)).String())
	})

	t.Run("writes in order without rollback", func(t *testing.T) {
		t.Parallel()

		var first int
		a := tuple.Assign3[int, int, int]{S1: &first}

		assert.Panics(t, func() { a.From(tuple.Of3(1, 2, 3)) })
		assert.Equal(t, 1, first)
	})
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := tuple.Of2("x", 1)
	b := tuple.Of2("x", 1)
	c := tuple.Of2("x", 2)

	assert.True(t, a.Equal(a), "reflexive")
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a), "symmetric")
	assert.False(t, a.Equal(c))
	assert.False(t, c.Equal(a))
	assert.True(t, tuple.Of0().Equal(tuple.Of0()))
}

func TestEqual_NonComparableSlots(t *testing.T) {
	t.Parallel()

	a := tuple.Of2([]int{1, 2}, map[string]int{"k": 1})
	b := tuple.Of2([]int{1, 2}, map[string]int{"k": 1})
	c := tuple.Of2([]int{1, 3}, map[string]int{"k": 1})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestEqual_NestedAndInterfaceSlots(t *testing.T) {
	t.Parallel()

	inner := tuple.Of2(1, "a")
	assert.True(t, tuple.Of2(inner, 3).Equal(tuple.Of2(tuple.Of2(1, "a"), 3)))
	assert.False(t, tuple.Of2(inner, 3).Equal(tuple.Of2(tuple.Of2(1, "b"), 3)))

	var nilErr error
	assert.True(t, tuple.Of1[any](nilErr).Equal(tuple.Of1[any](nil)))
	assert.False(t, tuple.Of1[any](1).Equal(tuple.Of1[any](int64(1))))
}

func TestTuplesAreMapKeys(t *testing.T) {
	t.Parallel()

	seen := map[tuple.Tuple2[string, int]]bool{}
	seen[tuple.Of2("a", 1)] = true

	assert.True(t, seen[tuple.Of2("a", 1)])
	assert.False(t, seen[tuple.Of2("a", 2)])
}

func TestCompare(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, tuple.Of2(1, "b").Compare(tuple.Of2(1, "b")))
	assert.Equal(t, -1, tuple.Of2(1, "b").Compare(tuple.Of2(2, "a")), "first slot decides")
	assert.Equal(t, 1, tuple.Of2(1, "b").Compare(tuple.Of2(1, "a")), "second slot breaks tie")
	assert.Equal(t, -1, tuple.Of1(false).Compare(tuple.Of1(true)))
	assert.Equal(t, -1, tuple.Of1(uint8(3)).Compare(tuple.Of1(uint8(4))))
	assert.Equal(t, 1, tuple.Of1(2.5).Compare(tuple.Of1(1.5)))
	assert.Equal(t, 0, tuple.Of0().Compare(tuple.Of0()))
}

func TestCompare_SpecialValues(t *testing.T) {
	t.Parallel()

	early := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	late := early.Add(time.Hour)
	assert.Equal(t, -1, tuple.Of1(early).Compare(tuple.Of1(late)), "Compare method is used")

	assert.Equal(t, -1, tuple.Of1[any](nil).Compare(tuple.Of1[any](0)), "nil sorts first")
	assert.Equal(t, 1, tuple.Of1[any](0).Compare(tuple.Of1[any](nil)))

	one := 1
	assert.Equal(t, -1, tuple.Of1[*int](nil).Compare(tuple.Of1(&one)), "nil pointers sort first")

	nested := tuple.Of1(tuple.Of2(1, 2)).Compare(tuple.Of1(tuple.Of2(1, 3)))
	assert.Equal(t, -1, nested)

	mixed := tuple.Of1[any]("1").Compare(tuple.Of1[any](1))
	assert.Equal(t, 1, mixed, "different types order by type name")
}

func TestCompare_IsAntisymmetric(t *testing.T) {
	t.Parallel()

	values := []tuple.Tuple3[int, string, bool]{
		tuple.Of3(1, "a", true),
		tuple.Of3(1, "a", false),
		tuple.Of3(0, "z", true),
		tuple.Of3(1, "b", false),
	}

	for _, a := range values {
		for _, b := range values {
			assert.Equal(t, a.Compare(b), -b.Compare(a), "%s vs %s", a, b)
			assert.Equal(t, a.Compare(b) == 0, a.Equal(b), "%s vs %s", a, b)
		}
	}
}

func TestCompare_AgreesWithEqual(t *testing.T) {
	t.Parallel()

	x, y := 1, 1
	nan := math.NaN()

	values := []tuple.Tuple2[any, float64]{
		tuple.Of2[any](&x, 1.0),
		tuple.Of2[any](&y, 1.0),
		tuple.Of2[any](&x, nan),
		tuple.Of2[any](nil, nan),
		tuple.Of2[any](nil, math.Inf(-1)),
		tuple.Of2[any]([]int{1, 2}, 0.0),
		tuple.Of2[any]([]int{1, 2}, math.Copysign(0, -1)),
		tuple.Of2[any]([]int(nil), 0.0),
		tuple.Of2[any]([]int{}, 0.0),
		tuple.Of2[any](map[string]int{"a": 1}, 0.0),
		tuple.Of2[any](map[string]int{"b": 1}, 0.0),
		tuple.Of2[any]([]string{"a b"}, 0.0),
		tuple.Of2[any]([]string{"a", "b"}, 0.0),
	}

	for _, a := range values {
		for _, b := range values {
			c := a.Compare(b)
			assert.Equal(t, c == 0, a.Equal(b), "%v vs %v", a, b)
			assert.Equal(t, c, -b.Compare(a), "%v vs %v", a, b)
		}
	}

	assert.False(t, values[0].Equal(values[1]), "distinct pointers to equal values differ")
	assert.NotZero(t, values[0].Compare(values[1]))
	assert.True(t, values[0].Equal(tuple.Of2[any](&x, 1.0)), "the same pointer is equal")
	assert.True(t, values[2].Equal(values[2]), "NaN slots are reflexive")
	assert.Equal(t, -1, values[3].Compare(values[4]), "NaN sorts below every float")
	assert.False(t, values[7].Equal(values[8]), "nil and empty slices differ")
	assert.False(t, values[11].Equal(values[12]))
}

func TestEqual_StructSlotsWithUnexportedFields(t *testing.T) {
	t.Parallel()

	type point struct{ x, y float64 }

	a := tuple.Of1(point{1, math.NaN()})
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(tuple.Of1(point{1, 2})))
	assert.Equal(t, -1, a.Compare(tuple.Of1(point{1, 2})))
}

func TestTuplesAreCopiedByValue(t *testing.T) {
	t.Parallel()

	orig := tuple.Of2("a", 1)
	cp := orig
	cp.V1 = "b"

	assert.Equal(t, "(a, 1)", orig.String())
	assert.Equal(t, "(b, 1)", cp.String())

	var s string
	var n int
	got := tuple.Bind2(&s, &n).From(orig)
	s = "changed"

	assert.True(t, got.Equal(orig), "From returns its argument unchanged")
	assert.Equal(t, "a", got.V1)
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "()", tuple.Of0().String())
	assert.Equal(t, "(x)", tuple.Of1("x").String())
	assert.Equal(t, "(1, two, true)", tuple.Of3(1, "two", true).String())
	assert.Equal(t, "((1, 2), 3)", tuple.Of2(tuple.Of2(1, 2), 3).String())
}

func TestInterfaceConformance(t *testing.T) {
	t.Parallel()

	all := []tuple.Tuple{
		tuple.Of0(),
		tuple.Of1(1),
		tuple.Of5(1, 2, 3, 4, 5),
		tuple.Of15(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15),
	}

	for _, tp := range all {
		require.Len(t, tp.Values(), tp.Arity())
	}
}
