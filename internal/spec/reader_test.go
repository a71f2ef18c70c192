package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"adtgen/internal/analyze"
)

func TestReader(t *testing.T) {
	r := NewReader([]analyze.Arg{
		{Value: "bare"},
		{Key: "name", Value: "Point"},
		{Key: "implements", Value: "fmt.Stringer, io.Writer,,"},
		{Key: "strict", Value: "true"},
		{Key: "fuzzy", Value: "maybe"},
		{Key: "empty", Value: ""},
	})

	assert.Equal(t, []string{"name", "implements", "strict", "fuzzy", "empty"}, r.Keys())

	v, ok := r.Get("name")
	assert.True(t, ok)
	assert.Equal(t, "Point", v)

	_, ok = r.Get("bare")
	assert.False(t, ok, "bare words are not keys")

	assert.Equal(t, "Point", r.String("name", "X"))
	assert.Equal(t, "X", r.String("empty", "X"))
	assert.Equal(t, "X", r.String("missing", "X"))

	assert.Equal(t, []string{"fmt.Stringer", "io.Writer"}, r.List("implements"))
	assert.Nil(t, r.List("missing"))
	assert.Empty(t, r.List("empty"))

	assert.True(t, r.Bool("strict", false))
	assert.True(t, r.Bool("fuzzy", true))
	assert.False(t, r.Bool("missing", false))
}
