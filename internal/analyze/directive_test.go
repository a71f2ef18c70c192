package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirective(t *testing.T) {
	d, ok, err := ParseDirective("adt", "//adt:implicit-class name=Greeter implements=fmt.Stringer")
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, DirectiveImplicitClass, d.Kind)
	assert.Equal(t, []Arg{
		{Key: "name", Value: "Greeter"},
		{Key: "implements", Value: "fmt.Stringer"},
	}, d.Args)
}

func TestParseDirective_BareWords(t *testing.T) {
	d, ok, err := ParseDirective("adt", "//adt:implicit logger  cfg")
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, []string{"logger", "cfg"}, d.Words())
}

func TestParseDirective_NotADirective(t *testing.T) {
	for _, text := range []string{
		"// adt:case",
		"//go:generate stringer",
		"/* adt:case */",
		"// Greeter says hello.",
	} {
		_, ok, err := ParseDirective("adt", text)
		assert.False(t, ok, text)
		assert.NoError(t, err, text)
	}
}

func TestParseDirective_Errors(t *testing.T) {
	for _, text := range []string{
		"//adt:",
		"//adt:record",
		"//adt:case =x",
		"//adt:case name=A name=B",
	} {
		_, ok, err := ParseDirective("adt", text)
		assert.True(t, ok, text)
		assert.Error(t, err, text)
	}
}

func TestParseDirective_CustomPrefix(t *testing.T) {
	d, ok, err := ParseDirective("gen", "//gen:context")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, DirectiveContext, d.Kind)

	_, ok, _ = ParseDirective("gen", "//adt:context")
	assert.False(t, ok)
}

func TestParseDirective_SuggestsKind(t *testing.T) {
	_, ok, err := ParseDirective("adt", "//adt:implicits logger")
	require.True(t, ok)
	require.EqualError(t, err, `unknown directive "//adt:implicits" (did you mean implicit?)`)

	_, _, err = ParseDirective("adt", "//adt:zzz")
	require.EqualError(t, err, `unknown directive "//adt:zzz"`)
}
