package spec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adtgen/internal/analyze"
	"adtgen/internal/analyze/analyzetest"
)

const (
	intT    = analyzetest.Type("int")
	stringT = analyzetest.Type("string")
	logger  = analyzetest.Type("*log/slog.Logger")
)

func TestBuild_PreservesDeclarationOrder(t *testing.T) {
	host := analyzetest.NewHost()
	decl := host.Decl("example.com/p", "ServiceBase", analyze.DirectiveImplicitClass,
		analyze.Arg{Key: "implements", Value: "fmt.Stringer"})
	host.Members(decl,
		analyzetest.Constructor("NewServiceBase", []analyze.Type{analyzetest.Type("*ServiceBase")},
			analyzetest.P("a", intT), analyzetest.Implicit("log", logger), analyzetest.P("c", stringT)),
		analyzetest.Method("Run", nil, analyzetest.P("n", intT)),
		analyzetest.Variadic(analyzetest.Method("Log", nil, analyzetest.P("args", analyzetest.Type("[]any")))),
	)

	s, err := Build(host, decl)
	require.NoError(t, err)

	assert.Equal(t, KindImplicitClass, s.Kind)
	assert.Equal(t, "ServiceBase", s.Name())
	assert.Equal(t, "example.com/p", s.PkgPath())

	items := s.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "NewServiceBase", items[0].Name)
	assert.True(t, items[0].IsConstructor())
	assert.True(t, items[0].HasImplicitParams())
	assert.Equal(t, []string{"a", "log", "c"}, paramNames(items[0]))
	assert.True(t, items[1].IsVoid())
	assert.False(t, items[1].Variadic())
	assert.True(t, items[2].Variadic())

	assert.Same(t, items[0], s.Items()[0], "items are built once")

	it, ok := s.Item("Run")
	require.True(t, ok)
	assert.Same(t, items[1], it)

	_, ok = s.Item("Missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"fmt.Stringer"}, s.Reader.List("implements"))
}

func TestBuild_Empty(t *testing.T) {
	host := analyzetest.NewHost()
	decl := host.Decl("example.com/p", "Nothing", analyze.DirectiveCase)

	s, err := Build(host, decl)
	require.ErrorIs(t, err, ErrEmpty)
	require.NotNil(t, s)
	assert.Empty(t, s.Items())
}

func TestBuild_IntrospectionFailure(t *testing.T) {
	host := analyzetest.NewHost()
	decl := host.Decl("example.com/p", "Odd", analyze.DirectiveContext)
	host.Fail(decl, "unexpected shape")

	_, err := Build(host, decl)

	var ie *analyze.IntrospectionError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "example.com/p.Odd", ie.Decl)

	_, err = Build(host, host.Decl("example.com/p", "F", analyze.DirectiveImplicit))
	require.True(t, errors.As(err, &ie), "function markers are not specs")
}

func TestCatalog_Order(t *testing.T) {
	host := analyzetest.NewHost()
	b1 := &Spec{Decl: host.Decl("example.com/b", "First", analyze.DirectiveContext), Kind: KindContext}
	a1 := &Spec{Decl: host.Decl("example.com/a", "Second", analyze.DirectiveCase), Kind: KindCase}
	b2 := &Spec{Decl: host.Decl("example.com/b", "Third", analyze.DirectiveContext), Kind: KindContext}

	c := NewCatalog(b2, a1, b1)

	assert.Equal(t, []*Spec{a1, b1, b2}, c.Specs())
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []*Spec{b1, b2}, c.OfKind(KindContext))
	assert.Empty(t, c.OfKind(KindImplicitClass))
}

func TestKind(t *testing.T) {
	for directive, want := range map[string]Kind{
		analyze.DirectiveCase:          KindCase,
		analyze.DirectiveContext:       KindContext,
		analyze.DirectiveImplicitClass: KindImplicitClass,
	} {
		got, ok := KindOf(directive)
		require.True(t, ok)
		assert.Equal(t, want, got)
		assert.Equal(t, directive, got.String())
	}

	_, ok := KindOf(analyze.DirectiveImplicit)
	assert.False(t, ok)
	assert.Equal(t, "unknown", Kind(42).String())
}

func paramNames(it *Item) []string {
	var out []string
	for _, p := range it.Params {
		out = append(out, p.Name)
	}

	return out
}
