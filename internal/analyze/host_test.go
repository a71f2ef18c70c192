package analyze

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memberNames(els []*Element) []string {
	out := make([]string, 0, len(els))
	for _, e := range els {
		out = append(out, e.Kind.String()+":"+e.Name)
	}

	return out
}

func TestTypesHost_MembersOf_Context(t *testing.T) {
	prog := loadFixture(t)

	members, err := prog.Host.MembersOf(declNamed(t, prog, "Defaults"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Field:Logger"}, memberNames(members), "unexported and hidden fields are skipped")
	assert.Equal(t, "*log/slog.Logger", members[0].Type.String())

	members, err = prog.Host.MembersOf(declNamed(t, prog, "Providers"))
	require.NoError(t, err)
	require.Equal(t, []string{"Method:Config"}, memberNames(members))
	assert.Equal(t, "example.com/shop.Config", members[0].Type.String())
	require.Len(t, members[0].Params, 1)
	assert.Equal(t, "logger", members[0].Params[0].Name)
}

func TestTypesHost_MembersOf_ContextPointerMethods(t *testing.T) {
	src := `package shop

type clock struct{ offset int }

func (c clock) Now() int64 { return int64(c.offset) }

func (c *clock) Zone() string { return "UTC" }

type zoner interface{ Zone() string }

//adt:context
var Clock clock

//adt:context
var Zones zoner = &clock{}
`
	prog, err := NewAnalyzer("", "").LoadFiles("example.com/shop", map[string]string{"shop.go": src})
	require.NoError(t, err)

	members, err := prog.Host.MembersOf(declNamed(t, prog, "Clock"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Method:Now", "Method:Zone"}, memberNames(members),
		"package variables are addressable, so pointer methods are callable")

	members, err = prog.Host.MembersOf(declNamed(t, prog, "Zones"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Method:Zone"}, memberNames(members))
}

func TestTypesHost_MembersOf_Case(t *testing.T) {
	prog := loadFixture(t)

	members, err := prog.Host.MembersOf(declNamed(t, prog, "pointCase"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Field:X", "Field:y"}, memberNames(members))
	assert.True(t, members[0].Exported)
	assert.False(t, members[1].Exported)
}

func TestTypesHost_MembersOf_ImplicitClass(t *testing.T) {
	prog := loadFixture(t)

	members, err := prog.Host.MembersOf(declNamed(t, prog, "ServiceBase"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Constructor:NewServiceBase",
		"Constructor:NewServiceBaseChecked",
		"Method:Run",
		"Method:Plain",
	}, memberNames(members), "value-returning New functions are not constructors")

	ctor := members[0]
	require.Len(t, ctor.Params, 2)
	assert.False(t, ctor.Params[0].Implicit)
	assert.True(t, ctor.Params[1].Implicit)
	assert.True(t, ctor.HasImplicitParams())

	checked := members[1]
	assert.Len(t, checked.Results, 2)
	assert.Nil(t, checked.Type)

	run := members[2]
	assert.True(t, run.Params[1].Implicit)
	assert.Equal(t, "error", run.Type.String())

	plain := members[3]
	assert.True(t, plain.IsVoid())
	assert.False(t, plain.HasImplicitParams())
}

func TestTypesHost_IsAssignable(t *testing.T) {
	prog := loadFixture(t)
	host := prog.Host

	stringer, err := host.LookupType(declNamed(t, prog, "ServiceBase"), "fmt.Stringer")
	require.NoError(t, err)

	errType := types.Universe.Lookup("error").Type()
	assert.True(t, host.IsAssignable(types.Typ[types.Int], types.Typ[types.Int]))
	assert.False(t, host.IsAssignable(types.Typ[types.Int], types.Typ[types.String]))
	assert.False(t, host.IsAssignable(types.Typ[types.Int], stringer))
	assert.False(t, host.IsAssignable(fakeType("x"), errType), "foreign types are never assignable")
}

func TestTypesHost_LookupType(t *testing.T) {
	prog := loadFixture(t)
	decl := declNamed(t, prog, "ServiceBase")

	for expr, want := range map[string]string{
		"fmt.Stringer": "fmt.Stringer",
		"Config":       "example.com/shop.Config",
		"error":        "error",
		"slog.Handler": "log/slog.Handler",
	} {
		got, err := prog.Host.LookupType(decl, expr)
		require.NoError(t, err, expr)
		assert.Equal(t, want, got.String(), expr)
	}

	_, err := prog.Host.LookupType(decl, "io.Writer")
	assert.Error(t, err, "io is not imported")

	_, err = prog.Host.LookupType(decl, "Defaults")
	assert.Error(t, err, "variables are not types")
}

func TestTypesHost_MethodsOf(t *testing.T) {
	prog := loadFixture(t)

	stringer, err := prog.Host.LookupType(declNamed(t, prog, "ServiceBase"), "fmt.Stringer")
	require.NoError(t, err)

	methods, err := prog.Host.MethodsOf(stringer)
	require.NoError(t, err)
	require.Len(t, methods, 1)
	assert.Equal(t, "String", methods[0].Name)
	assert.Equal(t, "string", methods[0].Type.String())

	_, err = prog.Host.MethodsOf(types.Typ[types.Int])
	var ie *IntrospectionError
	require.ErrorAs(t, err, &ie)
	assert.Contains(t, ie.Error(), "not an interface")
}

func TestTypesHost_UnknownDecl(t *testing.T) {
	prog := loadFixture(t)

	_, err := prog.Host.MembersOf(&Decl{Name: "Ghost", Directive: Directive{Kind: DirectiveCase}})

	var ie *IntrospectionError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "Ghost", ie.Decl)
}

type fakeType string

func (f fakeType) String() string { return string(f) }
