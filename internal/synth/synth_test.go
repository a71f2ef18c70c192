package synth

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adtgen/internal/analyze"
	"adtgen/internal/analyze/analyzetest"
	"adtgen/internal/diagnostic"
	"adtgen/internal/emit"
	"adtgen/internal/implicit"
	"adtgen/internal/spec"
)

const (
	pkg     = "example.com/app"
	intT    = analyzetest.Type("int")
	stringT = analyzetest.Type("string")
	errorT  = analyzetest.Type("error")
	fooT    = analyzetest.Type("Foo")
	loggerT = analyzetest.Type("Logger")
	baseT   = analyzetest.Type("*ServiceBase")
)

type fixture struct {
	host    *analyzetest.Host
	catalog *spec.Catalog
	diags   diagnostic.Diagnostics
	opts    Options
}

func newFixture() *fixture {
	return &fixture{host: analyzetest.NewHost(), catalog: spec.NewCatalog(), opts: DefaultOptions()}
}

func (f *fixture) add(t *testing.T, pkgPath, name, directive string, args []analyze.Arg, members ...*analyze.Element) *spec.Spec {
	t.Helper()

	decl := f.host.Decl(pkgPath, name, directive, args...)
	f.host.Members(decl, members...)

	s, err := spec.Build(f.host, decl)
	require.NoError(t, err)
	f.catalog.Add(s)

	return s
}

func (f *fixture) synth() *Synthesizer {
	r := implicit.NewResolver(f.host, f.catalog, &f.diags, implicit.Config{})
	return New(f.host, f.catalog, r, &f.diags, f.opts)
}

func render(d *emit.TypeDecl, name string) string {
	for _, m := range d.Methods() {
		if m.Name != name {
			continue
		}

		var c emit.Code
		c.Signature(pkg, d, m)

		for _, st := range m.Body {
			c.Literal("\n").Stmt(st)
		}

		return c.String()
	}

	return fmt.Sprintf("<no method %s>", name)
}

func methodNames(d *emit.TypeDecl) []string {
	var out []string
	for _, m := range d.Methods() {
		out = append(out, m.Name)
	}

	return out
}

func ctor(params ...analyze.Param) *analyze.Element {
	return analyzetest.Constructor("NewServiceBase", []analyze.Type{baseT}, params...)
}

func TestImplicitClass_ConstructorDropsImplicitParam(t *testing.T) {
	f := newFixture()
	f.add(t, pkg, "Ctx", analyze.DirectiveContext, nil, analyzetest.Field("E", fooT))
	sp := f.add(t, pkg, "ServiceBase", analyze.DirectiveImplicitClass, nil,
		ctor(analyzetest.P("a", intT), analyzetest.Implicit("b", fooT), analyzetest.P("c", stringT)))

	d, ok := f.synth().ImplicitClass(sp)
	require.True(t, ok)

	assert.Equal(t, "Service", d.Name)
	assert.Equal(t, []emit.Field{{Type: emit.Pointer{Elem: emit.Named{PkgPath: pkg, Name: "ServiceBase"}}}}, d.Fields())
	assert.Equal(t,
		"func NewService(a int, c string) *app.Service\n"+
			"return &app.Service{ServiceBase: app.NewServiceBase(a, app.Ctx.E, c)}",
		render(d, "NewService"))
	assert.Empty(t, f.diags.Errors)
}

func TestImplicitClass_ErrorConstructor(t *testing.T) {
	f := newFixture()
	f.add(t, pkg, "Ctx", analyze.DirectiveContext, nil, analyzetest.Field("Log", loggerT))
	sp := f.add(t, pkg, "ServiceBase", analyze.DirectiveImplicitClass, nil,
		analyzetest.Constructor("NewServiceBaseFromEnv", []analyze.Type{baseT, errorT},
			analyzetest.P("s", stringT), analyzetest.Implicit("log", loggerT)))

	d, ok := f.synth().ImplicitClass(sp)
	require.True(t, ok)

	assert.Equal(t,
		"func NewServiceFromEnv(s string) (*app.Service, error)\n"+
			"s1, err := app.NewServiceBaseFromEnv(s, app.Ctx.Log)\n"+
			"if err != nil {\nreturn nil, err\n}\n"+
			"return &app.Service{ServiceBase: s1}, nil",
		render(d, "NewServiceFromEnv"))
}

func TestImplicitClass_ForwardsOnlyImplicitMethods(t *testing.T) {
	f := newFixture()
	f.add(t, pkg, "Ctx", analyze.DirectiveContext, nil, analyzetest.Field("Log", loggerT))
	sp := f.add(t, pkg, "ServiceBase", analyze.DirectiveImplicitClass, nil,
		ctor(),
		analyzetest.Method("Run", errorT, analyzetest.P("n", intT), analyzetest.Implicit("log", loggerT)),
		analyzetest.Method("Stop", nil, analyzetest.Implicit("log", loggerT)),
		analyzetest.Method("Plain", intT, analyzetest.P("n", intT)),
		analyzetest.Variadic(analyzetest.Method("Printf", nil,
			analyzetest.Implicit("log", loggerT), analyzetest.P("format", stringT),
			analyzetest.P("args", analyzetest.Type("[]any")))),
	)

	d, ok := f.synth().ImplicitClass(sp)
	require.True(t, ok)

	assert.Equal(t, []string{"NewService", "Run", "Stop", "Printf"}, methodNames(d))
	assert.Equal(t, "func NewService() *app.Service\nreturn &app.Service{ServiceBase: app.NewServiceBase()}",
		render(d, "NewService"))
	assert.Equal(t, "func (s *app.Service) Run(n int) error\nreturn s.ServiceBase.Run(n, app.Ctx.Log)",
		render(d, "Run"))
	assert.Equal(t, "func (s *app.Service) Stop()\ns.ServiceBase.Stop(app.Ctx.Log)",
		render(d, "Stop"))
	assert.Equal(t,
		"func (s *app.Service) Printf(format string, args ...any)\ns.ServiceBase.Printf(app.Ctx.Log, format, args...)",
		render(d, "Printf"))
}

func TestImplicitClass_ParameterNamesAvoidReceiver(t *testing.T) {
	f := newFixture()
	f.add(t, pkg, "Ctx", analyze.DirectiveContext, nil, analyzetest.Field("Log", loggerT))
	sp := f.add(t, pkg, "ServiceBase", analyze.DirectiveImplicitClass, nil,
		ctor(),
		analyzetest.Method("Put", nil, analyzetest.P("s", stringT), analyzetest.P("", intT), analyzetest.Implicit("log", loggerT)))

	d, ok := f.synth().ImplicitClass(sp)
	require.True(t, ok)
	assert.Equal(t, "func (s *app.Service) Put(s1 string, p1 int)\ns.ServiceBase.Put(s1, p1, app.Ctx.Log)", render(d, "Put"))
}

func TestImplicitClass_LocalsDoNotShadowContexts(t *testing.T) {
	optionsT := analyzetest.Type("options")

	f := newFixture()
	f.add(t, pkg, "cfg", analyze.DirectiveContext, nil, analyzetest.Field("Opts", optionsT))
	f.add(t, pkg, "s", analyze.DirectiveContext, nil, analyzetest.Field("Log", loggerT))
	sp := f.add(t, pkg, "ServiceBase", analyze.DirectiveImplicitClass, nil,
		ctor(analyzetest.P("cfg", stringT), analyzetest.Implicit("o", optionsT)),
		analyzetest.Method("Run", stringT, analyzetest.P("cfg", stringT), analyzetest.Implicit("o", optionsT)),
		analyzetest.Method("Stop", nil, analyzetest.Implicit("log", loggerT)),
	)

	d, ok := f.synth().ImplicitClass(sp)
	require.True(t, ok)
	assert.Empty(t, f.diags.Errors)

	assert.Equal(t,
		"func NewService(cfg1 string) *app.Service\nreturn &app.Service{ServiceBase: app.NewServiceBase(cfg1, app.cfg.Opts)}",
		render(d, "NewService"))
	assert.Equal(t,
		"func (s1 *app.Service) Run(cfg1 string) string\nreturn s1.ServiceBase.Run(cfg1, app.cfg.Opts)",
		render(d, "Run"))
	assert.Equal(t, "func (s1 *app.Service) Stop()\ns1.ServiceBase.Stop(app.s.Log)", render(d, "Stop"))
}

func TestImplicitClass_LocalsDoNotShadowImportNames(t *testing.T) {
	f := newFixture()
	f.add(t, "example.com/config", "Defaults", analyze.DirectiveContext, nil, analyzetest.Field("Log", loggerT))
	sp := f.add(t, pkg, "ServiceBase", analyze.DirectiveImplicitClass, nil,
		ctor(),
		analyzetest.Method("Load", nil, analyzetest.P("config", stringT), analyzetest.Implicit("log", loggerT)))

	d, ok := f.synth().ImplicitClass(sp)
	require.True(t, ok)
	assert.Equal(t,
		"func (s *app.Service) Load(config1 string)\ns.ServiceBase.Load(config1, config.Defaults.Log)",
		render(d, "Load"))
}

func TestImplicitClass_UnresolvedParamBecomesNil(t *testing.T) {
	f := newFixture()
	f.add(t, pkg, "Spec1", analyze.DirectiveContext, nil, analyzetest.Field("f", loggerT))
	f.add(t, pkg, "Spec2", analyze.DirectiveContext, nil, analyzetest.Field("g", loggerT))
	sp := f.add(t, pkg, "ServiceBase", analyze.DirectiveImplicitClass, nil,
		ctor(analyzetest.Implicit("log", loggerT), analyzetest.Implicit("foo", fooT)))

	d, ok := f.synth().ImplicitClass(sp)
	require.True(t, ok, "generation continues past resolution failures")

	assert.Equal(t, "func NewService() *app.Service\nreturn &app.Service{ServiceBase: app.NewServiceBase(nil, nil)}",
		render(d, "NewService"))

	require.Len(t, f.diags.Errors, 2, "each failing site is reported")
	assert.Equal(t, diagnostic.CodeImplicitAmbiguous, f.diags.Errors[0].Code)
	assert.Equal(t, []string{"candidate Spec1.f", "candidate Spec2.g"}, f.diags.Errors[0].Suggestions)
	assert.Equal(t, diagnostic.CodeImplicitNoMatch, f.diags.Errors[1].Code)
	assert.Equal(t, "ServiceBase.NewServiceBase", f.diags.Errors[1].Subject)
}

func interfaceFixture(t *testing.T, providers ...*analyze.Element) (*fixture, *spec.Spec) {
	t.Helper()

	greeter := analyzetest.Type("Greeter")
	f := newFixture()
	f.host.Interface(greeter,
		analyzetest.Method("M1", stringT, analyzetest.P("x", intT)),
		analyzetest.Method("M2", nil),
	)
	f.host.Assignable(analyzetest.Type("*greeterImpl"), greeter)

	if len(providers) > 0 {
		f.add(t, pkg, "Ctx", analyze.DirectiveContext, nil, providers...)
	}

	sp := f.add(t, pkg, "ServiceBase", analyze.DirectiveImplicitClass,
		[]analyze.Arg{{Key: ImplementsKey, Value: "Greeter"}}, ctor())

	return f, sp
}

func TestImplicitClass_InterfaceForwarding(t *testing.T) {
	f, sp := interfaceFixture(t, analyzetest.Field("F", analyzetest.Type("*greeterImpl")))

	d, ok := f.synth().ImplicitClass(sp)
	require.True(t, ok)

	assert.Equal(t, []emit.Type{emit.Host(analyzetest.Type("Greeter"))}, d.Superinterfaces())
	assert.Equal(t, "func (s *app.Service) M1(x int) string\nreturn app.Ctx.F.M1(x)", render(d, "M1"))
	assert.Equal(t, "func (s *app.Service) M2()\napp.Ctx.F.M2()", render(d, "M2"))
	assert.Empty(t, f.diags.Errors)
	assert.Empty(t, f.diags.Infos)
}

func TestImplicitClass_InterfaceThroughMethodProvider(t *testing.T) {
	f, sp := interfaceFixture(t,
		analyzetest.Method("Greeter", analyzetest.Type("*greeterImpl"), analyzetest.P("n", intT)),
		analyzetest.Field("N", intT),
	)

	d, ok := f.synth().ImplicitClass(sp)
	require.True(t, ok)
	assert.Equal(t, "func (s *app.Service) M1(x int) string\nreturn app.Ctx.Greeter(app.Ctx.N).M1(x)", render(d, "M1"))
}

func TestImplicitClass_InterfaceParamsDoNotShadowContexts(t *testing.T) {
	f, sp := interfaceFixture(t, analyzetest.Field("F", analyzetest.Type("*greeterImpl")))
	f.add(t, pkg, "x", analyze.DirectiveContext, nil, analyzetest.Field("N", intT))

	d, ok := f.synth().ImplicitClass(sp)
	require.True(t, ok)
	assert.Equal(t, "func (s *app.Service) M1(x1 int) string\nreturn app.Ctx.F.M1(x1)", render(d, "M1"))
}

func TestImplicitClass_InterfacePolicy(t *testing.T) {
	tests := []struct {
		policy                  Policy
		errors, warnings, infos int
	}{
		{PolicySkip, 0, 0, 1},
		{PolicyWarn, 0, 1, 0},
		{PolicyError, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			f, sp := interfaceFixture(t)
			f.opts.InterfacePolicy = tt.policy

			d, ok := f.synth().ImplicitClass(sp)
			require.True(t, ok)

			assert.Empty(t, d.Superinterfaces(), "conformance is not declared")
			assert.Equal(t, []string{"NewService"}, methodNames(d))
			assert.Len(t, f.diags.Errors, tt.errors)
			assert.Len(t, f.diags.Warnings, tt.warnings)
			assert.Len(t, f.diags.Infos, tt.infos)
		})
	}
}

func TestImplicitClass_UnknownInterface(t *testing.T) {
	f := newFixture()
	sp := f.add(t, pkg, "ServiceBase", analyze.DirectiveImplicitClass,
		[]analyze.Arg{{Key: ImplementsKey, Value: "io.Nope"}}, ctor())

	_, ok := f.synth().ImplicitClass(sp)
	require.True(t, ok)
	require.Len(t, f.diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeInvalidDirective, f.diags.Errors[0].Code)
}

func caseFixture(t *testing.T, name string, members ...*analyze.Element) (*fixture, *spec.Spec) {
	t.Helper()

	f := newFixture()
	sp := f.add(t, pkg, name, analyze.DirectiveCase, nil, members...)

	return f, sp
}

func TestCaseClass(t *testing.T) {
	f, sp := caseFixture(t, "pointCase", analyzetest.Field("X", intT), analyzetest.Field("y", stringT))

	d, ok := f.synth().CaseClass(sp)
	require.True(t, ok)

	assert.Equal(t, "Point", d.Name)
	assert.Equal(t, []emit.Field{
		{Name: "x", Type: emit.Host(intT)},
		{Name: "y", Type: emit.Host(stringT)},
	}, d.Fields())
	assert.Equal(t, []string{"NewPoint", "X", "Y", "WithX", "WithY", "Unapply", "Equal", "Compare", "String"},
		methodNames(d))

	assert.Equal(t, "func NewPoint(x int, y string) app.Point\nreturn app.Point{x: x, y: y}", render(d, "NewPoint"))
	assert.Equal(t, "func (p app.Point) Y() string\nreturn p.y", render(d, "Y"))
	assert.Equal(t, "func (p app.Point) WithX(x int) app.Point\np.x = x\nreturn p", render(d, "WithX"))
	assert.Equal(t, "func (p app.Point) Unapply() tuple.Tuple2[int, string]\nreturn tuple.Of2(p.x, p.y)",
		render(d, "Unapply"))
	assert.Equal(t, "func (p app.Point) Equal(o app.Point) bool\nreturn p.Unapply().Equal(o.Unapply())",
		render(d, "Equal"))
	assert.Equal(t, "func (p app.Point) String() string\nreturn \"Point\" + p.Unapply().String()",
		render(d, "String"))
	assert.Empty(t, f.diags.Errors)
}

func TestCaseClass_NamesAndReceiver(t *testing.T) {
	f := newFixture()
	sp := f.add(t, pkg, "pairCase", analyze.DirectiveCase,
		[]analyze.Arg{{Key: NameKey, Value: "Pair"}},
		analyzetest.Field("P", intT), analyzetest.Field("Type", stringT))

	d, ok := f.synth().CaseClass(sp)
	require.True(t, ok)

	assert.Equal(t, "func NewPair(p int, type_ string) app.Pair\nreturn app.Pair{p: p, type_: type_}",
		render(d, "NewPair"))
	assert.Equal(t, "func (p1 app.Pair) WithType(type_ string) app.Pair\np1.type_ = type_\nreturn p1",
		render(d, "WithType"), "the receiver avoids parameter names")
}

func TestCaseClass_Collisions(t *testing.T) {
	f, sp := caseFixture(t, "badCase", analyzetest.Field("X", intT), analyzetest.Field("x", intT))
	_, ok := f.synth().CaseClass(sp)
	assert.False(t, ok)
	require.Len(t, f.diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeDuplicateName, f.diags.Errors[0].Code)

	f, sp = caseFixture(t, "badCase", analyzetest.Field("String", stringT))
	_, ok = f.synth().CaseClass(sp)
	assert.False(t, ok)
	assert.Equal(t, diagnostic.CodeDuplicateName, f.diags.Errors[0].Code)

	f, sp = caseFixture(t, "onlyMethodsCase", analyzetest.Method("M", intT))
	_, ok = f.synth().CaseClass(sp)
	assert.False(t, ok)
	assert.Equal(t, diagnostic.CodeEmptySpec, f.diags.Errors[0].Code)
}

func TestCaseClass_ArityUnsupported(t *testing.T) {
	var members []*analyze.Element
	for i := range 23 {
		members = append(members, analyzetest.Field(fmt.Sprintf("F%d", i), intT))
	}

	f, sp := caseFixture(t, "wideCase", members...)

	d, ok := f.synth().CaseClass(sp)
	require.True(t, ok, "the value type itself is still generated")

	assert.False(t, d.HasMethod("Unapply"))
	assert.False(t, d.HasMethod("Equal"))
	assert.False(t, d.HasMethod("String"))
	assert.True(t, d.HasMethod("F22"))

	require.Len(t, f.diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeArityUnsupported, f.diags.Errors[0].Code)
	assert.Equal(t, "case class Wide has 23 fields, tuples support at most 22", f.diags.Errors[0].Message)
}

func TestCaseClass_MaxArity(t *testing.T) {
	var members []*analyze.Element
	for i := range 22 {
		members = append(members, analyzetest.Field(fmt.Sprintf("F%d", i), intT))
	}

	f, sp := caseFixture(t, "wideCase", members...)

	d, ok := f.synth().CaseClass(sp)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(render(d, "Unapply"), "func (w app.Wide) Unapply() tuple.Tuple22[int,"))
	assert.Empty(t, f.diags.Errors)
}

func TestGeneratedName(t *testing.T) {
	f := newFixture()
	s := f.synth()

	tests := []struct {
		name, directive string
		args            []analyze.Arg
		want            string
		wantErr         bool
	}{
		{name: "pointCase", directive: analyze.DirectiveCase, want: "Point"},
		{name: "Shape", directive: analyze.DirectiveCase, want: "", wantErr: true},
		{name: "shape", directive: analyze.DirectiveCase, want: "Shape"},
		{name: "Case", directive: analyze.DirectiveCase, wantErr: true},
		{name: "ServiceBase", directive: analyze.DirectiveImplicitClass, want: "Service"},
		{name: "Service", directive: analyze.DirectiveImplicitClass, want: "ServiceImpl"},
		{name: "Service", directive: analyze.DirectiveImplicitClass,
			args: []analyze.Arg{{Key: NameKey, Value: "Svc"}}, want: "Svc"},
		{name: "Service", directive: analyze.DirectiveImplicitClass,
			args: []analyze.Arg{{Key: NameKey, Value: "not valid"}}, wantErr: true},
		{name: "Defaults", directive: analyze.DirectiveContext, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.want, func(t *testing.T) {
			kind, _ := spec.KindOf(tt.directive)
			sp := &spec.Spec{
				Decl:   f.host.Decl(pkg, tt.name, tt.directive, tt.args...),
				Kind:   kind,
				Reader: spec.NewReader(tt.args),
			}

			got, err := s.GeneratedName(sp)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun_GroupsByPackage(t *testing.T) {
	f := newFixture()
	f.add(t, pkg, "Ctx", analyze.DirectiveContext, nil, analyzetest.Field("Log", loggerT))
	f.add(t, pkg, "pointCase", analyze.DirectiveCase, nil, analyzetest.Field("X", intT))
	f.add(t, "example.com/other", "ServiceBase", analyze.DirectiveImplicitClass, nil, ctor())
	f.add(t, pkg, "point", analyze.DirectiveCase, nil, analyzetest.Field("Y", intT))

	files := f.synth().Run()
	require.Len(t, files, 2)

	assert.Equal(t, "example.com/app", files[0].PkgPath)
	assert.Equal(t, "app", files[0].PkgName)
	require.Len(t, files[0].Decls, 1, "the second Point is rejected")
	assert.Equal(t, "Point", files[0].Decls[0].Name)

	assert.Equal(t, "example.com/other", files[1].PkgPath)
	assert.Equal(t, "Service", files[1].Decls[0].Name)

	require.Len(t, f.diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeDuplicateName, f.diags.Errors[0].Code)
}

func TestParsePolicy(t *testing.T) {
	for in, want := range map[string]Policy{"": PolicySkip, "skip": PolicySkip, " WARN ": PolicyWarn, "error": PolicyError} {
		got, err := ParsePolicy(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParsePolicy("loud")
	assert.Error(t, err)
}

func TestRun_WarnsAboutUnknownArguments(t *testing.T) {
	f := newFixture()
	f.add(t, pkg, "Ctx", analyze.DirectiveContext, []analyze.Arg{{Value: "eager"}}, analyzetest.Field("Log", loggerT))
	f.add(t, pkg, "pointCase", analyze.DirectiveCase,
		[]analyze.Arg{{Key: "nme", Value: "P"}}, analyzetest.Field("X", intT))

	files := f.synth().Run()
	require.Len(t, files, 1)
	assert.Empty(t, f.diags.Errors)
	require.Len(t, f.diags.Warnings, 2)

	assert.Equal(t, diagnostic.CodeUnknownArgument, f.diags.Warnings[0].Code)
	assert.Equal(t, `context argument "eager" is ignored`, f.diags.Warnings[0].Message)
	assert.Equal(t, `case argument "nme" is ignored (did you mean name?)`, f.diags.Warnings[1].Message)
	assert.Equal(t, "Point", files[0].Decls[0].Name, "unknown keys do not rename")
}
