package emit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"adtgen/internal/analyze/analyzetest"
)

func TestExprString(t *testing.T) {
	cfg := CallOf(Sel(Ref{PkgPath: "example.com/app", Name: "Owner"}, "Cfg"),
		Sel(Ref{PkgPath: "example.com/app", Name: "LoggerOwner"}, "Logger"))

	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{"ident", Ident{Name: "x"}, "x"},
		{"nil", Nil{}, "nil"},
		{"nested call", cfg, "app.Owner.Cfg(app.LoggerOwner.Logger)"},
		{"deep nesting", CallOf(Sel(Ref{Name: "A"}, "M"), cfg, Ident{Name: "y"}),
			"A.M(app.Owner.Cfg(app.LoggerOwner.Logger), y)"},
		{"no args", CallOf(Ident{Name: "f"}), "f()"},
		{"ellipsis", Call{Fun: Ident{Name: "f"}, Args: []Expr{Ident{Name: "a"}, Ident{Name: "rest"}}, Ellipsis: true},
			"f(a, rest...)"},
		{"composite", AddrOf{X: Composite{
			Type:   Named{PkgPath: "example.com/app", Name: "Service"},
			Fields: []KeyValue{{Key: "ServiceBase", Value: Ident{Name: "b"}}},
		}}, "&app.Service{ServiceBase: b}"},
		{"generic", CallOf(Ref{PkgPath: "adtgen/tuple", Name: "Of2"}, Ident{Name: "a"}, Ident{Name: "b"}),
			"tuple.Of2(a, b)"},
		{"conversion", CallOf(TypeExpr{T: Pointer{Elem: Named{Name: "G"}}}, Nil{}), "(*G)(nil)"},
		{"binary", Binary{X: Lit{Value: `"P"`}, Op: "+", Y: Ident{Name: "s"}}, `"P" + s`},
		{"host type", TypeExpr{T: Host(analyzetest.Type("int"))}, "int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExprString(tt.expr))
		})
	}
}

func TestStmtString(t *testing.T) {
	assert.Equal(t, "return", StmtString(Return{}))
	assert.Equal(t, "return a, nil", StmtString(Return{Results: []Expr{Ident{Name: "a"}, Nil{}}}))
	assert.Equal(t, "b, err := NewB(x)", StmtString(Define{
		Names: []string{"b", "err"},
		Value: CallOf(Ref{Name: "NewB"}, Ident{Name: "x"}),
	}))
	assert.Equal(t, "if err != nil {\nreturn nil, err\n}", StmtString(IfErrReturn{
		Err:     "err",
		Results: []Expr{Nil{}, Ident{Name: "err"}},
	}))
	assert.Equal(t, "p.x = x", StmtString(Assign{LHS: Sel(Ident{Name: "p"}, "x"), RHS: Ident{Name: "x"}}))
	assert.Equal(t, "s.B.Run(n)", StmtString(ExprStmt{X: CallOf(Sel(Ident{Name: "s"}, "B", "Run"), Ident{Name: "n"})}))
}

func TestSignature(t *testing.T) {
	decl := NewTypeDecl("Service", "example.com/app.ServiceBase")

	tests := []struct {
		name   string
		method *Method
		want   string
	}{
		{
			name: "constructor",
			method: &Method{
				Name:    "NewService",
				Params:  []Param{{Name: "a", Type: Builtin("int")}, {Name: "c", Type: Builtin("string")}},
				Results: []Type{Pointer{Elem: Named{PkgPath: "example.com/app", Name: "Service"}}},
			},
			want: "func NewService(a int, c string) *app.Service",
		},
		{
			name: "method with results",
			method: &Method{
				Name:    "Open",
				Recv:    &Receiver{Name: "s", Pointer: true},
				Results: []Type{Builtin("int"), Builtin("error")},
			},
			want: "func (s *app.Service) Open() (int, error)",
		},
		{
			name: "variadic host slice",
			method: &Method{
				Name:   "Log",
				Recv:   &Receiver{Name: "s"},
				Params: []Param{{Name: "args", Type: Host(analyzetest.Type("[]any")), Variadic: true}},
			},
			want: "func (s app.Service) Log(args ...any)",
		},
		{
			name: "variadic slice",
			method: &Method{
				Name:   "Log",
				Params: []Param{{Name: "args", Type: Slice{Elem: Builtin("string")}, Variadic: true}},
			},
			want: "func Log(args ...string)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Code
			assert.Equal(t, tt.want, c.Signature("example.com/app", decl, tt.method).String())
		})
	}
}

func TestCode_Fragments(t *testing.T) {
	var c Code
	c.Expr(CallOf(Sel(Ref{PkgPath: "example.com/app", Name: "Defaults"}, "Logger")))

	want := []Fragment{
		{Kind: FragmentTypeRef, Text: "Defaults", PkgPath: "example.com/app"},
		{Kind: FragmentLiteral, Text: "."},
		{Kind: FragmentIdent, Text: "Logger"},
		{Kind: FragmentLiteral, Text: "("},
		{Kind: FragmentLiteral, Text: ")"},
	}

	if diff := cmp.Diff(want, c.Fragments()); diff != "" {
		t.Errorf("fragments mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "typeref", FragmentTypeRef.String())
	assert.Equal(t, "unknown", FragmentKind(9).String())
}

func TestTypeDecl(t *testing.T) {
	d := NewTypeDecl("Point", "example.com/app.pointCase")
	d.AddField(Field{Name: "x", Type: Builtin("int")})
	d.AddSuperinterface(Named{PkgPath: "fmt", Name: "Stringer"})
	d.AddMethod(&Method{Name: "NewPoint"})
	d.AddMethod(&Method{Name: "X", Recv: &Receiver{Name: "p"}})

	assert.Len(t, d.Fields(), 1)
	assert.Len(t, d.Superinterfaces(), 1)
	assert.True(t, d.HasMethod("X"))
	assert.False(t, d.HasMethod("Y"))
	assert.True(t, d.Methods()[0].IsConstructor())
	assert.False(t, d.Methods()[1].IsConstructor())
	assert.Equal(t, Named{PkgPath: "example.com/app", Name: "Point"}, d.SelfType("example.com/app"))
}
