package emit

import (
	"fmt"
	"strings"

	"adtgen/internal/analyze"
	"adtgen/internal/common"
)

// FragmentKind classifies a token of generated code.
type FragmentKind int

const (
	FragmentLiteral FragmentKind = iota // punctuation, keywords, literals
	FragmentTypeRef                     // package-level type or identifier, qualified by the backend
	FragmentIdent                       // local identifier, spelled verbatim
)

// String returns a human-readable representation of the FragmentKind.
func (k FragmentKind) String() string {
	switch k {
	case FragmentLiteral:
		return "literal"
	case FragmentTypeRef:
		return "typeref"
	case FragmentIdent:
		return "ident"
	default:
		return common.UnknownStr
	}
}

// Fragment is one token of generated code.
type Fragment struct {
	Kind FragmentKind
	Text string // literal text, identifier, or the name of a package-level reference
	// PkgPath is the declaring package of a TypeRef named by Text.
	PkgPath string
	// Host is a source model type to render in place of Text.
	Host analyze.Type
	// Elem renders the element type of the Host slice type.
	Elem bool
}

// Code is a flattened token stream.
type Code struct {
	frags []Fragment
}

// Fragments returns the tokens written so far.
func (c *Code) Fragments() []Fragment { return c.frags }

// Len returns the number of tokens.
func (c *Code) Len() int { return len(c.frags) }

// Literal appends verbatim text.
func (c *Code) Literal(s string) *Code {
	c.frags = append(c.frags, Fragment{Kind: FragmentLiteral, Text: s})
	return c
}

// Ident appends a local identifier.
func (c *Code) Ident(name string) *Code {
	c.frags = append(c.frags, Fragment{Kind: FragmentIdent, Text: name})
	return c
}

// Ref appends a package-level name declared in pkgPath.
func (c *Code) Ref(pkgPath, name string) *Code {
	c.frags = append(c.frags, Fragment{Kind: FragmentTypeRef, Text: name, PkgPath: pkgPath})
	return c
}

// HostType appends a source model type.
func (c *Code) HostType(t analyze.Type) *Code {
	c.frags = append(c.frags, Fragment{Kind: FragmentTypeRef, Host: t})
	return c
}

// Type appends a type expression.
func (c *Code) Type(t Type) *Code {
	switch t := t.(type) {
	case HostType:
		c.HostType(t.T)
	case Named:
		c.Ref(t.PkgPath, t.Name)

		if len(t.Args) > 0 {
			c.Literal("[")
			for i, a := range t.Args {
				if i > 0 {
					c.Literal(", ")
				}

				c.Type(a)
			}

			c.Literal("]")
		}
	case Pointer:
		c.Literal("*").Type(t.Elem)
	case Slice:
		c.Literal("[]").Type(t.Elem)
	case nil:
		c.Literal("any")
	default:
		panic(fmt.Sprintf("emit: unexpected type node %T", t))
	}

	return c
}

// Expr appends an expression.
func (c *Code) Expr(e Expr) *Code {
	switch e := e.(type) {
	case Ident:
		c.Ident(e.Name)
	case Ref:
		c.Ref(e.PkgPath, e.Name)
	case Select:
		c.Expr(e.X).Literal(".").Ident(e.Sel)
	case Call:
		c.Expr(e.Fun).Literal("(")
		c.exprList(e.Args)

		if e.Ellipsis && len(e.Args) > 0 {
			c.Literal("...")
		}

		c.Literal(")")
	case Nil:
		c.Literal("nil")
	case AddrOf:
		c.Literal("&").Expr(e.X)
	case Composite:
		c.Type(e.Type).Literal("{")

		for i, kv := range e.Fields {
			if i > 0 {
				c.Literal(", ")
			}

			if kv.Key != "" {
				c.Ident(kv.Key).Literal(": ")
			}

			c.Expr(kv.Value)
		}

		c.Literal("}")
	case Lit:
		c.Literal(e.Value)
	case TypeExpr:
		if _, ptr := e.T.(Pointer); ptr {
			c.Literal("(").Type(e.T).Literal(")")
		} else {
			c.Type(e.T)
		}
	case Binary:
		c.Expr(e.X).Literal(" " + e.Op + " ").Expr(e.Y)
	case nil:
		c.Literal("nil")
	default:
		panic(fmt.Sprintf("emit: unexpected expression node %T", e))
	}

	return c
}

func (c *Code) exprList(list []Expr) {
	for i, e := range list {
		if i > 0 {
			c.Literal(", ")
		}

		c.Expr(e)
	}
}

// Stmt appends a statement without a trailing newline.
func (c *Code) Stmt(s Stmt) *Code {
	switch s := s.(type) {
	case Return:
		c.Literal("return")

		if len(s.Results) > 0 {
			c.Literal(" ")
			c.exprList(s.Results)
		}
	case ExprStmt:
		c.Expr(s.X)
	case Define:
		for i, n := range s.Names {
			if i > 0 {
				c.Literal(", ")
			}

			c.Ident(n)
		}

		c.Literal(" := ").Expr(s.Value)
	case Assign:
		c.Expr(s.LHS).Literal(" = ").Expr(s.RHS)
	case IfErrReturn:
		c.Literal("if ").Ident(s.Err).Literal(" != nil {\n")
		c.Stmt(Return{Results: s.Results})
		c.Literal("\n}")
	default:
		panic(fmt.Sprintf("emit: unexpected statement node %T", s))
	}

	return c
}

// Signature appends the header of m declared on decl, without the body.
func (c *Code) Signature(pkgPath string, decl *TypeDecl, m *Method) *Code {
	c.Literal("func ")

	if m.Recv != nil {
		c.Literal("(").Ident(m.Recv.Name).Literal(" ")

		if m.Recv.Pointer {
			c.Literal("*")
		}

		c.Ref(pkgPath, decl.Name).Literal(") ")
	}

	c.Ident(m.Name).Literal("(")

	for i, p := range m.Params {
		if i > 0 {
			c.Literal(", ")
		}

		if p.Name != "" {
			c.Ident(p.Name).Literal(" ")
		}

		c.param(p)
	}

	c.Literal(")")

	switch len(m.Results) {
	case 0:
	case 1:
		c.Literal(" ").Type(m.Results[0])
	default:
		c.Literal(" (")

		for i, r := range m.Results {
			if i > 0 {
				c.Literal(", ")
			}

			c.Type(r)
		}

		c.Literal(")")
	}

	return c
}

func (c *Code) param(p Param) {
	if !p.Variadic {
		c.Type(p.Type)
		return
	}

	c.Literal("...")

	switch t := p.Type.(type) {
	case Slice:
		c.Type(t.Elem)
	case HostType:
		c.frags = append(c.frags, Fragment{Kind: FragmentTypeRef, Host: t.T, Elem: true})
	default:
		c.Type(t)
	}
}

// String renders the tokens without import resolution: references are
// qualified by the last element of their package path.
func (c *Code) String() string {
	var sb strings.Builder

	for _, f := range c.frags {
		switch {
		case f.Kind != FragmentTypeRef:
			sb.WriteString(f.Text)
		case f.Host != nil && f.Elem:
			sb.WriteString(strings.TrimPrefix(f.Host.String(), "[]"))
		case f.Host != nil:
			sb.WriteString(f.Host.String())
		case f.PkgPath != "":
			sb.WriteString(common.PkgAlias(f.PkgPath) + "." + f.Text)
		default:
			sb.WriteString(f.Text)
		}
	}

	return sb.String()
}

// ExprString renders e with Code.String.
func ExprString(e Expr) string {
	var c Code
	return c.Expr(e).String()
}

// StmtString renders s with Code.String.
func StmtString(s Stmt) string {
	var c Code
	return c.Stmt(s).String()
}
