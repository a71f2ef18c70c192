package analyze

import (
	"fmt"
	"go/token"

	"adtgen/internal/common"
	"adtgen/internal/diagnostic"
)

// Type is an opaque host type. Values produced by TypesHost are go/types
// types; tests may use any implementation.
type Type interface {
	String() string
}

// Host is the oracle over the source model.
type Host interface {
	// IsAssignable reports whether a value of type from may be assigned to
	// a variable of type to.
	IsAssignable(from, to Type) bool
	// MembersOf enumerates the eligible members of decl in declaration order.
	MembersOf(decl *Decl) ([]*Element, error)
	// MethodsOf enumerates the methods of an interface type.
	MethodsOf(iface Type) ([]*Element, error)
	// LookupType resolves a type expression such as "io.Writer" or "Greeter"
	// as seen from the package of decl.
	LookupType(decl *Decl, expr string) (Type, error)
}

//go:generate go tool stringer -type=ElementKind -trimprefix=Element -output=elementkind_string.go

// ElementKind classifies a member of a declaration.
type ElementKind int

const (
	ElementField       ElementKind = iota // struct field
	ElementMethod                         // method with a receiver
	ElementConstructor                    // New<Type>... function returning *Type
)

// Param is one parameter of a method or constructor.
type Param struct {
	Name     string
	Type     Type
	Implicit bool // marked by an //adt:implicit directive
}

// Element is one member of a declaration.
type Element struct {
	Name     string
	Kind     ElementKind
	Type     Type   // field type, or the single result of a method; nil otherwise
	Results  []Type // all results of a method or constructor
	Params   []Param
	Variadic bool // last parameter is variadic
	Exported bool
	Pos      token.Position
}

// IsVoid reports whether a method returns nothing.
func (e *Element) IsVoid() bool {
	return e.Kind != ElementField && len(e.Results) == 0
}

// HasImplicitParams reports whether any parameter is marked implicit.
func (e *Element) HasImplicitParams() bool {
	for _, p := range e.Params {
		if p.Implicit {
			return true
		}
	}

	return false
}

// DeclKind is the shape of an annotated declaration.
type DeclKind int

const (
	DeclType DeclKind = iota // named struct type
	DeclVar                  // package-level variable
)

// String returns a human-readable representation of the DeclKind.
func (k DeclKind) String() string {
	switch k {
	case DeclType:
		return "type"
	case DeclVar:
		return "var"
	default:
		return common.UnknownStr
	}
}

// Decl is one annotated declaration.
type Decl struct {
	Name      string
	Kind      DeclKind
	Pkg       *PackageInfo
	Type      Type // the named type, or the declared type of a var
	Directive Directive
	Pos       token.Position
}

// QualifiedName returns "pkgpath.Name".
func (d *Decl) QualifiedName() string {
	if d.Pkg == nil || d.Pkg.Path == "" {
		return d.Name
	}

	return d.Pkg.Path + "." + d.Name
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path string // Import path
	Name string // Package name
	Dir  string // Directory holding the package sources
}

// Program is the result of loading: every annotated declaration plus the host
// that can answer questions about them.
type Program struct {
	Packages    []*PackageInfo
	Decls       []*Decl
	Host        Host
	Diagnostics diagnostic.Diagnostics
}

// IntrospectionError reports a declaration whose shape the host cannot
// classify. It is fatal for that declaration only.
type IntrospectionError struct {
	Decl   string
	Pos    token.Position
	Reason string
}

func (e *IntrospectionError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: cannot introspect %s: %s", e.Pos, e.Decl, e.Reason)
	}

	return fmt.Sprintf("cannot introspect %s: %s", e.Decl, e.Reason)
}
