// Package analyzetest provides an in-memory analyze.Host for tests of the
// packages that consume the source model.
package analyzetest

import (
	"fmt"
	"go/token"

	"adtgen/internal/analyze"
)

// Type is a host type identified by its name.
type Type string

func (t Type) String() string { return string(t) }

// Host is a declarative analyze.Host. Every type is assignable to itself;
// further relations are registered with Assignable.
type Host struct {
	members    map[*analyze.Decl][]*analyze.Element
	failures   map[*analyze.Decl]error
	methods    map[string][]*analyze.Element
	types      map[string]analyze.Type
	assignable map[[2]string]bool
	offset     int
}

var _ analyze.Host = (*Host)(nil)

// NewHost returns an empty host.
func NewHost() *Host {
	return &Host{
		members:    make(map[*analyze.Decl][]*analyze.Element),
		failures:   make(map[*analyze.Decl]error),
		methods:    make(map[string][]*analyze.Element),
		types:      make(map[string]analyze.Type),
		assignable: make(map[[2]string]bool),
	}
}

// Assignable registers from as assignable to each of to.
func (h *Host) Assignable(from analyze.Type, to ...analyze.Type) *Host {
	for _, t := range to {
		h.assignable[[2]string{from.String(), t.String()}] = true
	}

	return h
}

// Interface registers an interface type with its methods.
func (h *Host) Interface(t Type, methods ...*analyze.Element) *Host {
	h.types[t.String()] = t
	h.methods[t.String()] = methods

	return h
}

// Decl declares an annotated declaration in package pkgPath. Positions
// increase with every call, so declarations sort in creation order.
func (h *Host) Decl(pkgPath, name, directive string, args ...analyze.Arg) *analyze.Decl {
	h.offset += 100

	kind := analyze.DeclType
	if directive == analyze.DirectiveContext {
		kind = analyze.DeclVar
	}

	return &analyze.Decl{
		Name:      name,
		Kind:      kind,
		Pkg:       &analyze.PackageInfo{Path: pkgPath, Name: lastElem(pkgPath)},
		Type:      Type(name),
		Directive: analyze.Directive{Kind: directive, Args: args},
		Pos:       token.Position{Filename: pkgPath + "/file.go", Offset: h.offset, Line: h.offset / 100},
	}
}

// Members sets the members reported for decl.
func (h *Host) Members(decl *analyze.Decl, els ...*analyze.Element) *Host {
	h.members[decl] = els
	return h
}

// Fail makes MembersOf(decl) fail with an introspection error.
func (h *Host) Fail(decl *analyze.Decl, reason string) *Host {
	h.failures[decl] = &analyze.IntrospectionError{Decl: decl.QualifiedName(), Pos: decl.Pos, Reason: reason}
	return h
}

func (h *Host) IsAssignable(from, to analyze.Type) bool {
	if from == nil || to == nil {
		return false
	}

	return from.String() == to.String() || h.assignable[[2]string{from.String(), to.String()}]
}

func (h *Host) MembersOf(decl *analyze.Decl) ([]*analyze.Element, error) {
	if err, ok := h.failures[decl]; ok {
		return nil, err
	}

	return h.members[decl], nil
}

func (h *Host) MethodsOf(iface analyze.Type) ([]*analyze.Element, error) {
	methods, ok := h.methods[iface.String()]
	if !ok {
		return nil, &analyze.IntrospectionError{Decl: iface.String(), Reason: "not an interface"}
	}

	return methods, nil
}

func (h *Host) LookupType(decl *analyze.Decl, expr string) (analyze.Type, error) {
	if t, ok := h.types[expr]; ok {
		return t, nil
	}

	return nil, fmt.Errorf("type %q is not visible from package %s", expr, decl.Pkg.Path)
}

// Field returns a field element.
func Field(name string, t analyze.Type) *analyze.Element {
	return &analyze.Element{Name: name, Kind: analyze.ElementField, Type: t, Exported: token.IsExported(name)}
}

// Method returns a method element. A nil result makes it void.
func Method(name string, result analyze.Type, params ...analyze.Param) *analyze.Element {
	el := &analyze.Element{Name: name, Kind: analyze.ElementMethod, Params: params, Exported: token.IsExported(name)}
	if result != nil {
		el.Type = result
		el.Results = []analyze.Type{result}
	}

	return el
}

// Constructor returns a constructor element with the given results.
func Constructor(name string, results []analyze.Type, params ...analyze.Param) *analyze.Element {
	el := &analyze.Element{
		Name:     name,
		Kind:     analyze.ElementConstructor,
		Results:  results,
		Params:   params,
		Exported: token.IsExported(name),
	}
	if len(results) == 1 {
		el.Type = results[0]
	}

	return el
}

// Variadic marks the last parameter of el as variadic.
func Variadic(el *analyze.Element) *analyze.Element {
	el.Variadic = true
	return el
}

// P returns an explicit parameter.
func P(name string, t analyze.Type) analyze.Param {
	return analyze.Param{Name: name, Type: t}
}

// Implicit returns an implicit parameter.
func Implicit(name string, t analyze.Type) analyze.Param {
	return analyze.Param{Name: name, Type: t, Implicit: true}
}

func lastElem(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}

	return path
}
