package spec

import (
	"errors"
	"fmt"
	"go/token"

	"adtgen/internal/analyze"
	"adtgen/internal/common"
)

// ErrEmpty is returned by Build for a declaration without eligible members.
var ErrEmpty = errors.New("declaration has no eligible members")

// Kind is the role of a spec in generation.
type Kind int

const (
	KindCase          Kind = iota // //adt:case struct
	KindContext                   // //adt:context variable, an implicit provider
	KindImplicitClass             // //adt:implicit-class base struct
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindCase:
		return "case"
	case KindContext:
		return "context"
	case KindImplicitClass:
		return "implicit-class"
	default:
		return common.UnknownStr
	}
}

// KindOf maps a directive kind to a spec kind.
func KindOf(directive string) (Kind, bool) {
	switch directive {
	case analyze.DirectiveCase:
		return KindCase, true
	case analyze.DirectiveContext:
		return KindContext, true
	case analyze.DirectiveImplicitClass:
		return KindImplicitClass, true
	default:
		return 0, false
	}
}

// Param is one parameter of a method or constructor item.
type Param struct {
	Name     string
	Type     analyze.Type
	Implicit bool
	Variadic bool
}

// Item is one field, method or constructor of a spec.
type Item struct {
	Name     string
	Kind     analyze.ElementKind
	Type     analyze.Type // field type or single result; nil otherwise
	Results  []analyze.Type
	Params   []Param
	Exported bool
	Pos      token.Position
}

// IsField reports whether the item is a field.
func (it *Item) IsField() bool { return it.Kind == analyze.ElementField }

// IsConstructor reports whether the item is a constructor function.
func (it *Item) IsConstructor() bool { return it.Kind == analyze.ElementConstructor }

// IsVoid reports whether a method returns nothing.
func (it *Item) IsVoid() bool { return !it.IsField() && len(it.Results) == 0 }

// Variadic reports whether the last parameter is variadic.
func (it *Item) Variadic() bool {
	return len(it.Params) > 0 && it.Params[len(it.Params)-1].Variadic
}

// HasImplicitParams reports whether any parameter is resolved implicitly.
func (it *Item) HasImplicitParams() bool {
	for _, p := range it.Params {
		if p.Implicit {
			return true
		}
	}

	return false
}

// Spec describes one annotated declaration.
type Spec struct {
	Decl   *analyze.Decl
	Kind   Kind
	Reader Reader

	items []*Item
}

// Build enumerates the eligible members of decl through host, preserving
// declaration order. Introspection failures are returned as
// *analyze.IntrospectionError; a declaration without members yields ErrEmpty
// together with the (empty) spec.
func Build(host analyze.Host, decl *analyze.Decl) (*Spec, error) {
	kind, ok := KindOf(decl.Directive.Kind)
	if !ok {
		return nil, &analyze.IntrospectionError{
			Decl:   decl.QualifiedName(),
			Pos:    decl.Pos,
			Reason: fmt.Sprintf("directive %q does not describe a spec", decl.Directive.Kind),
		}
	}

	elements, err := host.MembersOf(decl)
	if err != nil {
		return nil, err
	}

	s := &Spec{
		Decl:   decl,
		Kind:   kind,
		Reader: NewReader(decl.Directive.Args),
		items:  make([]*Item, 0, len(elements)),
	}

	for _, el := range elements {
		s.items = append(s.items, newItem(el))
	}

	if len(s.items) == 0 {
		return s, fmt.Errorf("%s: %w", decl.QualifiedName(), ErrEmpty)
	}

	return s, nil
}

func newItem(el *analyze.Element) *Item {
	it := &Item{
		Name:     el.Name,
		Kind:     el.Kind,
		Type:     el.Type,
		Results:  el.Results,
		Exported: el.Exported,
		Pos:      el.Pos,
	}

	for i, p := range el.Params {
		it.Params = append(it.Params, Param{
			Name:     p.Name,
			Type:     p.Type,
			Implicit: p.Implicit,
			Variadic: el.Variadic && i == len(el.Params)-1,
		})
	}

	return it
}

// Items returns the members in declaration order. The same slice is returned
// on every call; callers must not modify it.
func (s *Spec) Items() []*Item { return s.items }

// Name returns the declared name.
func (s *Spec) Name() string { return s.Decl.Name }

// PkgPath returns the import path of the declaring package.
func (s *Spec) PkgPath() string {
	if s.Decl.Pkg == nil {
		return ""
	}

	return s.Decl.Pkg.Path
}

// Item returns the member called name.
func (s *Spec) Item(name string) (*Item, bool) {
	for _, it := range s.items {
		if it.Name == name {
			return it, true
		}
	}

	return nil, false
}
