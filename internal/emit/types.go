package emit

import "adtgen/internal/analyze"

// Type is a type expression in generated code.
type Type interface {
	typeNode()
}

// HostType is a type taken from the source model.
type HostType struct {
	T analyze.Type
}

// Named is a package-level type, possibly instantiated. An empty PkgPath
// names a predeclared type.
type Named struct {
	PkgPath string
	Name    string
	Args    []Type
}

// Pointer is *Elem.
type Pointer struct {
	Elem Type
}

// Slice is []Elem. In a variadic parameter it is rendered as ...Elem.
type Slice struct {
	Elem Type
}

func (HostType) typeNode() {}
func (Named) typeNode()    {}
func (Pointer) typeNode()  {}
func (Slice) typeNode()    {}

// Host wraps a source model type; a nil t yields nil.
func Host(t analyze.Type) Type {
	if t == nil {
		return nil
	}

	return HostType{T: t}
}

// Builtin names a predeclared type such as error or bool.
func Builtin(name string) Type { return Named{Name: name} }
