package analyze

import (
	"fmt"
	"go/token"
	"go/types"
	"reflect"
	"slices"
	"sort"
	"strings"
)

// TagKey is the struct tag key read from context fields; `adt:"-"` hides a
// field from implicit resolution.
const TagKey = "adt"

// TypesHost answers Host queries from go/types.
type TypesHost struct {
	fset      *token.FileSet
	packages  map[string]*types.Package
	objects   map[*Decl]types.Object
	implicits map[*types.Func][]string
}

var _ Host = (*TypesHost)(nil)

func newTypesHost(fset *token.FileSet) *TypesHost {
	return &TypesHost{
		fset:      fset,
		packages:  make(map[string]*types.Package),
		objects:   make(map[*Decl]types.Object),
		implicits: make(map[*types.Func][]string),
	}
}

func (h *TypesHost) addPackage(pkg *types.Package) {
	h.packages[pkg.Path()] = pkg
}

// IsAssignable reports go/types assignability. Types not produced by go/types
// are never assignable.
func (h *TypesHost) IsAssignable(from, to Type) bool {
	f, ok := from.(types.Type)
	if !ok {
		return false
	}

	t, ok := to.(types.Type)
	if !ok {
		return false
	}

	return types.AssignableTo(f, t)
}

// MembersOf enumerates the members relevant to the directive of decl:
// struct fields for case classes, exported fields and methods for contexts,
// constructors and methods for implicit classes.
func (h *TypesHost) MembersOf(decl *Decl) ([]*Element, error) {
	obj, ok := h.objects[decl]
	if !ok {
		return nil, h.introspectionError(decl, "declaration was not loaded by this host")
	}

	var (
		members []*Element
		err     error
	)

	switch decl.Directive.Kind {
	case DirectiveCase:
		members, err = h.caseMembers(decl, obj)
	case DirectiveContext:
		members, err = h.contextMembers(decl, obj)
	case DirectiveImplicitClass:
		members, err = h.classMembers(decl, obj)
	default:
		err = h.introspectionError(decl, fmt.Sprintf("no members for directive %q", decl.Directive.Kind))
	}

	if err != nil {
		return nil, err
	}

	sort.SliceStable(members, func(i, j int) bool {
		return positionLess(members[i].Pos, members[j].Pos)
	})

	return members, nil
}

func (h *TypesHost) caseMembers(decl *Decl, obj types.Object) ([]*Element, error) {
	st, ok := obj.Type().Underlying().(*types.Struct)
	if !ok {
		return nil, h.introspectionError(decl, "not a struct type")
	}

	members := make([]*Element, 0, st.NumFields())

	for i := range st.NumFields() {
		f := st.Field(i)
		if f.Name() == "_" {
			continue
		}

		members = append(members, h.fieldElement(f))
	}

	return members, nil
}

func (h *TypesHost) contextMembers(decl *Decl, obj types.Object) ([]*Element, error) {
	t := obj.Type()

	var members []*Element

	if st := structOf(t); st != nil {
		for i := range st.NumFields() {
			f := st.Field(i)
			if !f.Exported() || reflect.StructTag(st.Tag(i)).Get(TagKey) == "-" {
				continue
			}

			members = append(members, h.fieldElement(f))
		}
	}

	ms := types.NewMethodSet(addressable(t))
	for i := range ms.Len() {
		fn, ok := ms.At(i).Obj().(*types.Func)
		if !ok || !fn.Exported() {
			continue
		}

		el, err := h.funcElement(decl, fn, ElementMethod)
		if err != nil {
			return nil, err
		}

		members = append(members, el)
	}

	return members, nil
}

func (h *TypesHost) classMembers(decl *Decl, obj types.Object) ([]*Element, error) {
	named, ok := obj.Type().(*types.Named)
	if !ok {
		return nil, h.introspectionError(decl, "not a named type")
	}

	if named.TypeParams().Len() > 0 {
		return nil, h.introspectionError(decl, "generic implicit classes are not supported")
	}

	var members []*Element

	scope := obj.Pkg().Scope()
	for _, name := range scope.Names() {
		fn, ok := scope.Lookup(name).(*types.Func)
		if !ok || !strings.HasPrefix(name, "New"+decl.Name) || !isConstructorOf(fn, named) {
			continue
		}

		el, err := h.funcElement(decl, fn, ElementConstructor)
		if err != nil {
			return nil, err
		}

		members = append(members, el)
	}

	for i := range named.NumMethods() {
		el, err := h.funcElement(decl, named.Method(i), ElementMethod)
		if err != nil {
			return nil, err
		}

		members = append(members, el)
	}

	return members, nil
}

// isConstructorOf reports whether fn returns *named or (*named, error).
func isConstructorOf(fn *types.Func, named *types.Named) bool {
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() != nil || sig.TypeParams().Len() > 0 {
		return false
	}

	res := sig.Results()
	if res.Len() == 0 || res.Len() > 2 {
		return false
	}

	if !types.Identical(res.At(0).Type(), types.NewPointer(named)) {
		return false
	}

	return res.Len() == 1 || types.Identical(res.At(1).Type(), types.Universe.Lookup("error").Type())
}

func (h *TypesHost) fieldElement(f *types.Var) *Element {
	return &Element{
		Name:     f.Name(),
		Kind:     ElementField,
		Type:     f.Type(),
		Exported: f.Exported(),
		Pos:      h.fset.Position(f.Pos()),
	}
}

func (h *TypesHost) funcElement(decl *Decl, fn *types.Func, kind ElementKind) (*Element, error) {
	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return nil, h.introspectionError(decl, fmt.Sprintf("%s has no signature", fn.Name()))
	}

	el := signatureElement(fn.Name(), sig, h.implicits[fn])
	el.Kind = kind
	el.Exported = fn.Exported()
	el.Pos = h.fset.Position(fn.Pos())

	return el, nil
}

func signatureElement(name string, sig *types.Signature, implicit []string) *Element {
	el := &Element{
		Name:     name,
		Variadic: sig.Variadic(),
	}

	for i := range sig.Params().Len() {
		p := sig.Params().At(i)
		el.Params = append(el.Params, Param{
			Name:     p.Name(),
			Type:     p.Type(),
			Implicit: p.Name() != "" && slices.Contains(implicit, p.Name()),
		})
	}

	for i := range sig.Results().Len() {
		el.Results = append(el.Results, sig.Results().At(i).Type())
	}

	if len(el.Results) == 1 {
		el.Type = el.Results[0]
	}

	return el
}

// MethodsOf enumerates the methods of an interface, in source order where
// positions are known.
func (h *TypesHost) MethodsOf(iface Type) ([]*Element, error) {
	t, ok := iface.(types.Type)
	if !ok {
		return nil, &IntrospectionError{Decl: iface.String(), Reason: "not a go/types type"}
	}

	it, ok := t.Underlying().(*types.Interface)
	if !ok {
		return nil, &IntrospectionError{Decl: t.String(), Reason: "not an interface"}
	}

	if !it.IsMethodSet() {
		return nil, &IntrospectionError{Decl: t.String(), Reason: "constraint interfaces cannot be implemented"}
	}

	methods := make([]*Element, 0, it.NumMethods())

	for i := range it.NumMethods() {
		fn := it.Method(i)

		sig, ok := fn.Type().(*types.Signature)
		if !ok {
			continue
		}

		el := signatureElement(fn.Name(), sig, nil)
		el.Kind = ElementMethod
		el.Exported = fn.Exported()
		el.Pos = h.fset.Position(fn.Pos())
		methods = append(methods, el)
	}

	sort.SliceStable(methods, func(i, j int) bool {
		return positionLess(methods[i].Pos, methods[j].Pos)
	})

	return methods, nil
}

// LookupType resolves "Name", "pkgname.Name" or "import/path.Name" from the
// package of decl.
func (h *TypesHost) LookupType(decl *Decl, expr string) (Type, error) {
	obj, ok := h.objects[decl]
	if !ok {
		return nil, h.introspectionError(decl, "declaration was not loaded by this host")
	}

	pkg := obj.Pkg()

	var found types.Object

	if i := strings.LastIndex(expr, "."); i >= 0 {
		qual, name := expr[:i], expr[i+1:]

		for _, imp := range pkg.Imports() {
			if imp.Name() == qual || imp.Path() == qual {
				found = imp.Scope().Lookup(name)
				break
			}
		}

		if found == nil {
			if p, ok := h.packages[qual]; ok {
				found = p.Scope().Lookup(name)
			}
		}
	} else {
		found = pkg.Scope().Lookup(expr)
		if found == nil {
			found = types.Universe.Lookup(expr)
		}
	}

	tn, ok := found.(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("type %q is not visible from package %s", expr, pkg.Path())
	}

	return tn.Type(), nil
}

func (h *TypesHost) introspectionError(decl *Decl, reason string) error {
	return &IntrospectionError{Decl: decl.QualifiedName(), Pos: decl.Pos, Reason: reason}
}

// addressable returns the type whose method set a package-level variable of
// type t can call: *t, unless t is already a pointer or an interface.
func addressable(t types.Type) types.Type {
	switch t.Underlying().(type) {
	case *types.Pointer, *types.Interface:
		return t
	}

	return types.NewPointer(t)
}

// structOf returns the struct underlying t or *t, if any.
func structOf(t types.Type) *types.Struct {
	if p, ok := t.Underlying().(*types.Pointer); ok {
		t = p.Elem()
	}

	st, _ := t.Underlying().(*types.Struct)

	return st
}
