package emit

import "slices"

// Param is one parameter of a generated method.
type Param struct {
	Name     string
	Type     Type
	Variadic bool
}

// Receiver binds a method to its TypeDecl.
type Receiver struct {
	Name    string
	Pointer bool
}

// Method is a generated method, or a plain function when Recv is nil.
type Method struct {
	Doc     string
	Name    string
	Recv    *Receiver
	Params  []Param
	Results []Type
	Body    []Stmt
}

// IsConstructor reports whether m is a receiver-less function.
func (m *Method) IsConstructor() bool { return m.Recv == nil }

// Field is a struct field; an empty Name embeds Type.
type Field struct {
	Name string
	Type Type
}

// TypeDecl is one generated struct type with its methods.
type TypeDecl struct {
	Name   string
	Doc    string
	Source string // qualified name of the declaration it was generated from

	supers  []Type
	fields  []Field
	methods []*Method
}

// NewTypeDecl starts a generated type.
func NewTypeDecl(name, source string) *TypeDecl {
	return &TypeDecl{Name: name, Source: source}
}

// AddSuperinterface declares that the type implements iface.
func (d *TypeDecl) AddSuperinterface(iface Type) { d.supers = append(d.supers, iface) }

// AddField appends a struct field.
func (d *TypeDecl) AddField(f Field) { d.fields = append(d.fields, f) }

// AddMethod appends a method or constructor.
func (d *TypeDecl) AddMethod(m *Method) { d.methods = append(d.methods, m) }

// Superinterfaces returns the declared interfaces in insertion order.
func (d *TypeDecl) Superinterfaces() []Type { return d.supers }

// Fields returns the struct fields in insertion order.
func (d *TypeDecl) Fields() []Field { return d.fields }

// Methods returns methods and constructors in insertion order.
func (d *TypeDecl) Methods() []*Method { return d.methods }

// HasMethod reports whether a method or function called name was added.
func (d *TypeDecl) HasMethod(name string) bool {
	return slices.ContainsFunc(d.methods, func(m *Method) bool { return m.Name == name })
}

// SelfType is the generated type itself.
func (d *TypeDecl) SelfType(pkgPath string) Type {
	return Named{PkgPath: pkgPath, Name: d.Name}
}

// File is the generated output of one package.
type File struct {
	PkgPath string
	PkgName string
	Dir     string
	Decls   []*TypeDecl
}

// Add appends decl.
func (f *File) Add(decl *TypeDecl) { f.Decls = append(f.Decls, decl) }
