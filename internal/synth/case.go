package synth

import (
	"fmt"
	"strconv"

	"adtgen/internal/diagnostic"
	"adtgen/internal/emit"
	"adtgen/internal/spec"
)

// caseField is one field of a generated case class.
type caseField struct {
	field    string // unexported storage field
	accessor string // exported getter
	param    string // constructor and setter parameter
	typ      emit.Type
}

// CaseClass generates the immutable value type for the //adt:case struct sp.
func (s *Synthesizer) CaseClass(sp *spec.Spec) (*emit.TypeDecl, bool) {
	name, ok := s.name(sp)
	if !ok {
		return nil, false
	}

	fields, ok := s.caseFields(sp)
	if !ok {
		return nil, false
	}

	pkgPath := sp.PkgPath()
	self := emit.Named{PkgPath: pkgPath, Name: name}

	d := emit.NewTypeDecl(name, sp.Decl.QualifiedName())
	d.Doc = fmt.Sprintf("%s is an immutable value built from the fields of %s.", name, sp.Name())

	taken := []string{"o"}
	for _, f := range fields {
		taken = append(taken, f.param)
	}

	recv := newNames(taken...).fresh(receiverName(name))
	me := emit.Ident{Name: recv}
	byValue := &emit.Receiver{Name: recv}

	ctor := &emit.Method{
		Doc:     fmt.Sprintf("New%s returns a %s holding the given values.", name, name),
		Name:    "New" + name,
		Results: []emit.Type{self},
	}
	lit := emit.Composite{Type: self}

	for _, f := range fields {
		d.AddField(emit.Field{Name: f.field, Type: f.typ})
		ctor.Params = append(ctor.Params, emit.Param{Name: f.param, Type: f.typ})
		lit.Fields = append(lit.Fields, emit.KeyValue{Key: f.field, Value: emit.Ident{Name: f.param}})
	}

	ctor.Body = []emit.Stmt{emit.Return{Results: []emit.Expr{lit}}}
	d.AddMethod(ctor)

	for _, f := range fields {
		d.AddMethod(&emit.Method{
			Doc:     fmt.Sprintf("%s returns the %s field.", f.accessor, f.field),
			Name:    f.accessor,
			Recv:    byValue,
			Results: []emit.Type{f.typ},
			Body:    []emit.Stmt{emit.Return{Results: []emit.Expr{emit.Select{X: me, Sel: f.field}}}},
		})
	}

	for _, f := range fields {
		d.AddMethod(&emit.Method{
			Doc:     fmt.Sprintf("With%s returns a copy with %s replaced.", f.accessor, f.field),
			Name:    "With" + f.accessor,
			Recv:    byValue,
			Params:  []emit.Param{{Name: f.param, Type: f.typ}},
			Results: []emit.Type{self},
			Body: []emit.Stmt{
				emit.Assign{LHS: emit.Select{X: me, Sel: f.field}, RHS: emit.Ident{Name: f.param}},
				emit.Return{Results: []emit.Expr{me}},
			},
		})
	}

	if !s.arity(sp, name, len(fields)) {
		return d, true
	}

	s.addTupleMethods(d, self, me, byValue, fields)

	return d, true
}

func (s *Synthesizer) addTupleMethods(d *emit.TypeDecl, self emit.Type, me emit.Expr, recv *emit.Receiver, fields []caseField) {
	n := strconv.Itoa(len(fields))
	tupleType := emit.Named{PkgPath: s.opts.TuplePkg, Name: "Tuple" + n}
	of := emit.Call{Fun: emit.Ref{PkgPath: s.opts.TuplePkg, Name: "Of" + n}}

	for _, f := range fields {
		tupleType.Args = append(tupleType.Args, f.typ)
		of.Args = append(of.Args, emit.Select{X: me, Sel: f.field})
	}

	unapply := func(x emit.Expr) emit.Expr {
		return emit.CallOf(emit.Select{X: x, Sel: "Unapply"})
	}
	other := emit.Ident{Name: "o"}

	d.AddMethod(&emit.Method{
		Doc:     "Unapply returns the fields as a tuple, in declaration order.",
		Name:    "Unapply",
		Recv:    recv,
		Results: []emit.Type{tupleType},
		Body:    []emit.Stmt{emit.Return{Results: []emit.Expr{of}}},
	})

	d.AddMethod(&emit.Method{
		Doc:     "Equal reports whether both values hold equal fields.",
		Name:    "Equal",
		Recv:    recv,
		Params:  []emit.Param{{Name: "o", Type: self}},
		Results: []emit.Type{emit.Builtin("bool")},
		Body: []emit.Stmt{emit.Return{Results: []emit.Expr{
			emit.CallOf(emit.Select{X: unapply(me), Sel: "Equal"}, unapply(other)),
		}}},
	})

	d.AddMethod(&emit.Method{
		Doc:     "Compare orders values field by field.",
		Name:    "Compare",
		Recv:    recv,
		Params:  []emit.Param{{Name: "o", Type: self}},
		Results: []emit.Type{emit.Builtin("int")},
		Body: []emit.Stmt{emit.Return{Results: []emit.Expr{
			emit.CallOf(emit.Select{X: unapply(me), Sel: "Compare"}, unapply(other)),
		}}},
	})

	d.AddMethod(&emit.Method{
		Doc:     fmt.Sprintf("String formats the value as %s(v1, v2, ...).", d.Name),
		Name:    "String",
		Recv:    recv,
		Results: []emit.Type{emit.Builtin("string")},
		Body: []emit.Stmt{emit.Return{Results: []emit.Expr{emit.Binary{
			X:  emit.Lit{Value: strconv.Quote(d.Name)},
			Op: "+",
			Y:  emit.CallOf(emit.Select{X: unapply(me), Sel: "String"}),
		}}}},
	})
}

var reservedCaseMethods = []string{"Unapply", "Equal", "Compare", "String"}

// caseFields derives storage, accessor and parameter names, rejecting
// collisions between them.
func (s *Synthesizer) caseFields(sp *spec.Spec) ([]caseField, bool) {
	var fields []caseField

	methods := newNames(reservedCaseMethods...)
	storage := newNames()

	for _, it := range sp.Items() {
		if !it.IsField() {
			continue
		}

		f := caseField{
			field:    fieldName(it.Name),
			accessor: exportName(it.Name),
			param:    localName(it.Name),
			typ:      emit.Host(it.Type),
		}

		if storage[f.field] {
			s.duplicate(sp, "field", f.field)
			return nil, false
		}

		if methods[f.accessor] || methods["With"+f.accessor] {
			s.duplicate(sp, "method", f.accessor)
			return nil, false
		}

		storage[f.field] = true
		methods[f.accessor] = true
		methods["With"+f.accessor] = true

		fields = append(fields, f)
	}

	if len(fields) == 0 {
		s.diags.AddError(diagnostic.CodeEmptySpec, "case class "+sp.Name()+" has no fields",
			sp.Decl.QualifiedName(), sp.Decl.Pos)

		return nil, false
	}

	return fields, true
}
