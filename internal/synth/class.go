package synth

import (
	"fmt"
	"strings"

	"adtgen/internal/common"
	"adtgen/internal/diagnostic"
	"adtgen/internal/emit"
	"adtgen/internal/implicit"
	"adtgen/internal/spec"
)

// ImplicitClass generates the type extending the implicit-class base sp.
// The generated type embeds *Base, so members without implicit parameters
// are promoted unchanged; constructors and members with implicit parameters
// get forwarding counterparts.
func (s *Synthesizer) ImplicitClass(sp *spec.Spec) (*emit.TypeDecl, bool) {
	name, ok := s.name(sp)
	if !ok {
		return nil, false
	}

	pkgPath := sp.PkgPath()
	base := sp.Name()

	d := emit.NewTypeDecl(name, sp.Decl.QualifiedName())
	d.Doc = fmt.Sprintf("%s is %s with its implicit arguments supplied from context.", name, base)
	d.AddField(emit.Field{Type: emit.Pointer{Elem: emit.Named{PkgPath: pkgPath, Name: base}}})

	for _, it := range sp.Items() {
		switch {
		case it.IsConstructor():
			s.forwardConstructor(sp, d, it)
		case it.HasImplicitParams():
			if d.HasMethod(it.Name) {
				s.duplicate(sp, "method", it.Name)
				continue
			}

			s.forwardMethod(sp, d, it)
		}
	}

	for _, iface := range sp.Reader.List(ImplementsKey) {
		s.implementInterface(sp, d, iface)
	}

	return d, true
}

// forwardedCall builds the call to the super member: explicit parameters are
// passed by name in their original slot, implicit ones are replaced by the
// resolved provider expression and dropped from the signature.
func (s *Synthesizer) forwardedCall(sp *spec.Spec, it *spec.Item, fun emit.Expr, used names) ([]emit.Param, emit.Call) {
	site := implicit.Site{Subject: sp.Name() + "." + it.Name, PkgPath: sp.PkgPath(), Pos: it.Pos}
	call := emit.Call{Fun: fun, Ellipsis: it.Variadic()}

	var params []emit.Param

	for i, p := range it.Params {
		if p.Implicit {
			expr, _ := s.resolver.Resolve(p.Type, site)
			call.Args = append(call.Args, expr)

			continue
		}

		pname := used.fresh(paramName(i, p.Name))
		params = append(params, emit.Param{Name: pname, Type: emit.Host(p.Type), Variadic: p.Variadic})
		call.Args = append(call.Args, emit.Ident{Name: pname})
	}

	return params, call
}

func (s *Synthesizer) forwardConstructor(sp *spec.Spec, d *emit.TypeDecl, it *spec.Item) {
	pkgPath := sp.PkgPath()
	base := sp.Name()
	name := "New" + d.Name + strings.TrimPrefix(it.Name, "New"+base)

	if d.HasMethod(name) {
		s.duplicate(sp, "constructor", name)
		return
	}

	used := newNames(s.reserved(pkgPath, d.Name, it.Name)...)
	params, call := s.forwardedCall(sp, it, emit.Ref{PkgPath: pkgPath, Name: it.Name}, used)
	self := emit.Pointer{Elem: d.SelfType(pkgPath)}

	wrap := func(b emit.Expr) emit.Expr {
		return emit.AddrOf{X: emit.Composite{
			Type:   d.SelfType(pkgPath),
			Fields: []emit.KeyValue{{Key: base, Value: b}},
		}}
	}

	m := &emit.Method{
		Doc:    fmt.Sprintf("%s wraps %s%s.", name, it.Name, implicitNote(it)),
		Name:   name,
		Params: params,
	}

	if len(it.Results) == 2 {
		b, errName := used.fresh(receiverName(base)), used.fresh("err")
		m.Results = []emit.Type{self, emit.Builtin("error")}
		m.Body = []emit.Stmt{
			emit.Define{Names: []string{b, errName}, Value: call},
			emit.IfErrReturn{Err: errName, Results: []emit.Expr{emit.Nil{}, emit.Ident{Name: errName}}},
			emit.Return{Results: []emit.Expr{wrap(emit.Ident{Name: b}), emit.Nil{}}},
		}
	} else {
		m.Results = []emit.Type{self}
		m.Body = []emit.Stmt{emit.Return{Results: []emit.Expr{wrap(call)}}}
	}

	d.AddMethod(m)
}

func (s *Synthesizer) forwardMethod(sp *spec.Spec, d *emit.TypeDecl, it *spec.Item) {
	recv := s.receiver(sp, d)
	used := newNames(s.reserved(sp.PkgPath(), recv)...)
	params, call := s.forwardedCall(sp, it, emit.Sel(emit.Ident{Name: recv}, sp.Name(), it.Name), used)

	d.AddMethod(&emit.Method{
		Doc:     fmt.Sprintf("%s calls %s.%s%s.", it.Name, sp.Name(), it.Name, implicitNote(it)),
		Name:    it.Name,
		Recv:    &emit.Receiver{Name: recv, Pointer: true},
		Params:  params,
		Results: hostTypes(it.Results),
		Body:    delegate(call, it.IsVoid()),
	})
}

// receiver names the receiver of the forwarders of d so that it does not
// hide a context variable the bodies refer to.
func (s *Synthesizer) receiver(sp *spec.Spec, d *emit.TypeDecl) string {
	return newNames(s.reserved(sp.PkgPath())...).fresh(receiverName(d.Name))
}

// reserved lists the identifiers that bodies generated in pkgPath may use
// unqualified or as a package qualifier: same-package contexts by name,
// others by their import name. Locals must not shadow them.
func (s *Synthesizer) reserved(pkgPath string, extra ...string) []string {
	var out []string

	for _, c := range s.catalog.OfKind(spec.KindContext) {
		if c.PkgPath() == pkgPath {
			out = append(out, c.Name())
		} else {
			out = append(out, common.PkgAlias(c.PkgPath()))
		}
	}

	return append(out, extra...)
}

// delegate returns the call, or only evaluates it when there is no result.
func delegate(call emit.Call, void bool) []emit.Stmt {
	if void {
		return []emit.Stmt{emit.ExprStmt{X: call}}
	}

	return []emit.Stmt{emit.Return{Results: []emit.Expr{call}}}
}

func implicitNote(it *spec.Item) string {
	var implicit []string

	for _, p := range it.Params {
		if p.Implicit {
			implicit = append(implicit, p.Name)
		}
	}

	if len(implicit) == 0 {
		return ""
	}

	return " with " + strings.Join(implicit, ", ") + " resolved implicitly"
}

// implementInterface makes d implement the interface named by expr by
// forwarding every method to the unique provider assignable to it.
func (s *Synthesizer) implementInterface(sp *spec.Spec, d *emit.TypeDecl, expr string) {
	subject := sp.Name() + " implements " + expr

	t, err := s.host.LookupType(sp.Decl, expr)
	if err != nil {
		s.diags.AddError(diagnostic.CodeInvalidDirective, err.Error(), subject, sp.Decl.Pos)
		return
	}

	provider, err := s.resolver.Try(t, sp.PkgPath())
	if err != nil {
		s.skipInterface(sp, subject, err)
		return
	}

	methods, err := s.host.MethodsOf(t)
	if err != nil {
		s.introspection(sp, err)
		return
	}

	for _, m := range methods {
		if d.HasMethod(m.Name) {
			s.duplicate(sp, "method", m.Name)
			return
		}
	}

	d.AddSuperinterface(emit.Host(t))

	recv := s.receiver(sp, d)

	for _, m := range methods {
		used := newNames(s.reserved(sp.PkgPath(), recv)...)
		call := emit.Call{Fun: emit.Select{X: provider, Sel: m.Name}, Ellipsis: m.Variadic}

		var params []emit.Param

		for i, p := range m.Params {
			pname := used.fresh(paramName(i, p.Name))
			params = append(params, emit.Param{
				Name:     pname,
				Type:     emit.Host(p.Type),
				Variadic: m.Variadic && i == len(m.Params)-1,
			})
			call.Args = append(call.Args, emit.Ident{Name: pname})
		}

		d.AddMethod(&emit.Method{
			Doc:     fmt.Sprintf("%s implements %s.", m.Name, expr),
			Name:    m.Name,
			Recv:    &emit.Receiver{Name: recv, Pointer: true},
			Params:  params,
			Results: hostTypes(m.Results),
			Body:    delegate(call, len(m.Results) == 0),
		})
	}
}

func (s *Synthesizer) skipInterface(sp *spec.Spec, subject string, err error) {
	msg := "interface skipped: " + err.Error()

	var suggestions []string
	if rerr, ok := err.(*implicit.Error); ok {
		suggestions = rerr.Suggestions()
	}

	switch s.opts.InterfacePolicy {
	case PolicyError:
		s.resolver.Report(err, implicit.Site{Subject: subject, PkgPath: sp.PkgPath(), Pos: sp.Decl.Pos})
	case PolicyWarn:
		s.diags.AddWarning(diagnostic.CodeInterfaceSkipped, msg, subject, sp.Decl.Pos, suggestions...)
	default:
		s.diags.AddInfo(diagnostic.CodeInterfaceSkipped, msg, subject, sp.Decl.Pos)
	}
}
