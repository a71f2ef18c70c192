package synth

import (
	"errors"
	"fmt"
	"slices"

	"adtgen/internal/analyze"
	"adtgen/internal/diagnostic"
	"adtgen/internal/emit"
	"adtgen/internal/implicit"
	"adtgen/internal/match"
	"adtgen/internal/spec"
	"adtgen/tuple"
)

// ArityError reports a case class with more fields than the tuple family
// supports.
type ArityError struct {
	Type  string
	Arity int
	Max   int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("case class %s has %d fields, tuples support at most %d", e.Type, e.Arity, e.Max)
}

// Synthesizer generates declarations for the specs of one catalog.
type Synthesizer struct {
	host     analyze.Host
	catalog  *spec.Catalog
	resolver *implicit.Resolver
	diags    *diagnostic.Diagnostics
	opts     Options
}

// New creates a synthesizer. Problems are recorded in diags.
func New(
	host analyze.Host,
	catalog *spec.Catalog,
	resolver *implicit.Resolver,
	diags *diagnostic.Diagnostics,
	opts Options,
) *Synthesizer {
	return &Synthesizer{
		host:     host,
		catalog:  catalog,
		resolver: resolver,
		diags:    diags,
		opts:     opts.withDefaults(),
	}
}

// Run synthesizes every case class and implicit class of the catalog and
// groups the declarations into one file per package, in catalog order.
// Specs that fail structurally contribute no declaration.
func (s *Synthesizer) Run() []*emit.File {
	var files []*emit.File

	byPkg := make(map[string]*emit.File)
	taken := make(map[string]map[string]string)

	for _, sp := range s.catalog.Specs() {
		s.checkArgs(sp)

		var (
			decl *emit.TypeDecl
			ok   bool
		)

		switch sp.Kind {
		case spec.KindCase:
			decl, ok = s.CaseClass(sp)
		case spec.KindImplicitClass:
			decl, ok = s.ImplicitClass(sp)
		default:
			continue
		}

		if !ok {
			continue
		}

		pkgPath := sp.PkgPath()

		if taken[pkgPath] == nil {
			taken[pkgPath] = make(map[string]string)
		}

		if prev, dup := taken[pkgPath][decl.Name]; dup {
			s.diags.AddError(diagnostic.CodeDuplicateName,
				fmt.Sprintf("type %s is generated from both %s and %s", decl.Name, prev, sp.Name()),
				sp.Decl.QualifiedName(), sp.Decl.Pos)

			continue
		}

		taken[pkgPath][decl.Name] = sp.Name()

		f, exists := byPkg[pkgPath]
		if !exists {
			f = &emit.File{PkgPath: pkgPath}
			if sp.Decl.Pkg != nil {
				f.PkgName = sp.Decl.Pkg.Name
				f.Dir = sp.Decl.Pkg.Dir
			}

			byPkg[pkgPath] = f
			files = append(files, f)
		}

		f.Add(decl)
	}

	return files
}

// checkArgs warns about directive arguments that nothing reads.
func (s *Synthesizer) checkArgs(sp *spec.Spec) {
	known := knownKeys(sp.Kind)

	for _, a := range sp.Decl.Directive.Args {
		if a.Key != "" && slices.Contains(known, a.Key) {
			continue
		}

		word := a.Key
		if word == "" {
			word = a.Value
		}

		s.diags.AddWarning(diagnostic.CodeUnknownArgument,
			fmt.Sprintf("%s argument %q is ignored%s", sp.Kind, word, match.Hint(word, known)),
			sp.Decl.QualifiedName(), sp.Decl.Directive.Pos)
	}
}

func knownKeys(k spec.Kind) []string {
	switch k {
	case spec.KindCase:
		return []string{NameKey}
	case spec.KindImplicitClass:
		return []string{NameKey, ImplementsKey}
	default:
		return nil
	}
}

func (s *Synthesizer) name(sp *spec.Spec) (string, bool) {
	name, err := s.GeneratedName(sp)
	if err != nil {
		s.diags.AddError(diagnostic.CodeInvalidDirective, err.Error(), sp.Decl.QualifiedName(), sp.Decl.Pos)
		return "", false
	}

	return name, true
}

func (s *Synthesizer) duplicate(sp *spec.Spec, what, name string) {
	s.diags.AddError(diagnostic.CodeDuplicateName,
		fmt.Sprintf("%s %s would be generated twice for %s", what, name, sp.Name()),
		sp.Decl.QualifiedName(), sp.Decl.Pos)
}

func (s *Synthesizer) arity(sp *spec.Spec, name string, n int) bool {
	if n <= tuple.MaxArity {
		return true
	}

	err := &ArityError{Type: name, Arity: n, Max: tuple.MaxArity}
	s.diags.AddError(diagnostic.CodeArityUnsupported, err.Error(), sp.Decl.QualifiedName(), sp.Decl.Pos,
		"Unapply, Equal, Compare and String are not generated")

	return false
}

func (s *Synthesizer) introspection(sp *spec.Spec, err error) {
	var ie *analyze.IntrospectionError
	if errors.As(err, &ie) {
		s.diags.AddError(diagnostic.CodeIntrospection, ie.Error(), sp.Decl.QualifiedName(), ie.Pos)
		return
	}

	s.diags.AddError(diagnostic.CodeIntrospection, err.Error(), sp.Decl.QualifiedName(), sp.Decl.Pos)
}

func hostTypes(ts []analyze.Type) []emit.Type {
	out := make([]emit.Type, 0, len(ts))
	for _, t := range ts {
		out = append(out, emit.Host(t))
	}

	return out
}
