package driver

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"io"

	"github.com/davecgh/go-spew/spew"

	"adtgen/internal/analyze"
	"adtgen/internal/config"
	"adtgen/internal/ctxlog"
	"adtgen/internal/diagnostic"
	"adtgen/internal/gen"
	"adtgen/internal/implicit"
	"adtgen/internal/spec"
	"adtgen/internal/synth"
)

// Result is the outcome of a generation pass.
type Result struct {
	Program     *analyze.Program
	Catalog     *spec.Catalog
	Files       []gen.GeneratedFile
	Written     []string // paths rewritten on disk
	Removed     []string // stale generated files deleted
	Diagnostics diagnostic.Diagnostics
}

// Failed reports whether any error diagnostic was recorded.
func (r *Result) Failed() bool {
	return r.Diagnostics.HasErrors()
}

// Run loads the packages matching patterns and generates their code. Files
// are written unless cfg.DryRun is set or an error diagnostic was recorded.
func Run(ctx context.Context, cfg *config.Config, patterns ...string) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	logger := ctxlog.FromContext(ctx)
	logger.Debug("loading packages", "patterns", patterns)

	prog, err := analyze.NewAnalyzer(cfg.Prefix, cfg.Output).LoadPackages(ctx, patterns...)
	if err != nil {
		return nil, err
	}

	res, err := Generate(ctx, cfg, prog)
	if err != nil {
		return res, err
	}

	if cfg.DryRun {
		logger.Info("dry run, nothing written", "files", len(res.Files))
		return res, nil
	}

	if res.Failed() {
		logger.Warn("errors recorded, nothing written", "errors", len(res.Diagnostics.Errors))
		return res, nil
	}

	if err := write(ctx, cfg, res); err != nil {
		return res, err
	}

	return res, nil
}

// Generate runs the in-memory part of a pass over an already loaded program.
func Generate(ctx context.Context, cfg *config.Config, prog *analyze.Program) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	res := &Result{Program: prog}
	res.Diagnostics.Merge(prog.Diagnostics)

	res.Catalog = BuildCatalog(prog, &res.Diagnostics)
	logger.Debug("catalog built", "specs", res.Catalog.Len(), "declarations", len(prog.Decls))

	resolver := implicit.NewResolver(prog.Host, res.Catalog, &res.Diagnostics, cfg.ResolverConfig())
	files := synth.New(prog.Host, res.Catalog, resolver, &res.Diagnostics, cfg.SynthOptions()).Run()

	g := gen.NewGenerator(cfg.GeneratorConfig())
	for _, p := range prog.Packages {
		g.AddPackageName(p.Path, p.Name)
	}

	generated, err := g.Generate(files)
	res.Files = generated

	if err != nil {
		res.Diagnostics.AddError(diagnostic.CodeGenerationFailed, err.Error(), "", token.Position{})
		return res, err
	}

	for _, f := range res.Files {
		logger.Debug("rendered", "package", f.PkgPath, "bytes", len(f.Content))
	}

	logger.Info("generation finished",
		"files", len(res.Files),
		"errors", len(res.Diagnostics.Errors),
		"warnings", len(res.Diagnostics.Warnings))

	return res, nil
}

// BuildCatalog builds a spec for every declaration of prog. Declarations that
// cannot be introspected or have no members are reported and left out.
func BuildCatalog(prog *analyze.Program, diags *diagnostic.Diagnostics) *spec.Catalog {
	catalog := spec.NewCatalog()

	for _, decl := range prog.Decls {
		s, err := spec.Build(prog.Host, decl)

		var ie *analyze.IntrospectionError

		switch {
		case err == nil:
			catalog.Add(s)
		case errors.Is(err, spec.ErrEmpty):
			diags.AddError(diagnostic.CodeEmptySpec,
				fmt.Sprintf("//%s declaration %s has no eligible members", decl.Directive.Kind, decl.Name),
				decl.QualifiedName(), decl.Pos)
		case errors.As(err, &ie):
			diags.AddError(diagnostic.CodeIntrospection, ie.Reason, decl.QualifiedName(), decl.Pos)
		default:
			diags.AddError(diagnostic.CodeIntrospection, err.Error(), decl.QualifiedName(), decl.Pos)
		}
	}

	return catalog
}

func write(ctx context.Context, cfg *config.Config, res *Result) error {
	logger := ctxlog.FromContext(ctx)

	written, err := gen.WriteFiles(res.Files)
	res.Written = written

	if err != nil {
		return err
	}

	for _, p := range written {
		logger.Info("wrote", "path", p)
	}

	produced := make(map[string]bool, len(res.Files))
	for _, f := range res.Files {
		produced[f.PkgPath] = true
	}

	for _, p := range res.Program.Packages {
		if produced[p.Path] || p.Dir == "" {
			continue
		}

		removed, err := gen.RemoveStale(p.Dir, cfg.Output)
		if err != nil {
			return err
		}

		if removed {
			res.Removed = append(res.Removed, p.Dir)
			logger.Info("removed stale output", "package", p.Path)
		}
	}

	return nil
}

// dumpItem and dumpSpec are the printable view of the catalog.
type dumpItem struct {
	Name   string
	Kind   string
	Type   string
	Params []string
}

type dumpSpec struct {
	Name  string
	Kind  string
	Args  []string
	Items []dumpItem
}

// Dump writes the catalog to w for debugging.
func Dump(w io.Writer, catalog *spec.Catalog) {
	view := make([]dumpSpec, 0, catalog.Len())

	for _, s := range catalog.Specs() {
		ds := dumpSpec{Name: s.Decl.QualifiedName(), Kind: s.Kind.String()}

		for _, k := range s.Reader.Keys() {
			v, _ := s.Reader.Get(k)
			ds.Args = append(ds.Args, k+"="+v)
		}

		for _, it := range s.Items() {
			di := dumpItem{Name: it.Name, Kind: it.Kind.String()}
			if it.Type != nil {
				di.Type = it.Type.String()
			}

			for _, p := range it.Params {
				param := p.Name + " " + p.Type.String()
				if p.Implicit {
					param += " (implicit)"
				}

				di.Params = append(di.Params, param)
			}

			ds.Items = append(ds.Items, di)
		}

		view = append(view, ds)
	}

	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
	cfg.Fdump(w, view)
}
