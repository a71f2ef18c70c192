package analyze

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"slices"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"

	"adtgen/internal/diagnostic"
	"adtgen/internal/match"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and collects annotated declarations.
type Analyzer struct {
	prefix        string
	generatedFile string
	fset          *token.FileSet
	host          *TypesHost
	program       *Program
}

// NewAnalyzer creates a new Analyzer. prefix is the directive prefix ("adt"),
// generatedFile the base name of previously generated files, which are
// replaced by an empty package clause while loading.
func NewAnalyzer(prefix, generatedFile string) *Analyzer {
	if prefix == "" {
		prefix = DefaultDirectivePrefix
	}

	fset := token.NewFileSet()
	host := newTypesHost(fset)

	return &Analyzer{
		prefix:        prefix,
		generatedFile: generatedFile,
		fset:          fset,
		host:          host,
		program:       &Program{Host: host},
	}
}

// LoadPackages loads the specified packages and collects their annotated
// declarations. Patterns are standard Go package patterns (e.g., "./...").
//
// Type errors do not fail the load: annotated packages routinely refer to
// code that only exists after generation. They are recorded as warnings.
func (a *Analyzer) LoadPackages(ctx context.Context, patterns ...string) (*Program, error) {
	overlay, err := a.staleOverlay(ctx, patterns)
	if err != nil {
		return nil, err
	}

	cfg := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
		Fset:    a.fset,
		Overlay: overlay,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	sort.Slice(pkgs, func(i, j int) bool { return pkgs[i].PkgPath < pkgs[j].PkgPath })

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			if e.Kind == packages.TypeError {
				a.program.Diagnostics.AddWarning("type_error", e.Msg, pkg.PkgPath, errorPosition(e))
				continue
			}

			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		if pkg.Types == nil || pkg.TypesInfo == nil {
			return nil, fmt.Errorf("package %s has no type information", pkg.PkgPath)
		}

		info := &PackageInfo{
			Path: pkg.PkgPath,
			Name: pkg.Name,
			Dir:  packageDir(pkg),
		}

		a.processPackage(info, pkg.Syntax, pkg.Types, pkg.TypesInfo)
	}

	a.finish()

	return a.program, nil
}

// LoadFiles type-checks a single package given as in-memory sources keyed by
// file name. Imports are resolved from source. Unlike LoadPackages, any type
// error fails the load.
func (a *Analyzer) LoadFiles(pkgPath string, sources map[string]string) (*Program, error) {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}

	sort.Strings(names)

	files := make([]*ast.File, 0, len(names))

	for _, name := range names {
		f, err := parser.ParseFile(a.fset, name, sources[name], parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}

		files = append(files, f)
	}

	if len(files) == 0 {
		return nil, errors.New("no source files")
	}

	var typeErrs []error

	conf := types.Config{
		Importer: importer.ForCompiler(a.fset, "source", nil),
		Error:    func(err error) { typeErrs = append(typeErrs, err) },
	}

	info := newTypesInfo()

	tpkg, _ := conf.Check(pkgPath, a.fset, files, info)
	if len(typeErrs) > 0 {
		return nil, fmt.Errorf("type errors: %w", errors.Join(typeErrs...))
	}

	a.processPackage(&PackageInfo{Path: pkgPath, Name: tpkg.Name()}, files, tpkg, info)
	a.finish()

	return a.program, nil
}

// staleOverlay maps every previously generated file of the matched packages
// to an empty file so that stale output never breaks loading.
func (a *Analyzer) staleOverlay(ctx context.Context, patterns []string) (map[string][]byte, error) {
	if a.generatedFile == "" {
		return nil, nil
	}

	cfg := &packages.Config{
		Context: ctx,
		Mode:    packages.NeedName | packages.NeedFiles,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	overlay := make(map[string][]byte)

	for _, pkg := range pkgs {
		for _, f := range pkg.GoFiles {
			if filepath.Base(f) == a.generatedFile {
				overlay[f] = []byte("package " + pkg.Name + "\n")
			}
		}
	}

	return overlay, nil
}

func newTypesInfo() *types.Info {
	return &types.Info{
		Types: make(map[ast.Expr]types.TypeAndValue),
		Defs:  make(map[*ast.Ident]types.Object),
		Uses:  make(map[*ast.Ident]types.Object),
	}
}

func packageDir(pkg *packages.Package) string {
	if len(pkg.GoFiles) == 0 {
		return ""
	}

	return filepath.Dir(pkg.GoFiles[0])
}

func errorPosition(e packages.Error) token.Position {
	// Pos is "file:line:col", "file:line" or "-".
	parts := strings.Split(e.Pos, ":")
	if len(parts) < 2 {
		return token.Position{}
	}

	nums := make([]int, 0, 2)

	for len(parts) > 1 && len(nums) < 2 {
		n, err := strconv.Atoi(parts[len(parts)-1])
		if err != nil {
			break
		}

		nums = append([]int{n}, nums...)
		parts = parts[:len(parts)-1]
	}

	if len(nums) == 0 {
		return token.Position{}
	}

	pos := token.Position{Filename: strings.Join(parts, ":"), Line: nums[0]}
	if len(nums) == 2 {
		pos.Column = nums[1]
	}

	return pos
}

// processPackage collects the annotated declarations of one package.
func (a *Analyzer) processPackage(info *PackageInfo, files []*ast.File, tpkg *types.Package, tinfo *types.Info) {
	a.program.Packages = append(a.program.Packages, info)
	a.host.addPackage(tpkg)

	for _, f := range files {
		for _, decl := range f.Decls {
			switch d := decl.(type) {
			case *ast.GenDecl:
				a.processGenDecl(info, d, tinfo)
			case *ast.FuncDecl:
				a.processFuncDecl(info, d, tinfo)
			}
		}
	}
}

func (a *Analyzer) processGenDecl(info *PackageInfo, gd *ast.GenDecl, tinfo *types.Info) {
	for _, spec := range gd.Specs {
		groups := []*ast.CommentGroup{specDoc(spec)}
		if len(gd.Specs) == 1 {
			groups = append(groups, gd.Doc)
		}

		dirs := a.directives(info, groups...)
		if len(dirs) == 0 {
			continue
		}

		if len(dirs) > 1 {
			a.invalid(info, dirs[1], "a declaration takes a single directive")
			continue
		}

		dir := dirs[0]

		switch s := spec.(type) {
		case *ast.TypeSpec:
			a.processTypeSpec(info, s, dir, tinfo)
		case *ast.ValueSpec:
			if gd.Tok != token.VAR || dir.Kind != DirectiveContext {
				a.invalid(info, dir, fmt.Sprintf("//%s:%s does not apply to %s declarations", a.prefix, dir.Kind, gd.Tok))
				continue
			}

			for _, name := range s.Names {
				obj, ok := tinfo.Defs[name].(*types.Var)
				if !ok || name.Name == "_" {
					continue
				}

				a.addDecl(&Decl{
					Name:      name.Name,
					Kind:      DeclVar,
					Pkg:       info,
					Type:      obj.Type(),
					Directive: dir,
					Pos:       a.fset.Position(name.Pos()),
				}, obj)
			}
		default:
			a.invalid(info, dir, "directive on an import")
		}
	}
}

func (a *Analyzer) processTypeSpec(info *PackageInfo, ts *ast.TypeSpec, dir Directive, tinfo *types.Info) {
	if dir.Kind != DirectiveCase && dir.Kind != DirectiveImplicitClass {
		a.invalid(info, dir, fmt.Sprintf("//%s:%s does not apply to type declarations", a.prefix, dir.Kind))
		return
	}

	obj, ok := tinfo.Defs[ts.Name].(*types.TypeName)
	if !ok {
		return
	}

	if _, isStruct := obj.Type().Underlying().(*types.Struct); !isStruct {
		a.invalid(info, dir, fmt.Sprintf("//%s:%s requires a struct type, %s is %s",
			a.prefix, dir.Kind, ts.Name.Name, obj.Type().Underlying()))

		return
	}

	if ts.TypeParams != nil && ts.TypeParams.NumFields() > 0 {
		a.invalid(info, dir, fmt.Sprintf("generic type %s cannot be annotated", ts.Name.Name))
		return
	}

	a.addDecl(&Decl{
		Name:      ts.Name.Name,
		Kind:      DeclType,
		Pkg:       info,
		Type:      obj.Type(),
		Directive: dir,
		Pos:       a.fset.Position(ts.Name.Pos()),
	}, obj)
}

// processFuncDecl records //adt:implicit parameter markers.
func (a *Analyzer) processFuncDecl(info *PackageInfo, fd *ast.FuncDecl, tinfo *types.Info) {
	dirs := a.directives(info, fd.Doc)
	if len(dirs) == 0 {
		return
	}

	fn, ok := tinfo.Defs[fd.Name].(*types.Func)
	if !ok {
		return
	}

	params := make(map[string]bool)

	var names []string

	for _, field := range fd.Type.Params.List {
		for _, name := range field.Names {
			params[name.Name] = true
			names = append(names, name.Name)
		}
	}

	for _, dir := range dirs {
		if dir.Kind != DirectiveImplicit {
			a.invalid(info, dir, fmt.Sprintf("//%s:%s does not apply to functions", a.prefix, dir.Kind))
			continue
		}

		words := dir.Words()
		if len(words) == 0 || len(words) != len(dir.Args) {
			a.invalid(info, dir, fmt.Sprintf("//%s:%s takes parameter names only", a.prefix, dir.Kind))
			continue
		}

		for _, w := range words {
			if !params[w] || w == "_" {
				a.invalid(info, dir, fmt.Sprintf("%s has no parameter %q%s", fd.Name.Name, w, match.Hint(w, names)))
				continue
			}

			if !slices.Contains(a.host.implicits[fn], w) {
				a.host.implicits[fn] = append(a.host.implicits[fn], w)
			}
		}
	}
}

func (a *Analyzer) directives(info *PackageInfo, groups ...*ast.CommentGroup) []Directive {
	dirs, errs := findDirectives(a.fset, a.prefix, groups...)
	for _, err := range errs {
		a.program.Diagnostics.AddError(diagnostic.CodeInvalidDirective, err.Error(), info.Path, token.Position{})
	}

	return dirs
}

func (a *Analyzer) invalid(info *PackageInfo, dir Directive, msg string) {
	a.program.Diagnostics.AddError(diagnostic.CodeInvalidDirective, msg, info.Path, dir.Pos)
}

func (a *Analyzer) addDecl(d *Decl, obj types.Object) {
	a.program.Decls = append(a.program.Decls, d)
	a.host.objects[d] = obj
}

// finish orders declarations by package, file and offset.
func (a *Analyzer) finish() {
	sort.SliceStable(a.program.Decls, func(i, j int) bool {
		di, dj := a.program.Decls[i], a.program.Decls[j]
		if di.Pkg.Path != dj.Pkg.Path {
			return di.Pkg.Path < dj.Pkg.Path
		}

		return positionLess(di.Pos, dj.Pos)
	})
}

func specDoc(spec ast.Spec) *ast.CommentGroup {
	switch s := spec.(type) {
	case *ast.TypeSpec:
		return s.Doc
	case *ast.ValueSpec:
		return s.Doc
	case *ast.ImportSpec:
		return s.Doc
	default:
		return nil
	}
}

func positionLess(a, b token.Position) bool {
	if a.Filename != b.Filename {
		return a.Filename < b.Filename
	}

	return a.Offset < b.Offset
}
