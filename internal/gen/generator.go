package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/types"
	"path/filepath"
	"strings"

	"adtgen/internal/emit"
)

// DefaultFilename is the base name of the generated file in every package.
const DefaultFilename = "adt_gen.go"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Filename is the base name of the file written into each package.
	Filename string
	// Tool is named in the "Code generated by" header.
	Tool string
	// KeepUnformatted writes a .unformatted.go sidecar next to the output
	// when formatting fails.
	KeepUnformatted bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Filename:        DefaultFilename,
		Tool:            "adtgen",
		KeepUnformatted: true,
	}
}

// Generator renders emit files to formatted Go source.
type Generator struct {
	config GeneratorConfig
	// pkgNames maps import paths to package names for references that do not
	// carry go/types information.
	pkgNames map[string]string
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	def := DefaultGeneratorConfig()
	if config.Filename == "" {
		config.Filename = def.Filename
	}

	if config.Tool == "" {
		config.Tool = def.Tool
	}

	return &Generator{config: config, pkgNames: make(map[string]string)}
}

// AddPackageName records the name of the package at path.
func (g *Generator) AddPackageName(path, name string) {
	g.pkgNames[path] = name
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// PkgPath is the import path of the package the file belongs to.
	PkgPath string
	// Dir is the package directory; empty for packages loaded from memory.
	Dir string
	// Filename is the base name of the file.
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Path returns the location the file is written to.
func (f GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// Generate renders every file. Rendering stops at the first file that cannot
// be formatted; the unformatted content of that file is returned alongside
// the error.
func (g *Generator) Generate(files []*emit.File) ([]GeneratedFile, error) {
	out := make([]GeneratedFile, 0, len(files))

	for _, f := range files {
		file, err := g.generateFile(f)
		if err != nil {
			if file != nil {
				out = append(out, *file)
			}

			return out, fmt.Errorf("generating %s: %w", f.PkgPath, err)
		}

		out = append(out, *file)
	}

	return out, nil
}

func (g *Generator) generateFile(f *emit.File) (*GeneratedFile, error) {
	if f.PkgName == "" {
		return nil, fmt.Errorf("package %s has no name", f.PkgPath)
	}

	imports := newImportSet(f.PkgPath, g.pkgNames)

	data := &templateData{
		Tool:        g.config.Tool,
		PackageName: f.PkgName,
	}

	for _, d := range f.Decls {
		data.Decls = append(data.Decls, g.buildDecl(f.PkgPath, d, imports))
	}

	data.Imports = imports.specs()

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	result := &GeneratedFile{
		PkgPath:  f.PkgPath,
		Dir:      f.Dir,
		Filename: g.config.Filename,
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.KeepUnformatted {
			_ = writeDebugUnformatted(f.Dir, g.config.Filename, buf.Bytes())
		}

		result.Content = buf.Bytes()

		return result, fmt.Errorf("formatting code: %w", err)
	}

	result.Content = formatted

	return result, nil
}

func (g *Generator) buildDecl(pkgPath string, d *emit.TypeDecl, imports *importSet) declData {
	dd := declData{
		Doc:  docLines(d.Doc),
		Name: d.Name,
	}

	for _, f := range d.Fields() {
		var c emit.Code
		if f.Name != "" {
			c.Ident(f.Name).Literal(" ")
		}

		c.Type(f.Type)
		dd.Fields = append(dd.Fields, render(&c, imports))
	}

	self := emit.Pointer{Elem: d.SelfType(pkgPath)}

	for _, iface := range d.Superinterfaces() {
		var c emit.Code
		c.Literal("var _ ").Type(iface).Literal(" = ").
			Expr(emit.CallOf(emit.TypeExpr{T: self}, emit.Nil{}))
		dd.Asserts = append(dd.Asserts, render(&c, imports))
	}

	for _, m := range d.Methods() {
		var sig emit.Code
		sig.Signature(pkgPath, d, m)

		md := methodData{
			Doc:       docLines(m.Doc),
			Signature: render(&sig, imports),
		}

		for _, st := range m.Body {
			var c emit.Code
			c.Stmt(st)
			md.Body = append(md.Body, render(&c, imports))
		}

		dd.Methods = append(dd.Methods, md)
	}

	return dd
}

// render spells the fragments of c, qualifying references through imports.
func render(c *emit.Code, imports *importSet) string {
	var sb strings.Builder

	for _, f := range c.Fragments() {
		if f.Kind != emit.FragmentTypeRef {
			sb.WriteString(f.Text)
			continue
		}

		switch {
		case f.Host != nil:
			sb.WriteString(hostTypeString(f, imports))
		case f.PkgPath != "":
			if q := imports.qualify(f.PkgPath, ""); q != "" {
				sb.WriteString(q + ".")
			}

			sb.WriteString(f.Text)
		default:
			sb.WriteString(f.Text)
		}
	}

	return sb.String()
}

// hostTypeString renders a source model type. go/types values are qualified
// through imports; other implementations are spelled with String.
func hostTypeString(f emit.Fragment, imports *importSet) string {
	t, ok := f.Host.(types.Type)
	if !ok {
		s := f.Host.String()
		if f.Elem {
			s = strings.TrimPrefix(s, "[]")
		}

		return s
	}

	if f.Elem {
		if sl, isSlice := t.(*types.Slice); isSlice {
			t = sl.Elem()
		}
	}

	return types.TypeString(t, imports.qualifier)
}

func docLines(doc string) []string {
	if doc == "" {
		return nil
	}

	return strings.Split(strings.TrimRight(doc, "\n"), "\n")
}
