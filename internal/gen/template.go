package gen

import "text/template"

// templateData holds all data needed for one generated file.
type templateData struct {
	Tool        string
	PackageName string
	Imports     []importSpec
	Decls       []declData
}

// declData is one generated type with its methods, pre-rendered.
type declData struct {
	Doc     []string
	Name    string
	Fields  []string
	Asserts []string
	Methods []methodData
}

type methodData struct {
	Doc       []string
	Signature string
	Body      []string
}

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by {{.Tool}}. DO NOT EDIT.

package {{.PackageName}}
{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
{{range .Decls}}
{{range .Doc}}// {{.}}
{{end}}type {{.Name}} struct {
{{range .Fields}}	{{.}}
{{end}}}
{{range .Asserts}}
{{.}}
{{end}}
{{range .Methods}}
{{range .Doc}}// {{.}}
{{end}}{{.Signature}} {
{{range .Body}}	{{.}}
{{end}}}
{{end}}{{end}}`))
