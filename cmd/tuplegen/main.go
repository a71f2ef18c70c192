// Command tuplegen writes the fixed-arity tuple and assignment family of
// package tuple from a single template.
//
// Usage:
//
//	go run adtgen/cmd/tuplegen -max 22 -out tuples_gen.go
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"io"
	"os"
	"text/template"
)

// typeParamNames names the type parameters of each slot, in order.
const typeParamNames = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// File permission for the generated file.
const filePerm = 0o644

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "tuplegen:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("tuplegen", flag.ContinueOnError)
	maxArity := fs.Int("max", 22, "largest arity to generate")
	out := fs.String("out", "", "output file (stdout when empty)")
	pkg := fs.String("pkg", "tuple", "package name of the generated file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	src, err := Render(*pkg, *maxArity)
	if err != nil {
		return err
	}

	if *out == "" {
		_, err = stdout.Write(src)
		return err
	}

	return os.WriteFile(*out, src, filePerm)
}

// slot describes one position of an arity.
type slot struct {
	I int    // 1-based position
	T string // type parameter name
}

// arity is the template input for one TupleN/AssignN pair.
type arity struct {
	N     int
	Slots []slot
}

// Params returns the type parameter list without the constraint, e.g. "A, B".
func (a arity) Params() string {
	var buf bytes.Buffer

	for i, s := range a.Slots {
		if i > 0 {
			buf.WriteString(", ")
		}

		buf.WriteString(s.T)
	}

	return buf.String()
}

// Render returns the formatted source of arities 1..maxArity.
func Render(pkg string, maxArity int) ([]byte, error) {
	if maxArity < 1 || maxArity > len(typeParamNames) {
		return nil, fmt.Errorf("max arity %d outside 1..%d", maxArity, len(typeParamNames))
	}

	if pkg == "" {
		return nil, errors.New("package name is required")
	}

	data := struct {
		Package  string
		MaxArity int
		Arities  []arity
	}{Package: pkg, MaxArity: maxArity}

	for n := 1; n <= maxArity; n++ {
		a := arity{N: n}
		for i := 1; i <= n; i++ {
			a.Slots = append(a.Slots, slot{I: i, T: string(typeParamNames[i-1])})
		}

		data.Arities = append(data.Arities, a)
	}

	var buf bytes.Buffer
	if err := familyTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return buf.Bytes(), fmt.Errorf("formatting code: %w", err)
	}

	return formatted, nil
}

var familyTemplate = template.Must(template.New("family").Parse(`// Code generated by tuplegen. DO NOT EDIT.

package {{.Package}}
{{range .Arities}}{{$p := .Params}}{{$n := .N}}
// Tuple{{$n}} is an ordered group of {{$n}} values. It is a plain value: assigning
// or passing it copies every slot.
type Tuple{{$n}}[{{$p}} any] struct {
{{range .Slots}}	V{{.I}} {{.T}}
{{end}}}

// Of{{$n}} returns a Tuple{{$n}} holding the given values.
func Of{{$n}}[{{$p}} any]({{range $i, $s := .Slots}}{{if $i}}, {{end}}v{{$s.I}} {{$s.T}}{{end}}) Tuple{{$n}}[{{$p}}] {
	return Tuple{{$n}}[{{$p}}]{ {{- range $i, $s := .Slots}}{{if $i}}, {{end}}v{{$s.I}}{{end -}} }
}

// Arity returns {{$n}}.
func (t Tuple{{$n}}[{{$p}}]) Arity() int {
	return {{$n}}
}

// Get returns the i-th value, counting from 1.
func (t Tuple{{$n}}[{{$p}}]) Get(i int) any {
	return get(t.Values(), i)
}

// Values returns the slots in order.
func (t Tuple{{$n}}[{{$p}}]) Values() []any {
	return []any{ {{- range $i, $s := .Slots}}{{if $i}}, {{end}}t.V{{$s.I}}{{end -}} }
}

// Unpack returns the slots as separate values.
func (t Tuple{{$n}}[{{$p}}]) Unpack() ({{$p}}) {
	return {{range $i, $s := .Slots}}{{if $i}}, {{end}}t.V{{$s.I}}{{end}}
}

// Equal reports whether both tuples hold equal values slot by slot.
func (t Tuple{{$n}}[{{$p}}]) Equal(o Tuple{{$n}}[{{$p}}]) bool {
	return equalValues(t.Values(), o.Values())
}

// Compare orders tuples slot by slot, left to right.
func (t Tuple{{$n}}[{{$p}}]) Compare(o Tuple{{$n}}[{{$p}}]) int {
	return compareValues(t.Values(), o.Values())
}

// String formats the tuple as (v1, v2, ...).
func (t Tuple{{$n}}[{{$p}}]) String() string {
	return formatValues(t.Values())
}

// Assign{{$n}} binds {{$n}} storage locations that From fills from a Tuple{{$n}}.
type Assign{{$n}}[{{$p}} any] struct {
{{range .Slots}}	S{{.I}} *{{.T}}
{{end}}}

// Bind{{$n}} returns an Assign{{$n}} writing into the given locations.
func Bind{{$n}}[{{$p}} any]({{range $i, $s := .Slots}}{{if $i}}, {{end}}s{{$s.I}} *{{$s.T}}{{end}}) Assign{{$n}}[{{$p}}] {
	return Assign{{$n}}[{{$p}}]{ {{- range $i, $s := .Slots}}{{if $i}}, {{end}}s{{$s.I}}{{end -}} }
}

// From writes every slot of t into the bound locations, in order, and returns t.
func (a Assign{{$n}}[{{$p}}]) From(t Tuple{{$n}}[{{$p}}]) Tuple{{$n}}[{{$p}}] {
{{range .Slots}}	*a.S{{.I}} = t.V{{.I}}
{{end}}	return t
}
{{end}}`))
