package synth

import (
	"fmt"
	"go/token"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"adtgen/internal/spec"
)

// NameKey is the directive argument overriding the generated type name.
const NameKey = "name"

// ImplementsKey lists the implicit interfaces of an implicit class.
const ImplementsKey = "implements"

// GeneratedName returns the name of the type generated for sp.
func (s *Synthesizer) GeneratedName(sp *spec.Spec) (string, error) {
	name, explicit := sp.Reader.Get(NameKey)
	if !explicit || name == "" {
		base := sp.Name()

		switch sp.Kind {
		case spec.KindCase:
			name = exportName(trimSuffix(base, s.opts.CaseSuffix))
		case spec.KindImplicitClass:
			name = trimSuffix(base, s.opts.ClassSuffix)
			if name == base {
				name = base + "Impl"
			}
		default:
			return "", fmt.Errorf("%s declarations do not generate types", sp.Kind)
		}
	}

	if !token.IsIdentifier(name) {
		return "", fmt.Errorf("generated name %q is not a valid identifier", name)
	}

	if name == sp.Name() {
		return "", fmt.Errorf("generated name %q equals the annotated declaration; set %s=", name, NameKey)
	}

	return name, nil
}

func trimSuffix(name, suffix string) string {
	if suffix == "" || name == suffix {
		return name
	}

	return strings.TrimSuffix(name, suffix)
}

func exportName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}

	return string(unicode.ToUpper(r)) + name[size:]
}

func unexportName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}

	return string(unicode.ToLower(r)) + name[size:]
}

// fieldName is the unexported storage name of a case class field.
func fieldName(name string) string {
	name = unexportName(name)
	if token.IsKeyword(name) {
		return name + "_"
	}

	return name
}

// localName makes name usable as a parameter or variable.
func localName(name string) string {
	name = unexportName(name)
	if token.IsKeyword(name) || isPredeclared(name) {
		return name + "_"
	}

	return name
}

func isPredeclared(name string) bool {
	switch name {
	case "nil", "true", "false", "iota", "len", "cap", "new", "make", "append", "copy", "panic":
		return true
	}

	return false
}

// receiverName is the lowercased first letter of the type name.
func receiverName(typeName string) string {
	r, _ := utf8.DecodeRuneInString(typeName)
	return string(unicode.ToLower(r))
}

// names hands out identifiers that do not collide with the taken ones.
type names map[string]bool

func newNames(taken ...string) names {
	n := make(names)
	for _, t := range taken {
		n[t] = true
	}

	return n
}

// fresh returns want, or want followed by the smallest free number.
func (n names) fresh(want string) string {
	name := want
	for i := 1; n[name]; i++ {
		name = want + strconv.Itoa(i)
	}

	n[name] = true

	return name
}

// paramName names parameter i, inventing p<i> for unnamed ones.
func paramName(i int, name string) string {
	if name == "" || name == "_" {
		return "p" + strconv.Itoa(i)
	}

	return name
}
