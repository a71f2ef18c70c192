package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"adtgen/internal/match"
)

// DefaultDirectivePrefix is the comment prefix of every directive ("//adt:").
const DefaultDirectivePrefix = "adt"

// Directive kinds.
const (
	DirectiveCase          = "case"
	DirectiveContext       = "context"
	DirectiveImplicitClass = "implicit-class"
	DirectiveImplicit      = "implicit"
)

// Kinds lists every directive kind.
var Kinds = []string{DirectiveCase, DirectiveContext, DirectiveImplicitClass, DirectiveImplicit}

// Arg is one directive argument: either key=value or a bare word (Key empty).
type Arg struct {
	Key   string
	Value string
}

// Directive is one parsed //<prefix>:<kind> comment.
type Directive struct {
	Kind string
	Args []Arg
	Pos  token.Position
}

// Words returns the bare-word arguments in order.
func (d Directive) Words() []string {
	var out []string

	for _, a := range d.Args {
		if a.Key == "" {
			out = append(out, a.Value)
		}
	}

	return out
}

// ParseDirective parses a single comment line. ok is false when the comment is
// not a directive for prefix at all.
func ParseDirective(prefix, text string) (d Directive, ok bool, err error) {
	head := "//" + prefix + ":"
	if !strings.HasPrefix(text, head) {
		return Directive{}, false, nil
	}

	fields := strings.Fields(strings.TrimPrefix(text, head))
	if len(fields) == 0 {
		return Directive{}, true, fmt.Errorf("directive %q has no kind", text)
	}

	d.Kind = fields[0]
	switch d.Kind {
	case DirectiveCase, DirectiveContext, DirectiveImplicitClass, DirectiveImplicit:
	default:
		return Directive{}, true, fmt.Errorf("unknown directive %q%s", head+d.Kind, match.Hint(d.Kind, Kinds))
	}

	seen := make(map[string]bool)

	for _, f := range fields[1:] {
		key, value, isPair := strings.Cut(f, "=")
		if !isPair {
			d.Args = append(d.Args, Arg{Value: f})
			continue
		}

		if key == "" {
			return Directive{}, true, fmt.Errorf("directive %q: empty key in %q", head+d.Kind, f)
		}

		if seen[key] {
			return Directive{}, true, fmt.Errorf("directive %q: duplicate key %q", head+d.Kind, key)
		}

		seen[key] = true
		d.Args = append(d.Args, Arg{Key: key, Value: value})
	}

	return d, true, nil
}

// findDirectives returns every directive found in the given comment groups.
func findDirectives(fset *token.FileSet, prefix string, groups ...*ast.CommentGroup) ([]Directive, []error) {
	var (
		out  []Directive
		errs []error
	)

	for _, g := range groups {
		if g == nil {
			continue
		}

		for _, c := range g.List {
			d, ok, err := ParseDirective(prefix, c.Text)
			if !ok {
				continue
			}

			pos := fset.Position(c.Slash)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", pos, err))
				continue
			}

			d.Pos = pos
			out = append(out, d)
		}
	}

	return out, errs
}
