package implicit

import (
	"fmt"
	"go/token"
	"strings"

	"adtgen/internal/analyze"
	"adtgen/internal/common"
	"adtgen/internal/diagnostic"
	"adtgen/internal/emit"
	"adtgen/internal/spec"
)

// DefaultMaxDepth bounds provider nesting when Config.MaxDepth is zero.
const DefaultMaxDepth = 16

// Config tunes the resolver.
type Config struct {
	// MaxDepth is the deepest provider nesting resolved before giving up.
	MaxDepth int
}

// Candidate is a provider: a member of a context spec.
type Candidate struct {
	Spec *spec.Spec
	Item *spec.Item
}

// String returns "<spec>.<item>".
func (c Candidate) String() string {
	return c.Spec.Name() + "." + c.Item.Name
}

// Resolution is the result of a provider search.
type Resolution struct {
	Requested  analyze.Type
	Outcome    Outcome
	Candidates []Candidate // in catalog, then declaration order
}

// Unique returns the single candidate of a successful search.
func (r Resolution) Unique() (Candidate, bool) {
	if r.Outcome != OutcomeUnique {
		return Candidate{}, false
	}

	return r.Candidates[0], true
}

// Site is the place that requested an implicit value. PkgPath is the package
// the generated expression is written into.
type Site struct {
	Subject string
	PkgPath string
	Pos     token.Position
}

// Error describes a failed resolution. Chain lists the providers that
// required the failing type, innermost first.
type Error struct {
	Code       string
	Requested  analyze.Type
	Candidates []Candidate
	Chain      []Candidate
}

func (e *Error) Error() string {
	switch e.Code {
	case diagnostic.CodeImplicitNoMatch:
		return "No matches found for implicit for " + e.Requested.String()
	case diagnostic.CodeImplicitAmbiguous:
		return "Multiple matches found for implicit for " + e.Requested.String()
	case diagnostic.CodeImplicitCycle:
		return "Cyclic implicit dependency for " + e.Requested.String()
	case diagnostic.CodeImplicitTooDeep:
		return "Implicit nesting too deep for " + e.Requested.String()
	default:
		return "Cannot resolve implicit for " + e.Requested.String()
	}
}

// Suggestions lists the competing candidates and the requiring providers.
func (e *Error) Suggestions() []string {
	var out []string

	if e.Code == diagnostic.CodeImplicitAmbiguous {
		for _, c := range e.Candidates {
			out = append(out, "candidate "+c.String())
		}
	}

	for _, c := range e.Chain {
		out = append(out, "required by "+c.String())
	}

	return out
}

// Resolver finds providers for requested types among the context specs of a
// catalog. It is not safe for concurrent use.
type Resolver struct {
	host    analyze.Host
	catalog *spec.Catalog
	diags   *diagnostic.Diagnostics
	cfg     Config
}

// NewResolver creates a resolver. Failures reported by Resolve are added to
// diags.
func NewResolver(host analyze.Host, catalog *spec.Catalog, diags *diagnostic.Diagnostics, cfg Config) *Resolver {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}

	return &Resolver{host: host, catalog: catalog, diags: diags, cfg: cfg}
}

// Find returns every provider assignable to requested that code in package
// from can refer to. Fields match by their type, methods by their single
// result; void and multi-result methods never match.
func (r *Resolver) Find(requested analyze.Type, from string) Resolution {
	candidates := common.FlatFilterMap(
		r.catalog.OfKind(spec.KindContext),
		(*spec.Spec).Items,
		func(s *spec.Spec, it *spec.Item) bool {
			return it.Type != nil && Reachable(s, it, from) && r.host.IsAssignable(it.Type, requested)
		},
		func(s *spec.Spec, it *spec.Item) Candidate {
			return Candidate{Spec: s, Item: it}
		},
	)

	res := Resolution{Requested: requested, Candidates: candidates}

	switch {
	case common.IsEmpty(candidates):
		res.Outcome = OutcomeNoMatch
	case common.IsSingle(candidates):
		res.Outcome = OutcomeUnique
	default:
		res.Outcome = OutcomeAmbiguous
	}

	return res
}

// Reachable reports whether code in package from can refer to member it of
// the context s: always inside the declaring package, otherwise only when
// both the variable and the member are exported.
func Reachable(s *spec.Spec, it *spec.Item, from string) bool {
	if s.PkgPath() == from {
		return true
	}

	return token.IsExported(s.Name()) && it.Exported
}

// Resolve builds the provider expression for requested. On failure it adds
// one error diagnostic located at site and returns emit.Nil{} and false.
func (r *Resolver) Resolve(requested analyze.Type, site Site) (emit.Expr, bool) {
	expr, err := r.Try(requested, site.PkgPath)
	if err != nil {
		r.Report(err, site)
		return emit.Nil{}, false
	}

	return expr, true
}

// Try builds the provider expression for requested, as seen from package
// from, without reporting.
func (r *Resolver) Try(requested analyze.Type, from string) (emit.Expr, error) {
	expr, rerr := r.build(requested, from, nil)
	if rerr != nil {
		return nil, rerr
	}

	return expr, nil
}

// Report adds the diagnostic for a failure returned by Try.
func (r *Resolver) Report(err error, site Site) {
	rerr, ok := err.(*Error)
	if !ok {
		r.diags.AddError(diagnostic.CodeGenerationFailed, err.Error(), site.Subject, site.Pos)
		return
	}

	r.diags.AddError(rerr.Code, rerr.Error(), site.Subject, site.Pos, rerr.Suggestions()...)
}

// build resolves requested below the providers in stack.
func (r *Resolver) build(requested analyze.Type, from string, stack []Candidate) (emit.Expr, *Error) {
	res := r.Find(requested, from)

	c, ok := res.Unique()
	if !ok {
		code := diagnostic.CodeImplicitNoMatch
		if res.Outcome == OutcomeAmbiguous {
			code = diagnostic.CodeImplicitAmbiguous
		}

		return nil, &Error{Code: code, Requested: requested, Candidates: res.Candidates, Chain: reversed(stack)}
	}

	owner := emit.Ref{PkgPath: c.Spec.PkgPath(), Name: c.Spec.Name()}
	member := emit.Select{X: owner, Sel: c.Item.Name}

	if c.Item.IsField() {
		return member, nil
	}

	for _, s := range stack {
		if s == c {
			return nil, &Error{
				Code:       diagnostic.CodeImplicitCycle,
				Requested:  requested,
				Candidates: []Candidate{c},
				Chain:      reversed(stack),
			}
		}
	}

	if len(stack) >= r.cfg.MaxDepth {
		return nil, &Error{Code: diagnostic.CodeImplicitTooDeep, Requested: requested, Chain: reversed(stack)}
	}

	next := append(stack[:len(stack):len(stack)], c)
	call := emit.Call{Fun: member, Ellipsis: c.Item.Variadic()}

	for _, p := range c.Item.Params {
		arg, err := r.build(p.Type, from, next)
		if err != nil {
			return nil, err
		}

		call.Args = append(call.Args, arg)
	}

	return call, nil
}

func reversed(stack []Candidate) []Candidate {
	if len(stack) == 0 {
		return nil
	}

	out := make([]Candidate, len(stack))
	for i, c := range stack {
		out[len(stack)-1-i] = c
	}

	return out
}

// Describe renders a resolution for logs.
func Describe(res Resolution) string {
	names := make([]string, 0, len(res.Candidates))
	for _, c := range res.Candidates {
		names = append(names, c.String())
	}

	return fmt.Sprintf("%s: %s [%s]", res.Requested, res.Outcome, strings.Join(names, ", "))
}
