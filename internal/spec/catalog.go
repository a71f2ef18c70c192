package spec

import (
	"slices"

	"adtgen/internal/analyze"
)

// Catalog is the ordered set of specs of one generation run. Specs are kept
// sorted by package path, then source position.
type Catalog struct {
	specs []*Spec
}

// NewCatalog returns a catalog holding specs.
func NewCatalog(specs ...*Spec) *Catalog {
	c := &Catalog{}
	for _, s := range specs {
		c.Add(s)
	}

	return c
}

// Add inserts s at its ordered position. Specs that compare equal keep their
// insertion order.
func (c *Catalog) Add(s *Spec) {
	i := len(c.specs)
	for i > 0 && specLess(s, c.specs[i-1]) {
		i--
	}

	c.specs = slices.Insert(c.specs, i, s)
}

// Specs returns every spec in catalog order.
func (c *Catalog) Specs() []*Spec { return c.specs }

// Len returns the number of specs.
func (c *Catalog) Len() int { return len(c.specs) }

// OfKind returns the specs of one kind in catalog order.
func (c *Catalog) OfKind(kind Kind) []*Spec {
	var out []*Spec

	for _, s := range c.specs {
		if s.Kind == kind {
			out = append(out, s)
		}
	}

	return out
}

func specLess(a, b *Spec) bool {
	if pa, pb := a.PkgPath(), b.PkgPath(); pa != pb {
		return pa < pb
	}

	return positionBefore(a.Decl, b.Decl)
}

func positionBefore(a, b *analyze.Decl) bool {
	if a.Pos.Filename != b.Pos.Filename {
		return a.Pos.Filename < b.Pos.Filename
	}

	return a.Pos.Offset < b.Pos.Offset
}
