package gen

import (
	"go/types"
	"sort"
	"strconv"

	"adtgen/internal/common"
)

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// importSet assigns qualifiers to the packages referenced from one file.
type importSet struct {
	self   string            // path of the package being generated
	names  map[string]string // known package names by path
	byPath map[string]string // qualifier by path
	taken  map[string]string // path by qualifier
}

func newImportSet(self string, names map[string]string) *importSet {
	known := make(map[string]string, len(names))
	for path, name := range names {
		known[path] = name
	}

	return &importSet{
		self:   self,
		names:  known,
		byPath: make(map[string]string),
		taken:  make(map[string]string),
	}
}

// qualify returns the qualifier for path, registering the import on first
// use. References to the generated package itself are unqualified.
func (s *importSet) qualify(path, name string) string {
	if path == "" || path == s.self {
		return ""
	}

	if q, ok := s.byPath[path]; ok {
		return q
	}

	if name == "" {
		name = s.packageName(path)
	} else {
		s.names[path] = name
	}

	q := name
	for i := 2; s.taken[q] != ""; i++ {
		q = name + strconv.Itoa(i)
	}

	s.byPath[path] = q
	s.taken[q] = path

	return q
}

// qualifier adapts the set to types.TypeString.
func (s *importSet) qualifier(pkg *types.Package) string {
	return s.qualify(pkg.Path(), pkg.Name())
}

func (s *importSet) packageName(path string) string {
	if name, ok := s.names[path]; ok {
		return name
	}

	return common.PkgAlias(path)
}

// specs returns the imports sorted by path. The alias is spelled only when it
// differs from the package name.
func (s *importSet) specs() []importSpec {
	out := make([]importSpec, 0, len(s.byPath))

	for path, q := range s.byPath {
		spec := importSpec{Path: path}
		if q != s.packageName(path) {
			spec.Alias = q
		}

		out = append(out, spec)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })

	return out
}
