package common

import (
	"path"
	"strconv"
	"strings"
	"unicode"
)

// UnknownStr is the String() fallback for out-of-range enum values.
const UnknownStr = "unknown"

// PkgAlias guesses the package name of an import path when no type
// information is available, the way goimports does: the last element,
// skipping a /vN major version, without a "go-" prefix and cut at the first
// rune that cannot appear in an identifier. Empty paths give "".
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if strings.HasPrefix(base, "v") {
		if _, err := strconv.Atoi(base[1:]); err == nil && path.Dir(pkgPath) != "." {
			base = path.Base(path.Dir(pkgPath))
		}
	}

	base = strings.TrimPrefix(base, "go-")
	if i := strings.IndexFunc(base, notIdentifier); i >= 0 {
		base = base[:i]
	}

	return base
}

func notIdentifier(r rune) bool {
	return !(r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r))
}
