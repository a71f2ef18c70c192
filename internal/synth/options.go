package synth

import (
	"fmt"
	"strings"
)

// Policy decides what happens when an implicit interface has no unique
// provider.
type Policy string

const (
	PolicySkip  Policy = "skip"  // drop the interface, record an info diagnostic
	PolicyWarn  Policy = "warn"  // drop the interface, record a warning
	PolicyError Policy = "error" // drop the interface, record an error
)

// ParsePolicy validates a policy name.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicySkip, PolicyWarn, PolicyError:
		return p, nil
	case "":
		return PolicySkip, nil
	default:
		return "", fmt.Errorf("unknown interface policy %q (want skip, warn or error)", s)
	}
}

// DefaultTuplePkg is the import path of the tuple family used by case classes.
const DefaultTuplePkg = "adtgen/tuple"

// Options configures naming and failure policies.
type Options struct {
	// InterfacePolicy applies to implements= entries without a unique provider.
	InterfacePolicy Policy
	// CaseSuffix is trimmed from //adt:case type names ("pointCase" -> "Point").
	CaseSuffix string
	// ClassSuffix is trimmed from implicit-class base names ("ServiceBase" -> "Service").
	ClassSuffix string
	// TuplePkg is the import path of the tuple package.
	TuplePkg string
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		InterfacePolicy: PolicySkip,
		CaseSuffix:      "Case",
		ClassSuffix:     "Base",
		TuplePkg:        DefaultTuplePkg,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()

	if o.InterfacePolicy == "" {
		o.InterfacePolicy = def.InterfacePolicy
	}

	if o.TuplePkg == "" {
		o.TuplePkg = def.TuplePkg
	}

	return o
}
