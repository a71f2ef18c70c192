package implicit

//go:generate go tool stringer -type=Outcome -trimprefix=Outcome -output=outcome_string.go

// Outcome is the result class of a provider search.
type Outcome int

const (
	OutcomeUnique    Outcome = iota // exactly one provider
	OutcomeNoMatch                  // no provider
	OutcomeAmbiguous                // two or more providers
)
