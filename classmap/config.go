package classmap

import "structmapper/introspect"

// NameMatching selects how the plain-record fallback pairs property names.
type NameMatching string

const (
	MatchExact      NameMatching = "exact"
	MatchNormalized NameMatching = "normalized" // case, '_' and '-' insensitive
)

// Configuration holds the global defaults every class map falls back to.
type Configuration struct {
	Wildcard       bool
	StopOnErrors   bool
	MapNull        bool
	MapEmptyString bool
	DateFormat     string
	BeanFactory    string
	Exclude        []string
	NameMatching   NameMatching
}

// DefaultConfiguration returns the built-in defaults: every flag on, exact
// name matching.
func DefaultConfiguration() Configuration {
	return Configuration{
		Wildcard:       true,
		StopOnErrors:   true,
		MapNull:        true,
		MapEmptyString: true,
		NameMatching:   MatchExact,
	}
}

// Exclusion returns the member-name exclusion predicate for this
// configuration.
func (c *Configuration) Exclusion() introspect.Exclusion {
	return introspect.ExcludeNames(c.Exclude...)
}
