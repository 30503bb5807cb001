package predicate

// Predicate reports whether a single raw field value is acceptable.
//
// Predicates are pure and total: they must return a defined result for any
// input, including the empty string used as the sentinel for an absent field,
// and must never panic. Predicates that need to distinguish "absent" from
// "invalid" should be combined with Present rather than raising.
type Predicate func(value string) bool

// Factory builds a parameterized Predicate from a configuration string.
// The configuration format is factory-specific (a regular expression, a
// comma-separated range, a list of choices). Factories return an error for
// configuration they cannot parse so that wiring mistakes surface before any
// value is validated.
type Factory func(config string) (Predicate, error)

// Not inverts a predicate.
func Not(p Predicate) Predicate {
	return func(value string) bool {
		return !p(value)
	}
}

// All combines predicates conjunctively: the result passes only when every
// predicate passes.
func All(ps ...Predicate) Predicate {
	return func(value string) bool {
		for _, p := range ps {
			if !p(value) {
				return false
			}
		}
		return true
	}
}

// Any combines predicates disjunctively: the result passes when at least one
// predicate passes. With no predicates it always fails.
func Any(ps ...Predicate) Predicate {
	return func(value string) bool {
		for _, p := range ps {
			if p(value) {
				return true
			}
		}
		return false
	}
}
