package rules

import "errors"

// Construction and binding errors. Like registry errors these are wiring
// bugs: they should abort startup rather than reach a user. Failures found
// in user data are never errors; they come back as Result entries.
var (
	// ErrMalformedRule is returned when a rule is built from an empty field
	// key, a nil predicate, or an empty rule set name.
	ErrMalformedRule = errors.New("malformed rule")

	// ErrMissingParam is returned by WithParams when a placeholder rule
	// references a parameter the environment did not supply.
	ErrMissingParam = errors.New("missing rule parameter")

	// ErrUnboundParam is returned by Validate when a rule set still contains
	// placeholder rules that no adapter has bound.
	ErrUnboundParam = errors.New("unbound rule parameter")

	// ErrNilRuleSet is returned by Validate when given a nil rule set.
	ErrNilRuleSet = errors.New("nil rule set")
)
