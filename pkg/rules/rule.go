package rules

import "github.com/validkit/validkit/pkg/predicate"

// Rule is one declarative validation unit: the field it inspects, the
// predicate it applies, and the message emitted when the predicate fails.
//
// A rule is either bound (it carries a ready predicate) or a placeholder (it
// carries a factory plus the name of an environment-sourced parameter that
// completes it during adapter binding).
type Rule struct {
	// Field is the input record key the rule inspects.
	Field string

	// Message is emitted into the Result when the predicate fails.
	Message string

	// Ref is the registry name the predicate or factory was resolved from,
	// empty for inline predicates. Kept for diagnostics.
	Ref string

	// ParamKey names the environment-sourced parameter that configures a
	// placeholder rule's factory. Empty for fully bound rules.
	ParamKey string

	pred    predicate.Predicate
	factory predicate.Factory
}

// Bound reports whether the rule carries a ready predicate.
func (r Rule) Bound() bool {
	return r.pred != nil
}
