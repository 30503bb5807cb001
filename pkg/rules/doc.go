// Package rules defines the declarative rule set and the engine that
// evaluates it against an input record.
//
// A RuleSet is an ordered list of field/predicate/message triples built once
// at startup and shared, unmodified, between every runtime environment. The
// builder resolves predicate references against a registry while the set is
// being constructed, so an unknown name or unusable configuration fails fast
// with a wiring error instead of surfacing during traffic.
//
// Rules that depend on an environment-sourced parameter (a pattern read from
// configuration, length bounds read from a live form) are declared as
// placeholders with Param and completed later by an environment adapter
// through WithParams, which copies the set rather than mutating it.
//
// # Evaluation
//
// Validate walks the rules in declared order against a field→value record,
// substituting the empty string for absent fields, and accumulates every
// failing rule's message under its field:
//
//	rs, err := rules.New("signup", reg).
//	    Field("email", "present", "Email can't be empty").
//	    Field("email", "email", "Invalid email format").
//	    Build()
//	if err != nil {
//	    // wiring bug, abort startup
//	}
//
//	result, err := rules.Validate(rs, record)
//	if result.IsValid() {
//	    // every rule passed
//	}
//
// Invalid input is never an error: it comes back as Result entries, ordered
// per field by rule declaration order. The error return carries wiring
// problems only. Validate is pure and rule sets are immutable after Build,
// so everything here is safe for unlimited concurrent use.
package rules
