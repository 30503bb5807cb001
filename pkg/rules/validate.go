package rules

import "fmt"

// Validate evaluates every rule of rs against record, in declared order, and
// returns the accumulated failures per field. An absent field is presented
// to its predicates as the empty string. Nothing short-circuits: a failing
// rule never skips later rules for the same or other fields, so one pass
// surfaces every applicable message.
//
// Validate is pure: it reads record, mutates neither input, and two calls
// with the same arguments return equal results, so concurrent calls need no
// coordination.
//
// The returned error reports wiring problems only, never invalid input:
// ErrNilRuleSet, or ErrUnboundParam when the rule set still contains
// placeholder rules no adapter has bound. Invalid input is reported
// exclusively through Result entries; an empty Result means valid.
func Validate(rs *RuleSet, record map[string]string) (Result, error) {
	if rs == nil {
		return nil, ErrNilRuleSet
	}

	// Check wiring before evaluating anything so a miswired rule set never
	// produces a partial result.
	for _, r := range rs.rules {
		if !r.Bound() {
			return nil, fmt.Errorf("%w: rule set %q needs param %q for rule %q on field %q",
				ErrUnboundParam, rs.name, r.ParamKey, r.Ref, r.Field)
		}
	}

	result := make(Result)
	for _, r := range rs.rules {
		if !r.pred(record[r.Field]) {
			result.add(r.Field, r.Message)
		}
	}
	return result, nil
}
