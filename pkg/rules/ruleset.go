package rules

import (
	"errors"
	"fmt"
)

// RuleSet is an ordered, immutable collection of rules under a stable name.
// Both runtime environments hold the same rule set value; only placeholder
// parameters differ in how they are sourced, and adapter binding resolves
// those without touching the original.
type RuleSet struct {
	name  string
	rules []Rule
}

// Name returns the rule set's stable name.
func (rs *RuleSet) Name() string {
	return rs.name
}

// Len returns the number of rules.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// Rules returns a copy of the rules in declared order.
func (rs *RuleSet) Rules() []Rule {
	out := make([]Rule, len(rs.rules))
	copy(out, rs.rules)
	return out
}

// Bound reports whether every rule carries a ready predicate.
func (rs *RuleSet) Bound() bool {
	for _, r := range rs.rules {
		if !r.Bound() {
			return false
		}
	}
	return true
}

// ParamKeys returns the distinct parameter names the rule set's placeholder
// rules require, in declared order. Adapters use this to know what they must
// supply.
func (rs *RuleSet) ParamKeys() []string {
	seen := make(map[string]struct{})
	var keys []string
	for _, r := range rs.rules {
		if r.ParamKey == "" {
			continue
		}
		if _, ok := seen[r.ParamKey]; ok {
			continue
		}
		seen[r.ParamKey] = struct{}{}
		keys = append(keys, r.ParamKey)
	}
	return keys
}

// WithParams returns a copy of the rule set with every placeholder rule
// completed by applying its factory to the named parameter value. The
// receiver is never modified, so one declarative rule set can be bound
// independently by any number of environments.
//
// A parameter the rule set needs but params lacks fails with
// ErrMissingParam; a parameter value the factory cannot parse fails with the
// factory's error. All binding errors are reported together.
func (rs *RuleSet) WithParams(params map[string]string) (*RuleSet, error) {
	bound := &RuleSet{name: rs.name, rules: make([]Rule, len(rs.rules))}
	copy(bound.rules, rs.rules)

	var errs []error
	for i := range bound.rules {
		r := &bound.rules[i]
		if r.ParamKey == "" {
			continue
		}

		value, ok := params[r.ParamKey]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q for rule %q on field %q", ErrMissingParam, r.ParamKey, r.Ref, r.Field))
			continue
		}

		p, err := r.factory(value)
		if err != nil {
			errs = append(errs, fmt.Errorf("param %q for field %q: %w", r.ParamKey, r.Field, err))
			continue
		}
		r.pred = p
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return bound, nil
}
