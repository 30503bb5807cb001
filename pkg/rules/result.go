package rules

import "sort"

// Result maps failed field keys to their failure messages in rule order.
// Fields that passed every rule are absent; an empty Result is the explicit
// "valid" signal.
//
// Result is plain data, not an error: the engine reports invalid input by
// returning entries here, never through an error channel. It marshals to the
// conventional {"field": ["msg", ...]} JSON shape.
type Result map[string][]string

// IsValid reports whether no rule failed.
func (r Result) IsValid() bool {
	return len(r) == 0
}

// Has reports whether field failed at least one rule.
func (r Result) Has(field string) bool {
	return len(r[field]) > 0
}

// Messages returns the failure messages for field in rule order, nil if the
// field passed.
func (r Result) Messages(field string) []string {
	return r[field]
}

// First returns the first failure message for field, or "".
func (r Result) First(field string) string {
	if msgs := r[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Fields returns the failed field keys, sorted for deterministic output.
func (r Result) Fields() []string {
	fields := make([]string, 0, len(r))
	for field := range r {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

func (r Result) add(field, message string) {
	r[field] = append(r[field], message)
}
