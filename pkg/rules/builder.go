package rules

import (
	"errors"
	"fmt"

	"github.com/validkit/validkit/pkg/predicate"
	"github.com/validkit/validkit/pkg/registry"
)

// Builder assembles a RuleSet declaratively. Entries are recorded in call
// order, which is the order the engine evaluates them in and the order
// failure messages appear in per field.
//
// Wiring problems (empty field keys, unresolvable predicate references, bad
// factory configs) are collected as they are encountered and reported
// together by Build, so a typo fails the whole rule set at construction
// time, long before any input is validated.
type Builder struct {
	name  string
	reg   *registry.Registry
	rules []Rule
	errs  []error
}

// New starts a rule set named name, resolving predicate references against
// reg.
func New(name string, reg *registry.Registry) *Builder {
	b := &Builder{name: name, reg: reg}
	if name == "" {
		b.errs = append(b.errs, fmt.Errorf("%w: rule set name cannot be empty", ErrMalformedRule))
	}
	if reg == nil {
		b.errs = append(b.errs, fmt.Errorf("%w: rule set %q needs a registry", ErrMalformedRule, name))
	}
	return b
}

// Field adds a rule applying the named predicate to field. An empty message
// selects the default message for the reference.
func (b *Builder) Field(field, ref, message string) *Builder {
	if !b.checkField(field) {
		return b
	}

	p, err := b.reg.Resolve(ref)
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("rule %q on field %q: %w", ref, field, err))
		return b
	}

	b.rules = append(b.rules, Rule{
		Field:   field,
		Message: b.message(message, ref, field),
		Ref:     ref,
		pred:    p,
	})
	return b
}

// Fields fans one logical rule out over several fields, all sharing the
// predicate reference and the message template.
func (b *Builder) Fields(fields []string, ref, message string) *Builder {
	if len(fields) == 0 {
		b.errs = append(b.errs, fmt.Errorf("%w: rule %q lists no fields", ErrMalformedRule, ref))
		return b
	}
	for _, field := range fields {
		b.Field(field, ref, message)
	}
	return b
}

// Fn adds a rule with an inline predicate, for cases that need no registry
// indirection and no environment substitution.
func (b *Builder) Fn(field string, p predicate.Predicate, message string) *Builder {
	if !b.checkField(field) {
		return b
	}
	if p == nil {
		b.errs = append(b.errs, fmt.Errorf("%w: nil predicate for field %q", ErrMalformedRule, field))
		return b
	}

	b.rules = append(b.rules, Rule{
		Field:   field,
		Message: b.message(message, "", field),
		pred:    p,
	})
	return b
}

// Config adds a rule built by the named factory from a literal configuration
// string, resolved and applied immediately.
func (b *Builder) Config(field, ref, config, message string) *Builder {
	if !b.checkField(field) {
		return b
	}

	f, err := b.reg.ResolveFactory(ref)
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("rule %q on field %q: %w", ref, field, err))
		return b
	}

	p, err := f(config)
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("rule %q on field %q: %w", ref, field, err))
		return b
	}

	b.rules = append(b.rules, Rule{
		Field:   field,
		Message: b.message(message, ref, field),
		Ref:     ref,
		pred:    p,
	})
	return b
}

// Param adds a placeholder rule: the named factory is resolved now, to catch
// typos, but its configuration arrives at adapter binding time under
// paramKey. The rule set cannot be validated until an adapter binds it.
func (b *Builder) Param(field, ref, paramKey, message string) *Builder {
	if !b.checkField(field) {
		return b
	}
	if paramKey == "" {
		b.errs = append(b.errs, fmt.Errorf("%w: empty param key for rule %q on field %q", ErrMalformedRule, ref, field))
		return b
	}

	f, err := b.reg.ResolveFactory(ref)
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("rule %q on field %q: %w", ref, field, err))
		return b
	}

	b.rules = append(b.rules, Rule{
		Field:    field,
		Message:  b.message(message, ref, field),
		Ref:      ref,
		ParamKey: paramKey,
		factory:  f,
	})
	return b
}

// Build returns the assembled rule set, or every wiring error collected
// since New.
func (b *Builder) Build() (*RuleSet, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}

	rules := make([]Rule, len(b.rules))
	copy(rules, b.rules)
	return &RuleSet{name: b.name, rules: rules}, nil
}

func (b *Builder) checkField(field string) bool {
	if b.reg == nil {
		// Already reported by New; skip so we don't panic resolving.
		return false
	}
	if field == "" {
		b.errs = append(b.errs, fmt.Errorf("%w: field key cannot be empty", ErrMalformedRule))
		return false
	}
	return true
}

func (b *Builder) message(message, ref, field string) string {
	if message != "" {
		return message
	}
	return defaultMessage(ref, field)
}
