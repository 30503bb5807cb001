package client

import (
	"github.com/validkit/validkit/pkg/adapter"
	"github.com/validkit/validkit/pkg/predicate"
	"github.com/validkit/validkit/pkg/registry"
	"github.com/validkit/validkit/pkg/ruleconfig"
	"github.com/validkit/validkit/pkg/rules"
)

// Adapter supplies rule parameters in a client runtime (a browser build, a
// desktop shell) where parameters may also be scraped from live document
// attributes.
//
// The shared configuration is authoritative: attribute values only fill
// parameters the shared configuration does not define. A form's pattern
// attribute is therefore a rendering of the shared policy, never a second
// source of truth that could drift from the server's.
type Adapter struct {
	params     adapter.Params
	predicates map[string]predicate.Predicate
}

// Option configures the adapter.
type Option func(*Adapter)

// WithAttributes supplies parameter values scraped from the host document,
// e.g. a form element's pattern and length attributes.
func WithAttributes(attrs adapter.Params) Option {
	return func(a *Adapter) {
		a.params = attrs.Merge(a.params)
	}
}

// WithPredicate supplies a client-only predicate implementation, e.g. one
// backed by live document state.
func WithPredicate(name string, p predicate.Predicate) Option {
	return func(a *Adapter) {
		a.predicates[name] = p
	}
}

// New assembles the client adapter around the shared rule configuration the
// server shipped with the rule set. A nil shared configuration falls back to
// the compiled-in default, keeping both environments on the same value.
func New(shared *ruleconfig.Config, opts ...Option) *Adapter {
	if shared == nil {
		shared = ruleconfig.Default()
	}

	a := &Adapter{
		params:     adapter.Params(nil).Merge(adapter.Params(shared.Params)),
		predicates: make(map[string]predicate.Predicate),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name implements adapter.Adapter.
func (a *Adapter) Name() string {
	return "client"
}

// Register adds any client-only predicates and declares the server-only
// ones unsupported, so a rule set that needs them fails loudly here instead
// of validating differently.
func (a *Adapter) Register(reg *registry.Registry) error {
	for name, p := range a.predicates {
		if err := reg.Register(name, p, registry.ScopeEnvironment); err != nil {
			return err
		}
	}

	if _, ok := a.predicates[adapter.PredEmailDomain]; !ok {
		if err := reg.DeclareEnvironment(adapter.PredEmailDomain); err != nil {
			return err
		}
	}
	return nil
}

// Bind completes the rule set's placeholder rules with the client's
// parameters.
func (a *Adapter) Bind(rs *rules.RuleSet) (*rules.RuleSet, error) {
	return rs.WithParams(a.params)
}

// Params returns a copy of the parameters the adapter binds with.
func (a *Adapter) Params() adapter.Params {
	return adapter.Params(nil).Merge(a.params)
}
