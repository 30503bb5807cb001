package adapter

import (
	"github.com/validkit/validkit/pkg/registry"
	"github.com/validkit/validkit/pkg/rules"
)

// Params maps parameter names to the factory configuration strings an
// environment supplies for placeholder rules.
type Params map[string]string

// Merge returns a copy of p with overrides applied on top. Neither input is
// modified.
func (p Params) Merge(overrides Params) Params {
	merged := make(Params, len(p)+len(overrides))
	for name, value := range p {
		merged[name] = value
	}
	for name, value := range overrides {
		merged[name] = value
	}
	return merged
}

// Adapter is the single place environment-specific validation code lives.
// Everything else, the rule sets, the predicate contracts, and the engine,
// is identical across runtimes.
//
// An adapter is wired once at startup: Register adds its environment-bound
// predicates to the local registry before it is sealed, and Bind completes a
// shared rule set's placeholder rules with this environment's parameter
// values. Bind must return a new rule set and leave its input untouched.
type Adapter interface {
	// Name identifies the environment, e.g. "server" or "client".
	Name() string

	// Register adds the environment-bound predicates this runtime supplies.
	Register(reg *registry.Registry) error

	// Bind substitutes environment-sourced parameters into the rule set's
	// placeholder rules and returns the resolved copy.
	Bind(rs *rules.RuleSet) (*rules.RuleSet, error)
}
