package server

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/validkit/validkit/pkg/adapter"
	"github.com/validkit/validkit/pkg/registry"
	"github.com/validkit/validkit/pkg/ruleconfig"
	"github.com/validkit/validkit/pkg/rules"
)

// ErrLoadConfig is returned when the adapter cannot assemble its rule
// parameters at startup.
var ErrLoadConfig = errors.New("failed to load server validation config")

// Config locates the shared rule configuration through the server process
// environment.
type Config struct {
	// RulesFile points at the shared YAML rule configuration. Empty means
	// the compiled-in default.
	RulesFile string `env:"VALIDATION_RULES_FILE"`
}

// DomainChecker reports whether an email domain exists. Implementations
// (DNS lookups, allowlists) live outside the validation core and are
// injected into the adapter.
type DomainChecker func(domain string) bool

var defaultEnvLoaded sync.Once

// Adapter supplies the server runtime's environment-bound predicates and
// rule parameters.
type Adapter struct {
	params        adapter.Params
	domainChecker DomainChecker
}

// Option configures the adapter.
type Option func(*options)

type options struct {
	ruleConfig    *ruleconfig.Config
	overrides     adapter.Params
	domainChecker DomainChecker
}

// WithRuleConfig uses an already-loaded shared configuration instead of
// consulting the process environment for a file path.
func WithRuleConfig(cfg *ruleconfig.Config) Option {
	return func(o *options) {
		o.ruleConfig = cfg
	}
}

// WithParams overlays explicit parameter values on top of the shared
// configuration. Meant for tests and one-off tools; production parameters
// belong in the shared configuration so the client stays in agreement.
func WithParams(params adapter.Params) Option {
	return func(o *options) {
		o.overrides = params
	}
}

// WithDomainChecker supplies the email-domain predicate implementation.
// Without it the adapter declares the predicate unsupported, like any
// environment lacking the capability.
func WithDomainChecker(fn DomainChecker) Option {
	return func(o *options) {
		o.domainChecker = fn
	}
}

// New assembles the server adapter. The shared rule configuration is taken
// from WithRuleConfig, the VALIDATION_RULES_FILE environment variable, or
// the compiled-in default, in that order of preference. A .env file in the
// working directory is honored the first time any adapter is built.
func New(opts ...Option) (*Adapter, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	rc := o.ruleConfig
	if rc == nil {
		defaultEnvLoaded.Do(func() {
			// The .env file might not exist and that's ok.
			_ = godotenv.Load()
		})

		var cfg Config
		if err := env.Parse(&cfg); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}

		if cfg.RulesFile != "" {
			loaded, err := ruleconfig.LoadFile(cfg.RulesFile)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
			}
			rc = loaded
		} else {
			rc = ruleconfig.Default()
		}
	}

	return &Adapter{
		params:        adapter.Params(rc.Params).Merge(o.overrides),
		domainChecker: o.domainChecker,
	}, nil
}

// Name implements adapter.Adapter.
func (a *Adapter) Name() string {
	return "server"
}

// Register adds the server's environment-bound predicates. The email-domain
// predicate is registered when a checker was injected and declared
// unsupported otherwise.
func (a *Adapter) Register(reg *registry.Registry) error {
	if a.domainChecker == nil {
		return reg.DeclareEnvironment(adapter.PredEmailDomain)
	}

	checker := a.domainChecker
	p := func(value string) bool {
		_, domain, ok := strings.Cut(value, "@")
		if !ok || domain == "" {
			return false
		}
		return checker(domain)
	}
	return reg.Register(adapter.PredEmailDomain, p, registry.ScopeEnvironment)
}

// Bind completes the rule set's placeholder rules with the server's
// parameters.
func (a *Adapter) Bind(rs *rules.RuleSet) (*rules.RuleSet, error) {
	return rs.WithParams(a.params)
}

// Params returns a copy of the parameters the adapter binds with.
func (a *Adapter) Params() adapter.Params {
	return adapter.Params(nil).Merge(a.params)
}
