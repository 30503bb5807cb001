package conformance

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validkit/validkit/pkg/adapter"
	"github.com/validkit/validkit/pkg/registry"
	"github.com/validkit/validkit/pkg/rules"
)

// Case is one input record a rule set is checked against in every
// environment.
type Case struct {
	Name   string
	Record map[string]string
}

// BuildFunc constructs the shared rule set against one environment's
// registry. It is called once per adapter with a fresh builtin registry that
// the adapter has populated, mirroring how each runtime wires itself at
// startup.
type BuildFunc func(reg *registry.Registry) (*rules.RuleSet, error)

// Run asserts the portability property a shared rule set exists to provide:
// for every case, validating through each adapter's environment yields an
// identical result. Wiring failures (registration, construction, binding)
// fail the test immediately; result divergence is reported per case and per
// environment pair.
func Run(t testing.TB, build BuildFunc, adapters []adapter.Adapter, cases []Case) {
	t.Helper()

	require.NotEmpty(t, adapters, "conformance needs at least one adapter")

	type environment struct {
		name  string
		bound *rules.RuleSet
	}

	envs := make([]environment, 0, len(adapters))
	for _, a := range adapters {
		reg := registry.Builtin()
		require.NoError(t, a.Register(reg), "adapter %q failed to register", a.Name())
		reg.Seal()

		rs, err := build(reg)
		require.NoError(t, err, "rule set construction failed in %q", a.Name())

		bound, err := a.Bind(rs)
		require.NoError(t, err, "adapter %q failed to bind", a.Name())

		envs = append(envs, environment{name: a.Name(), bound: bound})
	}

	for i, c := range cases {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("case %d", i)
		}

		reference, err := rules.Validate(envs[0].bound, c.Record)
		require.NoError(t, err, "%s: validation failed in %q", name, envs[0].name)

		for _, env := range envs[1:] {
			result, err := rules.Validate(env.bound, c.Record)
			require.NoError(t, err, "%s: validation failed in %q", name, env.name)

			assert.Equal(t, reference, result,
				"%s: %q and %q disagree", name, envs[0].name, env.name)
		}
	}
}
