package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validkit/validkit/pkg/adapter"
	"github.com/validkit/validkit/pkg/adapter/client"
	"github.com/validkit/validkit/pkg/predicate"
	"github.com/validkit/validkit/pkg/registry"
	"github.com/validkit/validkit/pkg/ruleconfig"
	"github.com/validkit/validkit/pkg/rules"
)

func TestNew(t *testing.T) {
	t.Run("uses the shared configuration", func(t *testing.T) {
		a := client.New(&ruleconfig.Config{
			Params: map[string]string{ruleconfig.ParamPasswordFormat: "6,12"},
		})

		assert.Equal(t, "client", a.Name())
		assert.Equal(t, "6,12", a.Params()[ruleconfig.ParamPasswordFormat])
	})

	t.Run("nil shared configuration falls back to default", func(t *testing.T) {
		a := client.New(nil)

		assert.Equal(t, "4,8,[0-9]", a.Params()[ruleconfig.ParamPasswordFormat])
	})

	t.Run("shared configuration is authoritative over attributes", func(t *testing.T) {
		a := client.New(ruleconfig.Default(), client.WithAttributes(adapter.Params{
			ruleconfig.ParamPasswordFormat: "1,99", // drifted form attribute
			"username_pattern":             "^[a-z]+$",
		}))

		assert.Equal(t, "4,8,[0-9]", a.Params()[ruleconfig.ParamPasswordFormat])
		assert.Equal(t, "^[a-z]+$", a.Params()["username_pattern"])
	})
}

func TestAdapter_Register(t *testing.T) {
	t.Run("declares server-only predicates unsupported", func(t *testing.T) {
		reg := registry.Builtin()
		require.NoError(t, client.New(nil).Register(reg))

		_, err := reg.Resolve(adapter.PredEmailDomain)
		assert.ErrorIs(t, err, registry.ErrUnsupportedPredicate)
	})

	t.Run("registers injected client predicates", func(t *testing.T) {
		live := func(value string) bool { return value == "live" }

		reg := registry.Builtin()
		a := client.New(nil, client.WithPredicate("document_state", live))
		require.NoError(t, a.Register(reg))

		p, err := reg.Resolve("document_state")
		require.NoError(t, err)
		assert.True(t, p("live"))

		scope, err := reg.Scope("document_state")
		require.NoError(t, err)
		assert.Equal(t, registry.ScopeEnvironment, scope)
	})

	t.Run("injected email domain predicate satisfies the declaration", func(t *testing.T) {
		reg := registry.Builtin()
		a := client.New(nil, client.WithPredicate(adapter.PredEmailDomain, predicate.Present))
		require.NoError(t, a.Register(reg))

		_, err := reg.Resolve(adapter.PredEmailDomain)
		assert.NoError(t, err)
	})
}

func TestAdapter_Bind(t *testing.T) {
	a := client.New(nil)

	rs, err := rules.New("signup", registry.Builtin()).
		Param("password", "password", ruleconfig.ParamPasswordFormat, "Invalid password format").
		Build()
	require.NoError(t, err)

	bound, err := a.Bind(rs)
	require.NoError(t, err)

	assert.True(t, bound.Bound())
	assert.False(t, rs.Bound())

	result, err := rules.Validate(bound, map[string]string{"password": "abcd1"})
	require.NoError(t, err)
	assert.True(t, result.IsValid())
}
