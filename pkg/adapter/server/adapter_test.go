package server_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validkit/validkit/pkg/adapter"
	"github.com/validkit/validkit/pkg/adapter/server"
	"github.com/validkit/validkit/pkg/registry"
	"github.com/validkit/validkit/pkg/ruleconfig"
	"github.com/validkit/validkit/pkg/rules"
)

func TestNew(t *testing.T) {
	t.Run("defaults to compiled-in configuration", func(t *testing.T) {
		t.Setenv("VALIDATION_RULES_FILE", "")

		a, err := server.New()
		require.NoError(t, err)

		assert.Equal(t, "server", a.Name())
		assert.Equal(t, "4,8,[0-9]", a.Params()[ruleconfig.ParamPasswordFormat])
	})

	t.Run("loads rules file from environment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		require.NoError(t, os.WriteFile(path, []byte("params:\n  password_format: \"10,64,[0-9]\"\n"), 0o600))
		t.Setenv("VALIDATION_RULES_FILE", path)

		a, err := server.New()
		require.NoError(t, err)

		assert.Equal(t, "10,64,[0-9]", a.Params()[ruleconfig.ParamPasswordFormat])
	})

	t.Run("fails on unreadable rules file", func(t *testing.T) {
		t.Setenv("VALIDATION_RULES_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

		_, err := server.New()
		assert.ErrorIs(t, err, server.ErrLoadConfig)
	})

	t.Run("explicit rule config wins over environment", func(t *testing.T) {
		t.Setenv("VALIDATION_RULES_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

		a, err := server.New(server.WithRuleConfig(&ruleconfig.Config{
			Params: map[string]string{ruleconfig.ParamPasswordFormat: "6,12"},
		}))
		require.NoError(t, err)

		assert.Equal(t, "6,12", a.Params()[ruleconfig.ParamPasswordFormat])
	})

	t.Run("param overrides win over the shared config", func(t *testing.T) {
		a, err := server.New(
			server.WithRuleConfig(ruleconfig.Default()),
			server.WithParams(adapter.Params{ruleconfig.ParamPasswordFormat: "1,4"}),
		)
		require.NoError(t, err)

		assert.Equal(t, "1,4", a.Params()[ruleconfig.ParamPasswordFormat])
	})
}

func TestAdapter_Register(t *testing.T) {
	t.Run("registers email domain predicate when checker injected", func(t *testing.T) {
		a, err := server.New(
			server.WithRuleConfig(ruleconfig.Default()),
			server.WithDomainChecker(func(domain string) bool {
				return domain == "example.com"
			}),
		)
		require.NoError(t, err)

		reg := registry.Builtin()
		require.NoError(t, a.Register(reg))
		reg.Seal()

		p, err := reg.Resolve(adapter.PredEmailDomain)
		require.NoError(t, err)

		assert.True(t, p("user@example.com"))
		assert.False(t, p("user@nowhere.test"))
		assert.False(t, p("no-at-sign"))
		assert.False(t, p("user@"))

		scope, err := reg.Scope(adapter.PredEmailDomain)
		require.NoError(t, err)
		assert.Equal(t, registry.ScopeEnvironment, scope)
	})

	t.Run("declares the predicate unsupported without a checker", func(t *testing.T) {
		a, err := server.New(server.WithRuleConfig(ruleconfig.Default()))
		require.NoError(t, err)

		reg := registry.Builtin()
		require.NoError(t, a.Register(reg))

		_, err = reg.Resolve(adapter.PredEmailDomain)
		assert.ErrorIs(t, err, registry.ErrUnsupportedPredicate)
	})
}

func TestAdapter_Bind(t *testing.T) {
	a, err := server.New(server.WithRuleConfig(ruleconfig.Default()))
	require.NoError(t, err)

	rs, err := rules.New("signup", registry.Builtin()).
		Field("password", "present", "Password can't be empty").
		Param("password", "password", ruleconfig.ParamPasswordFormat, "Invalid password format").
		Build()
	require.NoError(t, err)

	bound, err := a.Bind(rs)
	require.NoError(t, err)

	assert.True(t, bound.Bound())
	assert.False(t, rs.Bound(), "bind must not mutate the shared rule set")

	result, err := rules.Validate(bound, map[string]string{"password": "ab12"})
	require.NoError(t, err)
	assert.True(t, result.IsValid())
}
