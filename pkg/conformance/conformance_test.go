package conformance_test

import (
	"testing"

	"github.com/validkit/validkit/pkg/adapter"
	"github.com/validkit/validkit/pkg/adapter/client"
	"github.com/validkit/validkit/pkg/adapter/server"
	"github.com/validkit/validkit/pkg/conformance"
	"github.com/validkit/validkit/pkg/registry"
	"github.com/validkit/validkit/pkg/ruleconfig"
	"github.com/validkit/validkit/pkg/rules"
)

// Both adapters share one configuration value, so a rule set with a
// parameterized rule must validate identically through either.
func TestRun_SharedConfigurationAgrees(t *testing.T) {
	shared := ruleconfig.Default()

	srv, err := server.New(server.WithRuleConfig(shared))
	if err != nil {
		t.Fatal(err)
	}

	build := func(reg *registry.Registry) (*rules.RuleSet, error) {
		return rules.New("signup", reg).
			Field("email", "present", "Email can't be empty").
			Field("email", "email", "Invalid email format").
			Field("password", "present", "Password can't be empty").
			Param("password", "password", ruleconfig.ParamPasswordFormat, "Invalid password format").
			Build()
	}

	conformance.Run(t, build,
		[]adapter.Adapter{srv, client.New(shared)},
		[]conformance.Case{
			{Name: "all empty", Record: map[string]string{}},
			{Name: "bad email empty password", Record: map[string]string{"email": "bad", "password": ""}},
			{Name: "valid", Record: map[string]string{"email": "x@y.com", "password": "ab12"}},
			{Name: "password too long", Record: map[string]string{"email": "x@y.com", "password": "abcdefgh123"}},
			{Name: "password without digit", Record: map[string]string{"email": "x@y.com", "password": "abcdef"}},
		})
}
