// Package credentials declares the user credential rule set shared by every
// runtime. The declaration lives here exactly once; environments differ only
// in how their adapters bind the password policy parameter and whether they
// can supply the email-domain predicate.
package credentials

import (
	"github.com/validkit/validkit/pkg/adapter"
	"github.com/validkit/validkit/pkg/registry"
	"github.com/validkit/validkit/pkg/ruleconfig"
	"github.com/validkit/validkit/pkg/rules"
)

// Rule set names.
const (
	// Name identifies the portable credential rule set.
	Name = "user_credentials"

	// StrictName identifies the variant that additionally verifies the
	// email domain. It only builds in environments whose adapter supplies
	// that predicate.
	StrictName = "user_credentials_strict"
)

// Field keys of the credential input record.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// RuleSet builds the portable credential rule set against reg. The password
// policy is a placeholder bound from the shared configuration's
// password_format parameter by the local adapter.
func RuleSet(reg *registry.Registry) (*rules.RuleSet, error) {
	return rules.New(Name, reg).
		Field(FieldEmail, registry.PredPresent, "Email can't be empty").
		Field(FieldEmail, registry.PredEmail, "Invalid email format").
		Field(FieldPassword, registry.PredPresent, "Password can't be empty").
		Param(FieldPassword, registry.FactoryPassword, ruleconfig.ParamPasswordFormat, "Invalid password format").
		Build()
}

// StrictRuleSet builds the credential rule set plus the environment-bound
// email-domain rule. Environments lacking the predicate fail here, at
// construction, rather than quietly validating less than the server does.
func StrictRuleSet(reg *registry.Registry) (*rules.RuleSet, error) {
	return rules.New(StrictName, reg).
		Field(FieldEmail, registry.PredPresent, "Email can't be empty").
		Field(FieldEmail, registry.PredEmail, "Invalid email format").
		Field(FieldEmail, adapter.PredEmailDomain, "Email domain does not exist").
		Field(FieldPassword, registry.PredPresent, "Password can't be empty").
		Param(FieldPassword, registry.FactoryPassword, ruleconfig.ParamPasswordFormat, "Invalid password format").
		Build()
}
