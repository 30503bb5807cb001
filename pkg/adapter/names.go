package adapter

// Canonical names of environment-bound predicates. The names are shared so
// every environment agrees on what exists; the implementations are not, and
// each adapter supplies or declines them for its own runtime.
const (
	// PredEmailDomain checks that an email address's domain actually
	// resolves. Only environments with network access can supply it.
	PredEmailDomain = "email_domain"
)
