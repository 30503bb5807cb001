// Package registry maps stable names to predicates and predicate factories
// so that rule sets can reference validation logic declaratively and remain
// identical across every runtime they are shared with.
//
// Entries carry a scope. Portable entries must be registered with the same
// name and observable behavior in every environment; Builtin returns a
// registry preloaded with all of them under their canonical names.
// Environment-bound entries are supplied by the local environment adapter
// only, and a name can be declared environment-bound without an
// implementation so that resolving it elsewhere fails with
// ErrUnsupportedPredicate rather than looking like a typo.
//
// # Lifecycle
//
// A registry is populated during process wiring and then sealed:
//
//	reg := registry.Builtin()
//	if err := adapter.Register(reg); err != nil {
//	    // abort startup, the validator is miswired
//	}
//	reg.Seal()
//
// After Seal every mutation fails with ErrRegistrySealed and the registry is
// safe for unlimited concurrent resolution. All registry errors are wiring
// bugs that should stop the process before it serves traffic; they never
// describe user data.
package registry
