package registry

import "errors"

// Registry wiring errors. All of them indicate programmer mistakes made
// during process startup, never bad user data.
var (
	// ErrUnknownPredicate is returned when resolving a name no environment
	// has ever registered or declared.
	ErrUnknownPredicate = errors.New("unknown predicate")

	// ErrUnsupportedPredicate is returned when resolving a name that is
	// declared environment-bound but not supplied by this environment.
	ErrUnsupportedPredicate = errors.New("predicate not supported in this environment")

	// ErrDuplicatePredicate is returned when registering a name twice.
	ErrDuplicatePredicate = errors.New("predicate already registered")

	// ErrEmptyName is returned when registering under an empty name.
	ErrEmptyName = errors.New("predicate name cannot be empty")

	// ErrRegistrySealed is returned when registering after Seal.
	ErrRegistrySealed = errors.New("registry is sealed")
)
