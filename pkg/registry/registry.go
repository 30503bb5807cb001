package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/validkit/validkit/pkg/predicate"
)

// Scope classifies a registered predicate.
type Scope int

const (
	// ScopePortable marks predicates that must behave identically in every
	// environment the engine runs in.
	ScopePortable Scope = iota

	// ScopeEnvironment marks predicates supplied by a single environment's
	// adapter, whose behavior may legitimately differ per runtime.
	ScopeEnvironment
)

// String returns the scope's name.
func (s Scope) String() string {
	switch s {
	case ScopePortable:
		return "portable"
	case ScopeEnvironment:
		return "environment"
	default:
		return fmt.Sprintf("scope(%d)", int(s))
	}
}

type predicateEntry struct {
	p     predicate.Predicate
	scope Scope
}

type factoryEntry struct {
	f     predicate.Factory
	scope Scope
}

// Registry maps names to predicates and predicate factories.
//
// A registry has a two-phase lifecycle: it is populated while the process
// wires itself up, then sealed before the first validation call. After Seal
// every mutation fails with ErrRegistrySealed, so concurrent resolution
// needs no coordination beyond the internal lock.
type Registry struct {
	mu         sync.RWMutex
	sealed     bool
	predicates map[string]predicateEntry
	factories  map[string]factoryEntry
	declared   map[string]struct{}
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		predicates: make(map[string]predicateEntry),
		factories:  make(map[string]factoryEntry),
		declared:   make(map[string]struct{}),
	}
}

// Register adds a named predicate. It fails with ErrDuplicatePredicate if
// the name is taken by a predicate or a factory, with ErrEmptyName for an
// empty name, and with ErrRegistrySealed after Seal.
func (r *Registry) Register(name string, p predicate.Predicate, scope Scope) error {
	if name == "" {
		return ErrEmptyName
	}
	if p == nil {
		return fmt.Errorf("nil predicate for %q", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return fmt.Errorf("%w: cannot register %q", ErrRegistrySealed, name)
	}
	if _, ok := r.predicates[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicatePredicate, name)
	}
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicatePredicate, name)
	}

	r.predicates[name] = predicateEntry{p: p, scope: scope}
	return nil
}

// RegisterFactory adds a named predicate factory under the same rules as
// Register.
func (r *Registry) RegisterFactory(name string, f predicate.Factory, scope Scope) error {
	if name == "" {
		return ErrEmptyName
	}
	if f == nil {
		return fmt.Errorf("nil factory for %q", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return fmt.Errorf("%w: cannot register %q", ErrRegistrySealed, name)
	}
	if _, ok := r.predicates[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicatePredicate, name)
	}
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicatePredicate, name)
	}

	r.factories[name] = factoryEntry{f: f, scope: scope}
	return nil
}

// DeclareEnvironment records that name exists somewhere as an
// environment-bound predicate without supplying an implementation. Resolving
// a declared-but-unregistered name fails with ErrUnsupportedPredicate
// instead of ErrUnknownPredicate, which distinguishes "this environment
// cannot do that" from a plain typo.
func (r *Registry) DeclareEnvironment(name string) error {
	if name == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return fmt.Errorf("%w: cannot declare %q", ErrRegistrySealed, name)
	}

	r.declared[name] = struct{}{}
	return nil
}

// Resolve returns the predicate registered under name.
func (r *Registry) Resolve(name string) (predicate.Predicate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if entry, ok := r.predicates[name]; ok {
		return entry.p, nil
	}
	if _, ok := r.declared[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedPredicate, name)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPredicate, name)
}

// ResolveFactory returns the factory registered under name.
func (r *Registry) ResolveFactory(name string) (predicate.Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if entry, ok := r.factories[name]; ok {
		return entry.f, nil
	}
	if _, ok := r.declared[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedPredicate, name)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPredicate, name)
}

// Scope returns the scope of the predicate or factory registered under name.
func (r *Registry) Scope(name string) (Scope, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if entry, ok := r.predicates[name]; ok {
		return entry.scope, nil
	}
	if entry, ok := r.factories[name]; ok {
		return entry.scope, nil
	}
	if _, ok := r.declared[name]; ok {
		return ScopeEnvironment, fmt.Errorf("%w: %q", ErrUnsupportedPredicate, name)
	}
	return ScopePortable, fmt.Errorf("%w: %q", ErrUnknownPredicate, name)
}

// Names returns every registered predicate and factory name, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.predicates)+len(r.factories))
	for name := range r.predicates {
		names = append(names, name)
	}
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Seal transitions the registry to its read-only phase. Sealing twice is a
// no-op.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
}

// Sealed reports whether the registry has been sealed.
func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}
