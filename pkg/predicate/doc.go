// Package predicate provides the pure boolean field tests that validation
// rules are built from, together with factories for parameterized tests and
// combinators for composing them.
//
// A Predicate is a total function over a single raw string value: it must
// return a defined result for any input, including the empty string that the
// validation engine substitutes for an absent field, and must never panic.
// Because predicates are pure and carry no state, they, and everything built
// from them, are safe for concurrent use.
//
// Predicates in this package are portable: they behave identically in every
// runtime the engine is deployed to. Tests that depend on platform-only
// capabilities (DNS lookups, live document state) are supplied by an
// environment adapter and registered under their own names; they never live
// here.
//
// # Usage
//
//	format, err := predicate.Matches(`^[a-z0-9-]+$`)
//	if err != nil {
//	    // bad pattern, a wiring bug
//	}
//	ok := predicate.All(predicate.Present, format)("my-slug")
//
// Factories such as Matches return an error for configuration they cannot
// parse; simple constructors such as MinLen take already-typed arguments and
// cannot fail.
package predicate
