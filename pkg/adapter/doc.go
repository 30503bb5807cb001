// Package adapter defines the contract between the portable validation core
// and the runtimes it is deployed to.
//
// The engine, the registry builtins, and every shared rule set contain no
// environment-specific symbols. Anything that legitimately differs per
// runtime (a predicate that needs DNS, a parameter read from live document
// state) enters through an Adapter: Register supplies the environment-bound
// predicates during registry population, and Bind completes placeholder
// rules with the environment's parameter values.
//
// Concrete adapters live in the server and client subpackages.
package adapter
