// Package conformance turns the cross-environment equivalence requirement
// into a runnable test: the same rule set, built and bound through each
// environment's adapter, must produce identical validation results for every
// input. Registry builtins being portable is a manual discipline; this
// harness is what enforces it.
package conformance
