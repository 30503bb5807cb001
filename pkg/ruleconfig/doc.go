// Package ruleconfig holds the shared rule parameters that environment
// adapters bind into placeholder rules.
//
// Parameters like the password policy are deliberately not ambient globals
// and not per-environment constants: both the server and the client adapter
// read them from one Config value, so the two runtimes cannot silently
// enforce different policies. The server typically loads the document from a
// YAML file or falls back to Default; the client receives the same document
// alongside the rule set it was built from.
package ruleconfig
