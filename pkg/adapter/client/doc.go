// Package client is the environment adapter for client runtimes. It binds
// rule parameters from the shared configuration shipped alongside the rule
// set, letting document attributes fill only the gaps, and declares the
// server-only predicates unsupported so rule sets that need them fail at
// construction instead of diverging.
package client
