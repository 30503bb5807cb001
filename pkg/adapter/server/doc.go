// Package server is the environment adapter for server processes. It
// sources rule parameters from the shared YAML configuration (optionally
// located via VALIDATION_RULES_FILE, with .env support) and supplies the
// environment-bound predicates that need server-side capabilities, such as
// the email-domain check behind an injected DomainChecker.
package server
