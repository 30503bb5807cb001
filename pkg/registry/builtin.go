package registry

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/validkit/validkit/pkg/predicate"
)

// Canonical names of the portable builtins. Every environment's registry
// carries these with identical behavior; the conformance harness depends on
// that.
const (
	PredPresent      = "present"
	PredEmail        = "email"
	PredURL          = "url"
	PredUUID         = "uuid"
	PredNumeric      = "numeric"
	PredInteger      = "integer"
	PredAlpha        = "alpha"
	PredAlphanumeric = "alphanumeric"
	PredDigits       = "digits"

	FactoryMatches    = "matches"
	FactoryMinLen     = "min_len"
	FactoryMaxLen     = "max_len"
	FactoryLenBetween = "len_between"
	FactoryOneOf      = "one_of"
	FactoryMin        = "min"
	FactoryMax        = "max"
	FactoryPassword   = "password"
)

// Builtin returns a registry preloaded with every portable builtin predicate
// and factory under its canonical name, in canonical registration order. The
// returned registry is not sealed; adapters add their environment-bound
// entries and seal it before validation starts.
func Builtin() *Registry {
	r := New()

	// Registration cannot fail on a fresh registry with distinct names.
	_ = r.Register(PredPresent, predicate.Present, ScopePortable)
	_ = r.Register(PredEmail, predicate.Email, ScopePortable)
	_ = r.Register(PredURL, predicate.URL, ScopePortable)
	_ = r.Register(PredUUID, predicate.UUID, ScopePortable)
	_ = r.Register(PredNumeric, predicate.Numeric, ScopePortable)
	_ = r.Register(PredInteger, predicate.Integer, ScopePortable)
	_ = r.Register(PredAlpha, predicate.Alpha, ScopePortable)
	_ = r.Register(PredAlphanumeric, predicate.Alphanumeric, ScopePortable)
	_ = r.Register(PredDigits, predicate.Digits, ScopePortable)

	_ = r.RegisterFactory(FactoryMatches, predicate.Matches, ScopePortable)
	_ = r.RegisterFactory(FactoryMinLen, intFactory(predicate.MinLen), ScopePortable)
	_ = r.RegisterFactory(FactoryMaxLen, intFactory(predicate.MaxLen), ScopePortable)
	_ = r.RegisterFactory(FactoryLenBetween, lenBetweenFactory, ScopePortable)
	_ = r.RegisterFactory(FactoryOneOf, oneOfFactory, ScopePortable)
	_ = r.RegisterFactory(FactoryMin, floatFactory(predicate.Min), ScopePortable)
	_ = r.RegisterFactory(FactoryMax, floatFactory(predicate.Max), ScopePortable)
	_ = r.RegisterFactory(FactoryPassword, passwordFactory, ScopePortable)

	return r
}

// Factory config parsing. Configs are the short comma-separated forms rule
// authors write: "3" for min_len, "4,8" for len_between, "red,green,blue"
// for one_of, "4,8,[0-9]" for password.

func intFactory(build func(int) predicate.Predicate) predicate.Factory {
	return func(config string) (predicate.Predicate, error) {
		n, err := strconv.Atoi(strings.TrimSpace(config))
		if err != nil {
			return nil, fmt.Errorf("invalid length %q: %w", config, err)
		}
		return build(n), nil
	}
}

func floatFactory(build func(float64) predicate.Predicate) predicate.Factory {
	return func(config string) (predicate.Predicate, error) {
		n, err := strconv.ParseFloat(strings.TrimSpace(config), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid limit %q: %w", config, err)
		}
		return build(n), nil
	}
}

func lenBetweenFactory(config string) (predicate.Predicate, error) {
	minPart, maxPart, ok := strings.Cut(config, ",")
	if !ok {
		return nil, fmt.Errorf("invalid range %q: want \"min,max\"", config)
	}

	min, err := strconv.Atoi(strings.TrimSpace(minPart))
	if err != nil {
		return nil, fmt.Errorf("invalid range %q: %w", config, err)
	}
	max, err := strconv.Atoi(strings.TrimSpace(maxPart))
	if err != nil {
		return nil, fmt.Errorf("invalid range %q: %w", config, err)
	}
	if min > max {
		return nil, fmt.Errorf("invalid range %q: min exceeds max", config)
	}

	return predicate.LenBetween(min, max), nil
}

func oneOfFactory(config string) (predicate.Predicate, error) {
	if strings.TrimSpace(config) == "" {
		return nil, fmt.Errorf("invalid choices %q: empty list", config)
	}

	parts := strings.Split(config, ",")
	choices := make([]string, 0, len(parts))
	for _, p := range parts {
		choices = append(choices, strings.TrimSpace(p))
	}

	return predicate.OneOf(choices...), nil
}

// passwordFactory parses "min,max" or "min,max,contain-pattern". The third
// part is a regexp the password must match somewhere (typically a character
// class such as [0-9]); it may contain commas, so only the first two cuts
// split the config.
func passwordFactory(config string) (predicate.Predicate, error) {
	parts := strings.SplitN(config, ",", 3)
	if len(parts) < 2 {
		return nil, fmt.Errorf("invalid password policy %q: want \"min,max[,pattern]\"", config)
	}

	min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("invalid password policy %q: %w", config, err)
	}
	max, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("invalid password policy %q: %w", config, err)
	}
	if min > max {
		return nil, fmt.Errorf("invalid password policy %q: min exceeds max", config)
	}

	var contain *regexp.Regexp
	if len(parts) == 3 && strings.TrimSpace(parts[2]) != "" {
		contain, err = regexp.Compile(strings.TrimSpace(parts[2]))
		if err != nil {
			return nil, fmt.Errorf("invalid password policy %q: %w", config, err)
		}
	}

	return predicate.PasswordFormat(min, max, contain), nil
}
