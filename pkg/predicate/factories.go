package predicate

import (
	"fmt"
	"regexp"
	"strconv"
	"unicode/utf8"
)

// Matches builds a predicate that passes when the value matches pattern.
// The empty value always fails so that format predicates stay composable
// with Present. An invalid pattern is reported as an error rather than a
// panic because patterns routinely arrive from configuration.
func Matches(pattern string) (Predicate, error) {
	regex, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	return func(value string) bool {
		if value == "" {
			return false
		}
		return regex.MatchString(value)
	}, nil
}

// MinLen builds a predicate that passes when the value is at least min
// characters long. Length is measured in runes, not bytes.
func MinLen(min int) Predicate {
	return func(value string) bool {
		return utf8.RuneCountInString(value) >= min
	}
}

// MaxLen builds a predicate that passes when the value is at most max
// characters long.
func MaxLen(max int) Predicate {
	return func(value string) bool {
		return utf8.RuneCountInString(value) <= max
	}
}

// LenBetween builds a predicate that passes when the value's length falls
// within [min, max] inclusive.
func LenBetween(min, max int) Predicate {
	return All(MinLen(min), MaxLen(max))
}

// OneOf builds a predicate that passes when the value equals one of the
// allowed choices.
func OneOf(choices ...string) Predicate {
	allowed := make(map[string]struct{}, len(choices))
	for _, c := range choices {
		allowed[c] = struct{}{}
	}

	return func(value string) bool {
		_, ok := allowed[value]
		return ok
	}
}

// Min builds a predicate that passes when the value parses as a number
// greater than or equal to limit. Non-numeric values fail.
func Min(limit float64) Predicate {
	return func(value string) bool {
		n, err := strconv.ParseFloat(value, 64)
		return err == nil && n >= limit
	}
}

// Max builds a predicate that passes when the value parses as a number
// less than or equal to limit. Non-numeric values fail.
func Max(limit float64) Predicate {
	return func(value string) bool {
		n, err := strconv.ParseFloat(value, 64)
		return err == nil && n <= limit
	}
}

// PasswordFormat builds the composite password policy predicate: length
// within [min, max] runes and, when contain is non-nil, at least one match
// of contain somewhere in the value. The policy is expressed as structured
// parts instead of a single lookahead pattern because lookahead is not
// portable across regexp engines.
func PasswordFormat(min, max int, contain *regexp.Regexp) Predicate {
	return func(value string) bool {
		n := utf8.RuneCountInString(value)
		if n < min || n > max {
			return false
		}
		if contain != nil && !contain.MatchString(value) {
			return false
		}
		return true
	}
}
