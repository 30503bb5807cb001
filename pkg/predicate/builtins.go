package predicate

import (
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var (
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	digitsRegex       = regexp.MustCompile(`^[0-9]+$`)
)

// Present passes when the value is non-empty after trimming whitespace.
func Present(value string) bool {
	return strings.TrimSpace(value) != ""
}

// Email passes for a syntactically valid email address suitable for typical
// web use: RFC 5322 parseable, with a dotted, non-empty domain.
func Email(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}

	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 {
		return false
	}

	localPart := parts[0]
	domain := parts[1]

	if localPart == "" {
		return false
	}

	// Domain must contain at least one dot and cannot start/end with dot
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}

	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

// URL passes for an absolute URL with both a scheme and a host.
func URL(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}

	return u.Scheme != "" && u.Host != ""
}

// UUID passes for a canonical 36-character UUID string. Length and hyphen
// positions are checked before parsing to reject garbage cheaply.
func UUID(value string) bool {
	if len(value) != 36 {
		return false
	}

	if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return false
	}

	_, err := uuid.Parse(value)
	return err == nil
}

// Numeric passes when the value parses as a decimal number.
func Numeric(value string) bool {
	_, err := strconv.ParseFloat(value, 64)
	return err == nil
}

// Integer passes when the value parses as a base-10 integer.
func Integer(value string) bool {
	_, err := strconv.Atoi(value)
	return err == nil
}

// Alpha passes when the value consists only of ASCII letters.
func Alpha(value string) bool {
	return alphaRegex.MatchString(value)
}

// Alphanumeric passes when the value consists only of ASCII letters and digits.
func Alphanumeric(value string) bool {
	return alphanumericRegex.MatchString(value)
}

// Digits passes when the value consists only of decimal digits.
func Digits(value string) bool {
	return digitsRegex.MatchString(value)
}
