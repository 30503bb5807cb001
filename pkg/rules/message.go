package rules

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/validkit/validkit/pkg/registry"
)

// Default message templates per canonical predicate reference. Rule authors
// normally supply their own messages; these keep unwritten ones readable
// instead of generic.
var messageTemplates = map[string]string{
	registry.PredPresent:      "%s is required",
	registry.PredEmail:        "%s must be a valid email address",
	registry.PredURL:          "%s must be a valid URL",
	registry.PredUUID:         "%s must be a valid UUID",
	registry.PredNumeric:      "%s must be a number",
	registry.PredInteger:      "%s must be an integer",
	registry.PredAlpha:        "%s may only contain letters",
	registry.PredAlphanumeric: "%s may only contain letters and numbers",
	registry.PredDigits:       "%s may only contain digits",
}

func defaultMessage(ref, field string) string {
	tmpl, ok := messageTemplates[ref]
	if !ok {
		tmpl = "%s is invalid"
	}
	return fmt.Sprintf(tmpl, humanizeField(field))
}

// humanizeField turns a field key like "first_name" into "First Name".
// A fresh caser per call: cases.Caser is not safe for concurrent use, and
// this only runs at rule set construction time.
func humanizeField(field string) string {
	words := strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(field)
	return cases.Title(language.English).String(words)
}
