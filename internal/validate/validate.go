// Package validate implements declarative per-field validation for the user
// form. Rules are evaluated in a fixed order (required, min length, max
// length, pattern); the first failing rule wins so at most one message is
// reported per field.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rule describes the constraints for a single form field.
type Rule struct {
	Required  bool
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
	Message   string
}

// Field names, also used as form labels.
const (
	FieldName     = "name"
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldWebsite  = "website"
)

// FieldOrder is the display and validation order of the form fields.
var FieldOrder = []string{FieldName, FieldUsername, FieldEmail, FieldPhone, FieldWebsite}

// phoneDigits is how many digit characters a phone number must contain once
// separators are stripped. Checked independently of the pattern; both must
// pass.
const phoneDigits = 10

// Rules is the rule set for the user form.
var Rules = map[string]Rule{
	FieldName: {
		Required:  true,
		MinLength: 3,
		MaxLength: 50,
		Message:   "Name must be 3-50 characters",
	},
	FieldUsername: {
		Required:  true,
		MinLength: 3,
		MaxLength: 20,
		Message:   "Username must be 3-20 characters (letters, numbers, underscore only)",
	},
	FieldEmail: {
		Required: true,
		Pattern:  regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`),
		Message:  "Please enter a valid email address",
	},
	FieldPhone: {
		Required: true,
		Pattern:  regexp.MustCompile(`^[\d\s\-+()]+$`),
		Message:  "Please enter a valid phone number (exactly 10 digits)",
	},
	FieldWebsite: {
		Required: false,
		Pattern:  regexp.MustCompile(`^[a-zA-Z0-9\-.]+\.[a-zA-Z]{2,}$`),
		Message:  "Please enter a valid website (e.g., example.com)",
	},
}

// Field checks a single field value against its rule and returns the error
// message to display, or "" if the value passes. Unknown fields pass.
func Field(name, value string) string {
	rule, ok := Rules[name]
	if !ok {
		return ""
	}

	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		if rule.Required {
			return fmt.Sprintf("%s is required", capitalize(name))
		}
		return ""
	}

	// Lengths count characters, not bytes, so accented names are measured
	// the way the user typed them.
	length := utf8.RuneCountInString(value)
	if rule.MinLength > 0 && length < rule.MinLength {
		return rule.Message
	}
	if rule.MaxLength > 0 && length > rule.MaxLength {
		return rule.Message
	}
	if rule.Pattern != nil && !rule.Pattern.MatchString(value) {
		return rule.Message
	}

	if name == FieldPhone && countDigits(value) != phoneDigits {
		return rule.Message
	}

	return ""
}

// Form validates all fields and returns a map of field name to error message
// for every failing field. An empty map means the form passes.
func Form(values map[string]string) map[string]string {
	errs := make(map[string]string)
	for _, name := range FieldOrder {
		if msg := Field(name, values[name]); msg != "" {
			errs[name] = msg
		}
	}
	return errs
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
