package leads

import (
	"regexp"
	"strings"
)

// The same rules run in the browser widget and here. Both sides must reject
// identical inputs, so keep these patterns in sync with the client bundle.
var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneStrip   = regexp.MustCompile(`[^0-9+()\-\s]`)
	phonePattern = regexp.MustCompile(`^[0-9+()\-\s]{7,20}$`)
)

// ValidateName reports whether the name is non-empty after trimming.
func ValidateName(s string) bool {
	return strings.TrimSpace(s) != ""
}

// ValidateEmail reports whether the trimmed string looks like an address.
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// CleanPhone strips every character outside the allowed phone set.
func CleanPhone(s string) string {
	return phoneStrip.ReplaceAllString(s, "")
}

// ValidatePhone reports whether the phone is acceptable. Phone is optional:
// the empty string is always valid. Otherwise the cleaned value must be
// 7-20 characters of digits, +, parens, dashes and spaces.
func ValidatePhone(s string) bool {
	if s == "" {
		return true
	}
	return phonePattern.MatchString(CleanPhone(s))
}
