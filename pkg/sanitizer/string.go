package sanitizer

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	dotRegex        = regexp.MustCompile(`\.{2,}`)
	nonDigitRegex   = regexp.MustCompile(`\D`)
)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts s to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// ToUpper converts s to uppercase.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// NormalizeWhitespace trims s and collapses inner runs of whitespace to one space.
func NormalizeWhitespace(s string) string {
	return whitespaceRegex.ReplaceAllString(strings.TrimSpace(s), " ")
}

// StripControl drops control characters except tab and newline.
func StripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\t' && r != '\n' {
			return -1
		}
		return r
	}, s)
}

// EmptyToNil is used with Data: blank strings become nil so "nullable" and
// "filled" rules see a missing value instead of whitespace.
func EmptyToNil(v any) any {
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return nil
	}
	return v
}
