package rule

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Normalizers.
var (
	// TrimSpace removes leading and trailing whitespace.
	TrimSpace = Normalize(strings.TrimSpace)

	// Lowercase converts the value to lowercase.
	Lowercase = Normalize(strings.ToLower)

	// Uppercase converts the value to uppercase.
	Uppercase = Normalize(strings.ToUpper)

	// CollapseWhitespace replaces runs of whitespace with a single space and
	// trims the ends.
	CollapseWhitespace = Normalize(func(s string) string {
		return strings.Join(strings.Fields(s), " ")
	})

	// NormalizeNFC canonicalizes the value to Unicode NFC, so that composed
	// and decomposed spellings of the same text compare equal downstream.
	NormalizeNFC = Normalize(norm.NFC.String)
)

// NotEmpty rejects empty strings. Combine with TrimSpace ahead of it to also
// reject whitespace-only input.
func NotEmpty() Rule[string] {
	return ValidUnless(func(s string) bool {
		return s == ""
	}, "must not be empty")
}

// MinLength rejects values shorter than min characters. Lengths are counted
// in runes, matching the character-based text operations in package single.
func MinLength(min int) Rule[string] {
	return ValidOnlyIf(func(s string) bool {
		return utf8.RuneCountInString(s) >= min
	}, fmt.Sprintf("must be at least %d characters long", min))
}

// MaxLength rejects values longer than max characters.
func MaxLength(max int) Rule[string] {
	return ValidOnlyIf(func(s string) bool {
		return utf8.RuneCountInString(s) <= max
	}, fmt.Sprintf("must be at most %d characters long", max))
}

// ExactLength rejects values whose character count differs from exact.
func ExactLength(exact int) Rule[string] {
	return ValidOnlyIf(func(s string) bool {
		return utf8.RuneCountInString(s) == exact
	}, fmt.Sprintf("must be exactly %d characters long", exact))
}

// ValidCharacters rejects values containing any character outside set.
func ValidCharacters(set string) Rule[string] {
	return ValidOnlyIf(func(s string) bool {
		for _, r := range s {
			if !strings.ContainsRune(set, r) {
				return false
			}
		}
		return true
	}, fmt.Sprintf("must contain only characters in %q", set))
}

// ValidPattern rejects values that do not match expr in full. The expression
// is compiled once when the rule is built, so invalid expressions panic at
// definition time rather than per construction.
func ValidPattern(expr string) Rule[string] {
	re := regexp.MustCompile(anchored(expr))
	return ValidOnlyIf(re.MatchString, fmt.Sprintf("must match pattern %q", expr))
}

// NotMatchingPattern rejects values that match expr in full.
func NotMatchingPattern(expr string) Rule[string] {
	re := regexp.MustCompile(anchored(expr))
	return ValidUnless(re.MatchString, fmt.Sprintf("must not match pattern %q", expr))
}

func anchored(expr string) string {
	return "^(?:" + expr + ")$"
}
