package single

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/valuekit/rule"
)

// NewText builds a text-backed wrapper value from raw, passing it through the
// given rules in order. On validation failure the zero value and the error
// are returned; no wrapper value comes into existence.
func NewText[T ~string](raw string, rules ...rule.Rule[string]) (T, error) {
	value, err := rule.Apply(raw, rules...)
	if err != nil {
		var zero T
		return zero, err
	}

	return T(value), nil
}

// MustText is NewText that panics on validation failure. Intended for
// package-level values built from literals known to be valid.
func MustText[T ~string](raw string, rules ...rule.Rule[string]) T {
	v, err := NewText[T](raw, rules...)
	if err != nil {
		panic(err)
	}
	return v
}

// MapText applies fn to the raw value and rebuilds the same concrete type.
func MapText[T ~string](v T, fn func(string) string) T {
	return T(fn(string(v)))
}

// FlatMapText applies fn to the raw value and returns fn's result directly,
// letting the transform construct a wrapper of the same or another type.
func FlatMapText[T ~string, U any](v T, fn func(string) U) U {
	return fn(string(v))
}

// Length returns the number of characters (runes) in the value.
func Length[T ~string](v T) int {
	return utf8.RuneCountInString(string(v))
}

// CharAt returns the character at index i, counted in runes.
// It panics when i is outside [0, Length(v)).
func CharAt[T ~string](v T, i int) rune {
	runes := []rune(string(v))
	if i < 0 || i >= len(runes) {
		panic(fmt.Sprintf("single.CharAt: index %d out of range for length %d", i, len(runes)))
	}
	return runes[i]
}

// Substring returns the characters in [start, end), counted in runes.
// It panics when the range is not within the value.
func Substring[T ~string](v T, start, end int) T {
	runes := []rune(string(v))
	if start < 0 || end > len(runes) || start > end {
		panic(fmt.Sprintf("single.Substring: range [%d, %d) out of range for length %d", start, end, len(runes)))
	}
	return T(runes[start:end])
}

// Left returns the first n characters. It panics for negative n and clamps
// to the whole value when n exceeds the length.
func Left[T ~string](v T, n int) T {
	if n < 0 {
		panic(fmt.Sprintf("single.Left: negative length %d", n))
	}

	runes := []rune(string(v))
	if n > len(runes) {
		n = len(runes)
	}
	return T(runes[:n])
}

// Right returns the last n characters. It panics for negative n and clamps
// to the whole value when n exceeds the length.
func Right[T ~string](v T, n int) T {
	if n < 0 {
		panic(fmt.Sprintf("single.Right: negative length %d", n))
	}

	runes := []rune(string(v))
	if n > len(runes) {
		n = len(runes)
	}
	return T(runes[len(runes)-n:])
}

// Trim returns the value with leading and trailing whitespace removed.
func Trim[T ~string](v T) T {
	return T(strings.TrimSpace(string(v)))
}

// IsEmpty reports whether the value has no characters.
func IsEmpty[T ~string](v T) bool {
	return len(v) == 0
}

// IsNotEmpty is the negation of IsEmpty.
func IsNotEmpty[T ~string](v T) bool {
	return len(v) != 0
}

// ReplaceAll replaces every match of the regular expression pattern with
// replacement. The pattern is compiled per call; cache a wrapper around
// regexp.Regexp externally if the call sits on a hot path. Invalid patterns
// panic, as with regexp.MustCompile.
func ReplaceAll[T ~string](v T, pattern, replacement string) T {
	re := regexp.MustCompile(pattern)
	return T(re.ReplaceAllString(string(v), replacement))
}

// ReplaceLiteral replaces every occurrence of old with new, with no pattern
// interpretation.
func ReplaceLiteral[T ~string](v T, old, new string) T {
	return T(strings.ReplaceAll(string(v), old, new))
}
