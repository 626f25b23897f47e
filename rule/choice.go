package rule

import (
	"fmt"
	"slices"
)

// OneOf rejects values outside the allowed set.
func OneOf[T comparable](allowed ...T) Rule[T] {
	return ValidOnlyIf(func(v T) bool {
		return slices.Contains(allowed, v)
	}, fmt.Sprintf("must be one of %v", allowed))
}

// NotOneOf rejects values inside the forbidden set.
func NotOneOf[T comparable](forbidden ...T) Rule[T] {
	return ValidUnless(func(v T) bool {
		return slices.Contains(forbidden, v)
	}, fmt.Sprintf("must not be one of %v", forbidden))
}
