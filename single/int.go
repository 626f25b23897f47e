package single

import "github.com/dmitrymomot/valuekit/rule"

// NewInt builds an int-backed wrapper value from raw, passing it through the
// given rules in order. On validation failure the zero value and the error
// are returned.
func NewInt[T ~int](raw int, rules ...rule.Rule[int]) (T, error) {
	value, err := rule.Apply(raw, rules...)
	if err != nil {
		var zero T
		return zero, err
	}

	return T(value), nil
}

// MustInt is NewInt that panics on validation failure.
func MustInt[T ~int](raw int, rules ...rule.Rule[int]) T {
	v, err := NewInt[T](raw, rules...)
	if err != nil {
		panic(err)
	}
	return v
}

// MapInt applies fn to the raw value and rebuilds the same concrete type.
func MapInt[T ~int](v T, fn func(int) int) T {
	return T(fn(int(v)))
}

// FlatMapInt applies fn to the raw value and returns fn's result directly.
func FlatMapInt[T ~int, U any](v T, fn func(int) U) U {
	return fn(int(v))
}
