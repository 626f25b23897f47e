package single

import "github.com/dmitrymomot/valuekit/rule"

// NewLong builds an int64-backed wrapper value from raw, passing it through
// the given rules in order. On validation failure the zero value and the
// error are returned.
func NewLong[T ~int64](raw int64, rules ...rule.Rule[int64]) (T, error) {
	value, err := rule.Apply(raw, rules...)
	if err != nil {
		var zero T
		return zero, err
	}

	return T(value), nil
}

// MustLong is NewLong that panics on validation failure.
func MustLong[T ~int64](raw int64, rules ...rule.Rule[int64]) T {
	v, err := NewLong[T](raw, rules...)
	if err != nil {
		panic(err)
	}
	return v
}

// MapLong applies fn to the raw value and rebuilds the same concrete type.
func MapLong[T ~int64](v T, fn func(int64) int64) T {
	return T(fn(int64(v)))
}

// FlatMapLong applies fn to the raw value and returns fn's result directly.
func FlatMapLong[T ~int64, U any](v T, fn func(int64) U) U {
	return fn(int64(v))
}
