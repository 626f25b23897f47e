package single

import (
	"math"

	"github.com/dmitrymomot/valuekit/rule"
)

// NewDouble builds a float64-backed wrapper value from raw, passing it
// through the given rules in order. On validation failure the zero value and
// the error are returned.
func NewDouble[T ~float64](raw float64, rules ...rule.Rule[float64]) (T, error) {
	value, err := rule.Apply(raw, rules...)
	if err != nil {
		var zero T
		return zero, err
	}

	return T(value), nil
}

// MustDouble is NewDouble that panics on validation failure.
func MustDouble[T ~float64](raw float64, rules ...rule.Rule[float64]) T {
	v, err := NewDouble[T](raw, rules...)
	if err != nil {
		panic(err)
	}
	return v
}

// MapDouble applies fn to the raw value and rebuilds the same concrete type.
func MapDouble[T ~float64](v T, fn func(float64) float64) T {
	return T(fn(float64(v)))
}

// FlatMapDouble applies fn to the raw value and returns fn's result directly.
func FlatMapDouble[T ~float64, U any](v T, fn func(float64) U) U {
	return fn(float64(v))
}

// Round returns the value rounded to the nearest integer, half away from
// zero.
func Round[T ~float64](v T) T {
	return MapDouble(v, math.Round)
}

// RoundUp returns the value rounded up to the nearest integer.
func RoundUp[T ~float64](v T) T {
	return MapDouble(v, math.Ceil)
}

// RoundDown returns the value rounded down to the nearest integer.
func RoundDown[T ~float64](v T) T {
	return MapDouble(v, math.Floor)
}
