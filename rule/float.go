package rule

import "math"

// Float represents floating-point numeric types.
type Float interface {
	~float32 | ~float64
}

// Finite rejects NaN and positive or negative infinity. Put it first in a
// pipeline for float-backed types so bound rules never see a NaN, which
// compares false against everything.
func Finite[T Float]() Rule[T] {
	return Rules(
		ValidUnless(func(v T) bool {
			return math.IsNaN(float64(v))
		}, "must be a number"),
		ValidOnlyIf(func(v T) bool {
			return !math.IsInf(float64(v), 0)
		}, "must be finite"),
	)
}

// RoundTo normalizes the value to the given number of decimal places,
// rounding half away from zero. Negative places are treated as zero.
func RoundTo[T Float](places int) Rule[T] {
	if places < 0 {
		places = 0
	}
	multiplier := math.Pow(10, float64(places))

	return Normalize(func(v T) T {
		return T(math.Round(float64(v)*multiplier) / multiplier)
	})
}
