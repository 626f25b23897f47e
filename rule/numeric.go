package rule

import "fmt"

// Numeric represents numeric types that support comparison and arithmetic.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Min rejects values below min (inclusive bound).
func Min[T Numeric](min T) Rule[T] {
	return ValidUnless(func(v T) bool {
		return v < min
	}, fmt.Sprintf("must be at least %v", min))
}

// Max rejects values above max (inclusive bound).
func Max[T Numeric](max T) Rule[T] {
	return ValidUnless(func(v T) bool {
		return v > max
	}, fmt.Sprintf("must be at most %v", max))
}

// GreaterThan rejects values less than or equal to bound (exclusive).
func GreaterThan[T Numeric](bound T) Rule[T] {
	return ValidOnlyIf(func(v T) bool {
		return v > bound
	}, fmt.Sprintf("must be greater than %v", bound))
}

// LessThan rejects values greater than or equal to bound (exclusive).
func LessThan[T Numeric](bound T) Rule[T] {
	return ValidOnlyIf(func(v T) bool {
		return v < bound
	}, fmt.Sprintf("must be less than %v", bound))
}

// Range rejects values outside [min, max].
func Range[T Numeric](min, max T) Rule[T] {
	return Rules(Min(min), Max(max))
}

// NonZero rejects the zero value.
func NonZero[T Numeric]() Rule[T] {
	return ValidUnless(func(v T) bool {
		return v == 0
	}, "must not be zero")
}

// Floor normalizes values below min up to min.
func Floor[T Numeric](min T) Rule[T] {
	return Normalize(func(v T) T {
		if v < min {
			return min
		}
		return v
	})
}

// Ceiling normalizes values above max down to max.
func Ceiling[T Numeric](max T) Rule[T] {
	return Normalize(func(v T) T {
		if v > max {
			return max
		}
		return v
	})
}

// Clamp constrains the value to [min, max], adjusting silently.
func Clamp[T Numeric](min, max T) Rule[T] {
	return Rules(Floor(min), Ceiling(max))
}
