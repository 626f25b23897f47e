package rule

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Decimal rules mirror the numeric ones for arbitrary-precision values.
// They operate on decimal.Decimal; decimal-backed wrapper types convert at
// the construction boundary.

// MinDecimal rejects values below min (inclusive bound).
func MinDecimal(min decimal.Decimal) Rule[decimal.Decimal] {
	return ValidUnless(func(v decimal.Decimal) bool {
		return v.LessThan(min)
	}, fmt.Sprintf("must be at least %s", min))
}

// MaxDecimal rejects values above max (inclusive bound).
func MaxDecimal(max decimal.Decimal) Rule[decimal.Decimal] {
	return ValidUnless(func(v decimal.Decimal) bool {
		return v.GreaterThan(max)
	}, fmt.Sprintf("must be at most %s", max))
}

// GreaterThanDecimal rejects values less than or equal to bound (exclusive).
func GreaterThanDecimal(bound decimal.Decimal) Rule[decimal.Decimal] {
	return ValidOnlyIf(func(v decimal.Decimal) bool {
		return v.GreaterThan(bound)
	}, fmt.Sprintf("must be greater than %s", bound))
}

// LessThanDecimal rejects values greater than or equal to bound (exclusive).
func LessThanDecimal(bound decimal.Decimal) Rule[decimal.Decimal] {
	return ValidOnlyIf(func(v decimal.Decimal) bool {
		return v.LessThan(bound)
	}, fmt.Sprintf("must be less than %s", bound))
}

// RangeDecimal rejects values outside [min, max].
func RangeDecimal(min, max decimal.Decimal) Rule[decimal.Decimal] {
	return Rules(MinDecimal(min), MaxDecimal(max))
}

// FloorDecimal normalizes values below min up to min.
func FloorDecimal(min decimal.Decimal) Rule[decimal.Decimal] {
	return Normalize(func(v decimal.Decimal) decimal.Decimal {
		if v.LessThan(min) {
			return min
		}
		return v
	})
}

// CeilingDecimal normalizes values above max down to max.
func CeilingDecimal(max decimal.Decimal) Rule[decimal.Decimal] {
	return Normalize(func(v decimal.Decimal) decimal.Decimal {
		if v.GreaterThan(max) {
			return max
		}
		return v
	})
}

// ClampDecimal constrains the value to [min, max], adjusting silently.
func ClampDecimal(min, max decimal.Decimal) Rule[decimal.Decimal] {
	return Rules(FloorDecimal(min), CeilingDecimal(max))
}

// RoundDecimal normalizes the value to the given number of decimal places,
// rounding half away from zero.
func RoundDecimal(places int32) Rule[decimal.Decimal] {
	return Normalize(func(v decimal.Decimal) decimal.Decimal {
		return v.Round(places)
	})
}
