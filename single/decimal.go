package single

import (
	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/valuekit/rule"
)

// Decimal-backed wrapper types are defined types over decimal.Decimal:
//
//	type Price decimal.Decimal
//
// decimal.Decimal is a struct with unexported fields, so it cannot appear
// under ~ in a constraint the way the primitive kinds do. The helpers here
// therefore take and return decimal.Decimal, and the concrete type converts
// at the boundary:
//
//	v, err := single.NewDecimal(raw, priceRules)
//	price := Price(v)
//
// Comparison must go through EqualDecimal/CompareDecimal rather than ==,
// which on decimal.Decimal is sensitive to scale (1.0 vs 1.00).

// NewDecimal passes raw through the given rules in order and returns the
// normalized value, or the zero decimal and the error on validation failure.
func NewDecimal(raw decimal.Decimal, rules ...rule.Rule[decimal.Decimal]) (decimal.Decimal, error) {
	value, err := rule.Apply(raw, rules...)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return value, nil
}

// MustDecimal is NewDecimal that panics on validation failure.
func MustDecimal(raw decimal.Decimal, rules ...rule.Rule[decimal.Decimal]) decimal.Decimal {
	v, err := NewDecimal(raw, rules...)
	if err != nil {
		panic(err)
	}
	return v
}

// EqualDecimal reports value equality regardless of scale.
func EqualDecimal(a, b decimal.Decimal) bool {
	return a.Equal(b)
}

// CompareDecimal returns -1, 0 or 1 as a is less than, equal to or greater
// than b.
func CompareDecimal(a, b decimal.Decimal) int {
	return a.Cmp(b)
}
