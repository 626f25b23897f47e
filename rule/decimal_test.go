package rule_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valuekit/rule"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDecimalBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rule    rule.Rule[decimal.Decimal]
		input   string
		wantErr bool
	}{
		{"MinDecimal passes at the bound", rule.MinDecimal(dec("0")), "0", false},
		{"MinDecimal passes despite scale difference", rule.MinDecimal(dec("0")), "0.00", false},
		{"MinDecimal rejects below the bound", rule.MinDecimal(dec("0")), "-0.01", true},
		{"MaxDecimal passes at the bound", rule.MaxDecimal(dec("99.99")), "99.99", false},
		{"MaxDecimal rejects above the bound", rule.MaxDecimal(dec("99.99")), "100", true},
		{"GreaterThanDecimal excludes the bound", rule.GreaterThanDecimal(dec("0")), "0", true},
		{"GreaterThanDecimal passes above", rule.GreaterThanDecimal(dec("0")), "0.001", false},
		{"LessThanDecimal excludes the bound", rule.LessThanDecimal(dec("1")), "1", true},
		{"LessThanDecimal passes below", rule.LessThanDecimal(dec("1")), "0.999", false},
		{"RangeDecimal rejects below", rule.RangeDecimal(dec("1"), dec("100")), "0.99", true},
		{"RangeDecimal passes inside", rule.RangeDecimal(dec("1"), dec("100")), "50", false},
		{"RangeDecimal rejects above", rule.RangeDecimal(dec("1"), dec("100")), "100.01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rule.Apply(dec(tt.input), tt.rule)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDecimalNormalizers(t *testing.T) {
	t.Parallel()

	t.Run("FloorDecimal raises values below the minimum", func(t *testing.T) {
		got, err := rule.Apply(dec("-5"), rule.FloorDecimal(decimal.Zero))
		require.NoError(t, err)
		assert.True(t, got.Equal(decimal.Zero))
	})

	t.Run("CeilingDecimal lowers values above the maximum", func(t *testing.T) {
		got, err := rule.Apply(dec("150"), rule.CeilingDecimal(dec("100")))
		require.NoError(t, err)
		assert.True(t, got.Equal(dec("100")))
	})

	t.Run("ClampDecimal constrains both ends", func(t *testing.T) {
		clamp := rule.ClampDecimal(dec("0"), dec("10"))

		got, err := rule.Apply(dec("-1"), clamp)
		require.NoError(t, err)
		assert.True(t, got.Equal(decimal.Zero))

		got, err = rule.Apply(dec("10.5"), clamp)
		require.NoError(t, err)
		assert.True(t, got.Equal(dec("10")))
	})

	t.Run("RoundDecimal rounds half away from zero", func(t *testing.T) {
		got, err := rule.Apply(dec("2.675"), rule.RoundDecimal(2))
		require.NoError(t, err)
		assert.True(t, got.Equal(dec("2.68")), "got %s", got)
	})
}
