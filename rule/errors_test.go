package rule_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valuekit/rule"
)

func TestError(t *testing.T) {
	t.Parallel()

	t.Run("message names the condition and the offending value", func(t *testing.T) {
		_, err := rule.Apply("ab", rule.MinLength(3))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ab")
		assert.Contains(t, err.Error(), "must be at least 3 characters long")
	})

	t.Run("offending value reflects earlier normalizers", func(t *testing.T) {
		_, err := rule.Apply("  ab  ", rule.TrimSpace, rule.MinLength(3))
		require.Error(t, err)

		ruleErr := rule.AsValidationError(err)
		require.NotNil(t, ruleErr)
		assert.Equal(t, "ab", ruleErr.Value)
	})
}

func TestIsValidationError(t *testing.T) {
	t.Parallel()

	t.Run("detects a direct rule error", func(t *testing.T) {
		_, err := rule.Apply(-1, rule.Min(0))
		assert.True(t, rule.IsValidationError(err))
	})

	t.Run("detects a wrapped rule error", func(t *testing.T) {
		_, err := rule.Apply(-1, rule.Min(0))
		wrapped := fmt.Errorf("building quantity: %w", err)
		assert.True(t, rule.IsValidationError(wrapped))
	})

	t.Run("ignores nil and unrelated errors", func(t *testing.T) {
		assert.False(t, rule.IsValidationError(nil))
		assert.False(t, rule.IsValidationError(errors.New("boom")))
	})
}

func TestAsValidationError(t *testing.T) {
	t.Parallel()

	t.Run("extracts the failure details", func(t *testing.T) {
		_, err := rule.Apply(101, rule.Max(100))
		ruleErr := rule.AsValidationError(err)
		require.NotNil(t, ruleErr)
		assert.Equal(t, 101, ruleErr.Value)
		assert.Equal(t, "must be at most 100", ruleErr.Message)
	})

	t.Run("returns nil for nil and unrelated errors", func(t *testing.T) {
		assert.Nil(t, rule.AsValidationError(nil))
		assert.Nil(t, rule.AsValidationError(errors.New("boom")))
	})
}
