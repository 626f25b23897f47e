package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valuekit/rule"
)

func TestOneOf(t *testing.T) {
	t.Parallel()

	currency := rule.OneOf("USD", "EUR", "JPY")

	got, err := rule.Apply("EUR", currency)
	require.NoError(t, err)
	assert.Equal(t, "EUR", got)

	_, err = rule.Apply("GBP", currency)
	assert.Error(t, err)

	t.Run("works with numeric types", func(t *testing.T) {
		_, err := rule.Apply(3, rule.OneOf(1, 2, 4, 8))
		assert.Error(t, err)

		_, err = rule.Apply(4, rule.OneOf(1, 2, 4, 8))
		assert.NoError(t, err)
	})
}

func TestNotOneOf(t *testing.T) {
	t.Parallel()

	reserved := rule.NotOneOf("admin", "root")

	got, err := rule.Apply("alice", reserved)
	require.NoError(t, err)
	assert.Equal(t, "alice", got)

	_, err = rule.Apply("root", reserved)
	assert.Error(t, err)
}
