package single_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valuekit/single"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("returns the value when the predicate holds", func(t *testing.T) {
		got, ok := single.Filter(quantity(5), func(q quantity) bool { return q > 0 })
		require.True(t, ok)
		assert.Equal(t, quantity(5), got)
	})

	t.Run("returns absent when the predicate fails", func(t *testing.T) {
		got, ok := single.Filter(quantity(-5), func(q quantity) bool { return q > 0 })
		assert.False(t, ok)
		assert.Equal(t, quantity(0), got)
	})

	t.Run("works across kinds", func(t *testing.T) {
		_, ok := single.Filter(name("Will"), func(n name) bool {
			return single.Length(n) == 4
		})
		assert.True(t, ok)
	})
}

func TestIs(t *testing.T) {
	t.Parallel()

	positive := func(q quantity) bool { return q > 0 }

	assert.True(t, single.Is(quantity(1), positive))
	assert.False(t, single.Is(quantity(-1), positive))

	assert.False(t, single.IsNot(quantity(1), positive))
	assert.True(t, single.IsNot(quantity(-1), positive))
}
