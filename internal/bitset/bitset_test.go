package bitset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAndTest(t *testing.T) {
	t.Run("Bits are independent across word boundaries", func(t *testing.T) {
		// Arrange
		set := New(130)

		// Act
		set.Set(0)
		set.Set(63)
		set.Set(64)
		set.Set(129)

		// Assert
		assert.True(t, set.Test(0))
		assert.True(t, set.Test(63))
		assert.True(t, set.Test(64))
		assert.True(t, set.Test(129))
		assert.False(t, set.Test(1))
		assert.False(t, set.Test(65))
		assert.Equal(t, 4, set.Count())
	})

	t.Run("Out-of-range indices are ignored", func(t *testing.T) {
		// Arrange
		set := New(10)

		// Act
		set.Set(-1)
		set.Set(10)

		// Assert
		assert.Equal(t, 0, set.Count())
		assert.False(t, set.Test(-1))
		assert.False(t, set.Test(10))
	})
}

func TestContains(t *testing.T) {
	t.Run("Superset contains subset", func(t *testing.T) {
		// Arrange
		superset, subset := New(100), New(100)
		for _, i := range []int{3, 40, 77, 99} {
			superset.Set(i)
		}
		subset.Set(40)
		subset.Set(99)

		// Assert
		assert.True(t, superset.Contains(subset))
		assert.False(t, subset.Contains(superset))
	})

	t.Run("Every set contains the empty set and itself", func(t *testing.T) {
		set := New(70)
		set.Set(69)

		assert.True(t, set.Contains(New(70)))
		assert.True(t, set.Contains(set))
	})
}

func TestClone(t *testing.T) {
	// Arrange
	original := New(65)
	original.Set(64)

	// Act
	clone := original.Clone()
	clone.Set(0)

	// Assert
	assert.True(t, original.Equal(original.Clone()))
	assert.False(t, original.Equal(clone))
	assert.False(t, original.Test(0))
	assert.True(t, clone.Test(64))
}
