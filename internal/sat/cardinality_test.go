package sat

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

// extends reports whether fixing the first `variables` decision variables to
// the given mask leaves the encoder's clause set satisfiable, i.e. whether
// the assignment extends to a model once the auxiliary counter variables are
// existentially witnessed.
func extends(builder *Builder, variables int, mask uint) bool {
	satInstance := builder.SAT()

	clauses := make([][]int64, 0, len(satInstance.Clauses)+variables)
	clauses = append(clauses, satInstance.Clauses...)
	for i := range variables {
		literal := int64(i + 1)
		if mask&(1<<i) == 0 {
			literal = -literal
		}
		clauses = append(clauses, []int64{literal})
	}

	solution, err := NewBacktrackSolver().Solve(SAT{Variables: satInstance.Variables, Clauses: clauses})
	if err != nil {
		panic(err)
	}
	return solution != nil
}

func TestAtMost(t *testing.T) {
	t.Run("Exhaustive N=5 R=2", func(t *testing.T) {
		// Arrange
		builder := NewBuilder()
		literals := make([]int64, 5)
		for i := range literals {
			literals[i] = builder.NewVar()
		}

		// Act
		err := builder.AtMost(literals, 2)

		// Assert
		assert.Nil(t, err)

		satisfiable := 0
		for mask := uint(0); mask < 1<<5; mask++ {
			trueCount := bits.OnesCount(mask)
			extendable := extends(builder, 5, mask)

			assert.Equal(t, trueCount <= 2, extendable, "assignment mask %b with %v true literals", mask, trueCount)
			if extendable {
				satisfiable++
			}
		}
		// C(5,0) + C(5,1) + C(5,2) = 16
		assert.Equal(t, 16, satisfiable)
	})

	t.Run("Bound of zero forces every literal false", func(t *testing.T) {
		builder := NewBuilder()
		literals := []int64{builder.NewVar(), builder.NewVar(), builder.NewVar()}

		err := builder.AtMost(literals, 0)

		assert.Nil(t, err)
		assert.True(t, extends(builder, 3, 0b000))
		assert.False(t, extends(builder, 3, 0b001))
		assert.False(t, extends(builder, 3, 0b110))
	})

	t.Run("Bound covering all literals emits no clauses", func(t *testing.T) {
		builder := NewBuilder()
		literals := []int64{builder.NewVar(), builder.NewVar()}

		assert.Nil(t, builder.AtMost(literals, 2))
		assert.Nil(t, builder.AtMost(literals, 5))
		assert.Nil(t, builder.AtMost(nil, 1))
		assert.Equal(t, 0, builder.ClauseCount())
	})

	t.Run("Negative bound is rejected", func(t *testing.T) {
		builder := NewBuilder()
		literals := []int64{builder.NewVar()}

		assert.NotNil(t, builder.AtMost(literals, -1))
		assert.Equal(t, 0, builder.ClauseCount())
	})
}

func TestExactly(t *testing.T) {
	t.Run("Exhaustive N=6 K=3", func(t *testing.T) {
		// Arrange
		builder := NewBuilder()
		literals := make([]int64, 6)
		for i := range literals {
			literals[i] = builder.NewVar()
		}

		// Act
		err := builder.Exactly(literals, 3)

		// Assert
		assert.Nil(t, err)

		satisfiable := 0
		for mask := uint(0); mask < 1<<6; mask++ {
			trueCount := bits.OnesCount(mask)
			extendable := extends(builder, 6, mask)

			assert.Equal(t, trueCount == 3, extendable, "assignment mask %b with %v true literals", mask, trueCount)
			if extendable {
				satisfiable++
			}
		}
		// C(6,3) = 20
		assert.Equal(t, 20, satisfiable)
	})

	t.Run("Works over negated literals", func(t *testing.T) {
		builder := NewBuilder()
		literals := make([]int64, 4)
		for i := range literals {
			literals[i] = -builder.NewVar() // "Selected" now means assigned false
		}

		err := builder.Exactly(literals, 1)

		assert.Nil(t, err)
		for mask := uint(0); mask < 1<<4; mask++ {
			falseCount := 4 - bits.OnesCount(mask)
			assert.Equal(t, falseCount == 1, extends(builder, 4, mask), "assignment mask %b", mask)
		}
	})

	t.Run("Out-of-range count is an error, not a silent no-op", func(t *testing.T) {
		builder := NewBuilder()
		literals := []int64{builder.NewVar(), builder.NewVar()}

		assert.NotNil(t, builder.Exactly(literals, -1))
		assert.NotNil(t, builder.Exactly(literals, 3))
		assert.Equal(t, 0, builder.ClauseCount())
	})
}
