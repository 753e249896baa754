package model

import (
	"testing"

	"lonelyrunner/internal/sat"

	"github.com/stretchr/testify/assert"
)

// End-to-end cases against the known result table, solved with kissat.
func TestGenerateEndToEnd(t *testing.T) {
	solver := sat.NewKissatSolver()

	t.Run("k=4 prime=17 is unsatisfiable", func(t *testing.T) {
		generator := NewGenerator(true)
		instance, err := generator.Generate(Params{K: 4, Prime: 17})
		assert.Nil(t, err)

		solution, err := solver.Solve(instance.Formula)

		assert.Nil(t, err)
		assert.Nil(t, solution)
	})

	t.Run("k=8 prime=31 has a verified covering", func(t *testing.T) {
		params := Params{K: 8, Prime: 31}
		generator := NewGenerator(true)
		instance, err := generator.Generate(params)
		assert.Nil(t, err)

		solution, err := solver.Solve(instance.Formula)

		assert.Nil(t, err)
		assert.NotNil(t, solution)
		assert.True(t, sat.AssertSolution(instance.Formula, solution))
		assert.True(t, generator.Verify(params, instance, solution))
	})
}
