package model

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestParamsDerived(t *testing.T) {
	params := Params{K: 7, Prime: 43}

	assert.Equal(t, 8, params.RunnerCount())
	assert.Equal(t, 344, params.Period())
	assert.Equal(t, 172, params.HalfPeriod())
}

func TestValidate(t *testing.T) {
	t.Run("Accepts well-formed parameters", func(t *testing.T) {
		assert.Nil(t, Params{K: 4, Prime: 17}.Validate())
		assert.Nil(t, Params{K: 1, Prime: 2}.Validate())
	})

	t.Run("Rejects non-positive k", func(t *testing.T) {
		assert.NotNil(t, Params{K: 0, Prime: 17}.Validate())
		assert.NotNil(t, Params{K: -3, Prime: 17}.Validate())
	})

	t.Run("Rejects composite or degenerate moduli", func(t *testing.T) {
		assert.NotNil(t, Params{K: 4, Prime: 15}.Validate())
		assert.NotNil(t, Params{K: 4, Prime: 1}.Validate())
		assert.NotNil(t, Params{K: 4, Prime: 0}.Validate())
	})

	t.Run("Rejects scales the arithmetic cannot hold", func(t *testing.T) {
		assert.NotNil(t, Params{K: 4, Prime: 2147483647}.Validate())
	})
}

func TestCandidates(t *testing.T) {
	// k=2, prime=5: halfPeriod = 7, multiples of 5 excluded
	candidates := Candidates(Params{K: 2, Prime: 5})

	assert.Equal(t, []int{1, 2, 3, 4, 6, 7}, candidates)
	assert.False(t, lo.SomeBy(candidates, func(velocity int) bool { return velocity%5 == 0 }))
}

func TestPrimeDivisors(t *testing.T) {
	cases := map[int][]int{
		1:  {},
		2:  {2},
		7:  {7},
		8:  {2},
		9:  {3},
		10: {2, 5},
		12: {2, 3},
		36: {2, 3},
	}

	for n, expected := range cases {
		assert.Equal(t, expected, primeDivisors(n), "prime divisors of %v", n)
	}
}
