package model

import (
	"fmt"

	"github.com/samber/lo"
)

// Params fixes one (k, prime) case of the lonely runner cover search: select
// K distinct velocities, none divisible by Prime, so that every time unit of
// the circular track is covered.
type Params struct {
	K     int `mapstructure:"k"`
	Prime int `mapstructure:"prime"`
}

// RunnerCount is the total number of runners, including the stationary one.
func (params Params) RunnerCount() int {
	return params.K + 1
}

// Period is the common scale of the circular track.
func (params Params) Period() int {
	return params.RunnerCount() * params.Prime
}

// HalfPeriod bounds the search space: velocities and times are symmetric
// under reflection of the circle, so only the first half is considered.
func (params Params) HalfPeriod() int {
	return params.Period() / 2
}

// Validate rejects misconfigured parameters before any computation begins.
func (params Params) Validate() error {
	if params.K < 1 {
		return fmt.Errorf("k must be positive: %v", params.K)
	} else if params.Prime < 2 || !isPrime(params.Prime) {
		return fmt.Errorf("modulus must be a prime number: %v", params.Prime)
	} else if params.Period() > maxPeriod {
		return fmt.Errorf("period %v exceeds the supported scale %v", params.Period(), maxPeriod)
	}
	return nil
}

// The near-zero test multiplies two values bounded by the period, so keeping
// the period within 32 bits guarantees the products fit in an int64.
const maxPeriod = 1 << 31

// Candidates enumerates the candidate velocities: integers in
// [1, halfPeriod] not divisible by the prime modulus.
func Candidates(params Params) []int {
	return lo.Filter(lo.RangeFrom(1, params.HalfPeriod()), func(velocity int, _ int) bool {
		return velocity%params.Prime != 0
	})
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for q := 2; q*q <= n; q++ {
		if n%q == 0 {
			return false
		}
	}
	return true
}

// primeDivisors returns the prime divisors of n in ascending order, found by
// trial division. The generator computes this once and shares the slice with
// the reducer: both must see the same divisor list, otherwise the velocity
// reduction would not be sound with respect to the divisibility constraints.
func primeDivisors(n int) []int {
	divisors := make([]int, 0)
	remaining := n
	for q := 2; q*q <= remaining; q++ {
		if remaining%q == 0 {
			divisors = append(divisors, q)
			for remaining%q == 0 {
				remaining /= q
			}
		}
	}
	if remaining > 1 {
		divisors = append(divisors, remaining)
	}
	return divisors
}
