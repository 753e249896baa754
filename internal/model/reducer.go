package model

import (
	"lonelyrunner/internal/bitset"

	"github.com/samber/lo"
)

// DominanceReducer shrinks the candidate velocity set and the time
// constraint set without changing satisfiability of the assembled instance.
// Both passes are pure reductions over the read-only coverage table.
type DominanceReducer struct {
	table    *CoverageTable
	divisors []int // Prime divisors of runnerCount, shared with the assembler
}

func NewDominanceReducer(table *CoverageTable, divisors []int) *DominanceReducer {
	return &DominanceReducer{
		table:    table,
		divisors: divisors,
	}
}

// ReduceVelocities removes every candidate that is dominated by a surviving
// candidate. The first qualifying dominator wins, and a candidate already
// marked dominated is never used as a dominator again, so of two candidates
// with identical profiles exactly one survives. The result preserves the
// original enumeration order.
func (reducer *DominanceReducer) ReduceVelocities(candidates []int) []int {
	dominated := make([]bool, len(candidates))

	for victimIndex, victim := range candidates {
		for dominatorIndex, dominator := range candidates {
			if dominatorIndex == victimIndex || dominated[dominatorIndex] {
				continue
			}
			if reducer.dominates(dominator, victim) {
				dominated[victimIndex] = true
				break
			}
		}
	}

	return lo.Filter(candidates, func(_ int, index int) bool { return !dominated[index] })
}

// dominates reports whether velocity a can substitute velocity b in any
// solution: a covers every time unit b covers, and a is divisible by a
// relevant prime divisor only where b is too, so swapping b for a never
// increases a divisibility count.
func (reducer *DominanceReducer) dominates(a, b int) bool {
	if !reducer.table.Row(a).Contains(reducer.table.Row(b)) {
		return false
	}
	for _, q := range reducer.divisors {
		if a%q == 0 && b%q != 0 {
			return false
		}
	}
	return true
}

// TimeCoverers transposes the coverage relation into a per-time-unit view:
// element t-1 is the set of surviving candidate indices (not velocity
// values) covering time unit t.
func (reducer *DominanceReducer) TimeCoverers(survivors []int) []*bitset.BitSet {
	halfPeriod := reducer.table.Params().HalfPeriod()
	coverers := make([]*bitset.BitSet, halfPeriod)

	for t := 1; t <= halfPeriod; t++ {
		set := bitset.New(len(survivors))
		for index, velocity := range survivors {
			if reducer.table.Covers(velocity, t) {
				set.Set(index)
			}
		}
		coverers[t-1] = set
	}

	return coverers
}

// ReduceTimes returns the essential time units (1-based, order preserving).
// A time unit whose coverer set is a superset of another surviving time
// unit's coverer set is implied by it and dropped. The same already-marked
// discipline as in the velocity pass keeps one of two identical time units.
func (reducer *DominanceReducer) ReduceTimes(coverers []*bitset.BitSet) []int {
	redundant := make([]bool, len(coverers))

	for t2 := range coverers {
		for t1 := range coverers {
			if t1 == t2 || redundant[t1] {
				continue
			}
			// Every candidate satisfying t1 also satisfies t2, so the
			// coverage clause of t2 is implied by the clause of t1
			if coverers[t2].Contains(coverers[t1]) {
				redundant[t2] = true
				break
			}
		}
	}

	essential := make([]int, 0, len(coverers))
	for t := range coverers {
		if !redundant[t] {
			essential = append(essential, t+1)
		}
	}
	return essential
}
