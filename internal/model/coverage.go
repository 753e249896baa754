package model

import "lonelyrunner/internal/bitset"

// CoverageTable records which time units each velocity covers. Row v holds
// one bit per time unit t in [1, halfPeriod]; the bit is set iff a runner
// with velocity v is within 1/runnerCount of the starting position at time
// t. The table is built once and read-only afterwards.
type CoverageTable struct {
	params Params
	rows   []*bitset.BitSet // Indexed by velocity, 0 through halfPeriod
}

// NewCoverageTable precomputes the near-zero relation for every velocity in
// [0, halfPeriod] and every time unit in [1, halfPeriod].
func NewCoverageTable(params Params) *CoverageTable {
	halfPeriod := params.HalfPeriod()
	rows := make([]*bitset.BitSet, halfPeriod+1)

	for velocity := 0; velocity <= halfPeriod; velocity++ {
		row := bitset.New(halfPeriod)
		for t := 1; t <= halfPeriod; t++ {
			if nearZero(params, velocity, t) {
				row.Set(t - 1)
			}
		}
		rows[velocity] = row
	}

	return &CoverageTable{params: params, rows: rows}
}

// nearZero reports whether the fractional position (t*v)/period lies within
// 1/runnerCount of the start of the circle, in either direction. The test is
// exact integer arithmetic: no floating point, no rounding error at scale.
func nearZero(params Params, velocity, t int) bool {
	period := int64(params.Period())
	runnerCount := int64(params.RunnerCount())

	residue := (int64(t) * int64(velocity)) % period
	return residue*runnerCount < period || (period-residue)*runnerCount < period
}

// Covers reports whether the velocity covers time unit t, t in [1, halfPeriod].
func (table *CoverageTable) Covers(velocity, t int) bool {
	return table.rows[velocity].Test(t - 1)
}

// Row returns the coverage bit vector of a velocity. Callers must treat it
// as read-only.
func (table *CoverageTable) Row(velocity int) *bitset.BitSet {
	return table.rows[velocity]
}

// Params returns the parameters the table was built for.
func (table *CoverageTable) Params() Params {
	return table.params
}
