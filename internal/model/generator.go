package model

import (
	"time"

	"lonelyrunner/internal/sat"

	"github.com/samber/lo"
)

// VelocityVar maps a decision variable of the formula to the candidate
// velocity it selects.
type VelocityVar struct {
	Variable int64
	Velocity int
}

// Summary carries the diagnostic counts of one generation run. It belongs to
// the side channel and is never mixed into the formula stream.
type Summary struct {
	InitialCandidates   int
	SurvivingCandidates int
	EssentialTimes      int
	UncoverableTimes    int
	Variables           int64
	Clauses             int
	Duration            time.Duration
}

// Instance is a generated SAT encoding of one (k, prime) case together with
// its side-channel diagnostics.
type Instance struct {
	Formula sat.SAT
	Mapping []VelocityVar
	Summary Summary
}

type Generator interface {
	// Generate builds the CNF instance for the given parameters. The
	// formula is unsatisfiable iff no velocity set of the required kind
	// exists; trivially infeasible configurations still yield a complete,
	// deliberately unsatisfiable formula rather than an error.
	Generate(params Params) (*Instance, error)

	// Verify decodes a satisfying assignment and independently checks that
	// the selected velocities solve the original covering problem.
	Verify(params Params, instance *Instance, solution sat.SATSolution) bool
}

// NewGenerator returns a Generator. With reduce set, the dominance passes
// shrink the candidate and time constraint sets before assembly; the
// reduction never changes satisfiability.
func NewGenerator(reduce bool) Generator {
	return &instanceGenerator{reduce: reduce}
}

type instanceGenerator struct {
	reduce bool
}

func (generator *instanceGenerator) Generate(params Params) (*Instance, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	//** Precompute coverage and the shared divisor list
	table := NewCoverageTable(params)
	divisors := primeDivisors(params.RunnerCount())

	candidates := Candidates(params)
	initialCandidates := len(candidates)

	//** Dominance reduction
	var essentialTimes []int
	if generator.reduce {
		reducer := NewDominanceReducer(table, divisors)
		candidates = reducer.ReduceVelocities(candidates)
		essentialTimes = reducer.ReduceTimes(reducer.TimeCoverers(candidates))
	} else {
		essentialTimes = lo.RangeFrom(1, params.HalfPeriod())
	}

	builder := sat.NewBuilder()

	//** One decision variable per surviving candidate, in enumeration order
	mapping := lo.Map(candidates, func(velocity int, _ int) VelocityVar {
		return VelocityVar{Variable: builder.NewVar(), Velocity: velocity}
	})

	//** Coverage clauses: each essential time unit needs a covering velocity
	uncoverableTimes := 0
	for _, t := range essentialTimes {
		clause := make([]int64, 0, len(candidates))
		for index, velocity := range candidates {
			if table.Covers(velocity, t) {
				clause = append(clause, mapping[index].Variable)
			}
		}

		if len(clause) == 0 {
			// No allowed velocity covers t: the instance must come out
			// unsatisfiable, so assert a fresh variable both ways once
			// instead of emitting an empty clause or skipping silently
			if uncoverableTimes == 0 {
				contradict(builder)
			}
			uncoverableTimes++
			continue
		}
		builder.AddClause(clause...)
	}

	//** Exactly k selected velocities
	decisionLiterals := lo.Map(mapping, func(entry VelocityVar, _ int) int64 { return entry.Variable })
	if len(decisionLiterals) < params.K {
		// Fewer candidates than selections required, again trivially unsatisfiable
		contradict(builder)
	} else if err := builder.Exactly(decisionLiterals, params.K); err != nil {
		return nil, err
	}

	//** Divisibility bounds: for each prime divisor q of runnerCount, at
	//** most k-2 selected velocities may be divisible by q, so that no
	//** (k-1)-subset shares a nontrivial common factor with the period
	limit := max(0, params.K-2)
	for _, divisor := range divisors {
		divisible := make([]int64, 0, len(candidates))
		for index, velocity := range candidates {
			if velocity%divisor == 0 {
				divisible = append(divisible, mapping[index].Variable)
			}
		}
		if len(divisible) == 0 {
			continue
		}
		if err := builder.AtMost(divisible, limit); err != nil {
			return nil, err
		}
	}

	formula := builder.SAT()
	return &Instance{
		Formula: formula,
		Mapping: mapping,
		Summary: Summary{
			InitialCandidates:   initialCandidates,
			SurvivingCandidates: len(candidates),
			EssentialTimes:      len(essentialTimes) - uncoverableTimes,
			UncoverableTimes:    uncoverableTimes,
			Variables:           builder.Variables(),
			Clauses:             len(formula.Clauses),
			Duration:            time.Since(start),
		},
	}, nil
}

func (generator *instanceGenerator) Verify(params Params, instance *Instance, solution sat.SATSolution) bool {
	if params.Validate() != nil || instance == nil || solution == nil {
		return false
	}

	//** Decode the selected velocities from the positive decision literals
	positives := make(map[int64]bool, len(solution))
	for _, literal := range solution {
		if literal > 0 {
			positives[literal] = true
		}
	}
	selected := lo.FilterMap(instance.Mapping, func(entry VelocityVar, _ int) (int, bool) {
		return entry.Velocity, positives[entry.Variable]
	})

	//** Exactly k velocities, all in range and not divisible by the prime
	if len(selected) != params.K {
		return false
	}
	seen := make(map[int]bool, len(selected))
	for _, velocity := range selected {
		if velocity < 1 || velocity > params.HalfPeriod() || velocity%params.Prime == 0 || seen[velocity] {
			return false
		}
		seen[velocity] = true
	}

	//** Every time unit is covered, checked against a fresh coverage table
	table := NewCoverageTable(params)
	for t := 1; t <= params.HalfPeriod(); t++ {
		if !lo.SomeBy(selected, func(velocity int) bool { return table.Covers(velocity, t) }) {
			return false
		}
	}

	//** No prime divisor of runnerCount divides more than k-2 selections
	limit := max(0, params.K-2)
	for _, divisor := range primeDivisors(params.RunnerCount()) {
		if lo.CountBy(selected, func(velocity int) bool { return velocity%divisor == 0 }) > limit {
			return false
		}
	}

	return true
}

// contradict makes the formula deterministically unsatisfiable while keeping
// it well-formed.
func contradict(builder *sat.Builder) {
	sentinel := builder.NewVar()
	builder.AddClause(sentinel)
	builder.AddClause(-sentinel)
}
