package sat

import (
	"log"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// ParseSolution extracts a literal assignment from the "v" lines of a
// DIMACS-conforming solver output. Returns nil if no value lines are present.
func ParseSolution(solverOutput string) SATSolution {
	valueLines := lo.Filter(strings.Split(solverOutput, "\n"), func(line string, _ int) bool {
		return line == "v" || strings.HasPrefix(line, "v ")
	})

	if len(valueLines) == 0 {
		return nil
	}

	solution := make(SATSolution, 0)
	for _, line := range valueLines {
		for _, field := range strings.Fields(line)[1:] {
			value, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				log.Panicf("invalid literal in solver output: %v", err)
			}
			if value == 0 { // Terminating zero of the assignment
				continue
			}
			solution = append(solution, value)
		}
	}

	return solution
}

// AssertSolution checks that a solution is a well-formed model of the
// formula: no duplicate or contradictory literals, every clause satisfied.
func AssertSolution(satInstance SAT, satSolution SATSolution) bool {
	// Make sure there are no duplicates nor contradictions
	literals := make(map[int64]bool)
	for _, literal := range satSolution {
		if literals[literal] || literals[-literal] {
			return false
		}
		literals[literal] = true
	}

	// Check that all clauses are satisfied
	for _, clause := range satInstance.Clauses {
		satisfied := false
		for _, literal := range clause {
			if literals[literal] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}

	return true
}
