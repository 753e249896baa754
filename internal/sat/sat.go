package sat

import (
	"fmt"
	"strings"
)

// SAT is a propositional formula in conjunctive normal form. Literals are
// signed variable indices: +v for the variable, -v for its negation.
type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

// ToDIMACS serializes the formula into the DIMACS-CNF textual format,
// preserving clause emission order.
func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", s.Variables, len(s.Clauses))
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}
