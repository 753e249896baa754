package sat

import (
	"fmt"

	"github.com/samber/lo"
)

// AtMost emits clauses forcing at most bound of the given literals to be
// true, using the sequential-counter (Sinz) encoding: O(n*bound) auxiliary
// variables and clauses instead of the combinatorial direct encoding. The
// auxiliary counter variables are owned by this constraint and must not be
// referenced elsewhere. A bound of at least len(literals) needs no clauses.
func (builder *Builder) AtMost(literals []int64, bound int) error {
	n := len(literals)
	if bound < 0 {
		return fmt.Errorf("at-most bound must be non-negative: %v", bound)
	} else if n == 0 || bound >= n {
		return nil
	} else if bound == 0 {
		// Degenerate counter: every literal is simply forced false
		for _, literal := range literals {
			builder.AddClause(-literal)
		}
		return nil
	}

	// counter[i][j] holds the auxiliary variable for "at least j of the
	// first i literals are true", 1 <= i <= n, 1 <= j <= min(i, bound).
	// Both implication directions are emitted so the counter stays exact
	// when reused over negated literals for at-least constraints.
	counter := make([][]int64, n+1)
	for i := range counter {
		counter[i] = make([]int64, bound+1)
	}

	counter[1][1] = builder.NewVar()
	builder.AddClause(-literals[0], counter[1][1])
	builder.AddClause(-counter[1][1], literals[0])

	for i := 2; i <= n; i++ {
		literal := literals[i-1]

		counter[i][1] = builder.NewVar()
		builder.AddClause(-literal, counter[i][1])
		builder.AddClause(-counter[i-1][1], counter[i][1])
		builder.AddClause(-counter[i][1], literal, counter[i-1][1])

		for j := 2; j <= min(i, bound); j++ {
			counter[i][j] = builder.NewVar()
			builder.AddClause(-literal, -counter[i-1][j-1], counter[i][j])
			if j < i {
				builder.AddClause(-counter[i-1][j], counter[i][j])
				builder.AddClause(-counter[i][j], counter[i-1][j], literal)
				builder.AddClause(-counter[i][j], counter[i-1][j], counter[i-1][j-1])
			} else {
				// counter[i-1][i] does not exist: "at least i of the
				// first i-1 literals" is vacuously false, so the counter
				// at the diagonal is exactly "all of the prefix and the
				// current literal"
				builder.AddClause(-counter[i][j], literal)
				builder.AddClause(-counter[i][j], counter[i-1][j-1])
			}
		}

		// Cutoff: a true literal on top of a full prefix would exceed the bound
		if i-1 >= bound {
			builder.AddClause(-literal, -counter[i-1][bound])
		}
	}

	return nil
}

// Exactly emits clauses forcing exactly count of the given literals to be
// true: at most count directly, at least count as at most (n - count) over
// the negated literals. A count outside [0, n] is a caller error, never a
// silent no-op.
func (builder *Builder) Exactly(literals []int64, count int) error {
	n := len(literals)
	if count < 0 || count > n {
		return fmt.Errorf("exact count %v is out of range for %v literals", count, n)
	} else if n == 0 {
		return nil
	}

	if err := builder.AtMost(literals, count); err != nil {
		return err
	}

	negations := lo.Map(literals, func(literal int64, _ int) int64 { return -literal })
	return builder.AtMost(negations, n-count)
}
