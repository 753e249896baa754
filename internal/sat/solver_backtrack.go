package sat

// backtrackSolver is a dependency-free DPLL procedure (unit propagation plus
// chronological backtracking). It serves as a reference solver for small
// instances; anything of real size belongs to an external solver binary.
type backtrackSolver struct{}

func NewBacktrackSolver() SATSolver {
	return &backtrackSolver{}
}

func (solver *backtrackSolver) Solve(satInstance SAT) (SATSolution, error) {
	assignment := make([]int8, satInstance.Variables+1)
	if !backtrack(satInstance.Clauses, assignment) {
		return nil, nil
	}

	solution := make(SATSolution, 0, satInstance.Variables)
	for variable := int64(1); variable <= int64(satInstance.Variables); variable++ {
		if assignment[variable] < 0 {
			solution = append(solution, -variable)
		} else {
			solution = append(solution, variable) // Unconstrained variables default to true
		}
	}

	return solution, nil
}

// evaluate returns 1 if the literal is true, -1 if false and 0 if its
// variable is still unassigned.
func evaluate(assignment []int8, literal int64) int8 {
	variable := literal
	if variable < 0 {
		variable = -variable
	}

	value := assignment[variable]
	if value == 0 {
		return 0
	} else if (value > 0) == (literal > 0) {
		return 1
	}
	return -1
}

func assign(assignment []int8, literal int64) {
	if literal > 0 {
		assignment[literal] = 1
	} else {
		assignment[-literal] = -1
	}
}

func unassign(assignment []int8, literal int64) {
	if literal > 0 {
		assignment[literal] = 0
	} else {
		assignment[-literal] = 0
	}
}

func backtrack(clauses [][]int64, assignment []int8) bool {
	trail := make([]int64, 0)
	undoTrail := func() {
		for _, literal := range trail {
			unassign(assignment, literal)
		}
	}

	// Unit propagation until fixpoint
	for {
		unit := int64(0)
		for _, clause := range clauses {
			satisfied := false
			unassigned := 0
			var lastUnassigned int64

			for _, literal := range clause {
				switch evaluate(assignment, literal) {
				case 1:
					satisfied = true
				case 0:
					unassigned++
					lastUnassigned = literal
				}
				if satisfied {
					break
				}
			}

			if satisfied {
				continue
			} else if unassigned == 0 { // Conflict
				undoTrail()
				return false
			} else if unassigned == 1 {
				unit = lastUnassigned
				break
			}
		}

		if unit == 0 {
			break
		}
		assign(assignment, unit)
		trail = append(trail, unit)
	}

	// Pick a branching literal from the first unresolved clause
	branch := int64(0)
	for _, clause := range clauses {
		satisfied := false
		var candidate int64

		for _, literal := range clause {
			switch evaluate(assignment, literal) {
			case 1:
				satisfied = true
			case 0:
				if candidate == 0 {
					candidate = literal
				}
			}
			if satisfied {
				break
			}
		}

		if !satisfied && candidate != 0 {
			branch = candidate
			break
		}
	}

	if branch == 0 { // Every clause is satisfied
		return true
	}

	for _, literal := range []int64{branch, -branch} {
		assign(assignment, literal)
		if backtrack(clauses, assignment) {
			return true
		}
		unassign(assignment, literal)
	}

	undoTrail()
	return false
}
