package sat

import "log"

// Builder accumulates clauses and allocates variable indices monotonically.
// It is an explicit state object: independent builders never share state, so
// separate instances can be assembled concurrently or in isolated tests.
type Builder struct {
	variables int64
	clauses   [][]int64
}

func NewBuilder() *Builder {
	return &Builder{}
}

// NewVar allocates a fresh variable and returns its index (always positive).
func (builder *Builder) NewVar() int64 {
	builder.variables++
	return builder.variables
}

// AddClause appends a clause to the formula. Every literal must reference an
// already-allocated variable; an empty clause is an invariant violation.
func (builder *Builder) AddClause(literals ...int64) {
	if len(literals) == 0 {
		log.Panic("an empty clause must never be emitted")
	}
	for _, literal := range literals {
		if literal == 0 || literal > builder.variables || -literal > builder.variables {
			log.Panicf("literal %v references an unallocated variable (allocated: %v)", literal, builder.variables)
		}
	}
	builder.clauses = append(builder.clauses, literals)
}

// Variables returns the number of variables allocated so far.
func (builder *Builder) Variables() int64 {
	return builder.variables
}

// ClauseCount returns the number of clauses emitted so far.
func (builder *Builder) ClauseCount() int {
	return len(builder.clauses)
}

// SAT returns the accumulated formula.
func (builder *Builder) SAT() SAT {
	return SAT{
		Variables: uint64(builder.variables),
		Clauses:   builder.clauses,
	}
}
