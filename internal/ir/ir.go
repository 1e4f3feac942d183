package ir

import "fmt"

// IR is an ordered, mutable sequence of statements making up one quantum
// program. The container owns its statements exclusively: the core only ever
// appends, or replaces the sequence wholesale when a decomposition pass
// splices in its output. One IR instance must be mutated by at most one
// goroutine at a time; the core defines no further thread-safety guarantees.
type IR struct {
	statements []Statement
}

// NewIR returns an empty IR.
func NewIR() *IR {
	return &IR{}
}

// Statements returns the statement sequence in program order. The returned
// slice is the IR's own backing storage; callers must not mutate it.
func (r *IR) Statements() []Statement {
	return r.statements
}

// AddGate appends a gate statement.
func (r *IR) AddGate(g Gate) {
	r.statements = append(r.statements, g)
}

// AddMeasure appends a measurement statement.
func (r *IR) AddMeasure(m *Measure) {
	r.statements = append(r.statements, m)
}

// AddReset appends a reset statement.
func (r *IR) AddReset(rs *Reset) {
	r.statements = append(r.statements, rs)
}

// AddComment appends a comment statement.
func (r *IR) AddComment(c *Comment) {
	r.statements = append(r.statements, c)
}

// Replace swaps the whole statement sequence for a new one. Used by
// decomposition passes, which rebuild the sequence rather than mutate
// statements in place.
func (r *IR) Replace(statements []Statement) {
	r.statements = statements
}

// Accept visits every statement in program order.
func (r *IR) Accept(v Visitor) {
	for _, s := range r.statements {
		s.Accept(v)
	}
}

// Equal reports whether both IRs hold element-wise equal statement
// sequences. Comparing matrix or controlled gates may invoke the
// equivalence oracle, whose failures surface as errors.
func (r *IR) Equal(other *IR) (bool, error) {
	if len(r.statements) != len(other.statements) {
		return false, nil
	}
	for i, s := range r.statements {
		eq, err := s.Equal(other.statements[i])
		if err != nil {
			return false, fmt.Errorf("comparing statement %d: %w", i, err)
		}
		if !eq {
			return false, nil
		}
	}
	return true, nil
}

func (r *IR) String() string {
	return fmt.Sprintf("IR%v", r.statements)
}
