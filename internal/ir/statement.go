package ir

import (
	"fmt"
	"strings"
)

// Statement is a sealed interface over the node kinds an IR may contain:
// gates, measurements, resets, and comments.
//
// Equal is part of the public contract of every statement. It compares by
// content within ATOL; generator metadata never participates. Gate kinds
// without an analytic fast path (MatrixGate, ControlledGate) fall through to
// the equivalence oracle, which may fail if its services are not registered
// or the matrices cannot be compared; those defects surface as errors.
type Statement interface {
	Node
	Equal(other Statement) (bool, error)
	statement()
}

// Measure binds a qubit and a classical bit to a measurement along an axis
// (Z unless stated otherwise).
type Measure struct {
	annotation
	Qubit Qubit
	Bit   Bit
	Axis  Axis
}

// NewMeasure builds a measurement of q along axis, storing the outcome in b.
func NewMeasure(q Qubit, b Bit, axis Axis) *Measure {
	return &Measure{Qubit: q, Bit: b, Axis: axis}
}

// Name returns the generator name, or an abstract marker for a measurement
// constructed directly.
func (m *Measure) Name() string { return m.generatorName("<abstract_measurement>") }

// IsAbstract reports whether the measurement carries no generator metadata.
func (m *Measure) IsAbstract() bool { return m.IsAnonymous() }

// Accept implements the visitor protocol for Measure.
func (m *Measure) Accept(v Visitor) { v.VisitMeasure(m) }

func (*Measure) statement() {}

// Equal compares qubit and measurement axis within tolerance.
// The classical bit and generator metadata are excluded.
func (m *Measure) Equal(other Statement) (bool, error) {
	o, ok := other.(*Measure)
	if !ok {
		return false, nil
	}
	return m.Qubit == o.Qubit && m.Axis.Equal(o.Axis), nil
}

// QubitOperands returns the measured qubit.
func (m *Measure) QubitOperands() []Qubit { return []Qubit{m.Qubit} }

// BitOperands returns the destination bit.
func (m *Measure) BitOperands() []Bit { return []Bit{m.Bit} }

func (m *Measure) String() string {
	return fmt.Sprintf("Measure(qubit=%s, bit=%s, axis=%s)", m.Qubit, m.Bit, m.Axis)
}

// Reset binds a qubit to a reset operation.
type Reset struct {
	annotation
	Qubit Qubit
}

// NewReset builds a reset of q.
func NewReset(q Qubit) *Reset {
	return &Reset{Qubit: q}
}

// Name returns the generator name, or an abstract marker for a reset
// constructed directly.
func (r *Reset) Name() string { return r.generatorName("<abstract_reset>") }

// IsAbstract reports whether the reset carries no generator metadata.
func (r *Reset) IsAbstract() bool { return r.IsAnonymous() }

// Accept implements the visitor protocol for Reset.
func (r *Reset) Accept(v Visitor) { v.VisitReset(r) }

func (*Reset) statement() {}

// Equal compares the reset qubit. Generator metadata is excluded.
func (r *Reset) Equal(other Statement) (bool, error) {
	o, ok := other.(*Reset)
	if !ok {
		return false, nil
	}
	return r.Qubit == o.Qubit, nil
}

// QubitOperands returns the reset qubit.
func (r *Reset) QubitOperands() []Qubit { return []Qubit{r.Qubit} }

func (r *Reset) String() string {
	return fmt.Sprintf("Reset(qubit=%s)", r.Qubit)
}

// Comment is an opaque text statement.
type Comment struct {
	Text string
}

// NewComment builds a comment statement. The text must not contain the
// block-comment terminator of the target textual syntax.
func NewComment(text string) (*Comment, error) {
	if strings.Contains(text, "*/") {
		return nil, newError(ErrCodeIllegalCommentContent, "comment contains block-comment terminator %q", "*/")
	}
	return &Comment{Text: text}, nil
}

// Accept implements the visitor protocol for Comment.
func (c *Comment) Accept(v Visitor) { v.VisitComment(c) }

func (*Comment) statement() {}

// Equal compares comment text.
func (c *Comment) Equal(other Statement) (bool, error) {
	o, ok := other.(*Comment)
	if !ok {
		return false, nil
	}
	return c.Text == o.Text, nil
}
