package ir

import (
	"fmt"
	"math"
)

// Gate is the sealed interface over unitary statements: single-qubit Bloch
// sphere rotations, multi-qubit matrix gates, and controlled gate wrappers.
type Gate interface {
	Statement
	Name() string
	IsAnonymous() bool
	Generator() *Generator
	Arguments() []Expression
	QubitOperands() []Qubit
	IsIdentity() bool
}

func hasRepeatedQubits(qubits []Qubit) bool {
	seen := make(map[Qubit]struct{}, len(qubits))
	for _, q := range qubits {
		if _, ok := seen[q]; ok {
			return true
		}
		seen[q] = struct{}{}
	}
	return false
}

// BlochSphereRotation is the fundamental single-qubit gate: a rotation of
// Angle radians around Axis, with a global Phase, acting on Qubit. Angle and
// phase are normalized into (-pi, pi] at construction.
type BlochSphereRotation struct {
	annotation
	Qubit Qubit
	Axis  Axis
	Angle float64
	Phase float64
}

// NewBlochSphereRotation builds a rotation around axis of angle radians with
// the given global phase.
func NewBlochSphereRotation(q Qubit, axis Axis, angle, phase float64) *BlochSphereRotation {
	return &BlochSphereRotation{
		Qubit: q,
		Axis:  axis,
		Angle: NormalizeAngle(angle),
		Phase: NormalizeAngle(phase),
	}
}

// Identity returns the identity rotation on q.
func Identity(q Qubit) *BlochSphereRotation {
	return NewBlochSphereRotation(q, XAxis, 0, 0)
}

// Name returns the generator name, or an anonymous marker for a rotation
// constructed directly.
func (g *BlochSphereRotation) Name() string { return g.generatorName("<anonymous-gate>") }

// Accept implements the visitor protocol. The generic gate hook runs before
// the subtype hook.
func (g *BlochSphereRotation) Accept(v Visitor) {
	v.VisitGate(g)
	v.VisitBlochSphereRotation(g)
}

func (*BlochSphereRotation) statement() {}

// Equal reports whether both rotations act on the same qubit and describe
// the same physical rotation: equal phases, and either equal axes and angles
// or antipodal axes and opposite angles, all within ATOL.
func (g *BlochSphereRotation) Equal(other Statement) (bool, error) {
	o, ok := other.(*BlochSphereRotation)
	if !ok {
		return false, nil
	}
	if g.Qubit != o.Qubit {
		return false, nil
	}
	if math.Abs(g.Phase-o.Phase) > ATOL {
		return false, nil
	}
	if g.Axis.Equal(o.Axis) {
		return math.Abs(g.Angle-o.Angle) < ATOL, nil
	}
	if g.Axis.Equal(o.Axis.Neg()) {
		return math.Abs(g.Angle+o.Angle) < ATOL, nil
	}
	return false, nil
}

// QubitOperands returns the single target qubit.
func (g *BlochSphereRotation) QubitOperands() []Qubit { return []Qubit{g.Qubit} }

// IsIdentity reports whether angle and phase are both negligible.
// Angle and phase are already normalized.
func (g *BlochSphereRotation) IsIdentity() bool {
	return math.Abs(g.Angle) < ATOL && math.Abs(g.Phase) < ATOL
}

func (g *BlochSphereRotation) String() string {
	return fmt.Sprintf("BlochSphereRotation(%s, axis=%s, angle=%.5g, phase=%.5g)",
		g.Qubit, g.Axis, g.Angle, g.Phase)
}

// MatrixGate is a dense unitary over an ordered list of at least 2 distinct
// qubits. The first operand addresses the most significant bit of the
// matrix's basis index.
type MatrixGate struct {
	annotation
	Matrix   Matrix
	Operands []Qubit
}

// NewMatrixGate builds a matrix gate over the given operands.
// Single-qubit gates must use BlochSphereRotation instead.
func NewMatrixGate(matrix Matrix, operands []Qubit) (*MatrixGate, error) {
	if len(operands) < 2 {
		return nil, newError(ErrCodeInvalidOperandCount,
			"matrix gate requires at least 2 operands, received %d; use BlochSphereRotation for 1-qubit gates",
			len(operands))
	}
	if hasRepeatedQubits(operands) {
		return nil, newError(ErrCodeDuplicateOperand, "operand qubits cannot repeat")
	}
	want := 1 << len(operands)
	if matrix.Dim() != want {
		return nil, newError(ErrCodeMatrixShapeMismatch,
			"expected a %dx%d matrix for %d operands, received %dx%d",
			want, want, len(operands), matrix.Dim(), matrix.Dim())
	}
	return &MatrixGate{Matrix: matrix, Operands: operands}, nil
}

// Name returns the generator name, or an anonymous marker.
func (g *MatrixGate) Name() string { return g.generatorName("<anonymous-gate>") }

// Accept implements the visitor protocol. The generic gate hook runs before
// the subtype hook.
func (g *MatrixGate) Accept(v Visitor) {
	v.VisitGate(g)
	v.VisitMatrixGate(g)
}

func (*MatrixGate) statement() {}

// Equal falls through to the equivalence oracle: there is no analytic
// shortcut for matrix gates.
func (g *MatrixGate) Equal(other Statement) (bool, error) {
	o, ok := other.(Gate)
	if !ok {
		return false, nil
	}
	return CompareGates(g, o)
}

// QubitOperands returns the ordered operand qubits.
func (g *MatrixGate) QubitOperands() []Qubit { return g.Operands }

// IsIdentity reports whether the matrix is close to the identity.
func (g *MatrixGate) IsIdentity() bool {
	return g.Matrix.IsIdentity(ATOL)
}

func (g *MatrixGate) String() string {
	return fmt.Sprintf("MatrixGate(qubits=%v, matrix=\n%s)", g.Operands, g.Matrix)
}

// ControlledGate wraps a target gate with a control qubit. Targets may
// themselves be controlled gates, enabling multi-level control.
type ControlledGate struct {
	annotation
	ControlQubit Qubit
	TargetGate   Gate
}

// NewControlledGate builds a controlled version of target.
// The control qubit must not appear among the target's operands.
func NewControlledGate(control Qubit, target Gate) (*ControlledGate, error) {
	if hasRepeatedQubits(append([]Qubit{control}, target.QubitOperands()...)) {
		return nil, newError(ErrCodeDuplicateOperand, "control and target qubit cannot be the same")
	}
	return &ControlledGate{ControlQubit: control, TargetGate: target}, nil
}

// Name returns the generator name, or an anonymous marker.
func (g *ControlledGate) Name() string { return g.generatorName("<anonymous-gate>") }

// Accept implements the visitor protocol. The generic gate hook runs before
// the subtype hook.
func (g *ControlledGate) Accept(v Visitor) {
	v.VisitGate(g)
	v.VisitControlledGate(g)
}

func (*ControlledGate) statement() {}

// Equal falls through to the equivalence oracle: there is no analytic
// shortcut for controlled gates.
func (g *ControlledGate) Equal(other Statement) (bool, error) {
	o, ok := other.(Gate)
	if !ok {
		return false, nil
	}
	return CompareGates(g, o)
}

// QubitOperands returns the control qubit followed by the target's operands.
func (g *ControlledGate) QubitOperands() []Qubit {
	return append([]Qubit{g.ControlQubit}, g.TargetGate.QubitOperands()...)
}

// IsIdentity delegates to the target gate.
func (g *ControlledGate) IsIdentity() bool {
	return g.TargetGate.IsIdentity()
}

func (g *ControlledGate) String() string {
	return fmt.Sprintf("ControlledGate(control=%s, %s)", g.ControlQubit, g.TargetGate)
}
