package compiler

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/qirkit/qirkit/internal/ir"
)

// CircuitMatrix compiles a gate sequence over qubitCount densely indexed
// qubits into its 2^qubitCount unitary. Qubit index 0 addresses the least
// significant bit of a basis-state index. Qubits no gate touches contribute
// implicit identity padding. Statements other than gates cannot be compiled
// and are rejected.
func CircuitMatrix(statements []ir.Statement, qubitCount int) (ir.Matrix, error) {
	if qubitCount < 0 {
		return ir.Matrix{}, fmt.Errorf("negative qubit count %d", qubitCount)
	}
	for i, s := range statements {
		g, ok := s.(ir.Gate)
		if !ok {
			return ir.Matrix{}, fmt.Errorf("statement %d (%T) is not a gate and has no unitary", i, s)
		}
		for _, q := range g.QubitOperands() {
			if q.Index < 0 || q.Index >= qubitCount {
				return ir.Matrix{}, fmt.Errorf("statement %d operates on %s, outside register of size %d", i, q, qubitCount)
			}
		}
	}

	dim := 1 << qubitCount
	m := ir.ZeroMatrix(dim)
	state := make([]complex128, dim)
	for col := 0; col < dim; col++ {
		for i := range state {
			state[i] = 0
		}
		state[col] = 1
		for _, s := range statements {
			applyGate(state, s.(ir.Gate))
		}
		for row := 0; row < dim; row++ {
			m.Set(row, col, state[row])
		}
	}
	return m, nil
}

func applyGate(state []complex128, g ir.Gate) {
	switch gate := g.(type) {
	case *ir.BlochSphereRotation:
		applySingleQubit(state, gate.Qubit.Index, blochUnitary(gate))
	case *ir.MatrixGate:
		applyMatrixGate(state, gate)
	case *ir.ControlledGate:
		applyControlled(state, gate)
	}
}

// blochUnitary returns the 2x2 unitary e^(i*phase) * (cos(angle/2) I - i sin(angle/2) n.sigma).
func blochUnitary(g *ir.BlochSphereRotation) [2][2]complex128 {
	half := g.Angle / 2
	c := math.Cos(half)
	s := math.Sin(half)
	n := g.Axis.Components()
	phase := cmplx.Exp(complex(0, g.Phase))
	return [2][2]complex128{
		{phase * complex(c, -s*n[2]), phase * complex(-s*n[1], -s*n[0])},
		{phase * complex(s*n[1], -s*n[0]), phase * complex(c, s*n[2])},
	}
}

func applySingleQubit(state []complex128, qubit int, u [2][2]complex128) {
	bit := 1 << qubit
	for i := range state {
		if i&bit == 0 {
			j := i | bit
			a, b := state[i], state[j]
			state[i] = u[0][0]*a + u[0][1]*b
			state[j] = u[1][0]*a + u[1][1]*b
		}
	}
}

// applyMatrixGate applies a k-qubit matrix gate. The first operand addresses
// the most significant bit of the gate's basis index.
func applyMatrixGate(state []complex128, g *ir.MatrixGate) {
	k := len(g.Operands)
	size := 1 << k

	// spread[r] is the full-space bit pattern for gate basis index r.
	spread := make([]int, size)
	for r := 0; r < size; r++ {
		for t := 0; t < k; t++ {
			if r&(1<<(k-1-t)) != 0 {
				spread[r] |= 1 << g.Operands[t].Index
			}
		}
	}
	operandMask := spread[size-1]

	amps := make([]complex128, size)
	for base := range state {
		if base&operandMask != 0 {
			continue
		}
		for r := 0; r < size; r++ {
			amps[r] = state[base|spread[r]]
		}
		for r := 0; r < size; r++ {
			var sum complex128
			for c := 0; c < size; c++ {
				sum += g.Matrix.At(r, c) * amps[c]
			}
			state[base|spread[r]] = sum
		}
	}
}

// applyControlled applies the target gate on the subspace where the control
// qubit is set, leaving the rest of the state untouched. The target unitary
// never moves the control bit, so the subspace is closed under it.
func applyControlled(state []complex128, g *ir.ControlledGate) {
	bit := 1 << g.ControlQubit.Index
	sub := make([]complex128, len(state))
	for i := range state {
		if i&bit != 0 {
			sub[i] = state[i]
		}
	}
	applyGate(sub, g.TargetGate)
	for i := range state {
		if i&bit != 0 {
			state[i] = sub[i]
		}
	}
}
