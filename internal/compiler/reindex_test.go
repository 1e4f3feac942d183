package compiler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qirkit/qirkit/internal/gates"
	"github.com/qirkit/qirkit/internal/ir"
)

func TestReindexStatements(t *testing.T) {
	q0, q2, q5 := ir.Qubit{Index: 0}, ir.Qubit{Index: 2}, ir.Qubit{Index: 5}
	cnot, err := gates.CNOT(q2, q5)
	require.NoError(t, err)
	swap, err := gates.SWAP(q2, q5)
	require.NoError(t, err)

	statements := []ir.Statement{
		gates.Rx(q5, ir.Float{Value: math.Pi / 3}),
		cnot,
		swap,
		gates.Measure(q2, ir.Bit{Index: 0}),
		gates.Reset(q0),
	}

	mapping := map[int]int{0: 0, 2: 1, 5: 2}
	out, err := ReindexStatements(statements, mapping)
	require.NoError(t, err)
	require.Len(t, out, 5)

	rx := out[0].(*ir.BlochSphereRotation)
	assert.Equal(t, 2, rx.Qubit.Index)
	assert.InDelta(t, math.Pi/3, rx.Angle, ir.ATOL)

	ctrl := out[1].(*ir.ControlledGate)
	assert.Equal(t, 1, ctrl.ControlQubit.Index)
	assert.Equal(t, 2, ctrl.TargetGate.QubitOperands()[0].Index)

	mg := out[2].(*ir.MatrixGate)
	assert.Equal(t, []ir.Qubit{{Index: 1}, {Index: 2}}, mg.Operands)

	m := out[3].(*ir.Measure)
	assert.Equal(t, 1, m.Qubit.Index)
	assert.Equal(t, 0, m.Bit.Index)

	rs := out[4].(*ir.Reset)
	assert.Equal(t, 0, rs.Qubit.Index)
}

func TestReindexMissingMapping(t *testing.T) {
	statements := []ir.Statement{gates.X(ir.Qubit{Index: 7})}
	_, err := ReindexStatements(statements, map[int]int{0: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no mapping")
}

func TestReindexStripsMetadata(t *testing.T) {
	g := gates.X(ir.Qubit{Index: 3})
	require.False(t, g.IsAnonymous())

	out, err := ReindexStatements([]ir.Statement{g}, map[int]int{3: 0})
	require.NoError(t, err)
	assert.True(t, out[0].(*ir.BlochSphereRotation).IsAnonymous())
}

func TestReindexPreservesComments(t *testing.T) {
	c, err := ir.NewComment("untouched")
	require.NoError(t, err)
	out, err := ReindexStatements([]ir.Statement{c}, map[int]int{})
	require.NoError(t, err)
	assert.Same(t, c, out[0])
}

func TestReindexEquivalentUnitary(t *testing.T) {
	// Reindexing onto a dense space preserves the unitary shape: Rx on
	// qubit 4 mapped to qubit 0 equals Rx built on qubit 0 directly.
	sparse := []ir.Statement{gates.Rx(ir.Qubit{Index: 4}, ir.Float{Value: 0.3})}
	dense, err := ReindexStatements(sparse, map[int]int{4: 0})
	require.NoError(t, err)

	got, err := CircuitMatrix(dense, 1)
	require.NoError(t, err)
	want, err := CircuitMatrix([]ir.Statement{gates.Rx(ir.Qubit{Index: 0}, ir.Float{Value: 0.3})}, 1)
	require.NoError(t, err)
	assert.True(t, got.CloseTo(want, ir.ATOL))
}
