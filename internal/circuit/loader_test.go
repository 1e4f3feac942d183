package circuit

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qirkit/qirkit/internal/ir"
)

const bellDescription = `
qubits: 2
bits: 2
statements:
  - comment: bell pair
  - gate: H
    operands: [0]
  - gate: CNOT
    operands: [0, 1]
  - measure: {qubit: 0, bit: 0}
  - measure: {qubit: 1, bit: 1}
`

func TestLoadDescription(t *testing.T) {
	d, err := LoadDescription(strings.NewReader(bellDescription))
	require.NoError(t, err)
	assert.Equal(t, 2, d.Qubits)
	assert.Equal(t, 2, d.Bits)
	assert.Len(t, d.Statements, 5)
}

func TestLoadDescriptionUnknownField(t *testing.T) {
	_, err := LoadDescription(strings.NewReader("qubits: 1\nwires: 4\n"))
	require.Error(t, err)
}

func TestLoadDescriptionRejectsStringParam(t *testing.T) {
	src := `
qubits: 1
statements:
  - gate: Rx
    operands: [0]
    params: [half]
`
	_, err := LoadDescription(strings.NewReader(src))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a number")
}

func TestBuildBellCircuit(t *testing.T) {
	d, err := LoadDescription(strings.NewReader(bellDescription))
	require.NoError(t, err)

	c, err := d.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, c.QubitRegisterSize)
	assert.Equal(t, "q", c.QubitRegisterName)
	assert.Equal(t, "b", c.BitRegisterName)

	statements := c.IR.Statements()
	require.Len(t, statements, 5)
	assert.IsType(t, &ir.Comment{}, statements[0])
	assert.Equal(t, "H", statements[1].(ir.Gate).Name())
	assert.Equal(t, "CNOT", statements[2].(ir.Gate).Name())
	assert.IsType(t, &ir.Measure{}, statements[3])
}

func TestBuildParameterizedGate(t *testing.T) {
	src := `
qubits: 1
statements:
  - gate: Rz
    operands: [0]
    params: [0.5]
`
	d, err := LoadDescription(strings.NewReader(src))
	require.NoError(t, err)

	c, err := d.Build()
	require.NoError(t, err)
	g := c.IR.Statements()[0].(*ir.BlochSphereRotation)
	assert.Equal(t, "Rz", g.Name())
	assert.InDelta(t, 0.5, g.Angle, ir.ATOL)
}

func TestBuildIntParam(t *testing.T) {
	src := `
qubits: 2
statements:
  - gate: CRk
    operands: [0, 1]
    params: [2]
`
	d, err := LoadDescription(strings.NewReader(src))
	require.NoError(t, err)

	c, err := d.Build()
	require.NoError(t, err)
	g := c.IR.Statements()[0].(*ir.ControlledGate)
	target := g.TargetGate.(*ir.BlochSphereRotation)
	assert.InDelta(t, math.Pi/2, target.Angle, ir.ATOL)
}

func TestBuildRegisterNames(t *testing.T) {
	src := `
qubits: 1
bits: 1
qubit_register: qr
bit_register: cr
statements: []
`
	d, err := LoadDescription(strings.NewReader(src))
	require.NoError(t, err)
	c, err := d.Build()
	require.NoError(t, err)
	assert.Equal(t, "qr", c.QubitRegisterName)
	assert.Equal(t, "cr", c.BitRegisterName)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"unknown gate",
			"qubits: 1\nstatements:\n  - gate: Toffoli\n    operands: [0]\n",
			"unknown gate",
		},
		{
			"qubit out of range",
			"qubits: 1\nstatements:\n  - gate: H\n    operands: [1]\n",
			"outside register",
		},
		{
			"bit out of range",
			"qubits: 1\nbits: 0\nstatements:\n  - measure: {qubit: 0, bit: 0}\n",
			"outside register",
		},
		{
			"no statement kind",
			"qubits: 1\nstatements:\n  - operands: [0]\n",
			"exactly one of",
		},
		{
			"two statement kinds",
			"qubits: 1\nbits: 1\nstatements:\n  - gate: H\n    operands: [0]\n    measure: {qubit: 0, bit: 0}\n",
			"exactly one of",
		},
		{
			"bad argument count",
			"qubits: 2\nstatements:\n  - gate: CNOT\n    operands: [0]\n",
			"expected 2 arguments",
		},
		{
			"duplicate operands",
			"qubits: 2\nstatements:\n  - gate: CNOT\n    operands: [0, 0]\n",
			"DUPLICATE_OPERAND",
		},
		{
			"comment with terminator",
			"qubits: 1\nstatements:\n  - comment: 'bad */ text'\n",
			"ILLEGAL_COMMENT_CONTENT",
		},
		{
			"measure through gate field",
			"qubits: 1\nbits: 1\nstatements:\n  - gate: measure\n    operands: [0]\n",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := LoadDescription(strings.NewReader(tt.src))
			require.NoError(t, err)
			_, err = d.Build()
			require.Error(t, err)
			if tt.want != "" {
				assert.Contains(t, err.Error(), tt.want)
			}
		})
	}
}

func TestNewCircuitDefaults(t *testing.T) {
	c := New(3, 1)
	assert.Equal(t, 3, c.QubitRegisterSize)
	assert.Equal(t, 1, c.BitRegisterSize)
	assert.Equal(t, DefaultQubitRegisterName, c.QubitRegisterName)
	assert.Equal(t, DefaultBitRegisterName, c.BitRegisterName)
	assert.Empty(t, c.IR.Statements())
}
