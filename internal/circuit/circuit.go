// Package circuit ties a qubit/bit register pair to an IR and provides the
// YAML circuit-description loader used by the CLI. The description format
// names catalog gates and their operands; it is a construction surface for
// the IR, not the cQASM source language.
package circuit

import (
	"fmt"

	"github.com/qirkit/qirkit/internal/decomposer"
	"github.com/qirkit/qirkit/internal/ir"
)

// DefaultQubitRegisterName is the qubit register name used when a
// description does not override it.
const DefaultQubitRegisterName = "q"

// DefaultBitRegisterName is the bit register name used when a description
// does not override it.
const DefaultBitRegisterName = "b"

// Circuit is a quantum program: an IR plus the registers it addresses.
type Circuit struct {
	QubitRegisterSize int
	BitRegisterSize   int
	QubitRegisterName string
	BitRegisterName   string
	IR                *ir.IR
}

// New returns an empty circuit over the given register sizes.
func New(qubits, bits int) *Circuit {
	return &Circuit{
		QubitRegisterSize: qubits,
		BitRegisterSize:   bits,
		QubitRegisterName: DefaultQubitRegisterName,
		BitRegisterName:   DefaultBitRegisterName,
		IR:                ir.NewIR(),
	}
}

// Decompose runs a decomposition pass over the circuit's IR.
func (c *Circuit) Decompose(d decomposer.Decomposer, opts decomposer.ApplyOptions) error {
	return decomposer.Apply(c.IR, d, opts)
}

func (c *Circuit) checkQubit(q ir.Qubit) error {
	if q.Index < 0 || q.Index >= c.QubitRegisterSize {
		return fmt.Errorf("qubit index %d outside register %s[%d]", q.Index, c.QubitRegisterName, c.QubitRegisterSize)
	}
	return nil
}

func (c *Circuit) checkBit(b ir.Bit) error {
	if b.Index < 0 || b.Index >= c.BitRegisterSize {
		return fmt.Errorf("bit index %d outside register %s[%d]", b.Index, c.BitRegisterName, c.BitRegisterSize)
	}
	return nil
}
