package ir

import (
	"fmt"
	"sort"
)

// CircuitCompiler compiles a gate sequence over qubitCount densely indexed
// qubits into its 2^qubitCount unitary matrix. Qubits beyond a gate's own
// operands act as implicit identity padding.
type CircuitCompiler interface {
	Compile(statements []Statement, qubitCount int) (Matrix, error)
}

// Reindexer rewrites statements so that each original qubit index is
// replaced per the supplied mapping, preserving statement order and
// structure.
type Reindexer interface {
	Reindex(statements []Statement, mapping map[int]int) ([]Statement, error)
}

// EquivalenceServices bundles the two collaborators the gate equivalence
// oracle needs. The IR depends on them abstractly; concrete implementations
// are registered at startup by whoever wires the compiler together.
type EquivalenceServices struct {
	Compiler  CircuitCompiler
	Reindexer Reindexer
}

var equivalence *EquivalenceServices

// RegisterEquivalenceServices installs the collaborators backing CompareGates.
// Call once at startup, before any gate equality check that lacks an
// analytic fast path.
func RegisterEquivalenceServices(s EquivalenceServices) {
	equivalence = &s
}

// CompareGates reports whether two gates describe the same physical
// operation up to a global phase factor. It is the single source of truth
// for gate equality beyond the analytic fast paths: the operand qubits of
// both gates are mapped onto a shared dense index space, each gate is
// compiled into its unitary over that space, and the matrices are compared
// up to global phase.
func CompareGates(g1, g2 Gate) (bool, error) {
	return CompareGateWithSequence(g1, []Gate{g2})
}

// CompareGateWithSequence reports whether gate g is equivalent, up to global
// phase, to the composition of the given gate sequence. An empty sequence
// denotes the identity. Used by decomposition passes to verify replacements.
func CompareGateWithSequence(g Gate, sequence []Gate) (bool, error) {
	if equivalence == nil {
		return false, fmt.Errorf("gate equivalence services not registered")
	}

	union := map[int]struct{}{}
	for _, q := range g.QubitOperands() {
		union[q.Index] = struct{}{}
	}
	for _, sg := range sequence {
		for _, q := range sg.QubitOperands() {
			union[q.Index] = struct{}{}
		}
	}
	indices := make([]int, 0, len(union))
	for i := range union {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	mapping := make(map[int]int, len(indices))
	for dense, orig := range indices {
		mapping[orig] = dense
	}

	left, err := compileMapped([]Statement{g}, mapping)
	if err != nil {
		return false, err
	}
	right, err := compileMapped(gateStatements(sequence), mapping)
	if err != nil {
		return false, err
	}
	return left.EquivalentUpToGlobalPhase(right, ATOL)
}

func compileMapped(statements []Statement, mapping map[int]int) (Matrix, error) {
	reindexed, err := equivalence.Reindexer.Reindex(statements, mapping)
	if err != nil {
		return Matrix{}, fmt.Errorf("reindexing circuit: %w", err)
	}
	m, err := equivalence.Compiler.Compile(reindexed, len(mapping))
	if err != nil {
		return Matrix{}, fmt.Errorf("compiling circuit matrix: %w", err)
	}
	return m, nil
}

func gateStatements(gates []Gate) []Statement {
	statements := make([]Statement, len(gates))
	for i, g := range gates {
		statements[i] = g
	}
	return statements
}
