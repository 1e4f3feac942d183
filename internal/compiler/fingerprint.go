package compiler

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/qirkit/qirkit/internal/ir"
)

// fingerprintDomain namespaces circuit fingerprints. The version suffix
// enables future format migration without colliding with cached entries.
const fingerprintDomain = "qirkit/circuit/v1"

// Fingerprint computes a content-addressed key for a statement sequence over
// a register of qubitCount qubits. Two sequences with identical structure
// and identical numeric parameters share a fingerprint, so it can key the
// unitary cache.
func Fingerprint(statements []ir.Statement, qubitCount int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "n=%d;", qubitCount)
	for _, s := range statements {
		writeStatementFingerprint(&sb, s)
	}

	h := sha256.New()
	h.Write([]byte(fingerprintDomain))
	h.Write([]byte{0x00})
	h.Write([]byte(sb.String()))
	return hex.EncodeToString(h.Sum(nil))
}

func writeStatementFingerprint(sb *strings.Builder, s ir.Statement) {
	switch node := s.(type) {
	case *ir.BlochSphereRotation:
		n := node.Axis.Components()
		fmt.Fprintf(sb, "bsr(%d,%.17g,%.17g,%.17g,%.17g,%.17g);",
			node.Qubit.Index, n[0], n[1], n[2], node.Angle, node.Phase)
	case *ir.MatrixGate:
		sb.WriteString("mat(")
		for _, op := range node.Operands {
			fmt.Fprintf(sb, "%d,", op.Index)
		}
		dim := node.Matrix.Dim()
		for i := 0; i < dim; i++ {
			for j := 0; j < dim; j++ {
				e := node.Matrix.At(i, j)
				fmt.Fprintf(sb, "%.17g%+.17gi,", real(e), imag(e))
			}
		}
		sb.WriteString(");")
	case *ir.ControlledGate:
		fmt.Fprintf(sb, "ctrl(%d,", node.ControlQubit.Index)
		writeStatementFingerprint(sb, node.TargetGate)
		sb.WriteString(");")
	case *ir.Measure:
		n := node.Axis.Components()
		fmt.Fprintf(sb, "measure(%d,%d,%.17g,%.17g,%.17g);",
			node.Qubit.Index, node.Bit.Index, n[0], n[1], n[2])
	case *ir.Reset:
		fmt.Fprintf(sb, "reset(%d);", node.Qubit.Index)
	case *ir.Comment:
		fmt.Fprintf(sb, "comment(%q);", node.Text)
	}
}
