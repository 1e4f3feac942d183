// Package writer exports circuits as cQASM version 3.0 text. It traverses
// the IR through the visitor protocol only; the IR has no knowledge of it.
package writer

import (
	"fmt"
	"strings"

	"github.com/qirkit/qirkit/internal/circuit"
	"github.com/qirkit/qirkit/internal/ir"
)

// significantDigits controls float rendering in the emitted text.
const significantDigits = 8

// CircuitToString renders a circuit as cQASM text: version header, register
// declarations, then one line per statement in program order. Anonymous
// gates have no catalog name and render as a placeholder marker.
func CircuitToString(c *circuit.Circuit) string {
	w := &cqasmWriter{
		qubitRegister: c.QubitRegisterName,
		bitRegister:   c.BitRegisterName,
	}
	w.sb.WriteString("version 3.0\n\n")
	fmt.Fprintf(&w.sb, "qubit[%d] %s\n", c.QubitRegisterSize, c.QubitRegisterName)
	if c.BitRegisterSize > 0 {
		fmt.Fprintf(&w.sb, "bit[%d] %s\n", c.BitRegisterSize, c.BitRegisterName)
	}
	w.sb.WriteString("\n")
	c.IR.Accept(w)
	return w.sb.String()
}

type cqasmWriter struct {
	ir.BaseVisitor
	sb            strings.Builder
	qubitRegister string
	bitRegister   string
}

// VisitGate renders any gate kind; the subtype hooks stay no-ops.
func (w *cqasmWriter) VisitGate(g ir.Gate) {
	if g.IsAnonymous() {
		w.sb.WriteString("<anonymous-gate>\n")
		return
	}
	operands, params := w.splitArguments(g.Arguments())
	w.sb.WriteString(g.Name())
	if len(params) > 0 {
		fmt.Fprintf(&w.sb, "(%s)", strings.Join(params, ", "))
	}
	fmt.Fprintf(&w.sb, " %s\n", strings.Join(operands, ", "))
}

func (w *cqasmWriter) VisitMeasure(m *ir.Measure) {
	w.sb.WriteString(w.format(m.Bit))
	w.sb.WriteString(" = ")
	w.sb.WriteString(m.Name())
	w.sb.WriteString(" ")
	w.sb.WriteString(w.format(m.Qubit))
	w.sb.WriteString("\n")
}

func (w *cqasmWriter) VisitReset(r *ir.Reset) {
	fmt.Fprintf(&w.sb, "%s %s\n", r.Name(), w.format(r.Qubit))
}

func (w *cqasmWriter) VisitComment(c *ir.Comment) {
	fmt.Fprintf(&w.sb, "\n/* %s */\n\n", c.Text)
}

// splitArguments separates register references (rendered as operands) from
// numeric literals (rendered as a parameter list), each in declaration
// order.
func (w *cqasmWriter) splitArguments(args []ir.Expression) (operands, params []string) {
	for _, arg := range args {
		switch arg.(type) {
		case ir.Qubit, ir.Bit:
			operands = append(operands, w.format(arg))
		default:
			params = append(params, w.format(arg))
		}
	}
	return operands, params
}

func (w *cqasmWriter) format(e ir.Expression) string {
	f := &argFormatter{qubitRegister: w.qubitRegister, bitRegister: w.bitRegister}
	e.Accept(f)
	return f.out
}

// argFormatter renders a single expression node.
type argFormatter struct {
	ir.BaseVisitor
	qubitRegister string
	bitRegister   string
	out           string
}

func (f *argFormatter) VisitQubit(q ir.Qubit) {
	f.out = fmt.Sprintf("%s[%d]", f.qubitRegister, q.Index)
}

func (f *argFormatter) VisitBit(b ir.Bit) {
	f.out = fmt.Sprintf("%s[%d]", f.bitRegister, b.Index)
}

func (f *argFormatter) VisitInt(i ir.Int) {
	f.out = fmt.Sprintf("%d", i.Value)
}

func (f *argFormatter) VisitFloat(v ir.Float) {
	f.out = fmt.Sprintf("%.*g", significantDigits, v.Value)
}

func (f *argFormatter) VisitAxis(a ir.Axis) {
	n := a.Components()
	f.out = fmt.Sprintf("[%.*g, %.*g, %.*g]",
		significantDigits, n[0], significantDigits, n[1], significantDigits, n[2])
}
