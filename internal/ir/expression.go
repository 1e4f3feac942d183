package ir

import "fmt"

// Node is implemented by every IR node. Accept dispatches to the visitor
// method matching the node's concrete type.
type Node interface {
	Accept(v Visitor)
}

// Expression is a sealed interface over IR value types.
// Only Int, Float, Bit, Qubit, and Axis implement it.
type Expression interface {
	Node
	expression()
}

// Int is an integer literal expression.
type Int struct {
	Value int64
}

// Accept implements the visitor protocol for Int.
func (i Int) Accept(v Visitor) { v.VisitInt(i) }

func (Int) expression() {}

func (i Int) String() string { return fmt.Sprintf("%d", i.Value) }

// Float is a floating-point literal expression.
type Float struct {
	Value float64
}

// Accept implements the visitor protocol for Float.
func (f Float) Accept(v Visitor) { v.VisitFloat(f) }

func (Float) expression() {}

func (f Float) String() string { return fmt.Sprintf("%g", f.Value) }

// Qubit references a qubit register position by non-negative index.
// Value type: hashable and equatable by index.
type Qubit struct {
	Index int
}

// Accept implements the visitor protocol for Qubit.
func (q Qubit) Accept(v Visitor) { v.VisitQubit(q) }

func (Qubit) expression() {}

func (q Qubit) String() string { return fmt.Sprintf("Qubit[%d]", q.Index) }

// Bit references a classical bit register position by non-negative index.
type Bit struct {
	Index int
}

// Accept implements the visitor protocol for Bit.
func (b Bit) Accept(v Visitor) { v.VisitBit(b) }

func (Bit) expression() {}

func (b Bit) String() string { return fmt.Sprintf("Bit[%d]", b.Index) }
