package ir

// Visitor is the double-dispatch traversal protocol over IR nodes. External
// passes (exporters, matrix builders, analyzers) implement it to process
// every node kind without the IR depending on them.
//
// Gate nodes call VisitGate before their subtype-specific hook, so a pass can
// intercept all gates uniformly before specializing.
//
// Embed BaseVisitor to inherit no-op defaults and implement only the node
// kinds the pass cares about.
type Visitor interface {
	VisitComment(c *Comment)
	VisitInt(i Int)
	VisitFloat(f Float)
	VisitBit(b Bit)
	VisitQubit(q Qubit)
	VisitAxis(a Axis)
	VisitGate(g Gate)
	VisitMeasure(m *Measure)
	VisitReset(r *Reset)
	VisitBlochSphereRotation(g *BlochSphereRotation)
	VisitMatrixGate(g *MatrixGate)
	VisitControlledGate(g *ControlledGate)
}

// BaseVisitor provides a no-op default for every node kind.
type BaseVisitor struct{}

// VisitComment is a no-op.
func (BaseVisitor) VisitComment(*Comment) {}

// VisitInt is a no-op.
func (BaseVisitor) VisitInt(Int) {}

// VisitFloat is a no-op.
func (BaseVisitor) VisitFloat(Float) {}

// VisitBit is a no-op.
func (BaseVisitor) VisitBit(Bit) {}

// VisitQubit is a no-op.
func (BaseVisitor) VisitQubit(Qubit) {}

// VisitAxis is a no-op.
func (BaseVisitor) VisitAxis(Axis) {}

// VisitGate is a no-op.
func (BaseVisitor) VisitGate(Gate) {}

// VisitMeasure is a no-op.
func (BaseVisitor) VisitMeasure(*Measure) {}

// VisitReset is a no-op.
func (BaseVisitor) VisitReset(*Reset) {}

// VisitBlochSphereRotation is a no-op.
func (BaseVisitor) VisitBlochSphereRotation(*BlochSphereRotation) {}

// VisitMatrixGate is a no-op.
func (BaseVisitor) VisitMatrixGate(*MatrixGate) {}

// VisitControlledGate is a no-op.
func (BaseVisitor) VisitControlledGate(*ControlledGate) {}
