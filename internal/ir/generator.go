package ir

// Generator is the provenance record protocol for named constructors.
//
// Every registered gate/measurement/reset constructor is backed by a
// Generator whose Build re-invokes the constructor from an ordered argument
// list matching the constructor's declared parameter order. A node built
// through such a constructor carries a reference to the Generator plus the
// exact arguments supplied, so Build(node.Arguments()...) reconstructs an
// equal node. Nodes constructed directly carry no metadata and are
// "anonymous" (gates) or "abstract" (measurements, resets).
type Generator struct {
	// Name is the exported name of the constructor, as it appears in the
	// target textual syntax.
	Name string

	// Build re-invokes the constructor with an ordered argument list.
	// It fails on an argument count or type mismatch.
	Build func(args ...Expression) (Statement, error)
}

// annotation carries generator/arguments metadata on a statement node.
// Metadata is excluded from all equality checks.
type annotation struct {
	generator *Generator
	arguments []Expression
}

// Generator returns the named generator that built this node, or nil.
func (a *annotation) Generator() *Generator { return a.generator }

// Arguments returns the ordered arguments the generator was invoked with,
// or nil for an anonymous node.
func (a *annotation) Arguments() []Expression { return a.arguments }

// IsAnonymous reports whether the node was constructed directly rather than
// through a registered generator.
func (a *annotation) IsAnonymous() bool { return a.arguments == nil }

// SetGenerator attaches generator metadata to the node. Called by named
// constructors immediately after construction, before the node escapes.
func (a *annotation) SetGenerator(g *Generator, args ...Expression) {
	a.generator = g
	a.arguments = args
}

func (a *annotation) generatorName(fallback string) string {
	if a.generator != nil {
		return a.generator.Name
	}
	return fallback
}
