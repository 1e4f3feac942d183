package decomposer

import (
	"fmt"
	"log/slog"

	"github.com/qirkit/qirkit/internal/ir"
)

// Decomposer is the single contract a decomposition pass implements: given
// one gate, produce the ordered gate list replacing it. Returning the input
// gate unchanged (as a one-element list) passes it through; returning an
// empty list drops it.
type Decomposer interface {
	Decompose(g ir.Gate) ([]ir.Gate, error)
}

// ApplyOptions controls the behavior of Apply.
type ApplyOptions struct {
	// SkipVerification disables the equivalence check between each original
	// gate and its replacement. Verification requires the equivalence
	// services to be registered.
	SkipVerification bool
}

// Apply runs a decomposer over every gate statement of an IR in program
// order and splices the replacements in. Non-gate statements pass through
// untouched. Unless opts.SkipVerification is set, each replacement is
// checked against the original gate through the equivalence oracle; a
// non-equivalent replacement is a defect in the decomposer and aborts the
// pass.
func Apply(theIR *ir.IR, d Decomposer, opts ApplyOptions) error {
	statements := theIR.Statements()
	out := make([]ir.Statement, 0, len(statements))
	for i, s := range statements {
		g, ok := s.(ir.Gate)
		if !ok {
			out = append(out, s)
			continue
		}
		replacement, err := d.Decompose(g)
		if err != nil {
			return fmt.Errorf("decomposing statement %d (%s): %w", i, g.Name(), err)
		}
		if !opts.SkipVerification {
			equivalent, err := ir.CompareGateWithSequence(g, replacement)
			if err != nil {
				return fmt.Errorf("verifying replacement of statement %d (%s): %w", i, g.Name(), err)
			}
			if !equivalent {
				return fmt.Errorf("replacement of statement %d (%s) is not equivalent to the original", i, g.Name())
			}
		}
		slog.Debug("gate decomposed",
			"statement", i,
			"gate", g.Name(),
			"replacement_count", len(replacement))
		for _, rg := range replacement {
			out = append(out, rg)
		}
	}
	theIR.Replace(out)
	return nil
}

// FilterOutIdentities drops identity gates from a sequence, preserving
// order. The result may be empty.
func FilterOutIdentities(sequence []ir.Gate) []ir.Gate {
	out := make([]ir.Gate, 0, len(sequence))
	for _, g := range sequence {
		if !g.IsIdentity() {
			out = append(out, g)
		}
	}
	return out
}
