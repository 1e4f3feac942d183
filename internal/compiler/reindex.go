package compiler

import (
	"fmt"

	"github.com/qirkit/qirkit/internal/ir"
)

// ReindexStatements rewrites statements so that every qubit index is
// replaced per mapping, preserving statement order and structure. Comments
// pass through untouched. The rebuilt nodes carry no generator metadata:
// reindexing changes their arguments, and metadata never participates in
// equality anyway.
func ReindexStatements(statements []ir.Statement, mapping map[int]int) ([]ir.Statement, error) {
	out := make([]ir.Statement, 0, len(statements))
	for i, s := range statements {
		r, err := reindexStatement(s, mapping)
		if err != nil {
			return nil, fmt.Errorf("reindexing statement %d: %w", i, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func reindexStatement(s ir.Statement, mapping map[int]int) (ir.Statement, error) {
	switch node := s.(type) {
	case *ir.BlochSphereRotation:
		q, err := mapQubit(node.Qubit, mapping)
		if err != nil {
			return nil, err
		}
		return ir.NewBlochSphereRotation(q, node.Axis, node.Angle, node.Phase), nil

	case *ir.MatrixGate:
		operands := make([]ir.Qubit, len(node.Operands))
		for i, op := range node.Operands {
			q, err := mapQubit(op, mapping)
			if err != nil {
				return nil, err
			}
			operands[i] = q
		}
		return ir.NewMatrixGate(node.Matrix, operands)

	case *ir.ControlledGate:
		control, err := mapQubit(node.ControlQubit, mapping)
		if err != nil {
			return nil, err
		}
		target, err := reindexStatement(node.TargetGate, mapping)
		if err != nil {
			return nil, err
		}
		return ir.NewControlledGate(control, target.(ir.Gate))

	case *ir.Measure:
		q, err := mapQubit(node.Qubit, mapping)
		if err != nil {
			return nil, err
		}
		return ir.NewMeasure(q, node.Bit, node.Axis), nil

	case *ir.Reset:
		q, err := mapQubit(node.Qubit, mapping)
		if err != nil {
			return nil, err
		}
		return ir.NewReset(q), nil

	case *ir.Comment:
		return node, nil

	default:
		return nil, fmt.Errorf("unknown statement type %T", s)
	}
}

func mapQubit(q ir.Qubit, mapping map[int]int) (ir.Qubit, error) {
	dense, ok := mapping[q.Index]
	if !ok {
		return ir.Qubit{}, fmt.Errorf("no mapping for %s", q)
	}
	return ir.Qubit{Index: dense}, nil
}
