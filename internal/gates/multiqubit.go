package gates

import (
	"math"

	"github.com/qirkit/qirkit/internal/ir"
)

func mustMatrix(rows [][]complex128) ir.Matrix {
	m, err := ir.MatrixFromRows(rows)
	if err != nil {
		panic(err)
	}
	return m
}

// Multi-qubit generators. Their Build funcs call back into the typed
// constructors, so they are attached in init to keep the declarations free
// of initialization cycles.
var (
	GeneratorCNOT     = &ir.Generator{Name: "CNOT"}
	GeneratorCZ       = &ir.Generator{Name: "CZ"}
	GeneratorCR       = &ir.Generator{Name: "CR"}
	GeneratorCRk      = &ir.Generator{Name: "CRk"}
	GeneratorSWAP     = &ir.Generator{Name: "SWAP"}
	GeneratorSqrtSWAP = &ir.Generator{Name: "sqrtSWAP"}
	GeneratorCCZ      = &ir.Generator{Name: "CCZ"}
)

func init() {
	GeneratorCNOT.Build = func(args ...ir.Expression) (ir.Statement, error) {
		control, target, err := twoQubits("CNOT", args)
		if err != nil {
			return nil, err
		}
		return CNOT(control, target)
	}
	GeneratorCZ.Build = func(args ...ir.Expression) (ir.Statement, error) {
		control, target, err := twoQubits("CZ", args)
		if err != nil {
			return nil, err
		}
		return CZ(control, target)
	}
	GeneratorCR.Build = func(args ...ir.Expression) (ir.Statement, error) {
		if err := argCount("CR", args, 3); err != nil {
			return nil, err
		}
		control, err := asQubit("CR", args[0], 0)
		if err != nil {
			return nil, err
		}
		target, err := asQubit("CR", args[1], 1)
		if err != nil {
			return nil, err
		}
		theta, err := asFloat("CR", args[2], 2)
		if err != nil {
			return nil, err
		}
		return CR(control, target, theta)
	}
	GeneratorCRk.Build = func(args ...ir.Expression) (ir.Statement, error) {
		if err := argCount("CRk", args, 3); err != nil {
			return nil, err
		}
		control, err := asQubit("CRk", args[0], 0)
		if err != nil {
			return nil, err
		}
		target, err := asQubit("CRk", args[1], 1)
		if err != nil {
			return nil, err
		}
		k, err := asInt("CRk", args[2], 2)
		if err != nil {
			return nil, err
		}
		return CRk(control, target, k)
	}
	GeneratorSWAP.Build = func(args ...ir.Expression) (ir.Statement, error) {
		q1, q2, err := twoQubits("SWAP", args)
		if err != nil {
			return nil, err
		}
		return SWAP(q1, q2)
	}
	GeneratorSqrtSWAP.Build = func(args ...ir.Expression) (ir.Statement, error) {
		q1, q2, err := twoQubits("sqrtSWAP", args)
		if err != nil {
			return nil, err
		}
		return SqrtSWAP(q1, q2)
	}
	GeneratorCCZ.Build = func(args ...ir.Expression) (ir.Statement, error) {
		c1, c2, target, err := threeQubits("CCZ", args)
		if err != nil {
			return nil, err
		}
		return CCZ(c1, c2, target)
	}
}

// CNOT is the controlled-X gate.
func CNOT(control, target ir.Qubit) (*ir.ControlledGate, error) {
	g, err := ir.NewControlledGate(control, X(target))
	if err != nil {
		return nil, err
	}
	g.SetGenerator(GeneratorCNOT, control, target)
	return g, nil
}

// CZ is the controlled-Z gate.
func CZ(control, target ir.Qubit) (*ir.ControlledGate, error) {
	g, err := ir.NewControlledGate(control, Z(target))
	if err != nil {
		return nil, err
	}
	g.SetGenerator(GeneratorCZ, control, target)
	return g, nil
}

// CR is the controlled phase rotation of theta radians.
func CR(control, target ir.Qubit, theta ir.Float) (*ir.ControlledGate, error) {
	phase := ir.NewBlochSphereRotation(target, ir.ZAxis, theta.Value, theta.Value/2)
	g, err := ir.NewControlledGate(control, phase)
	if err != nil {
		return nil, err
	}
	g.SetGenerator(GeneratorCR, control, target, theta)
	return g, nil
}

// CRk is the controlled phase rotation of 2*pi/2^k radians.
func CRk(control, target ir.Qubit, k ir.Int) (*ir.ControlledGate, error) {
	theta := 2 * math.Pi / math.Exp2(float64(k.Value))
	phase := ir.NewBlochSphereRotation(target, ir.ZAxis, theta, theta/2)
	g, err := ir.NewControlledGate(control, phase)
	if err != nil {
		return nil, err
	}
	g.SetGenerator(GeneratorCRk, control, target, k)
	return g, nil
}

var swapMatrix = mustMatrix([][]complex128{
	{1, 0, 0, 0},
	{0, 0, 1, 0},
	{0, 1, 0, 0},
	{0, 0, 0, 1},
})

// SWAP exchanges the states of two qubits.
func SWAP(q1, q2 ir.Qubit) (*ir.MatrixGate, error) {
	g, err := ir.NewMatrixGate(swapMatrix, []ir.Qubit{q1, q2})
	if err != nil {
		return nil, err
	}
	g.SetGenerator(GeneratorSWAP, q1, q2)
	return g, nil
}

var sqrtSwapMatrix = mustMatrix([][]complex128{
	{1, 0, 0, 0},
	{0, complex(0.5, 0.5), complex(0.5, -0.5), 0},
	{0, complex(0.5, -0.5), complex(0.5, 0.5), 0},
	{0, 0, 0, 1},
})

// SqrtSWAP is the square root of the SWAP gate.
func SqrtSWAP(q1, q2 ir.Qubit) (*ir.MatrixGate, error) {
	g, err := ir.NewMatrixGate(sqrtSwapMatrix, []ir.Qubit{q1, q2})
	if err != nil {
		return nil, err
	}
	g.SetGenerator(GeneratorSqrtSWAP, q1, q2)
	return g, nil
}

// CCZ is the doubly-controlled Z gate.
func CCZ(control1, control2, target ir.Qubit) (*ir.ControlledGate, error) {
	inner, err := CZ(control2, target)
	if err != nil {
		return nil, err
	}
	g, err := ir.NewControlledGate(control1, inner)
	if err != nil {
		return nil, err
	}
	g.SetGenerator(GeneratorCCZ, control1, control2, target)
	return g, nil
}
