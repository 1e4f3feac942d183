package gates

import (
	"math"

	"github.com/qirkit/qirkit/internal/ir"
)

// RotationFunc is the shape of a parameterized axis rotation constructor
// (Rx, Ry, Rz).
type RotationFunc func(q ir.Qubit, theta ir.Float) *ir.BlochSphereRotation

// newFixedRotation builds the generator and constructor pair for a
// single-qubit gate with fixed axis, angle and phase.
func newFixedRotation(name string, axis ir.Axis, angle, phase float64) (*ir.Generator, func(ir.Qubit) *ir.BlochSphereRotation) {
	gen := &ir.Generator{Name: name}
	ctor := func(q ir.Qubit) *ir.BlochSphereRotation {
		g := ir.NewBlochSphereRotation(q, axis, angle, phase)
		g.SetGenerator(gen, q)
		return g
	}
	gen.Build = func(args ...ir.Expression) (ir.Statement, error) {
		q, err := oneQubit(name, args)
		if err != nil {
			return nil, err
		}
		return ctor(q), nil
	}
	return gen, ctor
}

// newAxisRotation builds the generator and constructor pair for a
// parameterized rotation around a canonical axis.
func newAxisRotation(name string, axis ir.Axis) (*ir.Generator, RotationFunc) {
	gen := &ir.Generator{Name: name}
	ctor := func(q ir.Qubit, theta ir.Float) *ir.BlochSphereRotation {
		g := ir.NewBlochSphereRotation(q, axis, theta.Value, 0)
		g.SetGenerator(gen, q, theta)
		return g
	}
	gen.Build = func(args ...ir.Expression) (ir.Statement, error) {
		q, theta, err := qubitTheta(name, args)
		if err != nil {
			return nil, err
		}
		return ctor(q, theta), nil
	}
	return gen, ctor
}

// Default single-qubit gate set. Axes, angles, and phases pin each gate to
// its conventional unitary; phases matter because gate equality compares
// them.
var (
	GeneratorI, I       = newFixedRotation("I", ir.XAxis, 0, 0)
	GeneratorH, H       = newFixedRotation("H", ir.MustAxis(1, 0, 1), math.Pi, math.Pi/2)
	GeneratorX, X       = newFixedRotation("X", ir.XAxis, math.Pi, math.Pi/2)
	GeneratorX90, X90   = newFixedRotation("X90", ir.XAxis, math.Pi/2, 0)
	GeneratorMX90, MX90 = newFixedRotation("mX90", ir.XAxis, -math.Pi/2, 0)
	GeneratorY, Y       = newFixedRotation("Y", ir.YAxis, math.Pi, math.Pi/2)
	GeneratorY90, Y90   = newFixedRotation("Y90", ir.YAxis, math.Pi/2, 0)
	GeneratorMY90, MY90 = newFixedRotation("mY90", ir.YAxis, -math.Pi/2, 0)
	GeneratorZ, Z       = newFixedRotation("Z", ir.ZAxis, math.Pi, math.Pi/2)
	GeneratorS, S       = newFixedRotation("S", ir.ZAxis, math.Pi/2, 0)
	GeneratorSdag, Sdag = newFixedRotation("Sdag", ir.ZAxis, -math.Pi/2, 0)
	GeneratorT, T       = newFixedRotation("T", ir.ZAxis, math.Pi/4, 0)
	GeneratorTdag, Tdag = newFixedRotation("Tdag", ir.ZAxis, -math.Pi/4, 0)
	GeneratorRx, Rx     = newAxisRotation("Rx", ir.XAxis)
	GeneratorRy, Ry     = newAxisRotation("Ry", ir.YAxis)
	GeneratorRz, Rz     = newAxisRotation("Rz", ir.ZAxis)
)

// Rotation returns the rotation constructor for a canonical axis. The ABA
// decomposers look their generator pairs up through this mapping.
func Rotation(axis ir.CanonicalAxis) RotationFunc {
	switch axis {
	case ir.AxisX:
		return Rx
	case ir.AxisY:
		return Ry
	default:
		return Rz
	}
}
