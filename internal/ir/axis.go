package ir

import (
	"fmt"
	"math"
)

// Axis is a unit 3-vector describing a rotation axis on the Bloch sphere.
// The input vector is always normalized before it is stored; construction
// fails if the input does not have exactly 3 components or has zero norm.
//
// Axis is immutable after construction. Components are addressable by
// position (0, 1, 2 for x, y, z) so axis-generic algorithms can select a
// component by canonical-axis index.
type Axis struct {
	v [3]float64
}

// NewAxis builds a unit Axis from the given components.
// Returns an INVALID_AXIS error for a zero vector.
func NewAxis(x, y, z float64) (Axis, error) {
	norm := math.Sqrt(x*x + y*y + z*z)
	if norm < ATOL {
		return Axis{}, newError(ErrCodeInvalidAxis, "axis requires a non-zero vector")
	}
	return Axis{v: [3]float64{x / norm, y / norm, z / norm}}, nil
}

// AxisFromSlice builds a unit Axis from a 3-element slice.
// Returns an INVALID_AXIS error if the slice does not have exactly 3
// components or describes a zero vector.
func AxisFromSlice(components []float64) (Axis, error) {
	if len(components) != 3 {
		return Axis{}, newError(ErrCodeInvalidAxis,
			"axis requires exactly 3 components, received %d", len(components))
	}
	return NewAxis(components[0], components[1], components[2])
}

// MustAxis is like NewAxis but panics on error. Intended for static axis
// literals in gate catalogs.
func MustAxis(x, y, z float64) Axis {
	a, err := NewAxis(x, y, z)
	if err != nil {
		panic(err)
	}
	return a
}

// Canonical Pauli axes.
var (
	XAxis = MustAxis(1, 0, 0)
	YAxis = MustAxis(0, 1, 0)
	ZAxis = MustAxis(0, 0, 1)
)

// Component returns the component at position i (0, 1, 2 for x, y, z).
func (a Axis) Component(i int) float64 {
	return a.v[i]
}

// Components returns the normalized components as a 3-element array.
func (a Axis) Components() [3]float64 {
	return a.v
}

// Neg returns the antipodal axis.
func (a Axis) Neg() Axis {
	return Axis{v: [3]float64{-a.v[0], -a.v[1], -a.v[2]}}
}

// Equal reports whether two axes have equal normalized components within ATOL.
func (a Axis) Equal(other Axis) bool {
	for i := range a.v {
		if math.Abs(a.v[i]-other.v[i]) > ATOL {
			return false
		}
	}
	return true
}

// Accept implements the visitor protocol for Axis.
func (a Axis) Accept(v Visitor) {
	v.VisitAxis(a)
}

func (a Axis) expression() {}

// String returns a debug representation like "Axis[0.70711, 0, 0.70711]".
func (a Axis) String() string {
	return fmt.Sprintf("Axis[%.5g, %.5g, %.5g]", a.v[0], a.v[1], a.v[2])
}

// CanonicalAxis enumerates the canonical single-qubit rotation axes. Its
// integer value is the component index used by axis-generic algorithms.
type CanonicalAxis int

const (
	// AxisX is the x axis (component index 0).
	AxisX CanonicalAxis = iota
	// AxisY is the y axis (component index 1).
	AxisY
	// AxisZ is the z axis (component index 2).
	AxisZ
)

// String returns the axis letter.
func (c CanonicalAxis) String() string {
	switch c {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return fmt.Sprintf("CanonicalAxis(%d)", int(c))
}

// Unit returns the unit Axis for a canonical axis.
func (c CanonicalAxis) Unit() Axis {
	switch c {
	case AxisX:
		return XAxis
	case AxisY:
		return YAxis
	default:
		return ZAxis
	}
}
