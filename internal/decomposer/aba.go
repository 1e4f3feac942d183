package decomposer

import (
	"fmt"
	"math"
	"strings"

	"github.com/qirkit/qirkit/internal/gates"
	"github.com/qirkit/qirkit/internal/ir"
)

// ABA decomposes arbitrary single-qubit rotations into three rotations
// alternating between two fixed canonical axes:
//
//	R(axis, angle) == Ra(theta3) * Rb(theta2) * Ra(theta1)
//
// up to global phase. An ABA value is a strategy: it carries its axis pair
// and the matching rotation constructors. Gates other than Bloch sphere
// rotations pass through unchanged.
type ABA struct {
	a, b   ir.CanonicalAxis
	ra, rb gates.RotationFunc
}

func newABA(a, b ir.CanonicalAxis) ABA {
	return ABA{a: a, b: b, ra: gates.Rotation(a), rb: gates.Rotation(b)}
}

// The six valid axis-pair instantiations, named by generator order A-B-A.
var (
	XYX = newABA(ir.AxisX, ir.AxisY)
	XZX = newABA(ir.AxisX, ir.AxisZ)
	YXY = newABA(ir.AxisY, ir.AxisX)
	YZY = newABA(ir.AxisY, ir.AxisZ)
	ZXZ = newABA(ir.AxisZ, ir.AxisX)
	ZYZ = newABA(ir.AxisZ, ir.AxisY)
)

// ByName resolves an ABA decomposer from its name ("xyx", "ZYZ", ...).
func ByName(name string) (ABA, error) {
	switch strings.ToUpper(name) {
	case "XYX":
		return XYX, nil
	case "XZX":
		return XZX, nil
	case "YXY":
		return YXY, nil
	case "YZY":
		return YZY, nil
	case "ZXZ":
		return ZXZ, nil
	case "ZYZ":
		return ZYZ, nil
	}
	return ABA{}, fmt.Errorf("unknown decomposition %q: want one of XYX, XZX, YXY, YZY, ZXZ, ZYZ", name)
}

// Name returns the decomposer's generator-order name, e.g. "ZYZ".
func (d ABA) Name() string {
	return d.a.String() + d.b.String() + d.a.String()
}

// Decompose implements Decomposer. Identity rotations among the three
// output gates are dropped, so the result holds at most three and possibly
// zero gates. The original rotation's global phase is intentionally not
// reproduced: it has no observable effect, and emitting it would require a
// phase-only node this engine does not produce.
func (d ABA) Decompose(g ir.Gate) ([]ir.Gate, error) {
	bsr, ok := g.(*ir.BlochSphereRotation)
	if !ok {
		// Single-qubit-only pass.
		return []ir.Gate{g}, nil
	}
	theta1, theta2, theta3, err := DecompositionAngles(bsr.Angle, bsr.Axis, d.a, d.b)
	if err != nil {
		return nil, err
	}
	return FilterOutIdentities([]ir.Gate{
		d.ra(bsr.Qubit, ir.Float{Value: theta1}),
		d.rb(bsr.Qubit, ir.Float{Value: theta2}),
		d.ra(bsr.Qubit, ir.Float{Value: theta3}),
	}), nil
}

// DecompositionAngles derives the three angles of the A-B-A decomposition of
// a rotation of alpha radians around a unit axis:
//
//	R(axis, alpha) == Ra(theta3) * Rb(theta2) * Ra(theta1)
//
// where a and b select the fixed axes by component index. alpha must
// already lie in (-pi-ATOL, pi+ATOL]; rotations coming out of
// BlochSphereRotation are always pre-normalized, so an UNNORMALIZED_ANGLE
// error only fires on manual misuse.
func DecompositionAngles(alpha float64, axis ir.Axis, a, b ir.CanonicalAxis) (theta1, theta2, theta3 float64, err error) {
	if !(-math.Pi-ir.ATOL < alpha && alpha <= math.Pi+ir.ATOL) {
		return 0, 0, 0, &ir.Error{
			Code:    ir.ErrCodeUnnormalizedAngle,
			Message: fmt.Sprintf("angle %g must lie in (-pi, pi]", alpha),
		}
	}
	av := axis.Component(int(a))
	bv := axis.Component(int(b))

	var p, m float64
	mFromAcos := true
	if math.Abs(alpha-math.Pi) < ir.ATOL {
		// alpha == pi: tan(alpha/2) is undefined.
		if math.Abs(av) < ir.ATOL {
			theta2 = math.Pi
			p = 0
			m = 2 * math.Acos(clamp(bv))
		} else {
			p = math.Pi
			theta2 = 2 * math.Acos(clamp(av))
			if math.Abs(av-1) < ir.ATOL || math.Abs(av+1) < ir.ATOL {
				// m is unconstrained here; m = p forces theta3 == 0, which
				// minimizes gate count.
				m = p
				mFromAcos = false
			} else {
				m = 2 * math.Acos(clamp(bv/math.Sqrt(1-av*av)))
			}
		}
	} else {
		half := alpha / 2
		p = 2 * math.Atan2(av*math.Sin(half), math.Cos(half))
		tan := av * math.Tan(half)
		theta2 = 2 * math.Acos(clamp(math.Cos(half)*math.Sqrt(1+tan*tan)))
		theta2 = math.Copysign(theta2, alpha)
		if math.Abs(math.Sin(theta2/2)) < ir.ATOL {
			// Same tie-break as above: force theta3 == 0.
			m = p
			mFromAcos = false
		} else {
			m = 2 * math.Acos(clamp(bv*math.Sin(half)/math.Sin(theta2/2)))
		}
	}

	theta1 = (p + m) / 2
	theta3 = p - theta1

	// acos recovers |m| but not its sign. Matching the Euler product
	// Ra(theta3) Rb(theta2) Ra(theta1) entrywise against the rotation
	// unitary gives sin(m/2) the sign of -eps*cv, where cv is the axis
	// component along the remaining canonical axis and eps is the
	// permutation sign of (a, b, remaining). The sin(alpha/2)/sin(theta2/2)
	// factor is nonnegative because theta2 takes alpha's sign. A negative
	// sin(m/2) means m should have been -m, which swaps theta1 and theta3.
	// The tie-break paths pick m freely, so they are exempt.
	if mFromAcos {
		cv := axis.Component(3 - int(a) - int(b))
		eps := 1.0
		if (int(b)-int(a)+3)%3 != 1 {
			eps = -1.0
		}
		if eps*cv > ir.ATOL {
			theta1, theta3 = theta3, theta1
		}
	}
	return theta1, theta2, theta3, nil
}

// clamp pulls float noise like 1.0000000000002 back into acos's domain.
func clamp(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}
