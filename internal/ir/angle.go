package ir

import "math"

// ATOL is the absolute tolerance used for all floating-point comparisons in
// the IR: axis equality, angle equality, identity checks, and the
// global-phase equivalence test.
const ATOL = 1e-8

// NormalizeAngle maps any real angle into the canonical range (-pi, pi].
// This range underlies every equality check and decomposition branch test,
// and the function is idempotent over it.
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
