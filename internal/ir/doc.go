// Package ir provides the intermediate representation for quantum programs.
//
// This package contains the node model (expressions, gates, measurements,
// resets, comments), the visitor protocol used by every external pass, and
// the numeric primitives (axis normalization, angle normalization, dense
// complex matrices) the rest of the compiler builds on. All other internal
// packages import ir; ir imports nothing internal. The only inverted
// dependency is gate equivalence: the circuit-matrix compiler and qubit
// reindexer are consumed through interfaces registered at startup, never
// through a package-level import.
//
// Key design constraints:
//   - IR nodes are value objects: created once, compared by content.
//   - Rotation angles and phases are normalized into (-pi, pi] at construction.
//   - Axes are unit-normalized at construction; a zero vector is rejected.
//   - Generator metadata (which named constructor built a node, with which
//     arguments) never participates in equality.
package ir
