// Package decomposer rewrites gates into sequences drawn from restricted
// native gate sets while preserving the physical operation up to global
// phase.
//
// A Decomposer handles one gate at a time; Apply drives a decomposer over a
// whole IR in program order, splicing each replacement in place and
// optionally verifying it against the original through the gate equivalence
// oracle. The ABA family covers the six Euler-style axis-pair decompositions
// of arbitrary single-qubit rotations.
package decomposer
