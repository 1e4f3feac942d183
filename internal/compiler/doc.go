// Package compiler turns gate sequences into dense unitary matrices and
// provides the qubit reindexer, the two collaborator services behind the
// gate equivalence oracle in package ir.
//
// Compilation builds the 2^n unitary column by column: each basis state is
// pushed through the statement list with per-gate state-vector updates, so
// no intermediate full-size matrix products are formed. A small LRU cache
// keyed by a canonical circuit fingerprint avoids recompiling identical
// circuits during repeated equality checks.
package compiler
