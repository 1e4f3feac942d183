package ir

import (
	"fmt"
	"math/cmplx"
	"strings"
)

// Matrix is a dense square complex matrix, used for multi-qubit matrix gates
// and as the output of the circuit-matrix compiler. Storage is row-major.
type Matrix struct {
	dim  int
	data []complex128
}

// ZeroMatrix returns a dim x dim matrix of zeros.
func ZeroMatrix(dim int) Matrix {
	return Matrix{dim: dim, data: make([]complex128, dim*dim)}
}

// IdentityMatrix returns the dim x dim identity matrix.
func IdentityMatrix(dim int) Matrix {
	m := ZeroMatrix(dim)
	for i := 0; i < dim; i++ {
		m.data[i*dim+i] = 1
	}
	return m
}

// MatrixFromRows builds a Matrix from row slices.
// All rows must have length equal to the number of rows.
func MatrixFromRows(rows [][]complex128) (Matrix, error) {
	dim := len(rows)
	m := ZeroMatrix(dim)
	for i, row := range rows {
		if len(row) != dim {
			return Matrix{}, fmt.Errorf("matrix must be square: row %d has %d entries, want %d", i, len(row), dim)
		}
		copy(m.data[i*dim:(i+1)*dim], row)
	}
	return m, nil
}

// Dim returns the matrix dimension.
func (m Matrix) Dim() int { return m.dim }

// At returns the entry at row i, column j.
func (m Matrix) At(i, j int) complex128 {
	return m.data[i*m.dim+j]
}

// Set writes the entry at row i, column j. It mutates the backing storage
// and is intended for matrix construction only.
func (m Matrix) Set(i, j int, v complex128) {
	m.data[i*m.dim+j] = v
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	c := Matrix{dim: m.dim, data: make([]complex128, len(m.data))}
	copy(c.data, m.data)
	return c
}

// CloseTo reports whether both matrices have the same dimension and all
// entries agree within tol.
func (m Matrix) CloseTo(other Matrix, tol float64) bool {
	if m.dim != other.dim {
		return false
	}
	for i := range m.data {
		if cmplx.Abs(m.data[i]-other.data[i]) > tol {
			return false
		}
	}
	return true
}

// IsIdentity reports whether the matrix is close to the identity within tol.
func (m Matrix) IsIdentity(tol float64) bool {
	return m.CloseTo(IdentityMatrix(m.dim), tol)
}

// EquivalentUpToGlobalPhase reports whether there is a unit scalar phase
// factor e^(i*theta) such that m is close to phase*other within tol. The
// phase reference is the first entry of m whose magnitude exceeds tol.
// A dimension mismatch is a defect and is surfaced as an error.
func (m Matrix) EquivalentUpToGlobalPhase(other Matrix, tol float64) (bool, error) {
	if m.dim != other.dim {
		return false, fmt.Errorf("matrix shape mismatch: %dx%d vs %dx%d", m.dim, m.dim, other.dim, other.dim)
	}
	ref := -1
	for i := range m.data {
		if cmplx.Abs(m.data[i]) > tol {
			ref = i
			break
		}
	}
	if ref < 0 {
		// m is the zero matrix; equivalent only to another zero matrix.
		return other.CloseTo(m, tol), nil
	}
	if cmplx.Abs(other.data[ref]) <= tol {
		return false, nil
	}
	phase := m.data[ref] / other.data[ref]
	for i := range m.data {
		if cmplx.Abs(m.data[i]-phase*other.data[i]) > tol {
			return false, nil
		}
	}
	return true, nil
}

// String returns a multi-line debug rendering with entries rounded to 5
// significant digits.
func (m Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.dim; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.dim; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			e := m.At(i, j)
			fmt.Fprintf(&sb, "%.5g%+.5gi", real(e), imag(e))
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
