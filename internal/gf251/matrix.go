package gf251

import "errors"

// ErrSingularMatrix is returned by Solve when a required pivot is zero.
// Distinct, nonzero shadow indices make the Vandermonde system
// non-singular, so this indicates a caller invariant was violated
// (e.g. duplicate shadow indices) rather than an expected outcome.
var ErrSingularMatrix = errors.New("gf251: singular matrix, zero pivot encountered")

// Matrix is a k x (k+1) augmented matrix with entries in [0, 250].
type Matrix [][]byte

// NewMatrix allocates a k x (k+1) zeroed matrix.
func NewMatrix(k int) Matrix {
	m := make(Matrix, k)
	for i := range m {
		m[i] = make([]byte, k+1)
	}
	return m
}

// Solve eliminates m in place by Gauss-Jordan elimination over
// GF(251), following the forward-elimination and back-substitution
// steps of the Thien-Lin recovery procedure, and returns the solution
// vector c where c[j] = m[j][k]. Rows 1..k-1 end with a unit pivot;
// row 0's pivot is divided out of m[0][k] only, and m[0][0] keeps its
// value.
func Solve(m Matrix) ([]byte, error) {
	k := len(m)

	// Forward elimination: drive the matrix to echelon form.
	for j := 0; j < k-1; j++ {
		for i := k - 1; i > j; i-- {
			if m[i-1][j] == 0 {
				return nil, ErrSingularMatrix
			}
			a := Mul(m[i][j], Inv(m[i-1][j]))
			for t := j; t <= k; t++ {
				m[i][t] = Sub(m[i][t], Mul(m[i-1][t], a))
			}
		}
	}

	// Back-substitution: normalize each pivot and eliminate above it.
	for i := k - 1; i > 0; i-- {
		if m[i][i] == 0 {
			return nil, ErrSingularMatrix
		}
		inv := Inv(m[i][i])
		m[i][k] = Mul(m[i][k], inv)
		m[i][i] = 1
		for t := i - 1; t >= 0; t-- {
			m[t][k] = Sub(m[t][k], Mul(m[i][k], m[t][i]))
			m[t][i] = 0
		}
	}

	if m[0][0] == 0 {
		return nil, ErrSingularMatrix
	}
	m[0][k] = Mul(m[0][k], Inv(m[0][0]))

	c := make([]byte, k)
	for j := 0; j < k; j++ {
		c[j] = m[j][k]
	}
	return c, nil
}
