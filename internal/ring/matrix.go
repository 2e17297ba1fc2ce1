package ring

// Matrix is a k-by-k matrix of NTT-domain polynomials, generated
// pseudorandomly from a public seed by internal/sample and never
// serialized on its own (spec.md §4.6, component C6).
type Matrix []Vector

// NewMatrix allocates a zeroed k-by-k matrix, one row per Vector.
func NewMatrix(k int) Matrix {
	rows := make(Matrix, k)
	for i := range rows {
		rows[i] = NewVector(k)
	}
	return rows
}

// MulVector computes out = A*b (or Aᵀ*b, depending on how A's rows were
// generated) where every operand is in NTT domain: out[i] is the inner
// product of A's i-th row with b.
func (a Matrix) MulVector(out Vector, b Vector) {
	for i := range a {
		DotNTT(&out[i], a[i], b)
	}
}
