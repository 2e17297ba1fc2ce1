// Package ring implements the ML-KEM polynomial ring R_q = Z_q[X]/(X^256+1):
// the NTT, its base-case multiplication, compression/decompression, and
// bit-packed serialization (spec components C2-C4, C6).
package ring

import "github.com/itzmeanjan/ml-kem-sub000/internal/field"

// N is the number of coefficients in a polynomial.
const N = 256

// Poly is a degree-255 polynomial over Z_q. The same type represents both
// coefficient form and NTT (evaluation) form; which is meant is tracked by
// the caller, exactly as spec.md §3 requires. Every exposed coefficient is
// canonical, except in a polynomial returned by DecodeL(12, ...) from
// bytes holding 12-bit values >= q (see DecodeL).
type Poly [N]field.Elem

// Add sets p = a+b.
func (p *Poly) Add(a, b *Poly) {
	for i := range p {
		p[i] = field.Add(a[i], b[i])
	}
}

// Sub sets p = a-b.
func (p *Poly) Sub(a, b *Poly) {
	for i := range p {
		p[i] = field.Sub(a[i], b[i])
	}
}

// Zero clears p to the zero polynomial.
func (p *Poly) Zero() {
	for i := range p {
		p[i] = field.Zero()
	}
}
