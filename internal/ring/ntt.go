package ring

import "github.com/itzmeanjan/ml-kem-sub000/internal/field"

// zeta is the primitive 256th root of unity modulo q used throughout the
// NTT: 17^256 = 1 (mod 3329).
var zeta = field.FromCanonical(17)

// invN is the multiplicative inverse of N/2 = 128 modulo q, the scaling
// factor applied at the end of the inverse NTT.
var invN = field.Inv(field.FromCanonical(N / 2))

// bitRev7 reverses the low 7 bits of v.
func bitRev7(v int) int {
	r := 0
	for i := 0; i < 7; i++ {
		r |= ((v >> i) & 1) << (6 - i)
	}
	return r
}

// nttZetas, invNTTZetas and mulZetas are the three precomputed twiddle
// tables of spec.md §4.2. They are immutable process-wide constants built
// once at package initialization.
var (
	nttZetas    [N / 2]field.Elem
	invNTTZetas [N / 2]field.Elem
	mulZetas    [N / 2]field.Elem
)

func init() {
	for i := 0; i < N/2; i++ {
		nttZetas[i] = field.Pow(zeta, uint32(bitRev7(i)))
		invNTTZetas[i] = field.Neg(nttZetas[i])
		mulZetas[i] = field.Pow(zeta, uint32(2*bitRev7(i)+1))
	}
}

// NTT computes the forward, in-place number theoretic transform of p using
// the Cooley-Tukey algorithm over 7 layers, leaving coefficients in
// bit-reversed order. See spec.md §4.2 and FIPS 203 algorithm 9.
func (p *Poly) NTT() {
	k := 0
	for length := 128; length > 1; length >>= 1 {
		for start := 0; start < N; start += 2 * length {
			k++
			z := nttZetas[k]
			for j := start; j < start+length; j++ {
				t := field.Mul(z, p[j+length])
				p[j+length] = field.Sub(p[j], t)
				p[j] = field.Add(p[j], t)
			}
		}
	}
}

// InvNTT computes the inverse, in-place number theoretic transform of p
// using the Gentleman-Sande algorithm over 7 layers, assuming p's
// coefficients are in bit-reversed order. See spec.md §4.2 and FIPS 203
// algorithm 10.
func (p *Poly) InvNTT() {
	for l := 1; l < 8; l++ {
		length := 1 << l
		kBeg := (N >> l) - 1
		for start := 0; start < N; start += 2 * length {
			kNow := kBeg - (start >> (l + 1))
			z := invNTTZetas[kNow]
			for i := start; i < start+length; i++ {
				tmp := p[i]
				p[i] = field.Add(p[i], p[i+length])
				p[i+length] = field.Sub(tmp, p[i+length])
				p[i+length] = field.Mul(p[i+length], z)
			}
		}
	}
	for i := range p {
		p[i] = field.Mul(p[i], invN)
	}
}

// baseMul computes h = f*g mod (X^2 - z) for the degree-1 polynomials
// f = f0 + f1*X, g = g0 + g1*X. See spec.md §4.2 and FIPS 203 algorithm 12.
func baseMul(f0, f1, g0, g1, z field.Elem) (h0, h1 field.Elem) {
	h0 = field.Add(field.Mul(f0, g0), field.Mul(z, field.Mul(f1, g1)))
	h1 = field.Add(field.Mul(f0, g1), field.Mul(f1, g0))
	return
}

// MulNTT sets p to the pointwise product of a and b in the NTT domain,
// applying the base-case multiplication to each of the 128 degree-1
// polynomial pairs. See spec.md §4.2 and FIPS 203 algorithm 11.
func (p *Poly) MulNTT(a, b *Poly) {
	for i := 0; i < N/2; i++ {
		off := 2 * i
		h0, h1 := baseMul(a[off], a[off+1], b[off], b[off+1], mulZetas[i])
		p[off] = h0
		p[off+1] = h1
	}
}
