package ring

import "github.com/itzmeanjan/ml-kem-sub000/internal/field"

// qBitWidth is ceil(log2(field.Q)) = 12; compression widths must stay
// below it.
const qBitWidth = 12

// barrettR mirrors field's internal Barrett constant; compression needs it
// directly because it reduces a pre-shifted dividend rather than a bare
// field element.
const barrettR = field.R

// CompressD maps x in Z_q to a d-bit value round(2^d * x / q) mod 2^d,
// for d < 12, without floating point or data-dependent branches.
//
// It computes the rounded quotient with a Barrett approximation followed
// by two branchless half-ULP corrections, the same double-rounding trick
// the original implementation uses (see DESIGN.md).
func CompressD(d int, x field.Elem) uint16 {
	mask := uint32(1<<uint(d)) - 1

	dividend := uint32(x.Raw()) << uint(d)
	quotient0 := uint32((uint64(dividend) * uint64(barrettR)) >> (2 * qBitWidth))
	remainder := dividend - quotient0*field.Q

	quotient1 := quotient0 + (((field.Q/2 - remainder) >> 31) & 1)
	quotient2 := quotient1 + (((field.Q + field.Q/2 - remainder) >> 31) & 1)

	return uint16(quotient2) & uint16(mask)
}

// DecompressD maps a d-bit value y back to Z_q as round(q * y / 2^d),
// computed branch-free as (q*y + 2^(d-1)) >> d.
func DecompressD(d int, y uint16) field.Elem {
	half := uint32(1) << uint(d-1)
	v := (field.Q*uint32(y) + half) >> uint(d)
	return field.FromUnreduced(v)
}

// Compress applies CompressD coefficient-wise, in place.
func (p *Poly) Compress(d int) {
	for i := range p {
		p[i] = field.FromCanonical(CompressD(d, p[i]))
	}
}

// Decompress applies DecompressD coefficient-wise, in place.
func (p *Poly) Decompress(d int) {
	for i := range p {
		p[i] = DecompressD(d, p[i].Raw())
	}
}
