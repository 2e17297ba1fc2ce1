package ring

import "github.com/itzmeanjan/ml-kem-sub000/internal/field"

// EncodeL packs the canonical reduction of p's 256 coefficients into
// 32*l bytes, l low bits per coefficient, least-significant bit of byte 0
// first (FIPS 203 algorithm 4). Each coefficient is reduced modulo q
// before packing: for l=12 this means a coefficient that was decoded from
// a non-canonical value in [q, 4096) will not round-trip byte-for-byte,
// which is exactly the property K-PKE's public-key modulus check relies
// on (spec.md §4.7 step 2).
func EncodeL(l int, p *Poly) []byte {
	out := make([]byte, 32*l)
	mask := uint32(1<<uint(l)) - 1

	var acc uint32
	accBits := 0
	pos := 0
	for i := 0; i < N; i++ {
		v := field.FromUnreduced(uint32(p[i].Raw())).Raw()
		acc |= (uint32(v) & mask) << uint(accBits)
		accBits += l
		for accBits >= 8 {
			out[pos] = byte(acc)
			acc >>= 8
			accBits -= 8
			pos++
		}
	}
	return out
}

// DecodeL is the exact inverse of the packing performed by EncodeL: it
// unpacks 32*l bytes into 256 coefficients of l bits each, without
// reducing them modulo q. For l=12 the result may therefore hold
// coefficients in [0, 4096) rather than the canonical [0, q) range; the
// caller (K-PKE) is responsible for re-encoding and comparing when it
// needs to detect that case.
func DecodeL(l int, buf []byte) *Poly {
	var p Poly
	mask := uint32(1<<uint(l)) - 1

	var acc uint32
	accBits := 0
	pos := 0
	for i := 0; i < N; i++ {
		for accBits < l {
			acc |= uint32(buf[pos]) << uint(accBits)
			pos++
			accBits += 8
		}
		p[i] = field.FromCanonical(uint16(acc & mask))
		acc >>= uint(l)
		accBits -= l
	}
	return &p
}
