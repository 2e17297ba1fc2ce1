// Package sample implements ML-KEM's three pseudorandom generation
// routines (spec.md §4.5, component C5): rejection sampling of uniform
// NTT-domain polynomials, centered binomial noise, and the public matrix
// A derived from a 32-byte seed.
package sample

import (
	"github.com/itzmeanjan/ml-kem-sub000/internal/field"
	"github.com/itzmeanjan/ml-kem-sub000/internal/ring"
	"github.com/itzmeanjan/ml-kem-sub000/internal/xof"
)

// NTT rejection-samples a uniform polynomial in NTT domain from a SHAKE-128
// stream seeded by seed. Every SHAKE-128 block yields at most 112 candidate
// 12-bit values (3 bytes -> 2 candidates each); values >= q are discarded
// and more blocks are pulled until 256 coefficients are accepted. The loop
// count is a function of the stream's contents only, never of secret data,
// so it carries no constant-time obligation.
func NTT(seed ...[]byte) *ring.Poly {
	r := xof.NewReader128(seed...)

	var p ring.Poly
	i := 0
	block := make([]byte, xof.Rate128)
	for i < ring.N {
		r.Squeeze(block)
		for off := 0; off+3 <= len(block) && i < ring.N; off += 3 {
			d1 := uint16(block[off]) | (uint16(block[off+1]&0x0f) << 8)
			d2 := (uint16(block[off+1]) >> 4) | (uint16(block[off+2]) << 4)

			if d1 < uint16(field.Q) {
				p[i] = field.FromCanonical(d1)
				i++
			}
			if d2 < uint16(field.Q) && i < ring.N {
				p[i] = field.FromCanonical(d2)
				i++
			}
		}
	}
	return &p
}

// bit extracts the j-th least-significant bit of buf, numbering bits
// across the whole byte slice starting from buf[0]'s LSB.
func bit(buf []byte, j int) uint32 {
	return uint32(buf[j/8]>>uint(j%8)) & 1
}

// CBD draws a polynomial from the centered binomial distribution B_eta,
// consuming exactly 64*eta bytes (FIPS 203 algorithm 8). eta is 2 or 3.
func CBD(eta int, buf []byte) *ring.Poly {
	var p ring.Poly
	for i := 0; i < ring.N; i++ {
		var a, b uint32
		for j := 0; j < eta; j++ {
			a += bit(buf, 2*i*eta+j)
			b += bit(buf, 2*i*eta+eta+j)
		}
		p[i] = field.Sub(field.FromCanonical(uint16(a)), field.FromCanonical(uint16(b)))
	}
	return &p
}

// Noise draws a centered-binomial-distribution polynomial directly from a
// PRF seed and nonce, returning the incremented nonce for the caller's
// next draw.
func Noise(eta int, sigma []byte, nonce byte) (*ring.Poly, byte) {
	buf := xof.PRF(eta, sigma, nonce)
	return CBD(eta, buf), nonce + 1
}

// NoiseVector draws k independent centered-binomial-distribution
// polynomials, threading the nonce counter across all of them.
func NoiseVector(k, eta int, sigma []byte, nonce byte) (ring.Vector, byte) {
	v := ring.NewVector(k)
	for i := 0; i < k; i++ {
		p, next := Noise(eta, sigma, nonce)
		v[i] = *p
		nonce = next
	}
	return v, nonce
}

// Matrix derives the public k-by-k matrix A from a 32-byte seed rho, one
// NTT-domain polynomial per (i, j) cell seeded by rho||j||i. When
// transpose is true, the seed bytes are swapped to rho||i||j, producing
// Aᵀ instead of A without materializing a second matrix and transposing
// it (spec.md §4.6).
func Matrix(k int, rho []byte, transpose bool) ring.Matrix {
	m := ring.NewMatrix(k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			var coords [2]byte
			if transpose {
				coords[0], coords[1] = byte(i), byte(j)
			} else {
				coords[0], coords[1] = byte(j), byte(i)
			}
			m[i][j] = *NTT(rho, coords[:])
		}
	}
	return m
}
