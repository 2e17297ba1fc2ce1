// Package xof wraps the hash and extendable-output functions ML-KEM is
// built from (spec.md §6, the core's external collaborators): SHA3-256,
// SHA3-512, SHAKE-128 and SHAKE-256, all from golang.org/x/crypto/sha3,
// the same library the pack's other cryptographic code reaches for
// rather than a hand-rolled Keccak permutation.
package xof

import "golang.org/x/crypto/sha3"

// Rate128 is the SHAKE-128 block size in bytes: how much the rejection
// sampler consumes per squeeze when generating matrix entries.
const Rate128 = 168

// H is the hash function H(s) = SHA3-256(s), 32 bytes of output.
func H(s ...[]byte) [32]byte {
	h := sha3.New256()
	for _, part := range s {
		h.Write(part)
	}
	var out [32]byte
	h.Sum(out[:0])
	return out
}

// G is the hash function G(c) = SHA3-512(c), split into two 32-byte
// halves (a, b).
func G(c ...[]byte) (a, b [32]byte) {
	h := sha3.New512()
	for _, part := range c {
		h.Write(part)
	}
	var out [64]byte
	h.Sum(out[:0])
	copy(a[:], out[:32])
	copy(b[:], out[32:])
	return a, b
}

// J is the implicit-rejection pseudorandom function J(s, c) =
// SHAKE-256(s || c, outLen bytes). Decapsulate computes it on every call,
// valid ciphertext or not, and keeps its output only when the
// re-encryption check fails (spec.md §4.8).
func J(s, c []byte, outLen int) []byte {
	h := sha3.NewShake256()
	h.Write(s)
	h.Write(c)
	out := make([]byte, outLen)
	h.Read(out)
	return out
}

// PRF is the pseudorandom function PRF_eta(s, b) = SHAKE-256(s || b,
// 64*eta bytes), used to derive centered-binomial-distribution noise.
func PRF(eta int, s []byte, b byte) []byte {
	h := sha3.NewShake256()
	h.Write(s)
	h.Write([]byte{b})
	out := make([]byte, 64*eta)
	h.Read(out)
	return out
}

// Reader128 is an incremental SHAKE-128 squeeze source, absorbing once and
// then yielding arbitrarily many output blocks; internal/sample drives it
// one Rate128-byte block at a time while rejection sampling matrix
// entries.
type Reader128 struct {
	shake sha3.ShakeHash
}

// NewReader128 absorbs seed and returns a reader ready to squeeze output.
func NewReader128(seed ...[]byte) *Reader128 {
	h := sha3.NewShake128()
	for _, part := range seed {
		h.Write(part)
	}
	return &Reader128{shake: h}
}

// Squeeze fills buf with the next len(buf) bytes of output.
func (r *Reader128) Squeeze(buf []byte) {
	r.shake.Read(buf)
}
