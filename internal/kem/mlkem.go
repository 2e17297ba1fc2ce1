package kem

import (
	"errors"

	"github.com/itzmeanjan/ml-kem-sub000/internal/ct"
	"github.com/itzmeanjan/ml-kem-sub000/internal/ring"
	"github.com/itzmeanjan/ml-kem-sub000/internal/xof"
)

// ErrInvalidPublicKey is returned by Encapsulate when the encryption key
// fails the FIPS 203 §7.2 modulus check: re-encoding its decoded
// coefficients does not reproduce the bytes the key was built from, which
// means at least one coefficient was not in canonical [0, q) form.
var ErrInvalidPublicKey = errors.New("mlkem: invalid encapsulation key")

const seedBytes = 32

// KeyGen implements ML-KEM.KeyGen (spec.md §4.8, FIPS 203 algorithm 16),
// the Fujisaki-Okamoto wrapper around KeyGenPKE: it appends the implicit
// rejection seed z and a hash of the encryption key to the decryption
// key, so Decapsulate never needs to touch K-PKE's internals again.
func (p Params) KeyGen(d, z []byte) (ek, dk []byte) {
	ekPKE, dkPKE := p.KeyGenPKE(d)
	h := xof.H(ekPKE)

	dk = make([]byte, 0, len(dkPKE)+len(ekPKE)+len(h)+len(z))
	dk = append(dk, dkPKE...)
	dk = append(dk, ekPKE...)
	dk = append(dk, h[:]...)
	dk = append(dk, z...)
	return ekPKE, dk
}

// Encapsulate implements ML-KEM.Encaps (spec.md §4.8, FIPS 203 algorithm
// 17), producing a ciphertext and shared secret for ek from the 32-byte
// message m. It returns ErrInvalidPublicKey, without producing a
// ciphertext, if ek fails the modulus check.
func (p Params) Encapsulate(ek, m []byte) (ciphertext []byte, sharedSecret []byte, err error) {
	if !p.validPublicKey(ek) {
		return nil, nil, ErrInvalidPublicKey
	}

	h := xof.H(ek)
	k, r := xof.G(m, h[:])

	ciphertext = p.EncryptPKE(ek, m, r[:])
	return ciphertext, k[:], nil
}

// Decapsulate implements ML-KEM.Decaps (spec.md §4.8, FIPS 203 algorithm
// 18). It never returns an error: an invalid ciphertext is answered with
// a pseudorandom value derived from the secret implicit-rejection seed
// instead of the real shared secret, and the two paths are selected
// between with a constant-time comparison and copy rather than a branch.
func (p Params) Decapsulate(dk, ciphertext []byte) []byte {
	pkePKEBytes := p.K * encodedPolyBytes
	pkBytes, _, _ := p.Sizes()

	dkPKE := dk[:pkePKEBytes]
	ekPKE := dk[pkePKEBytes : pkePKEBytes+pkBytes]
	h := dk[pkePKEBytes+pkBytes : pkePKEBytes+pkBytes+seedBytes]
	z := dk[pkePKEBytes+pkBytes+seedBytes : pkePKEBytes+pkBytes+2*seedBytes]

	mPrime := p.DecryptPKE(dkPKE, ciphertext)
	kPrime, rPrime := xof.G(mPrime, h)

	ctPrime := p.EncryptPKE(ekPKE, mPrime, rPrime[:])
	kBar := xof.J(z, ciphertext, len(kPrime))

	match := ct.EqualInt(ctPrime, ciphertext)
	return ct.Select(match, kPrime[:], kBar)
}

// validPublicKey performs the FIPS 203 §7.2 item (2) modulus check: it
// decodes ek's encoded t̂ vector and re-encodes it, rejecting ek if the
// bytes do not match (spec.md §4.7 step 2).
func (p Params) validPublicKey(ek []byte) bool {
	pkBytes, _, _ := p.Sizes()
	if len(ek) != pkBytes {
		return false
	}
	tHat := ring.DecodeVectorL(p.K, 12, ek[:p.K*encodedPolyBytes])
	reencoded := tHat.EncodeL(12)
	return ct.Equal(reencoded, ek[:p.K*encodedPolyBytes])
}
