// Package mlkem512 implements ML-KEM-512, the FIPS 203 parameter set
// with k=2, offering NIST security category 1. It is a thin, type-safe
// wrapper around internal/kem's generic implementation, mirroring the
// per-parameter-set package layout the pack's vendored circl Kyber code
// uses (see DESIGN.md).
package mlkem512

import (
	"crypto/rand"
	"errors"
	"io"

	"github.com/itzmeanjan/ml-kem-sub000/internal/kem"
)

var params = kem.Params512

var (
	PublicKeySize, PrivateKeySize, CiphertextSize = params.Sizes()
)

// SharedKeySize is the length of the secret ML-KEM derives on both sides.
const SharedKeySize = 32

// SeedSize is the length of the combined keygen seed (d || z) accepted by
// GenerateKeyPairFromSeed.
const SeedSize = 64

// ErrInvalidPublicKey is returned when an encapsulation key fails the
// FIPS 203 modulus check.
var ErrInvalidPublicKey = kem.ErrInvalidPublicKey

// ErrSizeMismatch is returned by the Unpack functions when given a byte
// slice of the wrong length for this parameter set.
var ErrSizeMismatch = errors.New("mlkem512: wrong byte length for this parameter set")

// PublicKey is an ML-KEM-512 encapsulation key.
type PublicKey struct {
	b []byte
}

// PrivateKey is an ML-KEM-512 decapsulation key.
type PrivateKey struct {
	b []byte
}

// Bytes returns pk's wire encoding. The returned slice aliases pk's
// internal storage and must not be modified.
func (pk *PublicKey) Bytes() []byte { return pk.b }

// Bytes returns sk's wire encoding. The returned slice aliases sk's
// internal storage and must not be modified.
func (sk *PrivateKey) Bytes() []byte { return sk.b }

// Equal reports whether pk and other encode the same key.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	if other == nil {
		return false
	}
	return string(pk.b) == string(other.b)
}

// Equal reports whether sk and other encode the same key.
func (sk *PrivateKey) Equal(other *PrivateKey) bool {
	if other == nil {
		return false
	}
	return string(sk.b) == string(other.b)
}

// UnpackPublicKey parses a wire-encoded public key.
func UnpackPublicKey(buf []byte) (*PublicKey, error) {
	if len(buf) != PublicKeySize {
		return nil, ErrSizeMismatch
	}
	b := make([]byte, len(buf))
	copy(b, buf)
	return &PublicKey{b: b}, nil
}

// UnpackPrivateKey parses a wire-encoded private key.
func UnpackPrivateKey(buf []byte) (*PrivateKey, error) {
	if len(buf) != PrivateKeySize {
		return nil, ErrSizeMismatch
	}
	b := make([]byte, len(buf))
	copy(b, buf)
	return &PrivateKey{b: b}, nil
}

// GenerateKeyPair draws fresh randomness from rnd (typically crypto/rand)
// and runs ML-KEM.KeyGen.
func GenerateKeyPair(rnd io.Reader) (*PublicKey, *PrivateKey, error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	seed := make([]byte, SeedSize)
	if _, err := io.ReadFull(rnd, seed); err != nil {
		return nil, nil, err
	}
	return GenerateKeyPairFromSeed(seed)
}

// GenerateKeyPairFromSeed runs ML-KEM.KeyGen on a caller-supplied 64-byte
// seed (d || z), for deterministic key generation such as ACVP KAT replay.
func GenerateKeyPairFromSeed(seed []byte) (*PublicKey, *PrivateKey, error) {
	if len(seed) != SeedSize {
		return nil, nil, ErrSizeMismatch
	}
	ek, dk := params.KeyGen(seed[:32], seed[32:])
	return &PublicKey{b: ek}, &PrivateKey{b: dk}, nil
}

// EncapsulateTo draws a fresh 32-byte message from rnd and returns the
// resulting ciphertext and shared secret for pk.
func EncapsulateTo(rnd io.Reader, pk *PublicKey) (ciphertext, sharedSecret []byte, err error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	m := make([]byte, 32)
	if _, err := io.ReadFull(rnd, m); err != nil {
		return nil, nil, err
	}
	return EncapsulateToWithSeed(pk, m)
}

// EncapsulateToWithSeed runs ML-KEM.Encaps with a caller-supplied 32-byte
// message, for deterministic encapsulation such as ACVP KAT replay.
func EncapsulateToWithSeed(pk *PublicKey, m []byte) (ciphertext, sharedSecret []byte, err error) {
	if len(m) != 32 {
		return nil, nil, ErrSizeMismatch
	}
	return params.Encapsulate(pk.b, m)
}

// DecapsulateTo recovers the shared secret ct was encapsulated to under
// sk. It returns ErrSizeMismatch only when ciphertext has the wrong
// length; an invalid ciphertext of the right length is answered with a
// pseudorandom, indistinguishable shared secret (spec.md §4.8).
func DecapsulateTo(sk *PrivateKey, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) != CiphertextSize {
		return nil, ErrSizeMismatch
	}
	return params.Decapsulate(sk.b, ciphertext), nil
}
