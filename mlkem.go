// Package mlkem is the parameter-set-agnostic entry point to this
// module's FIPS 203 implementation. Most callers who know their
// parameter set at compile time should import mlkem512, mlkem768 or
// mlkem1024 directly; this package exists for callers who need to select
// a parameter set at runtime (spec.md's Design Notes explicitly call out
// runtime dispatch as acceptable at the API surface), mirroring the role
// the pack's vendored circl kem.Scheme interface plays for its own KEMs.
package mlkem

import (
	"crypto/rand"
	"errors"
	"io"

	"github.com/itzmeanjan/ml-kem-sub000/internal/kem"
)

// ParameterSet identifies one of the three FIPS 203 parameter sets.
type ParameterSet int

const (
	MLKEM512 ParameterSet = iota
	MLKEM768
	MLKEM1024
)

// ErrUnknownParameterSet is returned by operations given a ParameterSet
// value outside {MLKEM512, MLKEM768, MLKEM1024}.
var ErrUnknownParameterSet = errors.New("mlkem: unknown parameter set")

// ErrInvalidPublicKey is returned by Encapsulate when the encapsulation
// key fails the FIPS 203 modulus check.
var ErrInvalidPublicKey = kem.ErrInvalidPublicKey

func (s ParameterSet) String() string {
	switch s {
	case MLKEM512:
		return "ML-KEM-512"
	case MLKEM768:
		return "ML-KEM-768"
	case MLKEM1024:
		return "ML-KEM-1024"
	default:
		return "unknown"
	}
}

func (s ParameterSet) params() (kem.Params, error) {
	switch s {
	case MLKEM512:
		return kem.Params512, nil
	case MLKEM768:
		return kem.Params768, nil
	case MLKEM1024:
		return kem.Params1024, nil
	default:
		return kem.Params{}, ErrUnknownParameterSet
	}
}

// Sizes reports the public key, private key and ciphertext byte lengths
// for s.
func (s ParameterSet) Sizes() (pkBytes, skBytes, ctBytes int, err error) {
	p, err := s.params()
	if err != nil {
		return 0, 0, 0, err
	}
	pkBytes, skBytes, ctBytes = p.Sizes()
	return
}

// Scheme binds one ParameterSet to ML-KEM's three operations, all
// working directly on wire-format byte slices so that a single value can
// stand in for whichever of mlkem512, mlkem768 or mlkem1024 was
// requested at runtime (for example, by a KAT harness or a CLI flag).
type Scheme struct {
	set    ParameterSet
	params kem.Params
}

// NewScheme returns a Scheme for set, or ErrUnknownParameterSet.
func NewScheme(set ParameterSet) (Scheme, error) {
	p, err := set.params()
	if err != nil {
		return Scheme{}, err
	}
	return Scheme{set: set, params: p}, nil
}

// ParameterSet reports which parameter set s was built with.
func (s Scheme) ParameterSet() ParameterSet { return s.set }

// GenerateKeyPair draws fresh randomness from rnd (typically
// crypto/rand.Reader) and runs ML-KEM.KeyGen.
func (s Scheme) GenerateKeyPair(rnd io.Reader) (ek, dk []byte, err error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	seed := make([]byte, 64)
	if _, err := io.ReadFull(rnd, seed); err != nil {
		return nil, nil, err
	}
	return s.GenerateKeyPairFromSeed(seed)
}

// GenerateKeyPairFromSeed runs ML-KEM.KeyGen on a caller-supplied 64-byte
// seed (d || z).
func (s Scheme) GenerateKeyPairFromSeed(seed []byte) (ek, dk []byte, err error) {
	if len(seed) != 64 {
		return nil, nil, errors.New("mlkem: seed must be 64 bytes")
	}
	ek, dk = s.params.KeyGen(seed[:32], seed[32:])
	return ek, dk, nil
}

// Encapsulate draws a fresh 32-byte message from rnd and runs
// ML-KEM.Encaps against ek.
func (s Scheme) Encapsulate(rnd io.Reader, ek []byte) (ct, ss []byte, err error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	m := make([]byte, 32)
	if _, err := io.ReadFull(rnd, m); err != nil {
		return nil, nil, err
	}
	return s.params.Encapsulate(ek, m)
}

// Decapsulate runs ML-KEM.Decaps. It never fails: an invalid ciphertext
// yields an indistinguishable pseudorandom shared secret rather than an
// error (spec.md §4.8).
func (s Scheme) Decapsulate(dk, ct []byte) []byte {
	return s.params.Decapsulate(dk, ct)
}
