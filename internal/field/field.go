// Package field implements arithmetic in the prime field Z_q used by
// ML-KEM, with q = 3329 = 2^8 * 13 + 1.
package field

// Q is the ML-KEM field modulus.
const Q uint32 = 3329

// qBitWidth is ceil(log2(Q)) = 12.
const qBitWidth = 12

// R is the precomputed Barrett reduction constant floor(2^(2*qBitWidth)/Q).
const R uint32 = (1 << (2 * qBitWidth)) / Q

// Elem is an element of Z_q, always held in canonical form: 0 <= v < Q.
type Elem struct {
	v uint32
}

// Zero returns the additive identity.
func Zero() Elem { return Elem{0} }

// One returns the multiplicative identity.
func One() Elem { return Elem{1} }

// FromCanonical constructs an Elem from a value the caller guarantees is
// already in [0, Q). It performs no reduction.
func FromCanonical(v uint16) Elem {
	return Elem{uint32(v)}
}

// FromUnreduced constructs an Elem from an arbitrary non-negative value,
// reducing it modulo Q via Barrett reduction.
func FromUnreduced(v uint32) Elem {
	return Elem{barrettReduce(v)}
}

// Raw returns the canonical value, always in [0, Q).
func (a Elem) Raw() uint16 {
	return uint16(a.v)
}

// reduceOnce maps v in [0, 2Q) to [0, Q) with one conditional subtraction,
// expressed branchlessly via an arithmetic shift of the signed difference.
func reduceOnce(v uint32) uint32 {
	t0 := v - Q
	t1 := uint32(int32(t0) >> 31) // all-ones if t0 underflowed (v < Q), else 0
	return t0 + (Q & t1)
}

// barrettReduce reduces v, which must satisfy v < Q*Q, modulo Q without
// division or data-dependent branches.
func barrettReduce(v uint32) uint32 {
	t0 := uint64(v) * uint64(R)
	t1 := uint32(t0 >> (2 * qBitWidth))
	t2 := t1 * Q
	return reduceOnce(v - t2)
}

// Add returns a+b mod Q.
func Add(a, b Elem) Elem {
	return Elem{reduceOnce(a.v + b.v)}
}

// Neg returns -a mod Q: Q-a when a != 0, else 0. reduceOnce handles both
// cases uniformly since Q-0 = Q reduces to 0.
func Neg(a Elem) Elem {
	return Elem{reduceOnce(Q - a.v)}
}

// Sub returns a-b mod Q.
func Sub(a, b Elem) Elem {
	return Add(a, Neg(b))
}

// Mul returns a*b mod Q via Barrett reduction.
func Mul(a, b Elem) Elem {
	return Elem{barrettReduce(a.v * b.v)}
}

// Pow returns a^n mod Q using a constant-time square-and-multiply ladder:
// both the "multiply" and "skip" branches are computed and selected by
// array index on the exponent bit, never by a conditional branch.
func Pow(a Elem, n uint32) Elem {
	base := a
	branches := [2]Elem{One(), base}
	res := branches[n&1]

	for n >>= 1; n != 0; n >>= 1 {
		base = Mul(base, base)
		branches := [2]Elem{One(), base}
		res = Mul(res, branches[n&1])
	}
	return res
}

// Inv returns the multiplicative inverse of a via Fermat's little theorem,
// a^(Q-2). Returns 0 when a is 0, matching the field convention used
// throughout K-PKE (inversion is never applied to a value known to be 0
// at runtime; the exponent Q-2 is a compile-time constant so this never
// branches on secret data).
func Inv(a Elem) Elem {
	return Pow(a, Q-2)
}

// Equal reports whether a and b hold the same canonical value.
func Equal(a, b Elem) bool {
	return a.v == b.v
}
