// Package ct provides the constant-time comparison and selection
// primitives spec.md §6 requires of every branch on secret data: the
// public-key modulus check and the FO transform's implicit-rejection
// path. It is a thin wrapper over crypto/subtle (see DESIGN.md for why
// the stdlib, rather than a pack dependency, covers this concern).
package ct

import "crypto/subtle"

// Equal reports whether a and b are equal, in time independent of where
// they first differ. Unequal lengths are reported as unequal without
// otherwise affecting timing.
func Equal(a, b []byte) bool {
	return EqualInt(a, b) == 1
}

// EqualInt is Equal's underlying 1-or-0 result, for callers (such as the
// FO transform's implicit-rejection path) that need to feed the outcome
// straight into Select without an intervening branch.
func EqualInt(a, b []byte) int {
	return subtle.ConstantTimeCompare(a, b)
}

// Select returns a copy of x if v == 1 and a copy of y if v == 0, without
// branching on v. x and y must have equal length.
func Select(v int, x, y []byte) []byte {
	out := make([]byte, len(x))
	subtle.ConstantTimeCopy(1-v, out, y)
	subtle.ConstantTimeCopy(v, out, x)
	return out
}

// SelectInto writes x into dst if v == 1 and y into dst if v == 0, without
// branching on v. dst, x and y must all have equal length.
func SelectInto(dst []byte, v int, x, y []byte) {
	subtle.ConstantTimeCopy(1-v, dst, y)
	subtle.ConstantTimeCopy(v, dst, x)
}
