package field_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/itzmeanjan/ml-kem-sub000/internal/field"
)

func allElems() []field.Elem {
	es := make([]field.Elem, field.Q)
	for i := range es {
		es[i] = field.FromCanonical(uint16(i))
	}
	return es
}

func TestCanonicalRange(t *testing.T) {
	for _, a := range allElems() {
		require.Less(t, a.Raw(), uint16(field.Q))
	}
}

func TestAddSubRoundTrip(t *testing.T) {
	for _, a := range allElems() {
		for _, b := range []field.Elem{field.FromCanonical(0), field.FromCanonical(1), field.FromCanonical(3328), a} {
			sum := field.Add(a, b)
			require.Less(t, sum.Raw(), uint16(field.Q))
			back := field.Sub(sum, b)
			require.True(t, field.Equal(back, a))
		}
	}
}

func TestNegZero(t *testing.T) {
	require.True(t, field.Equal(field.Neg(field.Zero()), field.Zero()))
	n := field.Neg(field.FromCanonical(1))
	require.Equal(t, uint16(field.Q-1), n.Raw())
}

func TestMulIdentity(t *testing.T) {
	one := field.One()
	for _, a := range allElems() {
		require.True(t, field.Equal(field.Mul(a, one), a))
	}
}

func TestInv(t *testing.T) {
	require.True(t, field.Equal(field.Inv(field.Zero()), field.Zero()))
	for i := uint16(1); i < uint16(field.Q); i++ {
		a := field.FromCanonical(i)
		inv := field.Inv(a)
		require.True(t, field.Equal(field.Mul(a, inv), field.One()), "a=%d", i)
	}
}

func TestFromUnreducedMatchesModulo(t *testing.T) {
	cases := []uint32{0, 1, field.Q, field.Q + 1, field.Q * 2, field.Q*field.Q - 1}
	for _, v := range cases {
		got := field.FromUnreduced(v)
		require.Equal(t, uint16(v%field.Q), got.Raw())
	}
}
