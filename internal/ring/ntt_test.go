package ring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/itzmeanjan/ml-kem-sub000/internal/field"
	"github.com/itzmeanjan/ml-kem-sub000/internal/ring"
)

func TestNTTRoundTrip(t *testing.T) {
	p := samplePoly(11)
	orig := *p

	p.NTT()
	p.InvNTT()

	for i := range p {
		require.True(t, field.Equal(p[i], orig[i]), "coeff %d", i)
	}
}

func TestMulNTTMatchesSchoolbookConvolution(t *testing.T) {
	a := samplePoly(3)
	b := samplePoly(5)

	want := schoolbookMulModXnPlus1(a, b)

	aNTT, bNTT := *a, *b
	aNTT.NTT()
	bNTT.NTT()

	var prodNTT ring.Poly
	prodNTT.MulNTT(&aNTT, &bNTT)
	prodNTT.InvNTT()

	for i := range want {
		require.True(t, field.Equal(prodNTT[i], want[i]), "coeff %d", i)
	}
}

// schoolbookMulModXnPlus1 computes a*b mod (X^256+1) directly, as the
// reference against which the NTT-based multiplication is checked.
func schoolbookMulModXnPlus1(a, b *ring.Poly) *ring.Poly {
	var acc [2 * ring.N]field.Elem
	for i := range acc {
		acc[i] = field.Zero()
	}
	for i := 0; i < ring.N; i++ {
		for j := 0; j < ring.N; j++ {
			acc[i+j] = field.Add(acc[i+j], field.Mul(a[i], b[j]))
		}
	}
	var out ring.Poly
	for i := 0; i < ring.N; i++ {
		out[i] = field.Sub(acc[i], acc[i+ring.N])
	}
	return &out
}

func TestCompressDecompressErrorBound(t *testing.T) {
	for d := 1; d <= 11; d++ {
		for x := uint16(0); x < uint16(field.Q); x++ {
			e := field.FromCanonical(x)
			c := ring.CompressD(d, e)
			back := ring.DecompressD(d, c)

			diff := int(back.Raw()) - int(x)
			if diff < 0 {
				diff = -diff
			}
			wrapped := int(field.Q) - diff
			if wrapped < diff {
				diff = wrapped
			}
			bound := (int(field.Q) >> uint(d+1)) + 1
			require.LessOrEqual(t, diff, bound, "d=%d x=%d", d, x)
		}
	}
}
