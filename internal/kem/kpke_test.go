package kem_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/itzmeanjan/ml-kem-sub000/internal/kem"
)

var allParams = []kem.Params{kem.Params512, kem.Params768, kem.Params1024}

func randBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

func TestKPKERoundTrip(t *testing.T) {
	for _, p := range allParams {
		d := randBytes(t, 32)
		ekPKE, dkPKE := p.KeyGenPKE(d)

		m := randBytes(t, 32)
		coins := randBytes(t, 32)

		ct := p.EncryptPKE(ekPKE, m, coins)
		got := p.DecryptPKE(dkPKE, ct)

		require.True(t, bytes.Equal(m, got), "%s round trip mismatch", p.Name)
	}
}

func TestKPKEDifferentMessagesDecryptDifferently(t *testing.T) {
	p := kem.Params768
	d := randBytes(t, 32)
	ekPKE, dkPKE := p.KeyGenPKE(d)

	m1 := randBytes(t, 32)
	m2 := randBytes(t, 32)
	coins := randBytes(t, 32)

	ct1 := p.EncryptPKE(ekPKE, m1, coins)
	ct2 := p.EncryptPKE(ekPKE, m2, coins)
	require.False(t, bytes.Equal(ct1, ct2))

	got1 := p.DecryptPKE(dkPKE, ct1)
	got2 := p.DecryptPKE(dkPKE, ct2)
	require.True(t, bytes.Equal(m1, got1))
	require.True(t, bytes.Equal(m2, got2))
}
