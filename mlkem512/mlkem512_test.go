package mlkem512_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/itzmeanjan/ml-kem-sub000/mlkem512"
)

func TestGenerateEncapsulateDecapsulateRoundTrip(t *testing.T) {
	pk, sk, err := mlkem512.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	require.Len(t, pk.Bytes(), mlkem512.PublicKeySize)
	require.Len(t, sk.Bytes(), mlkem512.PrivateKeySize)

	ct, ss1, err := mlkem512.EncapsulateTo(rand.Reader, pk)
	require.NoError(t, err)
	require.Len(t, ct, mlkem512.CiphertextSize)

	ss2, err := mlkem512.DecapsulateTo(sk, ct)
	require.NoError(t, err)
	require.True(t, bytes.Equal(ss1, ss2))
}

func TestDecapsulateWithWrongKeyDiffers(t *testing.T) {
	pkA, _, err := mlkem512.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	_, skB, err := mlkem512.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)

	ct, ss1, err := mlkem512.EncapsulateTo(rand.Reader, pkA)
	require.NoError(t, err)

	ss2, err := mlkem512.DecapsulateTo(skB, ct)
	require.NoError(t, err)
	require.False(t, bytes.Equal(ss1, ss2))
}
