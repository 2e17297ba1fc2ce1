package mlkem1024_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/itzmeanjan/ml-kem-sub000/mlkem1024"
	"github.com/itzmeanjan/ml-kem-sub000/mlkem768"
)

func TestGenerateEncapsulateDecapsulateRoundTrip(t *testing.T) {
	pk, sk, err := mlkem1024.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	require.Len(t, pk.Bytes(), mlkem1024.PublicKeySize)
	require.Len(t, sk.Bytes(), mlkem1024.PrivateKeySize)

	ct, ss1, err := mlkem1024.EncapsulateTo(rand.Reader, pk)
	require.NoError(t, err)
	require.Len(t, ct, mlkem1024.CiphertextSize)

	ss2, err := mlkem1024.DecapsulateTo(sk, ct)
	require.NoError(t, err)
	require.True(t, bytes.Equal(ss1, ss2))
}

func TestSizesAreDistinctFromSmallerParameterSets(t *testing.T) {
	require.Greater(t, mlkem1024.PublicKeySize, mlkem768.PublicKeySize)
	require.Greater(t, mlkem1024.CiphertextSize, mlkem768.CiphertextSize)
}
