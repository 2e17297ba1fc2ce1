package ct_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/itzmeanjan/ml-kem-sub000/internal/ct"
)

func TestEqual(t *testing.T) {
	require.True(t, ct.Equal([]byte("abc"), []byte("abc")))
	require.False(t, ct.Equal([]byte("abc"), []byte("abd")))
	require.False(t, ct.Equal([]byte("abc"), []byte("ab")))
}

func TestSelect(t *testing.T) {
	x := []byte{1, 2, 3}
	y := []byte{4, 5, 6}

	require.Equal(t, x, ct.Select(1, x, y))
	require.Equal(t, y, ct.Select(0, x, y))
}

func TestSelectInto(t *testing.T) {
	x := []byte{1, 2, 3}
	y := []byte{4, 5, 6}
	dst := make([]byte, 3)

	ct.SelectInto(dst, 1, x, y)
	require.Equal(t, x, dst)

	ct.SelectInto(dst, 0, x, y)
	require.Equal(t, y, dst)
}
