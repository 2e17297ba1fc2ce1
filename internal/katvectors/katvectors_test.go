package katvectors_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/itzmeanjan/ml-kem-sub000/internal/katvectors"
)

const sample = `d = 0011
z = 2233
pk = aabb
sk = ccdd

d = 4455
z = 6677
pk = 8899
sk = aabb
`

func TestParseGroupsRecordsOnBlankLines(t *testing.T) {
	records, err := katvectors.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.Equal(t, []string{"d", "z", "pk", "sk"}, records[0].Names())
	require.Equal(t, []byte{0x00, 0x11}, records[0].Field("d"))
	require.Equal(t, []byte{0xcc, 0xdd}, records[0].Field("sk"))

	require.Equal(t, []byte{0x44, 0x55}, records[1].Field("d"))
}

func TestParseRejectsMalformedLine(t *testing.T) {
	_, err := katvectors.Parse(strings.NewReader("not a valid line"))
	require.Error(t, err)
}

func TestParseRejectsInvalidHex(t *testing.T) {
	_, err := katvectors.Parse(strings.NewReader("d = zz"))
	require.Error(t, err)
}

func TestParseUnknownFieldReturnsNil(t *testing.T) {
	records, err := katvectors.Parse(strings.NewReader("d = 00"))
	require.NoError(t, err)
	require.Nil(t, records[0].Field("missing"))
}
