package codec

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomShares(t *testing.T, count, size int) [][]byte {
	t.Helper()
	shares := make([][]byte, count)
	for i := range shares {
		shares[i] = make([]byte, size)
		_, err := rand.Read(shares[i])
		require.NoError(t, err)
	}
	return shares
}

func TestShareCodecRoundTrip(t *testing.T) {
	c := NewShareCodec()
	data := randomShares(t, 4, 64)

	parity, err := c.Encode(data)
	require.NoError(t, err)
	require.Len(t, parity, 4)

	// drop half of the full share set, reconstruct the rest
	full := make([][]byte, 0, 8)
	full = append(full, data...)
	full = append(full, parity...)
	full[0], full[2], full[5], full[7] = nil, nil, nil, nil

	restored, err := c.Decode(full)
	require.NoError(t, err)
	require.Len(t, restored, 8)
	for i, share := range data {
		assert.Equal(t, share, restored[i])
	}
}

func TestShareCodecEncodeUnevenShares(t *testing.T) {
	c := NewShareCodec()
	shares := randomShares(t, 4, 64)
	shares[2] = shares[2][:32]

	_, err := c.Encode(shares)
	require.Error(t, err)
}

func TestShareCodecDecodeOddCount(t *testing.T) {
	c := NewShareCodec()
	_, err := c.Decode(randomShares(t, 3, 8))
	require.ErrorIs(t, err, ErrOddShareCount)
}

func TestShareCodecEmpty(t *testing.T) {
	c := NewShareCodec()
	_, err := c.Encode(nil)
	require.ErrorIs(t, err, ErrEmptyInput)
	_, err = c.Decode(nil)
	require.ErrorIs(t, err, ErrEmptyInput)
}
