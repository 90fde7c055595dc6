package eds

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celestiaorg/fieldsquare/field"
)

func TestDeriveChallenge(t *testing.T) {
	f := field.GF128()
	root := bytes.Repeat([]byte{0xab}, 32)

	dr := DeriveChallenge(f, root, 8)
	require.Len(t, dr, 8)

	// deterministic for the same root
	again := DeriveChallenge(f, root, 8)
	for i := range dr {
		assert.True(t, dr[i].Equal(again[i]))
	}

	// distinct per index
	for i := 0; i < len(dr); i++ {
		for j := i + 1; j < len(dr); j++ {
			assert.False(t, dr[i].Equal(dr[j]), "dr[%d] == dr[%d]", i, j)
		}
	}

	// a different root yields a different vector everywhere
	other := DeriveChallenge(f, bytes.Repeat([]byte{0xac}, 32), 8)
	for i := range dr {
		assert.False(t, dr[i].Equal(other[i]))
	}
}

func TestDeriveChallengeZeroWidth(t *testing.T) {
	dr := DeriveChallenge(field.GF128(), bytes.Repeat([]byte{1}, 32), 0)
	require.Empty(t, dr)
}
