package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celestiaorg/fieldsquare/field"
)

func TestReedSolomonSystematic(t *testing.T) {
	f := field.GF128()
	enc := NewReedSolomon(f)

	for _, n := range []int{1, 2, 4, 8} {
		col := make([]field.Element, n)
		for i := range col {
			col[i] = f.FromUint64(uint64(i)*0x9e3779b9 + 7)
		}

		cw, err := enc.Encode(col)
		require.NoError(t, err)
		require.Len(t, cw, 2*n)
		for i := range col {
			assert.True(t, cw[i].Equal(col[i]), "systematic prefix differs at %d", i)
		}
	}
}

func TestReedSolomonDeterministic(t *testing.T) {
	f := field.GF128()
	enc := NewReedSolomon(f)

	col := []field.Element{f.FromUint64(11), f.FromUint64(22), f.FromUint64(33), f.FromUint64(44)}
	first, err := enc.Encode(col)
	require.NoError(t, err)
	second, err := enc.Encode(col)
	require.NoError(t, err)

	for i := range first {
		assert.True(t, first[i].Equal(second[i]))
	}
}

// TestReedSolomonInterpolates feeds evaluations of known low-degree polynomials
// and checks the extension against direct evaluation.
func TestReedSolomonInterpolates(t *testing.T) {
	f := field.GF128()
	enc := NewReedSolomon(f)
	n := 4

	// constant polynomial: every codeword element equals the constant
	k := f.FromUint64(0x1234)
	constant := make([]field.Element, n)
	for i := range constant {
		constant[i] = k
	}
	cw, err := enc.Encode(constant)
	require.NoError(t, err)
	for i, el := range cw {
		assert.True(t, el.Equal(k), "constant extension differs at %d", i)
	}

	// identity polynomial p(x) = x: codeword element k equals FromUint64(k)
	linear := make([]field.Element, n)
	for i := range linear {
		linear[i] = f.FromUint64(uint64(i))
	}
	cw, err = enc.Encode(linear)
	require.NoError(t, err)
	for i, el := range cw {
		assert.True(t, el.Equal(f.FromUint64(uint64(i))), "linear extension differs at %d", i)
	}
}

func TestReedSolomonEmptyInput(t *testing.T) {
	enc := NewReedSolomon(field.GF128())
	_, err := enc.Encode(nil)
	require.ErrorIs(t, err, ErrEmptyInput)
}
