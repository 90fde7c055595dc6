package eds

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celestiaorg/fieldsquare/field"
)

func TestNewTreeEmpty(t *testing.T) {
	_, err := NewTree(nil)
	require.ErrorIs(t, err, ErrEmptyCommitment)
}

func TestTreeRootAndLeaves(t *testing.T) {
	f := field.GF128()
	elements := []field.Element{f.FromUint64(1), f.FromUint64(2), f.FromUint64(3)}

	tree, err := NewTree(elements)
	require.NoError(t, err)
	require.Len(t, tree.Root(), sha256.Size)
	require.Len(t, tree.Leaves(), len(elements))

	for i, el := range elements {
		want := sha256.Sum256(el.Bytes())
		assert.Equal(t, want[:], tree.Leaves()[i])
	}

	// same elements, same root; different order, different root
	same, err := NewTree(elements)
	require.NoError(t, err)
	assert.Equal(t, tree.Root(), same.Root())

	swapped := []field.Element{elements[1], elements[0], elements[2]}
	other, err := NewTree(swapped)
	require.NoError(t, err)
	assert.NotEqual(t, tree.Root(), other.Root())
}

func TestTreeProofs(t *testing.T) {
	f := field.GF128()
	elements := make([]field.Element, 8)
	for i := range elements {
		elements[i] = f.FromUint64(uint64(i) + 100)
	}

	tree, err := NewTree(elements)
	require.NoError(t, err)

	for i := range elements {
		proof, err := tree.Proof(i)
		require.NoError(t, err)
		require.NoError(t, proof.Verify(tree.Root(), tree.Leaves()[i]))
	}

	_, err = tree.Proof(-1)
	require.Error(t, err)
	_, err = tree.Proof(len(elements))
	require.Error(t, err)
}
