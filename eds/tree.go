package eds

import (
	"crypto/sha256"
	"fmt"
	"sync"

	"github.com/celestiaorg/go-square/merkle"

	"github.com/celestiaorg/fieldsquare/field"
)

// Tree is a binary commitment tree over an ordered sequence of field elements.
//
// Each leaf is the sha256 digest of one element's canonical byte encoding; the
// tree over the 32-byte leaves is built with go-square's merkle package.
// Inclusion proofs therefore verify against Root with the element digest as the
// proven item. The element order is fixed at construction and is part of the
// protocol: commit time and verification time must flatten quadrants
// identically.
type Tree struct {
	leaves [][]byte
	root   []byte

	once   sync.Once
	proofs []*merkle.Proof
}

// NewTree hashes the given elements into leaves and builds the commitment
// tree. An empty element set is rejected with ErrEmptyCommitment.
func NewTree(elements []field.Element) (*Tree, error) {
	if len(elements) == 0 {
		return nil, ErrEmptyCommitment
	}
	leaves := make([][]byte, len(elements))
	for i, el := range elements {
		h := sha256.Sum256(el.Bytes())
		leaves[i] = h[:]
	}
	return &Tree{
		leaves: leaves,
		root:   merkle.HashFromByteSlices(leaves),
	}, nil
}

// Root returns the 32-byte commitment root.
func (t *Tree) Root() []byte { return t.root }

// Leaves returns the ordered 32-byte leaves the tree was built over.
func (t *Tree) Leaves() [][]byte { return t.leaves }

// Proof returns the inclusion proof for leaf i. Proofs for the whole tree are
// generated on first use and cached.
func (t *Tree) Proof(i int) (*merkle.Proof, error) {
	if i < 0 || i >= len(t.leaves) {
		return nil, fmt.Errorf("eds: leaf index %d out of range [0,%d)", i, len(t.leaves))
	}
	t.once.Do(func() {
		_, t.proofs = merkle.ProofsFromByteSlices(t.leaves)
	})
	return t.proofs[i], nil
}
