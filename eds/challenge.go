package eds

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/celestiaorg/fieldsquare/field"
)

// DeriveChallenge computes the Fiat-Shamir challenge vector for a commitment
// root: dr[i] = FromBytes(sha256(root ‖ bigEndian64(i))[:16]) for i in
// [0, width).
//
// The index is encoded as a fixed 8-byte big-endian integer so entries cannot
// alias at any practical width. The vector is unpredictable before the root is
// known; a verifier holding the same root recomputes it with exactly this rule.
func DeriveChallenge(f field.Field, root []byte, width int) []field.Element {
	dr := make([]field.Element, width)
	var idx [8]byte
	for i := 0; i < width; i++ {
		h := sha256.New()
		h.Write(root)
		binary.BigEndian.PutUint64(idx[:], uint64(i))
		h.Write(idx[:])
		dr[i] = f.FromBytes(h.Sum(nil)[:16])
	}
	return dr
}
