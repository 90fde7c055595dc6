package codec

import (
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/reedsolomon"
)

// ErrOddShareCount is returned by Decode when the share list cannot be split
// into equal data and parity halves.
var ErrOddShareCount = errors.New("codec: share count must be even")

// ShareCodec is the byte-level erasure boundary over raw shares, independent of
// field elements. Encode produces one parity share per data share; Decode
// reconstructs a full share set in which nil entries mark missing shares.
type ShareCodec interface {
	Encode(shares [][]byte) ([][]byte, error)
	Decode(shares [][]byte) ([][]byte, error)
}

// NewShareCodec returns a ShareCodec backed by klauspost/reedsolomon, with the
// underlying encoder cached per share count.
func NewShareCodec() ShareCodec {
	return &shareCodec{encoders: make(map[int]reedsolomon.Encoder)}
}

type shareCodec struct {
	mu       sync.Mutex
	encoders map[int]reedsolomon.Encoder
}

func (c *shareCodec) encoder(data int) (reedsolomon.Encoder, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	enc, ok := c.encoders[data]
	if ok {
		return enc, nil
	}
	enc, err := reedsolomon.New(data, data)
	if err != nil {
		return nil, fmt.Errorf("codec: creating reedsolomon encoder: %w", err)
	}
	c.encoders[data] = enc
	return enc, nil
}

func (c *shareCodec) Encode(shares [][]byte) ([][]byte, error) {
	if len(shares) == 0 {
		return nil, ErrEmptyInput
	}
	enc, err := c.encoder(len(shares))
	if err != nil {
		return nil, err
	}

	shards := make([][]byte, 2*len(shares))
	copy(shards, shares)
	for i := len(shares); i < len(shards); i++ {
		shards[i] = make([]byte, len(shares[0]))
	}
	if err := enc.Encode(shards); err != nil {
		return nil, fmt.Errorf("codec: encoding shares: %w", err)
	}
	return shards[len(shares):], nil
}

func (c *shareCodec) Decode(shares [][]byte) ([][]byte, error) {
	if len(shares) == 0 {
		return nil, ErrEmptyInput
	}
	if len(shares)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOddShareCount, len(shares))
	}
	enc, err := c.encoder(len(shares) / 2)
	if err != nil {
		return nil, err
	}

	shards := make([][]byte, len(shares))
	copy(shards, shares)
	if err := enc.Reconstruct(shards); err != nil {
		return nil, fmt.Errorf("codec: reconstructing shares: %w", err)
	}
	return shards, nil
}
