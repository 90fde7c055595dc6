// Package codec provides the erasure-coding boundaries of the module: a
// systematic Encoder over field elements consumed by the square pipeline, and a
// byte-share Codec used by the raw share layout.
package codec

import (
	"errors"

	"github.com/celestiaorg/fieldsquare/field"
)

// ErrEmptyInput is returned when an encoder is given nothing to encode.
var ErrEmptyInput = errors.New("codec: empty input")

// Encoder is a systematic erasure encoder over field elements: it stretches a
// length-n vector into a 2n-element codeword whose first n elements equal the
// input. Encoding is deterministic and implementations are stateless, so a
// single Encoder may be shared across concurrent callers.
type Encoder interface {
	Encode(col []field.Element) ([]field.Element, error)
}
