package field

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrZeroInverse is returned when inverting the additive identity.
var ErrZeroInverse = errors.New("field: zero has no multiplicative inverse")

// reduction term for x^128 over GF(2): x^128 = x^7 + x^2 + x + 1.
const gf128Poly = 0x87

// GF128 returns the binary extension field GF(2^128) in polynomial basis with
// reduction polynomial x^128 + x^7 + x^2 + x + 1.
//
// FromUint64 embeds the integer into the low 64 coefficient bits, so no
// reduction applies. FromBytes reads a big-endian integer of up to 16 bytes;
// shorter input is zero-padded on the left and longer input keeps only its
// trailing 16 bytes. Both rules are part of the commitment protocol and must be
// matched exactly by any verifier.
func GF128() Field { return gf128{} }

type gf128 struct{}

func (gf128) Zero() Element               { return gf128Element{} }
func (gf128) One() Element                { return gf128Element{lo: 1} }
func (gf128) FromUint64(u uint64) Element { return gf128Element{lo: u} }
func (gf128) ElementSize() int            { return 16 }

func (gf128) FromBytes(b []byte) Element {
	if len(b) > 16 {
		b = b[len(b)-16:]
	}
	var buf [16]byte
	copy(buf[16-len(b):], b)
	return gf128Element{
		hi: binary.BigEndian.Uint64(buf[:8]),
		lo: binary.BigEndian.Uint64(buf[8:]),
	}
}

type gf128Element struct {
	hi, lo uint64
}

func gf128Cast(b Element) gf128Element {
	el, ok := b.(gf128Element)
	if !ok {
		panic(fmt.Sprintf("field: mixing GF(2^128) with foreign element %T", b))
	}
	return el
}

// Add in GF(2^128) is coefficient-wise XOR.
func (e gf128Element) Add(b Element) Element {
	o := gf128Cast(b)
	return gf128Element{hi: e.hi ^ o.hi, lo: e.lo ^ o.lo}
}

// Sub equals Add in a binary field.
func (e gf128Element) Sub(b Element) Element { return e.Add(b) }

// Mul is carry-less shift-and-reduce multiplication.
func (e gf128Element) Mul(b Element) Element {
	o := gf128Cast(b)
	ahi, alo := e.hi, e.lo
	bhi, blo := o.hi, o.lo
	var rhi, rlo uint64
	for i := 0; i < 128; i++ {
		if blo&1 == 1 {
			rhi ^= ahi
			rlo ^= alo
		}
		blo = blo>>1 | bhi<<63
		bhi >>= 1

		carry := ahi >> 63
		ahi = ahi<<1 | alo>>63
		alo <<= 1
		if carry == 1 {
			alo ^= gf128Poly
		}
	}
	return gf128Element{hi: rhi, lo: rlo}
}

// Inverse computes e^(2^128-2) by repeated squaring.
func (e gf128Element) Inverse() (Element, error) {
	if e.IsZero() {
		return nil, ErrZeroInverse
	}
	// 2^128-2 = 2 + 4 + ... + 2^127
	var r Element = gf128Element{lo: 1}
	var sq Element = e
	for i := 1; i < 128; i++ {
		sq = sq.Mul(sq)
		r = r.Mul(sq)
	}
	return r, nil
}

func (e gf128Element) Equal(b Element) bool {
	o := gf128Cast(b)
	return e.hi == o.hi && e.lo == o.lo
}

func (e gf128Element) IsZero() bool { return e.hi == 0 && e.lo == 0 }

func (e gf128Element) Bytes() []byte {
	b := make([]byte, 16)
	binary.BigEndian.PutUint64(b[:8], e.hi)
	binary.BigEndian.PutUint64(b[8:], e.lo)
	return b
}

func (e gf128Element) String() string {
	return fmt.Sprintf("%016x%016x", e.hi, e.lo)
}
