// Package field defines the finite-field contracts the square pipeline operates
// over, together with a GF(2^128) implementation used as the default.
//
// The pipeline never constructs elements on its own; it goes through an injected
// Field handle, so alternative fields can be swapped in as long as they honor the
// canonical big-endian byte encoding contract.
package field

// Element is a value in a finite field. Elements are immutable: every operation
// returns a fresh element and never modifies its receiver or arguments.
//
// Implementations are expected to be safe for concurrent use.
type Element interface {
	// Add returns the field sum of the element and b.
	Add(b Element) Element
	// Sub returns the field difference of the element and b.
	Sub(b Element) Element
	// Mul returns the field product of the element and b.
	Mul(b Element) Element
	// Inverse returns the multiplicative inverse. Zero has no inverse and
	// yields an error.
	Inverse() (Element, error)
	// Equal reports whether b represents the same field value.
	Equal(b Element) bool
	// IsZero reports whether the element is the additive identity.
	IsZero() bool
	// Bytes returns the canonical fixed-width big-endian encoding. This
	// encoding is what gets hashed into commitments, so it must be identical
	// on the committing and the verifying side.
	Bytes() []byte

	String() string
}

// Field constructs elements of one particular finite field.
type Field interface {
	// Zero returns the additive identity.
	Zero() Element
	// One returns the multiplicative identity.
	One() Element
	// FromUint64 lifts an unsigned integer into the field. How values larger
	// than the field are reduced is documented per implementation.
	FromUint64(u uint64) Element
	// FromBytes interprets b as a big-endian unsigned integer and lifts it
	// into the field, applying the implementation's documented reduction.
	FromBytes(b []byte) Element
	// ElementSize returns the canonical encoding width in bytes.
	ElementSize() int
}
