package eds

import "errors"

var (
	// ErrEmptyCommitment is returned when a commitment would cover an empty
	// leaf set. A default root is never substituted: the challenge vector is
	// derived from the root, and a predictable root voids its soundness.
	ErrEmptyCommitment = errors.New("eds: cannot commit to an empty leaf set")

	// ErrColumnLength is returned when a column of the input quadrant does not
	// match the quadrant width.
	ErrColumnLength = errors.New("eds: column length mismatch")

	// ErrCodewordLength is returned when the encoder breaks its systematic
	// doubling contract and yields a codeword of unexpected length.
	ErrCodewordLength = errors.New("eds: unexpected codeword length")
)
