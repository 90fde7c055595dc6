// Package square implements the raw byte-share square layout underlying the
// field-level pipeline: a flat ordered list of fixed-size shares arranged into
// row-major and column-major views, with support for growing the square with
// filler shares.
package square

import (
	"bytes"
	"errors"
	"fmt"
	"math"
)

// Share is a raw fixed-size byte share.
type Share = []byte

var (
	// ErrNotSquare is returned when the share count is not a perfect square.
	ErrNotSquare = errors.New("square: share count is not a perfect square")
	// ErrShareSize is returned when a share does not match the configured size.
	ErrShareSize = errors.New("square: share size mismatch")
)

// Square holds row-major and column-major views over one set of shares.
// The views alias the same underlying share slices and are read-only;
// Extend returns a new Square rather than mutating in place.
type Square struct {
	rows [][]Share
	cols [][]Share

	width     int
	shareSize int
}

// New arranges a flat, row-major ordered share list of length width² into a
// Square. Every share must have exactly shareSize bytes.
func New(shares []Share, shareSize int) (*Square, error) {
	width := int(math.Round(math.Sqrt(float64(len(shares)))))
	if width*width != len(shares) {
		return nil, fmt.Errorf("%w: got %d shares", ErrNotSquare, len(shares))
	}
	for i, share := range shares {
		if len(share) != shareSize {
			return nil, fmt.Errorf("%w: share %d has %d bytes, want %d", ErrShareSize, i, len(share), shareSize)
		}
	}

	rows := make([][]Share, width)
	for i := range rows {
		rows[i] = shares[i*width : (i+1)*width]
	}
	return &Square{
		rows:      rows,
		cols:      transpose(rows),
		width:     width,
		shareSize: shareSize,
	}, nil
}

// Extend returns a new Square grown by widthDelta in both dimensions: every
// existing row is padded to the new width with copies of filler, and the added
// rows consist entirely of filler shares. The original width×width sub-square
// is carried over unmodified.
func (s *Square) Extend(widthDelta int, filler Share) (*Square, error) {
	if len(filler) != s.shareSize {
		return nil, fmt.Errorf("%w: filler has %d bytes, want %d", ErrShareSize, len(filler), s.shareSize)
	}

	width := s.width + widthDelta
	rows := make([][]Share, width)
	for i := 0; i < s.width; i++ {
		row := make([]Share, width)
		copy(row, s.rows[i])
		for j := s.width; j < width; j++ {
			row[j] = bytes.Clone(filler)
		}
		rows[i] = row
	}
	for i := s.width; i < width; i++ {
		row := make([]Share, width)
		for j := range row {
			row[j] = bytes.Clone(filler)
		}
		rows[i] = row
	}

	return &Square{
		rows:      rows,
		cols:      transpose(rows),
		width:     width,
		shareSize: s.shareSize,
	}, nil
}

// Width returns the side length of the square.
func (s *Square) Width() int { return s.width }

// ShareSize returns the size in bytes of every share.
func (s *Square) ShareSize() int { return s.shareSize }

// Row returns the i-th row of the square.
func (s *Square) Row(i int) []Share { return s.rows[i] }

// Col returns the i-th column of the square.
func (s *Square) Col(i int) []Share { return s.cols[i] }

// RowMajor returns the row-major view of the square.
func (s *Square) RowMajor() [][]Share { return s.rows }

// ColMajor returns the column-major view of the square.
func (s *Square) ColMajor() [][]Share { return s.cols }

func transpose(rows [][]Share) [][]Share {
	cols := make([][]Share, len(rows))
	for i := range cols {
		col := make([]Share, len(rows))
		for j := range col {
			col[j] = rows[j][i]
		}
		cols[i] = col
	}
	return cols
}
