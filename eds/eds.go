// Package eds builds committed, erasure-extended data squares over field
// elements.
//
// A run takes the original quadrant Q1 (width columns of width elements),
// extends every column with a systematic encoder into Q3, commits to Q1 and Q3,
// derives a per-column Fiat-Shamir challenge vector from that commitment,
// re-extends the challenge-scaled quadrants row-wise into Q2 and Q4, commits to
// all four quadrants, and assembles the 2·width sized ExtendedDataSquare.
//
// The stage order is the scheme's correctness contract: the challenge vector
// must be derived from a finalized commitment root, and committed quadrant data
// is never mutated afterward. Stages run strictly in sequence; only the
// per-column and per-row encoding inside a stage is parallelized.
package eds

import (
	logging "github.com/ipfs/go-log/v2"

	"github.com/celestiaorg/fieldsquare/field"
)

var log = logging.Logger("eds")

// Column is an ordered sequence of field elements, one quadrant column.
type Column = []field.Element

// ExtendedDataSquare is the immutable artifact of one pipeline run: the
// doubled-size matrix in both orientations, the challenge vector, and the two
// commitment trees.
type ExtendedDataSquare struct {
	cols []Column
	rows []Column

	dr []field.Element

	first  *Tree
	second *Tree
}

// Width returns the side length of the extended square, twice the original
// quadrant width.
func (e *ExtendedDataSquare) Width() int { return len(e.cols) }

// OriginalWidth returns the side length of the original data quadrant.
func (e *ExtendedDataSquare) OriginalWidth() int { return len(e.dr) }

// Col returns the i-th column of the extended square.
func (e *ExtendedDataSquare) Col(i int) Column { return e.cols[i] }

// Row returns the i-th row of the extended square.
func (e *ExtendedDataSquare) Row(i int) Column { return e.rows[i] }

// ColMajor returns the column-major form of the extended square.
func (e *ExtendedDataSquare) ColMajor() []Column { return e.cols }

// RowMajor returns the row-major form of the extended square.
func (e *ExtendedDataSquare) RowMajor() []Column { return e.rows }

// Challenge returns the Fiat-Shamir challenge vector dr, one scalar per
// original column.
func (e *ExtendedDataSquare) Challenge() []field.Element { return e.dr }

// FirstRoot returns the root committing Q1 and Q3.
func (e *ExtendedDataSquare) FirstRoot() []byte { return e.first.Root() }

// SecondRoot returns the root committing all four quadrants after
// recombination.
func (e *ExtendedDataSquare) SecondRoot() []byte { return e.second.Root() }

// FirstTree returns the commitment tree behind FirstRoot.
func (e *ExtendedDataSquare) FirstTree() *Tree { return e.first }

// SecondTree returns the commitment tree behind SecondRoot.
func (e *ExtendedDataSquare) SecondTree() *Tree { return e.second }
