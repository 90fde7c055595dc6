package eds

import (
	"context"
	"encoding/hex"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/celestiaorg/fieldsquare/codec"
	"github.com/celestiaorg/fieldsquare/field"
)

// Option configures a pipeline run.
type Option func(*params)

type params struct {
	workers int
}

// WithWorkers caps the number of concurrent encoding workers per stage.
// Zero or negative leaves parallelism unlimited.
func WithWorkers(n int) Option {
	return func(p *params) {
		p.workers = n
	}
}

// Extend runs the full pipeline over the original quadrant q1 and returns the
// assembled ExtendedDataSquare.
//
// q1 is a square matrix in column form: len(q1) columns of len(q1) elements.
// The encoder must be systematic and length-doubling; the field handle must
// match the elements of q1. Both are read-only shared capabilities and are
// never mutated. An empty q1 surfaces as ErrEmptyCommitment from the first
// commitment stage.
//
// Each stage completes fully before the next begins. Cancelling ctx before
// assembly aborts the run with no observable partial result.
func Extend(
	ctx context.Context,
	q1 []Column,
	f field.Field,
	enc codec.Encoder,
	opts ...Option,
) (*ExtendedDataSquare, error) {
	var p params
	for _, opt := range opts {
		opt(&p)
	}

	width := len(q1)
	for i, col := range q1 {
		if len(col) != width {
			return nil, fmt.Errorf("%w: column %d has %d elements, want %d", ErrColumnLength, i, len(col), width)
		}
	}

	q3, err := extendAxis(ctx, p, enc, q1, "column")
	if err != nil {
		return nil, fmt.Errorf("eds: extending original quadrant: %w", err)
	}

	// The first commitment binds Q1 and Q3 row by row. It must be finalized
	// before the challenge below is derived from it.
	first, err := NewTree(flatten(transpose(q1), transpose(q3)))
	if err != nil {
		return nil, fmt.Errorf("eds: first commitment: %w", err)
	}
	log.Debugw("committed original and extended quadrants",
		"width", width, "root", hex.EncodeToString(first.Root()))

	dr := DeriveChallenge(f, first.Root(), width)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q1s := scaleColumns(q1, dr)
	q3s := scaleColumns(q3, dr)

	q2, err := extendRows(ctx, p, enc, q1s)
	if err != nil {
		return nil, fmt.Errorf("eds: extending scaled original quadrant: %w", err)
	}
	q4, err := extendRows(ctx, p, enc, q3s)
	if err != nil {
		return nil, fmt.Errorf("eds: extending scaled parity quadrant: %w", err)
	}

	second, err := NewTree(flatten(q1s, transpose(q2), q3s, transpose(q4)))
	if err != nil {
		return nil, fmt.Errorf("eds: second commitment: %w", err)
	}
	log.Debugw("committed recombined quadrants",
		"width", width, "root", hex.EncodeToString(second.Root()))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cols := assemble(q1, q3, q2, q4)
	return &ExtendedDataSquare{
		cols:   cols,
		rows:   transpose(cols),
		dr:     dr,
		first:  first,
		second: second,
	}, nil
}

// extendAxis encodes every vector in parallel and collects the extension
// halves. The returned matrix is complete only after all workers finished;
// Wait is the stage barrier.
func extendAxis(
	ctx context.Context,
	p params,
	enc codec.Encoder,
	vecs []Column,
	axis string,
) ([]Column, error) {
	out := make([]Column, len(vecs))
	g, ctx := errgroup.WithContext(ctx)
	if p.workers > 0 {
		g.SetLimit(p.workers)
	}
	for i, vec := range vecs {
		i, vec := i, vec
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cw, err := enc.Encode(vec)
			if err != nil {
				return fmt.Errorf("%s %d: %w", axis, i, err)
			}
			if len(cw) != 2*len(vec) {
				return fmt.Errorf("%w: %s %d: got %d elements, want %d",
					ErrCodewordLength, axis, i, len(cw), 2*len(vec))
			}
			out[i] = cw[len(vec):]
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// extendRows extends a scaled quadrant in the row direction: each row is
// encoded and the extension halves are transposed back into column form.
func extendRows(ctx context.Context, p params, enc codec.Encoder, cols []Column) ([]Column, error) {
	ext, err := extendAxis(ctx, p, enc, transpose(cols), "row")
	if err != nil {
		return nil, err
	}
	return transpose(ext), nil
}

// scaleColumns returns a fresh matrix with every element of column i
// multiplied by dr[i]. The input is left untouched.
func scaleColumns(cols []Column, dr []field.Element) []Column {
	out := make([]Column, len(cols))
	for i, col := range cols {
		scaled := make(Column, len(col))
		for j, el := range col {
			scaled[j] = el.Mul(dr[i])
		}
		out[i] = scaled
	}
	return out
}

// transpose flips a square matrix between column and row form.
func transpose(m []Column) []Column {
	out := make([]Column, len(m))
	for i := range out {
		vec := make(Column, len(m))
		for j := range vec {
			vec[j] = m[j][i]
		}
		out[i] = vec
	}
	return out
}

// flatten concatenates matrices outer to inner into one element sequence.
// This order is part of the commitment protocol.
func flatten(ms ...[]Column) []field.Element {
	var n int
	for _, m := range ms {
		for _, vec := range m {
			n += len(vec)
		}
	}
	out := make([]field.Element, 0, n)
	for _, m := range ms {
		for _, vec := range m {
			out = append(out, vec...)
		}
	}
	return out
}

// assemble lays out the final square: columns 0..w-1 stack Q1 over Q3,
// columns w..2w-1 stack Q2 over Q4.
func assemble(q1, q3, q2, q4 []Column) []Column {
	width := len(q1)
	cols := make([]Column, 0, 2*width)
	for i := 0; i < width; i++ {
		col := make(Column, 0, 2*width)
		col = append(col, q1[i]...)
		col = append(col, q3[i]...)
		cols = append(cols, col)
	}
	for i := 0; i < width; i++ {
		col := make(Column, 0, 2*width)
		col = append(col, q2[i]...)
		col = append(col, q4[i]...)
		cols = append(cols, col)
	}
	return cols
}
