package codec

import (
	"fmt"

	"github.com/celestiaorg/fieldsquare/field"
)

// NewReedSolomon returns the default systematic Reed-Solomon Encoder over f.
//
// The n inputs are read as evaluations of a degree-<n polynomial at the points
// FromUint64(0..n-1); the codeword appends the evaluations at n..2n-1, computed
// by barycentric Lagrange extension. Evaluation points stay distinct for any
// width below 2^63, far beyond practical square sizes.
func NewReedSolomon(f field.Field) Encoder {
	return &rsEncoder{f: f}
}

type rsEncoder struct {
	f field.Field
}

func (rs *rsEncoder) Encode(col []field.Element) ([]field.Element, error) {
	n := len(col)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	xs := make([]field.Element, 2*n)
	for i := range xs {
		xs[i] = rs.f.FromUint64(uint64(i))
	}

	// barycentric weights w_j = 1 / prod_{m != j} (x_j - x_m)
	ws := make([]field.Element, n)
	for j := 0; j < n; j++ {
		p := rs.f.One()
		for m := 0; m < n; m++ {
			if m == j {
				continue
			}
			p = p.Mul(xs[j].Sub(xs[m]))
		}
		w, err := p.Inverse()
		if err != nil {
			return nil, fmt.Errorf("codec: degenerate evaluation points: %w", err)
		}
		ws[j] = w
	}

	cw := make([]field.Element, 2*n)
	copy(cw, col)

	// L_j(x) = w_j * prod_{m != j} (x - x_m); the product is assembled from
	// prefix and suffix partials so each extension point costs O(n).
	pre := make([]field.Element, n+1)
	suf := make([]field.Element, n+1)
	for k := n; k < 2*n; k++ {
		x := xs[k]
		pre[0] = rs.f.One()
		for m := 0; m < n; m++ {
			pre[m+1] = pre[m].Mul(x.Sub(xs[m]))
		}
		suf[n] = rs.f.One()
		for m := n - 1; m >= 0; m-- {
			suf[m] = suf[m+1].Mul(x.Sub(xs[m]))
		}

		acc := rs.f.Zero()
		for j := 0; j < n; j++ {
			acc = acc.Add(col[j].Mul(ws[j]).Mul(pre[j]).Mul(suf[j+1]))
		}
		cw[k] = acc
	}
	return cw, nil
}
