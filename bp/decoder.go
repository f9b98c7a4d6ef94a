package bp

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/btq-ag/qldpc/ldpc"
)

// Decoder is one belief-propagation decode session. It is not safe for
// concurrent use; wrap it behind the owner's lock if shared.
type Decoder struct {
	h       *ldpc.Matrix
	syn     []uint8
	priors  []float64 // a-priori error probability per qubit
	beliefs []float64 // current error probability per qubit
	scratch []float64 // previous beliefs, reused across steps
	opts    Options
	status  Status
	iter    int

	// Sum-product edge state: varMsgs[r][i] is the variable→check
	// message from the i-th variable of row r's support, and edges[c]
	// locates every (row, position) edge of column c.
	varMsgs [][]float64
	edges   [][]edge
}

type edge struct{ row, pos int }

// New builds a decode session over matrix h and measured syndrome syn.
// priors holds the a-priori error probability per qubit; pass nil for a
// uniform DefaultPrior. The syndrome and priors are copied, so callers
// may reuse their slices.
func New(h *ldpc.Matrix, syn []uint8, priors []float64, opts ...Option) (*Decoder, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if h == nil {
		return nil, ErrNilMatrix
	}
	if len(syn) != h.Rows() {
		return nil, fmt.Errorf("%w: %d vs %d", ErrSyndromeLength, len(syn), h.Rows())
	}
	if priors != nil && len(priors) != h.Cols() {
		return nil, fmt.Errorf("%w: %d vs %d", ErrPriorLength, len(priors), h.Cols())
	}

	d := &Decoder{
		h:       h,
		syn:     append([]uint8(nil), syn...),
		priors:  make([]float64, h.Cols()),
		beliefs: make([]float64, h.Cols()),
		scratch: make([]float64, h.Cols()),
		opts:    o,
		status:  StatusInitialized,
	}
	for c := range d.priors {
		p := DefaultPrior
		if priors != nil {
			p = priors[c]
		}
		d.priors[c] = clampBelief(p)
		d.beliefs[c] = d.priors[c]
	}
	if o.Mode == ModeSumProduct {
		d.initEdges()
	}
	return d, nil
}

// initEdges builds the per-edge message state for the sum-product rule:
// every variable→check message starts at the variable's prior.
func (d *Decoder) initEdges() {
	d.varMsgs = make([][]float64, d.h.Rows())
	d.edges = make([][]edge, d.h.Cols())
	for r := 0; r < d.h.Rows(); r++ {
		sup, err := d.h.RowSupport(r)
		if err != nil {
			continue // unreachable: r always in range
		}
		d.varMsgs[r] = make([]float64, len(sup))
		for i, c := range sup {
			d.varMsgs[r][i] = d.priors[c]
			d.edges[c] = append(d.edges[c], edge{row: r, pos: i})
		}
	}
}

// Step runs one message-passing round and returns the L2 norm of the
// belief change. A terminal session returns ErrDecodeFinished.
func (d *Decoder) Step() (float64, error) {
	if d.status.Terminal() {
		return 0, ErrDecodeFinished
	}
	copy(d.scratch, d.beliefs)

	switch d.opts.Mode {
	case ModeSumProduct:
		d.stepSumProduct()
	default:
		d.stepHeuristic()
	}

	d.iter++
	delta := floats.Distance(d.beliefs, d.scratch, 2)
	switch {
	case delta < d.opts.Tolerance:
		d.status = StatusConverged
	case d.iter >= d.opts.MaxIterations:
		d.status = StatusMaxIterations
	default:
		d.status = StatusIterating
	}
	return delta, nil
}

// Decode drives Step until the session terminates. Cancellation is
// honored between iterations; on cancellation the session keeps its
// current beliefs and status so a caller can still read partial results.
func (d *Decoder) Decode(ctx context.Context) (Status, error) {
	for !d.status.Terminal() {
		select {
		case <-ctx.Done():
			return d.status, ctx.Err()
		default:
		}
		if _, err := d.Step(); err != nil {
			return d.status, err
		}
	}
	return d.status, nil
}

// Beliefs returns a copy of the per-qubit error probabilities.
func (d *Decoder) Beliefs() []float64 {
	out := make([]float64, len(d.beliefs))
	copy(out, d.beliefs)
	return out
}

// HardDecision thresholds the beliefs at 1/2 into a binary error
// estimate, one bit per qubit.
func (d *Decoder) HardDecision() []uint8 {
	out := make([]uint8, len(d.beliefs))
	for c, b := range d.beliefs {
		if b > 0.5 {
			out[c] = 1
		}
	}
	return out
}

// Status returns the session state.
func (d *Decoder) Status() Status { return d.status }

// Iterations returns the number of completed steps.
func (d *Decoder) Iterations() int { return d.iter }

// stepHeuristic applies the fixed-strength rule: every check sends the
// same message to all its variables, ProbEven when quiet, ProbOdd when
// fired, each message being the probability of no error.
func (d *Decoder) stepHeuristic() {
	for c := 0; c < d.h.Cols(); c++ {
		sup, err := d.h.ColSupport(c)
		if err != nil {
			continue // unreachable: c always in range
		}
		b0 := 1 - d.priors[c]
		b1 := d.priors[c]
		for _, r := range sup {
			msg := d.opts.ProbEven
			if d.syn[r] == 1 {
				msg = d.opts.ProbOdd
			}
			b0 *= msg
			b1 *= 1 - msg
		}
		d.beliefs[c] = clampBelief(b1 / (b0 + b1))
	}
}

// stepSumProduct applies the exact extrinsic rule. For check r with
// parity s and variable set V, the message to c in V is
//
//	m = (1 - (-1)^s * prod_{c' in V, c' != c} (1 - 2*q_{c'->r})) / 2
//
// where q_{c'->r} is the extrinsic variable→check message, never the
// full posterior: a check's own contribution to a variable must not
// echo back in what that variable tells the check.
func (d *Decoder) stepSumProduct() {
	// Check→variable sweep over the stored edge messages.
	msgs := make([][]float64, d.h.Rows())
	for r := range d.varMsgs {
		msgs[r] = make([]float64, len(d.varMsgs[r]))
		sign := 1.0
		if d.syn[r] == 1 {
			sign = -1.0
		}
		for i := range d.varMsgs[r] {
			prod := 1.0
			for j, q := range d.varMsgs[r] {
				if j == i {
					continue
				}
				prod *= 1 - 2*q
			}
			msgs[r][i] = clampBelief((1 - sign*prod) / 2)
		}
	}

	// Variable sweep: posterior over all incident messages, and a fresh
	// extrinsic message per edge excluding that edge's own check.
	for c := 0; c < d.h.Cols(); c++ {
		b0 := 1 - d.priors[c]
		b1 := d.priors[c]
		for _, e := range d.edges[c] {
			m := msgs[e.row][e.pos]
			b1 *= m
			b0 *= 1 - m
		}
		d.beliefs[c] = clampBelief(b1 / (b0 + b1))

		for _, e := range d.edges[c] {
			q0 := 1 - d.priors[c]
			q1 := d.priors[c]
			for _, other := range d.edges[c] {
				if other == e {
					continue
				}
				m := msgs[other.row][other.pos]
				q1 *= m
				q0 *= 1 - m
			}
			d.varMsgs[e.row][e.pos] = clampBelief(q1 / (q0 + q1))
		}
	}
}

// clampBelief keeps probabilities strictly inside (0, 1) so products
// and ratios never saturate or divide by zero.
func clampBelief(p float64) float64 {
	switch {
	case p < beliefEps:
		return beliefEps
	case p > 1-beliefEps:
		return 1 - beliefEps
	}
	return p
}
