package syndrome

import (
	"errors"
	"fmt"

	"github.com/btq-ag/qldpc/ldpc"
	"github.com/btq-ag/qldpc/pauli"
)

// Sentinel errors for syndrome computation.
var (
	// ErrNilMatrix indicates a nil parity-check matrix.
	ErrNilMatrix = errors.New("syndrome: nil parity-check matrix")

	// ErrLengthMismatch indicates the error vector length does not match
	// the matrix column count.
	ErrLengthMismatch = errors.New("syndrome: vector length does not match matrix columns")
)

// Basis selects which Pauli components trigger a check.
type Basis uint8

// Supported measurement bases.
const (
	// Combined counts every Pauli error (X, Z and Y alike).
	Combined Basis = iota

	// BasisX counts bit-flip components: X and Y.
	BasisX

	// BasisZ counts phase-flip components: Z and Y.
	BasisZ
)

// String implements fmt.Stringer.
func (b Basis) String() string {
	switch b {
	case Combined:
		return "combined"
	case BasisX:
		return "X"
	case BasisZ:
		return "Z"
	default:
		return "unknown"
	}
}

// triggers reports whether state s flips a check in basis b.
func (b Basis) triggers(s pauli.State) bool {
	switch b {
	case BasisX:
		return s == pauli.StateX || s == pauli.StateY
	case BasisZ:
		return s == pauli.StateZ || s == pauli.StateY
	default:
		return s.IsError()
	}
}

// Compute evaluates s = H*e mod 2 over the selected basis.
// The result has one bit per matrix row.
func Compute(h *ldpc.Matrix, v *pauli.Vector, b Basis) ([]uint8, error) {
	if h == nil {
		return nil, ErrNilMatrix
	}
	if v == nil || v.Len() != h.Cols() {
		got := 0
		if v != nil {
			got = v.Len()
		}
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, got, h.Cols())
	}

	out := make([]uint8, h.Rows())
	for r := 0; r < h.Rows(); r++ {
		sup, err := h.RowSupport(r)
		if err != nil {
			return nil, err
		}
		var parity uint8
		for _, c := range sup {
			s, err := v.At(c)
			if err != nil {
				return nil, err
			}
			if b.triggers(s) {
				parity ^= 1
			}
		}
		out[r] = parity
	}
	return out, nil
}

// ComputeCSS evaluates both sectors of a CSS pair: the X-sector
// syndrome of hx (bit flips) and the Z-sector syndrome of hz (phase
// flips).
func ComputeCSS(hx, hz *ldpc.Matrix, v *pauli.Vector) (sx, sz []uint8, err error) {
	sx, err = Compute(hx, v, BasisX)
	if err != nil {
		return nil, nil, err
	}
	sz, err = Compute(hz, v, BasisZ)
	if err != nil {
		return nil, nil, err
	}
	return sx, sz, nil
}

// IsClean reports whether no check fired. An empty syndrome is clean.
func IsClean(s []uint8) bool {
	for _, bit := range s {
		if bit != 0 {
			return false
		}
	}
	return true
}

// Weight counts the set bits of a syndrome.
func Weight(s []uint8) int {
	w := 0
	for _, bit := range s {
		if bit != 0 {
			w++
		}
	}
	return w
}
