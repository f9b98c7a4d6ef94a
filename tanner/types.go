package tanner

import "errors"

// Sentinel errors for graph construction and traversal.
var (
	// ErrNilMatrix indicates a nil parity-check matrix.
	ErrNilMatrix = errors.New("tanner: nil parity-check matrix")

	// ErrBadShape indicates non-positive qubit or check counts.
	ErrBadShape = errors.New("tanner: node counts must be positive")

	// ErrIndexOutOfRange indicates a node index outside the graph.
	ErrIndexOutOfRange = errors.New("tanner: node index out of range")

	// ErrBadSpread indicates a non-positive propagation radius.
	ErrBadSpread = errors.New("tanner: spread must be positive")
)

// Construction selects a random-graph preset. Higher connectivity
// stands in for longer-range checks and better distance.
type Construction uint8

// Available presets.
const (
	// SurfaceLike wires each qubit to 4 checks, mimicking local planar
	// connectivity.
	SurfaceLike Construction = iota

	// Hypergraph wires each qubit to 6 checks, the medium-range product
	// construction.
	Hypergraph

	// ExpanderTanner wires each qubit to 8 checks, the long-range
	// expander regime.
	ExpanderTanner
)

// String implements fmt.Stringer.
func (c Construction) String() string {
	switch c {
	case SurfaceLike:
		return "surface-like"
	case Hypergraph:
		return "hypergraph"
	case ExpanderTanner:
		return "expander-tanner"
	default:
		return "unknown"
	}
}

// Degree returns the per-qubit connection count of the preset.
func (c Construction) Degree() int {
	switch c {
	case SurfaceLike:
		return 4
	case Hypergraph:
		return 6
	default:
		return 8
	}
}
