package threshold

import (
	"errors"
	"math"
)

// Sentinel errors for surface evaluation.
var (
	// ErrUnknownFamily indicates a Family value outside the enum.
	ErrUnknownFamily = errors.New("threshold: unknown code family")

	// ErrBadRange indicates an empty or invalid axis range.
	ErrBadRange = errors.New("threshold: bad axis range")
)

// Family identifies a quantum LDPC code family.
type Family uint8

// Supported code families.
const (
	// Surface is the planar surface code: local checks, d ~ sqrt(n),
	// threshold near 0.5%.
	Surface Family = iota

	// HypergraphProduct is the hypergraph product construction:
	// d ~ sqrt(n log n), threshold near 1%.
	HypergraphProduct

	// QuantumTanner is the expander-based quantum Tanner construction:
	// linear distance, threshold near 3%.
	QuantumTanner
)

// String implements fmt.Stringer.
func (f Family) String() string {
	switch f {
	case Surface:
		return "surface"
	case HypergraphProduct:
		return "hypergraph-product"
	case QuantumTanner:
		return "quantum-tanner"
	default:
		return "unknown"
	}
}

// valid reports whether f is a known family.
func (f Family) valid() bool {
	return f <= QuantumTanner
}

// Threshold returns the family's physical error threshold.
func (f Family) Threshold() float64 {
	switch f {
	case Surface:
		return 0.005
	case HypergraphProduct:
		return 0.01
	case QuantumTanner:
		return 0.03
	default:
		return 0
	}
}

// exponent is the suppression exponent at code distance d.
func (f Family) exponent(d float64) float64 {
	switch f {
	case Surface:
		return (d + 1) / 2
	case HypergraphProduct:
		return (d*math.Log(d+1) + 1) / 2
	default:
		return d
	}
}

// Distance returns the family's asymptotic distance at code length n.
func (f Family) Distance(n float64) float64 {
	switch f {
	case Surface:
		return math.Sqrt(n)
	case HypergraphProduct:
		return math.Sqrt(n * math.Log(n+1))
	default:
		return 0.15 * n
	}
}

// Rate returns the family's encoding rate k/n at code length n.
// Surface codes encode a constant number of logical qubits, so their
// rate vanishes with n; the product and Tanner constructions hold
// constant rate.
func (f Family) Rate(n float64) float64 {
	switch f {
	case Surface:
		if n <= 0 {
			return 0
		}
		return 1 / n
	case HypergraphProduct:
		return 0.1
	default:
		return 0.3
	}
}
