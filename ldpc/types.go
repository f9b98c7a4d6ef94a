// Package ldpc defines options and sentinel errors for parity-check
// matrix generation.
package ldpc

import "errors"

// Sentinel errors for matrix generation and access.
var (
	// ErrBadShape indicates non-positive check or qubit counts.
	ErrBadShape = errors.New("ldpc: matrix dimensions must be positive")

	// ErrInfeasibleDegree indicates that the requested check degree cannot
	// be satisfied: either a row would need more distinct columns than
	// exist, or the total number of entries is too small to touch every
	// qubit at least once.
	ErrInfeasibleDegree = errors.New("ldpc: infeasible check degree for requested shape")

	// ErrIndexOutOfBounds indicates a row or column index outside the matrix.
	ErrIndexOutOfBounds = errors.New("ldpc: index out of bounds")
)

// Defaults mirror the reference code construction: degree-6 checks over a
// seeded source so interactive sessions are reproducible.
const (
	// DefaultCheckDegree is the number of qubits each parity check touches.
	DefaultCheckDegree = 6

	// DefaultSeed seeds the generation source when no seed option is given.
	DefaultSeed int64 = 42
)

// Option configures matrix generation via functional arguments.
type Option func(*Options)

// Options holds tunable generation parameters.
// Zero values are replaced by the documented defaults.
type Options struct {
	// CheckDegree is the exact number of ones per row.
	CheckDegree int

	// Seed initializes the random source; fixed seeds give fixed matrices.
	Seed int64
}

// DefaultOptions returns the documented defaults:
// CheckDegree=6, Seed=42.
func DefaultOptions() Options {
	return Options{
		CheckDegree: DefaultCheckDegree,
		Seed:        DefaultSeed,
	}
}

// WithCheckDegree sets the per-row degree. Values < 1 are rejected at
// generation time with ErrInfeasibleDegree.
func WithCheckDegree(d int) Option {
	return func(o *Options) { o.CheckDegree = d }
}

// WithSeed sets the generation seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}
