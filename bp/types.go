package bp

import "errors"

// Sentinel errors for decoder construction and stepping.
var (
	// ErrNilMatrix indicates a nil parity-check matrix.
	ErrNilMatrix = errors.New("bp: nil parity-check matrix")

	// ErrSyndromeLength indicates the syndrome length does not match the
	// matrix row count.
	ErrSyndromeLength = errors.New("bp: syndrome length does not match matrix rows")

	// ErrPriorLength indicates the prior slice length does not match the
	// matrix column count.
	ErrPriorLength = errors.New("bp: prior length does not match matrix columns")

	// ErrBadOption indicates an option value outside its valid range.
	ErrBadOption = errors.New("bp: invalid option value")

	// ErrDecodeFinished indicates a Step on a decoder that already
	// converged or exhausted its iterations.
	ErrDecodeFinished = errors.New("bp: decode session already finished")
)

// Status is the decode session state.
type Status uint8

// Session states, in lifecycle order.
const (
	StatusInitialized Status = iota
	StatusIterating
	StatusConverged
	StatusMaxIterations
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusInitialized:
		return "initialized"
	case StatusIterating:
		return "iterating"
	case StatusConverged:
		return "converged"
	case StatusMaxIterations:
		return "max-iterations"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session accepts no further steps.
func (s Status) Terminal() bool {
	return s == StatusConverged || s == StatusMaxIterations
}

// Mode selects the message-update rule.
type Mode uint8

// Available update rules.
const (
	// ModeHeuristic uses fixed-strength messages gated on each check's
	// syndrome bit.
	ModeHeuristic Mode = iota

	// ModeSumProduct uses exact extrinsic tanh-product messages.
	ModeSumProduct
)

// Defaults for decoder options.
const (
	// DefaultMaxIterations caps the message-passing rounds.
	DefaultMaxIterations = 10

	// DefaultTolerance is the L2 belief-change threshold for convergence.
	DefaultTolerance = 1e-6

	// DefaultProbEven is the heuristic no-error message strength from a
	// quiet check.
	DefaultProbEven = 0.75

	// DefaultProbOdd is the heuristic no-error message strength from a
	// fired check.
	DefaultProbOdd = 0.25

	// DefaultPrior is the a-priori per-qubit error probability used when
	// no priors are supplied.
	DefaultPrior = 0.1

	// beliefEps keeps beliefs strictly inside (0, 1).
	beliefEps = 1e-9
)

// Option configures a Decoder via functional arguments.
type Option func(*Options)

// Options holds tunable decoder parameters.
type Options struct {
	// MaxIterations caps Step rounds; must be >= 1.
	MaxIterations int

	// Tolerance is the convergence threshold on the L2 norm of the
	// belief change; must be > 0.
	Tolerance float64

	// ProbEven and ProbOdd are the heuristic message strengths, each in
	// (0, 1). Ignored by ModeSumProduct.
	ProbEven float64
	ProbOdd  float64

	// Mode selects the update rule.
	Mode Mode
}

// DefaultOptions returns the documented defaults: 10 iterations,
// tolerance 1e-6, heuristic messages 0.75/0.25.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		ProbEven:      DefaultProbEven,
		ProbOdd:       DefaultProbOdd,
		Mode:          ModeHeuristic,
	}
}

// WithMaxIterations sets the iteration cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithTolerance sets the convergence threshold.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tolerance = tol }
}

// WithMessageStrengths sets the heuristic message probabilities for
// quiet and fired checks.
func WithMessageStrengths(even, odd float64) Option {
	return func(o *Options) {
		o.ProbEven = even
		o.ProbOdd = odd
	}
}

// WithMode selects the update rule.
func WithMode(m Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// validate rejects out-of-range option values.
func (o Options) validate() error {
	if o.MaxIterations < 1 {
		return ErrBadOption
	}
	if o.Tolerance <= 0 {
		return ErrBadOption
	}
	if o.ProbEven <= 0 || o.ProbEven >= 1 || o.ProbOdd <= 0 || o.ProbOdd >= 1 {
		return ErrBadOption
	}
	if o.Mode != ModeHeuristic && o.Mode != ModeSumProduct {
		return ErrBadOption
	}
	return nil
}
