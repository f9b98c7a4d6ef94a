package simulate

import (
	"context"
	"errors"
	"math"
	"sync"

	"github.com/btq-ag/qldpc/bp"
	"github.com/btq-ag/qldpc/cavity"
	"github.com/btq-ag/qldpc/ldpc"
	"github.com/btq-ag/qldpc/pauli"
	"github.com/btq-ag/qldpc/syndrome"
)

// Sentinel errors for session management.
var (
	// ErrNoSession indicates a Step without an active decode session.
	ErrNoSession = errors.New("simulate: no active decode session")
)

// Session defaults: the canonical interactive code.
const (
	DefaultNumData       = 21
	DefaultNumChecks     = 12
	DefaultCooperativity = 1e5
)

// Option configures a Code via functional arguments.
type Option func(*Options)

// Options holds code construction parameters.
type Options struct {
	// NumData and NumChecks set the matrix shape.
	NumData, NumChecks int

	// CheckDegree and Seed are passed through to matrix generation.
	CheckDegree int
	Seed        int64

	// Cooperativity is the cavity cooperativity driving decoder priors
	// and the session fidelity.
	Cooperativity float64
}

// DefaultOptions returns the canonical 21-qubit, 12-check session.
func DefaultOptions() Options {
	return Options{
		NumData:       DefaultNumData,
		NumChecks:     DefaultNumChecks,
		CheckDegree:   ldpc.DefaultCheckDegree,
		Seed:          ldpc.DefaultSeed,
		Cooperativity: DefaultCooperativity,
	}
}

// WithShape sets the matrix dimensions.
func WithShape(nChecks, nData int) Option {
	return func(o *Options) {
		o.NumChecks = nChecks
		o.NumData = nData
	}
}

// WithCheckDegree sets the per-check degree.
func WithCheckDegree(d int) Option {
	return func(o *Options) { o.CheckDegree = d }
}

// WithSeed sets the generation seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithCooperativity sets the cavity cooperativity.
func WithCooperativity(c float64) Option {
	return func(o *Options) { o.Cooperativity = c }
}

// Code is one interactive error-correction session.
type Code struct {
	mu      sync.Mutex
	opts    Options
	h       *ldpc.Matrix
	errs    *pauli.Vector
	decoder *bp.Decoder
}

// New builds a session with a freshly generated matrix and a clean
// error register.
func New(opts ...Option) (*Code, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	h, err := ldpc.Generate(o.NumChecks, o.NumData,
		ldpc.WithCheckDegree(o.CheckDegree), ldpc.WithSeed(o.Seed))
	if err != nil {
		return nil, err
	}
	return &Code{
		opts: o,
		h:    h,
		errs: pauli.NewVector(h.Cols()),
	}, nil
}

// priors derives the uniform decoder prior from the session
// cooperativity. Callers hold c.mu.
func (c *Code) priors() []float64 {
	p := cavity.ErrorProbability(c.opts.Cooperativity, cavity.DefaultResidualError)
	out := make([]float64, c.h.Cols())
	for i := range out {
		out[i] = p
	}
	return out
}

// Matrix returns a copy of the parity-check matrix.
func (c *Code) Matrix() *ldpc.Matrix {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.h.Clone()
}

// Errors returns a copy of the error register.
func (c *Code) Errors() *pauli.Vector {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errs.Clone()
}

// InjectError places error e on qubit i and invalidates any decode
// session.
func (c *Code) InjectError(i int, e pauli.ErrorType) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.errs.Inject(i, e); err != nil {
		return err
	}
	c.decoder = nil
	return nil
}

// CycleState advances qubit i one step through the state cycle and
// invalidates any decode session.
func (c *Code) CycleState(i int) (pauli.State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, err := c.errs.Cycle(i)
	if err != nil {
		return s, err
	}
	c.decoder = nil
	return s, nil
}

// ClearErrors resets the register and invalidates any decode session.
func (c *Code) ClearErrors() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs.ClearAll()
	c.decoder = nil
}

// ResetCode regenerates the parity-check matrix, clears the register
// and invalidates any decode session. Options override the session's
// construction parameters, so WithSeed picks a fresh code.
func (c *Code) ResetCode(opts ...Option) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	o := c.opts
	for _, fn := range opts {
		fn(&o)
	}
	h, err := ldpc.Generate(o.NumChecks, o.NumData,
		ldpc.WithCheckDegree(o.CheckDegree), ldpc.WithSeed(o.Seed))
	if err != nil {
		return err
	}
	c.opts = o
	c.h = h
	c.errs = pauli.NewVector(h.Cols())
	c.decoder = nil
	return nil
}

// SetCooperativity updates the session cooperativity and invalidates
// any decode session so the next one picks up fresh priors.
func (c *Code) SetCooperativity(coop float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opts.Cooperativity = coop
	c.decoder = nil
}

// Fidelity returns the single-qubit gate fidelity at the session
// cooperativity.
func (c *Code) Fidelity() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cavity.Fidelity(c.opts.Cooperativity, cavity.DefaultResidualError)
}

// Params summarizes the code: block length, logical qubit count,
// estimated distance and encoding rate.
type Params struct {
	N, K, D int
	Rate    float64
}

// Params returns the code parameters with k = n - m and d = floor(sqrt(n)).
func (c *Code) Params() Params {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := c.h.Cols()
	k := n - c.h.Rows()
	return Params{
		N:    n,
		K:    k,
		D:    int(math.Sqrt(float64(n))),
		Rate: float64(k) / float64(n),
	}
}

// InjectAndRecompute injects error e on qubit i and measures the
// combined syndrome under one lock hold. Any decode session is
// invalidated.
func (c *Code) InjectAndRecompute(i int, e pauli.ErrorType) ([]uint8, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.errs.Inject(i, e); err != nil {
		return nil, err
	}
	c.decoder = nil
	return syndrome.Compute(c.h, c.errs, syndrome.Combined)
}

// Syndrome measures the current register in basis b.
func (c *Code) Syndrome(b syndrome.Basis) ([]uint8, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return syndrome.Compute(c.h, c.errs, b)
}

// BeginDecode opens a decode session from the current syndrome in
// basis b, replacing any previous session.
func (c *Code) BeginDecode(b syndrome.Basis, opts ...bp.Option) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	syn, err := syndrome.Compute(c.h, c.errs, b)
	if err != nil {
		return err
	}
	d, err := bp.New(c.h, syn, c.priors(), opts...)
	if err != nil {
		return err
	}
	c.decoder = d
	return nil
}

// StepDecode advances the active session one round and returns the
// belief change and resulting status.
func (c *Code) StepDecode() (float64, bp.Status, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.decoder == nil {
		return 0, bp.StatusInitialized, ErrNoSession
	}
	delta, err := c.decoder.Step()
	return delta, c.decoder.Status(), err
}

// Result is a completed or in-flight decode snapshot.
type Result struct {
	Status     bp.Status
	Beliefs    []float64
	Correction []uint8
	Iterations int
}

// DecodeResult snapshots the active session.
func (c *Code) DecodeResult() (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.decoder == nil {
		return nil, ErrNoSession
	}
	return &Result{
		Status:     c.decoder.Status(),
		Beliefs:    c.decoder.Beliefs(),
		Correction: c.decoder.HardDecision(),
		Iterations: c.decoder.Iterations(),
	}, nil
}

// AutoDecode measures the combined syndrome, runs a full decode and
// returns the final snapshot. Equivalent to BeginDecode followed by
// stepping to termination, under one lock hold.
func (c *Code) AutoDecode(ctx context.Context, opts ...bp.Option) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	syn, err := syndrome.Compute(c.h, c.errs, syndrome.Combined)
	if err != nil {
		return nil, err
	}
	d, err := bp.New(c.h, syn, c.priors(), opts...)
	if err != nil {
		return nil, err
	}
	if _, err := d.Decode(ctx); err != nil {
		return nil, err
	}
	c.decoder = d
	return &Result{
		Status:     d.Status(),
		Beliefs:    d.Beliefs(),
		Correction: d.HardDecision(),
		Iterations: d.Iterations(),
	}, nil
}
