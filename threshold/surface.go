package threshold

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Default axis resolutions and bounds, matching the interactive ranges.
const (
	DefaultResolution = 50

	minPhysicalRate = 0.001
	maxPhysicalRate = 0.1
	minDistance     = 10.0
	maxDistance     = 100.0
	minCodeLength   = 100.0
	maxCodeLength   = 1000.0
	minRate         = 0.1
	maxRate         = 0.9

	// minScalingDistance floors the scaling surface so every family
	// reports a usable code.
	minScalingDistance = 5.0
)

// SurfaceData is a meshgrid triple. X varies along columns, Y along
// rows, and Z holds the modeled value at each (row, col) node.
type SurfaceData struct {
	X, Y, Z *mat.Dense
}

// DefaultPRange returns the standard physical-error-rate axis,
// DefaultResolution points over [0.001, 0.1].
func DefaultPRange() []float64 {
	return floats.Span(make([]float64, DefaultResolution), minPhysicalRate, maxPhysicalRate)
}

// DefaultDRange returns the standard code-distance axis,
// DefaultResolution points over [10, 100].
func DefaultDRange() []float64 {
	return floats.Span(make([]float64, DefaultResolution), minDistance, maxDistance)
}

// DefaultNRange returns the standard code-length axis,
// DefaultResolution points over [100, 1000].
func DefaultNRange() []float64 {
	return floats.Span(make([]float64, DefaultResolution), minCodeLength, maxCodeLength)
}

// DefaultRRange returns the standard encoding-rate axis,
// DefaultResolution points over [0.1, 0.9].
func DefaultRRange() []float64 {
	return floats.Span(make([]float64, DefaultResolution), minRate, maxRate)
}

// Option tunes surface evaluation.
type Option func(*options)

type options struct {
	cavity float64
	hasCav bool
}

// WithCooperativity attenuates the logical rate by the cavity factor
// max(0.1, 1-1/c). Without this option the model is evaluated bare.
func WithCooperativity(c float64) Option {
	return func(o *options) {
		o.cavity = c
		o.hasCav = true
	}
}

// LogicalErrorRate evaluates the threshold model at a single point:
// physical rate p, code distance d.
//
// Below the family threshold the logical rate is suppressed as
// exp(-exponent(d) * (thr-p)/thr); at or above it it grows as
// sqrt(p/thr). WithCooperativity scales the result by the cavity
// factor.
func LogicalErrorRate(f Family, p, d float64, opts ...Option) (float64, error) {
	if !f.valid() {
		return 0, ErrUnknownFamily
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	thr := f.Threshold()
	var z float64
	if p < thr {
		z = math.Exp(-f.exponent(d) * (thr - p) / thr)
	} else {
		z = math.Sqrt(p / thr)
	}
	if o.hasCav {
		z *= cavityFactor(o.cavity)
	}
	return z, nil
}

// ThresholdSurface evaluates the logical-error-rate surface over the
// meshgrid of pRange (columns) and dRange (rows).
func ThresholdSurface(f Family, pRange, dRange []float64, opts ...Option) (*SurfaceData, error) {
	if !f.valid() {
		return nil, ErrUnknownFamily
	}
	if len(pRange) == 0 || len(dRange) == 0 {
		return nil, ErrBadRange
	}

	rows, cols := len(dRange), len(pRange)
	s := &SurfaceData{
		X: mat.NewDense(rows, cols, nil),
		Y: mat.NewDense(rows, cols, nil),
		Z: mat.NewDense(rows, cols, nil),
	}
	for i, d := range dRange {
		for j, p := range pRange {
			z, err := LogicalErrorRate(f, p, d, opts...)
			if err != nil {
				return nil, err
			}
			s.X.Set(i, j, p)
			s.Y.Set(i, j, d)
			s.Z.Set(i, j, z)
		}
	}
	return s, nil
}

// ScalingSurface evaluates achievable code distance over the meshgrid
// of nRange (columns) and rRange (rows). Distances are floored at
// minScalingDistance.
func ScalingSurface(f Family, nRange, rRange []float64) (*SurfaceData, error) {
	if !f.valid() {
		return nil, ErrUnknownFamily
	}
	if len(nRange) == 0 || len(rRange) == 0 {
		return nil, ErrBadRange
	}

	rows, cols := len(rRange), len(nRange)
	s := &SurfaceData{
		X: mat.NewDense(rows, cols, nil),
		Y: mat.NewDense(rows, cols, nil),
		Z: mat.NewDense(rows, cols, nil),
	}
	for i, r := range rRange {
		for j, n := range nRange {
			var z float64
			switch f {
			case Surface:
				z = math.Sqrt(n) * (1.1 - r) * 0.5
			case HypergraphProduct:
				z = math.Sqrt(n*math.Log(n+1)) * (1.1 - r) * 0.3
			default:
				z = n * 0.15 * (1.2 - r)
			}
			s.X.Set(i, j, n)
			s.Y.Set(i, j, r)
			s.Z.Set(i, j, math.Max(z, minScalingDistance))
		}
	}
	return s, nil
}

// DistanceScaling returns companion curves over nRange: code lengths N,
// logical qubit counts K and encoding rates R under the family's
// asymptotic law.
func DistanceScaling(f Family, nRange []float64) (n, k, r []float64, err error) {
	if !f.valid() {
		return nil, nil, nil, ErrUnknownFamily
	}
	if len(nRange) == 0 {
		return nil, nil, nil, ErrBadRange
	}

	n = append([]float64(nil), nRange...)
	k = make([]float64, len(nRange))
	r = make([]float64, len(nRange))
	for i, length := range nRange {
		r[i] = f.Rate(length)
		k[i] = math.Max(1, math.Floor(r[i]*length))
	}
	return n, k, r, nil
}

// cavityFactor is the cooperativity attenuation max(0.1, 1-1/C).
func cavityFactor(c float64) float64 {
	if c <= 0 {
		return 0.1
	}
	return math.Max(0.1, 1-1/c)
}
