package cavity

import "math"

// Model defaults.
const (
	// DefaultResidualError is the residual technical error floor added on
	// top of the 1/C contribution.
	DefaultResidualError = 0.001

	// DefaultBaseGateTime is the two-qubit gate duration in microseconds
	// at the C = 1e3 reference point.
	DefaultBaseGateTime = 1.0

	// ThresholdFidelity is the fault-tolerance target used by callers to
	// classify a cooperativity as sufficient.
	ThresholdFidelity = 0.99
)

// Fidelity returns the two-qubit gate fidelity 1 - 1/C - residual,
// clamped to [0, 1]. Non-positive C is treated as a fully mixed outcome
// and returns 0.
func Fidelity(c, residual float64) float64 {
	if c <= 0 {
		return 0
	}
	return clamp01(1 - 1/c - residual)
}

// ErrorProbability is the complement of Fidelity.
func ErrorProbability(c, residual float64) float64 {
	return 1 - Fidelity(c, residual)
}

// GHZFidelity returns the preparation fidelity of an n-qubit GHZ state
// in the linearized small-error model,
// 1 - (n-1)/(2C) - (n-1)*residual, clamped to [0, 1]. Non-positive C
// or n returns 0.
func GHZFidelity(c, residual float64, n int) float64 {
	if c <= 0 || n <= 0 {
		return 0
	}
	return clamp01(1 - float64(n-1)/(2*c) - float64(n-1)*residual)
}

// GHZCompoundFidelity is the compounding variant exp(-n*(1/C+residual)),
// which stays accurate when the per-qubit error is no longer small.
func GHZCompoundFidelity(c, residual float64, n int) float64 {
	if c <= 0 || n <= 0 {
		return 0
	}
	return clamp01(math.Exp(-float64(n) * (1/c + residual)))
}

// GateTime returns the two-qubit gate duration in microseconds,
// base/sqrt(C/1e3). Higher cooperativity buys faster gates.
// Non-positive C returns +Inf.
func GateTime(c float64) float64 {
	if c <= 0 {
		return math.Inf(1)
	}
	return DefaultBaseGateTime / math.Sqrt(c/1e3)
}

// PrepTime returns the time in microseconds to prepare an n-qubit GHZ
// state with a tree protocol of ~log2(n) parallel entangling rounds.
func PrepTime(c float64, n int) float64 {
	if n <= 1 {
		return 0
	}
	return GateTime(c) * math.Log2(float64(n))
}

// FaultTolerant reports whether the gate fidelity at cooperativity c
// clears the fault-tolerance target.
func FaultTolerant(c, residual float64) bool {
	return Fidelity(c, residual) >= ThresholdFidelity
}

func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}
