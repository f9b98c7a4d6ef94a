// Package cavity models gate fidelity for cavity-mediated non-local
// gates as a function of cooperativity C = g^2/(kappa*gamma).
//
// The model is the high-cooperativity approximation: infidelity falls
// off as 1/C plus a residual technical error floor. GHZ preparation
// compounds the per-qubit error exponentially over the register, and
// gate duration shrinks as 1/sqrt(C). The practically interesting range
// is C between 1e3 and 1e6; inputs outside it are still evaluated, with
// results clamped to physical [0, 1].
//
// All functions are pure float math and never return errors.
package cavity
