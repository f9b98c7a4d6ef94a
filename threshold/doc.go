// Package threshold models logical error rates and distance scaling for
// three quantum LDPC code families.
//
// Each family carries a documented closed-form approximation: Surface
// codes reach distance sqrt(n) with a 0.5% threshold, hypergraph product
// codes sqrt(n log n) with 1%, and quantum Tanner codes linear distance
// with 3%. Below its threshold a family suppresses logical errors
// exponentially in the scaling exponent; above it the logical rate grows
// as sqrt(p/threshold). WithCooperativity optionally scales the whole
// surface by the cavity factor max(0.1, 1-1/C).
//
// All functions are pure; grids come back as gonum mat.Dense so callers
// can feed them straight into numeric tooling.
package threshold
