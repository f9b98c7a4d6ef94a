// Package syndrome computes parity-check syndromes from an error vector.
//
// A syndrome bit s[r] is the mod-2 count of triggering errors among the
// qubits in row r's support. Which errors trigger depends on the basis:
// Combined counts any Pauli error, BasisX counts bit-flip components
// (X and Y), BasisZ counts phase-flip components (Z and Y). Y errors
// therefore trigger both CSS sectors, matching the Pauli algebra.
//
// All functions are pure: they read the matrix and vector and allocate a
// fresh syndrome slice.
package syndrome
