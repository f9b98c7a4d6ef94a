// Package pauli models per-qubit error state for a register of data
// qubits.
//
// Each qubit carries one of five states: the computational basis states
// |0> and |1>, or one of the Pauli errors X, Z, Y. A Vector owns the
// register and supports targeted injection, cyclic stepping through the
// states (the interactive "click to advance" behavior), and bulk reset.
//
// Vectors are plain mutable values guarded by their owner; they carry no
// internal locking.
package pauli
