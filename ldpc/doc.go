// Package ldpc generates and represents sparse parity-check matrices for
// quantum low-density parity-check codes.
//
// A parity-check matrix H is an m×n binary matrix: rows are parity checks,
// columns are data qubits, and H[i][j]=1 means check i touches qubit j.
// The LDPC property bounds the row weight by a constant (CheckDegree, ≈6)
// independent of the code length, so syndrome extraction and iterative
// decoding stay cheap as codes grow.
//
// Construction model:
//
//   - Each check row selects CheckDegree distinct column indices uniformly
//     at random without replacement from a seeded source.
//   - A deterministic repair pass then reassigns single entries so that no
//     column is left isolated, while every row keeps exactly CheckDegree
//     ones. The column degree itself is only an emergent average (≈3);
//     this is a documented approximation, not an exact-regular-graph
//     construction.
//
// Matrices are immutable after generation. Identical parameters and seed
// always produce the identical matrix.
package ldpc
