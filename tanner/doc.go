// Package tanner builds bipartite Tanner graphs from parity-check
// matrices and simulates syndrome propagation over them.
//
// A Graph has one node per data qubit and one per parity check, with an
// edge wherever the matrix has a one. Graphs can also be sampled
// directly from a construction preset: surface-like (degree 4),
// hypergraph product (degree 6) or expander Tanner (degree 8), each
// qubit wired to that many distinct random checks.
//
// PropagateSyndrome walks the graph breadth-first from a triggered
// qubit and assigns each reached node an intensity that decays linearly
// with hop distance, the quantity an interactive front end maps to
// color. The walk honors context cancellation between BFS levels.
package tanner
