// Package circuit turns placed circuit-builder components into error
// correction inputs.
//
// Components live on an integer grid: the X axis orders them in time,
// the Y axis is the wire lane. Data qubits and checks are matched by
// Manhattan distance, X gates mark errors on the lane they share with a
// data qubit, and the resulting parity matrix and error vector feed the
// syndrome computation. A Processor keeps the syndrome and correction
// history so a front end can replay a session.
//
// The correction step here is the coarse relaxation used for live
// feedback: it nudges all beliefs by the aggregate syndrome weight
// instead of passing per-check messages. Use package bp for real
// decoding.
package circuit
