// Package simulate ties the code pieces into one interactive session:
// a generated parity-check matrix, a per-qubit error register, syndrome
// extraction and belief-propagation decoding behind a single lock.
//
// A Code is safe for concurrent use. Reads hand out copies, so callers
// can hold results across further mutations. Any mutation of the error
// register invalidates an in-flight decode session; the next decode
// starts from the fresh syndrome.
//
// The session carries a cavity cooperativity. Decoder priors are the
// cavity error probability at that cooperativity, so a noisier cavity
// makes the decoder more willing to blame qubits.
package simulate
