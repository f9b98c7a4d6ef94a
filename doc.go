// Package qldpc is the root of a quantum LDPC error-correction toolkit:
// parity-check matrix generation, Pauli error registers, syndrome
// extraction, belief-propagation decoding, cavity-mediated gate fidelity
// models and threshold surfaces for comparative code-family analysis.
//
// The packages compose bottom-up:
//
//	ldpc      - seeded sparse parity-check matrix generation
//	pauli     - per-qubit error state registers
//	syndrome  - H*e mod 2 over combined or CSS bases
//	bp        - iterative belief-propagation decoding
//	cavity    - cooperativity-based gate fidelity model
//	threshold - logical-error-rate and distance-scaling surfaces
//	tanner    - bipartite graph views and syndrome propagation
//	circuit   - component grids to parity matrices and corrections
//	simulate  - the locked interactive session facade
//	config    - YAML settings with validation
//
// Start with simulate for an end-to-end session, or use the algorithm
// packages directly for batch analysis.
package qldpc
