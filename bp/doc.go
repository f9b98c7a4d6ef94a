// Package bp implements iterative belief-propagation decoding of a
// measured syndrome over a parity-check matrix.
//
// A Decoder holds one decode session: the matrix, the frozen syndrome,
// per-qubit error beliefs and an iteration counter. Each Step passes
// messages from checks to their variables and refreshes the beliefs;
// Decode drives Step until the beliefs settle below the tolerance, the
// iteration cap is reached, or the context is cancelled.
//
// Two update rules are available. The default heuristic rule treats a
// fired check as weak evidence of error on every qubit it touches and a
// quiet check as weak evidence of none, with fixed message strengths.
// The sum-product rule computes exact extrinsic check messages with the
// tanh product form. The heuristic matches interactive-visualization
// behavior; sum-product converges tighter on low-weight errors.
//
// Beliefs are clamped away from 0 and 1 so products never saturate.
// A terminal decoder refuses further steps with ErrDecodeFinished.
package bp
