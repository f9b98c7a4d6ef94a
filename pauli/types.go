package pauli

import "errors"

// ErrIndexOutOfRange indicates a qubit index outside the vector.
var ErrIndexOutOfRange = errors.New("pauli: qubit index out of range")

// State is the per-qubit error state.
type State uint8

// The five per-qubit states. The numeric values are part of the wire
// format used by circuit exports and must not be reordered.
const (
	StateZero State = iota // |0>
	StateOne               // |1>
	StateX                 // Pauli-X error
	StateZ                 // Pauli-Z error
	StateY                 // Pauli-Y error
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateZero:
		return "|0>"
	case StateOne:
		return "|1>"
	case StateX:
		return "X"
	case StateZ:
		return "Z"
	case StateY:
		return "Y"
	default:
		return "unknown"
	}
}

// IsError reports whether the state is one of the Pauli errors X, Z, Y.
func (s State) IsError() bool {
	return s == StateX || s == StateZ || s == StateY
}

// Next returns the successor in the fixed cycle
// |0> -> |1> -> X -> Z -> Y -> |0>.
func (s State) Next() State {
	if s >= StateY {
		return StateZero
	}
	return s + 1
}

// ErrorType is the closed injectable error enumeration. ErrorNone
// resets a qubit; the other members map onto the Pauli errors.
type ErrorType uint8

// Injectable error kinds, in transition order.
const (
	ErrorNone      ErrorType = iota // reset to |0>
	ErrorBitFlip                    // Pauli-X
	ErrorPhaseFlip                  // Pauli-Z
	ErrorBoth                       // Pauli-Y
)

// String implements fmt.Stringer.
func (e ErrorType) String() string {
	switch e {
	case ErrorNone:
		return "none"
	case ErrorBitFlip:
		return "bit-flip"
	case ErrorPhaseFlip:
		return "phase-flip"
	case ErrorBoth:
		return "both"
	default:
		return "unknown"
	}
}

// Next returns the successor in the fixed total order
// none -> bit-flip -> phase-flip -> both -> none.
func (e ErrorType) Next() ErrorType {
	if e >= ErrorBoth {
		return ErrorNone
	}
	return e + 1
}

// FromState maps a vector state back onto its error kind; the
// computational basis states map to ErrorNone.
func FromState(s State) ErrorType {
	switch s {
	case StateX:
		return ErrorBitFlip
	case StateZ:
		return ErrorPhaseFlip
	case StateY:
		return ErrorBoth
	default:
		return ErrorNone
	}
}

// state maps the error kind onto its vector state.
func (e ErrorType) state() State {
	switch e {
	case ErrorBitFlip:
		return StateX
	case ErrorPhaseFlip:
		return StateZ
	case ErrorBoth:
		return StateY
	default:
		return StateZero
	}
}
