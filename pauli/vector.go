package pauli

import "fmt"

// Vector is an error-state register over n data qubits.
// A fresh Vector holds every qubit in |0>.
type Vector struct {
	states []State
}

// NewVector allocates a register of n qubits, all in |0>.
// n < 0 panics: vector length is a programming constant, not user input.
func NewVector(n int) *Vector {
	if n < 0 {
		panic(fmt.Sprintf("pauli: negative vector length %d", n))
	}
	return &Vector{states: make([]State, n)}
}

// Len returns the register size.
func (v *Vector) Len() int { return len(v.states) }

// At returns the state of qubit i.
func (v *Vector) At(i int) (State, error) {
	if i < 0 || i >= len(v.states) {
		return StateZero, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(v.states))
	}
	return v.states[i], nil
}

// Inject places error e on qubit i, overwriting any prior state.
func (v *Vector) Inject(i int, e ErrorType) error {
	if i < 0 || i >= len(v.states) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(v.states))
	}
	v.states[i] = e.state()
	return nil
}

// Cycle advances qubit i one step through the fixed state cycle and
// returns the new state.
func (v *Vector) Cycle(i int) (State, error) {
	if i < 0 || i >= len(v.states) {
		return StateZero, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(v.states))
	}
	v.states[i] = v.states[i].Next()
	return v.states[i], nil
}

// ClearAll resets every qubit to |0>.
func (v *Vector) ClearAll() {
	for i := range v.states {
		v.states[i] = StateZero
	}
}

// Weight counts the qubits carrying a Pauli error.
func (v *Vector) Weight() int {
	w := 0
	for _, s := range v.states {
		if s.IsError() {
			w++
		}
	}
	return w
}

// States returns a copy of the full register.
func (v *Vector) States() []State {
	out := make([]State, len(v.states))
	copy(out, v.states)
	return out
}

// Clone returns an independent copy of the vector.
func (v *Vector) Clone() *Vector {
	return &Vector{states: v.States()}
}
