package pauli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btq-ag/qldpc/pauli"
)

// TestState_Cycle walks the full five-step cycle back to |0>.
func TestState_Cycle(t *testing.T) {
	order := []pauli.State{
		pauli.StateZero, pauli.StateOne, pauli.StateX,
		pauli.StateZ, pauli.StateY, pauli.StateZero,
	}
	s := pauli.StateZero
	for i := 1; i < len(order); i++ {
		s = s.Next()
		assert.Equal(t, order[i], s)
	}
}

// TestState_IsError only X, Z, Y count as errors.
func TestState_IsError(t *testing.T) {
	assert.False(t, pauli.StateZero.IsError())
	assert.False(t, pauli.StateOne.IsError())
	assert.True(t, pauli.StateX.IsError())
	assert.True(t, pauli.StateZ.IsError())
	assert.True(t, pauli.StateY.IsError())
}

// TestErrorType_Cycle walks the four error kinds back to ErrorNone.
func TestErrorType_Cycle(t *testing.T) {
	order := []pauli.ErrorType{
		pauli.ErrorNone, pauli.ErrorBitFlip, pauli.ErrorPhaseFlip,
		pauli.ErrorBoth, pauli.ErrorNone,
	}
	e := pauli.ErrorNone
	for i := 1; i < len(order); i++ {
		e = e.Next()
		assert.Equal(t, order[i], e)
	}
}

// TestFromState maps every state to its error kind; the non-error
// states collapse to ErrorNone.
func TestFromState(t *testing.T) {
	assert.Equal(t, pauli.ErrorNone, pauli.FromState(pauli.StateZero))
	assert.Equal(t, pauli.ErrorNone, pauli.FromState(pauli.StateOne))
	assert.Equal(t, pauli.ErrorBitFlip, pauli.FromState(pauli.StateX))
	assert.Equal(t, pauli.ErrorPhaseFlip, pauli.FromState(pauli.StateZ))
	assert.Equal(t, pauli.ErrorBoth, pauli.FromState(pauli.StateY))
}

// TestVector_InjectNoneResets injecting ErrorNone clears a qubit back
// to |0> and drops it from the weight.
func TestVector_InjectNoneResets(t *testing.T) {
	v := pauli.NewVector(3)
	require.NoError(t, v.Inject(1, pauli.ErrorBoth))
	assert.Equal(t, 1, v.Weight())

	require.NoError(t, v.Inject(1, pauli.ErrorNone))
	s, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, pauli.StateZero, s)
	assert.Equal(t, 0, v.Weight())
}

// TestVector_InjectAndWeight injects each error kind and checks the
// register state and weight bookkeeping.
func TestVector_InjectAndWeight(t *testing.T) {
	v := pauli.NewVector(5)
	assert.Equal(t, 5, v.Len())
	assert.Equal(t, 0, v.Weight())

	require.NoError(t, v.Inject(0, pauli.ErrorBitFlip))
	require.NoError(t, v.Inject(2, pauli.ErrorPhaseFlip))
	require.NoError(t, v.Inject(4, pauli.ErrorBoth))

	s0, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, pauli.StateX, s0)
	s2, err := v.At(2)
	require.NoError(t, err)
	assert.Equal(t, pauli.StateZ, s2)
	s4, err := v.At(4)
	require.NoError(t, err)
	assert.Equal(t, pauli.StateY, s4)
	assert.Equal(t, 3, v.Weight())
}

// TestVector_CycleAdvances a cycled qubit steps exactly once.
func TestVector_CycleAdvances(t *testing.T) {
	v := pauli.NewVector(3)

	s, err := v.Cycle(1)
	require.NoError(t, err)
	assert.Equal(t, pauli.StateOne, s)

	s, err = v.Cycle(1)
	require.NoError(t, err)
	assert.Equal(t, pauli.StateX, s)
	assert.Equal(t, 1, v.Weight())
}

// TestVector_ClearAll resets every qubit to |0>.
func TestVector_ClearAll(t *testing.T) {
	v := pauli.NewVector(4)
	require.NoError(t, v.Inject(1, pauli.ErrorBoth))
	require.NoError(t, v.Inject(3, pauli.ErrorBitFlip))

	v.ClearAll()
	assert.Equal(t, 0, v.Weight())
	for i := 0; i < v.Len(); i++ {
		s, err := v.At(i)
		require.NoError(t, err)
		assert.Equal(t, pauli.StateZero, s)
	}
}

// TestVector_OutOfRange every mutator and accessor rejects bad indices.
func TestVector_OutOfRange(t *testing.T) {
	v := pauli.NewVector(2)

	_, err := v.At(2)
	assert.ErrorIs(t, err, pauli.ErrIndexOutOfRange)
	_, err = v.At(-1)
	assert.ErrorIs(t, err, pauli.ErrIndexOutOfRange)
	err = v.Inject(5, pauli.ErrorBitFlip)
	assert.ErrorIs(t, err, pauli.ErrIndexOutOfRange)
	_, err = v.Cycle(-3)
	assert.ErrorIs(t, err, pauli.ErrIndexOutOfRange)
}

// TestVector_CloneIsIndependent mutating a clone leaves the original
// untouched.
func TestVector_CloneIsIndependent(t *testing.T) {
	v := pauli.NewVector(3)
	require.NoError(t, v.Inject(0, pauli.ErrorBitFlip))

	cl := v.Clone()
	require.NoError(t, cl.Inject(1, pauli.ErrorPhaseFlip))

	s, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, pauli.StateZero, s)
	assert.Equal(t, 1, v.Weight())
	assert.Equal(t, 2, cl.Weight())
}
