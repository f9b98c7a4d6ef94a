package circuit_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btq-ag/qldpc/circuit"
)

// layout places n data qubits on lanes 0..n-1 at x=0 and m parity
// checks at x=1 on every other lane.
func layout(nData, nChecks int) []circuit.Component {
	var out []circuit.Component
	for i := 0; i < nData; i++ {
		out = append(out, circuit.Component{
			Type:     circuit.TypeDataQubit,
			Position: circuit.Position{X: 0, Y: i},
		})
	}
	for i := 0; i < nChecks; i++ {
		out = append(out, circuit.Component{
			Type:     circuit.TypeParityCheck,
			Position: circuit.Position{X: 1, Y: 2 * i},
		})
	}
	return out
}

// TestParityMatrix_DistanceRule a check adopts exactly the data qubits
// within the Manhattan radius.
func TestParityMatrix_DistanceRule(t *testing.T) {
	p := circuit.NewProcessor()
	comps := layout(5, 2)

	m, err := p.ParityMatrix(comps)
	require.NoError(t, err)
	require.Len(t, m, 2)
	require.Len(t, m[0], 5)

	// Check 0 sits at (1,0): distance to data qubit on lane k is 1+k.
	assert.Equal(t, []uint8{1, 1, 0, 0, 0}, m[0])
	// Check 1 sits at (1,2): distances 3,2,1,2,3.
	assert.Equal(t, []uint8{0, 1, 1, 1, 0}, m[1])
}

// TestParityMatrix_DiagonalFallback when every check is too far away,
// the diagonal band pattern takes over.
func TestParityMatrix_DiagonalFallback(t *testing.T) {
	p := circuit.NewProcessor()
	comps := []circuit.Component{
		{Type: circuit.TypeDataQubit, Position: circuit.Position{X: 0, Y: 0}},
		{Type: circuit.TypeDataQubit, Position: circuit.Position{X: 0, Y: 1}},
		{Type: circuit.TypeDataQubit, Position: circuit.Position{X: 0, Y: 2}},
		{Type: circuit.TypeParityCheck, Position: circuit.Position{X: 50, Y: 50}},
		{Type: circuit.TypeParityCheck, Position: circuit.Position{X: 60, Y: 60}},
	}

	m, err := p.ParityMatrix(comps)
	require.NoError(t, err)
	assert.Equal(t, []uint8{1, 1, 0}, m[0])
	assert.Equal(t, []uint8{0, 1, 1}, m[1])
}

// TestParityMatrix_AncillaFallback ancillas act as checks when no
// dedicated parity checks are placed.
func TestParityMatrix_AncillaFallback(t *testing.T) {
	p := circuit.NewProcessor()
	comps := []circuit.Component{
		{Type: circuit.TypeDataQubit, Position: circuit.Position{X: 0, Y: 0}},
		{Type: circuit.TypeAncillaQubit, Position: circuit.Position{X: 1, Y: 0}},
	}

	m, err := p.ParityMatrix(comps)
	require.NoError(t, err)
	require.Len(t, m, 1)
	assert.Equal(t, []uint8{1}, m[0])
}

// TestParityMatrix_Errors missing data qubits or checks are rejected.
func TestParityMatrix_Errors(t *testing.T) {
	p := circuit.NewProcessor()

	_, err := p.ParityMatrix([]circuit.Component{
		{Type: circuit.TypeParityCheck, Position: circuit.Position{X: 0, Y: 0}},
	})
	assert.ErrorIs(t, err, circuit.ErrNoDataQubits)

	_, err = p.ParityMatrix([]circuit.Component{
		{Type: circuit.TypeDataQubit, Position: circuit.Position{X: 0, Y: 0}},
	})
	assert.ErrorIs(t, err, circuit.ErrNoChecks)
}

// TestErrorVector_XGateByLane an X gate marks the data qubit sharing
// its lane, and lanes without gates stay clean.
func TestErrorVector_XGateByLane(t *testing.T) {
	p := circuit.NewProcessor()
	comps := append(layout(4, 2), circuit.Component{
		Type:     circuit.TypeXGate,
		Position: circuit.Position{X: 3, Y: 2},
	})

	vec, err := p.ErrorVector(comps)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 0, 1, 0}, vec)
}

// TestSyndrome_EndToEnd derives matrix and vector and checks the mod-2
// product, and the syndrome lands in the history.
func TestSyndrome_EndToEnd(t *testing.T) {
	p := circuit.NewProcessor()
	comps := append(layout(5, 2), circuit.Component{
		Type:     circuit.TypeXGate,
		Position: circuit.Position{X: 3, Y: 1},
	})

	syn, err := p.Syndrome(comps)
	require.NoError(t, err)
	// Error on qubit 1 touches both checks (rows [1,1,0,0,0], [0,1,1,1,0]).
	assert.Equal(t, []uint8{1, 1}, syn)

	hist := p.SyndromeHistory()
	require.Len(t, hist, 1)
	assert.Equal(t, syn, hist[0])
}

// TestCorrect_HeavySyndrome with most checks fired, beliefs ramp up to
// the 0.9 ceiling and every qubit gets flagged.
func TestCorrect_HeavySyndrome(t *testing.T) {
	p := circuit.NewProcessor()

	c, err := p.Correct([]uint8{1, 1, 1, 1}, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, c.SyndromeWeight)
	assert.Equal(t, []uint8{1, 1, 1}, c.Correction)
	for _, b := range c.Beliefs {
		assert.InDelta(t, 0.9, b, 1e-12)
	}
	assert.LessOrEqual(t, c.Iterations, circuit.DefaultMaxIterations)
}

// TestCorrect_QuietSyndrome with most checks quiet, beliefs decay to
// the 0.1 floor and nothing is flagged.
func TestCorrect_QuietSyndrome(t *testing.T) {
	p := circuit.NewProcessor()

	c, err := p.Correct([]uint8{1, 0, 0, 0}, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, c.SyndromeWeight)
	assert.Equal(t, []uint8{0, 0, 0}, c.Correction)
	for _, b := range c.Beliefs {
		assert.InDelta(t, 0.1, b, 1e-12)
	}
}

// TestCorrect_HistoryIsolated mutating a returned correction, or a
// snapshot from Corrections, leaves the recorded history untouched.
func TestCorrect_HistoryIsolated(t *testing.T) {
	p := circuit.NewProcessor()

	c, err := p.Correct([]uint8{1, 1, 1, 1}, 3)
	require.NoError(t, err)
	c.Correction[0] = 0
	c.Beliefs[0] = -1
	c.Iterations = 99

	hist := p.Corrections()
	require.Len(t, hist, 1)
	assert.Equal(t, []uint8{1, 1, 1}, hist[0].Correction)
	assert.InDelta(t, 0.9, hist[0].Beliefs[0], 1e-12)
	assert.LessOrEqual(t, hist[0].Iterations, circuit.DefaultMaxIterations)

	hist[0].Correction[1] = 0
	again := p.Corrections()
	assert.Equal(t, []uint8{1, 1, 1}, again[0].Correction)
}

// TestCorrect_Validation empty syndromes and missing qubits are
// rejected.
func TestCorrect_Validation(t *testing.T) {
	p := circuit.NewProcessor()

	_, err := p.Correct(nil, 3)
	assert.ErrorIs(t, err, circuit.ErrEmptySyndrome)

	_, err = p.Correct([]uint8{1}, 0)
	assert.ErrorIs(t, err, circuit.ErrNoDataQubits)
}

// TestClearHistory drops accumulated syndromes and corrections.
func TestClearHistory(t *testing.T) {
	p := circuit.NewProcessor()
	_, err := p.Syndrome(layout(3, 1))
	require.NoError(t, err)
	_, err = p.Correct([]uint8{1}, 3)
	require.NoError(t, err)

	p.ClearHistory()
	assert.Empty(t, p.SyndromeHistory())
	assert.Empty(t, p.Corrections())
}

// TestLayout_JSONRoundTrip saved layouts survive marshal and unmarshal
// with optional lanes intact.
func TestLayout_JSONRoundTrip(t *testing.T) {
	ctrl, tgt := 0, 1
	in := circuit.Layout{
		View: circuit.ViewLDPCTanner,
		Components: []circuit.Component{
			{Type: circuit.TypeDataQubit, Position: circuit.Position{X: 0, Y: 0}},
			{
				Type:        circuit.TypeCNOTGate,
				Position:    circuit.Position{X: 2, Y: 0},
				ControlLane: &ctrl,
				TargetLane:  &tgt,
			},
		},
	}

	raw, err := json.Marshal(in)
	require.NoError(t, err)

	var out circuit.Layout
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
}
