package circuit

import (
	"gonum.org/v1/gonum/floats"
)

// Processor defaults.
const (
	// DefaultConnectionDistance is the Manhattan radius within which a
	// check adopts a data qubit.
	DefaultConnectionDistance = 2

	// DefaultMaxIterations caps the correction relaxation rounds.
	DefaultMaxIterations = 10

	// DefaultTolerance is the L2 convergence threshold of the
	// relaxation.
	DefaultTolerance = 1e-6
)

// Processor derives syndromes and live corrections from placed
// components. Not safe for concurrent use.
type Processor struct {
	// ConnectionDistance is the check-to-qubit adoption radius.
	ConnectionDistance int

	// MaxIterations and Tolerance control the correction relaxation.
	MaxIterations int
	Tolerance     float64

	syndromes   [][]uint8
	corrections []Correction
}

// NewProcessor returns a Processor with the documented defaults.
func NewProcessor() *Processor {
	return &Processor{
		ConnectionDistance: DefaultConnectionDistance,
		MaxIterations:      DefaultMaxIterations,
		Tolerance:          DefaultTolerance,
	}
}

// Correction is the result of one relaxation pass.
type Correction struct {
	// Correction flags the qubits whose final belief exceeds 1/2.
	Correction []uint8

	// Beliefs holds the final per-qubit error beliefs.
	Beliefs []float64

	// Iterations is the number of completed relaxation rounds.
	Iterations int

	// SyndromeWeight is the number of fired checks that drove the pass.
	SyndromeWeight int
}

// ParityMatrix derives the binary check-by-data matrix from the placed
// components. Checks adopt every data qubit within ConnectionDistance;
// ancillas stand in as checks when no dedicated parity checks exist.
// When the distance rule yields no connections at all, a diagonal
// band pattern keeps the matrix usable.
func (p *Processor) ParityMatrix(components []Component) ([][]uint8, error) {
	checks, data, err := splitComponents(components)
	if err != nil {
		return nil, err
	}

	m := make([][]uint8, len(checks))
	connected := false
	for i, chk := range checks {
		m[i] = make([]uint8, len(data))
		for j, dq := range data {
			if chk.Position.Manhattan(dq.Position) <= p.ConnectionDistance {
				m[i][j] = 1
				connected = true
			}
		}
	}
	if !connected {
		for i := 0; i < len(checks) && i < len(data); i++ {
			m[i][i] = 1
			if i+1 < len(data) {
				m[i][i+1] = 1
			}
		}
	}
	return m, nil
}

// ErrorVector derives the binary error pattern: a data qubit is in
// error when an X gate shares its lane.
func (p *Processor) ErrorVector(components []Component) ([]uint8, error) {
	_, data, err := splitComponents(components)
	if err != nil {
		return nil, err
	}

	vec := make([]uint8, len(data))
	for _, c := range components {
		if c.Type != TypeXGate {
			continue
		}
		for j, dq := range data {
			if dq.Position.Lane() == c.Position.Lane() {
				vec[j] = 1
				break
			}
		}
	}
	return vec, nil
}

// Syndrome computes the parity of the current error pattern under the
// derived matrix and appends it to the history.
func (p *Processor) Syndrome(components []Component) ([]uint8, error) {
	m, err := p.ParityMatrix(components)
	if err != nil {
		return nil, err
	}
	vec, err := p.ErrorVector(components)
	if err != nil {
		return nil, err
	}

	syn := make([]uint8, len(m))
	for i, row := range m {
		var parity uint8
		for j, bit := range row {
			parity ^= bit & vec[j]
		}
		syn[i] = parity
	}
	p.syndromes = append(p.syndromes, append([]uint8(nil), syn...))
	return syn, nil
}

// Correct runs the live-feedback relaxation over nData qubits. Every
// belief starts at 1/2 and is nudged by the aggregate syndrome weight:
// up when more than half the checks fired, down otherwise, clipped to
// [0.01, 0.99]. The pass stops when the L2 belief change falls under
// Tolerance or MaxIterations is reached.
func (p *Processor) Correct(syn []uint8, nData int) (*Correction, error) {
	if len(syn) == 0 {
		return nil, ErrEmptySyndrome
	}
	if nData <= 0 {
		return nil, ErrNoDataQubits
	}

	weight := 0
	for _, bit := range syn {
		if bit != 0 {
			weight++
		}
	}
	fraction := float64(weight) / float64(len(syn))

	beliefs := make([]float64, nData)
	prev := make([]float64, nData)
	for i := range beliefs {
		beliefs[i] = 0.5
	}

	iter := 0
	for ; iter < p.MaxIterations; iter++ {
		copy(prev, beliefs)
		for i := range beliefs {
			if fraction > 0.5 {
				beliefs[i] = min(0.9, beliefs[i]+fraction*0.2)
			} else {
				beliefs[i] = max(0.1, beliefs[i]-(1-fraction)*0.1)
			}
			beliefs[i] = min(0.99, max(0.01, beliefs[i]))
		}
		if floats.Distance(beliefs, prev, 2) < p.Tolerance {
			iter++
			break
		}
	}

	c := &Correction{
		Correction:     make([]uint8, nData),
		Beliefs:        beliefs,
		Iterations:     iter,
		SyndromeWeight: weight,
	}
	for i, b := range beliefs {
		if b > 0.5 {
			c.Correction[i] = 1
		}
	}
	hist := Correction{
		Correction:     append([]uint8(nil), c.Correction...),
		Beliefs:        append([]float64(nil), c.Beliefs...),
		Iterations:     c.Iterations,
		SyndromeWeight: c.SyndromeWeight,
	}
	p.corrections = append(p.corrections, hist)
	return c, nil
}

// SyndromeHistory returns a copy of all syndromes computed so far.
func (p *Processor) SyndromeHistory() [][]uint8 {
	out := make([][]uint8, len(p.syndromes))
	for i, s := range p.syndromes {
		out[i] = append([]uint8(nil), s...)
	}
	return out
}

// Corrections returns a copy of all correction results so far.
func (p *Processor) Corrections() []Correction {
	out := make([]Correction, len(p.corrections))
	for i, c := range p.corrections {
		out[i] = c
		out[i].Correction = append([]uint8(nil), c.Correction...)
		out[i].Beliefs = append([]float64(nil), c.Beliefs...)
	}
	return out
}

// ClearHistory drops the accumulated syndromes and corrections.
func (p *Processor) ClearHistory() {
	p.syndromes = nil
	p.corrections = nil
}

// splitComponents partitions components into checks and data qubits.
// Ancillas serve as checks when no dedicated parity checks are placed.
func splitComponents(components []Component) (checks, data []Component, err error) {
	var ancillas []Component
	for _, c := range components {
		switch c.Type {
		case TypeParityCheck:
			checks = append(checks, c)
		case TypeAncillaQubit:
			ancillas = append(ancillas, c)
		case TypeDataQubit:
			data = append(data, c)
		}
	}
	if len(checks) == 0 {
		checks = ancillas
	}
	if len(data) == 0 {
		return nil, nil, ErrNoDataQubits
	}
	if len(checks) == 0 {
		return nil, nil, ErrNoChecks
	}
	return checks, data, nil
}
