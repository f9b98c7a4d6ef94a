package tanner

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/btq-ag/qldpc/ldpc"
)

// Graph is an immutable bipartite Tanner graph. Qubit nodes and check
// nodes are indexed independently from zero.
type Graph struct {
	nQubits, nChecks int
	qubitAdj         [][]int // checks adjacent to each qubit, sorted
	checkAdj         [][]int // qubits adjacent to each check, sorted
}

// FromMatrix builds the Tanner graph of parity-check matrix h: qubit i
// and check r are adjacent iff h[r][i] = 1.
func FromMatrix(h *ldpc.Matrix) (*Graph, error) {
	if h == nil {
		return nil, ErrNilMatrix
	}
	g := &Graph{
		nQubits:  h.Cols(),
		nChecks:  h.Rows(),
		qubitAdj: make([][]int, h.Cols()),
		checkAdj: make([][]int, h.Rows()),
	}
	for q := 0; q < g.nQubits; q++ {
		sup, err := h.ColSupport(q)
		if err != nil {
			return nil, err
		}
		g.qubitAdj[q] = sup
	}
	for r := 0; r < g.nChecks; r++ {
		sup, err := h.RowSupport(r)
		if err != nil {
			return nil, err
		}
		g.checkAdj[r] = sup
	}
	return g, nil
}

// Random samples a graph from a construction preset: every qubit is
// wired to min(c.Degree(), nChecks) distinct random checks. A fixed
// seed reproduces the same graph.
func Random(nQubits, nChecks int, c Construction, seed int64) (*Graph, error) {
	if nQubits <= 0 || nChecks <= 0 {
		return nil, fmt.Errorf("%w: %d qubits, %d checks", ErrBadShape, nQubits, nChecks)
	}
	g := &Graph{
		nQubits:  nQubits,
		nChecks:  nChecks,
		qubitAdj: make([][]int, nQubits),
		checkAdj: make([][]int, nChecks),
	}
	rng := rand.New(rand.NewSource(seed))
	deg := c.Degree()
	if deg > nChecks {
		deg = nChecks
	}
	for q := 0; q < nQubits; q++ {
		perm := rng.Perm(nChecks)[:deg]
		sort.Ints(perm)
		g.qubitAdj[q] = perm
		for _, r := range perm {
			g.checkAdj[r] = append(g.checkAdj[r], q)
		}
	}
	return g, nil
}

// NumQubits returns the qubit node count.
func (g *Graph) NumQubits() int { return g.nQubits }

// NumChecks returns the check node count.
func (g *Graph) NumChecks() int { return g.nChecks }

// QubitNeighbors returns the checks adjacent to qubit q as a copy.
func (g *Graph) QubitNeighbors(q int) ([]int, error) {
	if q < 0 || q >= g.nQubits {
		return nil, fmt.Errorf("%w: qubit %d of %d", ErrIndexOutOfRange, q, g.nQubits)
	}
	return append([]int(nil), g.qubitAdj[q]...), nil
}

// CheckNeighbors returns the qubits adjacent to check r as a copy.
func (g *Graph) CheckNeighbors(r int) ([]int, error) {
	if r < 0 || r >= g.nChecks {
		return nil, fmt.Errorf("%w: check %d of %d", ErrIndexOutOfRange, r, g.nChecks)
	}
	return append([]int(nil), g.checkAdj[r]...), nil
}

// Degrees returns the per-qubit degree sequence as a copy.
func (g *Graph) Degrees() []int {
	out := make([]int, g.nQubits)
	for q, adj := range g.qubitAdj {
		out[q] = len(adj)
	}
	return out
}

// AverageDegree returns the mean qubit degree. An empty graph
// averages to zero.
func (g *Graph) AverageDegree() float64 {
	if g.nQubits == 0 {
		return 0
	}
	total := 0
	for _, adj := range g.qubitAdj {
		total += len(adj)
	}
	return float64(total) / float64(g.nQubits)
}

// QubitDegree returns the number of checks adjacent to qubit q.
func (g *Graph) QubitDegree(q int) (int, error) {
	if q < 0 || q >= g.nQubits {
		return 0, fmt.Errorf("%w: qubit %d of %d", ErrIndexOutOfRange, q, g.nQubits)
	}
	return len(g.qubitAdj[q]), nil
}
