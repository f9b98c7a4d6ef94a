package tanner

import (
	"context"
	"fmt"
)

// Intensity holds the per-node result of a syndrome propagation.
// Unreached nodes stay at zero; the source carries 1.
type Intensity struct {
	Qubits []float64
	Checks []float64
}

// PropagateSyndrome walks breadth-first from source (a qubit node) up
// to spread hops and assigns every reached node the intensity
// 1 - dist/spread. Cancellation is checked between BFS levels; on
// cancellation the partial result computed so far is discarded and the
// context error returned.
func (g *Graph) PropagateSyndrome(ctx context.Context, source, spread int) (*Intensity, error) {
	if source < 0 || source >= g.nQubits {
		return nil, fmt.Errorf("%w: qubit %d of %d", ErrIndexOutOfRange, source, g.nQubits)
	}
	if spread <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSpread, spread)
	}

	out := &Intensity{
		Qubits: make([]float64, g.nQubits),
		Checks: make([]float64, g.nChecks),
	}

	// Node ids: qubits are [0, nQubits), checks [nQubits, nQubits+nChecks).
	visited := make(map[int]struct{}, g.nQubits+g.nChecks)
	frontier := []int{source}
	visited[source] = struct{}{}
	out.Qubits[source] = 1

	for dist := 1; dist <= spread && len(frontier) > 0; dist++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		intensity := 1 - float64(dist)/float64(spread)
		var next []int
		for _, id := range frontier {
			for _, nb := range g.neighborIDs(id) {
				if _, seen := visited[nb]; seen {
					continue
				}
				visited[nb] = struct{}{}
				if nb < g.nQubits {
					out.Qubits[nb] = intensity
				} else {
					out.Checks[nb-g.nQubits] = intensity
				}
				next = append(next, nb)
			}
		}
		frontier = next
	}
	return out, nil
}

// neighborIDs returns the flat-id neighbors of flat node id.
func (g *Graph) neighborIDs(id int) []int {
	if id < g.nQubits {
		out := make([]int, len(g.qubitAdj[id]))
		for i, r := range g.qubitAdj[id] {
			out[i] = r + g.nQubits
		}
		return out
	}
	return g.checkAdj[id-g.nQubits]
}
