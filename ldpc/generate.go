package ldpc

import (
	"fmt"
	"math/rand"
)

// Generate builds an nChecks×nData binary parity-check matrix where every
// row has exactly opts.CheckDegree ones and every column has at least one.
//
// Generation is deterministic for a fixed seed: each row samples its
// column set independently, then a repair pass re-homes one entry per
// isolated column, preserving exact row weights.
//
// Errors:
//   - ErrBadShape when nChecks or nData is not positive;
//   - ErrInfeasibleDegree when a row cannot hold CheckDegree distinct
//     columns, or nChecks*CheckDegree < nData.
func Generate(nChecks, nData int, opts ...Option) (*Matrix, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if nChecks <= 0 || nData <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, nChecks, nData)
	}
	if o.CheckDegree < 1 || o.CheckDegree > nData {
		return nil, fmt.Errorf("%w: degree %d over %d columns", ErrInfeasibleDegree, o.CheckDegree, nData)
	}
	if nChecks*o.CheckDegree < nData {
		return nil, fmt.Errorf("%w: %d entries cannot cover %d columns", ErrInfeasibleDegree, nChecks*o.CheckDegree, nData)
	}

	rng := rand.New(rand.NewSource(o.Seed))
	data := make([]uint8, nChecks*nData)
	for r := 0; r < nChecks; r++ {
		for _, c := range sampleColumns(rng, nData, o.CheckDegree) {
			data[r*nData+c] = 1
		}
	}
	repairIsolatedColumns(data, nChecks, nData)
	return fromBits(nChecks, nData, data), nil
}

// GenerateCSS builds a CSS pair (HX, HZ) of independent parity-check
// matrices with identical shape and degree. HZ draws from seed+1 so the
// two sectors differ while remaining reproducible.
func GenerateCSS(nChecks, nData int, opts ...Option) (hx, hz *Matrix, err error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	hx, err = Generate(nChecks, nData, WithCheckDegree(o.CheckDegree), WithSeed(o.Seed))
	if err != nil {
		return nil, nil, err
	}
	hz, err = Generate(nChecks, nData, WithCheckDegree(o.CheckDegree), WithSeed(o.Seed+1))
	if err != nil {
		return nil, nil, err
	}
	return hx, hz, nil
}

// sampleColumns draws k distinct column indices from [0, n).
func sampleColumns(rng *rand.Rand, n, k int) []int {
	picked := make(map[int]struct{}, k)
	cols := make([]int, 0, k)
	for len(cols) < k {
		c := rng.Intn(n)
		if _, dup := picked[c]; dup {
			continue
		}
		picked[c] = struct{}{}
		cols = append(cols, c)
	}
	return cols
}

// repairIsolatedColumns guarantees every column holds at least one entry.
// For each empty column it scans rows for a donor entry whose own column
// has weight >= 2, moves that entry over, and keeps row weights intact.
// The scan order is deterministic, so repairs do not disturb seed
// reproducibility.
func repairIsolatedColumns(data []uint8, rows, cols int) {
	weight := make([]int, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if data[r*cols+c] == 1 {
				weight[c]++
			}
		}
	}
	for c := 0; c < cols; c++ {
		if weight[c] > 0 {
			continue
		}
	search:
		for r := 0; r < rows; r++ {
			for donor := 0; donor < cols; donor++ {
				if data[r*cols+donor] == 1 && weight[donor] >= 2 {
					data[r*cols+donor] = 0
					data[r*cols+c] = 1
					weight[donor]--
					weight[c]++
					break search
				}
			}
		}
	}
}
