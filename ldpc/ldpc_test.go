package ldpc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btq-ag/qldpc/ldpc"
)

// TestGenerate_DefaultShape verifies the canonical 12x21 construction:
// every row carries exactly six ones and no column is left isolated.
func TestGenerate_DefaultShape(t *testing.T) {
	h, err := ldpc.Generate(12, 21)
	require.NoError(t, err)

	assert.Equal(t, 12, h.Rows())
	assert.Equal(t, 21, h.Cols())
	for r := 0; r < h.Rows(); r++ {
		w, err := h.RowWeight(r)
		require.NoError(t, err)
		assert.Equal(t, 6, w, "row %d weight", r)
	}
	for c := 0; c < h.Cols(); c++ {
		w, err := h.ColWeight(c)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, w, 1, "column %d isolated", c)
	}
}

// TestGenerate_SeedDeterminism checks that equal seeds reproduce the
// identical matrix and a different seed does not.
func TestGenerate_SeedDeterminism(t *testing.T) {
	a, err := ldpc.Generate(12, 21, ldpc.WithSeed(42))
	require.NoError(t, err)
	b, err := ldpc.Generate(12, 21, ldpc.WithSeed(42))
	require.NoError(t, err)
	c, err := ldpc.Generate(12, 21, ldpc.WithSeed(7))
	require.NoError(t, err)

	assert.Equal(t, flatten(t, a), flatten(t, b))
	assert.NotEqual(t, flatten(t, a), flatten(t, c))
}

// TestGenerate_BadShape covers non-positive dimensions.
func TestGenerate_BadShape(t *testing.T) {
	_, err := ldpc.Generate(0, 21)
	assert.ErrorIs(t, err, ldpc.ErrBadShape)

	_, err = ldpc.Generate(12, -1)
	assert.ErrorIs(t, err, ldpc.ErrBadShape)
}

// TestGenerate_InfeasibleDegree covers a degree wider than the matrix
// and a total entry count too small to cover every column.
func TestGenerate_InfeasibleDegree(t *testing.T) {
	_, err := ldpc.Generate(12, 5, ldpc.WithCheckDegree(6))
	assert.ErrorIs(t, err, ldpc.ErrInfeasibleDegree)

	_, err = ldpc.Generate(2, 21, ldpc.WithCheckDegree(6))
	assert.ErrorIs(t, err, ldpc.ErrInfeasibleDegree)

	_, err = ldpc.Generate(12, 21, ldpc.WithCheckDegree(0))
	assert.ErrorIs(t, err, ldpc.ErrInfeasibleDegree)
}

// TestMatrix_Accessors exercises At, supports and weights against each
// other for consistency.
func TestMatrix_Accessors(t *testing.T) {
	h, err := ldpc.Generate(6, 12, ldpc.WithCheckDegree(4), ldpc.WithSeed(1))
	require.NoError(t, err)

	for r := 0; r < h.Rows(); r++ {
		sup, err := h.RowSupport(r)
		require.NoError(t, err)
		for _, c := range sup {
			v, err := h.At(r, c)
			require.NoError(t, err)
			assert.Equal(t, uint8(1), v)
		}
		w, err := h.RowWeight(r)
		require.NoError(t, err)
		assert.Len(t, sup, w)
	}
	for c := 0; c < h.Cols(); c++ {
		sup, err := h.ColSupport(c)
		require.NoError(t, err)
		for _, r := range sup {
			v, err := h.At(r, c)
			require.NoError(t, err)
			assert.Equal(t, uint8(1), v)
		}
	}
}

// TestMatrix_OutOfBounds verifies every accessor rejects bad indices.
func TestMatrix_OutOfBounds(t *testing.T) {
	h, err := ldpc.Generate(6, 12, ldpc.WithCheckDegree(4))
	require.NoError(t, err)

	_, err = h.At(-1, 0)
	assert.ErrorIs(t, err, ldpc.ErrIndexOutOfBounds)
	_, err = h.At(0, 12)
	assert.ErrorIs(t, err, ldpc.ErrIndexOutOfBounds)
	_, err = h.RowSupport(6)
	assert.ErrorIs(t, err, ldpc.ErrIndexOutOfBounds)
	_, err = h.ColSupport(-1)
	assert.ErrorIs(t, err, ldpc.ErrIndexOutOfBounds)
	_, err = h.RowWeight(99)
	assert.ErrorIs(t, err, ldpc.ErrIndexOutOfBounds)
	_, err = h.ColWeight(99)
	assert.ErrorIs(t, err, ldpc.ErrIndexOutOfBounds)
}

// TestMatrix_CloneIsIndependent mutating a clone's supports must not
// reach back into the original.
func TestMatrix_CloneIsIndependent(t *testing.T) {
	h, err := ldpc.Generate(6, 12, ldpc.WithCheckDegree(4))
	require.NoError(t, err)

	cl := h.Clone()
	assert.Equal(t, flatten(t, h), flatten(t, cl))

	sup, err := cl.RowSupport(0)
	require.NoError(t, err)
	if len(sup) > 0 {
		sup[0] = -99
	}
	orig, err := h.RowSupport(0)
	require.NoError(t, err)
	assert.NotContains(t, orig, -99)
}

// TestMatrix_Dense checks the exported dense form matches At entry-wise.
func TestMatrix_Dense(t *testing.T) {
	h, err := ldpc.Generate(6, 12, ldpc.WithCheckDegree(4))
	require.NoError(t, err)

	d := h.Dense()
	rows, cols := d.Dims()
	require.Equal(t, h.Rows(), rows)
	require.Equal(t, h.Cols(), cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v, err := h.At(r, c)
			require.NoError(t, err)
			assert.Equal(t, float64(v), d.At(r, c))
		}
	}
}

// TestGenerateCSS verifies the X and Z sectors share shape but differ
// in content, and that both satisfy the column-coverage invariant.
func TestGenerateCSS(t *testing.T) {
	hx, hz, err := ldpc.GenerateCSS(12, 21)
	require.NoError(t, err)

	assert.Equal(t, hx.Rows(), hz.Rows())
	assert.Equal(t, hx.Cols(), hz.Cols())
	assert.NotEqual(t, flatten(t, hx), flatten(t, hz))

	for _, h := range []*ldpc.Matrix{hx, hz} {
		for c := 0; c < h.Cols(); c++ {
			w, err := h.ColWeight(c)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, w, 1)
		}
	}
}

// flatten reads the full matrix through At into a comparable slice.
func flatten(t *testing.T, m *ldpc.Matrix) []uint8 {
	t.Helper()
	out := make([]uint8, 0, m.Rows()*m.Cols())
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			v, err := m.At(r, c)
			require.NoError(t, err)
			out = append(out, v)
		}
	}
	return out
}
