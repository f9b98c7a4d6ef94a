package ldpc

import (
	"gonum.org/v1/gonum/mat"
)

// Matrix is an immutable binary parity-check matrix in row-major form.
// Construct one with Generate or GenerateCSS; the zero value is not usable.
type Matrix struct {
	rows, cols int
	data       []uint8 // row-major, len rows*cols
	rowSupport [][]int // sorted column indices per row
	colSupport [][]int // sorted row indices per column
}

// Rows returns the number of parity checks m.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of data qubits n.
func (m *Matrix) Cols() int { return m.cols }

// At reports the entry at (r, c) as 0 or 1.
// Returns ErrIndexOutOfBounds when either index is outside the matrix.
func (m *Matrix) At(r, c int) (uint8, error) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return 0, ErrIndexOutOfBounds
	}
	return m.data[r*m.cols+c], nil
}

// RowSupport returns the sorted column indices of the ones in row r.
// The returned slice is a copy; callers may modify it freely.
func (m *Matrix) RowSupport(r int) ([]int, error) {
	if r < 0 || r >= m.rows {
		return nil, ErrIndexOutOfBounds
	}
	out := make([]int, len(m.rowSupport[r]))
	copy(out, m.rowSupport[r])
	return out, nil
}

// ColSupport returns the sorted row indices of the ones in column c.
// The returned slice is a copy; callers may modify it freely.
func (m *Matrix) ColSupport(c int) ([]int, error) {
	if c < 0 || c >= m.cols {
		return nil, ErrIndexOutOfBounds
	}
	out := make([]int, len(m.colSupport[c]))
	copy(out, m.colSupport[c])
	return out, nil
}

// RowWeight returns the number of ones in row r.
func (m *Matrix) RowWeight(r int) (int, error) {
	if r < 0 || r >= m.rows {
		return 0, ErrIndexOutOfBounds
	}
	return len(m.rowSupport[r]), nil
}

// ColWeight returns the number of ones in column c.
func (m *Matrix) ColWeight(c int) (int, error) {
	if c < 0 || c >= m.cols {
		return 0, ErrIndexOutOfBounds
	}
	return len(m.colSupport[c]), nil
}

// Clone returns an independent deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{
		rows:       m.rows,
		cols:       m.cols,
		data:       make([]uint8, len(m.data)),
		rowSupport: make([][]int, m.rows),
		colSupport: make([][]int, m.cols),
	}
	copy(out.data, m.data)
	for r, sup := range m.rowSupport {
		out.rowSupport[r] = append([]int(nil), sup...)
	}
	for c, sup := range m.colSupport {
		out.colSupport[c] = append([]int(nil), sup...)
	}
	return out
}

// Dense exports the matrix as a gonum *mat.Dense of 0/1 floats,
// suitable for numeric post-processing and plotting pipelines.
func (m *Matrix) Dense() *mat.Dense {
	d := mat.NewDense(m.rows, m.cols, nil)
	for r := 0; r < m.rows; r++ {
		for _, c := range m.rowSupport[r] {
			d.Set(r, c, 1)
		}
	}
	return d
}

// fromBits assembles a Matrix from a row-major bit slice, building both
// support indexes. Internal constructor for the generators.
func fromBits(rows, cols int, data []uint8) *Matrix {
	m := &Matrix{
		rows:       rows,
		cols:       cols,
		data:       data,
		rowSupport: make([][]int, rows),
		colSupport: make([][]int, cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if data[r*cols+c] == 1 {
				m.rowSupport[r] = append(m.rowSupport[r], c)
				m.colSupport[c] = append(m.colSupport[c], r)
			}
		}
	}
	return m
}
