// SPDX-License-Identifier: MIT
// Package matrix: row-major dense storage.
//
// Purpose:
//   - Hold an n×p block of finite float64 values in a single flat buffer.
//   - Offer exactly the accessors the calibration pipeline needs:
//     bounds-checked At/Set, row/column copies, column appending, and a
//     raw view for zero-copy hand-off to gonum/mat.
//
// Determinism & Performance:
//   - Fixed i→j traversal for all loops; index math is i*cols + j.
//   - Constructors copy their inputs; Dense never aliases caller slices.

package matrix

import "math"

// Dense is an immutable-by-convention row-major matrix of finite values.
// The zero value is not usable; construct via NewDense or FromRows.
type Dense struct {
	rows, cols int
	data       []float64 // flat row-major buffer, len == rows*cols
}

// NewDense allocates a zero-filled rows×cols matrix.
// Returns ErrBadShape when rows<=0 or cols<=0.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a Dense from a slice of equally sized rows, copying
// every element.
//
// Errors:
//   - ErrBadShape — no rows, or first row empty.
//   - ErrRagged   — rows of unequal length.
//   - ErrNaNInf   — any NaN or ±Inf entry.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	cols := len(rows[0])

	d := &Dense{rows: len(rows), cols: cols, data: make([]float64, 0, len(rows)*cols)}
	for _, r := range rows {
		if len(r) != cols {
			return nil, ErrRagged
		}
		for _, v := range r {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNaNInf
			}
		}
		d.data = append(d.data, r...)
	}

	return d, nil
}

// Rows reports the number of rows (units).
func (d *Dense) Rows() int { return d.rows }

// Cols reports the number of columns (covariates).
func (d *Dense) Cols() int { return d.cols }

// At returns the element at (i, j) with bounds checking.
// Returns ErrNilMatrix on a nil receiver and ErrOutOfRange on bad indices.
func (d *Dense) At(i, j int) (float64, error) {
	if d == nil {
		return 0, ErrNilMatrix
	}
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		return 0, ErrOutOfRange
	}

	return d.data[i*d.cols+j], nil
}

// Set writes v at (i, j) with bounds checking and the finite-value policy.
// Returns ErrNilMatrix, ErrOutOfRange or ErrNaNInf accordingly.
func (d *Dense) Set(i, j int, v float64) error {
	if d == nil {
		return ErrNilMatrix
	}
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		return ErrOutOfRange
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}
	d.data[i*d.cols+j] = v

	return nil
}

// Row returns a copy of row i, or nil when i is out of bounds.
func (d *Dense) Row(i int) []float64 {
	if d == nil || i < 0 || i >= d.rows {
		return nil
	}
	out := make([]float64, d.cols)
	copy(out, d.data[i*d.cols:(i+1)*d.cols])

	return out
}

// Col returns a copy of column j, or nil when j is out of bounds.
func (d *Dense) Col(j int) []float64 {
	if d == nil || j < 0 || j >= d.cols {
		return nil
	}
	out := make([]float64, d.rows)
	for i := 0; i < d.rows; i++ {
		out[i] = d.data[i*d.cols+j]
	}

	return out
}

// RawData exposes the flat row-major buffer WITHOUT copying.
// Callers must treat the slice as read-only; it is the zero-copy bridge
// into gonum/mat (mat.NewDense(rows, cols, d.RawData())).
func (d *Dense) RawData() []float64 {
	if d == nil {
		return nil
	}

	return d.data
}

// Clone returns a deep copy of d, or nil for a nil receiver.
func (d *Dense) Clone() *Dense {
	if d == nil {
		return nil
	}
	out := &Dense{rows: d.rows, cols: d.cols, data: make([]float64, len(d.data))}
	copy(out.data, d.data)

	return out
}

// AppendCols returns a new matrix holding d's columns followed by the
// given extra columns, preserving row order. d is left untouched.
//
// Errors:
//   - ErrNilMatrix         — nil receiver.
//   - ErrDimensionMismatch — an extra column whose length != Rows().
//   - ErrNaNInf            — a non-finite entry in an extra column.
func (d *Dense) AppendCols(extra ...[]float64) (*Dense, error) {
	if d == nil {
		return nil, ErrNilMatrix
	}
	for _, c := range extra {
		if len(c) != d.rows {
			return nil, ErrDimensionMismatch
		}
		if err := ValidateFinite(c); err != nil {
			return nil, err
		}
	}

	cols := d.cols + len(extra)
	out := &Dense{rows: d.rows, cols: cols, data: make([]float64, d.rows*cols)}
	for i := 0; i < d.rows; i++ {
		copy(out.data[i*cols:], d.data[i*d.cols:(i+1)*d.cols])
		for k, c := range extra {
			out.data[i*cols+d.cols+k] = c[i]
		}
	}

	return out, nil
}
