package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ebalance/matrix"
)

// TestNewDense_BadShape verifies that non-positive dimensions are rejected
// with ErrBadShape before any allocation.
func TestNewDense_BadShape(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}, {2, -5}} {
		_, err := matrix.NewDense(dims[0], dims[1])
		assert.ErrorIs(t, err, matrix.ErrBadShape, "dims %v must error ErrBadShape", dims)
	}
}

// TestFromRows_RoundTrip verifies that a valid row set is copied faithfully
// and that the source slices are not aliased.
func TestFromRows_RoundTrip(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	d, err := matrix.FromRows(rows)
	require.NoError(t, err, "valid rows must construct")
	assert.Equal(t, 3, d.Rows(), "row count")
	assert.Equal(t, 2, d.Cols(), "column count")

	v, err := d.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v, "element (2,1)")

	// Mutating the source must not leak into the matrix.
	rows[0][0] = 99
	v, _ = d.At(0, 0)
	assert.Equal(t, 1.0, v, "constructor must copy, not alias")
}

// TestFromRows_Ragged verifies ErrRagged on rows of unequal length.
func TestFromRows_Ragged(t *testing.T) {
	_, err := matrix.FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrRagged, "unequal row lengths must error ErrRagged")
}

// TestFromRows_NonFinite verifies the finite-value ingestion policy.
func TestFromRows_NonFinite(t *testing.T) {
	_, err := matrix.FromRows([][]float64{{1, math.NaN()}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf, "NaN must error ErrNaNInf")

	_, err = matrix.FromRows([][]float64{{math.Inf(1), 0}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf, "+Inf must error ErrNaNInf")
}

// TestFromRows_Empty verifies ErrBadShape on empty inputs.
func TestFromRows_Empty(t *testing.T) {
	_, err := matrix.FromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape, "nil rows must error ErrBadShape")

	_, err = matrix.FromRows([][]float64{{}})
	assert.ErrorIs(t, err, matrix.ErrBadShape, "empty first row must error ErrBadShape")
}

// TestAtSet_Bounds verifies bounds-checked indexers return ErrOutOfRange
// instead of panicking.
func TestAtSet_Bounds(t *testing.T) {
	d, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = d.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange, "row overflow on At")
	_, err = d.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange, "negative column on At")

	assert.ErrorIs(t, d.Set(-1, 0, 1), matrix.ErrOutOfRange, "negative row on Set")
	assert.ErrorIs(t, d.Set(0, 0, math.NaN()), matrix.ErrNaNInf, "NaN on Set")
	assert.NoError(t, d.Set(1, 1, 7), "in-bounds finite Set")

	v, err := d.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v, "Set/At round trip")
}

// TestRowColClone verifies row/column copies and deep cloning.
func TestRowColClone(t *testing.T) {
	d, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	assert.Equal(t, []float64{3, 4}, d.Row(1), "row copy")
	assert.Equal(t, []float64{2, 4}, d.Col(1), "column copy")
	assert.Nil(t, d.Row(5), "out-of-bounds row yields nil")
	assert.Nil(t, d.Col(-1), "out-of-bounds column yields nil")

	c := d.Clone()
	require.NoError(t, c.Set(0, 0, 42))
	v, _ := d.At(0, 0)
	assert.Equal(t, 1.0, v, "clone must not share storage")
}

// TestAppendCols verifies column appending preserves row order and
// validates the extra columns.
func TestAppendCols(t *testing.T) {
	d, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	out, err := d.AppendCols([]float64{10, 20}, []float64{30, 40})
	require.NoError(t, err, "well-shaped extra columns must append")
	assert.Equal(t, 4, out.Cols(), "two appended columns")
	assert.Equal(t, []float64{3, 4, 20, 40}, out.Row(1), "appended row layout")
	assert.Equal(t, 2, d.Cols(), "receiver untouched")

	_, err = d.AppendCols([]float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "short column must error")

	_, err = d.AppendCols([]float64{1, math.Inf(-1)})
	assert.ErrorIs(t, err, matrix.ErrNaNInf, "-Inf in extra column must error")
}
