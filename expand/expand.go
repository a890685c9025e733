package expand

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ebalance/matrix"
)

var (
	// ErrTooFewRows indicates fewer than two input rows; derived moments
	// over a single unit are meaningless.
	ErrTooFewRows = errors.New("expand: input must have at least two rows")

	// ErrNoSquarable indicates that ModeSquare found no column with more
	// than two distinct values, so nothing could be squared.
	ErrNoSquarable = errors.New("expand: no column with more than two distinct values")

	// ErrUnknownMode indicates an unrecognized expansion mode.
	ErrUnknownMode = errors.New("expand: unknown mode")
)

// minDistinctForSquare is the distinct-value count a column must exceed
// to receive a squared term: squaring a constant or binary column yields
// a column collinear with the original.
const minDistinctForSquare = 2

// Expand appends derived columns to X according to mode and returns the
// expanded matrix together with the expanded label list. X and labels are
// left untouched; original columns and labels always come first.
//
// Errors:
//   - matrix.ErrNilMatrix         — nil input matrix.
//   - ErrTooFewRows               — fewer than two rows.
//   - matrix.ErrDimensionMismatch — len(labels) != X.Cols().
//   - ErrNoSquarable              — ModeSquare with no qualifying column.
//   - ErrUnknownMode              — mode outside the defined set.
//
// ModeCombined tolerates the absence of squarable columns (the product
// block still carries new information); only ModeSquare treats it as
// fatal.
func Expand(x *matrix.Dense, labels []string, mode Mode) (*matrix.Dense, []string, error) {
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, nil, fmt.Errorf("expand: %w", err)
	}
	if x.Rows() < 2 {
		return nil, nil, ErrTooFewRows
	}
	if len(labels) != x.Cols() {
		return nil, nil, fmt.Errorf("expand: %d labels vs %d columns: %w",
			len(labels), x.Cols(), matrix.ErrDimensionMismatch)
	}

	var (
		cols   [][]float64
		names  []string
		sqCols [][]float64
		sqName []string
	)

	switch mode {
	case ModeCrossProduct:
		cols, names = crossProducts(x, labels)
	case ModeSquare:
		cols, names = squares(x, labels)
		if len(cols) == 0 {
			return nil, nil, ErrNoSquarable
		}
	case ModeCombined:
		sqCols, sqName = squares(x, labels)
		cols, names = crossProducts(x, labels)
		cols = append(sqCols, cols...)
		names = append(sqName, names...)
	default:
		return nil, nil, fmt.Errorf("expand: %v: %w", mode, ErrUnknownMode)
	}

	out, err := x.AppendCols(cols...)
	if err != nil {
		return nil, nil, fmt.Errorf("expand: append: %w", err)
	}

	outLabels := make([]string, 0, len(labels)+len(names))
	outLabels = append(outLabels, labels...)
	outLabels = append(outLabels, names...)

	return out, outLabels, nil
}

// crossProducts builds one elementwise-product column per unordered pair
// of distinct columns, enumerating the lower triangle by (row, column)
// pair index: (1,0), (2,0), (2,1), (3,0), …
func crossProducts(x *matrix.Dense, labels []string) ([][]float64, []string) {
	n, p := x.Rows(), x.Cols()

	var cols [][]float64
	var names []string
	for i := 1; i < p; i++ {
		for j := 0; j < i; j++ {
			a, b := x.Col(j), x.Col(i)
			prod := make([]float64, n)
			for r := 0; r < n; r++ {
				prod[r] = a[r] * b[r]
			}
			cols = append(cols, prod)
			names = append(names, labels[j]+"."+labels[i])
		}
	}

	return cols, names
}

// squares builds one elementwise-square column per original column with
// more than minDistinctForSquare distinct values, suffixing its label.
func squares(x *matrix.Dense, labels []string) ([][]float64, []string) {
	n, p := x.Rows(), x.Cols()

	var cols [][]float64
	var names []string
	for j := 0; j < p; j++ {
		c := x.Col(j)
		if distinctCount(c, minDistinctForSquare+1) <= minDistinctForSquare {
			continue
		}
		sq := make([]float64, n)
		for r := 0; r < n; r++ {
			sq[r] = c[r] * c[r]
		}
		cols = append(cols, sq)
		names = append(names, labels[j]+".sq")
	}

	return cols, names
}

// distinctCount counts distinct values in v, stopping early at limit.
func distinctCount(v []float64, limit int) int {
	seen := make(map[float64]struct{}, limit)
	for _, x := range v {
		seen[x] = struct{}{}
		if len(seen) >= limit {
			break
		}
	}

	return len(seen)
}
