// Package balance: phases, per-covariate statistics and the raw table.
package balance

import "fmt"

// Phase identifies which side of a matching/weighting procedure a
// statistics table describes.
type Phase int

const (
	// BeforeMatching — statistics of the raw, unweighted comparison.
	BeforeMatching Phase = iota

	// AfterMatching — statistics recomputed under the calibrated weights
	// (or after a matching procedure).
	AfterMatching
)

// String implements fmt.Stringer for diagnostics.
func (p Phase) String() string {
	switch p {
	case BeforeMatching:
		return "before"
	case AfterMatching:
		return "after"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Stats holds the ten per-covariate balance statistics.
type Stats struct {
	MeanTreatment float64 // treatment-group mean
	MeanControl   float64 // (weighted) control-group mean
	SDiff         float64 // standardized difference ×100, treatment spread
	SDiffPooled   float64 // standardized difference ×100, pooled spread
	VarRatio      float64 // treatment variance / control variance
	TPVal         float64 // Welch two-sample t-test p-value
	KSPVal        float64 // two-sample Kolmogorov–Smirnov p-value
	QQMeanDiff    float64 // mean |matched-quantile difference|
	QQMedianDiff  float64 // median |matched-quantile difference|
	QQMaxDiff     float64 // max |matched-quantile difference|
}

// values returns the statistics in the canonical column order (Columns).
func (s Stats) values() [numColumns]float64 {
	return [numColumns]float64{
		s.MeanTreatment, s.MeanControl,
		s.SDiff, s.SDiffPooled, s.VarRatio,
		s.TPVal, s.KSPVal,
		s.QQMeanDiff, s.QQMedianDiff, s.QQMaxDiff,
	}
}

// Table is an ordered collection of per-covariate statistics rows.
type Table struct {
	rows []Stats
}

// NewTable copies rows into a fresh table.
func NewTable(rows []Stats) *Table {
	t := &Table{rows: make([]Stats, len(rows))}
	copy(t.rows, rows)

	return t
}

// Len reports the number of covariate rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.rows)
}

// Rows returns a copy of the statistics rows in order.
func (t *Table) Rows() []Stats {
	if t == nil {
		return nil
	}
	out := make([]Stats, len(t.rows))
	copy(out, t.rows)

	return out
}
