package balance

import (
	"fmt"
	"strings"
)

// numColumns is the width of the canonical statistics layout.
const numColumns = 10

// Columns is the canonical column ordering every report carries,
// regardless of how the source tables were produced.
var Columns = [numColumns]string{
	"mean_treatment", "mean_control",
	"sdiff", "sdiff_pooled", "var_ratio",
	"T_pval", "KS_pval",
	"qqmeandiff", "qqmediandiff", "qqmaxdiff",
}

// ReportTable is a labeled, canonically ordered view of one statistics
// table (before or after), immutable once returned by Report.
type ReportTable struct {
	phase  Phase
	labels []string
	rows   []Stats
}

// Report selects exactly one table from the before/after container and
// attaches row labels in the canonical column order. after=true selects
// AfterMatching, otherwise BeforeMatching.
//
// Errors:
//   - ErrMissingPhase  — the selected phase has no table (or a nil one).
//   - ErrLabelMismatch — len(names) != selected table's row count.
func Report(tables map[Phase]*Table, names []string, after bool) (*ReportTable, error) {
	phase := BeforeMatching
	if after {
		phase = AfterMatching
	}

	t, ok := tables[phase]
	if !ok || t == nil {
		return nil, fmt.Errorf("%v: %w", phase, ErrMissingPhase)
	}
	if len(names) != t.Len() {
		return nil, fmt.Errorf("%d names vs %d rows: %w", len(names), t.Len(), ErrLabelMismatch)
	}

	rt := &ReportTable{
		phase:  phase,
		labels: append([]string(nil), names...),
		rows:   t.Rows(),
	}

	return rt, nil
}

// Phase reports which side of the procedure the table describes.
func (r *ReportTable) Phase() Phase { return r.phase }

// Columns returns the canonical column names in order.
func (r *ReportTable) Columns() []string {
	out := make([]string, numColumns)
	copy(out, Columns[:])

	return out
}

// RowLabels returns the variable names in row order.
func (r *ReportTable) RowLabels() []string {
	out := make([]string, len(r.labels))
	copy(out, r.labels)

	return out
}

// Row returns the canonical value vector for the named variable, or
// false when the name is unknown.
func (r *ReportTable) Row(name string) ([]float64, bool) {
	for i, l := range r.labels {
		if l == name {
			v := r.rows[i].values()

			return v[:], true
		}
	}

	return nil, false
}

// String renders a fixed-width table: a header of canonical column names
// followed by one labeled row per variable.
func (r *ReportTable) String() string {
	var b strings.Builder

	labelWidth := len("variable")
	for _, l := range r.labels {
		if len(l) > labelWidth {
			labelWidth = len(l)
		}
	}

	fmt.Fprintf(&b, "%-*s", labelWidth, "variable")
	for _, c := range Columns {
		fmt.Fprintf(&b, " %14s", c)
	}
	b.WriteByte('\n')

	for i, l := range r.labels {
		fmt.Fprintf(&b, "%-*s", labelWidth, l)
		for _, v := range r.rows[i].values() {
			fmt.Fprintf(&b, " %14.6g", v)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
