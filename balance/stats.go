package balance

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/ebalance/matrix"
)

// Compute derives the ten balance statistics for a single covariate.
//
// treat holds the treatment-group values (always unweighted), control the
// control-group values. weights, when non-nil, reweights the control side
// (length must match control); nil means uniform. Weighted control
// moments use gonum/stat's weighted estimators; the effective control
// sample size for the t and KS tests is the Kish ratio (Σw)²/Σw².
//
// Degenerate spreads are handled without NaNs: a zero spread yields a
// standardized difference of 0 when the means agree and ±Inf otherwise;
// a zero control variance yields VarRatio 1 when the treatment variance
// is also zero and +Inf otherwise.
//
// Errors: ErrEmptySample, ErrBadWeights, matrix.ErrNaNInf,
// matrix.ErrDimensionMismatch.
func Compute(treat, control, weights []float64) (Stats, error) {
	if len(treat) == 0 || len(control) == 0 {
		return Stats{}, ErrEmptySample
	}
	if err := matrix.ValidateFinite(treat); err != nil {
		return Stats{}, fmt.Errorf("balance: treatment: %w", err)
	}
	if err := matrix.ValidateFinite(control); err != nil {
		return Stats{}, fmt.Errorf("balance: control: %w", err)
	}
	if weights != nil {
		if err := matrix.ValidateVecLen(weights, len(control)); err != nil {
			return Stats{}, fmt.Errorf("balance: weights length %d vs %d control units: %w",
				len(weights), len(control), err)
		}
		if err := matrix.ValidateFinite(weights); err != nil {
			return Stats{}, fmt.Errorf("balance: weights: %w", err)
		}
		sum := 0.0
		for _, w := range weights {
			if w < 0 {
				return Stats{}, ErrBadWeights
			}
			sum += w
		}
		if sum == 0 {
			return Stats{}, ErrBadWeights
		}
		// Rescale to frequency scale (Σw = n): gonum's weighted variance
		// divides by Σw−1, which degenerates for weights summing to 1.
		scaled := make([]float64, len(weights))
		for i, w := range weights {
			scaled[i] = w * float64(len(control)) / sum
		}
		weights = scaled
	}

	meanT := stat.Mean(treat, nil)
	varT := 0.0
	if len(treat) > 1 {
		varT = stat.Variance(treat, nil)
	}
	meanC := stat.Mean(control, weights)
	varC := 0.0
	if len(control) > 1 {
		varC = stat.Variance(control, weights)
	}

	s := Stats{
		MeanTreatment: meanT,
		MeanControl:   meanC,
		SDiff:         standardized(meanT-meanC, varT),
		SDiffPooled:   standardized(meanT-meanC, (varT+varC)/2),
		VarRatio:      varianceRatio(varT, varC),
	}

	neffC := effectiveSize(len(control), weights)
	s.TPVal = welchPValue(meanT, varT, float64(len(treat)), meanC, varC, neffC)

	d := ksStatistic(treat, control, weights)
	s.KSPVal = ksPValue(d, float64(len(treat)), neffC)

	s.QQMeanDiff, s.QQMedianDiff, s.QQMaxDiff = qqSummaries(treat, control, weights)

	return s, nil
}

// ComputeTable runs Compute column-by-column over two covariate matrices
// sharing the same column layout. weights (nil = uniform) applies to
// every control column.
func ComputeTable(treatX, controlX *matrix.Dense, weights []float64) (*Table, error) {
	if err := matrix.ValidateNotNil(treatX); err != nil {
		return nil, fmt.Errorf("balance: treatment: %w", err)
	}
	if err := matrix.ValidateNotNil(controlX); err != nil {
		return nil, fmt.Errorf("balance: control: %w", err)
	}
	if treatX.Cols() != controlX.Cols() {
		return nil, fmt.Errorf("balance: treatment has %d columns, control %d: %w",
			treatX.Cols(), controlX.Cols(), matrix.ErrDimensionMismatch)
	}

	rows := make([]Stats, treatX.Cols())
	for j := 0; j < treatX.Cols(); j++ {
		s, err := Compute(treatX.Col(j), controlX.Col(j), weights)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", j, err)
		}
		rows[j] = s
	}

	return NewTable(rows), nil
}

// standardized scales a mean difference by a spread estimate, ×100.
// Zero spread: 0 for an exact match, ±Inf otherwise.
func standardized(diff, variance float64) float64 {
	if variance <= 0 {
		if diff == 0 {
			return 0
		}

		return math.Inf(int(math.Copysign(1, diff)))
	}

	return 100 * diff / math.Sqrt(variance)
}

// varianceRatio guards the degenerate denominators: 1 when both variances
// vanish, +Inf when only the control variance does.
func varianceRatio(varT, varC float64) float64 {
	if varC <= 0 {
		if varT <= 0 {
			return 1
		}

		return math.Inf(1)
	}

	return varT / varC
}

// effectiveSize returns the Kish effective sample size (Σw)²/Σw², or the
// raw count for uniform weights.
func effectiveSize(n int, weights []float64) float64 {
	if weights == nil {
		return float64(n)
	}
	sum, sumSq := 0.0, 0.0
	for _, w := range weights {
		sum += w
		sumSq += w * w
	}
	if sumSq == 0 {
		return 0
	}

	return sum * sum / sumSq
}

// welchPValue computes the two-sided Welch t-test p-value with the
// Welch–Satterthwaite degrees of freedom. Degenerate spread or sizes give
// 1 for equal means and 0 otherwise.
func welchPValue(meanT, varT, nT, meanC, varC, nC float64) float64 {
	if nT <= 1 || nC <= 1 {
		if meanT == meanC {
			return 1
		}

		return 0
	}
	se2 := varT/nT + varC/nC
	if se2 <= 0 {
		if meanT == meanC {
			return 1
		}

		return 0
	}

	t := (meanT - meanC) / math.Sqrt(se2)
	df := se2 * se2 / ((varT*varT)/(nT*nT*(nT-1)) + (varC*varC)/(nC*nC*(nC-1)))
	if df <= 0 || math.IsNaN(df) {
		return 1
	}

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	p := 2 * dist.Survival(math.Abs(t))
	if p > 1 {
		p = 1
	}

	return p
}

// qqSummaries evaluates both empirical quantile functions on a common
// probability grid and summarizes the absolute differences.
func qqSummaries(treat, control, weights []float64) (mean, median, maxDiff float64) {
	sortedT := append([]float64(nil), treat...)
	sort.Float64s(sortedT)
	sortedC, sortedW := sortWithWeights(control, weights)

	k := len(treat)
	if len(control) > k {
		k = len(control)
	}

	diffs := make([]float64, k)
	sum := 0.0
	for i := 0; i < k; i++ {
		p := (float64(i) + 0.5) / float64(k)
		qt := stat.Quantile(p, stat.Empirical, sortedT, nil)
		qc := stat.Quantile(p, stat.Empirical, sortedC, sortedW)
		diffs[i] = math.Abs(qt - qc)
		sum += diffs[i]
		if diffs[i] > maxDiff {
			maxDiff = diffs[i]
		}
	}

	sort.Float64s(diffs)
	mean = sum / float64(k)
	median = stat.Quantile(0.5, stat.Empirical, diffs, nil)

	return mean, median, maxDiff
}

// sortWithWeights sorts values ascending, carrying their weights along.
// A nil weight vector stays nil (uniform).
func sortWithWeights(values, weights []float64) ([]float64, []float64) {
	v := append([]float64(nil), values...)
	if weights == nil {
		sort.Float64s(v)

		return v, nil
	}

	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return values[idx[a]] < values[idx[b]] })

	w := make([]float64, len(values))
	for k, i := range idx {
		v[k] = values[i]
		w[k] = weights[i]
	}

	return v, w
}
