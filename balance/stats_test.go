package balance_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ebalance/balance"
	"github.com/katalvlaran/ebalance/matrix"
)

// TestCompute_Guards verifies the pre-flight checks on samples and weights.
func TestCompute_Guards(t *testing.T) {
	_, err := balance.Compute(nil, []float64{1}, nil)
	assert.ErrorIs(t, err, balance.ErrEmptySample, "empty treatment must error")

	_, err = balance.Compute([]float64{1}, nil, nil)
	assert.ErrorIs(t, err, balance.ErrEmptySample, "empty control must error")

	_, err = balance.Compute([]float64{math.NaN()}, []float64{1}, nil)
	assert.ErrorIs(t, err, matrix.ErrNaNInf, "NaN treatment must error")

	_, err = balance.Compute([]float64{1}, []float64{1, 2}, []float64{0.5})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "weights length mismatch must error")

	_, err = balance.Compute([]float64{1}, []float64{1, 2}, []float64{0.5, -0.1})
	assert.ErrorIs(t, err, balance.ErrBadWeights, "negative weight must error")

	_, err = balance.Compute([]float64{1}, []float64{1, 2}, []float64{0, 0})
	assert.ErrorIs(t, err, balance.ErrBadWeights, "all-zero weights must error")
}

// TestCompute_IdenticalSamples: identical groups are perfectly balanced,
// so every gap statistic is zero, the variance ratio is one and both
// p-values equal one.
func TestCompute_IdenticalSamples(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}

	s, err := balance.Compute(x, x, nil)
	require.NoError(t, err)

	assert.InDelta(t, 3, s.MeanTreatment, 1e-12, "treatment mean")
	assert.InDelta(t, 3, s.MeanControl, 1e-12, "control mean")
	assert.InDelta(t, 0, s.SDiff, 1e-12, "standardized difference")
	assert.InDelta(t, 0, s.SDiffPooled, 1e-12, "pooled standardized difference")
	assert.InDelta(t, 1, s.VarRatio, 1e-12, "variance ratio")
	assert.InDelta(t, 1, s.TPVal, 1e-12, "t-test p-value")
	assert.InDelta(t, 1, s.KSPVal, 1e-12, "KS p-value")
	assert.InDelta(t, 0, s.QQMeanDiff, 1e-12, "QQ mean gap")
	assert.InDelta(t, 0, s.QQMedianDiff, 1e-12, "QQ median gap")
	assert.InDelta(t, 0, s.QQMaxDiff, 1e-12, "QQ max gap")
}

// TestCompute_WeightedControl verifies that weights reshape the control
// moments: weighting unit 1 up moves the control mean to 0.75, matching
// the treatment mean exactly.
func TestCompute_WeightedControl(t *testing.T) {
	treat := []float64{1, 1, 0, 1}   // mean 0.75, sample variance 0.25
	control := []float64{0, 1}       // unweighted mean 0.5
	weights := []float64{0.25, 0.75} // weighted mean 0.75

	s, err := balance.Compute(treat, control, weights)
	require.NoError(t, err)

	assert.InDelta(t, 0.75, s.MeanTreatment, 1e-12, "treatment mean")
	assert.InDelta(t, 0.75, s.MeanControl, 1e-12, "weighted control mean")
	assert.InDelta(t, 0, s.SDiff, 1e-12, "means agree after weighting")
	// Frequency-scaled weighted control variance: (0.5·0.5625 + 1.5·0.0625)/1.
	assert.InDelta(t, 0.25/0.375, s.VarRatio, 1e-9, "variance ratio under weighting")
}

// TestCompute_SeparatedSamples: disjoint supports must yield extreme
// statistics: a huge standardized difference, tiny p-values and a QQ max
// equal to the support gap.
func TestCompute_SeparatedSamples(t *testing.T) {
	treat := []float64{10, 11, 12}
	control := []float64{0, 1, 2}

	s, err := balance.Compute(treat, control, nil)
	require.NoError(t, err)

	assert.InDelta(t, 1000, s.SDiff, 1e-9, "ten treatment sds apart, ×100")
	assert.Less(t, s.TPVal, 0.01, "separated means must reject")
	assert.Less(t, s.KSPVal, 0.05, "disjoint supports must reject")
	assert.InDelta(t, 10, s.QQMaxDiff, 1e-9, "constant quantile offset")
	assert.InDelta(t, 10, s.QQMeanDiff, 1e-9, "constant quantile offset")
}

// TestCompute_DegenerateSpread pins the NaN-free fallbacks.
func TestCompute_DegenerateSpread(t *testing.T) {
	// Constant equal samples: zero spread, equal means.
	s, err := balance.Compute([]float64{2, 2}, []float64{2, 2}, nil)
	require.NoError(t, err)
	assert.Zero(t, s.SDiff, "zero spread with equal means")
	assert.Equal(t, 1.0, s.VarRatio, "both variances vanish")

	// Constant differing samples: zero spread, unequal means.
	s, err = balance.Compute([]float64{3, 3}, []float64{2, 2}, nil)
	require.NoError(t, err)
	assert.True(t, math.IsInf(s.SDiff, 1), "positive gap over zero spread")
	assert.Equal(t, 1.0, s.VarRatio, "both variances vanish")
	assert.Less(t, s.TPVal, 1e-9, "distinct constants must reject")
}

// TestKSStatistic pins the supremum-distance kernel, including the
// weighted control ECDF.
func TestKSStatistic(t *testing.T) {
	assert.InDelta(t, 0, balance.KSStatistic([]float64{1, 2, 3}, []float64{1, 2, 3}, nil), 1e-12,
		"identical samples")
	assert.InDelta(t, 1, balance.KSStatistic([]float64{1, 2}, []float64{3, 4}, nil), 1e-12,
		"disjoint supports")
	assert.InDelta(t, 0.5, balance.KSStatistic([]float64{1, 3}, []float64{2, 4}, nil), 1e-12,
		"interleaved supports")
	assert.InDelta(t, 0.25, balance.KSStatistic([]float64{0, 1}, []float64{0, 1}, []float64{0.25, 0.75}), 1e-12,
		"weighted control ECDF")
}

// TestKSPValue verifies bounds and monotonicity of the asymptotic tail.
func TestKSPValue(t *testing.T) {
	assert.Equal(t, 1.0, balance.KSPValue(0, 10, 10), "zero statistic")

	p1 := balance.KSPValue(0.1, 50, 50)
	p2 := balance.KSPValue(0.3, 50, 50)
	p3 := balance.KSPValue(0.8, 50, 50)
	assert.Greater(t, p1, p2, "larger D, smaller p")
	assert.Greater(t, p2, p3, "larger D, smaller p")
	for _, p := range []float64{p1, p2, p3} {
		assert.GreaterOrEqual(t, p, 0.0, "p-value lower bound")
		assert.LessOrEqual(t, p, 1.0, "p-value upper bound")
	}

	// Reference point: λ ≈ 1.358 is the classic 5% critical value.
	assert.InDelta(t, 0.05, balance.KSPValue(0.13405, 200, 200), 1e-3,
		"Kolmogorov 5% critical value")
}

// TestComputeTable verifies the column-wise driver and its shape guards.
func TestComputeTable(t *testing.T) {
	treatX, err := matrix.FromRows([][]float64{{1, 10}, {2, 11}, {3, 12}})
	require.NoError(t, err)
	controlX, err := matrix.FromRows([][]float64{{1, 0}, {2, 1}, {3, 2}})
	require.NoError(t, err)

	tbl, err := balance.ComputeTable(treatX, controlX, nil)
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len(), "one row per covariate")

	rows := tbl.Rows()
	assert.InDelta(t, 0, rows[0].SDiff, 1e-12, "first covariate balanced")
	assert.InDelta(t, 1000, rows[1].SDiff, 1e-9, "second covariate far apart")

	// Shape guards.
	narrow, err := matrix.FromRows([][]float64{{1}, {2}})
	require.NoError(t, err)
	_, err = balance.ComputeTable(treatX, narrow, nil)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "column mismatch must error")

	_, err = balance.ComputeTable(nil, controlX, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix, "nil treatment matrix must error")
}
