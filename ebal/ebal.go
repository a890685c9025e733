package ebal

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ebalance/matrix"
)

// Calibrate solves the entropy-balancing moment-matching problem.
//
// Contract:
//
//	target — length p, the moments the calibrated weights must reproduce.
//	design — n×p matrix, rows = units, columns = covariates.
//	base   — length n, non-negative, summing to 1 within WeightSumTolerance.
//	opts   — ConstraintTolerance is required; see Options for defaults.
//
// Algorithm Outline:
//  1. Validate configuration, shapes and content (all fatal, before any
//     numeric work).
//  2. Start quasi-Newton descent at λ₀ = 0, where weights(λ₀) = base.
//  3. Stop at the iteration budget or when the relative loss improvement
//     drops below FunctionTolerance; let λ* be the returned vector.
//  4. Recompute weights*, the weighted column sums and the loss directly
//     from λ* — never from the objective's internal scratch.
//  5. Enforce |Σ weights* − 1| ≤ WeightSumTolerance (fatal on violation)
//     and judge Converged = maxDeviation < ConstraintTolerance (soft).
//
// Errors:
//   - ErrMissingTolerance, ErrBadOption — configuration (fatal at entry).
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrNaNInf —
//     shape/content violations (fatal, wrapped with "ebal:" context).
//   - ErrNegativeWeight, ErrWeightSum — base-weight policy (fatal).
//   - ErrDivergence (*DivergenceError) — non-finite loss or minimizer
//     failure (fatal, carries diagnostics).
//   - ErrWeightSum — calibrated weights broke the sum invariant (fatal).
//
// Non-convergence within the budget is NOT an error: it is reported via
// Result.Converged = false so callers can branch (relax the tolerance,
// raise the budget, or change the base weighting).
func Calibrate(target []float64, design *matrix.Dense, base []float64, opts Options) (*Result, error) {
	// Stage 1 (Config): one-time check of the recognized options.
	if err := opts.validate(); err != nil {
		return nil, err
	}

	// Stage 2 (Shape): dimensions must line up before any numeric work.
	if err := matrix.ValidateNotNil(design); err != nil {
		return nil, fmt.Errorf("ebal: design: %w", err)
	}
	n, p := design.Rows(), design.Cols()
	if err := matrix.ValidateVecLen(target, p); err != nil {
		return nil, fmt.Errorf("ebal: target length %d vs %d design columns: %w", len(target), p, err)
	}
	if err := matrix.ValidateVecLen(base, n); err != nil {
		return nil, fmt.Errorf("ebal: base weights length %d vs %d design rows: %w", len(base), n, err)
	}

	// Stage 3 (Content): finite target, finite/non-negative/normalized base.
	// The design matrix enforces finiteness at construction.
	if err := matrix.ValidateFinite(target); err != nil {
		return nil, fmt.Errorf("ebal: target: %w", err)
	}
	if err := matrix.ValidateFinite(base); err != nil {
		return nil, fmt.Errorf("ebal: base weights: %w", err)
	}
	baseSum := 0.0
	for _, w := range base {
		if w < 0 {
			return nil, ErrNegativeWeight
		}
		baseSum += w
	}
	if math.Abs(baseSum-1) > WeightSumTolerance {
		return nil, fmt.Errorf("ebal: base weights sum to %v: %w", baseSum, ErrWeightSum)
	}

	// Stage 4 (Solve): quasi-Newton descent from the zero vector.
	obj := newObjective(target, design, base)
	engine := opts.Minimizer
	if engine == nil {
		engine = quasiNewton{
			method:        opts.Method.toOptimizeMethod(),
			maxIterations: opts.MaxIterations,
			funcTolerance: opts.FunctionTolerance,
		}
	}
	sol, err := engine.Minimize(obj.callbacks(), make([]float64, p))
	if err != nil {
		return nil, obj.divergence(err)
	}
	if err = matrix.ValidateVecLen(sol.X, p); err != nil {
		return nil, obj.divergence(fmt.Errorf("engine returned %d coefficients for %d parameters: %w",
			len(sol.X), p, err))
	}
	if err = matrix.ValidateFinite(sol.X); err != nil {
		return nil, obj.divergence(err)
	}

	// Stage 5 (Assemble): everything below is recomputed directly from
	// the returned coefficient vector.
	lambda := append([]float64(nil), sol.X...)
	weights := weightsAt(design, base, lambda)
	agg := weightedColumnSums(design, weights)

	loss, maxDev := 0.0, 0.0
	for j, a := range agg {
		d := a - target[j]
		loss += d * d
		if ad := math.Abs(d); ad > maxDev {
			maxDev = ad
		}
	}
	if math.IsNaN(loss) || math.IsInf(loss, 0) {
		return nil, obj.divergence(nil)
	}

	// Stage 6 (Invariant): the calibrated weights must still sum to 1.
	wSum := 0.0
	for _, w := range weights {
		wSum += w
	}
	if math.Abs(wSum-1) > WeightSumTolerance {
		return nil, fmt.Errorf("ebal: calibrated weights sum to %v: %w", wSum, ErrWeightSum)
	}

	return &Result{
		Coefficients: lambda,
		Weights:      weights,
		Loss:         loss,
		MaxDeviation: maxDev,
		Converged:    maxDev < opts.ConstraintTolerance,
		Iterations:   sol.Iterations,
	}, nil
}

// weightsAt computes the exponential tilt exp(x_i·λ)·base_i per row.
func weightsAt(design *matrix.Dense, base, lambda []float64) []float64 {
	n, p := design.Rows(), design.Cols()
	raw := design.RawData()

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		row := raw[i*p : (i+1)*p]
		dot := 0.0
		for j, x := range row {
			dot += x * lambda[j]
		}
		out[i] = base[i] * math.Exp(dot)
	}

	return out
}

// weightedColumnSums computes weightsᵀ·X as a fresh length-p slice.
func weightedColumnSums(design *matrix.Dense, weights []float64) []float64 {
	n, p := design.Rows(), design.Cols()
	x := mat.NewDense(n, p, design.RawData())

	agg := mat.NewVecDense(p, nil)
	agg.MulVec(x.T(), mat.NewVecDense(n, weights))

	return agg.RawVector().Data
}
