// Package ebal: options, method selection and the calibration result.
package ebal

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// Documented defaults (single source of truth).
const (
	// DefaultMaxIterations bounds the number of major minimizer iterations.
	DefaultMaxIterations = 1000

	// DefaultFunctionTolerance is the relative objective improvement below
	// which the minimizer stops early.
	DefaultFunctionTolerance = 1e-6

	// WeightSumTolerance is the absolute slack allowed on |Σ weights − 1|,
	// applied to the base weights at entry and to the calibrated weights
	// on exit.
	WeightSumTolerance = 1e-6
)

// Method selects the minimization algorithm backing Calibrate.
// All gradient-based choices consume the analytic gradient; NelderMead
// ignores it and relies on function values only.
type Method int

const (
	// MethodLBFGS — limited-memory quasi-Newton descent (default).
	MethodLBFGS Method = iota

	// MethodBFGS — full-memory quasi-Newton descent; denser Hessian
	// approximation, useful for small p.
	MethodBFGS

	// MethodGradientDescent — plain first-order descent with line search.
	MethodGradientDescent

	// MethodNelderMead — derivative-free simplex search.
	MethodNelderMead
)

// String implements fmt.Stringer for diagnostics.
func (m Method) String() string {
	switch m {
	case MethodLBFGS:
		return "lbfgs"
	case MethodBFGS:
		return "bfgs"
	case MethodGradientDescent:
		return "gradient-descent"
	case MethodNelderMead:
		return "nelder-mead"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// toOptimizeMethod maps the enum onto the gonum implementation.
func (m Method) toOptimizeMethod() optimize.Method {
	switch m {
	case MethodBFGS:
		return &optimize.BFGS{}
	case MethodGradientDescent:
		return &optimize.GradientDescent{}
	case MethodNelderMead:
		return &optimize.NelderMead{}
	default:
		return &optimize.LBFGS{}
	}
}

// Options configures a Calibrate call.
//
// Fields:
//   - MaxIterations       — major-iteration budget (default 1000).
//   - FunctionTolerance   — relative loss improvement that stops the
//     minimizer early (default 1e-6).
//   - ConstraintTolerance — REQUIRED, no default. The post-hoc judgment:
//     the result is Converged when the maximum absolute moment deviation
//     falls strictly below this value.
//   - Method              — minimization algorithm (default MethodLBFGS).
//   - Minimizer           — optional engine override; when nil, a
//     gonum-backed engine is built from Method and the budgets above.
//
// Example:
//
//	opts := ebal.DefaultOptions()
//	opts.ConstraintTolerance = 1e-4
//	res, err := ebal.Calibrate(target, design, base, opts)
type Options struct {
	MaxIterations       int
	FunctionTolerance   float64
	ConstraintTolerance float64
	Method              Method
	Minimizer           Minimizer
}

// DefaultOptions returns the documented defaults. ConstraintTolerance is
// deliberately left zero: it has no default and must be set by the caller.
func DefaultOptions() Options {
	return Options{
		MaxIterations:     DefaultMaxIterations,
		FunctionTolerance: DefaultFunctionTolerance,
		Method:            MethodLBFGS,
	}
}

// validate performs the one-time configuration check at call entry.
func (o Options) validate() error {
	if o.ConstraintTolerance <= 0 || math.IsNaN(o.ConstraintTolerance) || math.IsInf(o.ConstraintTolerance, 0) {
		return ErrMissingTolerance
	}
	if o.MaxIterations <= 0 {
		return fmt.Errorf("MaxIterations %d: %w", o.MaxIterations, ErrBadOption)
	}
	if o.FunctionTolerance <= 0 || math.IsNaN(o.FunctionTolerance) {
		return fmt.Errorf("FunctionTolerance %v: %w", o.FunctionTolerance, ErrBadOption)
	}
	if o.Method < MethodLBFGS || o.Method > MethodNelderMead {
		return fmt.Errorf("Method %v: %w", o.Method, ErrBadOption)
	}

	return nil
}

// Result is the immutable outcome of a successful Calibrate call.
//
// Fields:
//   - Coefficients — the optimized λ vector (length p).
//   - Weights      — calibrated weights exp(x_i·λ)·w0_i (length n),
//     strictly positive, summing to 1 within WeightSumTolerance.
//   - Loss         — sum of squared moment deviations at λ.
//   - MaxDeviation — max_j |(weightsᵀX)_j − target_j|, recomputed
//     directly from Weights.
//   - Converged    — soft outcome: MaxDeviation < ConstraintTolerance.
//   - Iterations   — major iterations spent by the minimizer.
type Result struct {
	Coefficients []float64
	Weights      []float64
	Loss         float64
	MaxDeviation float64
	Converged    bool
	Iterations   int
}
