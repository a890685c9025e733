// Package ebal computes entropy-balancing calibration weights: an
// exponential tilt of a base-weight vector that makes the weighted
// column sums of a design matrix match a target moment vector.
//
// 🚀 What is entropy balancing?
//
//	Given target moments t (length p), a design matrix X (n×p) and base
//	weights w0 (length n, non-negative, summing to 1), the solver finds a
//	coefficient vector λ minimizing
//
//	  loss(λ) = ‖ weights(λ)ᵀ·X − t ‖²,  weights(λ)_i = exp(x_i·λ)·w0_i.
//
//	The exponential link keeps every calibrated weight strictly positive,
//	the structural property reweighting estimators rely on. λ = 0 is the
//	natural start: weights(0) = w0.
//
// ✨ Key features:
//   - analytic objective/gradient pair driven by gonum/optimize
//     (quasi-Newton L-BFGS by default, selectable via Options.Method)
//   - strict pre-flight validation: shapes, finiteness, non-negative and
//     normalized base weights — each a distinct sentinel error
//   - post-hoc invariants recomputed directly from the returned
//     coefficients: weight-sum check (fatal on violation) and a soft
//     Converged flag judged against ConstraintTolerance
//   - explicit divergence diagnostics: DivergenceError carries the last
//     finite coefficient vector and the evaluation count
//
// ⚙️ Usage:
//
//	opts := ebal.DefaultOptions()
//	opts.ConstraintTolerance = 1e-4 // required, no default
//
//	res, err := ebal.Calibrate(target, design, base, opts)
//	if err != nil {
//	  // shape/config/divergence/invariant failure — see errors.go
//	}
//	if !res.Converged {
//	  // soft outcome: retry with a looser tolerance or more iterations
//	}
//
// Every call is a pure function of its inputs plus request-scoped
// scratch; independent calls may run concurrently with no coordination.
//
// Complexity: O(n·p) per objective/gradient evaluation, O(n+p) scratch.
package ebal
