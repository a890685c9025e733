package ebal

import "github.com/katalvlaran/ebalance/matrix"

// LossAt exposes the internal objective evaluation to the external test
// package, so the objective definition can be regression-checked against
// an independent computation without widening the production API.
func LossAt(target []float64, design *matrix.Dense, base, lambda []float64) float64 {
	return newObjective(target, design, base).eval(lambda)
}

// GradAt exposes the analytic gradient for finite-difference regression
// checks.
func GradAt(target []float64, design *matrix.Dense, base, lambda []float64) []float64 {
	grad := make([]float64, design.Cols())
	newObjective(target, design, base).gradient(grad, lambda)

	return grad
}
