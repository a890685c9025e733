// Package ebal: the minimizer seam.
// The general-purpose descent engine is a black box behind the Minimizer
// interface; the production implementation delegates to gonum/optimize.
// A Minimizer's contract is deliberately narrow — it returns ONLY the
// optimized parameter vector, the achieved objective value and the
// iteration count. Everything else (weights, aggregates, loss, the
// convergence judgment) is recomputed by the caller from that vector.

package ebal

import (
	"errors"

	"gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/ebalance/matrix"
)

// convergeWindow is the number of consecutive sub-tolerance improvements
// the function-convergence test requires before stopping.
const convergeWindow = 10

// Objective pairs a scalar loss with its gradient. Grad writes ∇f(x)
// into grad (len(grad) == len(x)); derivative-free engines may ignore it.
type Objective struct {
	Func func(x []float64) float64
	Grad func(grad, x []float64)
}

// Solution is the raw outcome of a Minimizer run.
type Solution struct {
	X          []float64 // optimized parameter vector
	F          float64   // achieved objective value
	Iterations int       // major iterations spent
}

// Minimizer abstracts a bounded quasi-Newton descent engine. Implementations
// must treat x0 as read-only and be safe for use from a single goroutine.
type Minimizer interface {
	Minimize(obj Objective, x0 []float64) (Solution, error)
}

// quasiNewton is the gonum-backed production engine.
type quasiNewton struct {
	method        optimize.Method
	maxIterations int
	funcTolerance float64
}

// Minimize runs gonum's optimize.Minimize with the configured method,
// iteration budget and relative function-convergence test. A Failure
// status is surfaced as an error; hitting the iteration budget is not,
// and neither is a line-search stall at a finite point: a zero or
// vanishing gradient (an already-optimal start included) makes the line
// search give up, but the point it stopped at is still a valid answer
// for the caller to judge.
func (q quasiNewton) Minimize(obj Objective, x0 []float64) (Solution, error) {
	problem := optimize.Problem{Func: obj.Func, Grad: obj.Grad}
	settings := &optimize.Settings{
		MajorIterations: q.maxIterations,
		Converger: &optimize.FunctionConverge{
			Relative:   q.funcTolerance,
			Iterations: convergeWindow,
		},
	}

	res, err := optimize.Minimize(problem, x0, settings, q.method)
	if res == nil {
		return Solution{}, err
	}
	sol := Solution{X: res.X, F: res.F, Iterations: res.Stats.MajorIterations}
	if err != nil {
		if isLinesearchStall(err) && matrix.ValidateFinite(res.X) == nil {
			return sol, nil
		}

		return sol, err
	}
	if res.Status == optimize.Failure {
		return sol, errors.New("minimizer reported failure")
	}

	return sol, nil
}

// isLinesearchStall reports whether the engine error means the line
// search could not move from the current point, as opposed to a numeric
// failure. Non-finite values never take this path.
func isLinesearchStall(err error) bool {
	return errors.Is(err, optimize.ErrNonDescentDirection) ||
		errors.Is(err, optimize.ErrLinesearcherFailure) ||
		errors.Is(err, optimize.ErrNoProgress)
}
