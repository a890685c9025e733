// Package ebal: objective/gradient evaluation.
//
// The objective owns request-scoped scratch (weights, aggregate,
// deviation, one n-vector) shared between the loss and gradient
// callbacks. The engine evaluates them serially, so sharing is safe;
// nothing here survives the Calibrate call that allocated it.

package ebal

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ebalance/matrix"
)

// objective evaluates loss(λ) = ‖ weights(λ)ᵀX − t ‖² and its analytic
// gradient ∇loss(λ) = 2·Xᵀ( weights(λ) ⊙ (X·dev) ).
type objective struct {
	target *mat.VecDense // t, length p (copied)
	x      *mat.Dense    // n×p view over the design matrix buffer
	base   []float64     // w0, length n (caller-owned, read-only)
	n, p   int

	w    []float64     // weights(λ) scratch
	agg  *mat.VecDense // Xᵀ·w
	dev  *mat.VecDense // agg − t
	nvec *mat.VecDense // X·λ, then X·dev (length n, reused)

	evals     int       // objective evaluations so far
	lastX     []float64 // last λ with a finite loss
	hasFinite bool
}

// newObjective builds the evaluation state over design's flat buffer
// without copying the matrix.
func newObjective(target []float64, design *matrix.Dense, base []float64) *objective {
	n, p := design.Rows(), design.Cols()

	return &objective{
		target: mat.NewVecDense(p, append([]float64(nil), target...)),
		x:      mat.NewDense(n, p, design.RawData()),
		base:   base,
		n:      n,
		p:      p,
		w:      make([]float64, n),
		agg:    mat.NewVecDense(p, nil),
		dev:    mat.NewVecDense(p, nil),
		nvec:   mat.NewVecDense(n, nil),
		lastX:  make([]float64, p),
	}
}

// eval refreshes w, agg and dev at λ and returns the sum of squared
// deviations. The result may be non-finite when exp overflows.
func (o *objective) eval(lambda []float64) float64 {
	// X·λ into the shared n-vector, then the exponential tilt.
	o.nvec.MulVec(o.x, mat.NewVecDense(o.p, lambda))
	for i := 0; i < o.n; i++ {
		o.w[i] = o.base[i] * math.Exp(o.nvec.AtVec(i))
	}

	o.agg.MulVec(o.x.T(), mat.NewVecDense(o.n, o.w))
	o.dev.SubVec(o.agg, o.target)

	return mat.Dot(o.dev, o.dev)
}

// value is the Func callback. Non-finite losses are clamped to +Inf so
// the line search backs off instead of accepting a corrupted step.
func (o *objective) value(lambda []float64) float64 {
	o.evals++
	f := o.eval(lambda)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return math.Inf(1)
	}
	copy(o.lastX, lambda)
	o.hasFinite = true

	return f
}

// gradient is the Grad callback: grad ← 2·Xᵀ( w ⊙ (X·dev) ).
func (o *objective) gradient(grad, lambda []float64) {
	o.eval(lambda)

	// X·dev into the shared n-vector, scaled elementwise by the weights.
	o.nvec.MulVec(o.x, o.dev)
	for i := 0; i < o.n; i++ {
		o.nvec.SetVec(i, o.nvec.AtVec(i)*o.w[i])
	}

	gv := mat.NewVecDense(o.p, grad)
	gv.MulVec(o.x.T(), o.nvec)
	gv.ScaleVec(2, gv)
}

// callbacks exposes the evaluation pair to the minimizer seam.
func (o *objective) callbacks() Objective {
	return Objective{Func: o.value, Grad: o.gradient}
}

// divergence packages the numeric-failure diagnostics collected so far.
func (o *objective) divergence(reason error) error {
	e := &DivergenceError{Evaluations: o.evals, Reason: reason}
	if o.hasFinite {
		e.LastCoefficients = append([]float64(nil), o.lastX...)
	}

	return e
}
