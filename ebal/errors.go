// Package ebal: sentinel error set.
// Shape violations reuse the unified matrix sentinels (matrix.ErrNilMatrix,
// matrix.ErrDimensionMismatch, matrix.ErrNaNInf) wrapped with an "ebal:"
// context; the sentinels below cover configuration, weighting-policy and
// numeric failures specific to the calibration core. Tests match all of
// them via errors.Is.

package ebal

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingTolerance is returned when Options.ConstraintTolerance is
	// absent (zero), negative or NaN. The tolerance has no default: it is
	// the caller's statement of how close a moment match must be.
	ErrMissingTolerance = errors.New("ebal: ConstraintTolerance is required")

	// ErrBadOption is returned when a recognized option carries a
	// nonsensical value (MaxIterations <= 0, FunctionTolerance <= 0,
	// unknown Method).
	ErrBadOption = errors.New("ebal: invalid option value")

	// ErrNegativeWeight signals a negative entry in the base weights.
	ErrNegativeWeight = errors.New("ebal: base weights must be non-negative")

	// ErrWeightSum signals that a weight vector does not sum to 1 within
	// WeightSumTolerance. On input it marks an unnormalized base-weight
	// vector (precondition); on output it marks a violated invariant of
	// the calibrated weights. Both are fatal.
	ErrWeightSum = errors.New("ebal: weights do not sum to 1 within tolerance")

	// ErrDivergence signals numeric failure during optimization: the
	// objective or gradient became non-finite, or the minimizer reported
	// an internal error. Match with errors.Is; unwrap the concrete
	// *DivergenceError with errors.As for diagnostics.
	ErrDivergence = errors.New("ebal: optimization diverged")
)

// DivergenceError is the concrete error returned for numeric failures.
// It satisfies errors.Is(err, ErrDivergence) and carries the last
// coefficient vector that still produced a finite objective value, plus
// the number of objective evaluations performed before the failure.
type DivergenceError struct {
	// LastCoefficients is the most recent λ with a finite loss, or nil
	// when no finite evaluation happened at all.
	LastCoefficients []float64

	// Evaluations counts objective evaluations up to the failure.
	Evaluations int

	// Reason is the underlying minimizer or validation error, may be nil
	// when the failure was detected as a non-finite final loss.
	Reason error
}

// Error renders the diagnostic message.
func (e *DivergenceError) Error() string {
	if e.Reason != nil {
		return fmt.Sprintf("ebal: optimization diverged after %d evaluations: %v", e.Evaluations, e.Reason)
	}

	return fmt.Sprintf("ebal: optimization diverged after %d evaluations", e.Evaluations)
}

// Unwrap links the concrete error to the ErrDivergence sentinel.
func (e *DivergenceError) Unwrap() error { return ErrDivergence }
