// Package balance: sentinel error set.
package balance

import "errors"

var (
	// ErrMissingPhase indicates that the requested phase has no table in
	// the supplied container.
	ErrMissingPhase = errors.New("balance: statistics table missing for requested phase")

	// ErrLabelMismatch indicates that the variable-name list length does
	// not equal the selected table's row count.
	ErrLabelMismatch = errors.New("balance: variable-name count does not match table rows")

	// ErrEmptySample indicates an empty treatment or control sample.
	ErrEmptySample = errors.New("balance: sample must be non-empty")

	// ErrBadWeights indicates control weights that are negative or sum to
	// zero. Non-finite weights surface as matrix.ErrNaNInf.
	ErrBadWeights = errors.New("balance: weights must be non-negative and not all zero")
)
