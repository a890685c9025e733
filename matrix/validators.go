// SPDX-License-Identifier: MIT
// Package matrix: canonical validators.
//
// Purpose:
//   - Provide a single source of truth for the guard checks every public
//     entry point in the module performs before numeric work.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with their own operation tag.
//
// All checks are pure, deterministic and allocate nothing.

package matrix

import "math"

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if d == nil. Use as the first step in composite
// validations.
func ValidateNotNil(d *Dense) error {
	if d == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateVecLen ensures v has exactly want elements.
// Returns ErrDimensionMismatch otherwise. Assumes nothing about content.
func ValidateVecLen(v []float64, want int) error {
	if len(v) != want {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateFinite ensures every element of v is finite (no NaN, no ±Inf).
// Returns ErrNaNInf on the first violation.
func ValidateFinite(v []float64) error {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return ErrNaNInf
		}
	}

	return nil
}
