// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// module. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping. Do not %w-wrap these sentinels when returning directly; if
// context is essential, wrap with fmt.Errorf("ctx: %w", ErrX) at the
// outer boundary — callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver -> shape/raggedness -> index bounds -> dimension mismatch
// -> non-finite values.

var (
	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid
	// (r<=0 or c<=0, or an empty row set). Constructors must validate
	// before allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrRagged indicates that the rows of a 2-D input have unequal lengths.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrOutOfRange indicates that an index (row or column) is outside
	// valid bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. a vector whose length does not match a matrix axis.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are
	// required (ingestion, Set, appended columns).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
