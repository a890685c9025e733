// Package matrix provides the minimal dense-matrix foundation shared by
// the calibration (ebal), expansion (expand) and diagnostics (balance)
// packages: a row-major Dense type, a unified sentinel error set, and a
// canonical collection of validators.
//
// ✨ Key properties:
//   - Deterministic: flat row-major storage, fixed i→j traversal, no
//     randomness, no global state.
//   - Safe by construction: all constructors validate shape and reject
//     NaN/±Inf at ingestion; public indexers return errors, never panic.
//   - Cheap interop: RawData exposes the flat buffer so heavy numerics
//     can be delegated to gonum/mat without copying.
//
// ⚙️ Usage:
//
//	X, err := matrix.FromRows([][]float64{
//	  {1, 0},
//	  {0, 1},
//	  {1, 1},
//	})
//	if err != nil {
//	  // handle ErrRagged / ErrBadShape / ErrNaNInf
//	}
//	v, _ := X.At(2, 1) // bounds-checked read
//
// All errors are package-level sentinels matched via errors.Is; see
// errors.go for the full set and the documented priority order.
package matrix
