// Package expand generates derived design-matrix columns for moment
// matching: pairwise cross-products and squared terms of the original
// covariates.
//
// 🚀 What does it do?
//
//	Balancing on first moments alone leaves variances and interactions
//	unconstrained. Expanding the design with squares and cross-products
//	lets the calibration core (ebal) match second-order structure too.
//
// Modes:
//   - ModeCrossProduct — one appended column per unordered pair of
//     distinct original columns (elementwise product), enumerated in
//     lower-triangular order: (1,0), (2,0), (2,1), (3,0), …
//   - ModeSquare       — one appended column per original column with
//     more than two distinct values (squaring a binary column is a
//     no-op up to scale, so such columns are skipped).
//   - ModeCombined     — original columns, then squares, then
//     cross-products, in that order.
//
// Labels travel with the data: appended columns are named "a.b" for the
// product of columns a and b, and "a.sq" for the square of column a.
//
// ⚙️ Usage:
//
//	mode, err := expand.ParseMode("combined")
//	out, labels, err := expand.Expand(X, []string{"age", "income", "urban"}, mode)
//
// Errors are package sentinels (ErrTooFewRows, ErrNoSquarable,
// ErrUnknownMode) plus the shared matrix sentinels for shape violations;
// match with errors.Is.
package expand
