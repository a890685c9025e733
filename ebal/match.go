package ebal

import (
	"fmt"

	"github.com/katalvlaran/ebalance/matrix"
)

// MatchMoments is the high-level front door: it calibrates weights for
// the control sample so that its weighted covariate means match the
// treatment sample's means.
//
// The call prepends an intercept column of ones to the control matrix
// and a leading 1 to the target vector, which folds the Σ weights = 1
// normalization into the moment constraints themselves; the remaining
// targets are the treatment column means. Base weights default to the
// uniform 1/n vector over control units.
//
// Returned Result.Coefficients therefore has length p+1 with the
// intercept coefficient first; Weights, Loss, MaxDeviation and Converged
// follow the Calibrate contract unchanged.
//
// Errors: matrix sentinels for nil inputs or a column-count mismatch
// between the two samples, plus everything Calibrate can return.
func MatchMoments(treat, control *matrix.Dense, opts Options) (*Result, error) {
	if err := matrix.ValidateNotNil(treat); err != nil {
		return nil, fmt.Errorf("ebal: treatment: %w", err)
	}
	if err := matrix.ValidateNotNil(control); err != nil {
		return nil, fmt.Errorf("ebal: control: %w", err)
	}
	if treat.Cols() != control.Cols() {
		return nil, fmt.Errorf("ebal: treatment has %d columns, control %d: %w",
			treat.Cols(), control.Cols(), matrix.ErrDimensionMismatch)
	}

	n, p := control.Rows(), control.Cols()

	// Intercept-augmented design: column of ones, then the covariates.
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = append([]float64{1}, control.Row(i)...)
	}
	design, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("ebal: control design: %w", err)
	}

	// Targets: normalization moment, then treatment column means.
	target := make([]float64, p+1)
	target[0] = 1
	nt := float64(treat.Rows())
	for j := 0; j < p; j++ {
		sum := 0.0
		for _, v := range treat.Col(j) {
			sum += v
		}
		target[j+1] = sum / nt
	}

	// Uniform base weights over control units.
	base := make([]float64, n)
	for i := range base {
		base[i] = 1 / float64(n)
	}

	return Calibrate(target, design, base, opts)
}
