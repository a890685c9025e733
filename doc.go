// Package ebalance is your in-memory toolkit for covariate balancing —
// from entropy-balancing weight calibration to balance diagnostics and
// feature expansion.
//
// 🚀 What is ebalance?
//
//	A small, deterministic library that brings together:
//		• Weight calibration: exponential-tilt reweighting that matches a
//		  control sample's covariate moments to a treatment target (ebal/)
//		• Feature expansion: pairwise cross-products & squared terms (expand/)
//		• Balance diagnostics: mean/variance/KS/quantile statistics with a
//		  canonical before/after comparison table (balance/)
//		• Matrix support: minimal row-major dense storage + shared
//		  validators and sentinel errors (matrix/)
//
// ✨ Why choose ebalance?
//
//   - Pure functions – every call reads its inputs, allocates scratch,
//     returns; zero shared state, embarrassingly parallel across strata
//   - Explicit failure modes – sentinel errors for shape, config,
//     divergence and invariant violations; soft non-convergence flag
//   - Mature numerics – quasi-Newton minimization via gonum/optimize,
//     linear algebra via gonum/mat
//
// Under the hood, everything is organized under four subpackages:
//
//	balance/ — per-covariate balance statistics & canonical report table
//	ebal/    — the entropy-balancing weight optimizer (the core)
//	expand/  — cross-product / square / combined design expansion
//	matrix/  — row-major Dense, validators & unified sentinel errors
//
// Quick sketch of the pipeline:
//
//	raw covariates ──expand──▶ design matrix ──ebal──▶ calibrated weights
//	                                                        │
//	      balance.ComputeTable ◀──── weighted sample ◀──────┘
//
// See each package's doc.go for contracts, error sets and examples.
package ebalance
