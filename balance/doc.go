// Package balance quantifies covariate balance between a treatment and a
// (possibly reweighted) control sample, and renders before/after
// comparisons in a canonical tabular form.
//
// 🚀 What does it measure?
//
//	Per covariate, ten statistics: treatment and control means,
//	standardized difference (scaled by treatment spread, ×100), pooled
//	standardized difference, variance ratio, Welch t-test p-value,
//	two-sample Kolmogorov–Smirnov p-value, and mean/median/max absolute
//	differences between matched empirical quantiles (QQ summaries).
//
// Control-side moments accept calibration weights (e.g. from ebal), so
// the same code scores a raw sample and its reweighted counterpart.
//
// ✨ Key pieces:
//   - Compute / ComputeTable — statistics for one covariate / one matrix
//     (gonum/stat moments & quantiles, distuv Student's-t tail)
//   - Report — selects the BeforeMatching or AfterMatching table and
//     relabels it into the fixed canonical column order
//
// ⚙️ Usage:
//
//	before, _ := balance.ComputeTable(treatX, controlX, nil)
//	after, _  := balance.ComputeTable(treatX, controlX, res.Weights)
//
//	rt, err := balance.Report(map[balance.Phase]*balance.Table{
//	  balance.BeforeMatching: before,
//	  balance.AfterMatching:  after,
//	}, []string{"age", "income"}, true)
//	fmt.Println(rt) // fixed-width table, canonical columns
//
// All computation is pure and synchronous; errors are package sentinels
// plus the shared matrix sentinels, matched with errors.Is.
package balance
