// Package balance: two-sample Kolmogorov–Smirnov machinery.
//
// The statistic is the supremum distance between the treatment ECDF and
// the (weighted) control ECDF; the p-value uses the classic asymptotic
// Kolmogorov series with the effective two-sample size.

package balance

import (
	"math"
	"sort"
)

// ksSeriesTerms bounds the alternating Kolmogorov series; terms decay as
// exp(−2k²λ²), so the tail beyond this is far below float64 resolution.
const ksSeriesTerms = 100

// ksStatistic computes D = sup_x |F_treat(x) − F_control(x)| over the
// pooled support. The control ECDF steps by normalized weights; nil
// weights mean uniform.
func ksStatistic(treat, control, weights []float64) float64 {
	sortedT := append([]float64(nil), treat...)
	sort.Float64s(sortedT)
	sortedC, sortedW := sortWithWeights(control, weights)

	totalW := float64(len(sortedC))
	if sortedW != nil {
		totalW = 0
		for _, w := range sortedW {
			totalW += w
		}
	}

	var (
		d, cumC float64
		i, j    int
	)
	nT := float64(len(sortedT))
	for i < len(sortedT) || j < len(sortedC) {
		// Next pooled support point.
		var x float64
		switch {
		case i >= len(sortedT):
			x = sortedC[j]
		case j >= len(sortedC):
			x = sortedT[i]
		case sortedT[i] <= sortedC[j]:
			x = sortedT[i]
		default:
			x = sortedC[j]
		}

		// Consume every observation at x on both sides.
		for i < len(sortedT) && sortedT[i] == x {
			i++
		}
		for j < len(sortedC) && sortedC[j] == x {
			if sortedW != nil {
				cumC += sortedW[j]
			} else {
				cumC++
			}
			j++
		}

		if diff := math.Abs(float64(i)/nT - cumC/totalW); diff > d {
			d = diff
		}
	}

	return d
}

// ksPValue returns the asymptotic two-sided p-value for statistic d with
// sample sizes nT and nC (the latter an effective size under weighting):
//
//	λ = (√ne + 0.12 + 0.11/√ne)·d,  ne = nT·nC/(nT+nC)
//	p = 2·Σ_{k≥1} (−1)^{k−1} exp(−2k²λ²), clamped into [0, 1].
func ksPValue(d, nT, nC float64) float64 {
	if d <= 0 || nT <= 0 || nC <= 0 {
		return 1
	}

	ne := nT * nC / (nT + nC)
	lambda := (math.Sqrt(ne) + 0.12 + 0.11/math.Sqrt(ne)) * d
	if lambda < 1e-3 {
		return 1
	}

	p, sign := 0.0, 1.0
	for k := 1; k <= ksSeriesTerms; k++ {
		p += sign * math.Exp(-2*float64(k)*float64(k)*lambda*lambda)
		sign = -sign
	}
	p *= 2

	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}
