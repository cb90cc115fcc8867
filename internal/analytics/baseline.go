package analytics

import "math"

// BaselineStats holds the mean and sample standard deviation of one
// cohort of spend magnitudes. A zero-stddev baseline disables any
// z-score rule that consults it.
type BaselineStats struct {
	Mean   float64
	StdDev float64
}

// MeanStdDev computes the arithmetic mean and sample standard deviation
// (divisor n-1, floored at 1) of a cohort of non-negative amounts.
//
// An empty cohort yields (0, 0) and a single value yields (value, 0);
// neither is an error. The function never fails and has no side effects.
func MeanStdDev(values []float64) (mean, stddev float64) {
	n := len(values)
	if n == 0 {
		return 0.0, 0.0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean = sum / float64(n)

	var sumSquares float64
	for _, v := range values {
		d := v - mean
		sumSquares += d * d
	}

	divisor := n - 1
	if divisor < 1 {
		divisor = 1
	}

	return mean, math.Sqrt(sumSquares / float64(divisor))
}

// NewBaselineStats computes a BaselineStats for a cohort of amounts
func NewBaselineStats(values []float64) BaselineStats {
	mean, stddev := MeanStdDev(values)
	return BaselineStats{Mean: mean, StdDev: stddev}
}
