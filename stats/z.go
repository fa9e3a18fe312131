package stats

import (
	"slices"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ZVal returns the two-tailed z-value for a confidence level, given as a
// number from 0 to 100 percent.
func ZVal(confidence float64) float64 {
	return distuv.UnitNormal.Quantile((1 + confidence/100) / 2)
}

// Median returns the empirical median of vals, sorting vals in place. For an
// even count it is the lower of the two middle values.
func Median(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	slices.Sort(vals)
	return stat.Quantile(0.5, stat.Empirical, vals, nil)
}
