// Package stats computes per-group summary statistics (mean and scaled
// standard error) for the viewer's bar chart.
package stats

import (
	"math"

	mstats "github.com/aclements/go-moremath/stats"
)

// DefaultZ is the two-sided z multiplier for a ~95% confidence interval.
const DefaultZ = 1.96

// Group is one row of the input table: a labeled, ordered set of numeric
// observations. Row order in a Table is the draw order on the category axis.
type Group struct {
	Label        string
	Observations []float64
}

// Table is an ordered collection of groups.
type Table []Group

// Summary is the retained per-group result: the arithmetic mean of the
// group's observations and the confidence half-width around it. Summaries
// are indexed identically to the input table and are immutable once
// computed.
type Summary struct {
	Label string
	Mean  float64
	Error float64
}

// Compute summarizes each group of the table: Mean is the arithmetic mean,
// Error is z times the standard error of the mean (sample standard
// deviation with n-1 denominator, divided by sqrt(n)). Output order matches
// input order.
//
// A group with fewer than two observations has an undefined standard error;
// it is reported as Error 0 so downstream rendering never sees a NaN
// interval. An empty group yields Mean NaN (callers supply valid data).
func Compute(table Table, z float64) []Summary {
	out := make([]Summary, len(table))
	for i, g := range table {
		s := mstats.Sample{Xs: g.Observations}
		n := len(g.Observations)
		sum := Summary{Label: g.Label, Mean: math.NaN()}
		if n > 0 {
			sum.Mean = s.Mean()
		}
		if n > 1 {
			sum.Error = s.StdDev() / math.Sqrt(float64(n)) * z
		}
		out[i] = sum
	}
	return out
}
