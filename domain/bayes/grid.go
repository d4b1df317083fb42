package bayes

import "gobayes/domain/core"

// DefaultGridSize matches the 500-point parameter grid the tools evaluate
// densities on.
const DefaultGridSize = 500

// Grid is an ordered sequence of candidate parameter values in [0,1],
// strictly increasing, built once per computation.
type Grid []float64

// NewGrid builds n evenly spaced points spanning [0,1] inclusive
func NewGrid(n int) Grid {
	if n < 2 {
		n = 2
	}
	g := make(Grid, n)
	step := 1.0 / float64(n-1)
	for i := range g {
		g[i] = float64(i) * step
	}
	g[n-1] = 1 // guard accumulated rounding on the last point
	return g
}

// Validate enforces a nonempty, strictly increasing grid within [0,1]
func (g Grid) Validate() error {
	if len(g) == 0 {
		return core.ErrEmptyGrid
	}
	for i, p := range g {
		if p < 0 || p > 1 {
			return core.NewValidationError("grid", "points must lie in [0,1]")
		}
		if i > 0 && p <= g[i-1] {
			return core.NewValidationError("grid", "points must be strictly increasing")
		}
	}
	return nil
}

// PosteriorResult holds the three aligned curves of one Bayesian update.
// The posterior is sum-normalized (a proper discrete distribution); the
// prior density and likelihood are kept raw, with max-scaled copies
// available for display so the two conventions are never conflated.
type PosteriorResult struct {
	Grid       Grid      `json:"grid"`
	Prior      []float64 `json:"prior_density"`
	Likelihood []float64 `json:"likelihood"`
	Posterior  []float64 `json:"posterior"`
}

// ScaledPrior returns the prior density divided by its maximum, for
// visual comparison against the posterior
func (r *PosteriorResult) ScaledPrior() []float64 {
	return maxScaled(r.Prior)
}

// ScaledLikelihood returns the likelihood divided by its maximum
func (r *PosteriorResult) ScaledLikelihood() []float64 {
	return maxScaled(r.Likelihood)
}

// Mode returns the grid point carrying the largest posterior mass
func (r *PosteriorResult) Mode() float64 {
	best := 0
	for i, v := range r.Posterior {
		if v > r.Posterior[best] {
			best = i
		}
	}
	return r.Grid[best]
}

// Mean returns the expectation of the discrete posterior
func (r *PosteriorResult) Mean() float64 {
	var m float64
	for i, v := range r.Posterior {
		m += r.Grid[i] * v
	}
	return m
}

// Quantile returns the smallest grid point at which the cumulative
// posterior mass reaches q
func (r *PosteriorResult) Quantile(q float64) float64 {
	var cum float64
	for i, v := range r.Posterior {
		cum += v
		if cum >= q {
			return r.Grid[i]
		}
	}
	return r.Grid[len(r.Grid)-1]
}

func maxScaled(seq []float64) []float64 {
	var max float64
	for _, v := range seq {
		if v > max {
			max = v
		}
	}
	out := make([]float64, len(seq))
	if max == 0 {
		return out
	}
	for i, v := range seq {
		out[i] = v / max
	}
	return out
}
