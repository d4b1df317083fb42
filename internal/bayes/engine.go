package bayes

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	domain "gobayes/domain/bayes"
	"gobayes/domain/core"
)

// Engine discretizes a Beta prior and a Binomial likelihood over a fixed
// parameter grid and combines them into a sum-normalized posterior.
type Engine struct {
	gridSize int
}

// NewEngine creates an engine with the given grid cardinality
func NewEngine(gridSize int) *Engine {
	if gridSize < 2 {
		gridSize = domain.DefaultGridSize
	}
	return &Engine{gridSize: gridSize}
}

// GridSize returns the engine's grid cardinality
func (e *Engine) GridSize() int {
	return e.gridSize
}

// ComputePosterior evaluates the Beta prior density and the Binomial
// likelihood of the observation at every grid point, multiplies them
// pointwise and normalizes by the sum so the posterior is a proper
// discrete distribution. The success model maps a grid parameter to the
// per-trial event probability; pass domain.Identity() for the coin.
func (e *Engine) ComputePosterior(prior domain.PriorSpec, obs domain.Observation, model domain.SuccessModel) (*domain.PosteriorResult, error) {
	if err := prior.Validate(); err != nil {
		return nil, err
	}
	if err := obs.Validate(); err != nil {
		return nil, err
	}
	if model == nil {
		model = domain.Identity()
	}

	grid := domain.NewGrid(e.gridSize)
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	priorDensity := make([]float64, len(grid))
	likelihood := make([]float64, len(grid))
	unnorm := make([]float64, len(grid))

	betaDist := distuv.Beta{Alpha: prior.Alpha, Beta: prior.Beta}
	for i, p := range grid {
		priorDensity[i] = betaPDF(betaDist, p)
		likelihood[i] = binomialPMF(obs.Successes, obs.Trials, clamp01(model(p)))
		unnorm[i] = priorDensity[i] * likelihood[i]
	}

	total := floats.Sum(unnorm)
	if total == 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return nil, core.ErrDegeneratePosterior
	}
	floats.Scale(1/total, unnorm)

	return &domain.PosteriorResult{
		Grid:       grid,
		Prior:      priorDensity,
		Likelihood: likelihood,
		Posterior:  unnorm,
	}, nil
}

// betaPDF evaluates the Beta density, treating divergent boundary points
// as zero mass. For shape parameters below 1 the density is unbounded at
// the corresponding endpoint; an infinity there would poison the
// normalizing sum while contributing no actual probability.
func betaPDF(d distuv.Beta, x float64) float64 {
	if x <= 0 && d.Alpha < 1 {
		return 0
	}
	if x >= 1 && d.Beta < 1 {
		return 0
	}
	return d.Prob(x)
}

// binomialPMF evaluates P(K = k | n, p) with explicit handling of the
// degenerate p=0 and p=1 cases, where the log-space formula in distuv
// produces 0*log(0).
func binomialPMF(k, n int, p float64) float64 {
	switch {
	case p <= 0:
		if k == 0 {
			return 1
		}
		return 0
	case p >= 1:
		if k == n {
			return 1
		}
		return 0
	}
	b := distuv.Binomial{N: float64(n), P: p}
	return b.Prob(float64(k))
}

func clamp01(p float64) float64 {
	return math.Min(1, math.Max(0, p))
}
