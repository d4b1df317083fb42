package ports

import (
	"gobayes/domain/bayes"
)

// PosteriorEngine is the computational core: combine a Beta prior with
// Binomial evidence over a parameter grid, and forecast future outcomes
// through the Beta-Binomial predictive distribution.
type PosteriorEngine interface {
	// ComputePosterior evaluates prior density, likelihood and
	// sum-normalized posterior over the engine's grid
	ComputePosterior(prior bayes.PriorSpec, obs bayes.Observation, model bayes.SuccessModel) (*bayes.PosteriorResult, error)

	// PredictiveProbability sums the Beta-Binomial mass of the outcomes
	// selected by the query, under the given posterior Beta parameters
	PredictiveProbability(post bayes.PriorSpec, query bayes.PredictiveQuery) (float64, error)
}
