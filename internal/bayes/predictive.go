package bayes

import (
	"math"

	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/combin"

	domain "gobayes/domain/bayes"
	"gobayes/domain/core"
)

// PredictiveProbability builds the Beta-Binomial predictive distribution
// over outcome counts 0..FutureTrials under the posterior Beta parameters
// and sums the mass of the outcomes selected by the query's comparator.
func (e *Engine) PredictiveProbability(post domain.PriorSpec, query domain.PredictiveQuery) (float64, error) {
	if err := post.Validate(); err != nil {
		return 0, err
	}
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var prob float64
	for k := 0; k <= query.FutureTrials; k++ {
		if query.Comparator.Matches(k, query.Threshold) {
			prob += betaBinomialPMF(k, query.FutureTrials, post.Alpha, post.Beta)
		}
	}
	// Guard accumulated rounding; each term is a probability mass.
	return math.Min(1, math.Max(0, prob)), nil
}

// PredictivePMF returns the full Beta-Binomial mass function over
// outcome counts 0..futureTrials
func (e *Engine) PredictivePMF(post domain.PriorSpec, futureTrials int) ([]float64, error) {
	if err := post.Validate(); err != nil {
		return nil, err
	}
	if futureTrials < 1 {
		return nil, core.NewQueryError("future trials must be >= 1")
	}
	pmf := make([]float64, futureTrials+1)
	for k := range pmf {
		pmf[k] = betaBinomialPMF(k, futureTrials, post.Alpha, post.Beta)
	}
	return pmf, nil
}

// betaBinomialPMF computes the closed-form Beta-Binomial mass
//
//	C(n,k) * B(k+alpha, n-k+beta) / B(alpha, beta)
//
// in log space to stay stable for large n and extreme shape parameters.
func betaBinomialPMF(k, n int, alpha, beta float64) float64 {
	logPMF := combin.LogGeneralizedBinomial(float64(n), float64(k)) +
		mathext.Lbeta(float64(k)+alpha, float64(n-k)+beta) -
		mathext.Lbeta(alpha, beta)
	return math.Exp(logPMF)
}
