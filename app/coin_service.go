package app

import (
	"fmt"
	"math/rand"
	"time"

	"gobayes/domain/bayes"
	"gobayes/domain/core"
	"gobayes/ports"
)

// Fixed prior parameters for the coin tool: Beta(10,10), centered on a
// fair coin. These are the only constants shared across computations.
const (
	CoinPriorAlpha = 10
	CoinPriorBeta  = 10
)

// CoinService runs Bayesian updates on a possibly biased coin
type CoinService struct {
	engine ports.PosteriorEngine
}

// CoinRequest holds the observed evidence for one coin computation
type CoinRequest struct {
	Trials int `json:"trials"`
	Heads  int `json:"heads"`
}

// Validate enforces trials >= 1 and 0 <= heads <= trials
func (r CoinRequest) Validate() error {
	if r.Trials < 1 {
		return core.NewObservationError(r.Trials, r.Heads)
	}
	return bayes.Observation{Trials: r.Trials, Successes: r.Heads}.Validate()
}

// CoinResult contains the complete output of one coin posterior computation
type CoinResult struct {
	ComputationID core.ComputationID     `json:"computation_id"`
	Fingerprint   core.Fingerprint       `json:"fingerprint"`
	CreatedAt     core.Timestamp         `json:"created_at"`
	Prior         bayes.PriorSpec        `json:"prior"`
	Posterior     bayes.PriorSpec        `json:"posterior_params"`
	Observation   bayes.Observation      `json:"observation"`
	Curves        *bayes.PosteriorResult `json:"curves"`
	Labels        CurveLabels            `json:"labels"`
	RuntimeMs     int64                  `json:"runtime_ms"`
}

// CoinPrediction is the answer to one predictive query
type CoinPrediction struct {
	ComputationID core.ComputationID    `json:"computation_id"`
	Posterior     bayes.PriorSpec       `json:"posterior_params"`
	Query         bayes.PredictiveQuery `json:"query"`
	Probability   float64               `json:"probability"`
}

// NewCoinService creates a coin inference service
func NewCoinService(engine ports.PosteriorEngine) *CoinService {
	return &CoinService{engine: engine}
}

// Prior returns the tool's fixed Beta prior
func (s *CoinService) Prior() bayes.PriorSpec {
	return bayes.PriorSpec{Alpha: CoinPriorAlpha, Beta: CoinPriorBeta}
}

// ComputePosterior runs the full grid update for the observed tosses.
// The event probability is the coin's bias itself, so the identity model
// applies.
func (s *CoinService) ComputePosterior(req CoinRequest) (*CoinResult, error) {
	start := time.Now()

	if err := req.Validate(); err != nil {
		return nil, err
	}
	obs := bayes.Observation{Trials: req.Trials, Successes: req.Heads}
	prior := s.Prior()

	curves, err := s.engine.ComputePosterior(prior, obs, bayes.Identity())
	if err != nil {
		return nil, err
	}

	return &CoinResult{
		ComputationID: core.NewComputationID(),
		Fingerprint:   core.ComputeFingerprint("coin", req.Trials, req.Heads),
		CreatedAt:     core.Now(),
		Prior:         prior,
		Posterior:     prior.Posterior(obs),
		Observation:   obs,
		Curves:        curves,
		Labels: CurveLabels{
			Title:            "Bayesian Update: Posterior distribution of Coin's Bias",
			XAxis:            "p (Probability of heads)",
			YAxis:            "Scaled Density",
			PriorLegend:      fmt.Sprintf("Prior Beta(%d,%d)", CoinPriorAlpha, CoinPriorBeta),
			LikelihoodLegend: "Likelihood (scaled)",
			PosteriorLegend:  "Normalized Posterior",
		},
		RuntimeMs: time.Since(start).Milliseconds(),
	}, nil
}

// Predict answers a Beta-Binomial predictive query after updating the
// fixed prior with the observed tosses
func (s *CoinService) Predict(req CoinRequest, query bayes.PredictiveQuery) (*CoinPrediction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	obs := bayes.Observation{Trials: req.Trials, Successes: req.Heads}
	post := s.Prior().Posterior(obs)

	prob, err := s.engine.PredictiveProbability(post, query)
	if err != nil {
		return nil, err
	}

	return &CoinPrediction{
		ComputationID: core.NewComputationID(),
		Posterior:     post,
		Query:         query,
		Probability:   prob,
	}, nil
}

// RandomQuery generates a valid predictive query from an explicit random
// source: 5-50 future trials, a threshold within range, and a uniformly
// chosen comparator.
func (s *CoinService) RandomQuery(rng *rand.Rand) bayes.PredictiveQuery {
	comparators := bayes.Comparators()
	futureTrials := 5 + rng.Intn(46)
	return bayes.PredictiveQuery{
		FutureTrials: futureTrials,
		Threshold:    rng.Intn(futureTrials + 1),
		Comparator:   comparators[rng.Intn(len(comparators))],
	}
}
