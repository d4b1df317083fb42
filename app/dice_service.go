package app

import (
	"fmt"
	"time"

	"gobayes/domain/bayes"
	"gobayes/domain/core"
	"gobayes/domain/dice"
	dicecalc "gobayes/internal/dice"
	"gobayes/ports"
)

// DiceService infers the per-toss probability of a selected dice event
// from simulated observed tosses of a fair or biased game
type DiceService struct {
	engine ports.PosteriorEngine
	calc   *dicecalc.Calculator
	rng    ports.RNGPort
}

// DiceRequest selects the event, dice count and probability type of one run
type DiceRequest struct {
	Event  dice.EventKind `json:"event"`
	Dice   int            `json:"dice"`   // 0 means the default of 3
	Biased bool           `json:"biased"` // use the biased alternative probability
	Seed   int64          `json:"seed"`
}

// DiceResult contains the complete output of one dice posterior computation
type DiceResult struct {
	ComputationID core.ComputationID     `json:"computation_id"`
	Fingerprint   core.Fingerprint       `json:"fingerprint"`
	CreatedAt     core.Timestamp         `json:"created_at"`
	Event         dice.EventSpec         `json:"event"`
	Dice          int                    `json:"dice"`
	BaseP         float64                `json:"base_p"`
	Prior         bayes.PriorSpec        `json:"prior"`
	Observation   bayes.Observation      `json:"observation"`
	Curves        *bayes.PosteriorResult `json:"curves"`
	Labels        CurveLabels            `json:"labels"`
	RuntimeMs     int64                  `json:"runtime_ms"`
}

// NewDiceService creates a dice inference service
func NewDiceService(engine ports.PosteriorEngine, calc *dicecalc.Calculator, rngPort ports.RNGPort) *DiceService {
	return &DiceService{engine: engine, calc: calc, rng: rngPort}
}

// ComputePosterior simulates observed successes for the event under the
// chosen probability type, centers a Beta prior on the base probability
// and runs the grid update
func (s *DiceService) ComputePosterior(req DiceRequest) (*DiceResult, error) {
	start := time.Now()

	nDice := req.Dice
	if nDice == 0 {
		nDice = dice.DefaultDice
	}
	if nDice < 1 {
		return nil, core.NewValidationError("dice", "need at least one die")
	}

	spec, err := dice.Lookup(req.Event)
	if err != nil {
		return nil, err
	}

	probLabel := "Fair"
	var baseP float64
	if req.Biased {
		probLabel = "Biased"
		baseP = spec.BiasedP
	} else {
		baseP, err = s.calc.FairProbability(spec.Kind, nDice, s.rng.Stream("dice/fair", req.Seed))
		if err != nil {
			return nil, err
		}
	}

	observed := simulateBinomial(spec.Trials, baseP, s.rng.Stream("dice/observed", req.Seed))
	obs := bayes.Observation{Trials: spec.Trials, Successes: observed}
	prior := bayes.CenteredPrior(baseP, dice.PriorScale)

	curves, err := s.engine.ComputePosterior(prior, obs, bayes.Identity())
	if err != nil {
		return nil, err
	}

	return &DiceResult{
		ComputationID: core.NewComputationID(),
		Fingerprint:   core.ComputeFingerprint("dice", spec.Kind, nDice, req.Biased, req.Seed),
		CreatedAt:     core.Now(),
		Event:         spec,
		Dice:          nDice,
		BaseP:         baseP,
		Prior:         prior,
		Observation:   obs,
		Curves:        curves,
		Labels: CurveLabels{
			Title: fmt.Sprintf("Posterior for '%s' with %d dice: observed %d successes in %d trials (%s p)",
				spec.Label, nDice, observed, spec.Trials, probLabel),
			XAxis:            "p (Per-toss probability)",
			YAxis:            "Scaled Density",
			PriorLegend:      fmt.Sprintf("Prior Beta(%.1f,%.1f)", prior.Alpha, prior.Beta),
			LikelihoodLegend: "Likelihood (scaled)",
			PosteriorLegend:  "Normalized Posterior",
		},
		RuntimeMs: time.Since(start).Milliseconds(),
	}, nil
}
