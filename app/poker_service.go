package app

import (
	"fmt"
	"time"

	"gobayes/domain/bayes"
	"gobayes/domain/core"
	"gobayes/domain/poker"
	pokercalc "gobayes/internal/poker"
	"gobayes/ports"
)

// PokerService infers the per-hand probability of a selected poker hand
// from simulated observed games. The observed event per game is "at
// least one of the table's players is dealt the hand".
type PokerService struct {
	engine ports.PosteriorEngine
	rng    ports.RNGPort
}

// PokerRequest selects the hand type and deck count of one run
type PokerRequest struct {
	Hand  poker.HandRank `json:"hand"`
	Decks int            `json:"decks"` // 0 means unknown: no deck scaling
	Seed  int64          `json:"seed"`
}

// PokerResult contains the complete output of one poker posterior computation
type PokerResult struct {
	ComputationID core.ComputationID     `json:"computation_id"`
	Fingerprint   core.Fingerprint       `json:"fingerprint"`
	CreatedAt     core.Timestamp         `json:"created_at"`
	Hand          poker.HandSpec         `json:"hand"`
	Decks         int                    `json:"decks"`
	PerHandP      float64                `json:"per_hand_p"` // deck-adjusted per-hand probability
	EventP        float64                `json:"event_p"`    // per-game at-least-one-player probability
	Prior         bayes.PriorSpec        `json:"prior"`
	Observation   bayes.Observation      `json:"observation"`
	Curves        *bayes.PosteriorResult `json:"curves"`
	Labels        CurveLabels            `json:"labels"`
	RuntimeMs     int64                  `json:"runtime_ms"`
}

// NewPokerService creates a poker inference service
func NewPokerService(engine ports.PosteriorEngine, rngPort ports.RNGPort) *PokerService {
	return &PokerService{engine: engine, rng: rngPort}
}

// ComputePosterior simulates observed games, centers a Beta prior on the
// deck-adjusted per-hand probability and runs the grid update. The grid
// parameter stays the per-hand probability; the likelihood sees each
// game through the at-least-one-of-N-players transform.
func (s *PokerService) ComputePosterior(req PokerRequest) (*PokerResult, error) {
	start := time.Now()

	if req.Decks < 0 {
		return nil, core.NewValidationError("decks", "deck count cannot be negative")
	}

	spec, err := poker.Lookup(req.Hand)
	if err != nil {
		return nil, err
	}

	perHandP := spec.FairP
	deckText := "unknown number of decks"
	if req.Decks > 0 {
		perHandP, err = pokercalc.ScaleDecks(spec.FairP, req.Decks)
		if err != nil {
			return nil, err
		}
		plural := "s"
		if req.Decks == 1 {
			plural = ""
		}
		deckText = fmt.Sprintf("%d deck%s", req.Decks, plural)
	}

	eventP, err := pokercalc.AtLeastOnePlayer(perHandP, poker.PlayersPerGame)
	if err != nil {
		return nil, err
	}

	observed := simulateBinomial(spec.Games, eventP, s.rng.Stream("poker/observed", req.Seed))
	obs := bayes.Observation{Trials: spec.Games, Successes: observed}
	prior := bayes.CenteredPrior(perHandP, poker.PriorScale)

	curves, err := s.engine.ComputePosterior(prior, obs, bayes.AtLeastOneOf(poker.PlayersPerGame))
	if err != nil {
		return nil, err
	}

	return &PokerResult{
		ComputationID: core.NewComputationID(),
		Fingerprint:   core.ComputeFingerprint("poker", spec.Rank, req.Decks, req.Seed),
		CreatedAt:     core.Now(),
		Hand:          spec,
		Decks:         req.Decks,
		PerHandP:      perHandP,
		EventP:        eventP,
		Prior:         prior,
		Observation:   obs,
		Curves:        curves,
		Labels: CurveLabels{
			Title: fmt.Sprintf("Posterior for '%s' Occurrence (%s, %d successes in %d games)",
				spec.Label, deckText, observed, spec.Games),
			XAxis:            "p (Per-hand probability)",
			YAxis:            "Scaled Density",
			PriorLegend:      fmt.Sprintf("Prior Beta(%.1f,%.1f)", prior.Alpha, prior.Beta),
			LikelihoodLegend: "Likelihood (scaled)",
			PosteriorLegend:  "Normalized Posterior",
		},
		RuntimeMs: time.Since(start).Milliseconds(),
	}, nil
}
