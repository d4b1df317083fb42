package poker

import (
	"math"

	"gobayes/domain/core"
	"gobayes/domain/poker"
)

// ScaleDecks adjusts a single-deck per-hand probability to m decks via
// the complement rule 1 - (1-p)^m. One deck leaves the probability
// unchanged.
func ScaleDecks(p float64, decks int) (float64, error) {
	if p < 0 || p > 1 {
		return 0, core.NewValidationError("probability", "must lie in [0,1]")
	}
	if decks < 1 {
		return 0, core.NewValidationError("decks", "need at least one deck")
	}
	return 1 - math.Pow(1-p, float64(decks)), nil
}

// AtLeastOnePlayer extends a per-hand single-player probability to the
// event "at least one of n players gets the hand"
func AtLeastOnePlayer(p float64, players int) (float64, error) {
	if p < 0 || p > 1 {
		return 0, core.NewValidationError("probability", "must lie in [0,1]")
	}
	if players < 1 {
		return 0, core.NewValidationError("players", "need at least one player")
	}
	return 1 - math.Pow(1-p, float64(players)), nil
}

// EventProbability resolves the full per-game event probability for a
// hand: the catalog per-hand probability, deck-scaled when a deck count
// is known, extended to all players at the table.
func EventProbability(spec poker.HandSpec, decks, players int) (float64, error) {
	p := spec.FairP
	if decks > 0 {
		scaled, err := ScaleDecks(p, decks)
		if err != nil {
			return 0, err
		}
		p = scaled
	}
	return AtLeastOnePlayer(p, players)
}
