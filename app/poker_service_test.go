package app

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"gobayes/adapters/rng"
	"gobayes/domain/core"
	"gobayes/domain/poker"
	engine "gobayes/internal/bayes"
)

func newTestPokerService() *PokerService {
	return NewPokerService(engine.NewEngine(500), rng.NewSeededSource())
}

func TestPokerComputePosteriorUnknownDecks(t *testing.T) {
	svc := newTestPokerService()

	res, err := svc.ComputePosterior(PokerRequest{Hand: poker.OnePair, Seed: 5})
	if err != nil {
		t.Fatalf("ComputePosterior: %v", err)
	}

	spec, _ := poker.Lookup(poker.OnePair)
	if res.PerHandP != spec.FairP {
		t.Fatalf("unknown decks must leave per-hand probability unscaled: %g vs %g", res.PerHandP, spec.FairP)
	}

	wantEvent := 1 - math.Pow(1-spec.FairP, float64(poker.PlayersPerGame))
	if math.Abs(res.EventP-wantEvent) > 1e-15 {
		t.Fatalf("event probability %g, want %g", res.EventP, wantEvent)
	}

	if res.Observation.Trials != spec.Games {
		t.Fatalf("expected %d observed games, got %d", spec.Games, res.Observation.Trials)
	}
	if len(res.Curves.Posterior) != 500 {
		t.Fatalf("expected 500 posterior points, got %d", len(res.Curves.Posterior))
	}
	if got := res.Prior.Alpha + res.Prior.Beta; got < 49.999 || got > 50.001 {
		t.Fatalf("prior scale %g, want 50", got)
	}
}

func TestPokerOneDeckMatchesUnknown(t *testing.T) {
	svc := newTestPokerService()

	unknown, err := svc.ComputePosterior(PokerRequest{Hand: poker.Flush, Decks: 0, Seed: 8})
	if err != nil {
		t.Fatalf("unknown decks: %v", err)
	}
	oneDeck, err := svc.ComputePosterior(PokerRequest{Hand: poker.Flush, Decks: 1, Seed: 8})
	if err != nil {
		t.Fatalf("one deck: %v", err)
	}

	if math.Abs(unknown.PerHandP-oneDeck.PerHandP) > 1e-15 {
		t.Fatalf("one deck should match unscaled: %g vs %g", oneDeck.PerHandP, unknown.PerHandP)
	}
	if math.Abs(unknown.EventP-oneDeck.EventP) > 1e-15 {
		t.Fatalf("event probabilities differ: %g vs %g", oneDeck.EventP, unknown.EventP)
	}
}

func TestPokerMoreDecksRaiseProbability(t *testing.T) {
	svc := newTestPokerService()

	one, err := svc.ComputePosterior(PokerRequest{Hand: poker.Straight, Decks: 1, Seed: 3})
	if err != nil {
		t.Fatalf("one deck: %v", err)
	}
	four, err := svc.ComputePosterior(PokerRequest{Hand: poker.Straight, Decks: 4, Seed: 3})
	if err != nil {
		t.Fatalf("four decks: %v", err)
	}

	if four.PerHandP <= one.PerHandP {
		t.Fatalf("more decks should raise the per-hand probability: %g vs %g", four.PerHandP, one.PerHandP)
	}
	if four.EventP <= one.EventP {
		t.Fatalf("more decks should raise the event probability: %g vs %g", four.EventP, one.EventP)
	}
}

func TestPokerRareHand(t *testing.T) {
	svc := newTestPokerService()

	// The rarest hand in the catalog still yields a proper posterior.
	res, err := svc.ComputePosterior(PokerRequest{Hand: poker.RoyalFlush, Seed: 1})
	if err != nil {
		t.Fatalf("ComputePosterior: %v", err)
	}

	var sum float64
	for _, v := range res.Curves.Posterior {
		sum += v
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("posterior sums to %g, want 1", sum)
	}
}

func TestPokerComputePosteriorDeterministic(t *testing.T) {
	svc := newTestPokerService()
	req := PokerRequest{Hand: poker.TwoPair, Decks: 2, Seed: 77}

	a, err := svc.ComputePosterior(req)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	b, err := svc.ComputePosterior(req)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if a.Observation != b.Observation {
		t.Fatalf("same seed produced different observations: %+v vs %+v", a.Observation, b.Observation)
	}
	if !reflect.DeepEqual(a.Curves.Posterior, b.Curves.Posterior) {
		t.Fatal("same seed produced different posterior curves")
	}
}

func TestPokerComputePosteriorValidation(t *testing.T) {
	svc := newTestPokerService()

	_, err := svc.ComputePosterior(PokerRequest{Hand: poker.HandRank("five_of_a_kind")})
	if !errors.Is(err, core.ErrUnknownHand) {
		t.Fatalf("expected ErrUnknownHand, got %v", err)
	}

	if _, err := svc.ComputePosterior(PokerRequest{Hand: poker.OnePair, Decks: -1}); err == nil {
		t.Fatal("expected error for negative deck count")
	}
}
