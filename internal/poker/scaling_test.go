package poker

import (
	"math"
	"testing"

	"gobayes/domain/poker"
)

func TestScaleDecksIdentityAtOneDeck(t *testing.T) {
	for _, p := range []float64{0, 0.00000154, 0.001440576, 0.42256903, 1} {
		got, err := ScaleDecks(p, 1)
		if err != nil {
			t.Fatalf("ScaleDecks(%g,1): %v", p, err)
		}
		if math.Abs(got-p) > 1e-15 {
			t.Fatalf("one deck must leave probability unchanged: got %g, want %g", got, p)
		}
	}
}

func TestScaleDecksMonotonicInDecks(t *testing.T) {
	prev := 0.0
	for decks := 1; decks <= 8; decks++ {
		got, err := ScaleDecks(0.001965401, decks)
		if err != nil {
			t.Fatalf("ScaleDecks: %v", err)
		}
		if got <= prev {
			t.Fatalf("probability must grow with deck count: %g at %d decks", got, decks)
		}
		if got > 1 {
			t.Fatalf("probability above 1 at %d decks", decks)
		}
		prev = got
	}
}

func TestScaleDecksValidation(t *testing.T) {
	if _, err := ScaleDecks(0.5, 0); err == nil {
		t.Fatal("expected error for zero decks")
	}
	if _, err := ScaleDecks(1.5, 1); err == nil {
		t.Fatal("expected error for probability above 1")
	}
}

func TestAtLeastOnePlayer(t *testing.T) {
	got, err := AtLeastOnePlayer(0.5, 2)
	if err != nil {
		t.Fatalf("AtLeastOnePlayer: %v", err)
	}
	if math.Abs(got-0.75) > 1e-15 {
		t.Fatalf("got %g, want 0.75", got)
	}

	one, err := AtLeastOnePlayer(0.3, 1)
	if err != nil {
		t.Fatalf("AtLeastOnePlayer: %v", err)
	}
	if math.Abs(one-0.3) > 1e-15 {
		t.Fatalf("single player must leave probability unchanged: got %g", one)
	}
}

func TestEventProbability(t *testing.T) {
	spec, err := poker.Lookup(poker.FullHouse)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	// Unknown deck count: per-hand probability used as-is.
	unknown, err := EventProbability(spec, 0, poker.PlayersPerGame)
	if err != nil {
		t.Fatalf("EventProbability: %v", err)
	}
	want := 1 - math.Pow(1-spec.FairP, float64(poker.PlayersPerGame))
	if math.Abs(unknown-want) > 1e-15 {
		t.Fatalf("got %g, want %g", unknown, want)
	}

	// One deck matches the unknown-deck case exactly.
	oneDeck, err := EventProbability(spec, 1, poker.PlayersPerGame)
	if err != nil {
		t.Fatalf("EventProbability: %v", err)
	}
	if math.Abs(oneDeck-unknown) > 1e-15 {
		t.Fatalf("one deck should equal unscaled: %g vs %g", oneDeck, unknown)
	}

	// Two decks raise the event probability.
	twoDecks, err := EventProbability(spec, 2, poker.PlayersPerGame)
	if err != nil {
		t.Fatalf("EventProbability: %v", err)
	}
	if twoDecks <= oneDeck {
		t.Fatalf("two decks should raise the probability: %g vs %g", twoDecks, oneDeck)
	}
}
