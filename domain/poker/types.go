package poker

import "gobayes/domain/core"

// HandRank identifies one of the ten standard five-card poker hands
type HandRank string

const (
	RoyalFlush    HandRank = "royal_flush"
	StraightFlush HandRank = "straight_flush"
	FourOfAKind   HandRank = "four_of_a_kind"
	FullHouse     HandRank = "full_house"
	Flush         HandRank = "flush"
	Straight      HandRank = "straight"
	ThreeOfAKind  HandRank = "three_of_a_kind"
	TwoPair       HandRank = "two_pair"
	OnePair       HandRank = "one_pair"
	HighCard      HandRank = "high_card"
)

// PlayersPerGame is the number of hands dealt per game; the inferred
// event is "at least one player gets the hand"
const PlayersPerGame = 4

// PriorScale is the pseudo-count total used to center the tool's Beta
// prior on a base per-hand probability
const PriorScale = 50

// HandSpec holds the fixed settings of one poker hand type: the fair
// single-deck per-hand probability, a biased alternative, and the number
// of observed games per run
type HandSpec struct {
	Rank    HandRank `json:"rank"`
	Label   string   `json:"label"`
	FairP   float64  `json:"fair_p"`
	BiasedP float64  `json:"biased_p"`
	Games   int      `json:"games"`
}

// catalog carries the standard five-card draw hand probabilities
var catalog = []HandSpec{
	{Rank: RoyalFlush, Label: "Royal Flush", FairP: 0.00000154, BiasedP: 0.000003, Games: 50},
	{Rank: StraightFlush, Label: "Straight Flush", FairP: 0.0000139, BiasedP: 0.000028, Games: 50},
	{Rank: FourOfAKind, Label: "Four of a Kind", FairP: 0.00024010, BiasedP: 0.0005, Games: 50},
	{Rank: FullHouse, Label: "Full House", FairP: 0.001440576, BiasedP: 0.003, Games: 50},
	{Rank: Flush, Label: "Flush", FairP: 0.001965401, BiasedP: 0.005, Games: 50},
	{Rank: Straight, Label: "Straight", FairP: 0.00392465, BiasedP: 0.008, Games: 50},
	{Rank: ThreeOfAKind, Label: "Three of a Kind", FairP: 0.021128451, BiasedP: 0.04, Games: 50},
	{Rank: TwoPair, Label: "Two Pair", FairP: 0.047539015, BiasedP: 0.09, Games: 50},
	{Rank: OnePair, Label: "One Pair", FairP: 0.42256903, BiasedP: 0.5, Games: 50},
	{Rank: HighCard, Label: "High Card", FairP: 0.50117739, BiasedP: 0.55, Games: 50},
}

// Hands returns the catalog of supported poker hands
func Hands() []HandSpec {
	out := make([]HandSpec, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup resolves a hand rank to its spec
func Lookup(rank HandRank) (HandSpec, error) {
	for _, h := range catalog {
		if h.Rank == rank {
			return h, nil
		}
	}
	return HandSpec{}, core.ErrUnknownHand
}

// ParseHandRank accepts either the rank token or the display label
func ParseHandRank(s string) (HandRank, error) {
	for _, h := range catalog {
		if string(h.Rank) == s || h.Label == s {
			return h.Rank, nil
		}
	}
	return "", core.ErrUnknownHand
}
