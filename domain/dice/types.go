package dice

import "gobayes/domain/core"

// EventKind identifies one of the dice events the tool can reason about
type EventKind string

const (
	AtLeastOneSix EventKind = "at_least_one_6"
	AllDifferent  EventKind = "all_dice_different"
	SumAtLeast15  EventKind = "sum_ge_15"
	AllSame       EventKind = "all_dice_same"
	ExactlyOneSix EventKind = "exactly_one_6"
)

// DefaultDice is the number of dice assumed when the user leaves it blank
const DefaultDice = 3

// PriorScale is the pseudo-count total used to center the tool's Beta
// prior on a base event probability
const PriorScale = 50

// EventSpec holds the fixed settings of one dice event: a biased
// alternative probability and the number of observed tosses per run
type EventSpec struct {
	Kind    EventKind `json:"kind"`
	Label   string    `json:"label"`
	BiasedP float64   `json:"biased_p"`
	Trials  int       `json:"trials"`
}

// catalog carries the selectable events and their fixed settings
var catalog = []EventSpec{
	{Kind: AtLeastOneSix, Label: "At least one 6", BiasedP: 0.6, Trials: 50},
	{Kind: AllDifferent, Label: "All dice different", BiasedP: 0.4, Trials: 50},
	{Kind: SumAtLeast15, Label: "Sum >= 15", BiasedP: 0.35, Trials: 50},
	{Kind: AllSame, Label: "All dice same", BiasedP: 0.05, Trials: 50},
	{Kind: ExactlyOneSix, Label: "Exactly one 6", BiasedP: 0.3, Trials: 50},
}

// Events returns the catalog of supported dice events
func Events() []EventSpec {
	out := make([]EventSpec, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup resolves an event kind to its spec
func Lookup(kind EventKind) (EventSpec, error) {
	for _, ev := range catalog {
		if ev.Kind == kind {
			return ev, nil
		}
	}
	return EventSpec{}, core.ErrUnknownEvent
}

// ParseEventKind accepts either the kind token or the display label
func ParseEventKind(s string) (EventKind, error) {
	for _, ev := range catalog {
		if string(ev.Kind) == s || ev.Label == s {
			return ev.Kind, nil
		}
	}
	return "", core.ErrUnknownEvent
}
