package dice

import (
	"math"
	"math/rand"

	"github.com/montanaflynn/stats"

	"gobayes/domain/core"
	"gobayes/domain/dice"
)

// DefaultSamples is the Monte Carlo sample count for events without a
// closed form. At 100k samples the standard error of the estimate is
// below 0.002 for any event probability.
const DefaultSamples = 100_000

// Calculator computes the fair per-toss probability of each dice event
// for a given number of dice.
type Calculator struct {
	samples int
}

// NewCalculator creates a calculator with the given Monte Carlo sample count
func NewCalculator(samples int) *Calculator {
	if samples < 1 {
		samples = DefaultSamples
	}
	return &Calculator{samples: samples}
}

// FairProbability returns the probability of the event in one toss of
// nDice fair dice. All events are closed-form except SumAtLeast15, which
// is estimated by simulation against the supplied random source and is
// approximate, not exact.
func (c *Calculator) FairProbability(kind dice.EventKind, nDice int, rng *rand.Rand) (float64, error) {
	if nDice < 1 {
		return 0, core.NewValidationError("dice", "need at least one die")
	}

	switch kind {
	case dice.AtLeastOneSix:
		return 1 - math.Pow(5.0/6.0, float64(nDice)), nil
	case dice.AllDifferent:
		if nDice > 6 {
			return 0, nil
		}
		prob := 1.0
		for i := 0; i < nDice; i++ {
			prob *= float64(6-i) / 6
		}
		return prob, nil
	case dice.AllSame:
		return 6 / math.Pow(6, float64(nDice)), nil
	case dice.ExactlyOneSix:
		return float64(nDice) * (1.0 / 6.0) * math.Pow(5.0/6.0, float64(nDice-1)), nil
	case dice.SumAtLeast15:
		return c.simulateSumAtLeast(15, nDice, rng)
	}
	return 0, core.ErrUnknownEvent
}

// simulateSumAtLeast estimates P(sum of nDice dice >= target) as the
// empirical proportion over c.samples simulated tosses
func (c *Calculator) simulateSumAtLeast(target, nDice int, rng *rand.Rand) (float64, error) {
	if rng == nil {
		return 0, core.NewValidationError("rng", "simulated events need an explicit random source")
	}

	hits := make([]float64, c.samples)
	for i := range hits {
		sum := 0
		for d := 0; d < nDice; d++ {
			sum += rng.Intn(6) + 1
		}
		if sum >= target {
			hits[i] = 1
		}
	}

	p, err := stats.Mean(hits)
	if err != nil {
		return 0, err
	}
	return p, nil
}
