package bayes

import (
	"math"

	"gobayes/domain/core"
)

// PriorSpec holds the shape parameters of a Beta prior over an unknown
// per-trial success probability. Immutable once constructed.
type PriorSpec struct {
	Alpha float64 `json:"alpha"`
	Beta  float64 `json:"beta"`
}

// NewPriorSpec constructs a validated Beta prior
func NewPriorSpec(alpha, beta float64) (PriorSpec, error) {
	p := PriorSpec{Alpha: alpha, Beta: beta}
	if err := p.Validate(); err != nil {
		return PriorSpec{}, err
	}
	return p, nil
}

// CenteredPrior builds the scale-based prior the dice and poker tools use:
// Beta(p*scale, scale - p*scale), centered on a base event probability.
func CenteredPrior(baseP, scale float64) PriorSpec {
	return PriorSpec{Alpha: baseP * scale, Beta: scale - baseP*scale}
}

// Validate enforces alpha > 0 and beta > 0
func (p PriorSpec) Validate() error {
	if !(p.Alpha > 0) || !(p.Beta > 0) || math.IsInf(p.Alpha, 0) || math.IsInf(p.Beta, 0) {
		return core.NewPriorError(p.Alpha, p.Beta)
	}
	return nil
}

// Mean returns the expected value of the Beta distribution
func (p PriorSpec) Mean() float64 {
	return p.Alpha / (p.Alpha + p.Beta)
}

// Posterior applies the conjugate Beta-Binomial update:
// Beta(alpha + k, beta + n - k)
func (p PriorSpec) Posterior(obs Observation) PriorSpec {
	return PriorSpec{
		Alpha: p.Alpha + float64(obs.Successes),
		Beta:  p.Beta + float64(obs.Trials-obs.Successes),
	}
}

// Observation is the observed evidence: k successes out of n trials
type Observation struct {
	Trials    int `json:"trials"`
	Successes int `json:"successes"`
}

// Validate enforces 0 <= successes <= trials
func (o Observation) Validate() error {
	if o.Trials < 0 || o.Successes < 0 || o.Successes > o.Trials {
		return core.NewObservationError(o.Trials, o.Successes)
	}
	return nil
}

// SuccessModel maps a candidate parameter value p to the probability of
// "success" in one trial under that parameter. The coin tool uses the
// identity; compound events use nonlinear transforms.
type SuccessModel func(p float64) float64

// Identity returns the model where the event probability is the parameter itself
func Identity() SuccessModel {
	return func(p float64) float64 { return p }
}

// AtLeastOneOf returns the compound model 1 - (1-p)^m for the event
// "at least one of m independent units succeeds"
func AtLeastOneOf(m int) SuccessModel {
	return func(p float64) float64 {
		return 1 - math.Pow(1-p, float64(m))
	}
}

// Comparator selects outcomes relative to a threshold in a predictive query
type Comparator string

const (
	Less           Comparator = "<"
	LessOrEqual    Comparator = "<="
	Equal          Comparator = "="
	Greater        Comparator = ">"
	GreaterOrEqual Comparator = ">="
)

// Comparators lists the five recognized comparator symbols in display order
func Comparators() []Comparator {
	return []Comparator{Less, LessOrEqual, Equal, Greater, GreaterOrEqual}
}

// Valid reports whether the comparator is one of the five recognized symbols
func (c Comparator) Valid() bool {
	switch c {
	case Less, LessOrEqual, Equal, Greater, GreaterOrEqual:
		return true
	}
	return false
}

// Matches reports whether an outcome count satisfies the comparator
// against the threshold
func (c Comparator) Matches(outcome, threshold int) bool {
	switch c {
	case Less:
		return outcome < threshold
	case LessOrEqual:
		return outcome <= threshold
	case Equal:
		return outcome == threshold
	case Greater:
		return outcome > threshold
	case GreaterOrEqual:
		return outcome >= threshold
	}
	return false
}

// PredictiveQuery describes a future compound event: how many future
// trials, and which outcome counts are of interest
type PredictiveQuery struct {
	FutureTrials int        `json:"future_trials"`
	Threshold    int        `json:"threshold"`
	Comparator   Comparator `json:"comparator"`
}

// Validate enforces future_trials >= 1, threshold in [0, future_trials]
// and a recognized comparator
func (q PredictiveQuery) Validate() error {
	if q.FutureTrials < 1 {
		return core.NewQueryError("future trials must be >= 1")
	}
	if q.Threshold < 0 || q.Threshold > q.FutureTrials {
		return core.NewQueryError("threshold must be within [0, future_trials]")
	}
	if !q.Comparator.Valid() {
		return core.ErrInvalidComparator
	}
	return nil
}
