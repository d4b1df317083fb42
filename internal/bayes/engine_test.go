package bayes

import (
	"errors"
	"math"
	"testing"

	domain "gobayes/domain/bayes"
	"gobayes/domain/core"
)

func TestComputePosteriorShapeAndNormalization(t *testing.T) {
	engine := NewEngine(500)

	cases := []struct {
		name  string
		prior domain.PriorSpec
		obs   domain.Observation
	}{
		{"coin", domain.PriorSpec{Alpha: 10, Beta: 10}, domain.Observation{Trials: 10, Successes: 3}},
		{"all successes", domain.PriorSpec{Alpha: 2, Beta: 2}, domain.Observation{Trials: 8, Successes: 8}},
		{"no successes", domain.PriorSpec{Alpha: 2, Beta: 2}, domain.Observation{Trials: 8, Successes: 0}},
		{"sub-one shape", domain.PriorSpec{Alpha: 0.5, Beta: 49.5}, domain.Observation{Trials: 50, Successes: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := engine.ComputePosterior(tc.prior, tc.obs, domain.Identity())
			if err != nil {
				t.Fatalf("ComputePosterior: %v", err)
			}

			if len(res.Grid) != 500 || len(res.Prior) != 500 || len(res.Likelihood) != 500 || len(res.Posterior) != 500 {
				t.Fatalf("curves not aligned to grid: %d %d %d %d",
					len(res.Grid), len(res.Prior), len(res.Likelihood), len(res.Posterior))
			}

			var sum float64
			for i := range res.Posterior {
				if res.Prior[i] < 0 || res.Likelihood[i] < 0 || res.Posterior[i] < 0 {
					t.Fatalf("negative density at grid point %d", i)
				}
				if math.IsNaN(res.Posterior[i]) || math.IsInf(res.Posterior[i], 0) {
					t.Fatalf("non-finite posterior at grid point %d", i)
				}
				sum += res.Posterior[i]
			}
			if math.Abs(sum-1) > 1e-9 {
				t.Fatalf("posterior sums to %g, want 1", sum)
			}
		})
	}
}

func TestComputePosteriorConcentration(t *testing.T) {
	engine := NewEngine(500)
	prior := domain.PriorSpec{Alpha: 10, Beta: 10}

	small, err := engine.ComputePosterior(prior, domain.Observation{Trials: 20, Successes: 6}, domain.Identity())
	if err != nil {
		t.Fatalf("small run: %v", err)
	}
	large, err := engine.ComputePosterior(prior, domain.Observation{Trials: 200, Successes: 60}, domain.Identity())
	if err != nil {
		t.Fatalf("large run: %v", err)
	}

	// With k/n fixed at 0.3 the peak moves toward 0.3 as evidence grows.
	if math.Abs(large.Mode()-0.3) >= math.Abs(small.Mode()-0.3) {
		t.Fatalf("peak did not converge: small mode %g, large mode %g", small.Mode(), large.Mode())
	}

	// The interquartile width shrinks with more evidence.
	smallIQR := small.Quantile(0.75) - small.Quantile(0.25)
	largeIQR := large.Quantile(0.75) - large.Quantile(0.25)
	if largeIQR >= smallIQR {
		t.Fatalf("spread did not shrink: small IQR %g, large IQR %g", smallIQR, largeIQR)
	}
}

func TestComputePosteriorCompoundModel(t *testing.T) {
	engine := NewEngine(500)

	// With the at-least-one-of-4 transform the likelihood sees a larger
	// event probability than the grid parameter, so the posterior shifts
	// below the raw success rate.
	prior := domain.PriorSpec{Alpha: 2, Beta: 8}
	obs := domain.Observation{Trials: 50, Successes: 30}

	identity, err := engine.ComputePosterior(prior, obs, domain.Identity())
	if err != nil {
		t.Fatalf("identity run: %v", err)
	}
	compound, err := engine.ComputePosterior(prior, obs, domain.AtLeastOneOf(4))
	if err != nil {
		t.Fatalf("compound run: %v", err)
	}

	if compound.Mode() >= identity.Mode() {
		t.Fatalf("compound posterior should peak below identity: %g vs %g",
			compound.Mode(), identity.Mode())
	}
}

func TestComputePosteriorValidation(t *testing.T) {
	engine := NewEngine(100)

	if _, err := engine.ComputePosterior(domain.PriorSpec{Alpha: 0, Beta: 1}, domain.Observation{Trials: 1, Successes: 0}, nil); !errors.Is(err, core.ErrInvalidPrior) {
		t.Fatalf("expected ErrInvalidPrior, got %v", err)
	}
	if _, err := engine.ComputePosterior(domain.PriorSpec{Alpha: 1, Beta: 1}, domain.Observation{Trials: 1, Successes: 2}, nil); !errors.Is(err, core.ErrInvalidObservation) {
		t.Fatalf("expected ErrInvalidObservation, got %v", err)
	}
}

func TestComputePosteriorDegenerate(t *testing.T) {
	engine := NewEngine(500)

	// A prior concentrated at 1 against overwhelming evidence of 0:
	// the product underflows at every grid point.
	prior := domain.PriorSpec{Alpha: 1000, Beta: 1}
	obs := domain.Observation{Trials: 5_000_000, Successes: 0}

	_, err := engine.ComputePosterior(prior, obs, domain.Identity())
	if !errors.Is(err, core.ErrDegeneratePosterior) {
		t.Fatalf("expected ErrDegeneratePosterior, got %v", err)
	}
}

func TestBinomialPMFBoundaries(t *testing.T) {
	if got := binomialPMF(0, 10, 0); got != 1 {
		t.Fatalf("P(K=0|p=0) = %g, want 1", got)
	}
	if got := binomialPMF(3, 10, 0); got != 0 {
		t.Fatalf("P(K=3|p=0) = %g, want 0", got)
	}
	if got := binomialPMF(10, 10, 1); got != 1 {
		t.Fatalf("P(K=10|p=1) = %g, want 1", got)
	}
	if got := binomialPMF(9, 10, 1); got != 0 {
		t.Fatalf("P(K=9|p=1) = %g, want 0", got)
	}
	if got := binomialPMF(5, 10, 0.5); math.IsNaN(got) || got <= 0 {
		t.Fatalf("interior pmf should be positive and finite, got %g", got)
	}
}
