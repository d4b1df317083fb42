package app

import (
	"math"
	"math/rand"
	"testing"

	"gobayes/domain/bayes"
	engine "gobayes/internal/bayes"
)

func newTestCoinService() *CoinService {
	return NewCoinService(engine.NewEngine(500))
}

func TestCoinComputePosterior(t *testing.T) {
	svc := newTestCoinService()

	res, err := svc.ComputePosterior(CoinRequest{Trials: 10, Heads: 3})
	if err != nil {
		t.Fatalf("ComputePosterior: %v", err)
	}

	if res.Posterior.Alpha != 13 || res.Posterior.Beta != 17 {
		t.Fatalf("expected posterior Beta(13,17), got Beta(%g,%g)", res.Posterior.Alpha, res.Posterior.Beta)
	}
	if len(res.Curves.Posterior) != 500 {
		t.Fatalf("expected 500 posterior points, got %d", len(res.Curves.Posterior))
	}
	if res.ComputationID == "" || res.Fingerprint == "" {
		t.Fatal("result must carry computation id and fingerprint")
	}

	// The posterior should peak between the prior mean (0.5) and the
	// observed rate (0.3).
	mode := res.Curves.Mode()
	if mode <= 0.3 || mode >= 0.5 {
		t.Fatalf("posterior mode %g outside (0.3, 0.5)", mode)
	}
}

func TestCoinComputePosteriorValidation(t *testing.T) {
	svc := newTestCoinService()

	if _, err := svc.ComputePosterior(CoinRequest{Trials: 0, Heads: 0}); err == nil {
		t.Fatal("expected error for zero trials")
	}
	if _, err := svc.ComputePosterior(CoinRequest{Trials: 5, Heads: 6}); err == nil {
		t.Fatal("expected error for heads > trials")
	}
}

func TestCoinPredictEndToEnd(t *testing.T) {
	svc := newTestCoinService()

	pred, err := svc.Predict(
		CoinRequest{Trials: 10, Heads: 3},
		bayes.PredictiveQuery{FutureTrials: 10, Threshold: 3, Comparator: bayes.Equal},
	)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}

	if pred.Posterior.Alpha != 13 || pred.Posterior.Beta != 17 {
		t.Fatalf("expected posterior Beta(13,17), got Beta(%g,%g)", pred.Posterior.Alpha, pred.Posterior.Beta)
	}

	const want = 0.17545771578029484
	if math.Abs(pred.Probability-want) > 1e-12 {
		t.Fatalf("predictive probability %.17g, want %.17g", pred.Probability, want)
	}
}

func TestCoinRandomQueryAlwaysValid(t *testing.T) {
	svc := newTestCoinService()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		query := svc.RandomQuery(rng)
		if err := query.Validate(); err != nil {
			t.Fatalf("random query %d invalid: %+v (%v)", i, query, err)
		}
		if query.FutureTrials < 5 || query.FutureTrials > 50 {
			t.Fatalf("future trials %d outside [5,50]", query.FutureTrials)
		}
	}
}

func TestCoinRandomQueryDeterministic(t *testing.T) {
	svc := newTestCoinService()

	a := svc.RandomQuery(rand.New(rand.NewSource(7)))
	b := svc.RandomQuery(rand.New(rand.NewSource(7)))
	if a != b {
		t.Fatalf("same seed produced different queries: %+v vs %+v", a, b)
	}
}
