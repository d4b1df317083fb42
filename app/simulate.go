package app

import "math/rand"

// simulateBinomial draws one Binomial(n, p) sample: the number of
// successes in n Bernoulli trials
func simulateBinomial(n int, p float64, rng *rand.Rand) int {
	successes := 0
	for i := 0; i < n; i++ {
		if rng.Float64() < p {
			successes++
		}
	}
	return successes
}
