package ports

import (
	"math/rand"
)

// RNGPort provides seeded random number generation for deterministic operations
type RNGPort interface {
	// Stream creates a deterministic random number generator for a named
	// operation. The same (name, seed) pair always yields an identical
	// stream, so simulated observations are reproducible.
	Stream(name string, seed int64) *rand.Rand
}
