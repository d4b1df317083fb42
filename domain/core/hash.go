package core

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// Fingerprint is the deterministic identity of a computation's inputs.
// Two computations with the same fingerprint produce the same curves
// (up to Monte Carlo seeding, which is part of the fingerprinted inputs).
type Fingerprint Hash

func (f Fingerprint) String() string { return Hash(f).String() }

// ComputeFingerprint hashes an ordered set of labeled input values
func ComputeFingerprint(tool string, inputs ...interface{}) Fingerprint {
	var data strings.Builder
	data.WriteString(tool)
	for _, in := range inputs {
		data.WriteString("|")
		data.WriteString(fmt.Sprintf("%v", in))
	}
	return Fingerprint(NewHash([]byte(data.String())))
}
