package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// ComputationID identifies a single user-triggered posterior computation
type ComputationID ID

// NewComputationID creates a fresh computation identifier
func NewComputationID() ComputationID {
	return ComputationID(NewID())
}

func (id ComputationID) String() string { return ID(id).String() }

// ParseComputationID parses a string into ComputationID
func ParseComputationID(s string) (ComputationID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("computation ID cannot be empty")
	}
	return ComputationID(s), nil
}
