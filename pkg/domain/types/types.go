package types

import (
	"fmt"

	"github.com/google/uuid"
)

// Category represents a request category
type Category string

const (
	CategoryBug         Category = "bug"
	CategoryImprovement Category = "improvement"
)

// String returns the string representation
func (c Category) String() string {
	return string(c)
}

// IsValid returns true if the category is a known one
func (c Category) IsValid() bool {
	return c == CategoryBug || c == CategoryImprovement
}

// UserID represents a portal user identifier
type UserID string

// String returns the string representation
func (id UserID) String() string {
	return string(id)
}

// SolicitationID represents a single intake submission identifier
type SolicitationID string

// String returns the string representation
func (id SolicitationID) String() string {
	return string(id)
}

// NewSolicitationID creates a new SolicitationID
func NewSolicitationID() SolicitationID {
	return SolicitationID(fmt.Sprintf("sol-%s", uuid.New().String()))
}

// ClientName represents a client display name from the catalog
type ClientName string

// String returns the string representation
func (n ClientName) String() string {
	return string(n)
}
