package user

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("user not found")

// User is the durable local identity a Google account maps onto.
// JSON field names follow the wire contract consumed by the mobile client.
type User struct {
	ID        string    `json:"_id"`
	GoogleID  string    `json:"googleId"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUser carries the verified claims a first sign-in creates a row from.
type NewUser struct {
	GoogleID string
	Email    string
	Name     string
}

// Store persists users keyed by their Google subject id. Implementations
// must guarantee at most one row per google_id under concurrent writers.
type Store interface {
	// FindByGoogleID returns ErrNotFound when no user exists for the id.
	FindByGoogleID(ctx context.Context, googleID string) (*User, error)

	// Create inserts a user for a google_id not seen before. If a
	// concurrent request already inserted the same google_id, Create
	// returns that existing row instead of failing.
	Create(ctx context.Context, n NewUser) (*User, error)
}
