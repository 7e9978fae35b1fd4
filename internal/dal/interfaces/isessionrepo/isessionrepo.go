package isessionrepo

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no live session row matches the token.
var ErrNotFound = errors.New("session not found")

// ISessionRepository defines the interface for session persistence.
type ISessionRepository interface {
	// Get returns the customer id for a non-expired session token.
	// Returns ErrNotFound when the token is unknown or expired.
	Get(ctx context.Context, token string) (string, error)

	// Save inserts or refreshes a session row.
	Save(ctx context.Context, token string, customerID string, expiresAt time.Time) error

	// Delete removes a session row. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
}
