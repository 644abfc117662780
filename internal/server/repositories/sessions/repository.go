// Package sessions declares the server-side session store and its SQL and
// Redis implementations.
package sessions

import (
	"context"
	"time"

	"github.com/recipesearch/recipesearch/internal/server/models"
)

// Repository stores login sessions keyed by their opaque id.
type Repository interface {
	// Create stores a new session.
	Create(ctx context.Context, s *models.Session) error

	// Find returns the session together with its owner's username.
	// A missing session, or one whose user no longer exists, yields
	// common.ErrorNotFound. Expiry is left to the caller.
	Find(ctx context.Context, id string) (*models.Session, error)

	// Delete removes the session. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error

	// DeleteExpired removes sessions that expired at or before now and
	// returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
