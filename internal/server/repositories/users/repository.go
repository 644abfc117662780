// Package users declares the repository contract for registered accounts.
package users

import (
	"context"

	"github.com/recipesearch/recipesearch/internal/server/models"
)

// Repository stores user accounts keyed by their unique username.
type Repository interface {
	// Create inserts the user and fills in its ID. It returns
	// common.ErrUsernameTaken when the username is already registered.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetUserByLogin returns common.ErrorNotFound for unknown usernames.
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
}
