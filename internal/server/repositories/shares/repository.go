// Package shares stores recipes users send to each other.
package shares

import (
	"context"

	"github.com/recipesearch/recipesearch/internal/server/models"
)

// Repository is an append-only ledger of shared recipes.
type Repository interface {
	// Create records that sender shared recipeID with receiver. It returns
	// common.ErrReceiverNotFound and writes nothing when either username is
	// unknown.
	Create(ctx context.Context, sender, receiver string, recipeID int64) error

	// ListReceived returns what others shared with userName, oldest first.
	ListReceived(ctx context.Context, userName string) ([]models.ReceivedRecipe, error)
}
