// Package favourites stores the per-user set of favourite recipes.
package favourites

import (
	"context"

	"github.com/recipesearch/recipesearch/internal/server/models"
)

// Repository manages (user, recipe) favourite pairs. Each pair exists at most
// once; users are addressed by username.
type Repository interface {
	// Add reports whether a new pair was stored. It is false for an unknown
	// user or a pair that already exists.
	Add(ctx context.Context, userName string, recipeID int64) (bool, error)

	// Remove reports whether a pair was deleted.
	Remove(ctx context.Context, userName string, recipeID int64) (bool, error)

	// List returns the user's favourites that resolve to an existing recipe,
	// in the order they were added.
	List(ctx context.Context, userName string) ([]models.FavouriteRecipe, error)
}
