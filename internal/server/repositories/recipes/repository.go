// Package recipes provides read access to the externally loaded recipe table.
package recipes

import (
	"context"

	"github.com/recipesearch/recipesearch/internal/server/models"
)

// Repository searches and fetches recipes.
type Repository interface {
	// Search returns recipes whose raw or lemmatized words contain every
	// keyword, ordered by id. An empty keyword list yields no recipes.
	Search(ctx context.Context, keywords []string) ([]models.Recipe, error)

	// GetByID returns common.ErrorNotFound when no recipe has the id.
	GetByID(ctx context.Context, id int64) (*models.Recipe, error)
}
