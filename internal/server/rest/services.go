package rest

import (
	"context"
	"time"

	"github.com/recipesearch/recipesearch/internal/server/models"
)

// The interfaces below are the slices of the services package the HTTP layer
// depends on.

type CredentialService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}

type SessionService interface {
	Open(ctx context.Context, user *models.User) (string, time.Time, error)
	Resolve(ctx context.Context, token string) (*models.Session, error)
	Close(ctx context.Context, token string) error
}

type RecipeService interface {
	Search(ctx context.Context, keywords []string) []models.RecipeSummary
	Get(ctx context.Context, id int64) (*models.RecipeSummary, error)
}

type FavouriteService interface {
	Add(ctx context.Context, username string, recipeID int64) (bool, error)
	Remove(ctx context.Context, username string, recipeID int64) (bool, error)
	List(ctx context.Context, username string) ([]models.FavouriteRecipe, error)
}

type ShareService interface {
	Share(ctx context.Context, sender, receiver string, recipeID int64) error
	Received(ctx context.Context, username string) ([]models.ReceivedRecipe, error)
}

// Services bundles everything the handlers call.
type Services struct {
	Credentials CredentialService
	Sessions    SessionService
	Recipes     RecipeService
	Favourites  FavouriteService
	Shares      ShareService
}
