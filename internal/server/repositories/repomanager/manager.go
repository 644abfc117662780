package repomanager

import (
	"context"
	"database/sql"

	"github.com/recipesearch/recipesearch/internal/dbx"
	"github.com/recipesearch/recipesearch/internal/server/repositories/favourites"
	"github.com/recipesearch/recipesearch/internal/server/repositories/recipes"
	"github.com/recipesearch/recipesearch/internal/server/repositories/sessions"
	"github.com/recipesearch/recipesearch/internal/server/repositories/shares"
	"github.com/recipesearch/recipesearch/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Recipes(db dbx.DBTX) recipes.Repository
	Favourites(db dbx.DBTX) favourites.Repository
	Shares(db dbx.DBTX) shares.Repository
	Sessions(db dbx.DBTX) sessions.Repository
}
