package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/recipesearch/recipesearch/internal/dbx"
	"github.com/recipesearch/recipesearch/internal/server/models"
	"github.com/recipesearch/recipesearch/internal/server/repositories/favourites"
	"github.com/recipesearch/recipesearch/internal/server/repositories/recipes"
	"github.com/recipesearch/recipesearch/internal/server/repositories/sessions"
	"github.com/recipesearch/recipesearch/internal/server/repositories/shares"
	"github.com/recipesearch/recipesearch/internal/server/repositories/users"
)

var errStore = errors.New("database is locked")

// brokenStore fails every call, standing in for an unavailable database.
type brokenStore struct{}

func (brokenStore) Create(context.Context, *models.User) (*models.User, error) { return nil, errStore }
func (brokenStore) GetUserByLogin(context.Context, string) (*models.User, error) {
	return nil, errStore
}
func (brokenStore) Search(context.Context, []string) ([]models.Recipe, error) { return nil, errStore }
func (brokenStore) GetByID(context.Context, int64) (*models.Recipe, error)    { return nil, errStore }

type brokenRepoManager struct{}

func (brokenRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (brokenRepoManager) Users(dbx.DBTX) users.Repository              { return brokenStore{} }
func (brokenRepoManager) Recipes(dbx.DBTX) recipes.Repository          { return brokenStore{} }
func (brokenRepoManager) Favourites(dbx.DBTX) favourites.Repository    { return brokenLedger{} }
func (brokenRepoManager) Shares(dbx.DBTX) shares.Repository            { return brokenLedger{} }
func (brokenRepoManager) Sessions(dbx.DBTX) sessions.Repository        { return brokenSessions{} }

type brokenLedger struct{}

func (brokenLedger) Add(context.Context, string, int64) (bool, error)    { return false, errStore }
func (brokenLedger) Remove(context.Context, string, int64) (bool, error) { return false, errStore }
func (brokenLedger) List(context.Context, string) ([]models.FavouriteRecipe, error) {
	return nil, errStore
}
func (brokenLedger) Create(context.Context, string, string, int64) error { return errStore }
func (brokenLedger) ListReceived(context.Context, string) ([]models.ReceivedRecipe, error) {
	return nil, errStore
}

type brokenSessions struct{}

func (brokenSessions) Create(context.Context, *models.Session) error { return errStore }
func (brokenSessions) Find(context.Context, string) (*models.Session, error) {
	return nil, errStore
}
func (brokenSessions) Delete(context.Context, string) error { return errStore }
func (brokenSessions) DeleteExpired(context.Context, time.Time) (int64, error) {
	return 0, errStore
}
