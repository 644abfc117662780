package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/recipesearch/recipesearch/internal/common"
	"github.com/recipesearch/recipesearch/internal/server/models"
	"github.com/recipesearch/recipesearch/internal/server/repositories/repomanager"
)

// FavouriteService manages each user's favourite recipes. Recipe ids are not
// checked against the recipe table; dangling ids never show up in List.
type FavouriteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewFavouriteService(db *sql.DB, m repomanager.RepositoryManager) *FavouriteService {
	return &FavouriteService{db: db, repomanager: m}
}

// Add reports whether the recipe was newly added.
func (s *FavouriteService) Add(ctx context.Context, username string, recipeID int64) (bool, error) {
	ok, err := s.repomanager.Favourites(s.db).Add(ctx, username, recipeID)
	if err != nil {
		return false, fmt.Errorf("error adding favourite: %w", err)
	}
	return ok, nil
}

// Remove reports whether the recipe was in the user's favourites.
func (s *FavouriteService) Remove(ctx context.Context, username string, recipeID int64) (bool, error) {
	ok, err := s.repomanager.Favourites(s.db).Remove(ctx, username, recipeID)
	if err != nil {
		return false, fmt.Errorf("error removing favourite: %w", err)
	}
	return ok, nil
}

func (s *FavouriteService) List(ctx context.Context, username string) ([]models.FavouriteRecipe, error) {
	list, err := s.repomanager.Favourites(s.db).List(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error listing favourites: %w", err)
	}
	return list, nil
}

// ShareService records recipes sent between users.
type ShareService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewShareService(db *sql.DB, m repomanager.RepositoryManager) *ShareService {
	return &ShareService{db: db, repomanager: m}
}

// Share returns common.ErrReceiverNotFound when receiver is not registered.
func (s *ShareService) Share(ctx context.Context, sender, receiver string, recipeID int64) error {
	err := s.repomanager.Shares(s.db).Create(ctx, sender, receiver, recipeID)
	if err != nil {
		if errors.Is(err, common.ErrReceiverNotFound) {
			return err
		}
		return fmt.Errorf("error sharing recipe: %w", err)
	}
	return nil
}

// Received lists recipes shared with username.
func (s *ShareService) Received(ctx context.Context, username string) ([]models.ReceivedRecipe, error) {
	list, err := s.repomanager.Shares(s.db).ListReceived(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error listing received recipes: %w", err)
	}
	return list, nil
}
