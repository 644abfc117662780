package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/recipesearch/recipesearch/internal/common"
	"github.com/recipesearch/recipesearch/internal/logging"
	"github.com/recipesearch/recipesearch/internal/server/models"
	"github.com/recipesearch/recipesearch/internal/server/repositories/repomanager"
)

// RecipeService searches and fetches recipes.
type RecipeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
}

func NewRecipeService(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger) *RecipeService {
	return &RecipeService{db: db, repomanager: m, log: log.With("module", "recipes")}
}

// ParseKeywords lowercases the query and splits it on whitespace, dropping
// repeated keywords.
func ParseKeywords(query string) []string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(query)))
	seen := make(map[string]struct{}, len(fields))
	keywords := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		keywords = append(keywords, f)
	}
	return keywords
}

// Search returns the recipes matching every keyword. A store failure is
// logged and reported as no results.
func (s *RecipeService) Search(ctx context.Context, keywords []string) []models.RecipeSummary {
	out := []models.RecipeSummary{}
	if len(keywords) == 0 {
		return out
	}

	found, err := s.repomanager.Recipes(s.db).Search(ctx, keywords)
	if err != nil {
		s.log.Error(ctx, "recipe search failed", "keywords", keywords, "error", err)
		return out
	}

	for i := range found {
		out = append(out, found[i].Summary())
	}
	return out
}

// Get returns one recipe or common.ErrorNotFound.
func (s *RecipeService) Get(ctx context.Context, id int64) (*models.RecipeSummary, error) {
	rec, err := s.repomanager.Recipes(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error loading recipe: %w", err)
	}
	summary := rec.Summary()
	return &summary, nil
}
