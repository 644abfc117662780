package recipes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/recipesearch/recipesearch/internal/common"
	"github.com/recipesearch/recipesearch/internal/dbx"
	"github.com/recipesearch/recipesearch/internal/server/models"
)

type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Search(ctx context.Context, keywords []string) ([]models.Recipe, error) {
	if len(keywords) == 0 {
		return []models.Recipe{}, nil
	}

	query, args := buildSearchQuery(keywords)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Recipe{}
	for rows.Next() {
		var rec models.Recipe
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Image); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *SQLRepository) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	query :=
		`SELECT id, COALESCE(naziv_dat, ''), slika FROM recepti
		 WHERE id = $1
		 `

	rec := &models.Recipe{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rec.ID, &rec.Name, &rec.Image)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return rec, nil
}
