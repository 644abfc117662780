package favourites

import (
	"context"
	"fmt"

	"github.com/recipesearch/recipesearch/internal/dbx"
	"github.com/recipesearch/recipesearch/internal/server/models"
)

type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

// Add relies on the unique (user_id, recipe_id) index, so concurrent identical
// requests store a single row.
func (r *SQLRepository) Add(ctx context.Context, userName string, recipeID int64) (bool, error) {

	query :=
		`INSERT INTO favourites (user_id, recipe_id)
		 SELECT id, CAST($2 AS BIGINT) FROM users WHERE username = $1
		 ON CONFLICT (user_id, recipe_id) DO NOTHING
		 `

	res, err := r.db.ExecContext(ctx, query, userName, recipeID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return n == 1, nil
}

func (r *SQLRepository) Remove(ctx context.Context, userName string, recipeID int64) (bool, error) {

	query :=
		`DELETE FROM favourites
		 WHERE user_id = (SELECT id FROM users WHERE username = $1) AND recipe_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, userName, recipeID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return n > 0, nil
}

func (r *SQLRepository) List(ctx context.Context, userName string) ([]models.FavouriteRecipe, error) {

	query :=
		`SELECT r.id, COALESCE(r.naziv_dat, '')
		 FROM favourites f
		 JOIN users u ON u.id = f.user_id
		 JOIN recepti r ON r.id = f.recipe_id
		 WHERE u.username = $1
		 ORDER BY f.id
		 `

	rows, err := r.db.QueryContext(ctx, query, userName)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.FavouriteRecipe{}
	for rows.Next() {
		var fav models.FavouriteRecipe
		if err := rows.Scan(&fav.ID, &fav.Name); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
