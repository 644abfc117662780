package shares

import (
	"context"
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

func (r *SQLRepository) Create(ctx context.Context, sender, receiver string, recipeID int64) error {

	query :=
		`INSERT INTO shared_recipes (sender_id, receiver_id, recipe_id)
		 SELECT s.id, r.id, CAST($3 AS BIGINT)
		 FROM users s JOIN users r ON r.username = $2
		 WHERE s.username = $1
		 `

	res, err := r.db.ExecContext(ctx, query, sender, receiver, recipeID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	if n == 0 {
		return common.ErrReceiverNotFound
	}

	return nil
}

func (r *SQLRepository) ListReceived(ctx context.Context, userName string) ([]models.ReceivedRecipe, error) {

	query :=
		`SELECT r.id, COALESCE(r.naziv_dat, ''), s.username
		 FROM shared_recipes sr
		 JOIN users me ON me.id = sr.receiver_id
		 JOIN users s ON s.id = sr.sender_id
		 JOIN recepti r ON r.id = sr.recipe_id
		 WHERE me.username = $1
		 ORDER BY sr.id
		 `

	rows, err := r.db.QueryContext(ctx, query, userName)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.ReceivedRecipe{}
	for rows.Next() {
		var rec models.ReceivedRecipe
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Sender); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
