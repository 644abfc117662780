// Package repomanager provides a concrete RepositoryManager for the supported
// SQL drivers, wiring together repository constructors and database
// migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/recipesearch/recipesearch/internal/dbx"
	"github.com/recipesearch/recipesearch/internal/server/migrations"
	"github.com/recipesearch/recipesearch/internal/server/repositories/favourites"
	"github.com/recipesearch/recipesearch/internal/server/repositories/recipes"
	"github.com/recipesearch/recipesearch/internal/server/repositories/sessions"
	"github.com/recipesearch/recipesearch/internal/server/repositories/shares"
	"github.com/recipesearch/recipesearch/internal/server/repositories/users"
)

// SQLRepositoryManager vends SQL-backed repository implementations and runs
// the migrations matching its driver.
type SQLRepositoryManager struct {
	dialect string
	dir     string
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLRepository(db)
}

// Recipes returns a recipes.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Recipes(db dbx.DBTX) recipes.Repository {
	return recipes.NewSQLRepository(db)
}

// Favourites returns a favourites.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Favourites(db dbx.DBTX) favourites.Repository {
	return favourites.NewSQLRepository(db)
}

// Shares returns a shares.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Shares(db dbx.DBTX) shares.Repository {
	return shares.NewSQLRepository(db)
}

// Sessions returns the SQL session store bound to the provided DBTX.
func (m *SQLRepositoryManager) Sessions(db dbx.DBTX) sessions.Repository {
	return sessions.NewSQLRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(m.dialect); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, m.dir); err != nil {
		return fmt.Errorf("migrations error: %w", err)
	}
	return nil
}

// NewSQLRepositoryManager constructs a RepositoryManager for the given
// database/sql driver name (dbx.DriverPostgres or dbx.DriverSQLite).
func NewSQLRepositoryManager(driver string) (RepositoryManager, error) {
	dialect, err := dbx.GooseDialect(driver)
	if err != nil {
		return nil, err
	}
	dir, err := migrations.Dir(driver)
	if err != nil {
		return nil, err
	}
	return &SQLRepositoryManager{dialect: dialect, dir: dir}, nil
}
