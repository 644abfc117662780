// Package testutil builds migrated SQLite databases for package tests.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/recipesearch/recipesearch/internal/cryptox"
	"github.com/recipesearch/recipesearch/internal/dbx"
	"github.com/recipesearch/recipesearch/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/require"
)

// FastArgon2Params keeps password hashing cheap in tests.
var FastArgon2Params = cryptox.Argon2Params{
	Memory:      1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

// NewSQLiteDB opens a fresh file database under t.TempDir and runs all
// migrations on it.
func NewSQLiteDB(t testing.TB) (*sql.DB, repomanager.RepositoryManager) {
	t.Helper()
	ctx := context.Background()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db3") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := dbx.Open(ctx, dbx.DriverSQLite, dsn, 4)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m, err := repomanager.NewSQLRepositoryManager(dbx.DriverSQLite)
	require.NoError(t, err)
	require.NoError(t, m.RunMigrations(ctx, db))

	return db, m
}

// SeedRecipe inserts a row into recepti the way the external loader does.
func SeedRecipe(t testing.TB, db *sql.DB, id int64, name, words, lemmas string, image []byte) {
	t.Helper()
	_, err := db.ExecContext(context.Background(),
		`INSERT INTO recepti (id, naziv_dat, slika, besede, leme) VALUES ($1, $2, $3, $4, $5)`,
		id, name, image, words, lemmas)
	require.NoError(t, err)
}
