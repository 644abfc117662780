// Package migrations embeds the goose SQL migrations, one directory per
// database dialect.
package migrations

import (
	"embed"
	"fmt"

	"github.com/recipesearch/recipesearch/internal/dbx"
)

//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS

// Dir returns the migration directory inside Migrations for the driver.
func Dir(driver string) (string, error) {
	switch driver {
	case dbx.DriverPostgres:
		return "postgres", nil
	case dbx.DriverSQLite:
		return "sqlite", nil
	default:
		return "", fmt.Errorf("no migrations for driver %q", driver)
	}
}
