// Package migrations holds the embedded goose SQL migrations that define
// the database schema. Apply runs them at startup; goose records applied
// versions, so calling it on every start is a no-op after the first run.
package migrations

import (
	"context"
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var FS embed.FS

// Apply runs all pending migrations against db. It is safe to call on
// every process start.
func Apply(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}
