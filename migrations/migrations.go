// Package migrations embeds the Postgres schema for the calculation audit log.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jmoiron/sqlx"
)

//go:embed *.sql
var files embed.FS

// Apply executes every embedded migration in file name order. All statements
// are idempotent, so Apply is safe to run on every start.
func Apply(ctx context.Context, db *sqlx.DB) error {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)

	for _, name := range names {
		query, err := files.ReadFile(name)
		if err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, string(query)); err != nil {
			return fmt.Errorf("migration %s: %w", name, err)
		}
	}
	return nil
}
