package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"talent-match/internal/database"
)

// EnsureTableColumns fails unless every named column exists on the public table.
func EnsureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return fmt.Errorf("ensure columns of %s: nil db", table)
	}
	if table == "" {
		return errors.New("ensure columns: empty table name")
	}
	for _, col := range columns {
		if col == "" {
			return fmt.Errorf("ensure columns of %s: empty column name", table)
		}
	}

	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return fmt.Errorf("list columns of %s: %w", table, err)
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return fmt.Errorf("scan column of %s: %w", table, err)
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("list columns of %s: %w", table, err)
	}

	var missing []string
	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			missing = append(missing, table+"."+col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("schema mismatch: missing columns %s", strings.Join(missing, ", "))
	}
	return nil
}
