package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// migration represents a single database migration
type migration struct {
	name string
	fn   func(context.Context, *sql.Tx) error
}

// allMigrations contains all migrations in order. Each one must be idempotent
// since the whole list runs on every startup.
var allMigrations = []migration{
	{
		name: "create_invocations_table",
		fn:   createInvocationsTable,
	},
	{
		name: "create_invocations_tool_index",
		fn:   createInvocationsToolIndex,
	},
}

// migrate runs all database migrations
func (s *SQLiteAuditLog) migrate(ctx context.Context) error {
	for _, m := range allMigrations {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %s: %w", m.name, err)
		}

		if err := m.fn(ctx, tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %s failed: %w", m.name, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %s: %w", m.name, err)
		}
	}

	return nil
}

func createInvocationsTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS invocations (
		id TEXT PRIMARY KEY,
		tool TEXT NOT NULL,
		duration_ms INTEGER NOT NULL,
		failed TEXT,
		created_at TEXT NOT NULL
	)`)
	return err
}

func createInvocationsToolIndex(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, "CREATE INDEX IF NOT EXISTS idx_invocations_tool ON invocations (tool)")
	return err
}
