// Package storage persists the tool invocation audit log.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Import SQLite driver for database/sql.

	"dss-mcp/types"
)

// SQLiteAuditLog implements types.AuditLog using SQLite
type SQLiteAuditLog struct {
	db *sql.DB
}

// NewSQLiteAuditLog opens (and if needed creates) the audit database at dbPath
// and brings its schema up to date.
func NewSQLiteAuditLog(ctx context.Context, dbPath string) (*SQLiteAuditLog, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	log := &SQLiteAuditLog{db: db}
	if err := log.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return log, nil
}

// RecordInvocation stores one tool invocation. A fresh ID and timestamp are
// assigned when the record does not carry them.
func (s *SQLiteAuditLog) RecordInvocation(ctx context.Context, record types.InvocationRecord) error {
	if record.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate invocation ID: %w", err)
		}
		record.ID = id.String()
	}
	if record.CreatedAt == "" {
		record.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	failed := sql.NullString{}
	if record.Failed != nil {
		failed.String = *record.Failed
		failed.Valid = true
	}

	query := `
	INSERT INTO invocations (id, tool, duration_ms, failed, created_at)
	VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query, record.ID, record.Tool, record.DurationMS, failed, record.CreatedAt)
	return err
}

// ListInvocations returns recorded invocations, most recent first
func (s *SQLiteAuditLog) ListInvocations(ctx context.Context, query types.InvocationQuery) ([]types.InvocationRecord, error) {
	if query.Limit <= 0 {
		query.Limit = 50
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	stmt := `
	SELECT id, tool, duration_ms, failed, created_at
	FROM invocations
	WHERE 1=1
	`
	var args []any

	if query.Tool != "" {
		stmt += " AND tool = ?"
		args = append(args, query.Tool)
	}

	stmt += " ORDER BY datetime(created_at) DESC, id DESC LIMIT ? OFFSET ?"
	args = append(args, query.Limit, query.Offset)

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []types.InvocationRecord
	for rows.Next() {
		var record types.InvocationRecord
		var failed sql.NullString

		if err := rows.Scan(&record.ID, &record.Tool, &record.DurationMS, &failed, &record.CreatedAt); err != nil {
			return nil, err
		}
		if failed.Valid && failed.String != "" {
			record.Failed = &failed.String
		}

		records = append(records, record)
	}

	return records, rows.Err()
}

// Close closes the database connection
func (s *SQLiteAuditLog) Close() error {
	return s.db.Close()
}
