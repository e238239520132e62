package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"dss-mcp/types"
)

func newTestAuditLog(t *testing.T) *SQLiteAuditLog {
	t.Helper()

	log, err := NewSQLiteAuditLog(context.Background(), filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { log.Close() })

	return log
}

func TestRecordAndListInvocations(t *testing.T) {
	log := newTestAuditLog(t)
	ctx := context.Background()

	failure := "Project TEST does not exist"
	records := []types.InvocationRecord{
		{Tool: "project-list", DurationMS: 12, CreatedAt: "2026-08-25T10:00:00Z"},
		{Tool: "project-get-summary", DurationMS: 40, Failed: &failure, CreatedAt: "2026-08-25T10:01:00Z"},
		{Tool: "project-list", DurationMS: 9, CreatedAt: "2026-08-25T10:02:00Z"},
	}
	for _, record := range records {
		require.NoError(t, log.RecordInvocation(ctx, record))
	}

	listed, err := log.ListInvocations(ctx, types.InvocationQuery{})
	require.NoError(t, err)
	require.Len(t, listed, 3)

	// Most recent first
	require.Equal(t, "project-list", listed[0].Tool)
	require.Equal(t, "2026-08-25T10:02:00Z", listed[0].CreatedAt)
	require.Equal(t, "project-get-summary", listed[1].Tool)
	require.NotNil(t, listed[1].Failed)
	require.Equal(t, failure, *listed[1].Failed)
	require.Nil(t, listed[0].Failed)

	// Every record got an ID assigned
	for _, record := range listed {
		require.NotEmpty(t, record.ID)
	}
}

func TestListInvocationsFiltersByTool(t *testing.T) {
	log := newTestAuditLog(t)
	ctx := context.Background()

	require.NoError(t, log.RecordInvocation(ctx, types.InvocationRecord{Tool: "recipe-run", DurationMS: 100, CreatedAt: "2026-08-25T10:00:00Z"}))
	require.NoError(t, log.RecordInvocation(ctx, types.InvocationRecord{Tool: "project-list", DurationMS: 5, CreatedAt: "2026-08-25T10:01:00Z"}))

	listed, err := log.ListInvocations(ctx, types.InvocationQuery{Tool: "recipe-run"})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, "recipe-run", listed[0].Tool)
	require.Equal(t, int64(100), listed[0].DurationMS)
}

func TestListInvocationsPagination(t *testing.T) {
	log := newTestAuditLog(t)
	ctx := context.Background()

	timestamps := []string{
		"2026-08-25T10:00:00Z",
		"2026-08-25T10:01:00Z",
		"2026-08-25T10:02:00Z",
		"2026-08-25T10:03:00Z",
	}
	for _, ts := range timestamps {
		require.NoError(t, log.RecordInvocation(ctx, types.InvocationRecord{Tool: "project-list", CreatedAt: ts}))
	}

	page, err := log.ListInvocations(ctx, types.InvocationQuery{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, "2026-08-25T10:03:00Z", page[0].CreatedAt)
	require.Equal(t, "2026-08-25T10:02:00Z", page[1].CreatedAt)

	page, err = log.ListInvocations(ctx, types.InvocationQuery{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, "2026-08-25T10:01:00Z", page[0].CreatedAt)
	require.Equal(t, "2026-08-25T10:00:00Z", page[1].CreatedAt)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "audit.db")

	log, err := NewSQLiteAuditLog(context.Background(), dbPath)
	require.NoError(t, err)
	require.NoError(t, log.RecordInvocation(context.Background(), types.InvocationRecord{Tool: "project-list"}))
	require.NoError(t, log.Close())

	// Reopening runs all migrations again against the same file
	log, err = NewSQLiteAuditLog(context.Background(), dbPath)
	require.NoError(t, err)
	defer log.Close()

	listed, err := log.ListInvocations(context.Background(), types.InvocationQuery{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
}
