package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/cadence/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func insertEvent(ctx context.Context, tx db.DBTX, id string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO events (id, source_id, uid, title, start_at, end_at, created_at, updated_at)
		 VALUES (?, 'work', ?, 'Standup', '2026-08-31T09:00:00Z', '2026-08-31T09:15:00Z',
		         '2026-08-31T00:00:00Z', '2026-08-31T00:00:00Z')`, id, "uid-"+id)
	return err
}

func eventExists(uow *db.SQLiteUnitOfWork, id string) bool {
	var found bool
	_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		var n int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM events WHERE id = ?`, id).Scan(&n); err != nil {
			return err
		}
		found = n > 0
		return nil
	})
	return found
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertEvent(ctx, tx, "e1")
	})
	require.NoError(t, err)
	assert.True(t, eventExists(uow, "e1"), "event should exist after commit")
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertEvent(ctx, tx, "e2"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")
	assert.False(t, eventExists(uow, "e2"), "event should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertEvent(ctx, tx, "e3")
			panic("boom")
		})
	})
	assert.False(t, eventExists(uow, "e3"), "event should not exist after panic rollback")
}
