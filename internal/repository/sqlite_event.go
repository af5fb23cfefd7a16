package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/db"
	"github.com/alexanderramin/cadence/internal/domain"
)

// SQLiteEventRepo implements EventRepo over a SQLite database. It accepts
// a db.DBTX so the same implementation works inside a transaction.
type SQLiteEventRepo struct {
	db db.DBTX
}

// NewSQLiteEventRepo creates a new SQLiteEventRepo.
func NewSQLiteEventRepo(dbtx db.DBTX) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: dbtx}
}

const eventColumns = `id, source_id, uid, title, start_at, end_at, all_day,
	attendee_count, calendar, recurring, status, created_at, updated_at`

func (r *SQLiteEventRepo) Upsert(ctx context.Context, e *StoredEvent) error {
	query := `INSERT INTO events (` + eventColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (source_id, uid, start_at) DO UPDATE SET
			title = excluded.title,
			end_at = excluded.end_at,
			all_day = excluded.all_day,
			attendee_count = excluded.attendee_count,
			calendar = excluded.calendar,
			recurring = excluded.recurring,
			status = excluded.status,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.SourceID,
		e.UID,
		e.Title,
		e.Start.UTC().Format(time.RFC3339),
		e.End.UTC().Format(time.RFC3339),
		boolToInt(e.AllDay),
		e.AttendeeCount,
		string(e.Calendar),
		boolToInt(e.Recurring),
		string(e.Status),
		e.CreatedAt.UTC().Format(time.RFC3339),
		e.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting event: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepo) ListByRange(ctx context.Context, from, to time.Time) ([]domain.CalendarEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM events
		WHERE start_at >= ? AND start_at < ?
		ORDER BY start_at`
	rows, err := r.db.QueryContext(ctx, query,
		from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing events by range: %w", err)
	}
	defer rows.Close()
	return r.scanEvents(rows)
}

func (r *SQLiteEventRepo) ListBySource(ctx context.Context, sourceID string) ([]domain.CalendarEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE source_id = ? ORDER BY start_at`
	rows, err := r.db.QueryContext(ctx, query, sourceID)
	if err != nil {
		return nil, fmt.Errorf("listing events by source: %w", err)
	}
	defer rows.Close()
	return r.scanEvents(rows)
}

func (r *SQLiteEventRepo) DeleteBySource(ctx context.Context, sourceID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE source_id = ?`, sourceID)
	if err != nil {
		return fmt.Errorf("deleting events by source: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting events: %w", err)
	}
	return n, nil
}

func (r *SQLiteEventRepo) scanEvents(rows *sql.Rows) ([]domain.CalendarEvent, error) {
	var out []domain.CalendarEvent
	for rows.Next() {
		var (
			e                  StoredEvent
			startStr, endStr   string
			createdStr, updStr string
			allDay, recurring  int
			calendar, status   string
		)
		if err := rows.Scan(
			&e.ID, &e.SourceID, &e.UID, &e.Title,
			&startStr, &endStr, &allDay, &e.AttendeeCount,
			&calendar, &recurring, &status, &createdStr, &updStr,
		); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		e.Start = parseTime(startStr)
		e.End = parseTime(endStr)
		e.CreatedAt = parseTime(createdStr)
		e.UpdatedAt = parseTime(updStr)
		e.AllDay = allDay == 1
		e.Recurring = recurring == 1
		e.Calendar = domain.CalendarType(calendar)
		e.Status = domain.EventStatus(status)
		out = append(out, e.CalendarEvent)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return out, nil
}
