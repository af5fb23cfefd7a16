package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// StoredEvent is a calendar event with its persistence identity. SourceID
// names the subscription the event came from; UID carries the provider's
// own identifier so re-imports update in place.
type StoredEvent struct {
	domain.CalendarEvent
	SourceID string `json:"source_id"`
	UID      string `json:"uid"`
}

type EventRepo interface {
	// Upsert inserts the event or, when an event with the same source,
	// UID and start time already exists, updates it in place.
	Upsert(ctx context.Context, e *StoredEvent) error
	ListByRange(ctx context.Context, from, to time.Time) ([]domain.CalendarEvent, error)
	ListBySource(ctx context.Context, sourceID string) ([]domain.CalendarEvent, error)
	DeleteBySource(ctx context.Context, sourceID string) error
	Count(ctx context.Context) (int, error)
}

type ProfileRepo interface {
	// Get returns the stored profile, or ErrNotFound when no analysis
	// has run yet.
	Get(ctx context.Context) (*domain.Profile, error)
	Save(ctx context.Context, p *domain.Profile) error
}
