package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/repository"
	"github.com/google/uuid"
)

var testUIDCounter atomic.Int64

// EventOption mutates a fixture event before it is returned.
type EventOption func(*repository.StoredEvent)

func WithSource(sourceID string) EventOption {
	return func(e *repository.StoredEvent) {
		e.SourceID = sourceID
	}
}

func WithUID(uid string) EventOption {
	return func(e *repository.StoredEvent) {
		e.UID = uid
	}
}

func WithCalendar(c domain.CalendarType) EventOption {
	return func(e *repository.StoredEvent) {
		e.Calendar = c
	}
}

func WithStatus(s domain.EventStatus) EventOption {
	return func(e *repository.StoredEvent) {
		e.Status = s
	}
}

func WithAttendees(n int) EventOption {
	return func(e *repository.StoredEvent) {
		e.AttendeeCount = n
	}
}

func WithAllDay() EventOption {
	return func(e *repository.StoredEvent) {
		e.AllDay = true
	}
}

func WithRecurring() EventOption {
	return func(e *repository.StoredEvent) {
		e.Recurring = true
	}
}

func WithDuration(d time.Duration) EventOption {
	return func(e *repository.StoredEvent) {
		e.End = e.Start.Add(d)
	}
}

// NewTestEvent builds a one-hour confirmed work event starting at the
// given time.
func NewTestEvent(title string, start time.Time, opts ...EventOption) *repository.StoredEvent {
	now := time.Now().UTC()
	e := &repository.StoredEvent{
		CalendarEvent: domain.CalendarEvent{
			ID:        uuid.New().String(),
			Title:     title,
			Start:     start,
			End:       start.Add(time.Hour),
			Calendar:  domain.CalendarWork,
			Status:    domain.StatusConfirmed,
			CreatedAt: now,
			UpdatedAt: now,
		},
		SourceID: "test",
		UID:      fmt.Sprintf("uid-%d", testUIDCounter.Add(1)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
