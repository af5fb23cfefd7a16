package domain

import "time"

// CalendarEvent is one provider calendar entry. The provider collaborator
// owns acquisition and well-formedness (End not before Start); the engine
// treats events as immutable input.
type CalendarEvent struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Start         time.Time    `json:"start"`
	End           time.Time    `json:"end"`
	AllDay        bool         `json:"all_day"`
	AttendeeCount int          `json:"attendee_count"`
	Calendar      CalendarType `json:"calendar"`
	Recurring     bool         `json:"recurring"`
	Status        EventStatus  `json:"status"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// DurationMinutes returns the event length in whole minutes.
func (e CalendarEvent) DurationMinutes() int {
	return int(e.End.Sub(e.Start).Minutes())
}

// OnDate reports whether the event starts on the given calendar day
// in the event's own location.
func (e CalendarEvent) OnDate(y int, m time.Month, d int) bool {
	ey, em, ed := e.Start.Date()
	return ey == y && em == m && ed == d
}

// ClassifiedEvent is a CalendarEvent plus inferred semantics. It is derived
// on demand and never persisted.
type ClassifiedEvent struct {
	CalendarEvent

	Category  EventCategory    `json:"category"`
	Energy    EnergyLevel      `json:"energy"`
	Intensity MeetingIntensity `json:"intensity,omitempty"`
}
