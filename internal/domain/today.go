package domain

import "time"

// TodayContext is the situational read of a single day, always recomputed
// against "now" rather than cached.
type TodayContext struct {
	Date                   time.Time `json:"date"`
	BusyLevel              BusyLevel `json:"busy_level"`
	MeetingCount           int       `json:"meeting_count"`
	FreeMinutes            int       `json:"free_minutes"`
	EnergyDrain            int       `json:"energy_drain"`
	HasConsecutiveMeetings bool      `json:"has_consecutive_meetings"`
	PresentationToday      bool      `json:"presentation_today"`
	PresentationTomorrow   bool      `json:"presentation_tomorrow"`
	HasLunchBreak          bool      `json:"has_lunch_break"`
	FirstEventTime         string    `json:"first_event_time,omitempty"`
	LastEventTime          string    `json:"last_event_time,omitempty"`
	Tone                   Tone      `json:"tone"`
}

// SpecialEventAlert announces an upcoming notable event or a same-day
// schedule overload.
type SpecialEventAlert struct {
	Kind      AlertKind `json:"kind"`
	Message   string    `json:"message"`
	Date      time.Time `json:"date"`
	DaysUntil int       `json:"days_until"`
}

type AlertKind string

const (
	AlertPresentation AlertKind = "presentation"
	AlertOverload     AlertKind = "overload"
)

// BurnoutAssessment is the 14-day burnout-risk read: an ordered list of
// observed signals and the matching recommendation.
type BurnoutAssessment struct {
	Level          BurnoutLevel `json:"level"`
	Signals        []string     `json:"signals"`
	Recommendation string       `json:"recommendation"`
}

// Suggestion is one piece of generated guidance, consumed and discarded by
// the caller.
type Suggestion struct {
	Type        SuggestionType `json:"type"`
	Message     string         `json:"message"`
	Insights    []string       `json:"insights"`
	Priority    int            `json:"priority"`
	ActionLabel string         `json:"action_label,omitempty"`
}
