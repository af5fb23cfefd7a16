package domain

import "time"

// ProfileSchemaVersion identifies the persisted profile layout. Bump when a
// stored field changes meaning so callers can discard stale profiles.
const ProfileSchemaVersion = 1

// Profile is the inferred behavioral signature for one user: seven
// independent dimensions, each carrying its own confidence tier.
// A Profile is a pure function of the analyzed events; it is never mutated
// in place, each analysis run returns a fresh value.
type Profile struct {
	Chronotype      ChronotypeInsight `json:"chronotype"`
	EnergyPattern   EnergyPattern     `json:"energy_pattern"`
	WorkStyle       WorkStyle         `json:"work_style"`
	Stress          StressIndicators  `json:"stress"`
	Balance         WorkLifeBalance   `json:"balance"`
	FocusTime       FocusTime         `json:"focus_time"`
	WeekdayPatterns WeekdayPatterns   `json:"weekday_patterns"`

	AnalyzedEvents int       `json:"analyzed_events"`
	RangeStart     time.Time `json:"range_start"`
	RangeEnd       time.Time `json:"range_end"`
	AnalyzedAt     time.Time `json:"analyzed_at"`
	SchemaVersion  int       `json:"schema_version"`
}

// ChronotypeInsight captures when the user's scheduled day tends to begin.
// FirstEventAvg is the mean first-event time of day as "HH:MM".
type ChronotypeInsight struct {
	Type          Chronotype `json:"type"`
	FirstEventAvg string     `json:"first_event_avg"`
	Confidence    Confidence `json:"confidence"`
}

// EnergyPattern marks the hours with the highest and lowest scheduling load,
// used as a proxy for energy.
type EnergyPattern struct {
	PeakHours  []int      `json:"peak_hours"`
	LowHours   []int      `json:"low_hours"`
	Confidence Confidence `json:"confidence"`
}

// WorkStyle describes collaboration intensity. MeetingRatio is a percentage
// of meetings among work-or-unknown-calendar events.
type WorkStyle struct {
	Type           WorkStyleType `json:"type"`
	MeetingRatio   int           `json:"meeting_ratio"`
	PrefersRoutine bool          `json:"prefers_routine"`
	PrefersSolo    bool          `json:"prefers_solo"`
	Confidence     Confidence    `json:"confidence"`
}

// StressIndicators aggregates schedule pressure signals.
type StressIndicators struct {
	Level               StressLevel `json:"level"`
	RecentCancellations int         `json:"recent_cancellations"`
	WeekendWorkDays     int         `json:"weekend_work_days"`
	AvgFreeMinutes      int         `json:"avg_free_minutes"`
	Confidence          Confidence  `json:"confidence"`
}

// WorkLifeBalance describes the personal/work split. PersonalRatio is a
// percentage of personal events among all events.
type WorkLifeBalance struct {
	Status             BalanceStatus `json:"status"`
	PersonalRatio      int           `json:"personal_ratio"`
	AfterHoursDays     int           `json:"after_hours_days"`
	HasExerciseRoutine bool          `json:"has_exercise_routine"`
	Confidence         Confidence    `json:"confidence"`
}

// TimeSlot is a candidate focus window on a given weekday.
type TimeSlot struct {
	Weekday   time.Weekday `json:"weekday"`
	StartHour int          `json:"start_hour"`
	EndHour   int          `json:"end_hour"`
	Quality   SlotQuality  `json:"quality"`
}

// Hours returns the slot length in whole hours.
func (s TimeSlot) Hours() int {
	return s.EndHour - s.StartHour
}

// FocusTime lists the best recurring event-free windows.
type FocusTime struct {
	Slots            []TimeSlot `json:"slots"`
	AvgDeepWorkHours float64    `json:"avg_deep_work_hours"`
	Confidence       Confidence `json:"confidence"`
}

// WeekdayPatterns summarizes per-weekday load. Counts are indexed by
// time.Weekday (Sunday = 0).
type WeekdayPatterns struct {
	EventCounts     [7]int         `json:"event_counts"`
	MeetingCounts   [7]int         `json:"meeting_counts"`
	Busiest         time.Weekday   `json:"busiest"`
	Lightest        time.Weekday   `json:"lightest"`
	MeetingHeavyDay []time.Weekday `json:"meeting_heavy_days"`
	Confidence      Confidence     `json:"confidence"`
}
