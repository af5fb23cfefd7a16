package contract

import (
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// TodayRequest asks for an analysis of the current day's schedule.
type TodayRequest struct {
	Now *time.Time
	// AlertDaysAhead bounds how far ahead special-event alerts look.
	// Zero uses the service default.
	AlertDaysAhead int
}

func NewTodayRequest() TodayRequest {
	return TodayRequest{}
}

type TodayResponse struct {
	Context domain.TodayContext        `json:"context"`
	Alerts  []domain.SpecialEventAlert `json:"alerts"`
	Burnout domain.BurnoutAssessment   `json:"burnout"`
}

// BriefingRequest asks for the morning briefing message.
type BriefingRequest struct {
	Now *time.Time
	// Tone overrides the tone picked from the profile and day context.
	Tone domain.Tone
}

func NewBriefingRequest() BriefingRequest {
	return BriefingRequest{}
}

type BriefingResponse struct {
	Message string   `json:"message"`
	Actions []string `json:"actions"`
}

// SuggestRequest asks for progressive suggestions for the given phase.
type SuggestRequest struct {
	Now   *time.Time
	Phase string
}

func NewSuggestRequest() SuggestRequest {
	return SuggestRequest{}
}

type SuggestResponse struct {
	Suggestions []domain.Suggestion `json:"suggestions"`
	Wellbeing   []string            `json:"wellbeing"`
}

// EveningRequest asks for the end-of-day summary message.
type EveningRequest struct {
	Now       *time.Time
	Completed int
	Total     int
}

func NewEveningRequest() EveningRequest {
	return EveningRequest{}
}

type EveningResponse struct {
	Message string `json:"message"`
}
