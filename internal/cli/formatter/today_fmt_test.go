package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/cadence/internal/contract"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatToday(t *testing.T) {
	resp := &contract.TodayResponse{
		Context: domain.TodayContext{
			BusyLevel:              domain.BusyHeavy,
			MeetingCount:           5,
			FreeMinutes:            90,
			EnergyDrain:            65,
			HasConsecutiveMeetings: true,
			FirstEventTime:         "09:00",
			LastEventTime:          "17:30",
		},
		Alerts: []domain.SpecialEventAlert{
			{Kind: domain.AlertPresentation, Message: "Presentation tomorrow: Quarterly review", Date: time.Now(), DaysUntil: 1},
		},
		Burnout: domain.BurnoutAssessment{
			Level:          domain.BurnoutWatch,
			Signals:        []string{"Worked 2 of the last 14 weekend days"},
			Recommendation: "Keep an eye on your weekends.",
		},
	}

	out := FormatToday(resp)
	assert.Contains(t, out, "HEAVY")
	assert.Contains(t, out, "5 meetings")
	assert.Contains(t, out, "1h 30m free")
	assert.Contains(t, out, "Schedule runs 09:00 to 17:30")
	assert.Contains(t, out, "Back-to-back")
	assert.Contains(t, out, "Presentation tomorrow")
	assert.Contains(t, out, "WATCH")
	assert.Contains(t, out, "weekend days")
}

func TestFormatImport(t *testing.T) {
	resp := &contract.ImportResponse{
		Sources: []contract.SourceImport{
			{SourceID: "work", Events: 12},
			{SourceID: "home", Err: "connection refused"},
		},
		TotalEvents: 12,
	}

	out := FormatImport(resp)
	assert.Contains(t, out, "12 events")
	assert.Contains(t, out, "home: connection refused")
	assert.Contains(t, out, "12 events stored")
}

func TestFormatSuggestionsEmpty(t *testing.T) {
	out := FormatSuggestions(&contract.SuggestResponse{})
	assert.Contains(t, out, "Nothing yet")
}
