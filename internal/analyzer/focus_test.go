package analyzer

import (
	"testing"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFocusTime_EmptyInput(t *testing.T) {
	focus := analyzeFocusTime(nil)

	assert.Empty(t, focus.Slots)
	assert.Zero(t, focus.AvgDeepWorkHours)
	assert.Equal(t, domain.ConfidenceLow, focus.Confidence)
}

func TestFocusTime_SlotsAroundSingleMeeting(t *testing.T) {
	// One Monday 9:00–10:00 meeting; testNow is a Monday so daysAgo(7) too.
	raw := []domain.CalendarEvent{
		newEvent("Team meeting", daysAgo(7, 9, 0), 60),
	}
	focus := analyzeFocusTime(classify(raw))

	require.NotEmpty(t, focus.Slots)
	first := focus.Slots[0]
	assert.Equal(t, time.Monday, first.Weekday)
	assert.Equal(t, 8, first.StartHour)
	assert.Equal(t, 9, first.EndHour)
	assert.Equal(t, domain.QualityGood, first.Quality)

	second := focus.Slots[1]
	assert.Equal(t, time.Monday, second.Weekday)
	assert.Equal(t, 10, second.StartHour)
	assert.Equal(t, 18, second.EndHour)
	assert.Equal(t, domain.QualityExcellent, second.Quality)
}

func TestFocusTime_CapsAtFiveSlots(t *testing.T) {
	raw := []domain.CalendarEvent{
		newEvent("Team meeting", daysAgo(7, 9, 0), 60),
	}
	focus := analyzeFocusTime(classify(raw))

	// Monday splits in two; Tuesday through Thursday are fully free, and
	// Friday is cut off by the five-slot cap.
	require.Len(t, focus.Slots, 5)
	assert.Equal(t, time.Thursday, focus.Slots[4].Weekday)

	// 1 + 8 + 10 + 10 + 10 free hours across the kept slots.
	assert.InDelta(t, 39.0/5, focus.AvgDeepWorkHours, 0.001)
}

func TestFocusTime_PartialHourBlocksWholeHour(t *testing.T) {
	// 9:30–10:30 blocks both the 9 and 10 o'clock hours.
	raw := []domain.CalendarEvent{
		newEvent("Team meeting", daysAgo(7, 9, 30), 60),
	}
	focus := analyzeFocusTime(classify(raw))

	require.NotEmpty(t, focus.Slots)
	assert.Equal(t, 8, focus.Slots[0].StartHour)
	assert.Equal(t, 9, focus.Slots[0].EndHour)
	assert.Equal(t, 11, focus.Slots[1].StartHour)
}

func TestFocusTime_CancelledEventsDoNotBlock(t *testing.T) {
	raw := []domain.CalendarEvent{
		newEvent("Team meeting", daysAgo(7, 9, 0), 60),
		newEvent("Ghost meeting", daysAgo(7, 12, 0), 60, withCancelled()),
	}
	focus := analyzeFocusTime(classify(raw))

	// The cancelled noon meeting leaves 10–18 intact.
	require.True(t, len(focus.Slots) >= 2)
	assert.Equal(t, 10, focus.Slots[1].StartHour)
	assert.Equal(t, 18, focus.Slots[1].EndHour)
}
