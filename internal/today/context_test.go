package today

import (
	"testing"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/stretchr/testify/assert"
)

// Monday morning.
var testNow = time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return time.Date(2026, 8, 31, hour, minute, 0, 0, time.UTC)
}

func todayEvent(title string, start time.Time, durMin, attendees int) domain.CalendarEvent {
	return domain.CalendarEvent{
		ID:            title + start.Format("15:04"),
		Title:         title,
		Start:         start,
		End:           start.Add(time.Duration(durMin) * time.Minute),
		AttendeeCount: attendees,
		Calendar:      domain.CalendarWork,
		Status:        domain.StatusConfirmed,
	}
}

func meetingsEvery(hour, count int) []domain.CalendarEvent {
	var out []domain.CalendarEvent
	for i := 0; i < count; i++ {
		out = append(out, todayEvent("Team sync", at(hour+i, 0), 30, 4))
	}
	return out
}

func TestAnalyzeDay_EmptyDayIsLight(t *testing.T) {
	ctx := New(nil).AnalyzeDay(nil, domain.Profile{}, testNow)

	assert.Equal(t, domain.BusyLight, ctx.BusyLevel)
	assert.Equal(t, 0, ctx.MeetingCount)
	assert.Equal(t, workdayMinutes, ctx.FreeMinutes)
	assert.True(t, ctx.HasLunchBreak)
	assert.Empty(t, ctx.FirstEventTime)
	assert.Equal(t, domain.ToneEnergetic, ctx.Tone)
}

func TestAnalyzeDay_MeetingCountAndTimes(t *testing.T) {
	events := []domain.CalendarEvent{
		todayEvent("Team sync", at(9, 0), 60, 4),
		todayEvent("1:1 with Sam", at(14, 0), 30, 2),
		todayEvent("Deep work", at(15, 0), 120, 1),
	}
	ctx := New(nil).AnalyzeDay(events, domain.Profile{}, testNow)

	assert.Equal(t, 2, ctx.MeetingCount)
	assert.Equal(t, "09:00", ctx.FirstEventTime)
	assert.Equal(t, "17:00", ctx.LastEventTime)
}

func TestAnalyzeDay_BusyLevels(t *testing.T) {
	a := New(nil)

	assert.Equal(t, domain.BusyNormal,
		a.AnalyzeDay(meetingsEvery(9, 2), domain.Profile{}, testNow).BusyLevel)
	assert.Equal(t, domain.BusyHeavy,
		a.AnalyzeDay(meetingsEvery(9, 4), domain.Profile{}, testNow).BusyLevel)
	assert.Equal(t, domain.BusyExtreme,
		a.AnalyzeDay(meetingsEvery(9, 6), domain.Profile{}, testNow).BusyLevel)
}

func TestAnalyzeDay_ExtremeFromLowFreeTime(t *testing.T) {
	events := []domain.CalendarEvent{
		todayEvent("Deep work", at(9, 0), 500, 1),
	}
	ctx := New(nil).AnalyzeDay(events, domain.Profile{}, testNow)

	assert.Equal(t, 40, ctx.FreeMinutes)
	assert.Equal(t, domain.BusyExtreme, ctx.BusyLevel)
}

func TestAnalyzeDay_NeverExtremeWhenCalm(t *testing.T) {
	events := []domain.CalendarEvent{
		todayEvent("Team sync", at(9, 0), 30, 4),
		todayEvent("Lunch", at(12, 0), 60, 2),
	}
	ctx := New(nil).AnalyzeDay(events, domain.Profile{}, testNow)

	assert.NotEqual(t, domain.BusyExtreme, ctx.BusyLevel)
}

func TestAnalyzeDay_ConsecutiveMeetings(t *testing.T) {
	events := []domain.CalendarEvent{
		todayEvent("Sync A", at(9, 0), 30, 4),
		todayEvent("Sync B", at(9, 30), 30, 4),
		todayEvent("Sync C", at(10, 0), 30, 4),
	}
	ctx := New(nil).AnalyzeDay(events, domain.Profile{}, testNow)

	assert.True(t, ctx.HasConsecutiveMeetings)
}

func TestAnalyzeDay_LunchBlocked(t *testing.T) {
	events := []domain.CalendarEvent{
		todayEvent("Team sync", at(12, 0), 60, 4),
	}
	ctx := New(nil).AnalyzeDay(events, domain.Profile{}, testNow)

	assert.False(t, ctx.HasLunchBreak)
}

func TestAnalyzeDay_PresentationFlags(t *testing.T) {
	tomorrow := at(10, 0).AddDate(0, 0, 1)
	events := []domain.CalendarEvent{
		todayEvent("Quarterly presentation", at(15, 0), 60, 12),
		todayEvent("Roadmap presentation", tomorrow, 60, 8),
	}
	ctx := New(nil).AnalyzeDay(events, domain.Profile{}, testNow)

	assert.True(t, ctx.PresentationToday)
	assert.True(t, ctx.PresentationTomorrow)
}

func TestAnalyzeDay_IgnoresOtherDays(t *testing.T) {
	nextWeek := at(9, 0).AddDate(0, 0, 7)
	yesterday := at(9, 0).AddDate(0, 0, -1)
	events := []domain.CalendarEvent{
		todayEvent("Old sync", yesterday, 60, 4),
		todayEvent("Future sync", nextWeek, 60, 4),
	}
	ctx := New(nil).AnalyzeDay(events, domain.Profile{}, testNow)

	assert.Equal(t, 0, ctx.MeetingCount)
	assert.Equal(t, domain.BusyLight, ctx.BusyLevel)
}

func TestAnalyzeDay_CancelledEventsIgnored(t *testing.T) {
	cancelled := todayEvent("Team sync", at(12, 0), 60, 4)
	cancelled.Status = domain.StatusCancelled
	ctx := New(nil).AnalyzeDay([]domain.CalendarEvent{cancelled}, domain.Profile{}, testNow)

	assert.Equal(t, 0, ctx.MeetingCount)
	assert.True(t, ctx.HasLunchBreak)
}

func TestAnalyzeDay_Tone(t *testing.T) {
	a := New(nil)

	burnout := domain.Profile{Stress: domain.StressIndicators{Level: domain.StressBurnout}}
	assert.Equal(t, domain.ToneSupportive, a.AnalyzeDay(nil, burnout, testNow).Tone)

	high := domain.Profile{Stress: domain.StressIndicators{Level: domain.StressHigh}}
	assert.Equal(t, domain.ToneGentle, a.AnalyzeDay(nil, high, testNow).Tone)

	assert.Equal(t, domain.ToneSupportive,
		a.AnalyzeDay(meetingsEvery(9, 6), domain.Profile{}, testNow).Tone)
	assert.Equal(t, domain.ToneGentle,
		a.AnalyzeDay(meetingsEvery(9, 4), domain.Profile{}, testNow).Tone)
}
