package analyzer

import (
	"testing"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/stretchr/testify/assert"
)

// weekendStarts returns the most recent n distinct weekend days before
// testNow at the given hour.
func weekendStarts(n, hour int) []time.Time {
	var out []time.Time
	for d := 1; len(out) < n; d++ {
		start := daysAgo(d, hour, 0)
		wd := start.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			out = append(out, start)
		}
	}
	return out
}

func TestStress_LowByDefault(t *testing.T) {
	raw := []domain.CalendarEvent{
		newEvent("Weekly sync", daysAgo(3, 9, 0), 60),
		newEvent("Deep work", daysAgo(4, 14, 0), 60),
	}
	indicators := analyzeStress(classify(raw), testNow)

	assert.Equal(t, domain.StressLow, indicators.Level)
	assert.Equal(t, 0, indicators.RecentCancellations)
	assert.Equal(t, 0, indicators.WeekendWorkDays)
}

func TestStress_CancellationLadder(t *testing.T) {
	cancelled := func(n int) []domain.ClassifiedEvent {
		var raw []domain.CalendarEvent
		for i := 0; i < n; i++ {
			raw = append(raw, newEvent("Sync", daysAgo(1+i%6, 9+i, 0), 30, withCancelled()))
		}
		return classify(raw)
	}

	assert.Equal(t, domain.StressMedium, analyzeStress(cancelled(1), testNow).Level)
	assert.Equal(t, domain.StressHigh, analyzeStress(cancelled(3), testNow).Level)
	assert.Equal(t, domain.StressBurnout, analyzeStress(cancelled(5), testNow).Level)
}

func TestStress_OldCancellationsOutsideWindow(t *testing.T) {
	raw := []domain.CalendarEvent{
		newEvent("Sync", daysAgo(10, 9, 0), 30, withCancelled()),
	}
	indicators := analyzeStress(classify(raw), testNow)

	assert.Equal(t, 0, indicators.RecentCancellations)
	assert.Equal(t, domain.StressLow, indicators.Level)
}

func TestStress_WeekendWork(t *testing.T) {
	var raw []domain.CalendarEvent
	for _, start := range weekendStarts(3, 10) {
		raw = append(raw, domain.CalendarEvent{
			ID:       "we-" + start.Format("2006-01-02"),
			Title:    "Catch up on reports",
			Start:    start,
			End:      start.Add(2 * time.Hour),
			Calendar: domain.CalendarWork,
			Status:   domain.StatusConfirmed,
		})
	}
	indicators := analyzeStress(classify(raw), testNow)

	assert.Equal(t, 3, indicators.WeekendWorkDays)
	assert.Equal(t, domain.StressBurnout, indicators.Level)
}

func TestStress_PersonalWeekendEventsDoNotCount(t *testing.T) {
	var raw []domain.CalendarEvent
	for _, start := range weekendStarts(2, 11) {
		raw = append(raw, domain.CalendarEvent{
			ID:       "brunch-" + start.Format("2006-01-02"),
			Title:    "Brunch",
			Start:    start,
			End:      start.Add(time.Hour),
			Calendar: domain.CalendarPersonal,
			Status:   domain.StatusConfirmed,
		})
	}
	indicators := analyzeStress(classify(raw), testNow)

	assert.Equal(t, 0, indicators.WeekendWorkDays)
}

func TestStress_PackedDaysLowerFreeTime(t *testing.T) {
	var raw []domain.CalendarEvent
	for d := 1; d <= 5; d++ {
		// Nine hours booked leaves no free time in the workday model.
		raw = append(raw, newEvent("Offsite", daysAgo(d, 9, 0), 540))
	}
	indicators := analyzeStress(classify(raw), testNow)

	assert.Equal(t, 0, indicators.AvgFreeMinutes)
	assert.Equal(t, domain.StressBurnout, indicators.Level)
}

func TestStress_FreeTimeDefaultsToFullWorkday(t *testing.T) {
	indicators := analyzeStress(nil, testNow)
	assert.Equal(t, workdayMinutes, indicators.AvgFreeMinutes)
}
