package analyzer

import (
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// workdayMinutes is the 9-to-6 workday model used for free-time estimates.
const workdayMinutes = 540

const cancellationWindowDays = 7

// Per-signal thresholds for each stress level: cancellations in the trailing
// week, distinct weekend-work days, and average free minutes per working day.
// Any single signal crossing its threshold is enough.
var stressLadder = []struct {
	Level         domain.StressLevel
	Cancellations int
	WeekendDays   int
	FreeBelow     int
}{
	{domain.StressBurnout, 5, 3, 60},
	{domain.StressHigh, 3, 2, 120},
	{domain.StressMedium, 1, 1, 180},
}

// analyzeStress aggregates cancellation churn, weekend work, and calendar
// density into one stress read.
func analyzeStress(events []domain.ClassifiedEvent, now time.Time) domain.StressIndicators {
	cancelCutoff := now.AddDate(0, 0, -cancellationWindowDays)

	var cancellations int
	weekendDays := make(map[string]bool)
	busyByDay := make(map[string]int)

	for _, e := range events {
		if e.Status == domain.StatusCancelled {
			if !e.Start.Before(cancelCutoff) {
				cancellations++
			}
			continue
		}
		if e.AllDay {
			continue
		}
		wd := e.Start.Weekday()
		if (wd == time.Saturday || wd == time.Sunday) && e.Calendar != domain.CalendarPersonal {
			weekendDays[dateKey(e.Start)] = true
		}
		busyByDay[dateKey(e.Start)] += e.DurationMinutes()
	}

	avgFree := workdayMinutes
	if len(busyByDay) > 0 {
		var total int
		for _, busy := range busyByDay {
			free := workdayMinutes - busy
			if free < 0 {
				free = 0
			}
			total += free
		}
		avgFree = total / len(busyByDay)
	}

	indicators := domain.StressIndicators{
		Level:               domain.StressLow,
		RecentCancellations: cancellations,
		WeekendWorkDays:     len(weekendDays),
		AvgFreeMinutes:      avgFree,
		Confidence:          confidenceFor(dimStress, len(events)),
	}
	for _, rung := range stressLadder {
		if cancellations >= rung.Cancellations ||
			len(weekendDays) >= rung.WeekendDays ||
			avgFree < rung.FreeBelow {
			indicators.Level = rung.Level
			break
		}
	}
	return indicators
}
