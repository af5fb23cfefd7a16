package today

import (
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/classifier"
	"github.com/alexanderramin/cadence/internal/domain"
)

// workdayMinutes mirrors the 9-to-6 workday model used by the profile
// analyzer.
const workdayMinutes = 540

// Lunch window bounds in minutes since midnight.
const (
	lunchWindowStart = 11*60 + 30
	lunchWindowEnd   = 13*60 + 30
)

// Busy-level thresholds: any one of meetings at or above, free minutes
// below, or energy drain at or above promotes the day to that level.
var busyLadder = []struct {
	Level     domain.BusyLevel
	Meetings  int
	FreeBelow int
	Drain     int
}{
	{domain.BusyExtreme, 6, 60, 80},
	{domain.BusyHeavy, 4, 120, 60},
	{domain.BusyNormal, 2, 240, 40},
}

// Analyzer produces same-day situational reads. Stateless and safe for
// concurrent use.
type Analyzer struct {
	classifier *classifier.Classifier
}

// New returns a today-context Analyzer. A nil classifier falls back to the
// default ruleset.
func New(c *classifier.Classifier) *Analyzer {
	if c == nil {
		c = classifier.NewDefault()
	}
	return &Analyzer{classifier: c}
}

// AnalyzeDay reads today's schedule against the profile. The event list may
// span any range; only events on now's calendar day (plus the next day for
// the tomorrow-presentation flag) are considered.
func (a *Analyzer) AnalyzeDay(events []domain.CalendarEvent, profile domain.Profile, now time.Time) domain.TodayContext {
	classified := a.classifier.ClassifyAll(events)

	dayStart := startOfDay(now)
	dayEnd := dayStart.AddDate(0, 0, 1)
	nextDayEnd := dayStart.AddDate(0, 0, 2)

	var todays []domain.ClassifiedEvent
	ctx := domain.TodayContext{Date: dayStart}

	firstMin, lastMin := -1, -1
	var busyMinutes int
	lunchFree := true

	for _, e := range classified {
		if e.Status == domain.StatusCancelled {
			continue
		}
		if !e.Start.Before(dayEnd) && e.Start.Before(nextDayEnd) {
			if e.Category == domain.CategoryPresentation {
				ctx.PresentationTomorrow = true
			}
			continue
		}
		if e.Start.Before(dayStart) || !e.Start.Before(dayEnd) {
			continue
		}
		todays = append(todays, e)

		if e.Category.IsMeetingLike() {
			ctx.MeetingCount++
		}
		if e.Category == domain.CategoryPresentation {
			ctx.PresentationToday = true
		}
		if e.AllDay {
			continue
		}

		busyMinutes += e.DurationMinutes()
		startMin := e.Start.Hour()*60 + e.Start.Minute()
		endMin := startMin + e.DurationMinutes()
		if firstMin < 0 || startMin < firstMin {
			firstMin = startMin
		}
		if endMin > lastMin {
			lastMin = endMin
		}
		if startMin < lunchWindowEnd && endMin > lunchWindowStart {
			lunchFree = false
		}
	}

	ctx.FreeMinutes = workdayMinutes - busyMinutes
	if ctx.FreeMinutes < 0 {
		ctx.FreeMinutes = 0
	}
	ctx.EnergyDrain = classifier.PredictDailyEnergyDrain(todays)
	ctx.HasConsecutiveMeetings = classifier.DetectConsecutiveMeetings(todays).Consecutive
	ctx.HasLunchBreak = lunchFree
	if firstMin >= 0 {
		ctx.FirstEventTime = clock(firstMin)
		ctx.LastEventTime = clock(lastMin)
	}

	ctx.BusyLevel = busyLevel(ctx.MeetingCount, ctx.FreeMinutes, ctx.EnergyDrain)
	ctx.Tone = suggestedTone(profile.Stress.Level, ctx.BusyLevel)
	return ctx
}

func busyLevel(meetings, freeMinutes, drain int) domain.BusyLevel {
	for _, rung := range busyLadder {
		if meetings >= rung.Meetings || freeMinutes < rung.FreeBelow || drain >= rung.Drain {
			return rung.Level
		}
	}
	return domain.BusyLight
}

func suggestedTone(stress domain.StressLevel, busy domain.BusyLevel) domain.Tone {
	switch {
	case stress == domain.StressBurnout || busy == domain.BusyExtreme:
		return domain.ToneSupportive
	case stress == domain.StressHigh || busy == domain.BusyHeavy:
		return domain.ToneGentle
	default:
		return domain.ToneEnergetic
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func clock(min int) string {
	if min >= 24*60 {
		min = 24*60 - 1
	}
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}
