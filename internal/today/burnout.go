package today

import (
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

const burnoutWindowDays = 14

// Signal thresholds over the trailing two weeks.
const (
	strongWeekendEvents = 4
	weakWeekendEvents   = 2
	cancellationSignal  = 5
	afterHoursSignal    = 6
	lowFreeMinutes      = 60

	afterHoursStartHour = 19
)

var burnoutRecommendations = map[domain.BurnoutLevel]string{
	domain.BurnoutNone:     "No burnout signals right now. Keep the rhythm that is working.",
	domain.BurnoutWatch:    "A few early signals. Guard your time off this week.",
	domain.BurnoutWarning:  "Several warning signs. Protect at least one evening and one full weekend day.",
	domain.BurnoutCritical: "Strong burnout signals. Clear what you can and plan real recovery time now.",
}

// AnalyzeBurnoutRisk accumulates named signals over the trailing fourteen
// days and maps the signal count to a risk level. Each signal family
// contributes at most one entry.
func (a *Analyzer) AnalyzeBurnoutRisk(events []domain.CalendarEvent, profile domain.Profile, now time.Time) domain.BurnoutAssessment {
	cutoff := now.AddDate(0, 0, -burnoutWindowDays)
	classified := a.classifier.ClassifyAll(events)

	var weekendWork, cancellations, afterHours int
	for _, e := range classified {
		if e.Start.Before(cutoff) || e.Start.After(now) {
			continue
		}
		if e.Status == domain.StatusCancelled {
			cancellations++
			continue
		}
		if e.Calendar == domain.CalendarPersonal {
			continue
		}
		wd := e.Start.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			weekendWork++
		}
		if !e.AllDay && e.Start.Hour() >= afterHoursStartHour {
			afterHours++
		}
	}

	var signals []string
	switch {
	case weekendWork >= strongWeekendEvents:
		signals = append(signals, fmt.Sprintf("Worked through %d weekend events in the last two weeks", weekendWork))
	case weekendWork >= weakWeekendEvents:
		signals = append(signals, fmt.Sprintf("Some weekend work crept in (%d events)", weekendWork))
	}
	if cancellations >= cancellationSignal {
		signals = append(signals, fmt.Sprintf("%d cancellations suggest schedule churn", cancellations))
	}
	if afterHours >= afterHoursSignal {
		signals = append(signals, fmt.Sprintf("%d evening events past %d:00", afterHours, afterHoursStartHour))
	}
	if profile.AnalyzedEvents > 0 && profile.Stress.AvgFreeMinutes < lowFreeMinutes {
		signals = append(signals, fmt.Sprintf("Average free time is under %d minutes a day", lowFreeMinutes))
	}

	level := domain.BurnoutNone
	switch {
	case len(signals) >= 4:
		level = domain.BurnoutCritical
	case len(signals) >= 3:
		level = domain.BurnoutWarning
	case len(signals) >= 1:
		level = domain.BurnoutWatch
	}

	return domain.BurnoutAssessment{
		Level:          level,
		Signals:        signals,
		Recommendation: burnoutRecommendations[level],
	}
}
