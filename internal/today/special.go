package today

import (
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// DetectSpecialEvents scans the next daysAhead days for presentations and
// flags today as overloaded when the schedule is extreme. Alerts come back
// in chronological order.
func (a *Analyzer) DetectSpecialEvents(events []domain.CalendarEvent, now time.Time, daysAhead int) []domain.SpecialEventAlert {
	if daysAhead <= 0 {
		daysAhead = 1
	}
	classified := a.classifier.ClassifyAll(events)
	dayStart := startOfDay(now)
	horizon := dayStart.AddDate(0, 0, daysAhead)

	var alerts []domain.SpecialEventAlert

	ctx := a.AnalyzeDay(events, domain.Profile{}, now)
	if ctx.BusyLevel == domain.BusyExtreme {
		alerts = append(alerts, domain.SpecialEventAlert{
			Kind:      domain.AlertOverload,
			Message:   fmt.Sprintf("Today is packed: %d meetings and little room to breathe.", ctx.MeetingCount),
			Date:      dayStart,
			DaysUntil: 0,
		})
	}

	for _, e := range classified {
		if e.Status == domain.StatusCancelled || e.Category != domain.CategoryPresentation {
			continue
		}
		if e.Start.Before(dayStart) || !e.Start.Before(horizon) {
			continue
		}
		daysUntil := int(startOfDay(e.Start).Sub(dayStart).Hours() / 24)
		alerts = append(alerts, domain.SpecialEventAlert{
			Kind:      domain.AlertPresentation,
			Message:   presentationCountdown(e.Title, daysUntil),
			Date:      e.Start,
			DaysUntil: daysUntil,
		})
	}
	return alerts
}

func presentationCountdown(title string, daysUntil int) string {
	switch daysUntil {
	case 0:
		return fmt.Sprintf("%q is today. You have this.", title)
	case 1:
		return fmt.Sprintf("%q is tomorrow. A short run-through tonight helps.", title)
	default:
		return fmt.Sprintf("%q is in %d days.", title, daysUntil)
	}
}
