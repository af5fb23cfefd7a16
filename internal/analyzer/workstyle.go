package analyzer

import (
	"math"

	"github.com/alexanderramin/cadence/internal/domain"
)

const (
	collaborativeRatioPct = 60 // above this share of meetings → collaborative
	independentRatioPct   = 30 // below this → independent
	soloPreferencePct     = 40
	routineSharePct       = 30
)

// analyzeWorkStyle reads collaboration intensity from the meeting share of
// work-calendar events and routine preference from the recurring share.
func analyzeWorkStyle(events []domain.ClassifiedEvent) domain.WorkStyle {
	var workEvents, meetings, recurring int
	for _, e := range events {
		if !active(e) {
			continue
		}
		if e.Recurring {
			recurring++
		}
		if e.Calendar == domain.CalendarWork || e.Calendar == domain.CalendarUnknown {
			workEvents++
			if e.Category.IsMeetingLike() {
				meetings++
			}
		}
	}

	style := domain.WorkStyle{
		Type:       domain.StyleBalanced,
		Confidence: confidenceFor(dimWorkStyle, len(events)),
	}
	if workEvents == 0 {
		return style
	}

	style.MeetingRatio = int(math.Round(float64(meetings) / float64(workEvents) * 100))
	switch {
	case style.MeetingRatio > collaborativeRatioPct:
		style.Type = domain.StyleCollaborative
	case style.MeetingRatio < independentRatioPct:
		style.Type = domain.StyleIndependent
	}
	style.PrefersSolo = style.MeetingRatio < soloPreferencePct

	if total := activeCount(events); total > 0 {
		style.PrefersRoutine = recurring*100 > routineSharePct*total
	}
	return style
}

func activeCount(events []domain.ClassifiedEvent) int {
	n := 0
	for _, e := range events {
		if active(e) {
			n++
		}
	}
	return n
}
