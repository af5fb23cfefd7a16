package analyzer

import (
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// meetingHeavyFactor marks a weekday as meeting-heavy when its meeting count
// exceeds this multiple of the Monday–Friday average.
const meetingHeavyFactor = 1.3

// analyzeWeekdayPatterns counts events and meetings per weekday and derives
// the busiest, lightest, and meeting-heavy working days.
func analyzeWeekdayPatterns(events []domain.ClassifiedEvent) domain.WeekdayPatterns {
	patterns := domain.WeekdayPatterns{
		Busiest:    time.Monday,
		Lightest:   time.Monday,
		Confidence: confidenceFor(dimWeekdayPatterns, len(events)),
	}

	for _, e := range events {
		if !active(e) {
			continue
		}
		wd := e.Start.Weekday()
		patterns.EventCounts[wd]++
		if e.Category.IsMeetingLike() {
			patterns.MeetingCounts[wd]++
		}
	}

	var meetingTotal int
	for wd := time.Monday; wd <= time.Friday; wd++ {
		if patterns.EventCounts[wd] > patterns.EventCounts[patterns.Busiest] {
			patterns.Busiest = wd
		}
		if patterns.EventCounts[wd] < patterns.EventCounts[patterns.Lightest] {
			patterns.Lightest = wd
		}
		meetingTotal += patterns.MeetingCounts[wd]
	}

	avg := float64(meetingTotal) / 5
	if avg > 0 {
		for wd := time.Monday; wd <= time.Friday; wd++ {
			if float64(patterns.MeetingCounts[wd]) > avg*meetingHeavyFactor {
				patterns.MeetingHeavyDay = append(patterns.MeetingHeavyDay, wd)
			}
		}
	}
	return patterns
}
