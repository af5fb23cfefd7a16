package analyzer

import "github.com/alexanderramin/cadence/internal/domain"

// Chronotype boundaries in minutes since midnight.
const (
	morningCutoff       = 9 * 60  // before 09:00 → morning
	strongMorningCutoff = 8 * 60  // before 08:00 → confident morning
	eveningCutoff       = 10 * 60 // after 10:00 → evening
	strongEveningCutoff = 11 * 60 // after 11:00 → confident evening

	minChronotypeSamples = 5
	defaultFirstEventAvg = "09:00"
)

func neutralChronotype() domain.ChronotypeInsight {
	return domain.ChronotypeInsight{
		Type:          domain.ChronotypeNeutral,
		FirstEventAvg: defaultFirstEventAvg,
		Confidence:    domain.ConfidenceLow,
	}
}

// analyzeChronotype averages the time of day of each day's earliest timed
// event. Fewer than minChronotypeSamples usable days falls back to the
// neutral default.
func analyzeChronotype(events []domain.ClassifiedEvent) domain.ChronotypeInsight {
	firstByDay := make(map[string]int)
	for _, e := range events {
		if e.AllDay || !active(e) {
			continue
		}
		day := dateKey(e.Start)
		minute := e.Start.Hour()*60 + e.Start.Minute()
		if cur, ok := firstByDay[day]; !ok || minute < cur {
			firstByDay[day] = minute
		}
	}
	if len(firstByDay) < minChronotypeSamples {
		return neutralChronotype()
	}

	var sum int
	for _, minute := range firstByDay {
		sum += minute
	}
	avg := sum / len(firstByDay)

	insight := domain.ChronotypeInsight{FirstEventAvg: minutesToClock(avg)}
	switch {
	case avg < morningCutoff:
		insight.Type = domain.ChronotypeMorning
		insight.Confidence = domain.ConfidenceMedium
		if avg < strongMorningCutoff {
			insight.Confidence = domain.ConfidenceHigh
		}
	case avg > eveningCutoff:
		insight.Type = domain.ChronotypeEvening
		insight.Confidence = domain.ConfidenceMedium
		if avg > strongEveningCutoff {
			insight.Confidence = domain.ConfidenceHigh
		}
	default:
		insight.Type = domain.ChronotypeNeutral
		insight.Confidence = domain.ConfidenceMedium
	}
	return insight
}
