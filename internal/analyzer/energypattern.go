package analyzer

import (
	"sort"

	"github.com/alexanderramin/cadence/internal/domain"
)

// Histogram bounds. Start hours outside the working band are ignored; slump
// candidates live in the early-afternoon band.
const (
	histFirstHour  = 8
	histLastHour   = 20
	slumpFirstHour = 12
	slumpLastHour  = 16
	peakHourCount  = 3
	lowHourCount   = 2
)

var defaultLowHours = []int{14, 15}

// analyzeEnergyPattern builds an hourly start-time histogram and reads the
// busiest hours as energy peaks and the quietest early-afternoon hours as
// the likely slump.
func analyzeEnergyPattern(events []domain.ClassifiedEvent) domain.EnergyPattern {
	hist := make(map[int]int)
	samples := 0
	for _, e := range events {
		if e.AllDay || !active(e) {
			continue
		}
		hour := e.Start.Hour()
		if hour < histFirstHour || hour > histLastHour {
			continue
		}
		hist[hour]++
		samples++
	}

	pattern := domain.EnergyPattern{
		PeakHours:  peakHours(hist),
		LowHours:   lowHours(hist),
		Confidence: confidenceFor(dimEnergyPattern, len(events)),
	}
	if samples == 0 {
		pattern.PeakHours = nil
		pattern.LowHours = defaultLowHours
	}
	return pattern
}

func peakHours(hist map[int]int) []int {
	hours := make([]int, 0, len(hist))
	for h := range hist {
		hours = append(hours, h)
	}
	sort.Slice(hours, func(i, j int) bool {
		if hist[hours[i]] != hist[hours[j]] {
			return hist[hours[i]] > hist[hours[j]]
		}
		return hours[i] < hours[j]
	})
	if len(hours) > peakHourCount {
		hours = hours[:peakHourCount]
	}
	sort.Ints(hours)
	return hours
}

func lowHours(hist map[int]int) []int {
	seen := false
	for h := slumpFirstHour; h <= slumpLastHour; h++ {
		if hist[h] > 0 {
			seen = true
			break
		}
	}
	if !seen {
		return defaultLowHours
	}

	hours := make([]int, 0, slumpLastHour-slumpFirstHour+1)
	for h := slumpFirstHour; h <= slumpLastHour; h++ {
		hours = append(hours, h)
	}
	sort.Slice(hours, func(i, j int) bool {
		if hist[hours[i]] != hist[hours[j]] {
			return hist[hours[i]] < hist[hours[j]]
		}
		return hours[i] < hours[j]
	})
	hours = hours[:lowHourCount]
	sort.Ints(hours)
	return hours
}
