package classifier

import (
	"math"

	"github.com/alexanderramin/cadence/internal/domain"
)

// Per-hour drain scores by energy level. Recovery events pay energy back.
var energyScores = map[domain.EnergyLevel]float64{
	domain.EnergyHigh:     25,
	domain.EnergyMedium:   15,
	domain.EnergyLow:      5,
	domain.EnergyRecovery: -10,
}

// maxScoredHours caps how long a single event can drain for. A six-hour
// offsite does not cost three times a two-hour one.
const maxScoredHours = 2.0

// PredictDailyEnergyDrain estimates how draining a day's events are on a
// 0–100 scale. Each event contributes its energy score scaled by duration
// (capped at two hours); cancelled and all-day events are skipped.
func PredictDailyEnergyDrain(events []domain.ClassifiedEvent) int {
	var total float64
	for _, e := range events {
		if e.Status == domain.StatusCancelled || e.AllDay {
			continue
		}
		hours := e.End.Sub(e.Start).Hours()
		if hours < 0 {
			hours = 0
		}
		if hours > maxScoredHours {
			hours = maxScoredHours
		}
		total += energyScores[e.Energy] * hours
	}
	drain := int(math.Round(total))
	if drain < 0 {
		return 0
	}
	if drain > 100 {
		return 100
	}
	return drain
}
