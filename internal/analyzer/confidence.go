package analyzer

import "github.com/alexanderramin/cadence/internal/domain"

// Dimension names used as keys into the confidence table.
const (
	dimEnergyPattern   = "energy_pattern"
	dimWorkStyle       = "work_style"
	dimStress          = "stress"
	dimBalance         = "balance"
	dimFocusTime       = "focus_time"
	dimWeekdayPatterns = "weekday_patterns"
)

type confidenceThresholds struct {
	High   int
	Medium int
}

// confidenceTable maps each dimension to its sample-count thresholds.
// Energy patterns need more samples than the rest before the hourly
// histogram stabilizes, so that dimension carries a higher pair.
var confidenceTable = map[string]confidenceThresholds{
	dimEnergyPattern:   {High: 30, Medium: 15},
	dimWorkStyle:       {High: 20, Medium: 10},
	dimStress:          {High: 20, Medium: 10},
	dimBalance:         {High: 20, Medium: 10},
	dimFocusTime:       {High: 20, Medium: 10},
	dimWeekdayPatterns: {High: 20, Medium: 10},
}

// confidenceFor maps an analyzed-sample count to a tier for the given
// dimension. Unknown dimensions always report low.
func confidenceFor(dimension string, samples int) domain.Confidence {
	t, ok := confidenceTable[dimension]
	if !ok {
		return domain.ConfidenceLow
	}
	switch {
	case samples >= t.High:
		return domain.ConfidenceHigh
	case samples >= t.Medium:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}
