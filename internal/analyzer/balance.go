package analyzer

import (
	"math"
	"strings"

	"github.com/alexanderramin/cadence/internal/domain"
)

const (
	afterHoursStartHour = 19

	poorAfterHoursDays     = 3
	poorPersonalRatioPct   = 10
	modestAfterHoursDays   = 1
	modestPersonalRatioPct = 20
)

var exerciseKeywords = []string{"gym", "workout", "yoga", "pilates", "run", "swim", "exercise", "climbing"}

// analyzeBalance reads the work-life split from the personal-event share,
// late-evening work days, and whether a recurring exercise habit exists.
func analyzeBalance(events []domain.ClassifiedEvent) domain.WorkLifeBalance {
	balance := domain.WorkLifeBalance{
		Status:     domain.BalanceGood,
		Confidence: confidenceFor(dimBalance, len(events)),
	}

	var total, personal int
	afterHoursDays := make(map[string]bool)
	for _, e := range events {
		if !active(e) {
			continue
		}
		total++
		if e.Calendar == domain.CalendarPersonal || e.Category == domain.CategoryPersonal {
			personal++
		}
		if e.Start.Hour() >= afterHoursStartHour && e.Calendar != domain.CalendarPersonal && !e.AllDay {
			afterHoursDays[dateKey(e.Start)] = true
		}
		if e.Recurring && matchesExercise(e.Title) {
			balance.HasExerciseRoutine = true
		}
	}
	if total == 0 {
		return balance
	}

	balance.PersonalRatio = int(math.Round(float64(personal) / float64(total) * 100))
	balance.AfterHoursDays = len(afterHoursDays)
	switch {
	case balance.AfterHoursDays >= poorAfterHoursDays || balance.PersonalRatio < poorPersonalRatioPct:
		balance.Status = domain.BalancePoor
	case balance.AfterHoursDays >= modestAfterHoursDays || balance.PersonalRatio < modestPersonalRatioPct:
		balance.Status = domain.BalanceModerate
	}
	return balance
}

func matchesExercise(title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range exerciseKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
