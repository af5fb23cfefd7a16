package message

import (
	"fmt"

	"github.com/alexanderramin/cadence/internal/domain"
)

// StressMessages turns the stress dimension into warnings. An untroubled
// profile yields nothing.
func (g *Generator) StressMessages(p domain.Profile) []domain.Suggestion {
	var out []domain.Suggestion

	switch p.Stress.Level {
	case domain.StressBurnout:
		out = append(out, domain.Suggestion{
			Type:        domain.SuggestionWarning,
			Message:     "Your calendar has been relentless lately. Please carve out real recovery time this week.",
			Insights:    []string{"stress"},
			Priority:    1,
			ActionLabel: "Block recovery time",
		})
	case domain.StressHigh:
		out = append(out, domain.Suggestion{
			Type:     domain.SuggestionWarning,
			Message:  "The pace has been high. Keep an eye on your margins before they disappear.",
			Insights: []string{"stress"},
			Priority: 1,
		})
	}

	if p.Stress.WeekendWorkDays > 0 {
		out = append(out, domain.Suggestion{
			Type:     domain.SuggestionWarning,
			Message:  fmt.Sprintf("Work showed up on %d weekend day(s) recently. Weekends recover best when they stay yours.", p.Stress.WeekendWorkDays),
			Insights: []string{"stress", "weekend_work"},
			Priority: 2,
		})
	}
	return out
}

// BalanceMessages covers the work-life dimension: a poor-balance warning, and
// either an exercise celebration or a gentle suggestion to start one.
func (g *Generator) BalanceMessages(p domain.Profile) []domain.Suggestion {
	var out []domain.Suggestion

	if p.Balance.Status == domain.BalancePoor {
		out = append(out, domain.Suggestion{
			Type:     domain.SuggestionWarning,
			Message:  fmt.Sprintf("Personal time is down to %d%% of your calendar. Even one protected evening makes a difference.", p.Balance.PersonalRatio),
			Insights: []string{"balance"},
			Priority: 1,
		})
	}

	if p.Balance.HasExerciseRoutine {
		out = append(out, domain.Suggestion{
			Type:     domain.SuggestionCelebration,
			Message:  "Your recurring exercise slot is still standing. That habit carries everything else.",
			Insights: []string{"balance", "exercise"},
			Priority: 3,
		})
	} else {
		out = append(out, domain.Suggestion{
			Type:        domain.SuggestionNudge,
			Message:     "No recurring movement on the calendar. A standing 30-minute slot is the easiest way to start.",
			Insights:    []string{"balance", "exercise"},
			Priority:    3,
			ActionLabel: "Add a recurring slot",
		})
	}
	return out
}
