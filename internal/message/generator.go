package message

import (
	"fmt"

	"github.com/alexanderramin/cadence/internal/action"
	"github.com/alexanderramin/cadence/internal/domain"
)

// Phase is how long the assistant has been observing the user. Later phases
// unlock more specific claims as confidence accrues.
type Phase string

const (
	PhaseDayOne  Phase = "day_one"
	PhaseWeekOne Phase = "week_one"
	PhaseWeekTwo Phase = "week_two"
)

// Generator renders profile insights as natural-language guidance. It is
// stateless; every method is a pure function of its arguments.
type Generator struct{}

// NewGenerator returns a message Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// PhaseSuggestions generates guidance appropriate to the observation phase:
// day one surfaces only raw counts, week one adds chronotype and work style,
// week two adds energy peaks, focus slots, and slump warnings.
func (g *Generator) PhaseSuggestions(p domain.Profile, phase Phase) []domain.Suggestion {
	var out []domain.Suggestion

	out = append(out, domain.Suggestion{
		Type:     domain.SuggestionBriefing,
		Message:  fmt.Sprintf("I've looked at %d events from your recent calendar.", p.AnalyzedEvents),
		Insights: []string{"event_count"},
		Priority: 1,
	})
	if phase == PhaseDayOne {
		return out
	}

	out = append(out, g.chronotypeSuggestion(p), g.workStyleSuggestion(p))
	if phase == PhaseWeekOne {
		return out
	}

	if len(p.EnergyPattern.PeakHours) > 0 {
		out = append(out, domain.Suggestion{
			Type: domain.SuggestionNudge,
			Message: action.Phrase(
				fmt.Sprintf("Your busiest scheduling peaks at %02d:00.", p.EnergyPattern.PeakHours[0]),
				p.EnergyPattern.Confidence),
			Insights:    []string{"energy_pattern"},
			Priority:    2,
			ActionLabel: "Plan demanding work there",
		})
	}
	if len(p.FocusTime.Slots) > 0 {
		slot := p.FocusTime.Slots[0]
		out = append(out, domain.Suggestion{
			Type: domain.SuggestionNudge,
			Message: action.Phrase(
				fmt.Sprintf("%s %02d:00-%02d:00 is usually free for deep work.", slot.Weekday, slot.StartHour, slot.EndHour),
				p.FocusTime.Confidence),
			Insights:    []string{"focus_time"},
			Priority:    2,
			ActionLabel: "Block it",
		})
	}
	if len(p.EnergyPattern.LowHours) > 0 {
		out = append(out, domain.Suggestion{
			Type: domain.SuggestionNudge,
			Message: action.Phrase(
				fmt.Sprintf("Energy tends to dip around %02d:00; lighter tasks fit better there.", p.EnergyPattern.LowHours[0]),
				p.EnergyPattern.Confidence),
			Insights: []string{"energy_pattern"},
			Priority: 3,
		})
	}
	return out
}

func (g *Generator) chronotypeSuggestion(p domain.Profile) domain.Suggestion {
	var statement string
	switch p.Chronotype.Type {
	case domain.ChronotypeMorning:
		statement = fmt.Sprintf("You're a morning person; your day usually starts around %s.", p.Chronotype.FirstEventAvg)
	case domain.ChronotypeEvening:
		statement = fmt.Sprintf("You ramp up later in the day, starting around %s.", p.Chronotype.FirstEventAvg)
	default:
		statement = "Your schedule doesn't lean strongly morning or evening."
	}
	return domain.Suggestion{
		Type:     domain.SuggestionBriefing,
		Message:  action.Phrase(statement, p.Chronotype.Confidence),
		Insights: []string{"chronotype"},
		Priority: 2,
	}
}

func (g *Generator) workStyleSuggestion(p domain.Profile) domain.Suggestion {
	var statement string
	switch p.WorkStyle.Type {
	case domain.StyleCollaborative:
		statement = fmt.Sprintf("Meetings make up %d%% of your work time; you're in a collaborative stretch.", p.WorkStyle.MeetingRatio)
	case domain.StyleIndependent:
		statement = fmt.Sprintf("Only %d%% of your work time is meetings; you mostly work independently.", p.WorkStyle.MeetingRatio)
	default:
		statement = "Your time splits evenly between meetings and solo work."
	}
	return domain.Suggestion{
		Type:     domain.SuggestionBriefing,
		Message:  action.Phrase(statement, p.WorkStyle.Confidence),
		Insights: []string{"work_style"},
		Priority: 2,
	}
}
