package classifier

import (
	"strings"

	"github.com/alexanderramin/cadence/internal/domain"
)

// Classifier tags raw calendar events with semantic categories and energy
// cost. It is stateless apart from its immutable ruleset and safe for
// concurrent use.
type Classifier struct {
	rules Ruleset
}

// New returns a Classifier using the given ruleset.
func New(rules Ruleset) *Classifier {
	return &Classifier{rules: rules}
}

// NewDefault returns a Classifier using DefaultRuleset.
func NewDefault() *Classifier {
	return New(DefaultRuleset())
}

// ClassifyTitle maps a title to exactly one category. Rules are evaluated in
// priority order; no keyword match yields CategoryOther.
func (c *Classifier) ClassifyTitle(title string) domain.EventCategory {
	lower := strings.ToLower(title)
	for _, rule := range c.rules.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Category
			}
		}
	}
	return domain.CategoryOther
}

// ClassifyAttendees maps an attendee count to a meeting intensity.
func ClassifyAttendees(count int) domain.MeetingIntensity {
	switch {
	case count <= 1:
		return domain.IntensitySolo
	case count == 2:
		return domain.IntensityOneOnOne
	case count <= 5:
		return domain.IntensitySmall
	case count <= 10:
		return domain.IntensityMedium
	default:
		return domain.IntensityLarge
	}
}

// baseEnergy is the fixed category→energy table. Unknown categories cost
// little rather than nothing, so unmatched events still register as load.
func baseEnergy(cat domain.EventCategory) domain.EnergyLevel {
	switch cat {
	case domain.CategoryPresentation:
		return domain.EnergyHigh
	case domain.CategoryMeeting, domain.CategoryFocus, domain.CategoryOneOnOne:
		return domain.EnergyMedium
	case domain.CategoryMeal, domain.CategoryPersonal:
		return domain.EnergyLow
	case domain.CategoryHealth, domain.CategoryBreak:
		return domain.EnergyRecovery
	default:
		return domain.EnergyLow
	}
}

// ClassifyEvent combines title and attendee classification. The base energy
// level is upgraded to high for meeting-like events of medium or large
// intensity.
func (c *Classifier) ClassifyEvent(e domain.CalendarEvent) domain.ClassifiedEvent {
	cat := c.ClassifyTitle(e.Title)
	classified := domain.ClassifiedEvent{
		CalendarEvent: e,
		Category:      cat,
		Energy:        baseEnergy(cat),
	}
	if cat.IsMeetingLike() {
		classified.Intensity = ClassifyAttendees(e.AttendeeCount)
		if classified.Intensity == domain.IntensityMedium || classified.Intensity == domain.IntensityLarge {
			classified.Energy = domain.EnergyHigh
		}
	}
	return classified
}

// ClassifyAll classifies every event in order.
func (c *Classifier) ClassifyAll(events []domain.CalendarEvent) []domain.ClassifiedEvent {
	out := make([]domain.ClassifiedEvent, 0, len(events))
	for _, e := range events {
		out = append(out, c.ClassifyEvent(e))
	}
	return out
}
