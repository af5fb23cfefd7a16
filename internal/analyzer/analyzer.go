package analyzer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/classifier"
	"github.com/alexanderramin/cadence/internal/domain"
)

// Options controls which events an analysis run looks at.
type Options struct {
	// RangeDays is how far back from "now" to analyze. Default 30.
	RangeDays int
	// IncludeRecurring keeps recurring events in the set. Default true.
	IncludeRecurring bool
	// MinEvents gates the analysis: below this count every dimension
	// reports its neutral default. Zero disables the gate.
	MinEvents int
}

// DefaultOptions returns the standard 30-day window including recurring
// events with no minimum-event gate.
func DefaultOptions() Options {
	return Options{RangeDays: 30, IncludeRecurring: true}
}

// Analyzer derives a behavioral profile from raw calendar events. It holds
// only immutable configuration and is safe for concurrent use.
type Analyzer struct {
	classifier *classifier.Classifier
	opts       Options
}

// New returns an Analyzer with the given classifier and options. A nil
// classifier falls back to the default ruleset.
func New(c *classifier.Classifier, opts Options) *Analyzer {
	if c == nil {
		c = classifier.NewDefault()
	}
	if opts.RangeDays <= 0 {
		opts.RangeDays = 30
	}
	return &Analyzer{classifier: c, opts: opts}
}

// NewDefault returns an Analyzer with default classification and options.
func NewDefault() *Analyzer {
	return New(classifier.NewDefault(), DefaultOptions())
}

// Analyze builds a fresh profile from the events visible in the configured
// window ending at now. It never fails: insufficient data yields neutral
// defaults at low confidence instead of an error.
func (a *Analyzer) Analyze(events []domain.CalendarEvent, now time.Time) domain.Profile {
	rangeStart := now.AddDate(0, 0, -a.opts.RangeDays)
	filtered := a.filter(events, rangeStart, now)
	classified := a.classifier.ClassifyAll(filtered)

	profile := domain.Profile{
		AnalyzedEvents: len(classified),
		RangeStart:     rangeStart,
		RangeEnd:       now,
		AnalyzedAt:     now,
		SchemaVersion:  domain.ProfileSchemaVersion,
	}

	if a.opts.MinEvents > 0 && len(classified) < a.opts.MinEvents {
		classified = nil
	}

	profile.Chronotype = analyzeChronotype(classified)
	profile.EnergyPattern = analyzeEnergyPattern(classified)
	profile.WorkStyle = analyzeWorkStyle(classified)
	profile.Stress = analyzeStress(classified, now)
	profile.Balance = analyzeBalance(classified)
	profile.FocusTime = analyzeFocusTime(classified)
	profile.WeekdayPatterns = analyzeWeekdayPatterns(classified)

	return profile
}

func (a *Analyzer) filter(events []domain.CalendarEvent, from, to time.Time) []domain.CalendarEvent {
	out := make([]domain.CalendarEvent, 0, len(events))
	for _, e := range events {
		if e.Start.Before(from) || e.Start.After(to) {
			continue
		}
		if e.Recurring && !a.opts.IncludeRecurring {
			continue
		}
		out = append(out, e)
	}
	return out
}

// active reports whether an event represents real scheduled load. Cancelled
// events stay in the analyzed set (the stress dimension counts them) but are
// excluded from load-based aggregations.
func active(e domain.ClassifiedEvent) bool {
	return e.Status != domain.StatusCancelled
}

// dateKey collapses a timestamp to its calendar day.
func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// minutesToClock formats minutes-since-midnight as "HH:MM".
func minutesToClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}
