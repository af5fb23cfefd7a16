package engine

import (
	"sync"
	"time"

	"github.com/alexanderramin/cadence/internal/action"
	"github.com/alexanderramin/cadence/internal/analyzer"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/message"
	"github.com/alexanderramin/cadence/internal/today"
)

// Engine is the query facade over the analysis pipeline. It caches at most
// one profile per logical session; Analyze replaces the cache wholesale, so
// readers never observe a partial update. One Engine serves one user.
type Engine struct {
	analyzer *analyzer.Analyzer
	today    *today.Analyzer
	mapper   *action.Mapper
	messages *message.Generator

	// Clock supplies "now"; tests pin it. Defaults to time.Now.
	Clock func() time.Time

	mu      sync.RWMutex
	profile *domain.Profile
	events  []domain.CalendarEvent
}

// New wires an Engine from its parts. Nil parts fall back to defaults.
func New(a *analyzer.Analyzer, t *today.Analyzer, m *action.Mapper, g *message.Generator) *Engine {
	if a == nil {
		a = analyzer.NewDefault()
	}
	if t == nil {
		t = today.New(nil)
	}
	if m == nil {
		m = action.NewMapper(nil)
	}
	if g == nil {
		g = message.NewGenerator()
	}
	return &Engine{
		analyzer: a,
		today:    t,
		mapper:   m,
		messages: g,
		Clock:    time.Now,
	}
}

// NewDefault returns an Engine with all-default components.
func NewDefault() *Engine {
	return New(nil, nil, nil, nil)
}

// Analyze runs a full profile analysis over the supplied events and caches
// both for later queries. It never fails; empty input yields a neutral
// profile.
func (e *Engine) Analyze(events []domain.CalendarEvent) domain.Profile {
	profile := e.analyzer.Analyze(events, e.Clock())

	e.mu.Lock()
	e.profile = &profile
	e.events = append([]domain.CalendarEvent(nil), events...)
	e.mu.Unlock()
	return profile
}

// SetProfile installs a previously persisted profile (and optionally the
// events it was derived from) without re-analyzing.
func (e *Engine) SetProfile(p domain.Profile, events []domain.CalendarEvent) {
	e.mu.Lock()
	e.profile = &p
	e.events = append([]domain.CalendarEvent(nil), events...)
	e.mu.Unlock()
}

// Profile returns the cached profile, or nil before the first analysis.
func (e *Engine) Profile() *domain.Profile {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.profile == nil {
		return nil
	}
	p := *e.profile
	return &p
}

func (e *Engine) snapshot() (domain.Profile, []domain.CalendarEvent, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.profile == nil {
		return domain.Profile{}, nil, false
	}
	return *e.profile, e.events, true
}

// StressLevel reports the profile's stress level; ok is false before the
// first analysis.
func (e *Engine) StressLevel() (domain.StressLevel, bool) {
	p, _, ok := e.snapshot()
	if !ok {
		return "", false
	}
	return p.Stress.Level, true
}

// Chronotype reports the inferred chronotype; ok is false before the first
// analysis.
func (e *Engine) Chronotype() (domain.Chronotype, bool) {
	p, _, ok := e.snapshot()
	if !ok {
		return "", false
	}
	return p.Chronotype.Type, true
}

// PeakHours returns the profile's peak scheduling hours, or nil.
func (e *Engine) PeakHours() []int {
	p, _, ok := e.snapshot()
	if !ok {
		return nil
	}
	return append([]int(nil), p.EnergyPattern.PeakHours...)
}

// BestFocusTime returns the highest-quality focus slot, preferring excellent
// slots and otherwise the earliest found; nil when none exist.
func (e *Engine) BestFocusTime() *domain.TimeSlot {
	p, _, ok := e.snapshot()
	if !ok || len(p.FocusTime.Slots) == 0 {
		return nil
	}
	best := p.FocusTime.Slots[0]
	for _, s := range p.FocusTime.Slots {
		if s.Quality == domain.QualityExcellent && best.Quality != domain.QualityExcellent {
			best = s
		}
	}
	return &best
}

// Suggestions generates phase-appropriate guidance from the cached profile,
// or nil before the first analysis.
func (e *Engine) Suggestions(phase message.Phase) []domain.Suggestion {
	p, _, ok := e.snapshot()
	if !ok {
		return nil
	}
	return e.messages.PhaseSuggestions(p, phase)
}

// TodayContext reads today's schedule against the cached profile. It works
// before the first analysis too, with a zero profile.
func (e *Engine) TodayContext() domain.TodayContext {
	p, events, _ := e.snapshot()
	return e.today.AnalyzeDay(events, p, e.Clock())
}

// SpecialEvents scans the cached events for upcoming alerts.
func (e *Engine) SpecialEvents(daysAhead int) []domain.SpecialEventAlert {
	_, events, _ := e.snapshot()
	return e.today.DetectSpecialEvents(events, e.Clock(), daysAhead)
}

// BurnoutRisk assesses the trailing window of cached events.
func (e *Engine) BurnoutRisk() domain.BurnoutAssessment {
	p, events, _ := e.snapshot()
	return e.today.AnalyzeBurnoutRisk(events, p, e.Clock())
}

// RecommendedActions maps the cached profile and today's context to the
// assistant action set.
func (e *Engine) RecommendedActions() []action.Action {
	p, _, ok := e.snapshot()
	if !ok {
		return nil
	}
	return e.mapper.RecommendedActions(p, e.TodayContext(), e.Clock())
}

// MorningBriefing composes the morning message for today.
func (e *Engine) MorningBriefing(todayEvents int, nextMeeting string) string {
	p, _, _ := e.snapshot()
	return e.messages.MorningBriefing(p, e.TodayContext(), todayEvents, nextMeeting, e.Clock())
}

// EveningMessage composes the end-of-day message.
func (e *Engine) EveningMessage(completed, total int) string {
	p, _, _ := e.snapshot()
	return e.messages.EveningMessage(p, completed, total)
}

// StressAndBalanceMessages bundles the wellbeing warnings for the cached
// profile.
func (e *Engine) StressAndBalanceMessages() []domain.Suggestion {
	p, _, ok := e.snapshot()
	if !ok {
		return nil
	}
	out := e.messages.StressMessages(p)
	return append(out, e.messages.BalanceMessages(p)...)
}
