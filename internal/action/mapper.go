package action

import (
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// InsightKind names the profile or context dimension a rule reads.
type InsightKind string

const (
	InsightChronotype  InsightKind = "chronotype"
	InsightStress      InsightKind = "stress"
	InsightBalance     InsightKind = "balance"
	InsightBusyDay     InsightKind = "busy_day"
	InsightConsecutive InsightKind = "consecutive_meetings"
	InsightEnergyHour  InsightKind = "energy_hour"
)

// Rule maps one insight condition to its actions. Rules are evaluated in
// table order and matched actions are deduplicated.
type Rule struct {
	Insight InsightKind
	When    func(p domain.Profile, ctx domain.TodayContext, hour int) bool
	Actions []Action
}

// Mapper turns a profile and today-context into a recommended action set.
// Its rule table is immutable after construction, so independent mappers can
// carry independently tuned tables.
type Mapper struct {
	rules []Rule
}

// NewMapper returns a Mapper with the given rules; nil means DefaultRules.
func NewMapper(rules []Rule) *Mapper {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Mapper{rules: rules}
}

// RecommendedActions evaluates the rule table against the profile, today's
// context, and the current hour. Order follows the table; duplicates keep
// their first position.
func (m *Mapper) RecommendedActions(p domain.Profile, ctx domain.TodayContext, now time.Time) []Action {
	hour := now.Hour()
	seen := make(map[Action]bool)
	var out []Action
	for _, rule := range m.rules {
		if !rule.When(p, ctx, hour) {
			continue
		}
		for _, a := range rule.Actions {
			if !seen[a] {
				seen[a] = true
				out = append(out, a)
			}
		}
	}
	return out
}

// DefaultRules is the canonical insight→action table, ordered chronotype,
// stress, balance, busy level, consecutive meetings, then current-hour
// energy.
func DefaultRules() []Rule {
	return []Rule{
		{
			Insight: InsightChronotype,
			When: func(p domain.Profile, _ domain.TodayContext, _ int) bool {
				return p.Chronotype.Type == domain.ChronotypeMorning
			},
			Actions: []Action{RecommendMorningTask},
		},
		{
			Insight: InsightChronotype,
			When: func(p domain.Profile, _ domain.TodayContext, _ int) bool {
				return p.Chronotype.Type == domain.ChronotypeEvening
			},
			Actions: []Action{MinimizeMorningAlerts, RecommendAfternoonTask},
		},
		{
			Insight: InsightStress,
			When: func(p domain.Profile, _ domain.TodayContext, _ int) bool {
				return p.Stress.Level == domain.StressBurnout
			},
			Actions: []Action{WarnBurnout, EmphasizeRest, SoftenTone},
		},
		{
			Insight: InsightStress,
			When: func(p domain.Profile, _ domain.TodayContext, _ int) bool {
				return p.Stress.Level == domain.StressHigh
			},
			Actions: []Action{SoftenTone, ReduceTaskLoad},
		},
		{
			Insight: InsightBalance,
			When: func(p domain.Profile, _ domain.TodayContext, _ int) bool {
				return p.Balance.Status == domain.BalancePoor
			},
			Actions: []Action{EmphasizeRest, SendEncouragement},
		},
		{
			Insight: InsightBalance,
			When: func(p domain.Profile, _ domain.TodayContext, _ int) bool {
				return p.Balance.Status == domain.BalanceGood && p.Balance.HasExerciseRoutine
			},
			Actions: []Action{CelebrateProgress},
		},
		{
			Insight: InsightBusyDay,
			When: func(_ domain.Profile, ctx domain.TodayContext, _ int) bool {
				return ctx.BusyLevel == domain.BusyExtreme
			},
			Actions: []Action{ReduceTaskLoad, SoftenTone},
		},
		{
			Insight: InsightBusyDay,
			When: func(_ domain.Profile, ctx domain.TodayContext, _ int) bool {
				return ctx.BusyLevel == domain.BusyHeavy
			},
			Actions: []Action{SuggestBreak},
		},
		{
			Insight: InsightConsecutive,
			When: func(_ domain.Profile, ctx domain.TodayContext, _ int) bool {
				return ctx.HasConsecutiveMeetings
			},
			Actions: []Action{SuggestBreak},
		},
		{
			Insight: InsightEnergyHour,
			When: func(p domain.Profile, _ domain.TodayContext, hour int) bool {
				return containsHour(p.EnergyPattern.PeakHours, hour)
			},
			Actions: []Action{ProtectFocusTime},
		},
		{
			Insight: InsightEnergyHour,
			When: func(p domain.Profile, _ domain.TodayContext, hour int) bool {
				return containsHour(p.EnergyPattern.LowHours, hour)
			},
			Actions: []Action{SuggestBreak, SendEncouragement},
		},
	}
}

func containsHour(hours []int, hour int) bool {
	for _, h := range hours {
		if h == hour {
			return true
		}
	}
	return false
}
