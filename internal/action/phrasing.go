package action

import (
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// Confidence-tier suffixes. The same insight reads as a guess, an
// observation, or an assertion depending on how much data backs it.
var tierSuffixes = map[domain.Confidence]string{
	domain.ConfidenceLow:    " I'm still learning your rhythm, so treat this as a guess.",
	domain.ConfidenceMedium: " That's what your last few weeks suggest.",
	domain.ConfidenceHigh:   " Your calendar shows this pattern clearly.",
}

// Phrase wraps a bare insight statement with confidence-calibrated framing.
func Phrase(statement string, c domain.Confidence) string {
	suffix, ok := tierSuffixes[c]
	if !ok {
		suffix = tierSuffixes[domain.ConfidenceLow]
	}
	return statement + suffix
}

// Greeting templates per tone, rotated by day so consecutive briefings do
// not repeat.
var greetings = map[domain.Tone][]string{
	domain.ToneEnergetic: {
		"Good morning! Ready to make the day count?",
		"Morning! Let's line up a strong day.",
		"Rise and shine — the day looks promising.",
	},
	domain.ToneGentle: {
		"Good morning. Let's take today one step at a time.",
		"Morning. No rush — we'll pace the day sensibly.",
		"Good morning. A steady day ahead; we'll keep it manageable.",
	},
	domain.ToneSupportive: {
		"Good morning. Today looks demanding, and I'm on your side.",
		"Morning. Heavy day ahead — let's protect your energy.",
		"Good morning. We'll get through today together, one block at a time.",
	},
}

// BriefingTone picks the tone for a briefing: an explicit override wins,
// then burnout, high stress, poor balance, a busy day, and finally the
// energetic default.
func BriefingTone(p domain.Profile, ctx domain.TodayContext, override domain.Tone) domain.Tone {
	switch {
	case override != "":
		return override
	case p.Stress.Level == domain.StressBurnout:
		return domain.ToneSupportive
	case p.Stress.Level == domain.StressHigh:
		return domain.ToneGentle
	case p.Balance.Status == domain.BalancePoor:
		return domain.ToneGentle
	case ctx.BusyLevel == domain.BusyHeavy || ctx.BusyLevel == domain.BusyExtreme:
		return domain.ToneGentle
	default:
		return domain.ToneEnergetic
	}
}

// Greeting returns the tone's greeting for the given day, rotating through
// the template set.
func Greeting(tone domain.Tone, now time.Time) string {
	set, ok := greetings[tone]
	if !ok {
		set = greetings[domain.ToneEnergetic]
	}
	return set[now.YearDay()%len(set)]
}
