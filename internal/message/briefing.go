package message

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cadence/internal/action"
	"github.com/alexanderramin/cadence/internal/domain"
)

// MorningBriefing composes the morning message: tone-matched greeting,
// today's load, the next meeting if one is known, and a softer close when
// stress is elevated.
func (g *Generator) MorningBriefing(p domain.Profile, ctx domain.TodayContext, todayEvents int, nextMeeting string, now time.Time) string {
	tone := action.BriefingTone(p, ctx, ctx.Tone)
	var b strings.Builder
	b.WriteString(action.Greeting(tone, now))

	switch {
	case todayEvents == 0:
		b.WriteString(" You have no events today — the day is yours to shape.")
	case todayEvents == 1:
		b.WriteString(" Just one event on the calendar today.")
	default:
		b.WriteString(fmt.Sprintf(" You have %d events today.", todayEvents))
	}

	if nextMeeting != "" {
		b.WriteString(fmt.Sprintf(" First up: %s.", nextMeeting))
	}

	switch p.Stress.Level {
	case domain.StressBurnout:
		b.WriteString(" Whatever doesn't get done today can wait.")
	case domain.StressHigh:
		b.WriteString(" Pick your battles today; not everything needs you.")
	}
	return b.String()
}

// EveningMessage closes the day: completion count, an early-rest nudge under
// burnout, and an exercise prompt when no routine exists and balance can
// absorb one more commitment.
func (g *Generator) EveningMessage(p domain.Profile, completed, total int) string {
	var b strings.Builder

	switch {
	case total == 0:
		b.WriteString("A quiet day on the books.")
	case completed >= total:
		b.WriteString(fmt.Sprintf("All %d planned items done — a clean sweep.", total))
	default:
		b.WriteString(fmt.Sprintf("%d of %d planned items done today.", completed, total))
	}

	if p.Stress.Level == domain.StressBurnout {
		b.WriteString(" Tonight, the best thing on your list is an early rest.")
	}

	if !p.Balance.HasExerciseRoutine && p.Balance.Status != domain.BalancePoor {
		b.WriteString(" If there's energy left, a short walk would round the day off well.")
	}
	return b.String()
}
