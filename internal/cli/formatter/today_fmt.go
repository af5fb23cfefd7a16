package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/contract"
	"github.com/alexanderramin/cadence/internal/domain"
)

// FormatToday renders the today analysis: busy level, schedule shape,
// alerts and burnout assessment.
func FormatToday(resp *contract.TodayResponse) string {
	var b strings.Builder
	ctx := resp.Context

	b.WriteString(Header("Today"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s  %d meetings, %s free, drain %d/100\n",
		BusyIndicator(ctx.BusyLevel), ctx.MeetingCount, Minutes(ctx.FreeMinutes), ctx.EnergyDrain))

	if ctx.FirstEventTime != "" {
		b.WriteString(Bullet(fmt.Sprintf("Schedule runs %s to %s", ctx.FirstEventTime, ctx.LastEventTime)))
		b.WriteString("\n")
	}
	if ctx.HasConsecutiveMeetings {
		b.WriteString(Bullet(StyleYellow.Render("Back-to-back meeting block ahead")))
		b.WriteString("\n")
	}
	if !ctx.HasLunchBreak && ctx.MeetingCount > 0 {
		b.WriteString(Bullet(StyleYellow.Render("No lunch break on the calendar")))
		b.WriteString("\n")
	}

	if len(resp.Alerts) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Coming up"))
		b.WriteString("\n")
		for _, alert := range resp.Alerts {
			style := StyleBlue
			if alert.Kind == domain.AlertOverload {
				style = StyleRed
			}
			b.WriteString(Bullet(style.Render(alert.Message)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(Header("Burnout risk"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s\n", BurnoutIndicator(resp.Burnout.Level)))
	for _, signal := range resp.Burnout.Signals {
		b.WriteString(Bullet(signal))
		b.WriteString("\n")
	}
	if resp.Burnout.Recommendation != "" {
		b.WriteString(Bullet(StyleBold.Render(resp.Burnout.Recommendation)))
		b.WriteString("\n")
	}

	return b.String()
}
