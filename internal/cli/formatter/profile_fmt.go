package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/domain"
)

// FormatProfile renders the full behavioral profile.
func FormatProfile(p *domain.Profile) string {
	var b strings.Builder

	b.WriteString(Header("Behavioral profile"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("%d events analyzed, %s",
		p.AnalyzedEvents, p.AnalyzedAt.Format("2006-01-02 15:04"))))
	b.WriteString("\n\n")

	row := func(label, value string, c domain.Confidence) {
		b.WriteString(fmt.Sprintf("  %s %s  %s\n",
			StyleBold.Render(fmt.Sprintf("%-14s", label)), value, ConfidenceLabel(c)))
	}

	row("Chronotype", fmt.Sprintf("%s (first event avg %s)",
		string(p.Chronotype.Type), p.Chronotype.FirstEventAvg), p.Chronotype.Confidence)
	row("Peak hours", HourList(p.EnergyPattern.PeakHours), p.EnergyPattern.Confidence)
	row("Low hours", HourList(p.EnergyPattern.LowHours), p.EnergyPattern.Confidence)
	row("Work style", fmt.Sprintf("%s (%d%% meetings)",
		string(p.WorkStyle.Type), p.WorkStyle.MeetingRatio), p.WorkStyle.Confidence)
	row("Stress", StressColor(p.Stress.Level).Render(string(p.Stress.Level)), p.Stress.Confidence)
	row("Balance", string(p.Balance.Status), p.Balance.Confidence)
	row("Deep work", fmt.Sprintf("%.1fh/day", p.FocusTime.AvgDeepWorkHours), p.FocusTime.Confidence)

	if len(p.FocusTime.Slots) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Focus slots"))
		b.WriteString("\n")
		for _, slot := range p.FocusTime.Slots {
			quality := string(slot.Quality)
			if slot.Quality == domain.QualityExcellent {
				quality = StyleGreen.Render(quality)
			}
			b.WriteString(Bullet(fmt.Sprintf("%s %s (%s)",
				Weekday(slot.Weekday), HourRange(slot.StartHour, slot.EndHour), quality)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(Header("Week shape"))
	b.WriteString("\n")
	b.WriteString(Bullet(fmt.Sprintf("Busiest day: %s", Weekday(p.WeekdayPatterns.Busiest))))
	b.WriteString("\n")
	b.WriteString(Bullet(fmt.Sprintf("Lightest day: %s", Weekday(p.WeekdayPatterns.Lightest))))
	b.WriteString("\n")
	for _, d := range p.WeekdayPatterns.MeetingHeavyDay {
		b.WriteString(Bullet(fmt.Sprintf("Meeting-heavy day: %s", Weekday(d))))
		b.WriteString("\n")
	}

	return b.String()
}
