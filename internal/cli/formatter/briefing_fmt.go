package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/contract"
)

// FormatBriefing renders the morning briefing with its recommended actions.
func FormatBriefing(resp *contract.BriefingResponse) string {
	var b strings.Builder
	b.WriteString(StyleFg.Render(resp.Message))
	b.WriteString("\n")

	if len(resp.Actions) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Recommended"))
		b.WriteString("\n")
		for _, a := range resp.Actions {
			b.WriteString(Bullet(strings.ReplaceAll(a, "_", " ")))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatSuggestions renders progressive suggestions plus any wellbeing
// messages underneath.
func FormatSuggestions(resp *contract.SuggestResponse) string {
	var b strings.Builder
	b.WriteString(Header("Suggestions"))
	b.WriteString("\n")
	for _, s := range resp.Suggestions {
		b.WriteString(Bullet(s.Message))
		b.WriteString("\n")
	}
	if len(resp.Suggestions) == 0 {
		b.WriteString(Bullet(StyleDim.Render("Nothing yet. Import and analyze a calendar first.")))
		b.WriteString("\n")
	}

	if len(resp.Wellbeing) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Wellbeing"))
		b.WriteString("\n")
		for _, msg := range resp.Wellbeing {
			b.WriteString(Bullet(StyleYellow.Render(msg)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatImport renders per-source import results.
func FormatImport(resp *contract.ImportResponse) string {
	var b strings.Builder
	b.WriteString(Header("Import"))
	b.WriteString("\n")
	for _, src := range resp.Sources {
		if src.Err != "" {
			b.WriteString(Bullet(StyleRed.Render(src.SourceID + ": " + src.Err)))
		} else {
			b.WriteString(Bullet(StyleGreen.Render(src.SourceID) + StyleDim.Render(" · ") + plural(src.Events, "event")))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(StyleBold.Render(plural(resp.TotalEvents, "event") + " stored"))
	b.WriteString("\n")
	return b.String()
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
