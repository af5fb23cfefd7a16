package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/cadence/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StressColor returns the style for a stress level.
func StressColor(level domain.StressLevel) lipgloss.Style {
	switch level {
	case domain.StressBurnout:
		return StyleRed
	case domain.StressHigh:
		return StyleYellow
	case domain.StressMedium:
		return StyleBlue
	default:
		return StyleGreen
	}
}

// BusyIndicator returns a colored indicator string such as "● HEAVY".
func BusyIndicator(level domain.BusyLevel) string {
	switch level {
	case domain.BusyExtreme:
		return StyleRed.Render("● EXTREME")
	case domain.BusyHeavy:
		return StyleYellow.Render("● HEAVY")
	case domain.BusyNormal:
		return StyleBlue.Render("● NORMAL")
	default:
		return StyleGreen.Render("● LIGHT")
	}
}

// BurnoutIndicator returns a colored indicator for a burnout level.
func BurnoutIndicator(level domain.BurnoutLevel) string {
	switch level {
	case domain.BurnoutCritical:
		return StyleRed.Render("● CRITICAL")
	case domain.BurnoutWarning:
		return StyleYellow.Render("● WARNING")
	case domain.BurnoutWatch:
		return StyleBlue.Render("● WATCH")
	default:
		return StyleGreen.Render("● NONE")
	}
}

// ConfidenceLabel renders a confidence tier as a dimmed annotation.
func ConfidenceLabel(c domain.Confidence) string {
	switch c {
	case domain.ConfidenceHigh:
		return StyleGreen.Render("high")
	case domain.ConfidenceMedium:
		return StyleYellow.Render("medium")
	default:
		return StyleDim.Render("low")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}
