package formatter

import (
	"fmt"
	"strings"
	"time"
)

// HourRange renders an hour span such as "9:00–12:00".
func HourRange(startHour, endHour int) string {
	return fmt.Sprintf("%d:00–%d:00", startHour, endHour)
}

// HourList renders hours-of-day as clock labels: "9:00, 10:00".
func HourList(hours []int) string {
	if len(hours) == 0 {
		return "—"
	}
	parts := make([]string, len(hours))
	for i, h := range hours {
		parts[i] = fmt.Sprintf("%d:00", h)
	}
	return strings.Join(parts, ", ")
}

// Minutes renders a minute count as "2h 30m" or "45m".
func Minutes(min int) string {
	if min < 60 {
		return fmt.Sprintf("%dm", min)
	}
	if min%60 == 0 {
		return fmt.Sprintf("%dh", min/60)
	}
	return fmt.Sprintf("%dh %dm", min/60, min%60)
}

// Weekday renders a weekday name.
func Weekday(d time.Weekday) string {
	return d.String()
}

// Bullet renders a bulleted line.
func Bullet(text string) string {
	return "  " + StyleDim.Render("•") + " " + text
}
