package analyzer

import (
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

const (
	focusFirstHour = 8
	focusLastHour  = 18 // exclusive upper bound of the scan

	maxFocusSlots      = 5
	excellentSlotHours = 2
)

// analyzeFocusTime finds recurring event-free windows per weekday by
// scanning working hours against all observed events on that weekday.
// Slots are kept in scan order (Monday morning onwards), capped at
// maxFocusSlots.
func analyzeFocusTime(events []domain.ClassifiedEvent) domain.FocusTime {
	focus := domain.FocusTime{
		Confidence: confidenceFor(dimFocusTime, len(events)),
	}
	if activeCount(events) == 0 {
		return focus
	}

	// Busy hour grid: busy[weekday][hour].
	var busy [7][24]bool
	for _, e := range events {
		if !active(e) || e.AllDay {
			continue
		}
		wd := e.Start.Weekday()
		startMin := e.Start.Hour()*60 + e.Start.Minute()
		endMin := startMin + e.DurationMinutes()
		for h := focusFirstHour; h < focusLastHour; h++ {
			if startMin < (h+1)*60 && endMin > h*60 {
				busy[wd][h] = true
			}
		}
	}

	var totalHours int
	for wd := time.Monday; wd <= time.Friday; wd++ {
		runStart := -1
		for h := focusFirstHour; h <= focusLastHour; h++ {
			free := h < focusLastHour && !busy[wd][h]
			if free && runStart < 0 {
				runStart = h
			}
			if !free && runStart >= 0 {
				if len(focus.Slots) < maxFocusSlots {
					focus.Slots = append(focus.Slots, newSlot(wd, runStart, h))
					totalHours += h - runStart
				}
				runStart = -1
			}
		}
	}

	focus.AvgDeepWorkHours = float64(totalHours) / float64(maxFocusSlots)
	return focus
}

func newSlot(wd time.Weekday, start, end int) domain.TimeSlot {
	quality := domain.QualityGood
	if end-start >= excellentSlotHours {
		quality = domain.QualityExcellent
	}
	return domain.TimeSlot{
		Weekday:   wd,
		StartHour: start,
		EndHour:   end,
		Quality:   quality,
	}
}
