package ics

import (
	"time"

	"github.com/teambition/rrule-go"

	"github.com/alexanderramin/cadence/internal/domain"
)

// Safety cap against pathological RRULEs.
const maxOccurrencesPerEvent = 1000

// Occurrence is a concrete instance of a parsed event within the
// expansion window.
type Occurrence struct {
	UID       string
	Event     domain.CalendarEvent
	Recurring bool
}

// Expand turns parsed events into concrete occurrences within [from, to).
// Non-recurring events pass through when they start inside the window;
// RRULE events are expanded with EXDATEs removed.
func Expand(events []ParsedEvent, from, to time.Time) []Occurrence {
	out := make([]Occurrence, 0, len(events))
	for _, ev := range events {
		if ev.RawRRule == "" {
			if !ev.Start.Before(from) && ev.Start.Before(to) {
				out = append(out, occurrenceAt(ev, ev.Start, false))
			}
			continue
		}
		out = append(out, expandRecurring(ev, from, to)...)
	}
	return out
}

func expandRecurring(ev ParsedEvent, from, to time.Time) []Occurrence {
	opt, err := rrule.StrToROption(ev.RawRRule)
	if err != nil {
		// An unparseable rule degrades to the base occurrence.
		if !ev.Start.Before(from) && ev.Start.Before(to) {
			return []Occurrence{occurrenceAt(ev, ev.Start, true)}
		}
		return nil
	}
	opt.Dtstart = ev.Start

	rule, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil
	}

	excluded := make(map[time.Time]bool, len(ev.ExDates))
	for _, ex := range ev.ExDates {
		excluded[ex.UTC()] = true
	}

	var out []Occurrence
	for _, start := range rule.Between(from, to, true) {
		if start.Equal(to) || excluded[start.UTC()] {
			continue
		}
		out = append(out, occurrenceAt(ev, start, true))
		if len(out) >= maxOccurrencesPerEvent {
			break
		}
	}
	return out
}

func occurrenceAt(ev ParsedEvent, start time.Time, recurring bool) Occurrence {
	duration := ev.End.Sub(ev.Start)
	return Occurrence{
		UID:       ev.UID,
		Recurring: recurring,
		Event: domain.CalendarEvent{
			Title:         ev.Summary,
			Start:         start,
			End:           start.Add(duration),
			AllDay:        ev.AllDay,
			AttendeeCount: ev.Attendees,
			Recurring:     recurring,
			Status:        ev.Status,
		},
	}
}
