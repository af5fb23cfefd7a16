package ics

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/alexanderramin/cadence/internal/domain"
)

// ParsedEvent is the normalized representation of a VEVENT. Recurrence
// expansion operates on this type; RawRRule is kept verbatim and expanded
// in expand.go.
type ParsedEvent struct {
	UID       string
	Summary   string
	Start     time.Time
	End       time.Time
	AllDay    bool
	Attendees int
	Status    domain.EventStatus
	RawRRule  string
	ExDates   []time.Time
}

// Parse parses a single ICS payload. Malformed VEVENTs are skipped so one
// broken entry does not sink the whole feed.
func Parse(body []byte) ([]ParsedEvent, error) {
	if len(body) == 0 {
		return nil, errors.New("empty ICS body")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing calendar: %w", err)
	}

	events := make([]ParsedEvent, 0, len(cal.Events()))
	for _, ve := range cal.Events() {
		ev, perr := parseVEvent(ve)
		if perr != nil {
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

func parseVEvent(ve *ical.VEvent) (ParsedEvent, error) {
	var out ParsedEvent

	uidProp := ve.GetProperty(ical.ComponentPropertyUniqueId)
	if uidProp == nil || uidProp.Value == "" {
		return out, errors.New("missing UID")
	}
	out.UID = uidProp.Value

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		out.Summary = p.Value
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return out, fmt.Errorf("event %s: %w", out.UID, err)
	}
	out.Start = start
	if end, err := ve.GetEndAt(); err == nil {
		out.End = end
	} else {
		out.End = start.Add(time.Hour)
	}

	out.AllDay = isAllDay(ve)
	out.Attendees = len(ve.GetProperties(ical.ComponentPropertyAttendee))
	out.Status = parseStatus(ve)

	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		out.RawRRule = p.Value
	}

	for _, p := range ve.GetProperties(ical.ComponentPropertyExdate) {
		for _, part := range strings.Split(p.Value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if t, err := parseICSTime(part); err == nil {
				out.ExDates = append(out.ExDates, t)
			}
		}
	}

	return out, nil
}

// isAllDay reports whether DTSTART carries VALUE=DATE or a bare date value.
func isAllDay(ve *ical.VEvent) bool {
	p := ve.GetProperty(ical.ComponentPropertyDtStart)
	if p == nil {
		return false
	}
	if params := p.ICalParameters; params != nil {
		if vs, ok := params["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
			return true
		}
	}
	return !strings.Contains(p.Value, "T")
}

func parseStatus(ve *ical.VEvent) domain.EventStatus {
	p := ve.GetProperty(ical.ComponentPropertyStatus)
	if p == nil {
		return domain.StatusConfirmed
	}
	switch strings.ToUpper(strings.TrimSpace(p.Value)) {
	case "CANCELLED":
		return domain.StatusCancelled
	case "TENTATIVE":
		return domain.StatusTentative
	default:
		return domain.StatusConfirmed
	}
}

var icsTimeLayouts = []string{
	"20060102T150405Z",
	"20060102T150405",
	"20060102",
}

func parseICSTime(s string) (time.Time, error) {
	for _, layout := range icsTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized ICS time %q", s)
}
