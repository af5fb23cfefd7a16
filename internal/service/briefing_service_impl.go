package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/cadence/internal/classifier"
	"github.com/alexanderramin/cadence/internal/contract"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/engine"
	"github.com/alexanderramin/cadence/internal/message"
	"github.com/alexanderramin/cadence/internal/repository"
)

const (
	defaultAlertDays = 7
	// How far back the engine needs events for burnout assessment.
	contextLookbackDays = 14
)

type briefingService struct {
	events   repository.EventRepo
	profiles repository.ProfileRepo
	observer UseCaseObserver
}

// NewBriefingService creates the service behind the today, briefing,
// suggest and evening commands.
func NewBriefingService(
	events repository.EventRepo,
	profiles repository.ProfileRepo,
	observers ...UseCaseObserver,
) BriefingService {
	return &briefingService{
		events:   events,
		profiles: profiles,
		observer: useCaseObserverOrNoop(observers),
	}
}

// loadEngine builds an engine pinned to now, loaded with the stored
// profile (if any) and the events around now. A missing profile is not an
// error; queries then run against a neutral profile.
func (s *briefingService) loadEngine(ctx context.Context, now time.Time, horizonDays int) (*engine.Engine, []domain.CalendarEvent, error) {
	from := now.AddDate(0, 0, -contextLookbackDays)
	to := now.AddDate(0, 0, horizonDays+1)
	events, err := s.events.ListByRange(ctx, from, to)
	if err != nil {
		return nil, nil, wrapStorage("loading events", err)
	}

	var profile domain.Profile
	stored, err := s.profiles.Get(ctx)
	switch {
	case err == nil:
		profile = *stored
	case errors.Is(err, repository.ErrNotFound):
		// First run; keep the zero profile.
	default:
		return nil, nil, wrapStorage("loading profile", err)
	}

	eng := engine.NewDefault()
	eng.Clock = func() time.Time { return now }
	eng.SetProfile(profile, events)
	return eng, events, nil
}

func resolveNow(req *time.Time) time.Time {
	if req != nil {
		return *req
	}
	return time.Now().UTC()
}

func (s *briefingService) Today(ctx context.Context, req contract.TodayRequest) (*contract.TodayResponse, error) {
	startedAt := time.Now()
	now := resolveNow(req.Now)

	daysAhead := req.AlertDaysAhead
	if daysAhead <= 0 {
		daysAhead = defaultAlertDays
	}

	eng, _, err := s.loadEngine(ctx, now, daysAhead)
	if err != nil {
		observe(ctx, s.observer, "today", startedAt, err, nil)
		return nil, err
	}

	resp := &contract.TodayResponse{
		Context: eng.TodayContext(),
		Alerts:  eng.SpecialEvents(daysAhead),
		Burnout: eng.BurnoutRisk(),
	}
	observe(ctx, s.observer, "today", startedAt, nil, map[string]any{
		"busy_level": string(resp.Context.BusyLevel),
		"alerts":     len(resp.Alerts),
	})
	return resp, nil
}

func (s *briefingService) MorningBriefing(ctx context.Context, req contract.BriefingRequest) (*contract.BriefingResponse, error) {
	startedAt := time.Now()
	now := resolveNow(req.Now)

	eng, events, err := s.loadEngine(ctx, now, 1)
	if err != nil {
		observe(ctx, s.observer, "briefing", startedAt, err, nil)
		return nil, err
	}

	todayEvents, nextMeeting := todaySchedule(events, now)

	if req.Tone != "" {
		ctx2 := eng.TodayContext()
		ctx2.Tone = req.Tone
		p := eng.Profile()
		if p == nil {
			p = &domain.Profile{}
		}
		resp := &contract.BriefingResponse{
			Message: message.NewGenerator().MorningBriefing(*p, ctx2, todayEvents, nextMeeting, now),
			Actions: actionStrings(eng),
		}
		observe(ctx, s.observer, "briefing", startedAt, nil, nil)
		return resp, nil
	}

	resp := &contract.BriefingResponse{
		Message: eng.MorningBriefing(todayEvents, nextMeeting),
		Actions: actionStrings(eng),
	}
	observe(ctx, s.observer, "briefing", startedAt, nil, map[string]any{
		"today_events": todayEvents,
	})
	return resp, nil
}

func actionStrings(eng *engine.Engine) []string {
	actions := eng.RecommendedActions()
	out := make([]string, 0, len(actions))
	for _, a := range actions {
		out = append(out, string(a))
	}
	return out
}

// todaySchedule counts today's active events and finds the title of the
// next meeting-like event after now.
func todaySchedule(events []domain.CalendarEvent, now time.Time) (int, string) {
	c := classifier.NewDefault()
	count := 0
	nextMeeting := ""
	var nextStart time.Time

	for _, e := range events {
		if e.Status == domain.StatusCancelled || !e.OnDate(now.Year(), now.Month(), now.Day()) {
			continue
		}
		count++
		if !e.Start.After(now) {
			continue
		}
		if !c.ClassifyEvent(e).Category.IsMeetingLike() {
			continue
		}
		if nextMeeting == "" || e.Start.Before(nextStart) {
			nextMeeting = e.Title
			nextStart = e.Start
		}
	}
	return count, nextMeeting
}

func (s *briefingService) Suggest(ctx context.Context, req contract.SuggestRequest) (*contract.SuggestResponse, error) {
	startedAt := time.Now()
	now := resolveNow(req.Now)

	eng, _, err := s.loadEngine(ctx, now, 1)
	if err != nil {
		observe(ctx, s.observer, "suggest", startedAt, err, nil)
		return nil, err
	}

	phase := message.Phase(req.Phase)
	switch phase {
	case message.PhaseDayOne, message.PhaseWeekOne, message.PhaseWeekTwo:
	case "":
		phase = message.PhaseWeekTwo
	default:
		return nil, newBadRequest("unknown phase %q", req.Phase)
	}

	resp := &contract.SuggestResponse{
		Suggestions: eng.Suggestions(phase),
	}
	for _, w := range eng.StressAndBalanceMessages() {
		resp.Wellbeing = append(resp.Wellbeing, w.Message)
	}

	observe(ctx, s.observer, "suggest", startedAt, nil, map[string]any{
		"phase":       string(phase),
		"suggestions": len(resp.Suggestions),
	})
	return resp, nil
}

func (s *briefingService) Evening(ctx context.Context, req contract.EveningRequest) (*contract.EveningResponse, error) {
	startedAt := time.Now()
	now := resolveNow(req.Now)

	eng, _, err := s.loadEngine(ctx, now, 1)
	if err != nil {
		observe(ctx, s.observer, "evening", startedAt, err, nil)
		return nil, err
	}

	resp := &contract.EveningResponse{
		Message: eng.EveningMessage(req.Completed, req.Total),
	}
	observe(ctx, s.observer, "evening", startedAt, nil, nil)
	return resp, nil
}
