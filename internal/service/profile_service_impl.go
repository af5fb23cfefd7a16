package service

import (
	"context"
	"time"

	"github.com/alexanderramin/cadence/internal/analyzer"
	"github.com/alexanderramin/cadence/internal/classifier"
	"github.com/alexanderramin/cadence/internal/contract"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/repository"
)

type profileService struct {
	events   repository.EventRepo
	profiles repository.ProfileRepo
	opts     analyzer.Options
	observer UseCaseObserver
}

// NewProfileService creates the service that builds and stores behavioral
// profiles from imported events.
func NewProfileService(
	events repository.EventRepo,
	profiles repository.ProfileRepo,
	opts analyzer.Options,
	observers ...UseCaseObserver,
) ProfileService {
	if opts.RangeDays <= 0 {
		opts = analyzer.DefaultOptions()
	}
	return &profileService{
		events:   events,
		profiles: profiles,
		opts:     opts,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *profileService) Analyze(ctx context.Context, req contract.AnalyzeRequest) (*contract.AnalyzeResponse, error) {
	startedAt := time.Now()

	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}
	opts := s.opts
	if req.RangeDays != nil && *req.RangeDays > 0 {
		opts.RangeDays = *req.RangeDays
	}

	events, err := s.events.ListByRange(ctx, now.AddDate(0, 0, -opts.RangeDays), now.Add(time.Minute))
	if err != nil {
		observe(ctx, s.observer, "analyze", startedAt, err, nil)
		return nil, wrapStorage("loading events", err)
	}

	profile := analyzer.New(classifier.NewDefault(), opts).Analyze(events, now)

	if err := s.profiles.Save(ctx, &profile); err != nil {
		observe(ctx, s.observer, "analyze", startedAt, err, nil)
		return nil, wrapStorage("saving profile", err)
	}

	observe(ctx, s.observer, "analyze", startedAt, nil, map[string]any{
		"events":     profile.AnalyzedEvents,
		"range_days": opts.RangeDays,
	})
	return &contract.AnalyzeResponse{Profile: profile}, nil
}

func (s *profileService) GetProfile(ctx context.Context) (*domain.Profile, error) {
	return s.profiles.Get(ctx)
}
