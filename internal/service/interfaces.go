package service

import (
	"context"
	"time"

	"github.com/alexanderramin/cadence/internal/contract"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/ics"
)

// CalendarProvider loads event occurrences for a source within a window.
// Implemented by ics.Client; tests substitute a stub.
type CalendarProvider interface {
	Load(ctx context.Context, src ics.Source, from, to time.Time) ([]ics.Occurrence, error)
}

type ImportService interface {
	Import(ctx context.Context, req contract.ImportRequest) (*contract.ImportResponse, error)
}

type ProfileService interface {
	Analyze(ctx context.Context, req contract.AnalyzeRequest) (*contract.AnalyzeResponse, error)
	GetProfile(ctx context.Context) (*domain.Profile, error)
}

type BriefingService interface {
	Today(ctx context.Context, req contract.TodayRequest) (*contract.TodayResponse, error)
	MorningBriefing(ctx context.Context, req contract.BriefingRequest) (*contract.BriefingResponse, error)
	Suggest(ctx context.Context, req contract.SuggestRequest) (*contract.SuggestResponse, error)
	Evening(ctx context.Context, req contract.EveningRequest) (*contract.EveningResponse, error)
}
