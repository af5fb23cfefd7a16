package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/cadence/internal/contract"
	"github.com/alexanderramin/cadence/internal/db"
	"github.com/alexanderramin/cadence/internal/ics"
	"github.com/alexanderramin/cadence/internal/repository"
)

type importService struct {
	provider  CalendarProvider
	sources   []ics.Source
	uow       db.UnitOfWork
	rangeDays int
	observer  UseCaseObserver
}

// NewImportService creates the service that refreshes stored events from
// the configured calendar sources.
func NewImportService(
	provider CalendarProvider,
	sources []ics.Source,
	uow db.UnitOfWork,
	rangeDays int,
	observers ...UseCaseObserver,
) ImportService {
	if rangeDays <= 0 {
		rangeDays = 30
	}
	return &importService{
		provider:  provider,
		sources:   sources,
		uow:       uow,
		rangeDays: rangeDays,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Import refreshes each source independently: one unreachable feed is
// reported in its SourceImport entry and does not block the others. Each
// source is replaced atomically inside its own transaction.
func (s *importService) Import(ctx context.Context, req contract.ImportRequest) (*contract.ImportResponse, error) {
	startedAt := time.Now()

	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}
	rangeDays := s.rangeDays
	if req.RangeDays != nil && *req.RangeDays > 0 {
		rangeDays = *req.RangeDays
	}

	// Expand both ways: history feeds the profile, the future feeds
	// today analysis and alerts.
	from := now.AddDate(0, 0, -rangeDays)
	to := now.AddDate(0, 0, rangeDays)

	resp := &contract.ImportResponse{}
	var firstErr error
	for _, src := range s.sources {
		result := s.importSource(ctx, src, from, to, now)
		if result.Err != "" && firstErr == nil {
			firstErr = errSourceImport
		}
		resp.Sources = append(resp.Sources, result)
		resp.TotalEvents += result.Events
	}

	observe(ctx, s.observer, "import", startedAt, firstErr, map[string]any{
		"sources": len(s.sources),
		"events":  resp.TotalEvents,
	})
	return resp, nil
}

var errSourceImport = &Error{Code: ErrCodeSourceFailed, Msg: "one or more sources failed"}

func (s *importService) importSource(ctx context.Context, src ics.Source, from, to, now time.Time) contract.SourceImport {
	result := contract.SourceImport{SourceID: src.ID}

	occurrences, err := s.provider.Load(ctx, src, from, to)
	if err != nil {
		result.Err = err.Error()
		return result
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteEventRepo(tx)
		if err := repo.DeleteBySource(ctx, src.ID); err != nil {
			return err
		}
		for _, occ := range occurrences {
			stored := &repository.StoredEvent{
				CalendarEvent: occ.Event,
				SourceID:      src.ID,
				UID:           occ.UID,
			}
			stored.ID = uuid.New().String()
			stored.CreatedAt = now
			stored.UpdatedAt = now
			if err := repo.Upsert(ctx, stored); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		result.Err = err.Error()
		return result
	}

	result.Events = len(occurrences)
	return result
}
