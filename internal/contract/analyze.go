package contract

import (
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// AnalyzeRequest asks for a fresh behavioral profile built from stored
// events. Nil fields fall back to configured defaults.
type AnalyzeRequest struct {
	// Now pins the reference time; tests use this for determinism.
	Now *time.Time
	// RangeDays overrides the configured analysis window.
	RangeDays *int
}

func NewAnalyzeRequest() AnalyzeRequest {
	return AnalyzeRequest{}
}

type AnalyzeResponse struct {
	Profile domain.Profile `json:"profile"`
}

// ImportRequest triggers a refresh of all configured calendar sources.
type ImportRequest struct {
	Now *time.Time
	// RangeDays bounds how far back and forward occurrences are expanded.
	RangeDays *int
}

func NewImportRequest() ImportRequest {
	return ImportRequest{}
}

// SourceImport reports the outcome for one calendar source.
type SourceImport struct {
	SourceID string `json:"source_id"`
	Events   int    `json:"events"`
	Err      string `json:"error,omitempty"`
}

type ImportResponse struct {
	Sources     []SourceImport `json:"sources"`
	TotalEvents int            `json:"total_events"`
}
