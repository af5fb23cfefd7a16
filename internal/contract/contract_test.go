package contract

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The profile travels through JSON twice: into the profiles table and out
// through response payloads. A full round trip must be lossless.
func TestAnalyzeResponseProfileRoundTrip(t *testing.T) {
	resp := AnalyzeResponse{
		Profile: domain.Profile{
			Chronotype: domain.ChronotypeInsight{
				Type:          domain.ChronotypeMorning,
				FirstEventAvg: "08:15",
				Confidence:    domain.ConfidenceHigh,
			},
			EnergyPattern: domain.EnergyPattern{
				PeakHours:  []int{9, 10, 11},
				LowHours:   []int{14, 15},
				Confidence: domain.ConfidenceMedium,
			},
			WorkStyle: domain.WorkStyle{
				Type:         domain.StyleCollaborative,
				MeetingRatio: 70,
				PrefersSolo:  false,
				Confidence:   domain.ConfidenceMedium,
			},
			Stress: domain.StressIndicators{
				Level:          domain.StressMedium,
				AvgFreeMinutes: 120,
				Confidence:     domain.ConfidenceLow,
			},
			FocusTime: domain.FocusTime{
				Slots: []domain.TimeSlot{
					{Weekday: time.Tuesday, StartHour: 9, EndHour: 12, Quality: domain.QualityExcellent},
				},
				AvgDeepWorkHours: 1.2,
				Confidence:       domain.ConfidenceLow,
			},
			AnalyzedEvents: 42,
			AnalyzedAt:     time.Date(2026, 8, 31, 18, 0, 0, 0, time.UTC),
			SchemaVersion:  domain.ProfileSchemaVersion,
		},
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var got AnalyzeResponse
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, resp, got)
}

func TestImportResponseOmitsEmptyError(t *testing.T) {
	data, err := json.Marshal(ImportResponse{
		Sources:     []SourceImport{{SourceID: "work", Events: 12}},
		TotalEvents: 12,
	})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "\"error\"")
}
