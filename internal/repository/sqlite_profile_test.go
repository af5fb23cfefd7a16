package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/repository"
	"github.com/alexanderramin/cadence/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfile() *domain.Profile {
	return &domain.Profile{
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
			Confidence:   domain.ConfidenceMedium,
		},
		AnalyzedEvents: 42,
		AnalyzedAt:     time.Date(2026, 8, 31, 18, 0, 0, 0, time.UTC),
		SchemaVersion:  domain.ProfileSchemaVersion,
	}
}

func TestProfileGetBeforeSave(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProfileRepo(database)

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProfileSaveAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProfileRepo(database)
	ctx := context.Background()

	p := sampleProfile()
	require.NoError(t, repo.Save(ctx, p))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestProfileSaveOverwrites(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProfileRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleProfile()))

	updated := sampleProfile()
	updated.AnalyzedEvents = 99
	updated.Chronotype.Type = domain.ChronotypeEvening
	require.NoError(t, repo.Save(ctx, updated))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 99, got.AnalyzedEvents)
	assert.Equal(t, domain.ChronotypeEvening, got.Chronotype.Type)
}

func TestProfileRejectsUnknownSchemaVersion(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProfileRepo(database)
	ctx := context.Background()

	_, err := database.Exec(
		`INSERT INTO profiles (id, payload, analyzed_at, schema_version) VALUES (1, '{}', ?, ?)`,
		"2026-08-31T00:00:00Z", domain.ProfileSchemaVersion+1)
	require.NoError(t, err)

	_, err = repo.Get(ctx)
	assert.ErrorContains(t, err, "schema version")
}
