package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/cadence/internal/analyzer"
	"github.com/alexanderramin/cadence/internal/contract"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/repository"
	"github.com/alexanderramin/cadence/internal/service"
	"github.com/alexanderramin/cadence/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type briefingFixture struct {
	events   repository.EventRepo
	profiles repository.ProfileRepo
	svc      service.BriefingService
}

func newBriefingFixture(t *testing.T) *briefingFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	events := repository.NewSQLiteEventRepo(database)
	profiles := repository.NewSQLiteProfileRepo(database)
	return &briefingFixture{
		events:   events,
		profiles: profiles,
		svc:      service.NewBriefingService(events, profiles),
	}
}

func (f *briefingFixture) seedToday(t *testing.T, titles ...string) {
	t.Helper()
	for i, title := range titles {
		start := svcNow.Add(time.Duration(i+1) * time.Hour)
		e := testutil.NewTestEvent(title, start, testutil.WithAttendees(4))
		require.NoError(t, f.events.Upsert(context.Background(), e))
	}
}

func (f *briefingFixture) analyzeNow(t *testing.T) {
	t.Helper()
	profileSvc := service.NewProfileService(f.events, f.profiles, analyzer.DefaultOptions())
	req := contract.NewAnalyzeRequest()
	req.Now = &svcNow
	_, err := profileSvc.Analyze(context.Background(), req)
	require.NoError(t, err)
}

func TestTodayWithoutProfile(t *testing.T) {
	f := newBriefingFixture(t)
	f.seedToday(t, "Standup", "Planning")

	req := contract.NewTodayRequest()
	req.Now = &svcNow
	resp, err := f.svc.Today(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Context.MeetingCount)
	assert.Equal(t, "09:00", resp.Context.FirstEventTime)
	assert.Equal(t, domain.BurnoutNone, resp.Burnout.Level)
}

func TestTodayDetectsPresentationAlert(t *testing.T) {
	f := newBriefingFixture(t)
	tomorrow := svcNow.AddDate(0, 0, 1)
	e := testutil.NewTestEvent("Quarterly presentation", tomorrow, testutil.WithAttendees(8))
	require.NoError(t, f.events.Upsert(context.Background(), e))

	req := contract.NewTodayRequest()
	req.Now = &svcNow
	resp, err := f.svc.Today(context.Background(), req)
	require.NoError(t, err)

	require.NotEmpty(t, resp.Alerts)
	assert.Equal(t, domain.AlertPresentation, resp.Alerts[0].Kind)
	assert.Equal(t, 1, resp.Alerts[0].DaysUntil)
	assert.True(t, resp.Context.PresentationTomorrow)
}

func TestMorningBriefingNamesNextMeeting(t *testing.T) {
	f := newBriefingFixture(t)
	f.seedToday(t, "Standup", "Design review")
	f.analyzeNow(t)

	req := contract.NewBriefingRequest()
	req.Now = &svcNow
	resp, err := f.svc.MorningBriefing(context.Background(), req)
	require.NoError(t, err)

	assert.Contains(t, resp.Message, "2 events")
	assert.Contains(t, resp.Message, "First up: Standup.")
}

func TestMorningBriefingEmptyDay(t *testing.T) {
	f := newBriefingFixture(t)

	req := contract.NewBriefingRequest()
	req.Now = &svcNow
	resp, err := f.svc.MorningBriefing(context.Background(), req)
	require.NoError(t, err)

	assert.Contains(t, resp.Message, "no events today")
}

func TestMorningBriefingToneOverride(t *testing.T) {
	f := newBriefingFixture(t)
	f.seedToday(t, "Standup")

	req := contract.NewBriefingRequest()
	req.Now = &svcNow
	req.Tone = domain.ToneSupportive
	resp, err := f.svc.MorningBriefing(context.Background(), req)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Message)
}

func TestSuggestPhases(t *testing.T) {
	f := newBriefingFixture(t)
	f.seedToday(t, "Standup")
	f.analyzeNow(t)

	for _, phase := range []string{"day_one", "week_one", "week_two"} {
		req := contract.NewSuggestRequest()
		req.Now = &svcNow
		req.Phase = phase
		resp, err := f.svc.Suggest(context.Background(), req)
		require.NoError(t, err, phase)
		assert.NotEmpty(t, resp.Suggestions, phase)
	}
}

func TestSuggestRejectsUnknownPhase(t *testing.T) {
	f := newBriefingFixture(t)
	req := contract.NewSuggestRequest()
	req.Now = &svcNow
	req.Phase = "month_one"
	_, err := f.svc.Suggest(context.Background(), req)
	assert.ErrorContains(t, err, "unknown phase")
}

func TestEveningMessage(t *testing.T) {
	f := newBriefingFixture(t)

	req := contract.NewEveningRequest()
	req.Now = &svcNow
	req.Completed = 3
	req.Total = 5
	resp, err := f.svc.Evening(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, resp.Message, "3 of 5")
}
