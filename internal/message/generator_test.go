package message

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func richProfile() domain.Profile {
	return domain.Profile{
		Chronotype: domain.ChronotypeInsight{
			Type:          domain.ChronotypeMorning,
			FirstEventAvg: "08:15",
			Confidence:    domain.ConfidenceHigh,
		},
		EnergyPattern: domain.EnergyPattern{
			PeakHours:  []int{9, 10, 11},
			LowHours:   []int{14, 15},
			Confidence: domain.ConfidenceHigh,
		},
		WorkStyle: domain.WorkStyle{
			Type:         domain.StyleCollaborative,
			MeetingRatio: 70,
			Confidence:   domain.ConfidenceHigh,
		},
		Stress:  domain.StressIndicators{Level: domain.StressLow, AvgFreeMinutes: 200},
		Balance: domain.WorkLifeBalance{Status: domain.BalanceGood, PersonalRatio: 30},
		FocusTime: domain.FocusTime{
			Slots: []domain.TimeSlot{
				{Weekday: time.Tuesday, StartHour: 8, EndHour: 11, Quality: domain.QualityExcellent},
			},
			Confidence: domain.ConfidenceMedium,
		},
		AnalyzedEvents: 42,
	}
}

func TestPhaseSuggestions_DayOneOnlyCounts(t *testing.T) {
	out := NewGenerator().PhaseSuggestions(richProfile(), PhaseDayOne)

	require.Len(t, out, 1)
	assert.Contains(t, out[0].Message, "42 events")
	assert.Equal(t, domain.SuggestionBriefing, out[0].Type)
}

func TestPhaseSuggestions_WeekOneAddsChronotypeAndStyle(t *testing.T) {
	out := NewGenerator().PhaseSuggestions(richProfile(), PhaseWeekOne)

	require.Len(t, out, 3)
	assert.Contains(t, out[1].Message, "morning person")
	assert.Contains(t, out[2].Message, "70%")
}

func TestPhaseSuggestions_WeekTwoAddsPatterns(t *testing.T) {
	out := NewGenerator().PhaseSuggestions(richProfile(), PhaseWeekTwo)

	require.Len(t, out, 6)
	var sb strings.Builder
	for _, s := range out {
		sb.WriteString(s.Message + "\n")
	}
	joined := sb.String()
	assert.Contains(t, joined, "09:00")
	assert.Contains(t, joined, "Tuesday")
	assert.Contains(t, joined, "dip")
}

func TestPhaseSuggestions_ConfidenceShapesPhrasing(t *testing.T) {
	p := richProfile()
	p.Chronotype.Confidence = domain.ConfidenceLow
	low := NewGenerator().PhaseSuggestions(p, PhaseWeekOne)[1].Message

	p.Chronotype.Confidence = domain.ConfidenceHigh
	high := NewGenerator().PhaseSuggestions(p, PhaseWeekOne)[1].Message

	assert.NotEqual(t, low, high)
	assert.Contains(t, low, "guess")
}

func TestStressMessages_QuietProfile(t *testing.T) {
	out := NewGenerator().StressMessages(richProfile())
	assert.Empty(t, out)
}

func TestStressMessages_BurnoutAndWeekend(t *testing.T) {
	p := richProfile()
	p.Stress.Level = domain.StressBurnout
	p.Stress.WeekendWorkDays = 2

	out := NewGenerator().StressMessages(p)
	require.Len(t, out, 2)
	assert.Equal(t, domain.SuggestionWarning, out[0].Type)
	assert.Contains(t, out[1].Message, "weekend")
}

func TestBalanceMessages_PoorBalanceWarns(t *testing.T) {
	p := richProfile()
	p.Balance.Status = domain.BalancePoor
	p.Balance.PersonalRatio = 5

	out := NewGenerator().BalanceMessages(p)
	require.NotEmpty(t, out)
	assert.Equal(t, domain.SuggestionWarning, out[0].Type)
	assert.Contains(t, out[0].Message, "5%")
}

func TestBalanceMessages_ExerciseCelebratedOrSuggested(t *testing.T) {
	p := richProfile()
	p.Balance.HasExerciseRoutine = true
	out := NewGenerator().BalanceMessages(p)
	require.Len(t, out, 1)
	assert.Equal(t, domain.SuggestionCelebration, out[0].Type)

	p.Balance.HasExerciseRoutine = false
	out = NewGenerator().BalanceMessages(p)
	require.Len(t, out, 1)
	assert.Equal(t, domain.SuggestionNudge, out[0].Type)
}
