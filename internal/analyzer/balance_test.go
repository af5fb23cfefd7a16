package analyzer

import (
	"testing"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBalance_GoodWithHealthyMix(t *testing.T) {
	raw := []domain.CalendarEvent{
		newEvent("Team meeting", daysAgo(1, 9, 0), 60),
		newEvent("Team meeting", daysAgo(2, 9, 0), 60),
		newEvent("Dinner with friends", daysAgo(1, 19, 30), 90, withCalendar(domain.CalendarPersonal)),
	}
	balance := analyzeBalance(classify(raw))

	assert.Equal(t, domain.BalanceGood, balance.Status)
	assert.Equal(t, 33, balance.PersonalRatio)
	assert.Equal(t, 0, balance.AfterHoursDays)
}

func TestBalance_PoorFromAfterHoursWork(t *testing.T) {
	raw := []domain.CalendarEvent{
		newEvent("Late deploy", daysAgo(1, 20, 0), 60),
		newEvent("Late deploy", daysAgo(2, 19, 0), 60),
		newEvent("Late deploy", daysAgo(3, 21, 0), 60),
		newEvent("Dinner", daysAgo(4, 19, 0), 90, withCalendar(domain.CalendarPersonal)),
	}
	balance := analyzeBalance(classify(raw))

	assert.Equal(t, 3, balance.AfterHoursDays)
	assert.Equal(t, domain.BalancePoor, balance.Status)
}

func TestBalance_PoorFromLowPersonalRatio(t *testing.T) {
	var raw []domain.CalendarEvent
	for d := 1; d <= 12; d++ {
		raw = append(raw, newEvent("Team meeting", daysAgo(d, 10, 0), 60))
	}
	raw = append(raw, newEvent("Dinner", daysAgo(1, 18, 0), 90, withCalendar(domain.CalendarPersonal)))
	balance := analyzeBalance(classify(raw))

	// 1 of 13 is below the 10% floor.
	assert.Equal(t, 8, balance.PersonalRatio)
	assert.Equal(t, domain.BalancePoor, balance.Status)
}

func TestBalance_ModerateFromSingleAfterHoursDay(t *testing.T) {
	raw := []domain.CalendarEvent{
		newEvent("Late deploy", daysAgo(1, 20, 0), 60),
		newEvent("Team meeting", daysAgo(2, 10, 0), 60),
		newEvent("Dinner", daysAgo(3, 18, 0), 90, withCalendar(domain.CalendarPersonal)),
	}
	balance := analyzeBalance(classify(raw))

	assert.Equal(t, 1, balance.AfterHoursDays)
	assert.Equal(t, domain.BalanceModerate, balance.Status)
}

func TestBalance_ExerciseRoutine(t *testing.T) {
	raw := []domain.CalendarEvent{
		newEvent("Morning gym", daysAgo(1, 7, 0), 60, withRecurring(), withCalendar(domain.CalendarPersonal)),
		newEvent("Team meeting", daysAgo(1, 10, 0), 60),
		newEvent("Dinner", daysAgo(2, 18, 0), 90, withCalendar(domain.CalendarPersonal)),
	}
	balance := analyzeBalance(classify(raw))

	assert.True(t, balance.HasExerciseRoutine)
}

func TestBalance_OneOffGymIsNotARoutine(t *testing.T) {
	raw := []domain.CalendarEvent{
		newEvent("Gym", daysAgo(1, 7, 0), 60, withCalendar(domain.CalendarPersonal)),
		newEvent("Dinner", daysAgo(2, 18, 0), 90, withCalendar(domain.CalendarPersonal)),
	}
	balance := analyzeBalance(classify(raw))

	assert.False(t, balance.HasExerciseRoutine)
}

func TestBalance_EmptyInputDefaultsGood(t *testing.T) {
	balance := analyzeBalance(nil)

	assert.Equal(t, domain.BalanceGood, balance.Status)
	assert.Equal(t, domain.ConfidenceLow, balance.Confidence)
}
