package domain

type EventCategory string

const (
	CategoryMeeting      EventCategory = "meeting"
	CategoryFocus        EventCategory = "focus"
	CategoryPresentation EventCategory = "presentation"
	CategoryOneOnOne     EventCategory = "one_on_one"
	CategoryMeal         EventCategory = "meal"
	CategoryHealth       EventCategory = "health"
	CategoryPersonal     EventCategory = "personal"
	CategoryBreak        EventCategory = "break"
	CategoryOther        EventCategory = "other"
)

// IsMeetingLike reports whether the category counts toward meeting load.
func (c EventCategory) IsMeetingLike() bool {
	return c == CategoryMeeting || c == CategoryOneOnOne || c == CategoryPresentation
}

type EnergyLevel string

const (
	EnergyHigh     EnergyLevel = "high"
	EnergyMedium   EnergyLevel = "medium"
	EnergyLow      EnergyLevel = "low"
	EnergyRecovery EnergyLevel = "recovery"
)

type MeetingIntensity string

const (
	IntensitySolo     MeetingIntensity = "solo"
	IntensityOneOnOne MeetingIntensity = "one_on_one"
	IntensitySmall    MeetingIntensity = "small"
	IntensityMedium   MeetingIntensity = "medium"
	IntensityLarge    MeetingIntensity = "large"
)

type CalendarType string

const (
	CalendarWork     CalendarType = "work"
	CalendarPersonal CalendarType = "personal"
	CalendarUnknown  CalendarType = "unknown"
)

type EventStatus string

const (
	StatusConfirmed EventStatus = "confirmed"
	StatusTentative EventStatus = "tentative"
	StatusCancelled EventStatus = "cancelled"
)

type Chronotype string

const (
	ChronotypeMorning Chronotype = "morning"
	ChronotypeEvening Chronotype = "evening"
	ChronotypeNeutral Chronotype = "neutral"
)

type WorkStyleType string

const (
	StyleCollaborative WorkStyleType = "collaborative"
	StyleIndependent   WorkStyleType = "independent"
	StyleBalanced      WorkStyleType = "balanced"
)

type StressLevel string

const (
	StressLow     StressLevel = "low"
	StressMedium  StressLevel = "medium"
	StressHigh    StressLevel = "high"
	StressBurnout StressLevel = "burnout"
)

type BalanceStatus string

const (
	BalanceGood     BalanceStatus = "good"
	BalanceModerate BalanceStatus = "moderate"
	BalancePoor     BalanceStatus = "poor"
)

type SlotQuality string

const (
	QualityFair      SlotQuality = "fair"
	QualityGood      SlotQuality = "good"
	QualityExcellent SlotQuality = "excellent"
)

type BusyLevel string

const (
	BusyLight   BusyLevel = "light"
	BusyNormal  BusyLevel = "normal"
	BusyHeavy   BusyLevel = "heavy"
	BusyExtreme BusyLevel = "extreme"
)

type Tone string

const (
	ToneEnergetic  Tone = "energetic"
	ToneGentle     Tone = "gentle"
	ToneSupportive Tone = "supportive"
)

type BurnoutLevel string

const (
	BurnoutNone     BurnoutLevel = "none"
	BurnoutWatch    BurnoutLevel = "watch"
	BurnoutWarning  BurnoutLevel = "warning"
	BurnoutCritical BurnoutLevel = "critical"
)

type SuggestionType string

const (
	SuggestionBriefing    SuggestionType = "briefing"
	SuggestionNudge       SuggestionType = "nudge"
	SuggestionWarning     SuggestionType = "warning"
	SuggestionCelebration SuggestionType = "celebration"
)

// Confidence is a discrete tier describing how much data backs an inference.
type Confidence int

const (
	ConfidenceLow    Confidence = 1
	ConfidenceMedium Confidence = 2
	ConfidenceHigh   Confidence = 3
)
