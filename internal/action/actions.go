package action

// Action is one recommended assistant behavior. The vocabulary is closed:
// consumers switch on these values, so new actions are additions, never
// renames.
type Action string

const (
	RecommendMorningTask   Action = "recommend_morning_task"
	RecommendAfternoonTask Action = "recommend_afternoon_task"
	MinimizeMorningAlerts  Action = "minimize_morning_alerts"
	SuggestBreak           Action = "suggest_break"
	SoftenTone             Action = "soften_tone"
	EmphasizeRest          Action = "emphasize_rest"
	ProtectFocusTime       Action = "protect_focus_time"
	ReduceTaskLoad         Action = "reduce_task_load"
	WarnBurnout            Action = "warn_burnout"
	CelebrateProgress      Action = "celebrate_progress"
	SendEncouragement      Action = "send_encouragement"
)

var guidance = map[Action]string{
	RecommendMorningTask:   "Surface the most demanding task early in the day.",
	RecommendAfternoonTask: "Hold demanding tasks until the afternoon.",
	MinimizeMorningAlerts:  "Keep mornings quiet; avoid non-urgent pings before noon.",
	SuggestBreak:           "Suggest a short break between blocks.",
	SoftenTone:             "Use a softer, lower-pressure tone.",
	EmphasizeRest:          "Emphasize rest and recovery over output.",
	ProtectFocusTime:       "Defend the current focus window from interruptions.",
	ReduceTaskLoad:         "Trim today's task list to the essentials.",
	WarnBurnout:            "Raise the burnout risk directly and kindly.",
	CelebrateProgress:      "Acknowledge a habit or streak that is working.",
	SendEncouragement:      "Send a brief encouraging note.",
}

// Guidance returns the fixed human-readable description for an action.
func (a Action) Guidance() string {
	return guidance[a]
}
