package domain

// ─── Daily History ──────────────────────────────────────────────────────────

// HistoryWindowDays is the rolling retention window for daily history.
// Older entries are pruned on write.
const HistoryWindowDays = 90

// DailyHistoryRecord is one finalized day, keyed by local date.
// Append/replace-by-date; input to the pattern analyzer.
type DailyHistoryRecord struct {
	Date         string  `json:"date"` // YYYY-MM-DD, local time
	FatiguePct   int     `json:"fatigue_pct"`
	SleepHours   float64 `json:"sleep_hours"`
	StepCount    int     `json:"step_count"`
	ScreenHours  float64 `json:"screen_hours"`
	MissionsDone int     `json:"missions_done"`
}

// ─── Health Snapshot ────────────────────────────────────────────────────────

// HealthSnapshot is a point-in-time reading from the platform health
// integration. Every field may be absent; consumers must nil-check.
type HealthSnapshot struct {
	StepCount             *int     `json:"step_count,omitempty"`
	SleepMinutes          *int     `json:"sleep_minutes,omitempty"`
	EstimatedSleepMinutes *int     `json:"estimated_sleep_minutes,omitempty"`
	HeartRate             *float64 `json:"heart_rate,omitempty"`
	HRV                   *float64 `json:"hrv,omitempty"`
}
