package domain

// ─── Streaks ────────────────────────────────────────────────────────────────

// StreakData tracks consecutive days with every daily mission completed.
// Invariant: LongestStreak >= CurrentStreak at all times. Mutated only by
// the progression engine, at most once per calendar day.
type StreakData struct {
	CurrentStreak     int    `json:"current_streak"`
	LongestStreak     int    `json:"longest_streak"`
	LastCompletedDate string `json:"last_completed_date"` // YYYY-MM-DD, local time; "" = never
}
