package domain

// ─── Mission Types ──────────────────────────────────────────────────────────

// MissionCategory groups mission templates by theme. 6 categories.
type MissionCategory string

const (
	MissionExercise    MissionCategory = "exercise"
	MissionRest        MissionCategory = "rest"
	MissionMindfulness MissionCategory = "mindfulness"
	MissionSocial      MissionCategory = "social"
	MissionNutrition   MissionCategory = "nutrition"
	MissionDigital     MissionCategory = "digital"
)

// MissionDifficulty is the effort tier of a mission.
type MissionDifficulty string

const (
	DifficultyEasy      MissionDifficulty = "EASY"
	DifficultyNormal    MissionDifficulty = "NORMAL"
	DifficultyChallenge MissionDifficulty = "CHALLENGE"
)

// MissionTemplate is one entry of the static 60-template pool
// (6 categories × 3 difficulties). Read-only reference data.
type MissionTemplate struct {
	ID          string            `json:"id"`
	Category    MissionCategory   `json:"category"`
	Difficulty  MissionDifficulty `json:"difficulty"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Emoji       string            `json:"emoji"`
	ExpReward   int               `json:"exp_reward"`
}

// DailyMission is a template instantiated for today.
// Completed is the only mutable field; missions are never deleted,
// only replaced at day rollover.
type DailyMission struct {
	MissionTemplate
	Completed bool `json:"completed"`
}

// MissionHistoryRecord is one closed day of missions. Append-only;
// used as the lookback window for anti-repetition rules.
type MissionHistoryRecord struct {
	Date         string         `json:"date"` // YYYY-MM-DD, local time
	Missions     []DailyMission `json:"missions"`
	FatiguePct   int            `json:"fatigue_pct"`
	AllCompleted bool           `json:"all_completed"`
}
