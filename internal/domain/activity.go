// Package domain holds the pure value types of the Ppoom fatigue engine.
// Everything here is serializable state or static reference data, no
// services, no I/O. Engines in internal/app operate on these types.
package domain

import "time"

// ─── Activity Types ─────────────────────────────────────────────────────────

// ActivityType is a closed enumeration of trackable activities.
// Each type carries a fixed fatigue weight (see Weight); the mapping is
// static configuration, not derived at runtime.
type ActivityType string

const (
	ActivityWork       ActivityType = "work"
	ActivityStudy      ActivityType = "study"
	ActivityExercise   ActivityType = "exercise"
	ActivityCommute    ActivityType = "commute"
	ActivityHousework  ActivityType = "housework"
	ActivityScreen     ActivityType = "screen"
	ActivitySocial     ActivityType = "social"
	ActivityMeal       ActivityType = "meal"
	ActivityWalk       ActivityType = "walk"
	ActivityMeditation ActivityType = "meditation"
	ActivityRest       ActivityType = "rest"
	ActivitySleep      ActivityType = "sleep"
)

// activityWeights maps each type to its fatigue weight in
// fatigue-percent-points per hour. Negative weight = recovery.
var activityWeights = map[ActivityType]float64{
	ActivityWork:       0.15,
	ActivityStudy:      0.12,
	ActivityExercise:   0.08,
	ActivityCommute:    0.10,
	ActivityHousework:  0.08,
	ActivityScreen:     0.10,
	ActivitySocial:     0.05,
	ActivityMeal:       -0.05,
	ActivityWalk:       -0.05,
	ActivityMeditation: -0.15,
	ActivityRest:       -0.20,
	ActivitySleep:      -0.35,
}

// Weight returns the fatigue weight for this activity type.
// Weights are percent-points per hour: impact = Weight × hours × 100.
func (t ActivityType) Weight() float64 {
	return activityWeights[t]
}

// IsRecovery reports whether this activity reduces fatigue.
func (t ActivityType) IsRecovery() bool {
	return activityWeights[t] < 0
}

// Valid reports whether t is a known activity type.
func (t ActivityType) Valid() bool {
	_, ok := activityWeights[t]
	return ok
}

// AllActivityTypes returns every known type in a stable order.
func AllActivityTypes() []ActivityType {
	return []ActivityType{
		ActivityWork, ActivityStudy, ActivityExercise, ActivityCommute,
		ActivityHousework, ActivityScreen, ActivitySocial, ActivityMeal,
		ActivityWalk, ActivityMeditation, ActivityRest, ActivitySleep,
	}
}

// ─── Activity Records ───────────────────────────────────────────────────────

// ActivityRecord is one logged activity. Immutable once created;
// owned by the daily fatigue session and cleared at midnight rollover.
type ActivityRecord struct {
	ID              string       `json:"id"`
	Type            ActivityType `json:"type"`
	DurationMinutes int          `json:"duration_minutes"`
	Timestamp       time.Time    `json:"timestamp"`
	Note            string       `json:"note,omitempty"`
}

// Hours returns the duration in fractional hours.
func (a ActivityRecord) Hours() float64 {
	return float64(a.DurationMinutes) / 60.0
}

// DailyFatigueData is the state of one calendar day.
// Date always reflects the LOCAL calendar day the activities belong to,
// see LocalDay. One instance per day, replaced at rollover.
type DailyFatigueData struct {
	Date              string           `json:"date"` // YYYY-MM-DD, local time
	Activities        []ActivityRecord `json:"activities"`
	CurrentFatiguePct int              `json:"current_fatigue_pct"`
}
