// Package fatigue implements the fatigue scoring engine.
// All functions are pure and deterministic: activities in, score out.
// No randomness, no I/O, safe to replay.
package fatigue

import (
	"math"

	"github.com/ppoom-app/ppoom/internal/domain"
)

// DefaultBaseline is the neutral starting score for a day.
const DefaultBaseline = 50

// Sleep adjustment bands, in fatigue-percent-points.
const (
	severeSleepDebt   = 15 // under 5 hours
	moderateSleepDebt = 10 // under 6 hours
	goodSleepBonus    = 10 // 7–9 hours, subtracted
	oversleepPenalty  = 5  // over 9 hours
)

// balancePenalty applies when work exceeds 10 hours with under 1 hour of rest.
const balancePenalty = 10

// Calculate returns the fatigue score in [0,100] for a day's activities.
// Starts at baseline, adds each activity's weighted impact, then the sleep
// adjustment and the work/rest balance penalty, and clamps.
// Zero activities → exactly baseline.
func Calculate(activities []domain.ActivityRecord, baseline int) int {
	if len(activities) == 0 {
		return clamp(baseline)
	}

	score := float64(baseline)
	for _, a := range activities {
		score += impact(a)
	}

	score += sleepAdjustment(sleepHours(activities))

	if workHours(activities) > 10 && restHours(activities) < 1 {
		score += balancePenalty
	}

	return clamp(int(math.Round(score)))
}

// impact is one activity's contribution in fatigue-percent-points.
func impact(a domain.ActivityRecord) float64 {
	return a.Type.Weight() * a.Hours() * 100
}

// sleepAdjustment maps total sleep hours to a score adjustment.
// Hours of zero means no sleep was logged, so no adjustment.
func sleepAdjustment(hours float64) float64 {
	switch {
	case hours <= 0:
		return 0
	case hours < 5:
		return severeSleepDebt
	case hours < 6:
		return moderateSleepDebt
	case hours >= 7 && hours <= 9:
		return -goodSleepBonus
	case hours > 9:
		return oversleepPenalty
	default:
		return 0
	}
}

// ─── Derived Signals ────────────────────────────────────────────────────────

// Contribution is one activity type's share of the day's total impact.
type Contribution struct {
	Type       domain.ActivityType `json:"type"`
	Impact     float64             `json:"impact"`    // signed percent-points
	SharePct   float64             `json:"share_pct"` // normalized |impact| share, 0-100
	IsRecovery bool                `json:"is_recovery"`
}

// Contributions returns per-type impact shares, ordered as
// domain.AllActivityTypes. Types with no logged time are omitted.
func Contributions(activities []domain.ActivityRecord) []Contribution {
	byType := make(map[domain.ActivityType]float64)
	var totalAbs float64
	for _, a := range activities {
		imp := impact(a)
		byType[a.Type] += imp
	}
	for _, imp := range byType {
		totalAbs += math.Abs(imp)
	}

	var out []Contribution
	for _, t := range domain.AllActivityTypes() {
		imp, ok := byType[t]
		if !ok {
			continue
		}
		share := 0.0
		if totalAbs > 0 {
			share = math.Abs(imp) / totalAbs * 100
		}
		out = append(out, Contribution{
			Type:       t,
			Impact:     imp,
			SharePct:   share,
			IsRecovery: t.IsRecovery(),
		})
	}
	return out
}

// sleepHours totals logged sleep-type hours.
func sleepHours(activities []domain.ActivityRecord) float64 {
	var mins int
	for _, a := range activities {
		if a.Type == domain.ActivitySleep {
			mins += a.DurationMinutes
		}
	}
	return float64(mins) / 60.0
}

// workHours totals focused-effort hours (work and study).
func workHours(activities []domain.ActivityRecord) float64 {
	var mins int
	for _, a := range activities {
		if a.Type == domain.ActivityWork || a.Type == domain.ActivityStudy {
			mins += a.DurationMinutes
		}
	}
	return float64(mins) / 60.0
}

// restHours totals waking recovery hours (recovery types except sleep).
func restHours(activities []domain.ActivityRecord) float64 {
	var mins int
	for _, a := range activities {
		if a.Type.IsRecovery() && a.Type != domain.ActivitySleep {
			mins += a.DurationMinutes
		}
	}
	return float64(mins) / 60.0
}

// ScreenHours totals logged screen-type hours. Exposed for the
// recommendation bands and daily history.
func ScreenHours(activities []domain.ActivityRecord) float64 {
	var mins int
	for _, a := range activities {
		if a.Type == domain.ActivityScreen {
			mins += a.DurationMinutes
		}
	}
	return float64(mins) / 60.0
}

// SleepHours totals logged sleep-type hours. Exposed for daily history.
func SleepHours(activities []domain.ActivityRecord) float64 {
	return sleepHours(activities)
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
