package progression

import (
	"math"

	"github.com/ppoom-app/ppoom/internal/domain"
)

// UpdateStreak folds a mission-completion day into the streak state.
//
// State machine over LastCompletedDate:
//   - no prior completion → streak starts at 1
//   - same day           → no-op (idempotent re-trigger)
//   - next day           → increment
//   - anything else      → reset to 1
//
// A backward-dated completion (device clock moved back) lands in the
// reset branch; the engine treats it as a gap rather than crashing. A
// malformed last date is also a gap, otherwise DiffDays would read it
// as "same day" and the streak could never move again.
// LongestStreak is a running maximum and never decreases.
func UpdateStreak(s domain.StreakData, completedDate string) domain.StreakData {
	switch {
	case s.LastCompletedDate == "":
		s.CurrentStreak = 1
	case domain.ParseDay(s.LastCompletedDate).IsZero():
		s.CurrentStreak = 1
	default:
		switch domain.DiffDays(s.LastCompletedDate, completedDate) {
		case 0:
			return s
		case 1:
			s.CurrentStreak++
		default:
			s.CurrentStreak = 1
		}
	}

	s.LastCompletedDate = completedDate
	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}
	return s
}

// BonusMultiplier returns the exp bonus for a streak length as a fraction.
// Step function: 30+ days double rewards, shorter streaks scale down.
func BonusMultiplier(currentStreak int) float64 {
	switch {
	case currentStreak >= 30:
		return 1.00
	case currentStreak >= 14:
		return 0.50
	case currentStreak >= 7:
		return 0.25
	case currentStreak >= 3:
		return 0.10
	default:
		return 0
	}
}

// ApplyBonus scales a base exp reward by the streak bonus,
// rounded to the nearest integer.
func ApplyBonus(baseExp, currentStreak int) int {
	return int(math.Round(float64(baseExp) * (1 + BonusMultiplier(currentStreak))))
}
