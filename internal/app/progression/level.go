// Package progression implements the companion character's level/exp
// system and the completion streak engine. Both are pure state machines:
// value in, value out, no I/O.
package progression

import (
	"math"

	"github.com/ppoom-app/ppoom/internal/domain"
)

// RequiredExp returns the exp needed to advance from the given level to
// the next. Curved growth, monotonically increasing; read-only table.
func RequiredExp(level int) int {
	if level < 1 {
		level = 1
	}
	return int(100 * math.Pow(1.2, float64(level-1)))
}

// LevelUpResult describes what a single AddExp call changed.
type LevelUpResult struct {
	LeveledUp        bool             `json:"leveled_up"`
	NewLevel         int              `json:"new_level"`
	ExpGained        int              `json:"exp_gained"`
	UnlockedCostumes []domain.Costume `json:"unlocked_costumes,omitempty"`
}

// AddExp adds experience to the character, carrying overflow across level
// thresholds (multi-level jumps in one call are supported). At MaxLevel,
// exp is capped at that level's requirement with no overflow accumulation.
// Newly reachable costumes are unlocked as part of the same transition.
func AddExp(ch domain.CharacterData, amount int) (domain.CharacterData, LevelUpResult, error) {
	if amount <= 0 {
		return ch, LevelUpResult{NewLevel: ch.Level}, domain.ErrNonPositiveExp
	}
	if ch.Level < 1 {
		ch.Level = 1
	}

	oldLevel := ch.Level
	ch.Exp += amount

	for ch.Level < domain.MaxLevel && ch.Exp >= RequiredExp(ch.Level) {
		ch.Exp -= RequiredExp(ch.Level)
		ch.Level++
	}
	if ch.Level >= domain.MaxLevel {
		if maxExp := RequiredExp(domain.MaxLevel); ch.Exp > maxExp {
			ch.Exp = maxExp
		}
	}

	res := LevelUpResult{
		LeveledUp: ch.Level > oldLevel,
		NewLevel:  ch.Level,
		ExpGained: amount,
	}
	if res.LeveledUp {
		ch, res.UnlockedCostumes = unlockCostumes(ch)
	}
	return ch, res, nil
}

// ExpProgress returns progress toward the next level in [0,1].
// Returns 1 at MaxLevel.
func ExpProgress(ch domain.CharacterData) float64 {
	if ch.Level >= domain.MaxLevel {
		return 1
	}
	required := RequiredExp(ch.Level)
	if required <= 0 {
		return 1
	}
	p := float64(ch.Exp) / float64(required)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// unlockCostumes grants every catalog costume at or below the character's
// level that isn't unlocked yet. Returns the updated character and the
// newly granted costumes.
func unlockCostumes(ch domain.CharacterData) (domain.CharacterData, []domain.Costume) {
	var granted []domain.Costume
	for _, c := range domain.CostumesForLevel(ch.Level) {
		if !ch.HasCostume(c.ID) {
			ch.UnlockedCostumeIDs = append(ch.UnlockedCostumeIDs, c.ID)
			granted = append(granted, c)
		}
	}
	return ch, granted
}
