// Package mission implements daily mission assignment: a constraint-
// satisfaction draw over the static template pool with graceful
// degradation. Given the pool size (60) it never comes up short.
package mission

import (
	"math/rand"

	"github.com/ppoom-app/ppoom/internal/domain"
)

// Lookback windows for the anti-repetition rules.
const (
	recencyLookback  = 3 // template ids used in the last N days are excluded
	categoryLookback = 2 // categories over-represented in the last N days are deprioritized
)

// DifficultyForFatigue maps a fatigue score to today's mission tier.
// Low fatigue means the user has energy for harder tasks.
func DifficultyForFatigue(fatiguePct int) domain.MissionDifficulty {
	switch {
	case fatiguePct <= 30:
		return domain.DifficultyChallenge
	case fatiguePct <= 60:
		return domain.DifficultyNormal
	default:
		return domain.DifficultyEasy
	}
}

// CountForFatigue returns how many missions to assign.
// Fewer missions when already fatigued.
func CountForFatigue(fatiguePct int) int {
	if fatiguePct > 60 {
		return 2
	}
	return 3
}

// Assign draws today's missions from the template pool.
//
// Rules, in order: difficulty by fatigue band; count by fatigue band;
// templates used within the last 3 history entries excluded; backfill from
// other difficulties when the primary pool runs short; categories appearing
// twice or more in the last 2 entries deprioritized to a secondary pool;
// shuffled greedy selection maximizing category diversity.
//
// The seed drives the shuffle; callers pass time-derived entropy in
// production and a fixed seed in tests.
func Assign(fatiguePct int, history []domain.MissionHistoryRecord, seed int64) []domain.DailyMission {
	difficulty := DifficultyForFatigue(fatiguePct)
	count := CountForFatigue(fatiguePct)

	recent := recentTemplateIDs(history, recencyLookback)
	tired := overusedCategories(history, categoryLookback)

	// Primary candidates: today's difficulty, not recently used.
	var candidates, fallback []domain.MissionTemplate
	for _, t := range pool {
		if t.Difficulty != difficulty || recent[t.ID] {
			continue
		}
		if tired[t.Category] {
			fallback = append(fallback, t)
		} else {
			candidates = append(candidates, t)
		}
	}

	// Widen to other difficulties if the primary pool can't cover count.
	if len(candidates)+len(fallback) < count {
		for _, t := range pool {
			if t.Difficulty == difficulty || recent[t.ID] {
				continue
			}
			if tired[t.Category] {
				fallback = append(fallback, t)
			} else {
				candidates = append(candidates, t)
			}
		}
	}

	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	r.Shuffle(len(fallback), func(i, j int) {
		fallback[i], fallback[j] = fallback[j], fallback[i]
	})

	selected := pickDiverse(candidates, count)
	if len(selected) < count {
		selected = append(selected, pickDiverse(excluding(fallback, selected), count-len(selected))...)
	}
	if len(selected) < count {
		// Last resort: recently-used templates. Only reachable with a
		// pathologically small pool; the 60-template catalog never gets here.
		var rest []domain.MissionTemplate
		for _, t := range pool {
			rest = append(rest, t)
		}
		r.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
		selected = append(selected, pickDiverse(excluding(rest, selected), count-len(selected))...)
	}

	missions := make([]domain.DailyMission, 0, len(selected))
	for _, t := range selected {
		missions = append(missions, domain.DailyMission{MissionTemplate: t, Completed: false})
	}
	return missions
}

// pickDiverse greedily picks up to n templates from an already-shuffled
// slice: first one per distinct category, then same-category picks from
// whatever remains.
func pickDiverse(shuffled []domain.MissionTemplate, n int) []domain.MissionTemplate {
	var picked []domain.MissionTemplate
	seen := make(map[domain.MissionCategory]bool)

	for _, t := range shuffled {
		if len(picked) >= n {
			return picked
		}
		if !seen[t.Category] {
			seen[t.Category] = true
			picked = append(picked, t)
		}
	}

	taken := make(map[string]bool, len(picked))
	for _, t := range picked {
		taken[t.ID] = true
	}
	for _, t := range shuffled {
		if len(picked) >= n {
			break
		}
		if !taken[t.ID] {
			taken[t.ID] = true
			picked = append(picked, t)
		}
	}
	return picked
}

// excluding filters out templates already selected.
func excluding(templates, selected []domain.MissionTemplate) []domain.MissionTemplate {
	taken := make(map[string]bool, len(selected))
	for _, t := range selected {
		taken[t.ID] = true
	}
	var out []domain.MissionTemplate
	for _, t := range templates {
		if !taken[t.ID] {
			out = append(out, t)
		}
	}
	return out
}

// recentTemplateIDs collects ids used in the trailing n history entries.
// History is chronologically ordered, oldest first.
func recentTemplateIDs(history []domain.MissionHistoryRecord, n int) map[string]bool {
	ids := make(map[string]bool)
	for _, rec := range tail(history, n) {
		for _, m := range rec.Missions {
			ids[m.ID] = true
		}
	}
	return ids
}

// overusedCategories finds categories appearing >= 2 times across the
// trailing n history entries.
func overusedCategories(history []domain.MissionHistoryRecord, n int) map[domain.MissionCategory]bool {
	counts := make(map[domain.MissionCategory]int)
	for _, rec := range tail(history, n) {
		for _, m := range rec.Missions {
			counts[m.Category]++
		}
	}
	out := make(map[domain.MissionCategory]bool)
	for cat, c := range counts {
		if c >= 2 {
			out[cat] = true
		}
	}
	return out
}

func tail(history []domain.MissionHistoryRecord, n int) []domain.MissionHistoryRecord {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}
