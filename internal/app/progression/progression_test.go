package progression_test

import (
	"errors"
	"testing"

	"github.com/ppoom-app/ppoom/internal/app/progression"
	"github.com/ppoom-app/ppoom/internal/domain"
)

// ═══════════════════════════════════════════════════════════════════════════
// Level / Exp Tests
// ═══════════════════════════════════════════════════════════════════════════

func TestRequiredExp_Monotonic(t *testing.T) {
	prev := progression.RequiredExp(1)
	if prev != 100 {
		t.Errorf("level 1 requirement: got %d, want 100", prev)
	}
	for lvl := 2; lvl <= domain.MaxLevel; lvl++ {
		req := progression.RequiredExp(lvl)
		if req <= prev {
			t.Errorf("RequiredExp(%d) = %d not greater than level %d (%d)", lvl, req, lvl-1, prev)
		}
		prev = req
	}
}

func TestAddExp_SingleLevelUp(t *testing.T) {
	ch := domain.NewCharacter()
	ch, res, err := progression.AddExp(ch, 150)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	// 150 exp: level 1 needs 100, carry 50 into level 2
	if ch.Level != 2 || ch.Exp != 50 {
		t.Errorf("got level %d exp %d, want level 2 exp 50", ch.Level, ch.Exp)
	}
	if !res.LeveledUp || res.NewLevel != 2 || res.ExpGained != 150 {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestAddExp_MultiLevelJump(t *testing.T) {
	ch := domain.NewCharacter()
	// 100 + 120 + 144 = 364 exhausts levels 1-3; +36 lands in level 4
	ch, res, err := progression.AddExp(ch, 400)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if ch.Level != 4 || ch.Exp != 36 {
		t.Errorf("got level %d exp %d, want level 4 exp 36", ch.Level, ch.Exp)
	}
	if res.NewLevel != 4 {
		t.Errorf("result level %d, want 4", res.NewLevel)
	}
}

func TestAddExp_Accumulation(t *testing.T) {
	// Many small adds must land exactly where one big add does.
	single := domain.NewCharacter()
	single, _, _ = progression.AddExp(single, 1000)

	split := domain.NewCharacter()
	for i := 0; i < 100; i++ {
		split, _, _ = progression.AddExp(split, 10)
	}

	if single.Level != split.Level || single.Exp != split.Exp {
		t.Errorf("split accumulation diverged: single L%d/%d vs split L%d/%d",
			single.Level, single.Exp, split.Level, split.Exp)
	}
}

func TestAddExp_Monotonic(t *testing.T) {
	ch := domain.NewCharacter()
	prevLevel := ch.Level
	for i := 0; i < 500; i++ {
		var err error
		ch, _, err = progression.AddExp(ch, 37)
		if err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
		if ch.Level < prevLevel {
			t.Fatalf("level decreased: %d → %d", prevLevel, ch.Level)
		}
		if ch.Level > domain.MaxLevel {
			t.Fatalf("level %d exceeds max", ch.Level)
		}
		if ch.Level < domain.MaxLevel && ch.Exp >= progression.RequiredExp(ch.Level) {
			t.Fatalf("exp %d >= requirement %d at level %d", ch.Exp, progression.RequiredExp(ch.Level), ch.Level)
		}
		prevLevel = ch.Level
	}
}

func TestAddExp_MaxLevelCap(t *testing.T) {
	ch := domain.NewCharacter()
	ch, _, _ = progression.AddExp(ch, 1_000_000_000)
	if ch.Level != domain.MaxLevel {
		t.Fatalf("expected max level %d, got %d", domain.MaxLevel, ch.Level)
	}
	maxExp := progression.RequiredExp(domain.MaxLevel)
	if ch.Exp != maxExp {
		t.Errorf("exp at max level: got %d, want capped at %d", ch.Exp, maxExp)
	}

	// Further adds stay capped
	ch, res, _ := progression.AddExp(ch, 500)
	if ch.Exp != maxExp || res.LeveledUp {
		t.Errorf("post-cap add: exp %d leveledUp %v", ch.Exp, res.LeveledUp)
	}
}

func TestAddExp_RejectsNonPositive(t *testing.T) {
	ch := domain.NewCharacter()
	_, _, err := progression.AddExp(ch, 0)
	if !errors.Is(err, domain.ErrNonPositiveExp) {
		t.Errorf("amount 0: got %v, want ErrNonPositiveExp", err)
	}
	_, _, err = progression.AddExp(ch, -5)
	if !errors.Is(err, domain.ErrNonPositiveExp) {
		t.Errorf("amount -5: got %v, want ErrNonPositiveExp", err)
	}
}

func TestAddExp_UnlocksCostumes(t *testing.T) {
	ch := domain.NewCharacter()
	total := len(domain.CostumeCatalog())

	// Enough exp to hit max level unlocks the whole catalog.
	ch, _, _ = progression.AddExp(ch, 1_000_000_000)
	if len(ch.UnlockedCostumeIDs) != total {
		t.Errorf("unlocked %d costumes, want %d", len(ch.UnlockedCostumeIDs), total)
	}
	if !ch.HasCostume("golden") {
		t.Error("level-30 costume should be unlocked at max level")
	}
}

func TestExpProgress(t *testing.T) {
	ch := domain.NewCharacter()
	if p := progression.ExpProgress(ch); p != 0 {
		t.Errorf("fresh character progress: got %.2f, want 0", p)
	}

	ch.Exp = 50 // level 1 needs 100
	if p := progression.ExpProgress(ch); p != 0.5 {
		t.Errorf("half-way progress: got %.2f, want 0.5", p)
	}

	ch.Level = domain.MaxLevel
	if p := progression.ExpProgress(ch); p != 1 {
		t.Errorf("max level progress: got %.2f, want 1", p)
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Streak Tests
// ═══════════════════════════════════════════════════════════════════════════

func TestUpdateStreak_FirstCompletion(t *testing.T) {
	s := progression.UpdateStreak(domain.StreakData{}, "2025-07-01")
	if s.CurrentStreak != 1 || s.LongestStreak != 1 {
		t.Errorf("got current %d longest %d, want 1/1", s.CurrentStreak, s.LongestStreak)
	}
	if s.LastCompletedDate != "2025-07-01" {
		t.Errorf("last date %q", s.LastCompletedDate)
	}
}

func TestUpdateStreak_ConsecutiveDays(t *testing.T) {
	var s domain.StreakData
	days := []string{"2025-07-01", "2025-07-02", "2025-07-03", "2025-07-04", "2025-07-05"}
	for _, d := range days {
		s = progression.UpdateStreak(s, d)
	}
	if s.CurrentStreak != 5 || s.LongestStreak != 5 {
		t.Errorf("got current %d longest %d, want 5/5", s.CurrentStreak, s.LongestStreak)
	}
}

func TestUpdateStreak_SameDayIdempotent(t *testing.T) {
	s := progression.UpdateStreak(domain.StreakData{}, "2025-07-01")
	once := progression.UpdateStreak(s, "2025-07-01")
	twice := progression.UpdateStreak(once, "2025-07-01")
	if once != twice || once.CurrentStreak != 1 {
		t.Errorf("same-day re-trigger not idempotent: %+v vs %+v", once, twice)
	}
}

func TestUpdateStreak_GapResets(t *testing.T) {
	var s domain.StreakData
	for _, d := range []string{"2025-07-01", "2025-07-02", "2025-07-03"} {
		s = progression.UpdateStreak(s, d)
	}
	s = progression.UpdateStreak(s, "2025-07-07") // 4-day jump

	if s.CurrentStreak != 1 {
		t.Errorf("current after gap: got %d, want 1", s.CurrentStreak)
	}
	if s.LongestStreak != 3 {
		t.Errorf("longest preserved: got %d, want 3", s.LongestStreak)
	}
}

func TestUpdateStreak_BackwardDateResets(t *testing.T) {
	var s domain.StreakData
	s = progression.UpdateStreak(s, "2025-07-10")
	s = progression.UpdateStreak(s, "2025-07-11")

	// Device clock moved back. Treated as a gap, never a crash.
	s = progression.UpdateStreak(s, "2025-07-05")
	if s.CurrentStreak != 1 {
		t.Errorf("backward date: got current %d, want reset to 1", s.CurrentStreak)
	}
	if s.LongestStreak != 2 {
		t.Errorf("longest: got %d, want 2", s.LongestStreak)
	}
}

func TestUpdateStreak_MalformedLastDateResets(t *testing.T) {
	// A garbage persisted last date must read as a gap. If it read as
	// "same day" the streak would be frozen on every future completion.
	s := domain.StreakData{CurrentStreak: 4, LongestStreak: 9, LastCompletedDate: "garbage"}

	s = progression.UpdateStreak(s, "2025-07-01")
	if s.CurrentStreak != 1 || s.LastCompletedDate != "2025-07-01" {
		t.Errorf("after malformed last date: got %+v, want reset to 1 on 2025-07-01", s)
	}

	s = progression.UpdateStreak(s, "2025-07-02")
	if s.CurrentStreak != 2 {
		t.Errorf("next day after recovery: got current %d, want 2", s.CurrentStreak)
	}
	if s.LongestStreak != 9 {
		t.Errorf("longest: got %d, want 9 preserved", s.LongestStreak)
	}
}

func TestUpdateStreak_MalformedDateKeepsInvariant(t *testing.T) {
	var s domain.StreakData
	s = progression.UpdateStreak(s, "2025-07-01")
	s = progression.UpdateStreak(s, "not-a-date")
	if s.LongestStreak < s.CurrentStreak {
		t.Errorf("invariant violated: longest %d < current %d", s.LongestStreak, s.CurrentStreak)
	}
}

func TestBonusMultiplier_Steps(t *testing.T) {
	tests := []struct {
		streak int
		want   float64
	}{
		{0, 0}, {1, 0}, {2, 0},
		{3, 0.10}, {6, 0.10},
		{7, 0.25}, {13, 0.25},
		{14, 0.50}, {29, 0.50},
		{30, 1.00}, {365, 1.00},
	}
	for _, tt := range tests {
		if got := progression.BonusMultiplier(tt.streak); got != tt.want {
			t.Errorf("BonusMultiplier(%d) = %.2f, want %.2f", tt.streak, got, tt.want)
		}
	}
}

func TestApplyBonus(t *testing.T) {
	if got := progression.ApplyBonus(20, 7); got != 25 {
		t.Errorf("ApplyBonus(20, 7) = %d, want 25", got)
	}
	if got := progression.ApplyBonus(10, 0); got != 10 {
		t.Errorf("no streak: got %d, want 10", got)
	}
	if got := progression.ApplyBonus(35, 30); got != 70 {
		t.Errorf("30-day streak doubles: got %d, want 70", got)
	}
	// Rounds to nearest: 10 * 1.25 = 12.5 → 13
	if got := progression.ApplyBonus(10, 7); got != 13 {
		t.Errorf("rounding: got %d, want 13", got)
	}
}
