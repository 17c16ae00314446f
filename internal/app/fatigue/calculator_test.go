package fatigue_test

import (
	"math"
	"testing"
	"time"

	"github.com/ppoom-app/ppoom/internal/app/fatigue"
	"github.com/ppoom-app/ppoom/internal/domain"
)

func act(t domain.ActivityType, minutes int) domain.ActivityRecord {
	return domain.ActivityRecord{
		ID:              "test",
		Type:            t,
		DurationMinutes: minutes,
		Timestamp:       time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCalculate_EmptyReturnsBaseline(t *testing.T) {
	for _, baseline := range []int{0, 25, 50, 73, 100} {
		got := fatigue.Calculate(nil, baseline)
		if got != baseline {
			t.Errorf("Calculate(nil, %d) = %d, want baseline back", baseline, got)
		}
	}
}

func TestCalculate_NoSleepLoggedSkipsAdjustment(t *testing.T) {
	// Unlogged sleep is unknown, not a zero-hour night, so no sleep band
	// applies. 1h work: 50 + 0.15*1*100 = 65; the <5h band would give 80.
	activities := []domain.ActivityRecord{act(domain.ActivityWork, 60)}
	got := fatigue.Calculate(activities, 50)
	if got != 65 {
		t.Errorf("expected 65 with no sleep adjustment, got %d", got)
	}
}

func TestCalculate_SevenHourSleepClampsToZero(t *testing.T) {
	// 7h sleep: impact -0.35*7*100 = -245, sleep bonus -10 → 50-255 clamps to 0
	activities := []domain.ActivityRecord{act(domain.ActivitySleep, 420)}
	got := fatigue.Calculate(activities, 50)
	if got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestCalculate_ClampUpper(t *testing.T) {
	// Adversarially long work day must clamp at 100, never overflow
	activities := []domain.ActivityRecord{act(domain.ActivityWork, 100000)}
	got := fatigue.Calculate(activities, 50)
	if got != 100 {
		t.Errorf("expected clamp at 100, got %d", got)
	}
}

func TestCalculate_AlwaysInRange(t *testing.T) {
	cases := [][]domain.ActivityRecord{
		{act(domain.ActivitySleep, 10000)},
		{act(domain.ActivityWork, 1), act(domain.ActivityRest, 1)},
		{act(domain.ActivityMeditation, 9999), act(domain.ActivityStudy, 9999)},
		{},
	}
	for i, activities := range cases {
		for _, baseline := range []int{0, 50, 100} {
			got := fatigue.Calculate(activities, baseline)
			if got < 0 || got > 100 {
				t.Errorf("case %d baseline %d: score %d out of range", i, baseline, got)
			}
		}
	}
}

func TestCalculate_SleepAdjustmentBands(t *testing.T) {
	// Work impact is constant across cases; only sleep hours vary.
	tests := []struct {
		name      string
		sleepMins int
		want      int
	}{
		// base: 50 + work 6h (+90) = 140, plus sleep impact and adjustment
		{"severe debt 4h", 240, 140 - 140 + 15},   // -0.35*4*100=-140, +15 → 15
		{"moderate debt 5h", 300, 140 - 175 + 10}, // clamps to 0
		{"good sleep 8h", 480, 140 - 280 - 10},    // clamps to 0
	}
	for _, tt := range tests {
		activities := []domain.ActivityRecord{
			act(domain.ActivityWork, 360),
			act(domain.ActivitySleep, tt.sleepMins),
		}
		want := tt.want
		if want < 0 {
			want = 0
		}
		got := fatigue.Calculate(activities, 50)
		if got != want {
			t.Errorf("%s: got %d, want %d", tt.name, got, want)
		}
	}
}

func TestCalculate_BalancePenalty(t *testing.T) {
	// 10.5h work, 5h sleep: 50 + 157.5 - 175 + 10 = 42.5; no rest → +10 → 53
	overworked := []domain.ActivityRecord{
		act(domain.ActivityWork, 630),
		act(domain.ActivitySleep, 300),
	}
	if got := fatigue.Calculate(overworked, 50); got != 53 {
		t.Errorf("penalized score: got %d, want 53", got)
	}

	// Same day with 1h of rest: no penalty, rest impact -20 → 22.5 → 23
	balanced := append(overworked, act(domain.ActivityRest, 60))
	if got := fatigue.Calculate(balanced, 50); got != 23 {
		t.Errorf("balanced score: got %d, want 23", got)
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	activities := []domain.ActivityRecord{
		act(domain.ActivityWork, 480),
		act(domain.ActivitySleep, 390),
		act(domain.ActivityWalk, 30),
	}
	first := fatigue.Calculate(activities, 50)
	for i := 0; i < 10; i++ {
		if got := fatigue.Calculate(activities, 50); got != first {
			t.Fatalf("run %d: got %d, want %d", i, got, first)
		}
	}
}

func TestContributions_NormalizedShares(t *testing.T) {
	activities := []domain.ActivityRecord{
		act(domain.ActivityWork, 60),  // +15
		act(domain.ActivitySleep, 60), // -35
	}
	contribs := fatigue.Contributions(activities)
	if len(contribs) != 2 {
		t.Fatalf("expected 2 contributions, got %d", len(contribs))
	}

	var total float64
	for _, c := range contribs {
		total += c.SharePct
	}
	if math.Abs(total-100) > 0.001 {
		t.Errorf("shares should sum to 100, got %.3f", total)
	}

	for _, c := range contribs {
		switch c.Type {
		case domain.ActivityWork:
			if math.Abs(c.SharePct-30) > 0.001 || c.IsRecovery {
				t.Errorf("work: share %.1f recovery %v", c.SharePct, c.IsRecovery)
			}
		case domain.ActivitySleep:
			if math.Abs(c.SharePct-70) > 0.001 || !c.IsRecovery {
				t.Errorf("sleep: share %.1f recovery %v", c.SharePct, c.IsRecovery)
			}
		}
	}
}

func TestContributions_Empty(t *testing.T) {
	if got := fatigue.Contributions(nil); len(got) != 0 {
		t.Errorf("expected no contributions, got %d", len(got))
	}
}

func TestMessage_Bands(t *testing.T) {
	seen := map[string]bool{}
	for _, score := range []int{0, 30, 50, 70, 95} {
		msg := fatigue.Message(score)
		if msg == "" {
			t.Fatalf("empty message at score %d", score)
		}
		if seen[msg] {
			t.Errorf("score %d reused message %q from another band", score, msg)
		}
		seen[msg] = true
	}
}

func TestRecommend_SleepSignalWins(t *testing.T) {
	withDebt := fatigue.Recommend(40, 5.0, 0)
	without := fatigue.Recommend(40, 8.0, 0)
	if withDebt == without {
		t.Error("short sleep should override the score band")
	}
}

func TestRecommend_ScreenSignal(t *testing.T) {
	heavy := fatigue.Recommend(40, 8.0, 7.5)
	light := fatigue.Recommend(40, 8.0, 1.0)
	if heavy == light {
		t.Error("heavy screen time should change the recommendation")
	}
}
