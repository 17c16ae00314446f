package estimator_test

import (
	"testing"
	"time"

	"github.com/ppoom-app/ppoom/internal/app/estimator"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 7, 2, hour, min, 0, 0, time.UTC)
}

func TestSedentaryDetector_BelowThreshold(t *testing.T) {
	d := estimator.NewSedentaryDetector(90*time.Minute, at(9, 0))
	if _, ok := d.Check(at(10, 29)); ok {
		t.Fatal("event fired 89 minutes in, threshold is 90")
	}
}

func TestSedentaryDetector_FiresAndRearms(t *testing.T) {
	d := estimator.NewSedentaryDetector(90*time.Minute, at(9, 0))

	ev, ok := d.Check(at(10, 30))
	if !ok {
		t.Fatal("no event at the 90 minute mark")
	}
	if ev.DurationMinutes != 90 {
		t.Errorf("duration %d, want 90", ev.DurationMinutes)
	}

	// Re-armed: the next poll one minute later is quiet again.
	if _, ok := d.Check(at(10, 31)); ok {
		t.Fatal("event fired immediately after re-arm")
	}

	// A second full stretch fires a second event.
	ev, ok = d.Check(at(12, 0))
	if !ok || ev.DurationMinutes != 90 {
		t.Fatalf("second stretch: ok=%v duration=%d, want 90", ok, ev.DurationMinutes)
	}
}

func TestSedentaryDetector_UserActivityResets(t *testing.T) {
	d := estimator.NewSedentaryDetector(90*time.Minute, at(9, 0))
	d.OnUserActivity(at(10, 0))
	if _, ok := d.Check(at(11, 0)); ok {
		t.Fatal("event fired 60 minutes after user activity")
	}
}

func TestSedentaryDetector_StepCount(t *testing.T) {
	d := estimator.NewSedentaryDetector(90*time.Minute, at(9, 0))

	// Rising step count counts as motion.
	d.UpdateStepCount(1000, at(10, 0))
	if _, ok := d.Check(at(11, 0)); ok {
		t.Fatal("event fired 60 minutes after steps rose")
	}

	// A lower count is the midnight counter reset, not motion.
	d.UpdateStepCount(0, at(11, 20))
	ev, ok := d.Check(at(11, 30))
	if !ok {
		t.Fatal("counter rollover suppressed the event")
	}
	if ev.DurationMinutes != 90 {
		t.Errorf("duration %d, want 90", ev.DurationMinutes)
	}
}

func TestSleepEstimator_WaitsForWindowClose(t *testing.T) {
	e := estimator.NewSleepEstimator()
	if _, ok := e.Estimate(at(10, 59)); ok {
		t.Fatal("estimate reported before the overnight window closed")
	}
}

func TestSleepEstimator_LongestGap(t *testing.T) {
	e := estimator.NewSleepEstimator()
	prev := func(hour, min int) time.Time {
		return time.Date(2025, 7, 1, hour, min, 0, 0, time.UTC)
	}
	// Phone used until 23:00, untouched until 07:00: an 8 hour night.
	e.OnUserActivity(prev(22, 30))
	e.OnUserActivity(prev(23, 0))
	e.OnUserActivity(at(7, 0))
	e.OnUserActivity(at(8, 15))

	est, ok := e.Estimate(at(11, 30))
	if !ok {
		t.Fatal("no estimate after window close")
	}
	if est.TotalMinutes != 480 {
		t.Errorf("estimate %d minutes, want 480", est.TotalMinutes)
	}
	if est.Date != "2025-07-02" {
		t.Errorf("estimate date %s, want 2025-07-02", est.Date)
	}

	// Once per day.
	if _, ok := e.Estimate(at(12, 0)); ok {
		t.Fatal("second estimate reported for the same day")
	}
}

func TestSleepEstimator_RestlessNightIsNoise(t *testing.T) {
	e := estimator.NewSleepEstimator()
	// Motion every 2 hours all night: no gap reaches 3 hours.
	for _, m := range []time.Time{
		time.Date(2025, 7, 1, 22, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC),
		at(2, 0), at(4, 0), at(6, 0), at(8, 0), at(10, 0),
	} {
		e.OnUserActivity(m)
	}
	if _, ok := e.Estimate(at(11, 30)); ok {
		t.Fatal("restless night produced a sleep estimate")
	}
}

func TestSleepEstimator_MarklessWindowClamped(t *testing.T) {
	e := estimator.NewSleepEstimator()
	est, ok := e.Estimate(at(11, 30))
	if !ok {
		t.Fatal("markless window produced no estimate")
	}
	// The full 13 hour window, clamped to the 12 hour ceiling.
	if est.TotalMinutes != 720 {
		t.Errorf("estimate %d minutes, want 720", est.TotalMinutes)
	}
}
