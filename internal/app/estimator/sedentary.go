// Package estimator infers activity the user never logs by hand:
// stretches of sitting still, and overnight sleep, both derived from
// coarse motion signals (app foregrounding, step counter deltas).
package estimator

import (
	"context"
	"log"
	"sync"
	"time"
)

// SedentaryEvent reports an uninterrupted stretch without motion.
type SedentaryEvent struct {
	DurationMinutes int       `json:"duration_minutes"`
	DetectedAt      time.Time `json:"detected_at"`
}

// DefaultSedentaryThreshold is how long without motion counts as sedentary.
const DefaultSedentaryThreshold = 90 * time.Minute

const sedentaryPollInterval = time.Minute

// SedentaryDetector watches time-since-last-motion and emits a
// SedentaryEvent each time the threshold is crossed. After emitting it
// re-arms, so a three hour sit produces two 90-minute events rather
// than one growing one.
type SedentaryDetector struct {
	mu         sync.Mutex
	threshold  time.Duration
	lastMotion time.Time
	lastSteps  int
	events     chan SedentaryEvent
}

// NewSedentaryDetector builds a detector armed at now. A non-positive
// threshold falls back to the default.
func NewSedentaryDetector(threshold time.Duration, now time.Time) *SedentaryDetector {
	if threshold <= 0 {
		threshold = DefaultSedentaryThreshold
	}
	return &SedentaryDetector{
		threshold:  threshold,
		lastMotion: now,
		events:     make(chan SedentaryEvent, 4),
	}
}

// OnUserActivity resets the motion clock. Call on any direct user
// interaction (app foregrounded, activity logged).
func (d *SedentaryDetector) OnUserActivity(now time.Time) {
	d.mu.Lock()
	d.lastMotion = now
	d.mu.Unlock()
}

// UpdateStepCount feeds the cumulative daily step counter. A rising
// count means the user moved; a lower count means the counter rolled
// over at midnight and only re-baselines.
func (d *SedentaryDetector) UpdateStepCount(steps int, now time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if steps > d.lastSteps {
		d.lastMotion = now
	}
	d.lastSteps = steps
}

// Check polls elapsed time since the last motion. When the threshold
// is crossed it returns the event and re-arms the clock.
func (d *SedentaryDetector) Check(now time.Time) (SedentaryEvent, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	idle := now.Sub(d.lastMotion)
	if idle < d.threshold {
		return SedentaryEvent{}, false
	}
	d.lastMotion = now
	return SedentaryEvent{
		DurationMinutes: int(idle.Minutes()),
		DetectedAt:      now,
	}, true
}

// Events delivers detected sedentary stretches. Events are dropped,
// not blocked on, when the consumer falls behind.
func (d *SedentaryDetector) Events() <-chan SedentaryEvent {
	return d.events
}

// Run polls once a minute until the context is cancelled. Call in a
// goroutine.
func (d *SedentaryDetector) Run(ctx context.Context) {
	ticker := time.NewTicker(sedentaryPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			ev, ok := d.Check(now)
			if !ok {
				continue
			}
			select {
			case d.events <- ev:
			default:
				log.Printf("[estimator] dropping sedentary event (%dm), consumer behind", ev.DurationMinutes)
			}
		}
	}
}
