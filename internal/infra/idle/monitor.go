// Package idle watches OS-level user input and reports activity to
// interested listeners. It is the signal source for the sedentary and
// sleep estimators: a keyboard or mouse event counts as the user being
// up and about at the machine.
package idle

import (
	"context"
	"log"
	"sync"
	"time"
)

// pollInterval is how often the OS input state is sampled.
const pollInterval = 30 * time.Second

// Monitor polls platform input APIs (Windows GetLastInputInfo, macOS
// HIDIdleTime, Linux display heuristics) and invokes listeners whenever
// fresh user input is observed. A locked screen counts as no input.
type Monitor struct {
	mu        sync.Mutex
	probe     func() time.Duration
	locked    func() bool
	display   func() bool
	listeners []func(time.Time)
}

// NewMonitor creates a monitor backed by the OS input probes.
func NewMonitor() *Monitor {
	return &Monitor{probe: osIdleDuration, locked: isScreenLocked, display: hasDisplay}
}

// OnActivity registers a callback invoked with the observation time
// whenever user input is detected. Not safe to call after Run starts.
func (m *Monitor) OnActivity(fn func(time.Time)) {
	m.listeners = append(m.listeners, fn)
}

// Poll samples the OS once and notifies listeners if the user was
// active within the last poll interval.
func (m *Monitor) Poll(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.display() || m.locked() {
		return
	}
	if m.probe() >= pollInterval {
		return
	}
	for _, fn := range m.listeners {
		fn(now)
	}
}

// Run polls until the context is cancelled.
func (m *Monitor) Run(ctx context.Context) {
	log.Printf("[idle] input monitor started (every %s)", pollInterval)
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			m.Poll(now)
		}
	}
}
