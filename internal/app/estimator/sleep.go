package estimator

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/ppoom-app/ppoom/internal/domain"
)

// SleepData is the once-per-day sleep estimate.
type SleepData struct {
	Date         string `json:"date"`
	TotalMinutes int    `json:"total_minutes"`
}

// Overnight window the gap analysis looks inside, local wall clock.
const (
	sleepWindowStartHour = 22 // 10pm the previous evening
	sleepWindowEndHour   = 11 // 11am today

	minSleepMinutes = 180
	maxSleepMinutes = 12 * 60

	sleepPollInterval = time.Minute
)

// SleepEstimator infers last night's sleep as the longest motion-free
// gap inside the overnight window. It reports at most one estimate per
// local day, once the window has closed.
type SleepEstimator struct {
	mu           sync.Mutex
	marks        []time.Time
	lastReported string
	estimates    chan SleepData
}

func NewSleepEstimator() *SleepEstimator {
	return &SleepEstimator{
		estimates: make(chan SleepData, 1),
	}
}

// OnUserActivity records a motion mark. Marks older than the current
// overnight window are pruned opportunistically.
func (e *SleepEstimator) OnUserActivity(now time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.marks = append(e.marks, now)
	cutoff := now.Add(-36 * time.Hour)
	for len(e.marks) > 0 && e.marks[0].Before(cutoff) {
		e.marks = e.marks[1:]
	}
}

// Estimate runs the gap analysis. It reports only after the overnight
// window has closed for the current local day, and only once per day.
// A gap shorter than three hours is treated as noise, not sleep.
func (e *SleepEstimator) Estimate(now time.Time) (SleepData, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	today := domain.LocalDay(now)
	if today == e.lastReported || now.Hour() < sleepWindowEndHour {
		return SleepData{}, false
	}

	y, m, d := now.Date()
	windowEnd := time.Date(y, m, d, sleepWindowEndHour, 0, 0, 0, now.Location())
	windowStart := time.Date(y, m, d, sleepWindowStartHour, 0, 0, 0, now.Location()).AddDate(0, 0, -1)

	longest := longestGap(e.marks, windowStart, windowEnd)
	minutes := int(longest.Minutes())
	if minutes < minSleepMinutes {
		return SleepData{}, false
	}
	if minutes > maxSleepMinutes {
		minutes = maxSleepMinutes
	}

	e.lastReported = today
	return SleepData{Date: today, TotalMinutes: minutes}, true
}

// Estimates delivers the daily sleep estimate.
func (e *SleepEstimator) Estimates() <-chan SleepData {
	return e.estimates
}

// Run polls once a minute until the context is cancelled. Call in a
// goroutine.
func (e *SleepEstimator) Run(ctx context.Context) {
	ticker := time.NewTicker(sleepPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			est, ok := e.Estimate(now)
			if !ok {
				continue
			}
			select {
			case e.estimates <- est:
			default:
				log.Printf("[estimator] dropping sleep estimate for %s, consumer behind", est.Date)
			}
		}
	}
}

// longestGap finds the widest interval between consecutive motion
// marks inside [start, end]. The window edges bound the first and last
// gap, so a markless window reads as one full-window gap.
func longestGap(marks []time.Time, start, end time.Time) time.Duration {
	inWindow := make([]time.Time, 0, len(marks))
	for _, m := range marks {
		if !m.Before(start) && !m.After(end) {
			inWindow = append(inWindow, m)
		}
	}
	sort.Slice(inWindow, func(i, j int) bool { return inWindow[i].Before(inWindow[j]) })

	var longest time.Duration
	prev := start
	for _, m := range inWindow {
		if gap := m.Sub(prev); gap > longest {
			longest = gap
		}
		prev = m
	}
	if gap := end.Sub(prev); gap > longest {
		longest = gap
	}
	return longest
}
