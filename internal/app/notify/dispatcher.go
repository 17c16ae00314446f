// Package notify decides whether and what to tell the user. Rendering
// is delegated to an injected Sender; persistence to an injected
// Store. Both failures are logged, never surfaced, so a broken
// notification path cannot take the app down.
package notify

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ppoom-app/ppoom/internal/domain"
)

// Sender renders a notification to the user. Implementations own the
// delivery channel (OS alert, terminal, test capture).
type Sender interface {
	Send(domain.Notification) error
}

// Store persists the notification log.
type Store interface {
	InsertNotification(domain.Notification) (int64, error)
}

// Dispatcher applies cooldown and quiet-hour policy before handing a
// notification to the sender. Cooldown state lives in an explicit
// per-kind map rather than package globals.
type Dispatcher struct {
	mu         sync.Mutex
	policy     domain.NotificationPolicy
	lastSentAt map[domain.NotificationKind]time.Time
	sender     Sender
	store      Store
}

// NewDispatcher builds a dispatcher. store may be nil when persistence
// is not wanted (tests, ephemeral runs).
func NewDispatcher(policy domain.NotificationPolicy, sender Sender, store Store) *Dispatcher {
	return &Dispatcher{
		policy:     policy,
		lastSentAt: make(map[domain.NotificationKind]time.Time),
		sender:     sender,
		store:      store,
	}
}

// ShouldSend reports whether policy allows a notification of this kind
// at the given moment. Pure with respect to the clock: it reads but
// never mutates cooldown state.
func (d *Dispatcher) ShouldSend(kind domain.NotificationKind, now time.Time) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.allowed(kind, now)
}

func (d *Dispatcher) allowed(kind domain.NotificationKind, now time.Time) bool {
	if isQuietHour(d.policy, now) {
		return false
	}
	last, ok := d.lastSentAt[kind]
	if !ok {
		return true
	}
	return now.Sub(last) >= d.policy.Cooldowns[kind]
}

// Dispatch sends the notification if policy allows, recording the send
// time for the kind's cooldown. Returns whether it went out.
func (d *Dispatcher) Dispatch(n domain.Notification, now time.Time) bool {
	d.mu.Lock()
	if !d.allowed(n.Kind, now) {
		d.mu.Unlock()
		return false
	}
	d.lastSentAt[n.Kind] = now
	d.mu.Unlock()

	n.CreatedAt = now
	if d.store != nil {
		if id, err := d.store.InsertNotification(n); err != nil {
			log.Printf("[notify] persist %s: %v", n.Kind, err)
		} else {
			n.ID = id
		}
	}
	if err := d.sender.Send(n); err != nil {
		log.Printf("[notify] send %s: %v", n.Kind, err)
	}
	return true
}

// Policy returns the active dispatch policy.
func (d *Dispatcher) Policy() domain.NotificationPolicy {
	return d.policy
}

// ─── Notification Builders ──────────────────────────────────────────────────

// HighFatigue is the alert for a score at or past the danger band.
func HighFatigue(score int) domain.Notification {
	return domain.Notification{
		Kind:        domain.NotifyHighFatigue,
		Title:       "Fatigue is running high",
		Body:        fmt.Sprintf("You're at %d%% fatigue. A real break now beats a crash later.", score),
		ActionLabel: "See what's draining you",
	}
}

// LevelUp announces a new level and any costumes it unlocked.
func LevelUp(level int, unlocked []string) domain.Notification {
	body := fmt.Sprintf("You reached level %d!", level)
	if len(unlocked) > 0 {
		body += fmt.Sprintf(" New costume unlocked: %s.", strings.Join(unlocked, ", "))
	}
	return domain.Notification{
		Kind:        domain.NotifyLevelUp,
		Title:       "Level up!",
		Body:        body,
		ActionLabel: "Visit your character",
	}
}

// streakMilestones are the streak lengths worth celebrating.
var streakMilestones = map[int]bool{3: true, 7: true, 14: true, 30: true, 50: true, 100: true}

// IsStreakMilestone reports whether a streak length deserves a shout.
func IsStreakMilestone(n int) bool {
	return streakMilestones[n]
}

// StreakMilestone celebrates a milestone streak length.
func StreakMilestone(days int) domain.Notification {
	return domain.Notification{
		Kind:  domain.NotifyStreakMilestone,
		Title: fmt.Sprintf("%d day streak!", days),
		Body:  fmt.Sprintf("That's %d days in a row completing every mission. Keep it rolling.", days),
	}
}

// Sedentary nudges after a long motionless stretch.
func Sedentary(minutes int) domain.Notification {
	return domain.Notification{
		Kind:        domain.NotifySedentary,
		Title:       "Time to move",
		Body:        fmt.Sprintf("You've been still for %d minutes. A two minute stretch counts.", minutes),
		ActionLabel: "Log a walk",
	}
}

// MissionReminder prompts when today's missions sit untouched.
func MissionReminder(remaining int) domain.Notification {
	return domain.Notification{
		Kind:        domain.NotifyMissionReminder,
		Title:       "Missions waiting",
		Body:        fmt.Sprintf("%d of today's missions are still open.", remaining),
		ActionLabel: "Pick one",
	}
}

// ─── Quiet Hours ────────────────────────────────────────────────────────────

// isQuietHour reports whether t falls inside the policy's quiet window.
func isQuietHour(p domain.NotificationPolicy, t time.Time) bool {
	startHour, startMin := parseHHMM(p.QuietStart)
	endHour, endMin := parseHHMM(p.QuietEnd)

	mins := t.Hour()*60 + t.Minute()
	start := startHour*60 + startMin
	end := endHour*60 + endMin

	if start > end {
		// Wraps midnight, e.g. 22:00 – 08:00
		return mins >= start || mins < end
	}
	return mins >= start && mins < end
}

// parseHHMM parses "HH:MM" into hour and minute.
func parseHHMM(s string) (int, int) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h, m
}

// LogSender writes notifications to the process log. The daemon's
// default sender until a platform channel is wired.
type LogSender struct{}

func (LogSender) Send(n domain.Notification) error {
	log.Printf("[notify] %s: %s (%s)", n.Kind, n.Title, n.Body)
	return nil
}
