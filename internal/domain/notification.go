package domain

import "time"

// ─── Notification Types ─────────────────────────────────────────────────────

// NotificationKind categorizes notifications. Cooldowns are tracked
// per kind by the dispatcher.
type NotificationKind string

const (
	NotifyHighFatigue     NotificationKind = "high_fatigue"
	NotifyLevelUp         NotificationKind = "level_up"
	NotifyStreakMilestone NotificationKind = "streak_milestone"
	NotifySedentary       NotificationKind = "sedentary"
	NotifyMissionReminder NotificationKind = "mission_reminder"
)

// Notification is a user-facing message.
type Notification struct {
	ID          int64            `json:"id"`
	Kind        NotificationKind `json:"kind"`
	Title       string           `json:"title"`
	Body        string           `json:"body"`
	ActionLabel string           `json:"action_label,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	Read        bool             `json:"read"`
}

// NotificationPolicy governs dispatch: per-kind cooldowns plus quiet hours.
type NotificationPolicy struct {
	Cooldowns  map[NotificationKind]time.Duration `json:"-"`
	QuietStart string                             `json:"quiet_start"` // "22:00"
	QuietEnd   string                             `json:"quiet_end"`   // "08:00"
}

// DefaultNotificationPolicy returns the stock dispatch policy.
func DefaultNotificationPolicy() NotificationPolicy {
	return NotificationPolicy{
		Cooldowns: map[NotificationKind]time.Duration{
			NotifyHighFatigue:     6 * time.Hour,
			NotifyLevelUp:         0, // level-ups always go out
			NotifyStreakMilestone: 20 * time.Hour,
			NotifySedentary:       90 * time.Minute,
			NotifyMissionReminder: 8 * time.Hour,
		},
		QuietStart: "22:00",
		QuietEnd:   "08:00",
	}
}
