// Package metrics provides Prometheus metrics for ppoom: gauges and
// counters for fatigue, activities, missions, progression, estimators,
// and notifications.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Fatigue ────────────────────────────────────────────────────────────────

// FatigueScore tracks the current fatigue percentage.
var FatigueScore = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "ppoom",
	Name:      "fatigue_score",
	Help:      "Current fatigue score, 0-100.",
})

// ActivitiesLogged tracks logged activities by type.
var ActivitiesLogged = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ppoom",
	Name:      "activities_logged_total",
	Help:      "Total activities logged.",
}, []string{"type"})

// ─── Missions ───────────────────────────────────────────────────────────────

// MissionsAssigned tracks daily mission assignments by difficulty.
var MissionsAssigned = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ppoom",
	Name:      "missions_assigned_total",
	Help:      "Total missions assigned.",
}, []string{"difficulty"})

// MissionsCompleted tracks completed missions by category.
var MissionsCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ppoom",
	Name:      "missions_completed_total",
	Help:      "Total missions completed.",
}, []string{"category"})

// ─── Progression ────────────────────────────────────────────────────────────

// CharacterLevel tracks the character's current level.
var CharacterLevel = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "ppoom",
	Name:      "character_level",
	Help:      "Current character level.",
})

// ExpEarned tracks total experience earned.
var ExpEarned = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "ppoom",
	Name:      "exp_earned_total",
	Help:      "Total experience points earned.",
})

// StreakCurrent tracks the current all-missions-complete streak.
var StreakCurrent = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "ppoom",
	Name:      "streak_current_days",
	Help:      "Current streak length in days.",
})

// ─── Estimators ─────────────────────────────────────────────────────────────

// SedentaryEvents tracks detected sedentary stretches.
var SedentaryEvents = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "ppoom",
	Name:      "sedentary_events_total",
	Help:      "Total sedentary stretches detected.",
})

// SleepEstimated tracks last night's estimated sleep in minutes.
var SleepEstimated = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "ppoom",
	Name:      "sleep_estimated_minutes",
	Help:      "Most recent estimated sleep duration in minutes.",
})

// ─── Notifications ──────────────────────────────────────────────────────────

// NotificationsSent tracks dispatched notifications by kind.
var NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ppoom",
	Name:      "notifications_sent_total",
	Help:      "Total notifications dispatched.",
}, []string{"kind"})

// ─── Health ─────────────────────────────────────────────────────────────────

// HealthCheckStatus tracks each health check (1 healthy, 0 unhealthy).
var HealthCheckStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "ppoom",
	Name:      "health_check_status",
	Help:      "Health check status: 1 healthy, 0 unhealthy.",
}, []string{"check"})
