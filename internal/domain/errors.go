package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure, no infrastructure dependency.

var (
	// Activity validation errors (boundary checks; engines assume valid input)
	ErrUnknownActivityType = errors.New("unknown activity type")
	ErrNegativeDuration    = errors.New("activity duration must be non-negative")

	// Mission errors
	ErrMissionNotFound         = errors.New("mission not found in today's set")
	ErrMissionAlreadyCompleted = errors.New("mission already completed")

	// Progression errors
	ErrNonPositiveExp = errors.New("exp amount must be positive")

	// Persistence errors
	ErrStateNotFound        = errors.New("no persisted state for key")
	ErrNotificationNotFound = errors.New("notification not found")
)
