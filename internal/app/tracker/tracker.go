// Package tracker owns the daily fatigue session and wires the pure
// engines (fatigue, mission, progression) to persistence and
// notifications. It is the only package that mutates day state.
//
// Persistence is best-effort: every write failure is logged and
// swallowed so the in-memory session keeps working offline.
package tracker

import (
	"encoding/json"
	"hash/fnv"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ppoom-app/ppoom/internal/app/estimator"
	"github.com/ppoom-app/ppoom/internal/app/fatigue"
	"github.com/ppoom-app/ppoom/internal/app/insight"
	"github.com/ppoom-app/ppoom/internal/app/mission"
	"github.com/ppoom-app/ppoom/internal/app/notify"
	"github.com/ppoom-app/ppoom/internal/app/progression"
	"github.com/ppoom-app/ppoom/internal/domain"
	"github.com/ppoom-app/ppoom/internal/infra/metrics"
	"github.com/ppoom-app/ppoom/internal/infra/sqlite"
)

// State keys in the sqlite state table.
const (
	stateKeyDaily     = "daily_session"
	stateKeyCharacter = "character"
	stateKeyStreak    = "streak"
)

// highFatigueThreshold is the score that triggers the fatigue alert.
const highFatigueThreshold = 80

// missionLookback is how many closed days feed the anti-repetition rules.
const missionLookback = 3

// Service is the daily session orchestrator.
type Service struct {
	mu         sync.Mutex
	db         *sqlite.DB
	dispatcher *notify.Dispatcher
	baseline   int
	now        func() time.Time

	session   domain.DailyFatigueData
	missions  []domain.DailyMission
	character domain.CharacterData
	streak    domain.StreakData
	stepCount int
	onSteps   func(steps int, now time.Time)
}

// dailyState is the JSON payload persisted under stateKeyDaily.
type dailyState struct {
	Session   domain.DailyFatigueData `json:"session"`
	Missions  []domain.DailyMission   `json:"missions"`
	StepCount int                     `json:"step_count"`
}

// NewService loads persisted state (malformed or absent state degrades
// to defaults) and rolls the session forward to today.
func NewService(db *sqlite.DB, dispatcher *notify.Dispatcher, baseline int) *Service {
	return newService(db, dispatcher, baseline, time.Now)
}

func newService(db *sqlite.DB, dispatcher *notify.Dispatcher, baseline int, clock func() time.Time) *Service {
	s := &Service{
		db:         db,
		dispatcher: dispatcher,
		baseline:   baseline,
		now:        clock,
	}
	s.loadState()
	s.mu.Lock()
	s.rollover(s.now())
	s.mu.Unlock()
	return s
}

// ─── State Load / Save ──────────────────────────────────────────────────────

func (s *Service) loadState() {
	var ds dailyState
	if loadJSON(s.db, stateKeyDaily, &ds) {
		s.session = ds.Session
		s.missions = ds.Missions
		s.stepCount = ds.StepCount
	}

	s.character = domain.NewCharacter()
	var ch domain.CharacterData
	if loadJSON(s.db, stateKeyCharacter, &ch) && ch.Level >= 1 && ch.Level <= domain.MaxLevel && ch.Exp >= 0 {
		if len(ch.UnlockedCostumeIDs) == 0 {
			ch.UnlockedCostumeIDs = []string{"default"}
		}
		s.character = ch
	}

	var st domain.StreakData
	if loadJSON(s.db, stateKeyStreak, &st) && st.CurrentStreak >= 0 && st.LongestStreak >= st.CurrentStreak &&
		(st.LastCompletedDate == "" || !domain.ParseDay(st.LastCompletedDate).IsZero()) {
		s.streak = st
	}
}

// loadJSON decodes a persisted state value. Absent or corrupt payloads
// report false; callers fall back to defaults.
func loadJSON(db *sqlite.DB, key string, v any) bool {
	raw, err := db.GetState(key)
	if err != nil {
		log.Printf("[tracker] load %s: %v", key, err)
		return false
	}
	if raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		log.Printf("[tracker] corrupt state %s, using defaults: %v", key, err)
		return false
	}
	return true
}

func (s *Service) saveDaily() {
	s.saveJSON(stateKeyDaily, dailyState{
		Session:   s.session,
		Missions:  s.missions,
		StepCount: s.stepCount,
	})
}

func (s *Service) saveJSON(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("[tracker] encode %s: %v", key, err)
		return
	}
	if err := s.db.SetState(key, string(raw)); err != nil {
		log.Printf("[tracker] persist %s: %v", key, err)
	}
}

// ─── Day Rollover ───────────────────────────────────────────────────────────

// rollover finalizes a stale session into history and starts today's.
// Callers must hold s.mu.
func (s *Service) rollover(now time.Time) {
	today := domain.LocalDay(now)
	if s.session.Date == today {
		return
	}

	if s.session.Date != "" {
		s.finalizeDay()
	}

	s.session = domain.DailyFatigueData{
		Date:              today,
		CurrentFatiguePct: fatigue.Calculate(nil, s.baseline),
	}
	s.stepCount = 0
	s.assignMissions(today)
	s.saveDaily()
	metrics.FatigueScore.Set(float64(s.session.CurrentFatiguePct))
}

// finalizeDay writes the closing session into both history ledgers.
func (s *Service) finalizeDay() {
	done := 0
	for _, m := range s.missions {
		if m.Completed {
			done++
		}
	}

	if err := s.db.UpsertMissionHistory(domain.MissionHistoryRecord{
		Date:         s.session.Date,
		Missions:     s.missions,
		FatiguePct:   s.session.CurrentFatiguePct,
		AllCompleted: len(s.missions) > 0 && done == len(s.missions),
	}); err != nil {
		log.Printf("[tracker] finalize mission history %s: %v", s.session.Date, err)
	}

	if err := s.db.UpsertDailyHistory(domain.DailyHistoryRecord{
		Date:         s.session.Date,
		FatiguePct:   s.session.CurrentFatiguePct,
		SleepHours:   fatigue.SleepHours(s.session.Activities),
		StepCount:    s.stepCount,
		ScreenHours:  fatigue.ScreenHours(s.session.Activities),
		MissionsDone: done,
	}); err != nil {
		log.Printf("[tracker] finalize daily history %s: %v", s.session.Date, err)
	}
}

// assignMissions draws today's missions. The seed derives from the date
// so a crash-and-restart on the same day reproduces the same draw.
func (s *Service) assignMissions(today string) {
	history, err := s.db.RecentMissionHistory(missionLookback)
	if err != nil {
		log.Printf("[tracker] mission lookback: %v", err)
		history = nil
	}
	s.missions = mission.Assign(s.session.CurrentFatiguePct, history, daySeed(today))
	for _, m := range s.missions {
		metrics.MissionsAssigned.WithLabelValues(string(m.Difficulty)).Inc()
	}
}

func daySeed(date string) int64 {
	h := fnv.New64a()
	h.Write([]byte(date))
	return int64(h.Sum64())
}

// ─── Activities ─────────────────────────────────────────────────────────────

// AddActivity validates and appends an activity to today's session,
// recomputing the fatigue score.
func (s *Service) AddActivity(typ domain.ActivityType, minutes int, note string) (domain.ActivityRecord, error) {
	if !typ.Valid() {
		return domain.ActivityRecord{}, domain.ErrUnknownActivityType
	}
	if minutes < 0 {
		return domain.ActivityRecord{}, domain.ErrNegativeDuration
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.rollover(now)

	rec := domain.ActivityRecord{
		ID:              uuid.NewString(),
		Type:            typ,
		DurationMinutes: minutes,
		Timestamp:       now,
		Note:            note,
	}
	s.session.Activities = append(s.session.Activities, rec)
	s.recompute(now)
	s.saveDaily()

	metrics.ActivitiesLogged.WithLabelValues(string(typ)).Inc()
	return rec, nil
}

// recompute refreshes the score and fires the high-fatigue alert when
// the score crosses the threshold. Callers must hold s.mu.
func (s *Service) recompute(now time.Time) {
	score := fatigue.Calculate(s.session.Activities, s.baseline)
	s.session.CurrentFatiguePct = score
	metrics.FatigueScore.Set(float64(score))

	if score >= highFatigueThreshold {
		if s.dispatcher.Dispatch(notify.HighFatigue(score), now) {
			metrics.NotificationsSent.WithLabelValues(string(domain.NotifyHighFatigue)).Inc()
		}
	}
}

// Session returns a copy of today's session.
func (s *Service) Session() domain.DailyFatigueData {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rollover(s.now())

	out := s.session
	out.Activities = append([]domain.ActivityRecord(nil), s.session.Activities...)
	return out
}

// FatigueStatus is the current score with its human-facing readout.
type FatigueStatus struct {
	Date           string                 `json:"date"`
	Score          int                    `json:"score"`
	Message        string                 `json:"message"`
	Recommendation string                 `json:"recommendation"`
	Contributions  []fatigue.Contribution `json:"contributions"`
}

// Status reports the current fatigue state.
func (s *Service) Status() FatigueStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rollover(s.now())

	acts := s.session.Activities
	score := s.session.CurrentFatiguePct
	return FatigueStatus{
		Date:           s.session.Date,
		Score:          score,
		Message:        fatigue.Message(score),
		Recommendation: fatigue.Recommend(score, fatigue.SleepHours(acts), fatigue.ScreenHours(acts)),
		Contributions:  fatigue.Contributions(acts),
	}
}

// ─── Missions ───────────────────────────────────────────────────────────────

// Missions returns a copy of today's mission set.
func (s *Service) Missions() []domain.DailyMission {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rollover(s.now())
	return append([]domain.DailyMission(nil), s.missions...)
}

// CompletionResult describes everything a mission completion changed.
type CompletionResult struct {
	Mission      domain.DailyMission       `json:"mission"`
	ExpGained    int                       `json:"exp_gained"`
	LevelUp      progression.LevelUpResult `json:"level_up"`
	Streak       domain.StreakData         `json:"streak"`
	AllCompleted bool                      `json:"all_completed"`
}

// CompleteMission marks a mission done, awards streak-bonused exp, and
// advances the streak once the whole set is complete. Completing an
// already-completed mission is rejected, so the award happens at most
// once per mission per day.
func (s *Service) CompleteMission(id string) (CompletionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.rollover(now)

	idx := -1
	for i, m := range s.missions {
		if m.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return CompletionResult{}, domain.ErrMissionNotFound
	}
	if s.missions[idx].Completed {
		return CompletionResult{}, domain.ErrMissionAlreadyCompleted
	}

	s.missions[idx].Completed = true
	m := s.missions[idx]

	// Bonus uses the streak as it stood before today's advance.
	exp := progression.ApplyBonus(m.ExpReward, s.streak.CurrentStreak)
	ch, levelUp, err := progression.AddExp(s.character, exp)
	if err != nil {
		log.Printf("[tracker] add exp: %v", err)
	} else {
		s.character = ch
	}

	allDone := true
	for _, dm := range s.missions {
		if !dm.Completed {
			allDone = false
			break
		}
	}
	if allDone {
		s.streak = progression.UpdateStreak(s.streak, s.session.Date)
		metrics.StreakCurrent.Set(float64(s.streak.CurrentStreak))
		if notify.IsStreakMilestone(s.streak.CurrentStreak) {
			if s.dispatcher.Dispatch(notify.StreakMilestone(s.streak.CurrentStreak), now) {
				metrics.NotificationsSent.WithLabelValues(string(domain.NotifyStreakMilestone)).Inc()
			}
		}
	}

	if levelUp.LeveledUp {
		names := make([]string, 0, len(levelUp.UnlockedCostumes))
		for _, c := range levelUp.UnlockedCostumes {
			names = append(names, c.Name)
		}
		if s.dispatcher.Dispatch(notify.LevelUp(levelUp.NewLevel, names), now) {
			metrics.NotificationsSent.WithLabelValues(string(domain.NotifyLevelUp)).Inc()
		}
	}

	metrics.MissionsCompleted.WithLabelValues(string(m.Category)).Inc()
	metrics.ExpEarned.Add(float64(exp))
	metrics.CharacterLevel.Set(float64(s.character.Level))

	s.saveDaily()
	s.saveJSON(stateKeyCharacter, s.character)
	s.saveJSON(stateKeyStreak, s.streak)

	return CompletionResult{
		Mission:      m,
		ExpGained:    exp,
		LevelUp:      levelUp,
		Streak:       s.streak,
		AllCompleted: allDone,
	}, nil
}

// ─── Progression Views ──────────────────────────────────────────────────────

// Character returns the current character state.
func (s *Service) Character() domain.CharacterData {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.character
	out.UnlockedCostumeIDs = append([]string(nil), s.character.UnlockedCostumeIDs...)
	return out
}

// Streak returns the current streak state.
func (s *Service) Streak() domain.StreakData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streak
}

// ─── Health Signals ─────────────────────────────────────────────────────────

// OnStepCount registers a callback fed with every snapshot step reading.
// The daemon points it at the sedentary detector so reported movement
// resets the motion clock.
func (s *Service) OnStepCount(fn func(steps int, now time.Time)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSteps = fn
}

// IngestSnapshot folds a platform health reading into today's session.
// Explicit sleep data wins over the estimator's guess.
func (s *Service) IngestSnapshot(snap domain.HealthSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.rollover(now)

	if snap.StepCount != nil {
		s.stepCount = *snap.StepCount
		if s.onSteps != nil {
			s.onSteps(*snap.StepCount, now)
		}
	}

	sleepMin := snap.SleepMinutes
	if sleepMin == nil {
		sleepMin = snap.EstimatedSleepMinutes
	}
	if sleepMin != nil && *sleepMin > 0 && !s.hasSleepActivity() {
		s.session.Activities = append(s.session.Activities, domain.ActivityRecord{
			ID:              uuid.NewString(),
			Type:            domain.ActivitySleep,
			DurationMinutes: *sleepMin,
			Timestamp:       now,
			Note:            "from health data",
		})
		s.recompute(now)
	}
	s.saveDaily()
}

// OnSleepEstimate consumes the overnight estimator's daily result. A
// manually logged sleep activity takes precedence.
func (s *Service) OnSleepEstimate(est estimator.SleepData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.rollover(now)

	metrics.SleepEstimated.Set(float64(est.TotalMinutes))
	if est.Date != s.session.Date || s.hasSleepActivity() {
		return
	}
	s.session.Activities = append(s.session.Activities, domain.ActivityRecord{
		ID:              uuid.NewString(),
		Type:            domain.ActivitySleep,
		DurationMinutes: est.TotalMinutes,
		Timestamp:       now,
		Note:            "estimated from overnight inactivity",
	})
	s.recompute(now)
	s.saveDaily()
}

// OnSedentaryEvent nudges the user after a long motionless stretch.
func (s *Service) OnSedentaryEvent(durationMinutes int) {
	metrics.SedentaryEvents.Inc()
	if s.dispatcher.Dispatch(notify.Sedentary(durationMinutes), s.now()) {
		metrics.NotificationsSent.WithLabelValues(string(domain.NotifySedentary)).Inc()
	}
}

func (s *Service) hasSleepActivity() bool {
	for _, a := range s.session.Activities {
		if a.Type == domain.ActivitySleep {
			return true
		}
	}
	return false
}

// ─── Analysis Views ─────────────────────────────────────────────────────────

// Trends runs the weekly pattern analysis over the last 7 closed days.
func (s *Service) Trends() insight.WeeklyReport {
	records, err := s.db.RecentDailyHistory(7)
	if err != nil {
		log.Printf("[tracker] trends: %v", err)
		records = nil
	}
	return insight.AnalyzeWeekly(records)
}

// History returns up to days of daily snapshots, oldest first.
func (s *Service) History(days int) []domain.DailyHistoryRecord {
	if days <= 0 || days > domain.HistoryWindowDays {
		days = domain.HistoryWindowDays
	}
	records, err := s.db.RecentDailyHistory(days)
	if err != nil {
		log.Printf("[tracker] history: %v", err)
		return nil
	}
	return records
}
