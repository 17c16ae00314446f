package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ppoom-app/ppoom/internal/app/progression"
	"github.com/ppoom-app/ppoom/internal/domain"
)

// ─── Fatigue ────────────────────────────────────────────────────────────────

func (s *Server) handleFatigue(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tracker.Status())
}

// ─── Activities ─────────────────────────────────────────────────────────────

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	sess := s.tracker.Session()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"date":       sess.Date,
		"activities": sess.Activities,
	})
}

type addActivityRequest struct {
	Type            string `json:"type"`
	DurationMinutes int    `json:"duration_minutes"`
	Note            string `json:"note,omitempty"`
}

func (s *Server) handleAddActivity(w http.ResponseWriter, r *http.Request) {
	var req addActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := s.tracker.AddActivity(domain.ActivityType(req.Type), req.DurationMinutes, req.Note)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"activity": rec,
		"fatigue":  s.tracker.Status(),
	})
}

// ─── Missions ───────────────────────────────────────────────────────────────

func (s *Server) handleMissions(w http.ResponseWriter, r *http.Request) {
	sess := s.tracker.Session()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"date":     sess.Date,
		"missions": s.tracker.Missions(),
	})
}

func (s *Server) handleCompleteMission(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	res, err := s.tracker.CompleteMission(id)
	switch {
	case errors.Is(err, domain.ErrMissionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, domain.ErrMissionAlreadyCompleted):
		writeError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ─── Progression ────────────────────────────────────────────────────────────

func (s *Server) handleCharacter(w http.ResponseWriter, r *http.Request) {
	ch := s.tracker.Character()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"character":    ch,
		"required_exp": progression.RequiredExp(ch.Level),
		"exp_progress": progression.ExpProgress(ch),
		"costumes":     domain.CostumeCatalog(),
	})
}

func (s *Server) handleStreak(w http.ResponseWriter, r *http.Request) {
	st := s.tracker.Streak()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"streak":           st,
		"bonus_multiplier": progression.BonusMultiplier(st.CurrentStreak),
	})
}

// ─── Analysis ───────────────────────────────────────────────────────────────

func (s *Server) handleTrends(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tracker.Trends())
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	days := 0
	if q := r.URL.Query().Get("days"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, "days must be an integer")
			return
		}
		days = n
	}
	records := s.tracker.History(days)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"records": records,
	})
}

// ─── Notifications ──────────────────────────────────────────────────────────

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	unreadOnly := r.URL.Query().Get("unread") == "true"
	notifs, err := s.db.ListNotifications(50, unreadOnly)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": notifs,
	})
}

func (s *Server) handleNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be an integer")
		return
	}
	if err := s.db.MarkNotificationRead(id); err != nil {
		if errors.Is(err, domain.ErrNotificationNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ─── Health Snapshot ────────────────────────────────────────────────────────

func (s *Server) handleHealthSnapshot(w http.ResponseWriter, r *http.Request) {
	var snap domain.HealthSnapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.tracker.IngestSnapshot(snap)
	writeJSON(w, http.StatusAccepted, map[string]string{
		"status": "accepted",
	})
}
