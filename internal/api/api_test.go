package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ppoom-app/ppoom/internal/app/fatigue"
	"github.com/ppoom-app/ppoom/internal/app/notify"
	"github.com/ppoom-app/ppoom/internal/app/tracker"
	"github.com/ppoom-app/ppoom/internal/domain"
	"github.com/ppoom-app/ppoom/internal/health"
	"github.com/ppoom-app/ppoom/internal/infra/sqlite"
)

type nopSender struct{}

func (nopSender) Send(domain.Notification) error { return nil }

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	db, err := sqlite.Open(dir)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	dispatcher := notify.NewDispatcher(domain.DefaultNotificationPolicy(), nopSender{}, db)
	trk := tracker.NewService(db, dispatcher, fatigue.DefaultBaseline)
	checker := health.NewChecker(db, dir)
	return NewServer(trk, db, checker)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

// ─── Basics ─────────────────────────────────────────────────────────────────

func TestHealthEndpoint(t *testing.T) {
	h := newTestServer(t).Handler()
	rec := doJSON(t, h, "GET", "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	var resp struct {
		Healthy bool `json:"healthy"`
	}
	decode(t, rec, &resp)
	if !resp.Healthy {
		t.Error("fresh daemon reported unhealthy")
	}
}

func TestStatusEndpoint(t *testing.T) {
	h := newTestServer(t).Handler()
	rec := doJSON(t, h, "GET", "/api/status", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
}

func TestMetricsGated(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s.Handler(), "GET", "/metrics", nil)
	if rec.Code == http.StatusOK {
		t.Error("metrics served without EnableMetrics")
	}

	s.EnableMetrics()
	rec = doJSON(t, s.Handler(), "GET", "/metrics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ppoom_") {
		t.Error("metrics output missing ppoom_ families")
	}
}

// ─── Fatigue & Activities ───────────────────────────────────────────────────

func TestFatigueEndpoint(t *testing.T) {
	h := newTestServer(t).Handler()
	rec := doJSON(t, h, "GET", "/api/v1/fatigue", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	var status tracker.FatigueStatus
	decode(t, rec, &status)
	if status.Score != fatigue.DefaultBaseline {
		t.Errorf("fresh score %d, want baseline", status.Score)
	}
	if status.Message == "" {
		t.Error("empty message")
	}
}

func TestAddActivity(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := doJSON(t, h, "POST", "/api/v1/activities", map[string]any{
		"type": "sleep", "duration_minutes": 420,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Activity domain.ActivityRecord `json:"activity"`
		Fatigue  tracker.FatigueStatus `json:"fatigue"`
	}
	decode(t, rec, &resp)
	if resp.Activity.ID == "" {
		t.Error("created activity has no id")
	}
	if resp.Fatigue.Score != 0 {
		t.Errorf("score after 7h sleep = %d, want 0", resp.Fatigue.Score)
	}

	rec = doJSON(t, h, "GET", "/api/v1/activities", nil)
	var list struct {
		Activities []domain.ActivityRecord `json:"activities"`
	}
	decode(t, rec, &list)
	if len(list.Activities) != 1 {
		t.Errorf("listed %d activities, want 1", len(list.Activities))
	}
}

func TestAddActivity_Invalid(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := doJSON(t, h, "POST", "/api/v1/activities", map[string]any{
		"type": "juggling", "duration_minutes": 30,
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown type status %d, want 400", rec.Code)
	}

	rec = doJSON(t, h, "POST", "/api/v1/activities", map[string]any{
		"type": "work", "duration_minutes": -10,
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("negative duration status %d, want 400", rec.Code)
	}
}

// ─── Missions ───────────────────────────────────────────────────────────────

func TestMissionFlow(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := doJSON(t, h, "GET", "/api/v1/missions", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	var list struct {
		Missions []domain.DailyMission `json:"missions"`
	}
	decode(t, rec, &list)
	if len(list.Missions) == 0 {
		t.Fatal("no missions assigned")
	}

	id := list.Missions[0].ID
	rec = doJSON(t, h, "POST", "/api/v1/missions/"+id+"/complete", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("complete status %d: %s", rec.Code, rec.Body.String())
	}
	var res tracker.CompletionResult
	decode(t, rec, &res)
	if !res.Mission.Completed || res.ExpGained == 0 {
		t.Errorf("completion result = %+v", res)
	}

	rec = doJSON(t, h, "POST", "/api/v1/missions/"+id+"/complete", nil)
	if rec.Code != http.StatusConflict {
		t.Errorf("re-complete status %d, want 409", rec.Code)
	}

	rec = doJSON(t, h, "POST", "/api/v1/missions/bogus/complete", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown mission status %d, want 404", rec.Code)
	}
}

// ─── Progression ────────────────────────────────────────────────────────────

func TestCharacterEndpoint(t *testing.T) {
	h := newTestServer(t).Handler()
	rec := doJSON(t, h, "GET", "/api/v1/character", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	var resp struct {
		Character   domain.CharacterData `json:"character"`
		RequiredExp int                  `json:"required_exp"`
	}
	decode(t, rec, &resp)
	if resp.Character.Level != 1 {
		t.Errorf("fresh level %d, want 1", resp.Character.Level)
	}
	if resp.RequiredExp != 100 {
		t.Errorf("required exp %d, want 100", resp.RequiredExp)
	}
}

func TestStreakEndpoint(t *testing.T) {
	h := newTestServer(t).Handler()
	rec := doJSON(t, h, "GET", "/api/v1/streak", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	var resp struct {
		Streak          domain.StreakData `json:"streak"`
		BonusMultiplier float64           `json:"bonus_multiplier"`
	}
	decode(t, rec, &resp)
	if resp.Streak.CurrentStreak != 0 || resp.BonusMultiplier != 0 {
		t.Errorf("fresh streak = %+v, bonus %f", resp.Streak, resp.BonusMultiplier)
	}
}

// ─── Analysis ───────────────────────────────────────────────────────────────

func TestTrendsEndpoint(t *testing.T) {
	h := newTestServer(t).Handler()
	rec := doJSON(t, h, "GET", "/api/v1/trends", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	var resp struct {
		Trend string `json:"trend"`
	}
	decode(t, rec, &resp)
	if resp.Trend != "insufficient" {
		t.Errorf("fresh trend %q, want insufficient", resp.Trend)
	}
}

func TestHistoryEndpoint_BadDays(t *testing.T) {
	h := newTestServer(t).Handler()
	rec := doJSON(t, h, "GET", "/api/v1/history?days=soon", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", rec.Code)
	}
}

// ─── Notifications & Snapshot ───────────────────────────────────────────────

func TestNotificationEndpoints(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := doJSON(t, h, "GET", "/api/v1/notifications", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status %d, want 200", rec.Code)
	}

	rec = doJSON(t, h, "POST", "/api/v1/notifications/999/read", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing notification status %d, want 404", rec.Code)
	}

	rec = doJSON(t, h, "POST", "/api/v1/notifications/abc/read", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad id status %d, want 400", rec.Code)
	}
}

func TestHealthSnapshotEndpoint(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := doJSON(t, h, "POST", "/api/v1/health-snapshot", map[string]any{
		"step_count":    5200,
		"sleep_minutes": 430,
	})
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status %d, want 202: %s", rec.Code, rec.Body.String())
	}

	var list struct {
		Activities []domain.ActivityRecord `json:"activities"`
	}
	rec = doJSON(t, h, "GET", "/api/v1/activities", nil)
	decode(t, rec, &list)
	if len(list.Activities) != 1 || list.Activities[0].Type != domain.ActivitySleep {
		t.Errorf("snapshot sleep not reflected: %+v", list.Activities)
	}
}
