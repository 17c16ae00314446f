package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/ppoom-app/ppoom/internal/domain"
)

// ─── Mission History ────────────────────────────────────────────────────────

// UpsertMissionHistory writes (or overwrites) the mission record for a
// day. Missions are stored as a JSON snapshot.
func (d *DB) UpsertMissionHistory(rec domain.MissionHistoryRecord) error {
	missions, err := json.Marshal(rec.Missions)
	if err != nil {
		return fmt.Errorf("encode missions: %w", err)
	}
	_, err = d.db.Exec(
		`INSERT INTO mission_history (date, missions, fatigue_pct, all_completed)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(date) DO UPDATE SET
			missions=excluded.missions,
			fatigue_pct=excluded.fatigue_pct,
			all_completed=excluded.all_completed`,
		rec.Date, string(missions), rec.FatiguePct, rec.AllCompleted,
	)
	return err
}

// RecentMissionHistory returns the most recent n records in
// chronological order, oldest first.
func (d *DB) RecentMissionHistory(n int) ([]domain.MissionHistoryRecord, error) {
	rows, err := d.db.Query(
		`SELECT date, missions, fatigue_pct, all_completed
		 FROM mission_history ORDER BY date DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.MissionHistoryRecord
	for rows.Next() {
		var rec domain.MissionHistoryRecord
		var missions string
		if err := rows.Scan(&rec.Date, &missions, &rec.FatiguePct, &rec.AllCompleted); err != nil {
			return nil, err
		}
		// A corrupt snapshot degrades to an empty mission list, it
		// must not poison the whole lookback.
		if err := json.Unmarshal([]byte(missions), &rec.Missions); err != nil {
			log.Printf("[sqlite] corrupt mission snapshot for %s: %v", rec.Date, err)
			rec.Missions = nil
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Reverse into chronological order.
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// GetMissionHistory returns the record for a single day, or nil.
func (d *DB) GetMissionHistory(date string) (*domain.MissionHistoryRecord, error) {
	row := d.db.QueryRow(
		`SELECT date, missions, fatigue_pct, all_completed
		 FROM mission_history WHERE date = ?`, date,
	)
	var rec domain.MissionHistoryRecord
	var missions string
	err := row.Scan(&rec.Date, &missions, &rec.FatiguePct, &rec.AllCompleted)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(missions), &rec.Missions); err != nil {
		rec.Missions = nil
	}
	return &rec, nil
}

// ─── Daily History ──────────────────────────────────────────────────────────

// UpsertDailyHistory writes (or overwrites) a day's fatigue snapshot
// and prunes entries that fell out of the rolling window.
func (d *DB) UpsertDailyHistory(rec domain.DailyHistoryRecord) error {
	_, err := d.db.Exec(
		`INSERT INTO daily_history (date, fatigue_pct, sleep_hours, step_count, screen_hours, missions_done)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(date) DO UPDATE SET
			fatigue_pct=excluded.fatigue_pct,
			sleep_hours=excluded.sleep_hours,
			step_count=excluded.step_count,
			screen_hours=excluded.screen_hours,
			missions_done=excluded.missions_done`,
		rec.Date, rec.FatiguePct, rec.SleepHours, rec.StepCount, rec.ScreenHours, rec.MissionsDone,
	)
	if err != nil {
		return err
	}

	day := domain.ParseDay(rec.Date)
	if day.IsZero() {
		return nil
	}
	cutoff := domain.LocalDay(day.AddDate(0, 0, -domain.HistoryWindowDays))
	if _, err := d.db.Exec(`DELETE FROM daily_history WHERE date < ?`, cutoff); err != nil {
		log.Printf("[sqlite] prune daily history: %v", err)
	}
	return nil
}

// RecentDailyHistory returns the most recent n snapshots in
// chronological order, oldest first.
func (d *DB) RecentDailyHistory(n int) ([]domain.DailyHistoryRecord, error) {
	rows, err := d.db.Query(
		`SELECT date, fatigue_pct, sleep_hours, step_count, screen_hours, missions_done
		 FROM daily_history ORDER BY date DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.DailyHistoryRecord
	for rows.Next() {
		var rec domain.DailyHistoryRecord
		if err := rows.Scan(&rec.Date, &rec.FatiguePct, &rec.SleepHours,
			&rec.StepCount, &rec.ScreenHours, &rec.MissionsDone); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// ─── Notifications ──────────────────────────────────────────────────────────

// InsertNotification appends to the notification log.
func (d *DB) InsertNotification(n domain.Notification) (int64, error) {
	result, err := d.db.Exec(
		`INSERT INTO notifications (kind, title, body, action_label, created_at, read)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		string(n.Kind), n.Title, n.Body, n.ActionLabel, n.CreatedAt.Unix(), n.Read,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// ListNotifications returns the newest notifications first.
func (d *DB) ListNotifications(limit int, unreadOnly bool) ([]domain.Notification, error) {
	q := `SELECT id, kind, title, body, action_label, created_at, read
	      FROM notifications`
	if unreadOnly {
		q += ` WHERE read = 0`
	}
	q += ` ORDER BY created_at DESC, id DESC LIMIT ?`

	rows, err := d.db.Query(q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifs []domain.Notification
	for rows.Next() {
		var n domain.Notification
		var createdAt int64
		if err := rows.Scan(&n.ID, &n.Kind, &n.Title, &n.Body, &n.ActionLabel, &createdAt, &n.Read); err != nil {
			return nil, err
		}
		n.CreatedAt = time.Unix(createdAt, 0)
		notifs = append(notifs, n)
	}
	return notifs, rows.Err()
}

// MarkNotificationRead marks a notification as read.
func (d *DB) MarkNotificationRead(id int64) error {
	result, err := d.db.Exec(`UPDATE notifications SET read = 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}
