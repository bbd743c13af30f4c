package db

import (
	"database/sql"
	"fmt"
	"time"
)

// FrameRecord is one drawn frame as stored in the history table.
type FrameRecord struct {
	ID             int64
	DrawnAt        time.Time
	Angle          float64
	BatteryPercent int
	Indicators     string
	AlarmShown     bool
	Fault          string
	Duration       time.Duration
}

// InsertFrame appends one frame to the history.
func InsertFrame(conn *sql.DB, rec FrameRecord) error {
	_, err := conn.Exec(
		`INSERT INTO frames (drawn_at, angle, battery_percent, indicators, alarm_shown, fault, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.DrawnAt, rec.Angle, rec.BatteryPercent, rec.Indicators, rec.AlarmShown, rec.Fault,
		rec.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert frame: %w", err)
	}
	return nil
}

// RecentFrames returns the latest n frames, newest first.
func RecentFrames(conn *sql.DB, n int) ([]FrameRecord, error) {
	rows, err := conn.Query(
		`SELECT id, drawn_at, angle, battery_percent, indicators, alarm_shown, fault, duration_ms
		 FROM frames ORDER BY drawn_at DESC, id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query frames: %w", err)
	}
	defer rows.Close()

	var frames []FrameRecord
	for rows.Next() {
		var rec FrameRecord
		var durationMS int64
		var alarmShown int
		err = rows.Scan(&rec.ID, &rec.DrawnAt, &rec.Angle, &rec.BatteryPercent,
			&rec.Indicators, &alarmShown, &rec.Fault, &durationMS)
		if err != nil {
			return nil, fmt.Errorf("failed to scan frame: %w", err)
		}
		rec.AlarmShown = alarmShown != 0
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		frames = append(frames, rec)
	}
	return frames, rows.Err()
}

// PruneBefore deletes history older than the cutoff and reports how
// many rows went away.
func PruneBefore(conn *sql.DB, cutoff time.Time) (int64, error) {
	res, err := conn.Exec(`DELETE FROM frames WHERE drawn_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune frames: %w", err)
	}
	return res.RowsAffected()
}
