package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rohanthewiz/serr"
)

// DriveEvent is one recorded drive operation
type DriveEvent struct {
	ID         string    `json:"id"`
	Op         string    `json:"op"` // search, create_dir, upload, delete
	Path       string    `json:"path"`
	Detail     string    `json:"detail,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// RecordEvent journals one drive operation
func (db *DB) RecordEvent(op, path, detail string) error {
	_, err := db.Exec(`
		INSERT INTO drive_events (id, op, path, detail)
		VALUES (?, ?, ?, ?)
	`, uuid.NewString(), op, path, detail)
	if err != nil {
		return serr.Wrap(err, "failed to record drive event")
	}
	return nil
}

// RecentEvents returns the newest journal entries, newest first
func (db *DB) RecentEvents(limit int) ([]DriveEvent, error) {
	rows, err := db.Query(`
		SELECT id, op, path, detail, occurred_at
		FROM drive_events
		ORDER BY occurred_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, serr.Wrap(err, "failed to query drive events")
	}
	defer rows.Close()

	var events []DriveEvent
	for rows.Next() {
		var ev DriveEvent
		var detail sql.NullString
		if err := rows.Scan(&ev.ID, &ev.Op, &ev.Path, &detail, &ev.OccurredAt); err != nil {
			return nil, serr.Wrap(err, "failed to scan drive event")
		}
		ev.Detail = detail.String
		events = append(events, ev)
	}
	return events, rows.Err()
}
