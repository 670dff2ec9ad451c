package sqlitedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/sqlscan"

	"shutter-monitor/internal/db"
	"shutter-monitor/internal/shutter"
)

// Errors are shared with the Postgres store so callers match one set.
var (
	ErrInvalidEvent = db.ErrInvalidEvent
	ErrNotFound     = db.ErrNotFound
)

const upsertDaily = `
	INSERT INTO shutter_daily (
		date,
		camera_id,
		open_time,
		close_time
	) VALUES (?, ?, ?, ?)
	ON CONFLICT (date, camera_id) DO UPDATE SET
		open_time  = COALESCE(shutter_daily.open_time, excluded.open_time),
		close_time = COALESCE(excluded.close_time, shutter_daily.close_time)
	RETURNING id
`

const insertLog = `
	INSERT INTO shutter_log (
		date,
		time,
		event,
		action,
		camera_id,
		shutter_id
	) VALUES (?, ?, ?, ?, ?, ?)
`

func (s *DB) RecordTransition(ctx context.Context, ev shutter.Event) (int64, error) {
	const fn = "SQLite:RecordTransition"
	if err := ev.Validate(); err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, db.ErrInvalidEvent, err)
	}

	var id int64
	err := s.writer.Do(ctx, func(ctx context.Context, tx *sql.Tx) error {
		open, closed := db.TransitionTimes(ev)
		if err := tx.QueryRowContext(ctx, upsertDaily, ev.Date(), ev.CameraID, open, closed).Scan(&id); err != nil {
			return fmt.Errorf("%w:%w", db.ErrUpsertFailed, err)
		}
		if _, err := tx.ExecContext(ctx, insertLog,
			ev.Date(), ev.Clock(), string(ev.Kind), shutter.ActionLabel, ev.CameraID, id,
		); err != nil {
			return fmt.Errorf("%w:%w", db.ErrInsertFailed, err)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%s:%w", fn, err)
	}
	return id, nil
}

func (s *DB) GetDailyRecord(ctx context.Context, date string, cameraID string) (shutter.DailyRecord, error) {
	const fn = "SQLite:GetDailyRecord"
	var row db.DailyRow
	err := sqlscan.Get(ctx, s.conn, &row, `
			SELECT
				id,
				date,
				camera_id,
				open_time,
				close_time
			FROM shutter_daily
			WHERE date = ?
			AND camera_id = ?
		`, date, cameraID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return shutter.DailyRecord{}, fmt.Errorf("%s:%w", fn, db.ErrNotFound)
		}
		return shutter.DailyRecord{}, fmt.Errorf("%s:%w:%w", fn, db.ErrSelectFailed, err)
	}
	rec, err := row.Record()
	if err != nil {
		return shutter.DailyRecord{}, fmt.Errorf("%s:%w:%w", fn, db.ErrDecodeFailed, err)
	}
	return rec, nil
}

func (s *DB) ListLogEntries(ctx context.Context, date string, cameraID string) ([]shutter.LogEntry, error) {
	const fn = "SQLite:ListLogEntries"
	var rows []db.LogRow
	err := sqlscan.Select(ctx, s.conn, &rows, `
			SELECT
				id,
				date,
				time,
				event,
				action,
				camera_id,
				shutter_id
			FROM shutter_log
			WHERE date = ?
			AND camera_id = ?
			ORDER BY id ASC
		`, date, cameraID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, db.ErrSelectFailed, err)
	}
	entries := make([]shutter.LogEntry, 0, len(rows))
	for _, r := range rows {
		e, err := r.Entry()
		if err != nil {
			return nil, fmt.Errorf("%s:%w:%w", fn, db.ErrDecodeFailed, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
