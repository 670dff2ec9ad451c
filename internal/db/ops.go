package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/jackc/pgx/v4"

	"shutter-monitor/internal/shutter"
)

var (
	ErrInvalidEvent           = errors.New("invalid event")
	ErrInsertFailed           = errors.New("insert operation failed")
	ErrUpsertFailed           = errors.New("upsert operation failed")
	ErrTransactionStartFailed = errors.New("transaction start failed")
	ErrCommitFailed           = errors.New("transaction commit failed")
	ErrSelectFailed           = errors.New("select operation failed")
	ErrNotFound               = errors.New("record not found")
	ErrDecodeFailed           = errors.New("row decode failed")
)

// The summary row is created or updated by a single statement under the
// (date, camera_id) unique constraint. open_time is only filled while NULL,
// close_time takes the latest value. RETURNING id is the link used by the log
// entry, so concurrent writers never cross-reference each other's rows.
const upsertDaily = `
	INSERT INTO shutter_daily (
		date,
		camera_id,
		open_time,
		close_time
	) VALUES ($1, $2, $3, $4)
	ON CONFLICT (date, camera_id) DO UPDATE SET
		open_time  = COALESCE(shutter_daily.open_time, EXCLUDED.open_time),
		close_time = COALESCE(EXCLUDED.close_time, shutter_daily.close_time)
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
	) VALUES ($1, $2, $3, $4, $5, $6)
`

// RecordTransition writes the daily summary and the log entry in one
// transaction and returns the summary row id.
func (db *DB) RecordTransition(ctx context.Context, ev shutter.Event) (id int64, err error) {
	const fn = "DB:RecordTransition"
	if err := ev.Validate(); err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrInvalidEvent, err)
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrTransactionStartFailed, err)
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
			id = 0
			return
		}
		if cerr := tx.Commit(ctx); cerr != nil {
			id, err = 0, fmt.Errorf("%s:%w:%w", fn, ErrCommitFailed, cerr)
		}
	}()

	open, closed := TransitionTimes(ev)
	if err = tx.QueryRow(ctx, upsertDaily, ev.Date(), ev.CameraID, open, closed).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrUpsertFailed, err)
	}

	_, err = tx.Exec(ctx, insertLog,
		ev.Date(), ev.Clock(), string(ev.Kind), shutter.ActionLabel, ev.CameraID, id,
	)
	if err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return id, nil
}

func (db *DB) GetDailyRecord(ctx context.Context, date string, cameraID string) (shutter.DailyRecord, error) {
	const fn = "DB:GetDailyRecord"
	var row DailyRow
	err := pgxscan.Get(ctx, db.pool, &row, `
			SELECT
				id,
				date::text AS date,
				camera_id,
				open_time::text AS open_time,
				close_time::text AS close_time
			FROM shutter_daily
			WHERE date = $1
			AND camera_id = $2
		`, date, cameraID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shutter.DailyRecord{}, fmt.Errorf("%s:%w", fn, ErrNotFound)
		}
		return shutter.DailyRecord{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	rec, err := row.Record()
	if err != nil {
		return shutter.DailyRecord{}, fmt.Errorf("%s:%w:%w", fn, ErrDecodeFailed, err)
	}
	return rec, nil
}

func (db *DB) ListLogEntries(ctx context.Context, date string, cameraID string) ([]shutter.LogEntry, error) {
	const fn = "DB:ListLogEntries"
	var rows []LogRow
	err := pgxscan.Select(ctx, db.pool, &rows, `
			SELECT
				id,
				date::text AS date,
				time::text AS time,
				event,
				action,
				camera_id,
				shutter_id
			FROM shutter_log
			WHERE date = $1
			AND camera_id = $2
			ORDER BY id ASC
		`, date, cameraID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	entries := make([]shutter.LogEntry, 0, len(rows))
	for _, r := range rows {
		e, err := r.Entry()
		if err != nil {
			return nil, fmt.Errorf("%s:%w:%w", fn, ErrDecodeFailed, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
