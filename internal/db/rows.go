package db

import (
	"fmt"

	"shutter-monitor/internal/shutter"
)

// DailyRow and LogRow hold date/time columns as text so both stores share one
// parsing path.
type DailyRow struct {
	ID        int64   `db:"id"`
	Date      string  `db:"date"`
	CameraID  string  `db:"camera_id"`
	OpenTime  *string `db:"open_time"`
	CloseTime *string `db:"close_time"`
}

type LogRow struct {
	ID        int64  `db:"id"`
	Date      string `db:"date"`
	Time      string `db:"time"`
	Event     string `db:"event"`
	Action    string `db:"action"`
	CameraID  string `db:"camera_id"`
	ShutterID int64  `db:"shutter_id"`
}

func (r DailyRow) Record() (shutter.DailyRecord, error) {
	date, err := shutter.ParseDate(r.Date)
	if err != nil {
		return shutter.DailyRecord{}, fmt.Errorf("parse date %q: %w", r.Date, err)
	}
	open, err := shutter.ParseOptionalClock(r.OpenTime)
	if err != nil {
		return shutter.DailyRecord{}, fmt.Errorf("parse open_time: %w", err)
	}
	closed, err := shutter.ParseOptionalClock(r.CloseTime)
	if err != nil {
		return shutter.DailyRecord{}, fmt.Errorf("parse close_time: %w", err)
	}
	return shutter.DailyRecord{
		ID:        r.ID,
		Date:      date,
		CameraID:  r.CameraID,
		OpenTime:  open,
		CloseTime: closed,
	}, nil
}

func (r LogRow) Entry() (shutter.LogEntry, error) {
	date, err := shutter.ParseDate(r.Date)
	if err != nil {
		return shutter.LogEntry{}, fmt.Errorf("parse date %q: %w", r.Date, err)
	}
	clock, err := shutter.ParseClock(r.Time)
	if err != nil {
		return shutter.LogEntry{}, fmt.Errorf("parse time %q: %w", r.Time, err)
	}
	return shutter.LogEntry{
		ID:        r.ID,
		Date:      date,
		Time:      clock,
		Kind:      shutter.Kind(r.Event),
		Action:    r.Action,
		CameraID:  r.CameraID,
		ShutterID: r.ShutterID,
	}, nil
}

// TransitionTimes returns the open/close column values for an event: the
// column matching the event kind gets the clock, the other stays NULL.
func TransitionTimes(ev shutter.Event) (open, closed *string) {
	clock := ev.Clock()
	if ev.Kind == shutter.Open {
		return &clock, nil
	}
	return nil, &clock
}
