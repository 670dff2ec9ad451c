package shutter

import (
	"errors"
	"fmt"
	"time"
)

type Kind string

const (
	Open  Kind = "OPEN"
	Close Kind = "CLOSE"
)

// ActionLabel is written verbatim into every log entry.
const ActionLabel = "action"

const (
	DateLayout      = "2006-01-02"
	ClockLayout     = "15:04:05.000000"
	clockReadLayout = "15:04:05.999999999"
)

var ErrInvalidKind = errors.New("invalid event kind")

func (k Kind) Valid() bool {
	return k == Open || k == Close
}

// Event is a single debounced transition ready to be persisted.
type Event struct {
	Kind     Kind
	At       time.Time
	CameraID string
}

func (e Event) Date() string {
	return e.At.Format(DateLayout)
}

func (e Event) Clock() string {
	return e.At.Format(ClockLayout)
}

func (e Event) Validate() error {
	if !e.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, e.Kind)
	}
	if e.CameraID == "" {
		return errors.New("camera id is required")
	}
	if e.At.IsZero() {
		return errors.New("event time is required")
	}
	return nil
}

// DailyRecord is the per-day, per-camera summary. OpenTime and CloseTime only
// carry a time of day.
type DailyRecord struct {
	ID        int64
	Date      time.Time
	CameraID  string
	OpenTime  *time.Time
	CloseTime *time.Time
}

type LogEntry struct {
	ID        int64
	Date      time.Time
	Time      time.Time
	Kind      Kind
	Action    string
	CameraID  string
	ShutterID int64
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseClock parses a stored time of day. Fractional seconds are optional.
func ParseClock(s string) (time.Time, error) {
	return time.Parse(clockReadLayout, s)
}

// ParseOptionalClock maps a NULL column to nil.
func ParseOptionalClock(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := ParseClock(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
