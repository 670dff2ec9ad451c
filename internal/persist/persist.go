// Package persist records debounced shutter transitions. It bounds each write
// with a timeout, classifies failures and fans committed events out to the
// configured publishers.
package persist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"shutter-monitor/internal/shutter"
)

const DefaultTimeout = 5 * time.Second

var (
	// ErrPersistence means nothing was committed for the event.
	ErrPersistence = errors.New("persistence failure")
	// ErrConsistency means the daily summary was committed but the log entry
	// was not.
	ErrConsistency = errors.New("consistency fault")
)

// Store writes the summary and the log entry for one event. Implementations
// that cover both writes with one transaction return a zero id with every
// error. A non-zero id alongside an error reports a committed summary whose
// log append failed.
type Store interface {
	RecordTransition(ctx context.Context, ev shutter.Event) (int64, error)
	GetDailyRecord(ctx context.Context, date string, cameraID string) (shutter.DailyRecord, error)
	ListLogEntries(ctx context.Context, date string, cameraID string) ([]shutter.LogEntry, error)
}

// Publisher receives events after they are committed.
type Publisher interface {
	Name() string
	Publish(ctx context.Context, ev shutter.Event, shutterID int64) error
}

type Config struct {
	Store      Store
	Timeout    time.Duration
	Publishers []Publisher
}

type Persister struct {
	store      Store
	timeout    time.Duration
	publishers []Publisher
}

func New(cfg Config) *Persister {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Persister{
		store:      cfg.Store,
		timeout:    timeout,
		publishers: cfg.Publishers,
	}
}

// Record persists ev and returns the id of the daily record it was linked to.
func (p *Persister) Record(ctx context.Context, ev shutter.Event) (int64, error) {
	const fn = "Persister:Record"
	// A write that has started finishes even if the session is being shut
	// down; the event cannot be produced again.
	base := context.WithoutCancel(ctx)
	writeCtx, cancel := context.WithTimeout(base, p.timeout)
	defer cancel()

	start := time.Now()
	id, err := p.store.RecordTransition(writeCtx, ev)
	if err != nil {
		if id != 0 {
			slog.ErrorContext(ctx, "Summary committed without log entry",
				"camera_id", ev.CameraID,
				"event", ev.Kind,
				"shutter_id", id,
				"error", err,
			)
			return id, fmt.Errorf("%s:%w:%w", fn, ErrConsistency, err)
		}
		if errors.Is(writeCtx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("timed out after %s: %w", p.timeout, err)
		}
		slog.ErrorContext(ctx, "Error recording shutter event",
			"camera_id", ev.CameraID,
			"event", ev.Kind,
			"date", ev.Date(),
			"time", ev.Clock(),
			"error", err,
		)
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrPersistence, err)
	}

	slog.InfoContext(ctx, "Recorded shutter event",
		"camera_id", ev.CameraID,
		"event", ev.Kind,
		"date", ev.Date(),
		"time", ev.Clock(),
		"shutter_id", id,
		"took", time.Since(start),
	)
	p.publish(base, ev, id)
	return id, nil
}

func (p *Persister) publish(ctx context.Context, ev shutter.Event, id int64) {
	for _, pub := range p.publishers {
		pubCtx, cancel := context.WithTimeout(ctx, p.timeout)
		err := pub.Publish(pubCtx, ev, id)
		cancel()
		if err != nil {
			slog.ErrorContext(ctx, "Error publishing shutter event",
				"publisher", pub.Name(),
				"camera_id", ev.CameraID,
				"event", ev.Kind,
				"error", err,
			)
		}
	}
}

func (p *Persister) Daily(ctx context.Context, date string, cameraID string) (shutter.DailyRecord, error) {
	return p.store.GetDailyRecord(ctx, date, cameraID)
}

func (p *Persister) Entries(ctx context.Context, date string, cameraID string) ([]shutter.LogEntry, error) {
	return p.store.ListLogEntries(ctx, date, cameraID)
}
