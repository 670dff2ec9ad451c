// Package session runs the per-frame loop of one camera for one day:
// capture, classify, debounce, persist, render.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"shutter-monitor/internal/debounce"
	"shutter-monitor/internal/detector"
	"shutter-monitor/internal/frames"
	"shutter-monitor/internal/shutter"
	"shutter-monitor/internal/worker"
)

var (
	ErrCutoff      = fmt.Errorf("daily cutoff reached: %w", worker.ErrStop)
	ErrEndOfStream = fmt.Errorf("frame stream ended: %w", worker.ErrStop)

	ErrCapture = errors.New("frame capture failed")
	ErrDetect  = errors.New("detection failed")
	ErrRecord  = errors.New("event record failed")
	ErrRender  = errors.New("frame render failed")
)

// Recorder persists a transition and returns the daily record id.
type Recorder interface {
	Record(ctx context.Context, ev shutter.Event) (int64, error)
}

type Config struct {
	CameraID    string
	OpenClassID int
	Cutoff      Cutoff
	Location    *time.Location
	SessionID   string
}

type Deps struct {
	Source   frames.Source
	Detector detector.Detector
	Machine  *debounce.Machine
	Recorder Recorder
	Sink     frames.Sink
	Now      func() time.Time
}

type Stats struct {
	Frames   uint64
	Readings uint64
	Events   uint64
}

type Session struct {
	cameraID    string
	openClassID int
	cutoff      Cutoff
	loc         *time.Location
	sessionID   string

	source   frames.Source
	detector detector.Detector
	machine  *debounce.Machine
	recorder Recorder
	sink     frames.Sink
	now      func() time.Time

	stats Stats
}

func New(cfg Config, deps Deps) *Session {
	s := &Session{
		cameraID:    cfg.CameraID,
		openClassID: cfg.OpenClassID,
		cutoff:      cfg.Cutoff,
		loc:         cfg.Location,
		sessionID:   cfg.SessionID,
		source:      deps.Source,
		detector:    deps.Detector,
		machine:     deps.Machine,
		recorder:    deps.Recorder,
		sink:        deps.Sink,
		now:         deps.Now,
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.machine == nil {
		s.machine = debounce.New(debounce.DefaultThreshold)
	}
	if s.sink == nil {
		s.sink = &frames.NullSink{}
	}
	return s
}

func (s *Session) Stats() Stats { return s.stats }

// Process runs one loop iteration. Errors wrapping worker.ErrStop end the day
// normally; any other error is fatal to the session.
func (s *Session) Process(ctx context.Context) error {
	const fn = "Session:Process"
	if s.cutoff.Reached(s.now().In(s.loc)) {
		return ErrCutoff
	}

	frame, err := s.source.Capture(ctx)
	if err != nil {
		if errors.Is(err, frames.ErrEndOfStream) {
			return ErrEndOfStream
		}
		return fmt.Errorf("%s:%w:%w", fn, ErrCapture, err)
	}
	s.stats.Frames++

	dets, err := s.detector.Detect(ctx, frame)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrDetect, err)
	}
	reading := detector.Classify(dets, s.openClassID)
	if reading != debounce.NoReading {
		s.stats.Readings++
	}

	kind, changed := s.machine.Observe(reading)
	slog.DebugContext(ctx, "Frame processed",
		"session_id", s.sessionID,
		"frame_seq", frame.Seq,
		"trace_id", frame.TraceID,
		"detections", len(dets),
		"reading", reading.String(),
		"state", s.machine.State().String(),
		"pending", s.machine.Pending(),
		"threshold", s.machine.Threshold(),
	)

	if changed {
		ev := shutter.Event{Kind: kind, At: s.now().In(s.loc), CameraID: s.cameraID}
		slog.InfoContext(ctx, "Shutter state changed",
			"session_id", s.sessionID,
			"camera_id", s.cameraID,
			"event", kind,
			"frame_seq", frame.Seq,
		)
		if _, err := s.recorder.Record(ctx, ev); err != nil {
			return fmt.Errorf("%s:%w:%w", fn, ErrRecord, err)
		}
		s.stats.Events++
	}

	if err := s.sink.Render(frame); err != nil {
		if errors.Is(err, frames.ErrEndOfStream) {
			return ErrEndOfStream
		}
		return fmt.Errorf("%s:%w:%w", fn, ErrRender, err)
	}

	if !s.source.IsStreaming() || !s.sink.IsStreaming() {
		return ErrEndOfStream
	}
	return nil
}
