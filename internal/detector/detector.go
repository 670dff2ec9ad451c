// Package detector adapts an object-detection model to the per-frame open /
// closed reading consumed by the debounce machine.
package detector

import (
	"context"

	"shutter-monitor/internal/debounce"
	"shutter-monitor/internal/frames"
)

// DefaultOpenClassID is the model class that marks a visibly open shutter.
const DefaultOpenClassID = 1

type Detection struct {
	ClassID    int     `msgpack:"class_id"`
	Confidence float64 `msgpack:"confidence"`
}

// Detector returns the detections for one frame, most confident first.
type Detector interface {
	Detect(ctx context.Context, frame frames.Frame) ([]Detection, error)
}

// Classify reduces a frame's detections to a reading. Only the first
// detection is considered.
func Classify(dets []Detection, openClassID int) debounce.Reading {
	if len(dets) == 0 {
		return debounce.NoReading
	}
	if dets[0].ClassID == openClassID {
		return debounce.ReadingOpen
	}
	return debounce.ReadingClosed
}

// Static replays a fixed script of per-frame detections, then reports nothing.
type Static struct {
	Script [][]Detection
	next   int
}

func (s *Static) Detect(_ context.Context, _ frames.Frame) ([]Detection, error) {
	if s.next >= len(s.Script) {
		return nil, nil
	}
	d := s.Script[s.next]
	s.next++
	return d, nil
}
