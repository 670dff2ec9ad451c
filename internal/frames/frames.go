// Package frames holds the frame acquisition and output boundary of a camera
// session.
package frames

import (
	"context"
	"errors"
	"time"
)

var ErrEndOfStream = errors.New("end of stream")

// Frame is a single captured image. Data is JPEG encoded.
type Frame struct {
	Seq       uint64
	Timestamp time.Time
	Width     int
	Height    int
	Data      []byte
	TraceID   string
}

type Source interface {
	// Capture blocks until the next frame is available. It returns
	// ErrEndOfStream once the source is exhausted.
	Capture(ctx context.Context) (Frame, error)
	IsStreaming() bool
	Close() error
}

type Sink interface {
	Render(frame Frame) error
	IsStreaming() bool
	Close() error
}
