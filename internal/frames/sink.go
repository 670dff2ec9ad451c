package frames

import (
	"sync/atomic"

	"github.com/hybridgroup/mjpeg"
)

// MJPEGSink serves rendered frames as a multipart MJPEG stream. Mount Stream
// on an HTTP router to watch the camera.
type MJPEGSink struct {
	Stream *mjpeg.Stream
	closed atomic.Bool
}

func NewMJPEGSink() *MJPEGSink {
	return &MJPEGSink{Stream: mjpeg.NewStream()}
}

func (s *MJPEGSink) Render(frame Frame) error {
	if s.closed.Load() {
		return ErrEndOfStream
	}
	if len(frame.Data) > 0 {
		s.Stream.UpdateJPEG(frame.Data)
	}
	return nil
}

func (s *MJPEGSink) IsStreaming() bool { return !s.closed.Load() }

func (s *MJPEGSink) Close() error {
	s.closed.Store(true)
	return nil
}

// NullSink drops every frame (headless mode).
type NullSink struct {
	closed atomic.Bool
}

func (s *NullSink) Render(Frame) error { return nil }

func (s *NullSink) IsStreaming() bool { return !s.closed.Load() }

func (s *NullSink) Close() error {
	s.closed.Store(true)
	return nil
}
