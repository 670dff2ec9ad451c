package frames

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type DirSourceConfig struct {
	Dir     string
	Pattern string  // glob, default "*.jpg"
	Loops   int     // passes over the directory; 0 and 1 play once, -1 loops forever
	FPS     float64 // 0 disables pacing
}

// DirSource replays image files from a directory in name order.
type DirSource struct {
	files    []string
	loops    int
	interval time.Duration

	mu        sync.Mutex
	next      int
	played    int
	seq       uint64
	lastFrame time.Time
	closed    bool
}

func NewDirSource(cfg DirSourceConfig) (*DirSource, error) {
	pattern := cfg.Pattern
	if pattern == "" {
		pattern = "*.jpg"
	}
	files, err := filepath.Glob(filepath.Join(cfg.Dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files matching %s in %s", pattern, cfg.Dir)
	}
	sort.Strings(files)

	var interval time.Duration
	if cfg.FPS > 0 {
		interval = time.Duration(float64(time.Second) / cfg.FPS)
	}
	slog.Info("Frame source ready", "dir", cfg.Dir, "files", len(files), "loops", cfg.Loops, "fps", cfg.FPS)
	return &DirSource{files: files, loops: cfg.Loops, interval: interval}, nil
}

func (s *DirSource) IsStreaming() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streaming()
}

func (s *DirSource) streaming() bool {
	if s.closed {
		return false
	}
	if s.loops < 0 {
		return true
	}
	return s.played < max(s.loops, 1)
}

func (s *DirSource) Capture(ctx context.Context) (Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.streaming() {
		return Frame{}, ErrEndOfStream
	}
	if err := s.pace(ctx); err != nil {
		return Frame{}, err
	}

	path := s.files[s.next]
	s.next++
	if s.next == len(s.files) {
		s.next = 0
		s.played++
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Frame{}, fmt.Errorf("read frame %s: %w", path, err)
	}
	s.seq++
	frame := Frame{
		Seq:       s.seq,
		Timestamp: time.Now(),
		Data:      data,
		TraceID:   uuid.NewString(),
	}
	if cfg, err := jpeg.DecodeConfig(bytes.NewReader(data)); err == nil {
		frame.Width, frame.Height = cfg.Width, cfg.Height
	}
	return frame, nil
}

func (s *DirSource) pace(ctx context.Context) error {
	if s.interval == 0 {
		return nil
	}
	if wait := s.interval - time.Since(s.lastFrame); wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	s.lastFrame = time.Now()
	return nil
}

func (s *DirSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
