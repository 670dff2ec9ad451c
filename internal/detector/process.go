package detector

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"sync"
	"time"

	"shutter-monitor/internal/frames"
)

var (
	ErrWorkerStart  = errors.New("detector worker start failed")
	ErrWorkerIO     = errors.New("detector worker io failed")
	ErrWorkerReply  = errors.New("detector worker reply invalid")
	ErrWorkerClosed = errors.New("detector worker closed")
)

type ProcessConfig struct {
	Command   string
	Args      []string
	Env       []string
	Threshold float64 // minimum detection confidence, forwarded to the worker
}

// Process runs the model in an external worker and exchanges one
// request/reply pair per frame over its stdin/stdout.
type Process struct {
	cfg    ProcessConfig
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Reader

	mu     sync.Mutex
	broken error
	done   chan struct{}
}

func StartProcess(ctx context.Context, cfg ProcessConfig) (*Process, error) {
	const fn = "Detector:StartProcess"
	cmd := exec.Command(cfg.Command, cfg.Args...)
	if len(cfg.Env) > 0 {
		cmd.Env = append(cmd.Environ(), cfg.Env...)
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrWorkerStart, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrWorkerStart, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrWorkerStart, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrWorkerStart, err)
	}

	p := &Process{
		cfg:    cfg,
		cmd:    cmd,
		stdin:  stdin,
		stdout: bufio.NewReader(stdout),
		done:   make(chan struct{}),
	}
	go p.logStderr(ctx, stderr)
	go func() {
		err := cmd.Wait()
		slog.InfoContext(ctx, "Detector worker exited", "pid", cmd.Process.Pid, "error", err)
		close(p.done)
	}()

	slog.InfoContext(ctx, "Detector worker started",
		"command", cfg.Command,
		"pid", cmd.Process.Pid,
		"threshold", cfg.Threshold,
	)
	return p, nil
}

func (p *Process) logStderr(ctx context.Context, r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		slog.DebugContext(ctx, "Detector worker stderr", "line", scanner.Text())
	}
}

// Detect sends frame to the worker and waits for its reply. A cancelled
// context or any protocol error leaves the worker unusable.
func (p *Process) Detect(ctx context.Context, frame frames.Frame) ([]Detection, error) {
	const fn = "Detector:Detect"
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.broken != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrWorkerClosed, p.broken)
	}

	type result struct {
		resp response
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		req := request{
			Seq:       frame.Seq,
			Width:     frame.Width,
			Height:    frame.Height,
			FrameData: frame.Data,
			Threshold: p.cfg.Threshold,
			TraceID:   frame.TraceID,
		}
		if err := writeMessage(p.stdin, req); err != nil {
			ch <- result{err: err}
			return
		}
		var resp response
		err := readMessage(p.stdout, &resp)
		ch <- result{resp: resp, err: err}
	}()

	select {
	case <-ctx.Done():
		p.broken = ctx.Err()
		p.stop()
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrWorkerIO, ctx.Err())
	case res := <-ch:
		if res.err != nil {
			p.broken = res.err
			return nil, fmt.Errorf("%s:%w:%w", fn, ErrWorkerIO, res.err)
		}
		if res.resp.Error != "" {
			return nil, fmt.Errorf("%s:%w:%s", fn, ErrWorkerReply, res.resp.Error)
		}
		if res.resp.Seq != frame.Seq {
			p.broken = fmt.Errorf("reply for frame %d, expected %d", res.resp.Seq, frame.Seq)
			return nil, fmt.Errorf("%s:%w:%w", fn, ErrWorkerReply, p.broken)
		}
		return res.resp.Detections, nil
	}
}

func (p *Process) stop() {
	_ = p.stdin.Close()
	select {
	case <-p.done:
		return
	case <-time.After(2 * time.Second):
	}
	_ = p.cmd.Process.Kill()
	<-p.done
}

// Close closes the worker's stdin and waits for it to exit, killing it after
// a grace period.
func (p *Process) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.broken == nil {
		p.broken = ErrWorkerClosed
	}
	p.stop()
	return nil
}
