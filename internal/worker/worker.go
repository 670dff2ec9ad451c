package worker

import (
	"context"
	"errors"
	"log/slog"
)

// ErrStop is wrapped by processor errors that end the run normally.
var ErrStop = errors.New("worker stop requested")

type Config struct {
	Name      string
	Processor Processor
}

type Processor interface {
	Process(ctx context.Context) error
}

type Worker struct {
	name      string
	processor Processor
}

func New(cfg Config) *Worker {
	return &Worker{
		name:      cfg.Name,
		processor: cfg.Processor,
	}
}

// Run calls the processor until the context is cancelled or the processor
// returns an error. It returns nil on cancellation, an error wrapping ErrStop
// on a requested stop, and the processor's error otherwise. A processor error
// that is not the cancellation itself is returned even after cancellation.
func (w *Worker) Run(ctx context.Context) error {
	slog.InfoContext(ctx, "Worker started...", "worker", w.name)
	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Worker stopped...", "worker", w.name, "reason", ctx.Err())
			return nil
		default:
			if err := w.processor.Process(ctx); err != nil {
				if errors.Is(err, ErrStop) {
					slog.InfoContext(ctx, "Worker stopped...", "worker", w.name, "reason", err)
					return err
				}
				if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
					slog.InfoContext(ctx, "Worker stopped...", "worker", w.name, "reason", ctx.Err())
					return nil
				}
				slog.ErrorContext(ctx, "Worker failed", "worker", w.name, "error", err)
				return err
			}
		}
	}
}
