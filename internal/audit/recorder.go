package audit

import (
	"context"
	"log/slog"
	"time"
)

const defaultBuffer = 256

// Recorder decouples event emission from delivery: Emit is non-blocking
// and drops under backpressure, Run drains the inbox into the sinks.
// Audit here is operational/security telemetry, not a compliance ledger,
// so losing events under pressure beats stalling identification.
type Recorder struct {
	inbox  chan Event
	sinks  []Sink
	logger *slog.Logger
}

// NewRecorder builds a recorder over the given sinks.
func NewRecorder(logger *slog.Logger, sinks ...Sink) *Recorder {
	return &Recorder{
		inbox:  make(chan Event, defaultBuffer),
		sinks:  sinks,
		logger: logger,
	}
}

// Emit queues an event for delivery. A zero timestamp is stamped here so
// call sites stay terse.
func (r *Recorder) Emit(event Event) {
	if r == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case r.inbox <- event:
	default:
		r.logger.Warn("audit inbox full, dropping event", "action", event.Action)
	}
}

// Run drains the inbox until the context is canceled. Sink failures are
// logged and do not stop the loop.
func (r *Recorder) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			r.drain()
			return ctx.Err()
		case event := <-r.inbox:
			r.deliver(ctx, event)
		}
	}
}

func (r *Recorder) deliver(ctx context.Context, event Event) {
	for _, sink := range r.sinks {
		if err := sink.Write(ctx, event); err != nil {
			r.logger.ErrorContext(ctx, "audit sink write failed",
				"action", event.Action,
				"error", err,
			)
		}
	}
}

// drain flushes whatever is buffered at shutdown, bounded so a wedged
// sink cannot hold the process open.
func (r *Recorder) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for {
		select {
		case event := <-r.inbox:
			r.deliver(ctx, event)
		default:
			return
		}
	}
}
