package audit

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

const defaultBufferSize = 1024

// Publisher hands events to a background worker through a bounded channel.
// Emit never blocks: when the buffer is full the event is dropped and logged.
type Publisher struct {
	inbox   chan Event
	logger  *slog.Logger
	now     func() time.Time
	dropped atomic.Int64

	mu     sync.RWMutex
	closed bool
}

// Option configures the Publisher.
type Option func(*Publisher)

// WithLogger sets a logger for dropped events.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(p *Publisher) {
		if now != nil {
			p.now = now
		}
	}
}

// NewPublisher creates a publisher with the given buffer size.
func NewPublisher(bufferSize int, opts ...Option) *Publisher {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	p := &Publisher{
		inbox: make(chan Event, bufferSize),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Emit queues an event. The category is derived from the action when unset
// and the timestamp defaults to now.
func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if event.Category == "" {
		event.Category = AuditEvent(event.Action).Category()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = p.now()
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		p.drop(ctx, event, "audit publisher closed, dropping event")
		return nil
	}

	select {
	case p.inbox <- event:
	default:
		p.drop(ctx, event, "audit buffer full, dropping event")
	}
	return nil
}

func (p *Publisher) drop(ctx context.Context, event Event, msg string) {
	p.dropped.Add(1)
	if p.logger != nil {
		p.logger.WarnContext(ctx, msg,
			"action", event.Action,
			"subject", event.Subject,
			"request_id", event.RequestID,
		)
	}
}

// Events is the channel drained by the worker.
func (p *Publisher) Events() <-chan Event {
	return p.inbox
}

// Dropped returns the total number of events dropped on a full buffer or
// after Close.
func (p *Publisher) Dropped() int64 {
	return p.dropped.Load()
}

// Close stops accepting events. Later Emit calls drop their event.
func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.inbox)
}
