package memory

import (
	"context"
	"sync"

	audit "broker/pkg/platform/audit"
)

// DefaultCapacity is the number of events kept when no capacity is given.
const DefaultCapacity = 1000

// InMemoryStore keeps the most recent events in a fixed-size ring. Once full,
// each Append evicts the oldest event.
type InMemoryStore struct {
	mu     sync.RWMutex
	events []audit.Event
	start  int
	count  int
}

// Option configures the store.
type Option func(*InMemoryStore)

// WithCapacity sets how many events the store retains.
func WithCapacity(n int) Option {
	return func(s *InMemoryStore) {
		if n > 0 {
			s.events = make([]audit.Event, n)
		}
	}
}

func NewInMemoryStore(opts ...Option) *InMemoryStore {
	s := &InMemoryStore{events: make([]audit.Event, DefaultCapacity)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.events)
	s.start, s.count = 0, 0
}

func (s *InMemoryStore) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	capacity := len(s.events)
	if s.count < capacity {
		s.events[(s.start+s.count)%capacity] = event
		s.count++
		return nil
	}
	s.events[s.start] = event
	s.start = (s.start + 1) % capacity
	return nil
}

// ListBySubject returns retained events for one organisation number in
// append order.
func (s *InMemoryStore) ListBySubject(_ context.Context, subject string) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []audit.Event{}
	for _, e := range s.ordered() {
		if e.Subject == subject {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *InMemoryStore) ListAll(_ context.Context) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ordered(), nil
}

// ListRecent returns the last limit events in append order.
func (s *InMemoryStore) ListRecent(_ context.Context, limit int) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := s.ordered()
	start := len(all) - limit
	if start < 0 {
		start = 0
	}
	return all[start:], nil
}

func (s *InMemoryStore) ordered() []audit.Event {
	out := make([]audit.Event, 0, s.count)
	for i := 0; i < s.count; i++ {
		out = append(out, s.events[(s.start+i)%len(s.events)])
	}
	return out
}
