package store

import (
	"context"
	"sync"
	"time"

	"broker/internal/profile/models"
	"broker/pkg/domain"
	"broker/pkg/platform/sentinel"
)

type cachedRecord struct {
	record   models.CompanyRecord
	storedAt time.Time
}

// InMemoryStore keeps company records in process. A zero TTL keeps records
// until restart.
type InMemoryStore struct {
	mu       sync.RWMutex
	records  map[string]cachedRecord
	cacheTTL time.Duration
	now      func() time.Time
}

// NewInMemoryStore creates an in-memory store with the specified TTL.
func NewInMemoryStore(cacheTTL time.Duration) *InMemoryStore {
	return &InMemoryStore{
		records:  make(map[string]cachedRecord),
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

// Upsert replaces the record for its organisation number.
// If record is nil, the operation is a no-op and returns nil.
func (s *InMemoryStore) Upsert(_ context.Context, record *models.CompanyRecord) error {
	if record == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.OrgNumber] = cachedRecord{record: *record, storedAt: s.now()}
	return nil
}

// Find returns sentinel.ErrNotFound if the record does not exist or has
// expired past the TTL.
func (s *InMemoryStore) Find(_ context.Context, orgnr domain.OrgNumber) (*models.CompanyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cached, ok := s.records[orgnr.String()]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if s.cacheTTL > 0 && s.now().Sub(cached.storedAt) >= s.cacheTTL {
		return nil, sentinel.ErrNotFound
	}
	record := cached.record
	return &record, nil
}
