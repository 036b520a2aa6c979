package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"broker/internal/profile/models"
	"broker/pkg/domain"
	"broker/pkg/platform/sentinel"
)

const profileKeyPrefix = "broker:profile:"

// RedisStore keeps company records as JSON values that expire after the TTL.
type RedisStore struct {
	client   *redis.Client
	cacheTTL time.Duration
}

// NewRedisStore constructs a Redis-backed profile store. A zero TTL keeps
// records without expiry.
func NewRedisStore(client *redis.Client, cacheTTL time.Duration) *RedisStore {
	return &RedisStore{client: client, cacheTTL: cacheTTL}
}

func (s *RedisStore) Upsert(ctx context.Context, record *models.CompanyRecord) error {
	if record == nil {
		return fmt.Errorf("company record is required")
	}
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal company record: %w", err)
	}
	if err := s.client.Set(ctx, profileKeyPrefix+record.OrgNumber, value, s.cacheTTL).Err(); err != nil {
		return fmt.Errorf("save company record: %w", err)
	}
	return nil
}

func (s *RedisStore) Find(ctx context.Context, orgnr domain.OrgNumber) (*models.CompanyRecord, error) {
	value, err := s.client.Get(ctx, profileKeyPrefix+orgnr.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find company record: %w", err)
	}
	var record models.CompanyRecord
	if err := json.Unmarshal(value, &record); err != nil {
		return nil, fmt.Errorf("decode company record: %w", err)
	}
	return &record, nil
}
