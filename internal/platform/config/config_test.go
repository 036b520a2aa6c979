package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("BROKER_ADDR", "")
	t.Setenv("UPSTREAM_TIMEOUT", "")
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("DATABASE_URL", "")

	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 10*time.Second, cfg.Upstreams.Timeout)
	assert.Equal(t, DefaultEntityRegistryURL, cfg.Upstreams.EntityRegistry)
	assert.Equal(t, DefaultFinancialsURL, cfg.Upstreams.Financials)
	assert.Equal(t, DefaultLicenseRegistryURL, cfg.Upstreams.LicenseRegistry)
	assert.Equal(t, DefaultScreeningURL, cfg.Upstreams.Screening)
	assert.Empty(t, cfg.Audit.KafkaBrokers)
	assert.Equal(t, "broker.audit", cfg.Audit.Topic)
	assert.Equal(t, 1000, cfg.Audit.MemoryCapacity)
	assert.Equal(t, 24*time.Hour, cfg.Store.CacheTTL)
	assert.Equal(t, 5, cfg.Breaker.FailureThreshold)
	assert.Equal(t, 3, cfg.Breaker.SuccessThreshold)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("BROKER_ADDR", ":9090")
	t.Setenv("UPSTREAM_TIMEOUT", "2s")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,,")
	t.Setenv("PROFILE_CACHE_TTL", "not-a-duration")
	t.Setenv("BREAKER_FAILURE_THRESHOLD", "7")

	cfg := FromEnv()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 2*time.Second, cfg.Upstreams.Timeout)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Audit.KafkaBrokers)
	assert.Equal(t, 24*time.Hour, cfg.Store.CacheTTL, "unparsable durations fall back to defaults")
	assert.Equal(t, 7, cfg.Breaker.FailureThreshold)
}
