package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr      string
	LogLevel  string
	LogFormat string
	Upstreams Upstreams
	Store     Store
	Audit     Audit
	Breaker   Breaker
}

// Upstreams configures the four public registries the pipeline reads.
type Upstreams struct {
	Timeout         time.Duration
	EntityRegistry  string
	Financials      string
	LicenseRegistry string
	Screening       string
	ScreeningAPIKey string
}

// Store selects the profile store backend. Redis wins over Postgres; neither
// configured means in-memory.
type Store struct {
	DatabaseURL string
	Redis       RedisConfig
	CacheTTL    time.Duration
}

// RedisConfig configures the go-redis client.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Audit configures where audit events go. Empty brokers keep them in memory.
type Audit struct {
	KafkaBrokers   []string
	Topic          string
	BufferSize     int
	MemoryCapacity int
}

// Breaker configures the per-upstream circuit breakers.
type Breaker struct {
	FailureThreshold int
	SuccessThreshold int
}

// Defaults for the public registries.
const (
	DefaultEntityRegistryURL  = "https://data.brreg.no/enhetsregisteret/api/enheter"
	DefaultFinancialsURL      = "https://data.brreg.no/regnskapsregisteret/regnskap"
	DefaultLicenseRegistryURL = "https://api.finanstilsynet.no/registry/api/v2/entities"
	DefaultScreeningURL       = "https://api.opensanctions.org/search/default"
)

// UpstreamTimeout is the per-call budget for every outbound lookup.
var UpstreamTimeout = 10 * time.Second

// Load reads an optional .env file and then the environment.
func Load() Server {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:      getenv("BROKER_ADDR", ":8080"),
		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "json"),
		Upstreams: Upstreams{
			Timeout:         getDuration("UPSTREAM_TIMEOUT", UpstreamTimeout),
			EntityRegistry:  getenv("ENTITY_REGISTRY_URL", DefaultEntityRegistryURL),
			Financials:      getenv("FINANCIALS_REGISTRY_URL", DefaultFinancialsURL),
			LicenseRegistry: getenv("LICENSE_REGISTRY_URL", DefaultLicenseRegistryURL),
			Screening:       getenv("SCREENING_URL", DefaultScreeningURL),
			ScreeningAPIKey: os.Getenv("SCREENING_API_KEY"),
		},
		Store: Store{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Redis: RedisConfig{
				URL:          os.Getenv("REDIS_URL"),
				PoolSize:     getInt("REDIS_POOL_SIZE", 10),
				MinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", 2),
				DialTimeout:  getDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
				ReadTimeout:  getDuration("REDIS_READ_TIMEOUT", 3*time.Second),
				WriteTimeout: getDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
			},
			CacheTTL: getDuration("PROFILE_CACHE_TTL", 24*time.Hour),
		},
		Audit: Audit{
			KafkaBrokers:   splitList(os.Getenv("KAFKA_BROKERS")),
			Topic:          getenv("AUDIT_TOPIC", "broker.audit"),
			BufferSize:     getInt("AUDIT_BUFFER_SIZE", 256),
			MemoryCapacity: getInt("AUDIT_MEMORY_CAPACITY", 1000),
		},
		Breaker: Breaker{
			FailureThreshold: getInt("BREAKER_FAILURE_THRESHOLD", 5),
			SuccessThreshold: getInt("BREAKER_SUCCESS_THRESHOLD", 3),
		},
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
