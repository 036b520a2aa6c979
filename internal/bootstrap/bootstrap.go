// Package bootstrap wires the profile pipeline from configuration. It is
// shared by the HTTP server and the brokerctl CLI.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"broker/internal/evidence/entities"
	"broker/internal/evidence/financials"
	"broker/internal/evidence/licenses"
	"broker/internal/evidence/screening"
	"broker/internal/evidence/upstream"
	"broker/internal/platform/config"
	"broker/internal/platform/postgres"
	"broker/internal/platform/redis"
	"broker/internal/profile"
	"broker/internal/profile/store"
	audit "broker/pkg/platform/audit"
	kafkastore "broker/pkg/platform/audit/store/kafka"
	auditmemory "broker/pkg/platform/audit/store/memory"
	"broker/pkg/platform/audit/worker"
	"broker/pkg/platform/circuit"
)

// Upstream source names, used as metric labels and breaker names.
const (
	SourceEntityRegistry  = "entity_registry"
	SourceFinancials      = "financials"
	SourceLicenseRegistry = "license_registry"
	SourceScreening       = "screening"
)

// Upstreams holds one lookup client per public registry.
type Upstreams struct {
	Entities   *entities.Client
	Statements *financials.Client
	Licenses   *licenses.Client
	Screening  *screening.Client
	Breakers   []*circuit.Breaker
}

// NewUpstreams builds the registry clients, each with its own breaker.
func NewUpstreams(cfg config.Server, logger *slog.Logger) *Upstreams {
	u := &Upstreams{}
	client := func(source, baseURL string, extra ...upstream.Option) *upstream.Client {
		breaker := circuit.New(source,
			circuit.WithFailureThreshold(cfg.Breaker.FailureThreshold),
			circuit.WithSuccessThreshold(cfg.Breaker.SuccessThreshold),
		)
		u.Breakers = append(u.Breakers, breaker)
		opts := append([]upstream.Option{
			upstream.WithTimeout(cfg.Upstreams.Timeout),
			upstream.WithBreaker(breaker),
			upstream.WithLogger(logger),
		}, extra...)
		return upstream.New(source, baseURL, opts...)
	}

	u.Entities = entities.NewClient(client(SourceEntityRegistry, cfg.Upstreams.EntityRegistry))
	u.Statements = financials.NewClient(client(SourceFinancials, cfg.Upstreams.Financials))
	u.Licenses = licenses.NewClient(client(SourceLicenseRegistry, cfg.Upstreams.LicenseRegistry))
	apiKey := ""
	if cfg.Upstreams.ScreeningAPIKey != "" {
		apiKey = "ApiKey " + cfg.Upstreams.ScreeningAPIKey
	}
	u.Screening = screening.NewClient(client(SourceScreening, cfg.Upstreams.Screening,
		upstream.WithHeader("Authorization", apiKey),
	))
	return u
}

// NewService builds the profile service over the upstream clients.
func (u *Upstreams) NewService(opts ...profile.Option) (*profile.Service, error) {
	return profile.New(u.Entities, u.Statements, u.Licenses, u.Screening, opts...)
}

// NewProfileStore picks the profile store: Redis, then Postgres, then
// memory. The returned cleanup releases the backing connection.
func NewProfileStore(ctx context.Context, cfg config.Store, logger *slog.Logger) (profile.Store, func(), error) {
	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("connect redis: %w", err)
	}
	if redisClient != nil {
		logger.InfoContext(ctx, "using redis profile store", "ttl", cfg.CacheTTL)
		return store.NewRedisStore(redisClient.Client, cfg.CacheTTL), func() { _ = redisClient.Close() }, nil
	}

	db, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect postgres: %w", err)
	}
	if db != nil {
		pgStore := store.NewPostgresStore(db)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		logger.InfoContext(ctx, "using postgres profile store")
		return pgStore, func() { _ = db.Close() }, nil
	}

	logger.InfoContext(ctx, "using in-memory profile store", "ttl", cfg.CacheTTL)
	return store.NewInMemoryStore(cfg.CacheTTL), func() {}, nil
}

// Audit is the running audit pipeline: a publisher drained by a worker.
type Audit struct {
	Publisher *audit.Publisher
	done      chan struct{}
	cancel    context.CancelFunc
	cleanup   func()
}

// StartAudit starts the audit worker. Events go to Kafka when brokers are
// configured and to memory otherwise.
func StartAudit(ctx context.Context, cfg config.Audit, logger *slog.Logger) (*Audit, error) {
	var (
		sink    audit.Store
		cleanup = func() {}
	)
	if len(cfg.KafkaBrokers) > 0 {
		kafka, err := kafkastore.New(cfg.KafkaBrokers, cfg.Topic)
		if err != nil {
			return nil, err
		}
		if err := kafka.EnsureTopic(ctx); err != nil {
			kafka.Close()
			return nil, err
		}
		logger.InfoContext(ctx, "audit events go to kafka", "topic", cfg.Topic)
		sink, cleanup = kafka, kafka.Close
	} else {
		sink = auditmemory.NewInMemoryStore(auditmemory.WithCapacity(cfg.MemoryCapacity))
	}

	publisher := audit.NewPublisher(cfg.BufferSize, audit.WithLogger(logger))
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	a := &Audit{
		Publisher: publisher,
		done:      make(chan struct{}),
		cancel:    cancel,
		cleanup:   cleanup,
	}
	w := worker.NewWorker(sink, publisher.Events(), logger)
	go func() {
		defer close(a.done)
		if err := w.Run(runCtx); err != nil && runCtx.Err() == nil {
			logger.ErrorContext(runCtx, "audit worker stopped", "error", err)
		}
	}()
	return a, nil
}

// Stop closes the publisher and waits for the worker to drain it, up to
// ctx's deadline.
func (a *Audit) Stop(ctx context.Context) {
	a.Publisher.Close()
	select {
	case <-a.done:
	case <-ctx.Done():
		a.cancel()
		<-a.done
	}
	a.cancel()
	a.cleanup()
}
