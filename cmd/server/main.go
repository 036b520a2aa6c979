package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"broker/internal/bootstrap"
	"broker/internal/platform/config"
	"broker/internal/platform/httpserver"
	"broker/internal/platform/logger"
	"broker/internal/platform/middleware"
	"broker/internal/profile"
	"broker/internal/profile/handler"
	"broker/internal/profile/metrics"
	"broker/pkg/platform/middleware/requestid"
	"broker/pkg/platform/middleware/requesttime"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal packages.
func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	profileStore, closeStore, err := bootstrap.NewProfileStore(ctx, cfg.Store, log)
	if err != nil {
		log.Error("failed to initialise profile store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	auditPipeline, err := bootstrap.StartAudit(ctx, cfg.Audit, log)
	if err != nil {
		log.Error("failed to start audit pipeline", "error", err)
		os.Exit(1)
	}

	upstreams := bootstrap.NewUpstreams(cfg, log)
	svc, err := upstreams.NewService(
		profile.WithLogger(log),
		profile.WithMetrics(metrics.New()),
		profile.WithStore(profileStore),
		profile.WithAuditPublisher(auditPipeline.Publisher),
		profile.WithEvidenceTimeout(cfg.Upstreams.Timeout),
	)
	if err != nil {
		log.Error("failed to build profile service", "error", err)
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(middleware.RequestLogger(log))
	handler.New(svc, upstreams.Breakers, log).Register(r)
	r.Handle("/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Addr, r)

	go func() {
		log.Info("starting broker", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	auditPipeline.Stop(shutdownCtx)
	log.Info("broker stopped")
}
