package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"broker/internal/evidence/entities"
	"broker/internal/evidence/licenses"
	"broker/internal/profile/models"
	"broker/pkg/domain"
	"broker/pkg/platform/circuit"
	"broker/pkg/platform/httputil"
	"broker/pkg/requestcontext"
)

// Service defines the profile operations exposed over HTTP.
type Service interface {
	Search(ctx context.Context, q entities.SearchQuery) ([]entities.EntitySummary, error)
	Profile(ctx context.Context, orgnr domain.OrgNumber) (*models.Profile, error)
	Licenses(ctx context.Context, orgnr domain.OrgNumber) ([]licenses.LicenseRecord, error)
	Cached(ctx context.Context, orgnr domain.OrgNumber) (*models.CompanyRecord, error)
}

// Handler wires broker endpoints to the profile service.
type Handler struct {
	service  Service
	breakers []*circuit.Breaker
	logger   *slog.Logger
}

// New constructs a profile handler. breakers are reported by /health.
func New(service Service, breakers []*circuit.Breaker, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		service:  service,
		breakers: breakers,
		logger:   logger,
	}
}

// Register mounts broker endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/ping", h.HandlePing)
	r.Get("/health", h.HandleHealth)
	r.Get("/search", h.HandleSearch)
	r.Route("/org/{orgnr}", func(r chi.Router) {
		r.Get("/", h.HandleProfile)
		r.Get("/summary", h.HandleSummary)
		r.Get("/licenses", h.HandleLicenses)
		r.Get("/cached", h.HandleCached)
	})
}

// HandlePing handles GET /ping.
func (h *Handler) HandlePing(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// HandleHealth reports upstream breaker states. It always answers 200 so
// that a degraded upstream does not take the service out of rotation.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, toHealthResponse(h.breakers))
}

// HandleSearch handles GET /search.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, err := ParseSearchRequest(r.URL.Query())
	if err != nil {
		h.logger.WarnContext(ctx, "invalid search request",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	results, err := h.service.Search(ctx, req.Query())
	if err != nil {
		h.logger.ErrorContext(ctx, "search failed",
			"request_id", requestID,
			"name", req.Name,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toSearchResponse(req.Name, results))
}

// HandleProfile handles GET /org/{orgnr}.
func (h *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.profile(w, r)
	if !ok {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, profile)
}

// HandleSummary handles GET /org/{orgnr}/summary.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.profile(w, r)
	if !ok {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, profile.Summary)
}

// HandleLicenses handles GET /org/{orgnr}/licenses.
func (h *Handler) HandleLicenses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orgnr, ok := h.parseOrgNumber(w, r)
	if !ok {
		return
	}

	records, err := h.service.Licenses(ctx, orgnr)
	if err != nil {
		h.logger.ErrorContext(ctx, "license lookup failed",
			"request_id", requestcontext.RequestID(ctx),
			"orgnr", orgnr,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toLicensesResponse(orgnr.String(), records))
}

// HandleCached handles GET /org/{orgnr}/cached.
func (h *Handler) HandleCached(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orgnr, ok := h.parseOrgNumber(w, r)
	if !ok {
		return
	}

	record, err := h.service.Cached(ctx, orgnr)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, record)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) (*models.Profile, bool) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	orgnr, ok := h.parseOrgNumber(w, r)
	if !ok {
		return nil, false
	}

	profile, err := h.service.Profile(ctx, orgnr)
	if err != nil {
		h.logger.ErrorContext(ctx, "profile failed",
			"request_id", requestID,
			"orgnr", orgnr,
			"error", err,
		)
		httputil.WriteError(w, err)
		return nil, false
	}

	h.logger.InfoContext(ctx, "profile computed",
		"request_id", requestID,
		"orgnr", orgnr,
		"has_statement", profile.Statement != nil,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return profile, true
}

func (h *Handler) parseOrgNumber(w http.ResponseWriter, r *http.Request) (domain.OrgNumber, bool) {
	orgnr, err := domain.ParseOrgNumber(chi.URLParam(r, "orgnr"))
	if err != nil {
		httputil.WriteError(w, err)
		return "", false
	}
	return orgnr, true
}
