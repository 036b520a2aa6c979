// Package profile composes registry, financial, screening and license
// lookups into broker profiles.
package profile

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks EntityLookup,StatementLookup,LicenseLookup,ScreeningLookup,Store,AuditPublisher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"broker/internal/evidence/entities"
	"broker/internal/evidence/financials"
	"broker/internal/evidence/licenses"
	"broker/internal/evidence/screening"
	"broker/internal/profile/metrics"
	"broker/internal/profile/models"
	"broker/internal/risk"
	"broker/pkg/domain"
	dErrors "broker/pkg/domain-errors"
	audit "broker/pkg/platform/audit"
	"broker/pkg/platform/sentinel"
	"broker/pkg/requestcontext"
)

const defaultEvidenceTimeout = 10 * time.Second

// EntityLookup searches and resolves registered legal entities.
type EntityLookup interface {
	Search(ctx context.Context, q entities.SearchQuery) ([]entities.EntitySummary, error)
	Get(ctx context.Context, orgnr domain.OrgNumber) (*entities.EntitySummary, error)
}

// StatementLookup returns the latest flattened financial statement, or nil.
type StatementLookup interface {
	GetLatest(ctx context.Context, orgnr domain.OrgNumber) (*financials.FinancialStatement, error)
}

// LicenseLookup returns one record per license held.
type LicenseLookup interface {
	Get(ctx context.Context, orgnr domain.OrgNumber) ([]licenses.LicenseRecord, error)
}

// ScreeningLookup matches a name against PEP and sanctions lists.
type ScreeningLookup interface {
	Screen(ctx context.Context, name string) (*screening.ScreeningResult, error)
}

// Store keeps the last computed profile per organisation.
type Store interface {
	Upsert(ctx context.Context, record *models.CompanyRecord) error
	Find(ctx context.Context, orgnr domain.OrgNumber) (*models.CompanyRecord, error)
}

// AuditPublisher receives audit events. Emission never fails a request.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service builds broker profiles.
type Service struct {
	entities        EntityLookup
	statements      StatementLookup
	licenses        LicenseLookup
	screening       ScreeningLookup
	store           Store
	auditor         AuditPublisher
	logger          *slog.Logger
	metrics         *metrics.Metrics
	evidenceTimeout time.Duration
}

// Option configures the Service.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithStore enables write-back of computed profiles and the cached read.
func WithStore(store Store) Option {
	return func(s *Service) {
		s.store = store
	}
}

func WithAuditPublisher(p AuditPublisher) Option {
	return func(s *Service) {
		s.auditor = p
	}
}

// WithEvidenceTimeout bounds the concurrent statement and screening lookups.
func WithEvidenceTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.evidenceTimeout = d
		}
	}
}

func New(
	entityLookup EntityLookup,
	statements StatementLookup,
	licenseLookup LicenseLookup,
	screener ScreeningLookup,
	opts ...Option,
) (*Service, error) {
	if entityLookup == nil {
		return nil, errors.New("entity lookup is required")
	}
	if statements == nil {
		return nil, errors.New("statement lookup is required")
	}
	if licenseLookup == nil {
		return nil, errors.New("license lookup is required")
	}
	if screener == nil {
		return nil, errors.New("screening lookup is required")
	}

	s := &Service{
		entities:        entityLookup,
		statements:      statements,
		licenses:        licenseLookup,
		screening:       screener,
		logger:          slog.Default(),
		evidenceTimeout: defaultEvidenceTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Search returns candidate entities for a free-text name.
func (s *Service) Search(ctx context.Context, q entities.SearchQuery) ([]entities.EntitySummary, error) {
	q.Name = strings.TrimSpace(q.Name)
	if q.Name == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "name is required")
	}

	start := time.Now()
	results, err := s.entities.Search(ctx, q)
	s.metrics.ObserveEvidenceLatency("entity", time.Since(start))
	if err != nil {
		s.logger.ErrorContext(ctx, "entity search failed",
			"name", q.Name,
			"error", err,
		)
		return nil, dErrors.Wrap(err, dErrors.CodeBadGateway, "entity registry unavailable")
	}

	s.emit(ctx, audit.Event{
		Subject:  q.Name,
		Action:   string(audit.EventSearchPerformed),
		Decision: fmt.Sprintf("results=%d", len(results)),
	})
	return results, nil
}

// Profile resolves the entity and assembles its composite profile. Only the
// entity lookup can fail the request; statement and screening failures
// degrade into absent sections.
func (s *Service) Profile(ctx context.Context, orgnr domain.OrgNumber) (*models.Profile, error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveProfileLatency(time.Since(start))
	}()

	entity, err := s.lookupEntity(ctx, orgnr)
	if err != nil {
		return nil, err
	}

	evidence := s.gatherEvidence(ctx, orgnr, entity.Name)

	var assessment *risk.Assessment
	if evidence.Statement != nil {
		a := risk.Derive(*entity, *evidence.Statement)
		assessment = &a
		s.metrics.ObserveRiskScore(a.Score)
	}

	profile := &models.Profile{
		Entity:    *entity,
		Statement: evidence.Statement,
		Risk:      assessment,
		Screening: evidence.Screening,
		Summary:   BuildSummary(*entity, evidence.Statement, assessment, evidence.Screening),
	}
	s.metrics.IncrementOutcome("ok")

	s.writeBack(ctx, profile)
	s.emit(ctx, profileEvent(orgnr, assessment))
	return profile, nil
}

// Licenses returns the licenses held by orgnr. Upstream failures propagate.
func (s *Service) Licenses(ctx context.Context, orgnr domain.OrgNumber) ([]licenses.LicenseRecord, error) {
	start := time.Now()
	records, err := s.licenses.Get(ctx, orgnr)
	s.metrics.ObserveEvidenceLatency("licenses", time.Since(start))
	if err != nil {
		s.logger.ErrorContext(ctx, "license lookup failed",
			"orgnr", orgnr,
			"error", err,
		)
		return nil, dErrors.Wrap(err, dErrors.CodeBadGateway, "license registry unavailable")
	}

	s.emit(ctx, audit.Event{
		Subject:  orgnr.String(),
		Action:   string(audit.EventLicensesFetched),
		Decision: fmt.Sprintf("licenses=%d", len(records)),
	})
	return records, nil
}

// Cached returns the last stored profile record for orgnr.
func (s *Service) Cached(ctx context.Context, orgnr domain.OrgNumber) (*models.CompanyRecord, error) {
	if s.store == nil {
		return nil, dErrors.Wrap(sentinel.ErrNotFound, dErrors.CodeNotFound, "no cached profile")
	}
	record, err := s.store.Find(ctx, orgnr)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Wrap(err, dErrors.CodeNotFound, "no cached profile")
		}
		s.logger.ErrorContext(ctx, "failed to read cached profile",
			"orgnr", orgnr,
			"error", err,
		)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read cached profile")
	}
	return record, nil
}

func (s *Service) lookupEntity(ctx context.Context, orgnr domain.OrgNumber) (*entities.EntitySummary, error) {
	start := time.Now()
	entity, err := s.entities.Get(ctx, orgnr)
	s.metrics.ObserveEvidenceLatency("entity", time.Since(start))

	if err != nil {
		s.metrics.IncrementOutcome("upstream_error")
		s.logger.ErrorContext(ctx, "entity lookup failed",
			"orgnr", orgnr,
			"error", err,
		)
		return nil, dErrors.Wrap(err, dErrors.CodeBadGateway, "entity registry unavailable")
	}
	if entity == nil {
		s.metrics.IncrementOutcome("not_found")
		return nil, dErrors.Wrap(sentinel.ErrNotFound, dErrors.CodeNotFound, "organisation not found")
	}
	return entity, nil
}

func (s *Service) writeBack(ctx context.Context, profile *models.Profile) {
	if s.store == nil {
		return
	}
	record, err := models.NewCompanyRecord(profile, requestcontext.Now(ctx))
	if err == nil {
		err = s.store.Upsert(ctx, record)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "failed to persist company record",
			"orgnr", profile.Entity.OrgNumber,
			"error", err,
		)
	}
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditor == nil {
		return
	}
	event.RequestID = requestcontext.RequestID(ctx)
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event",
			"action", event.Action,
			"error", err,
		)
	}
}

func profileEvent(orgnr domain.OrgNumber, assessment *risk.Assessment) audit.Event {
	event := audit.Event{
		Subject:  orgnr.String(),
		Action:   string(audit.EventProfileComputed),
		Decision: "no_statement",
	}
	if assessment != nil {
		event.Decision = fmt.Sprintf("risk_score=%d", assessment.Score)
		event.Reason = strings.Join(assessment.Reasons, "; ")
	}
	return event
}
