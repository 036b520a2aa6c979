package profile

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"broker/internal/evidence/financials"
	"broker/internal/evidence/screening"
	"broker/pkg/domain"
)

// gatheredEvidence holds the optional lookups run after the entity resolves.
type gatheredEvidence struct {
	Statement *financials.FinancialStatement
	Screening *screening.ScreeningResult
}

// gatherEvidence runs the statement and screening lookups in parallel under a
// shared deadline. Both are optional: failures are logged and become nil.
func (s *Service) gatherEvidence(ctx context.Context, orgnr domain.OrgNumber, name string) gatheredEvidence {
	ctx, cancel := context.WithTimeout(ctx, s.evidenceTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	var evidence gatheredEvidence

	// Fetch latest financial statement (optional)
	g.Go(func() error {
		start := time.Now()
		statement, err := s.statements.GetLatest(ctx, orgnr)
		s.metrics.ObserveEvidenceLatency("statement", time.Since(start))

		if err != nil {
			s.metrics.IncrementDegraded("statement")
			s.logger.WarnContext(ctx, "financial statement lookup failed",
				"orgnr", orgnr,
				"error", err,
			)
			return nil
		}
		evidence.Statement = statement
		return nil
	})

	// Screen the registered name (optional, skipped without a name)
	if strings.TrimSpace(name) != "" {
		g.Go(func() error {
			start := time.Now()
			result, err := s.screening.Screen(ctx, name)
			s.metrics.ObserveEvidenceLatency("screening", time.Since(start))

			if err != nil {
				s.metrics.IncrementDegraded("screening")
				s.logger.WarnContext(ctx, "screening lookup failed",
					"orgnr", orgnr,
					"error", err,
				)
				return nil
			}
			evidence.Screening = result
			return nil
		})
	}

	// Lookups never return errors, so Wait only synchronizes.
	_ = g.Wait()
	return evidence
}
