//go:build integration

package store_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"broker/internal/profile/models"
	"broker/internal/profile/store"
	"broker/pkg/domain"
	"broker/pkg/platform/sentinel"
	"broker/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = store.NewPostgresStore(s.postgres.DB)
	s.Require().NoError(s.store.EnsureSchema(context.Background()))
}

func (s *PostgresStoreSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(), "companies")
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) TestEnsureSchemaIsIdempotent() {
	s.NoError(s.store.EnsureSchema(context.Background()))
}

func (s *PostgresStoreSuite) TestRoundTrip() {
	ctx := context.Background()
	year, score := 2023, 4
	revenue, ratio := 150_000_000.0, 0.05
	updated := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)

	record := &models.CompanyRecord{
		OrgNumber:        "923609016",
		Name:             "EQUINOR ASA",
		LegalFormCode:    "ASA",
		Municipality:     "STAVANGER",
		Country:          "Norge",
		FiscalYear:       &year,
		OperatingRevenue: &revenue,
		EquityRatio:      &ratio,
		RiskScore:        &score,
		RiskReasons:      []string{"Limited liability company (AS/ASA)", "High turnover (>100 MNOK)"},
		StatementRaw:     json.RawMessage(`{"fiscal_year": 2023}`),
		UpdatedAt:        updated,
	}
	s.Require().NoError(s.store.Upsert(ctx, record))

	found, err := s.store.Find(ctx, domain.OrgNumber("923609016"))
	s.Require().NoError(err)
	s.Equal("EQUINOR ASA", found.Name)
	s.Equal("ASA", found.LegalFormCode)
	s.Empty(found.IndustryCode)
	s.Equal(2023, *found.FiscalYear)
	s.Equal(revenue, *found.OperatingRevenue)
	s.Nil(found.Equity)
	s.Equal(4, *found.RiskScore)
	s.Equal(record.RiskReasons, found.RiskReasons)
	s.JSONEq(`{"fiscal_year": 2023}`, string(found.StatementRaw))
	s.Nil(found.ScreeningRaw)
	s.True(updated.Equal(found.UpdatedAt))
}

func (s *PostgresStoreSuite) TestUpsertOverwrites() {
	ctx := context.Background()
	orgnr := domain.OrgNumber("984851006")

	s.Require().NoError(s.store.Upsert(ctx, &models.CompanyRecord{OrgNumber: orgnr.String(), Name: "old", UpdatedAt: time.Now()}))
	s.Require().NoError(s.store.Upsert(ctx, &models.CompanyRecord{OrgNumber: orgnr.String(), Name: "new", UpdatedAt: time.Now()}))

	found, err := s.store.Find(ctx, orgnr)
	s.Require().NoError(err)
	s.Equal("new", found.Name)
	s.Nil(found.RiskReasons)
}

// TestConcurrentUpsert verifies that concurrent upserts on the same key
// leave exactly one complete row.
func (s *PostgresStoreSuite) TestConcurrentUpsert() {
	ctx := context.Background()
	orgnr := domain.OrgNumber("915442452")
	const goroutines = 20

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			score := i
			_ = s.store.Upsert(ctx, &models.CompanyRecord{
				OrgNumber: orgnr.String(),
				Name:      "concurrent",
				RiskScore: &score,
				UpdatedAt: time.Now(),
			})
		}(i)
	}
	wg.Wait()

	var count int
	s.Require().NoError(s.postgres.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM companies WHERE orgnr = $1", orgnr.String()).Scan(&count))
	s.Equal(1, count)

	found, err := s.store.Find(ctx, orgnr)
	s.Require().NoError(err)
	s.Equal("concurrent", found.Name)
	s.NotNil(found.RiskScore)
}

func (s *PostgresStoreSuite) TestFindMissing() {
	_, err := s.store.Find(context.Background(), domain.OrgNumber("000000000"))
	s.ErrorIs(err, sentinel.ErrNotFound)
}
