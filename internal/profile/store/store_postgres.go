package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"broker/internal/profile/models"
	"broker/pkg/domain"
	"broker/pkg/platform/sentinel"
)

const companiesSchema = `
CREATE TABLE IF NOT EXISTS companies (
	id                   BIGSERIAL PRIMARY KEY,
	orgnr                VARCHAR(9) NOT NULL UNIQUE,
	name                 TEXT,
	legal_form_code      VARCHAR(10),
	municipality         VARCHAR(100),
	country              VARCHAR(50),
	industry_code        VARCHAR(20),
	industry_description VARCHAR(255),
	fiscal_year          INTEGER,
	operating_revenue    DOUBLE PRECISION,
	equity               DOUBLE PRECISION,
	total_assets         DOUBLE PRECISION,
	equity_ratio         DOUBLE PRECISION,
	risk_score           INTEGER,
	risk_reasons         TEXT[],
	statement_raw        JSONB,
	screening_raw        JSONB,
	updated_at           TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_companies_name ON companies (name);
`

const upsertCompany = `
INSERT INTO companies (
	orgnr, name, legal_form_code, municipality, country, industry_code,
	industry_description, fiscal_year, operating_revenue, equity, total_assets,
	equity_ratio, risk_score, risk_reasons, statement_raw, screening_raw, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
ON CONFLICT (orgnr) DO UPDATE SET
	name = EXCLUDED.name,
	legal_form_code = EXCLUDED.legal_form_code,
	municipality = EXCLUDED.municipality,
	country = EXCLUDED.country,
	industry_code = EXCLUDED.industry_code,
	industry_description = EXCLUDED.industry_description,
	fiscal_year = EXCLUDED.fiscal_year,
	operating_revenue = EXCLUDED.operating_revenue,
	equity = EXCLUDED.equity,
	total_assets = EXCLUDED.total_assets,
	equity_ratio = EXCLUDED.equity_ratio,
	risk_score = EXCLUDED.risk_score,
	risk_reasons = EXCLUDED.risk_reasons,
	statement_raw = EXCLUDED.statement_raw,
	screening_raw = EXCLUDED.screening_raw,
	updated_at = EXCLUDED.updated_at
`

const selectCompany = `
SELECT orgnr, name, legal_form_code, municipality, country, industry_code,
	industry_description, fiscal_year, operating_revenue, equity, total_assets,
	equity_ratio, risk_score, risk_reasons, statement_raw, screening_raw, updated_at
FROM companies
WHERE orgnr = $1
`

// PostgresStore persists company records in the companies table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore constructs a PostgreSQL-backed profile store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the companies table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, companiesSchema); err != nil {
		return fmt.Errorf("ensure companies schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Upsert(ctx context.Context, record *models.CompanyRecord) error {
	if record == nil {
		return fmt.Errorf("company record is required")
	}
	_, err := s.db.ExecContext(ctx, upsertCompany,
		record.OrgNumber,
		nullString(record.Name),
		nullString(record.LegalFormCode),
		nullString(record.Municipality),
		nullString(record.Country),
		nullString(record.IndustryCode),
		nullString(record.IndustryDescription),
		record.FiscalYear,
		record.OperatingRevenue,
		record.Equity,
		record.TotalAssets,
		record.EquityRatio,
		record.RiskScore,
		pq.Array(record.RiskReasons),
		nullJSON(record.StatementRaw),
		nullJSON(record.ScreeningRaw),
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert company: %w", err)
	}
	return nil
}

func (s *PostgresStore) Find(ctx context.Context, orgnr domain.OrgNumber) (*models.CompanyRecord, error) {
	var (
		record                                 models.CompanyRecord
		name, legalForm, municipality, country sql.NullString
		industryCode, industryDescription      sql.NullString
		statementRaw, screeningRaw             []byte
	)
	err := s.db.QueryRowContext(ctx, selectCompany, orgnr.String()).Scan(
		&record.OrgNumber,
		&name,
		&legalForm,
		&municipality,
		&country,
		&industryCode,
		&industryDescription,
		&record.FiscalYear,
		&record.OperatingRevenue,
		&record.Equity,
		&record.TotalAssets,
		&record.EquityRatio,
		&record.RiskScore,
		pq.Array(&record.RiskReasons),
		&statementRaw,
		&screeningRaw,
		&record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find company: %w", err)
	}
	record.Name = name.String
	record.LegalFormCode = legalForm.String
	record.Municipality = municipality.String
	record.Country = country.String
	record.IndustryCode = industryCode.String
	record.IndustryDescription = industryDescription.String
	record.StatementRaw = statementRaw
	record.ScreeningRaw = screeningRaw
	return &record, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// nullJSON passes JSON as text so lib/pq does not encode it as bytea.
func nullJSON(raw []byte) sql.NullString {
	return sql.NullString{String: string(raw), Valid: len(raw) > 0}
}
