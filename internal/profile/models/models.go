package models

import (
	"encoding/json"
	"fmt"
	"time"

	"broker/internal/evidence/entities"
	"broker/internal/evidence/financials"
	"broker/internal/evidence/screening"
	"broker/internal/risk"
)

// Profile pairs an entity with everything derived from it. Statement,
// Risk and Screening are nil when the data is absent or its lookup failed;
// Risk is only computed when a statement exists.
type Profile struct {
	Entity    entities.EntitySummary         `json:"org"`
	Statement *financials.FinancialStatement `json:"regnskap"`
	Risk      *risk.Assessment               `json:"risk"`
	Screening *screening.ScreeningResult     `json:"screening"`
	Summary   RiskSummary                    `json:"summary"`
}

// RiskSummary is the flat card shown by the dashboard. It is recomputed on
// every request and never stored as the source of truth.
type RiskSummary struct {
	OrgNumber           string   `json:"orgnr"`
	Name                string   `json:"name"`
	LegalForm           string   `json:"legal_form"`
	LegalFormCode       string   `json:"legal_form_code"`
	Municipality        string   `json:"municipality"`
	PostalCode          string   `json:"postal_code"`
	Country             string   `json:"country"`
	IndustryCode        string   `json:"industry_code"`
	IndustryDescription string   `json:"industry_description"`
	FiscalYear          *int     `json:"fiscal_year"`
	OperatingRevenue    *float64 `json:"operating_revenue"`
	AnnualResult        *float64 `json:"annual_result"`
	Equity              *float64 `json:"equity"`
	TotalAssets         *float64 `json:"total_assets"`
	EquityRatio         *float64 `json:"equity_ratio"`
	RiskScore           *int     `json:"risk_score"`
	RiskReasons         []string `json:"risk_reasons"`
	ScreeningHits       *int     `json:"screening_hits"`
}

// CompanyRecord is the last computed profile of an organisation as kept by
// the profile store.
type CompanyRecord struct {
	OrgNumber           string          `json:"orgnr"`
	Name                string          `json:"name"`
	LegalFormCode       string          `json:"legal_form_code"`
	Municipality        string          `json:"municipality"`
	Country             string          `json:"country"`
	IndustryCode        string          `json:"industry_code"`
	IndustryDescription string          `json:"industry_description"`
	FiscalYear          *int            `json:"fiscal_year"`
	OperatingRevenue    *float64        `json:"operating_revenue"`
	Equity              *float64        `json:"equity"`
	TotalAssets         *float64        `json:"total_assets"`
	EquityRatio         *float64        `json:"equity_ratio"`
	RiskScore           *int            `json:"risk_score"`
	RiskReasons         []string        `json:"risk_reasons"`
	StatementRaw        json.RawMessage `json:"statement_raw,omitempty"`
	ScreeningRaw        json.RawMessage `json:"screening_raw,omitempty"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// NewCompanyRecord snapshots a profile for persistence.
func NewCompanyRecord(p *Profile, now time.Time) (*CompanyRecord, error) {
	record := &CompanyRecord{
		OrgNumber:           p.Entity.OrgNumber,
		Name:                p.Entity.Name,
		LegalFormCode:       p.Entity.LegalFormCode,
		Municipality:        p.Entity.Municipality,
		Country:             p.Entity.Country,
		IndustryCode:        p.Entity.IndustryCode,
		IndustryDescription: p.Entity.IndustryDescription,
		FiscalYear:          p.Summary.FiscalYear,
		OperatingRevenue:    p.Summary.OperatingRevenue,
		Equity:              p.Summary.Equity,
		TotalAssets:         p.Summary.TotalAssets,
		EquityRatio:         p.Summary.EquityRatio,
		RiskScore:           p.Summary.RiskScore,
		RiskReasons:         p.Summary.RiskReasons,
		UpdatedAt:           now,
	}
	if p.Statement != nil {
		raw, err := json.Marshal(p.Statement)
		if err != nil {
			return nil, fmt.Errorf("marshal statement: %w", err)
		}
		record.StatementRaw = raw
	}
	if p.Screening != nil {
		raw, err := json.Marshal(p.Screening)
		if err != nil {
			return nil, fmt.Errorf("marshal screening: %w", err)
		}
		record.ScreeningRaw = raw
	}
	return record, nil
}
