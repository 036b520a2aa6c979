package profile

import (
	"broker/internal/evidence/entities"
	"broker/internal/evidence/financials"
	"broker/internal/evidence/screening"
	"broker/internal/profile/models"
	"broker/internal/risk"
)

// BuildSummary projects the pipeline outputs onto the flat summary card.
// Each absent input leaves its fields nil.
func BuildSummary(
	entity entities.EntitySummary,
	statement *financials.FinancialStatement,
	assessment *risk.Assessment,
	screen *screening.ScreeningResult,
) models.RiskSummary {
	summary := models.RiskSummary{
		OrgNumber:           entity.OrgNumber,
		Name:                entity.Name,
		LegalForm:           entity.LegalForm,
		LegalFormCode:       entity.LegalFormCode,
		Municipality:        entity.Municipality,
		PostalCode:          entity.PostalCode,
		Country:             entity.Country,
		IndustryCode:        entity.IndustryCode,
		IndustryDescription: entity.IndustryDescription,
	}

	if statement != nil {
		summary.FiscalYear = statement.FiscalYear
		summary.OperatingRevenue = statement.OperatingRevenue
		summary.AnnualResult = statement.AnnualResult
		summary.Equity = statement.Equity
		summary.TotalAssets = statement.TotalAssets
	}

	if assessment != nil {
		score := assessment.Score
		summary.RiskScore = &score
		summary.RiskReasons = assessment.Reasons
		summary.EquityRatio = assessment.EquityRatio
	}

	if screen != nil {
		hits := screen.HitCount
		summary.ScreeningHits = &hits
	}

	return summary
}
