package dashboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"broker/internal/evidence/entities"
	"broker/internal/evidence/financials"
	"broker/internal/evidence/licenses"
	"broker/internal/evidence/screening"
	"broker/internal/profile/models"
	"broker/internal/risk"
)

func entity() entities.EntitySummary {
	return entities.EntitySummary{
		OrgNumber:           "923609016",
		Name:                "EQUINOR ASA",
		LegalFormCode:       "ASA",
		Municipality:        "STAVANGER",
		PostalCode:          "4035",
		Country:             "Norge",
		IndustryCode:        "06.100",
		IndustryDescription: "Utvinning av råolje",
	}
}

func TestRenderProfile(t *testing.T) {
	t.Run("with statement", func(t *testing.T) {
		year := 2023
		statement := &financials.FinancialStatement{
			FiscalYear:       &year,
			OperatingRevenue: ptr(150_000_000),
			AnnualResult:     ptr(-2_500_000),
			Equity:           ptr(5_000_000),
			TotalAssets:      ptr(100_000_000),
		}
		assessment := risk.Derive(entity(), *statement)
		licenseType, status := "Insurance broker", "Active"

		out := RenderProfile(&models.Profile{
			Entity:    entity(),
			Statement: statement,
			Risk:      &assessment,
			Screening: &screening.ScreeningResult{Query: "EQUINOR ASA", HitCount: 0, Hits: []screening.ScreeningHit{}},
		}, []licenses.LicenseRecord{{Type: &licenseType, Status: &status}})

		for _, want := range []string{
			"EQUINOR ASA",
			"orgnr 923609016",
			"Key figures (2023)",
			"150.0 MNOK",
			"-2.5 MNOK",
			"5.0 %",
			"Profit and loss",
			"Balance sheet",
			"Tax on extraordinary result",
			"Long-term debt",
			"Score: 4",
			"- High turnover (>100 MNOK)",
			NoHitsText,
			"Insurance broker [Active]",
		} {
			assert.Contains(t, out, want)
		}
		assert.NotContains(t, out, NoStatementText)
		assert.NotContains(t, out, NoRiskFactorsText)
	})

	t.Run("without statement", func(t *testing.T) {
		out := RenderProfile(&models.Profile{Entity: entity()}, nil)

		assert.Contains(t, out, NoStatementText)
		assert.Contains(t, out, NoScreeningText)
		assert.Contains(t, out, NoLicensesText)
		assert.NotContains(t, out, "Profit and loss")
	})

	t.Run("statement without risk factors", func(t *testing.T) {
		year := 2022
		e := entity()
		e.LegalFormCode = "ENK"
		statement := &financials.FinancialStatement{FiscalYear: &year}
		assessment := risk.Derive(e, *statement)

		out := RenderProfile(&models.Profile{Entity: e, Statement: statement, Risk: &assessment}, nil)

		assert.Contains(t, out, "Score: 0")
		assert.Contains(t, out, NoRiskFactorsText)
		assert.Contains(t, out, "Equity ratio")
		assert.Contains(t, out, Placeholder)
	})

	t.Run("screening hits are listed", func(t *testing.T) {
		out := RenderProfile(&models.Profile{
			Entity: entity(),
			Screening: &screening.ScreeningResult{
				Query:    "EQUINOR ASA",
				HitCount: 1,
				Hits: []screening.ScreeningHit{
					{Name: "Equinor", Schema: "Company", Topics: []string{"sanction"}, Datasets: []string{"eu_fsf"}, Similarity: 0.636},
				},
			},
		}, nil)

		assert.Contains(t, out, `1 hit(s) for "EQUINOR ASA"`)
		assert.Contains(t, out, "- Equinor (Company, similarity 0.64) sanction, eu_fsf")
	})

	t.Run("nil profile renders nothing", func(t *testing.T) {
		assert.Empty(t, RenderProfile(nil, nil))
	})
}

func TestRenderSearch(t *testing.T) {
	other := entities.EntitySummary{OrgNumber: "984851006", Name: "DNB BANK ASA"}

	out := RenderSearch([]entities.EntitySummary{entity(), other})
	lines := strings.Split(out, "\n")

	assert.Equal(t, "Found 2 results", lines[0])
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[1], "923609016 - EQUINOR ASA (ASA) [STAVANGER, 4035]")
	assert.Contains(t, lines[1], "06.100 Utvinning av råolje")
	assert.Contains(t, lines[2], "984851006 - DNB BANK ASA (–) [–, –]")
}
