package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"broker/internal/evidence/entities"
	"broker/internal/evidence/financials"
)

func ptr(v float64) *float64 { return &v }

func TestDerive(t *testing.T) {
	t.Run("scenario A: AS with high turnover and low equity ratio", func(t *testing.T) {
		a := Derive(
			entities.EntitySummary{LegalFormCode: "AS"},
			financials.FinancialStatement{
				OperatingRevenue: ptr(150_000_000),
				Equity:           ptr(5_000_000),
				TotalAssets:      ptr(100_000_000),
			},
		)

		assert.Equal(t, 4, a.Score)
		assert.Equal(t, []string{ReasonLimitedLiability, ReasonHighTurnover, ReasonLowEquityRatio}, a.Reasons)
		require.NotNil(t, a.EquityRatio)
		assert.InDelta(t, 0.05, *a.EquityRatio, 1e-12)
	})

	t.Run("scenario B: ENK with small turnover and no assets", func(t *testing.T) {
		a := Derive(
			entities.EntitySummary{LegalFormCode: "ENK"},
			financials.FinancialStatement{
				OperatingRevenue: ptr(5_000_000),
				TotalAssets:      ptr(0),
			},
		)

		assert.Equal(t, 0, a.Score)
		assert.Equal(t, []string{}, a.Reasons)
		assert.Nil(t, a.EquityRatio)
	})

	t.Run("empty statement scores only legal form", func(t *testing.T) {
		a := Derive(entities.EntitySummary{LegalFormCode: "ASA"}, financials.FinancialStatement{})

		assert.Equal(t, 1, a.Score)
		assert.Equal(t, []string{ReasonLimitedLiability}, a.Reasons)
		assert.Nil(t, a.EquityRatio)
	})

	t.Run("missing equity counts as zero when assets exist", func(t *testing.T) {
		a := Derive(entities.EntitySummary{}, financials.FinancialStatement{TotalAssets: ptr(1_000)})

		require.NotNil(t, a.EquityRatio)
		assert.Equal(t, 0.0, *a.EquityRatio)
		assert.Equal(t, []string{ReasonLowEquityRatio}, a.Reasons)
	})

	t.Run("reasons follow evaluation order for every combination", func(t *testing.T) {
		tests := []struct {
			name    string
			form    string
			revenue float64
			equity  float64
			assets  float64
			score   int
			reasons []string
		}{
			{"medium turnover", "DA", 20_000_000, 50, 100, 1, []string{ReasonMediumTurnover}},
			{"turnover boundary is exclusive", "DA", 10_000_000, 50, 100, 0, []string{}},
			{"high turnover boundary is exclusive", "DA", 100_000_000, 50, 100, 1, []string{ReasonMediumTurnover}},
			{"negative equity", "AS", 0, -10, 100, 3, []string{ReasonLimitedLiability, ReasonNegativeEquity}},
			{"ratio exactly 20% is fine", "AS", 0, 20, 100, 1, []string{ReasonLimitedLiability}},
			{"everything fires", "ASA", 200_000_000, -1, 100, 5, []string{ReasonLimitedLiability, ReasonHighTurnover, ReasonNegativeEquity}},
			{"negative assets", "NUF", 0, 10, -100, 2, []string{ReasonNegativeEquity}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				a := Derive(
					entities.EntitySummary{LegalFormCode: tt.form},
					financials.FinancialStatement{
						OperatingRevenue: ptr(tt.revenue),
						Equity:           ptr(tt.equity),
						TotalAssets:      ptr(tt.assets),
					},
				)
				assert.Equal(t, tt.score, a.Score)
				assert.Equal(t, tt.reasons, a.Reasons)
			})
		}
	})

	t.Run("is deterministic", func(t *testing.T) {
		entity := entities.EntitySummary{LegalFormCode: "AS"}
		statement := financials.FinancialStatement{OperatingRevenue: ptr(50_000_000), Equity: ptr(1), TotalAssets: ptr(3)}

		first := Derive(entity, statement)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, Derive(entity, statement))
		}
	})
}
