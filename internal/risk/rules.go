// Package risk derives a simple additive risk score from registry and
// financial statement data.
package risk

import (
	"broker/internal/evidence/entities"
	"broker/internal/evidence/financials"
)

// Reason strings, listed in evaluation order.
const (
	ReasonLimitedLiability = "Limited liability company (AS/ASA)"
	ReasonHighTurnover     = "High turnover (>100 MNOK)"
	ReasonMediumTurnover   = "Medium turnover (>10 MNOK)"
	ReasonNegativeEquity   = "Negative equity"
	ReasonLowEquityRatio   = "Low equity ratio (<20%)"
)

const (
	highTurnover   = 100_000_000
	mediumTurnover = 10_000_000
	lowEquityRatio = 0.2
)

// Assessment is the outcome of the rule chain. EquityRatio is nil when total
// assets are absent or zero.
type Assessment struct {
	Score       int      `json:"score"`
	Reasons     []string `json:"reasons"`
	EquityRatio *float64 `json:"equity_ratio"`
}

// Derive applies the rule chain to an entity and its statement.
// This is pure domain logic - no I/O, no side effects.
// Missing numeric fields count as zero for scoring only.
// Rule order (reasons follow it):
//  1. Legal form AS/ASA: +1
//  2. Turnover above 100 MNOK: +2, else above 10 MNOK: +1
//  3. Equity ratio below zero: +2, else below 20%: +1
func Derive(entity entities.EntitySummary, statement financials.FinancialStatement) Assessment {
	a := Assessment{Reasons: []string{}}

	// Rule 1: limited liability
	if entity.LegalFormCode == "AS" || entity.LegalFormCode == "ASA" {
		a.add(1, ReasonLimitedLiability)
	}

	// Rule 2: size by turnover, only the higher tier fires
	revenue := valueOrZero(statement.OperatingRevenue)
	switch {
	case revenue > highTurnover:
		a.add(2, ReasonHighTurnover)
	case revenue > mediumTurnover:
		a.add(1, ReasonMediumTurnover)
	}

	// Rule 3: solvency
	equity := valueOrZero(statement.Equity)
	assets := valueOrZero(statement.TotalAssets)
	if assets != 0 {
		ratio := equity / assets
		a.EquityRatio = &ratio
		switch {
		case ratio < 0:
			a.add(2, ReasonNegativeEquity)
		case ratio < lowEquityRatio:
			a.add(1, ReasonLowEquityRatio)
		}
	}

	return a
}

func (a *Assessment) add(points int, reason string) {
	a.Score += points
	a.Reasons = append(a.Reasons, reason)
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
