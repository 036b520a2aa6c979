// Package dashboard renders broker profiles for the terminal.
package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"broker/internal/evidence/entities"
	"broker/internal/evidence/financials"
	"broker/internal/evidence/licenses"
	"broker/internal/evidence/screening"
	"broker/internal/profile/models"
	"broker/internal/risk"
)

const (
	NoRiskFactorsText = "No specific risk factors identified by the simple model."
	NoStatementText   = "No open financial statements available for this organisation."
	NoLicensesText    = "No licenses registered."
	NoScreeningText   = "Screening unavailable."
	NoHitsText        = "No screening hits."
)

type row struct {
	label string
	value *float64
}

func profitAndLossRows(s *financials.FinancialStatement) []row {
	return []row{
		{"Sales revenue", s.SalesRevenue},
		{"Total operating income", s.OperatingRevenue},
		{"Wage costs", s.PayrollExpenses},
		{"Total operating costs", s.OperatingExpenses},
		{"Operating result", s.OperatingResult},
		{"Financial income", s.FinancialIncome},
		{"Financial costs", s.FinancialExpenses},
		{"Net financials", s.NetFinancialResult},
		{"Ordinary result before tax", s.OrdinaryResultBeforeTax},
		{"Tax cost (ordinary)", s.OrdinaryResultTax},
		{"Extraordinary items", s.ExtraordinaryItems},
		{"Tax on extraordinary result", s.ExtraordinaryResultTax},
		{"Annual result", s.AnnualResult},
		{"Total result", s.TotalResult},
	}
}

func balanceRows(s *financials.FinancialStatement) []row {
	return []row{
		{"Total assets", s.TotalAssets},
		{"Current assets", s.CurrentAssets},
		{"Fixed assets", s.FixedAssets},
		{"Inventory", s.Inventory},
		{"Receivables", s.Receivables},
		{"Investments", s.Investments},
		{"Cash and bank", s.CashAndBank},
		{"Goodwill", s.Goodwill},
		{"Equity", s.Equity},
		{"Paid-in equity", s.PaidInEquity},
		{"Retained earnings", s.RetainedEarnings},
		{"Total debt", s.TotalLiabilities},
		{"Short-term debt", s.CurrentLiabilities},
		{"Long-term debt", s.LongTermLiabilities},
	}
}

// RenderProfile renders the organisation, its key figures and statement
// tables, the risk assessment, screening hits and licenses.
func RenderProfile(p *models.Profile, records []licenses.LicenseRecord) string {
	if p == nil {
		return ""
	}
	sections := []string{renderOrganisation(p.Entity)}

	if p.Statement != nil && p.Statement.FiscalYear != nil {
		sections = append(sections,
			renderKeyFigures(p.Statement, p.Risk),
			lipgloss.JoinHorizontal(lipgloss.Top,
				renderTable("Profit and loss", profitAndLossRows(p.Statement)),
				"  ",
				renderTable("Balance sheet", balanceRows(p.Statement)),
			),
			renderRisk(p.Risk),
		)
	} else {
		sections = append(sections, mutedStyle.Render(NoStatementText))
	}

	sections = append(sections, renderScreening(p.Screening), RenderLicenses(records))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// RenderSearch renders one line per search candidate.
func RenderSearch(results []entities.EntitySummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d results\n", len(results))
	for _, r := range results {
		fmt.Fprintf(&b, "%s - %s (%s) [%s, %s] %s %s %s\n",
			codeStyle.Render(r.OrgNumber),
			valueStyle.Bold(true).Render(r.Name),
			formatOptional(r.LegalFormCode),
			formatOptional(r.Municipality),
			formatOptional(r.PostalCode),
			Placeholder,
			formatOptional(r.IndustryCode),
			r.IndustryDescription,
		)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderOrganisation(e entities.EntitySummary) string {
	lines := []string{
		titleStyle.Render(e.Name) + " " + labelStyle.Render(fmt.Sprintf("(%s) orgnr %s", formatOptional(e.LegalFormCode), e.OrgNumber)),
		fmt.Sprintf("%s %s, %s", formatOptional(e.Municipality), e.PostalCode, formatOptional(e.Country)),
		labelStyle.Render("Industry: ") + fmt.Sprintf("%s %s", formatOptional(e.IndustryCode), e.IndustryDescription),
	}
	return boxStyle.Render(headingStyle.Render("Organisation") + "\n" + strings.Join(lines, "\n"))
}

func renderKeyFigures(s *financials.FinancialStatement, a *risk.Assessment) string {
	var ratio *float64
	if a != nil {
		ratio = a.EquityRatio
	}
	metric := func(label, value string) string {
		return metricStyle.Render(labelStyle.Render(label) + "\n" + valueStyle.Bold(true).Render(value))
	}
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		metric("Turnover", FormatMNOK(s.OperatingRevenue)),
		metric("Net result", FormatMNOK(s.AnnualResult)),
		metric("Equity", FormatMNOK(s.Equity)),
		metric("Equity ratio", FormatRatio(ratio)),
	)
	return headingStyle.Render(fmt.Sprintf("Key figures (%d)", *s.FiscalYear)) + "\n" + cards
}

func renderTable(title string, rows []row) string {
	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(r.label))
	}
	labelCol := lipgloss.NewStyle().Width(labelWidth + 2)
	valueCol := lipgloss.NewStyle().Width(16).Align(lipgloss.Right)

	lines := []string{
		labelCol.Inherit(tableHeaderStyle).Render("Metric") + valueCol.Inherit(tableHeaderStyle).Render("Value"),
	}
	for _, r := range rows {
		value := valueStyle
		if r.value != nil && *r.value < 0 {
			value = negativeStyle
		}
		lines = append(lines, labelCol.Inherit(labelStyle).Render(r.label)+valueCol.Inherit(value).Render(FormatMNOK(r.value)))
	}
	return boxStyle.Render(headingStyle.Render(title) + "\n" + strings.Join(lines, "\n"))
}

func renderRisk(a *risk.Assessment) string {
	score := 0
	var reasons []string
	if a != nil {
		score = a.Score
		reasons = a.Reasons
	}
	lines := []string{
		headingStyle.Render("Simple risk assessment"),
		"Score: " + scoreStyle(score).Render(fmt.Sprintf("%d", score)),
	}
	if len(reasons) == 0 {
		lines = append(lines, mutedStyle.Render(NoRiskFactorsText))
	}
	for _, reason := range reasons {
		lines = append(lines, "- "+reason)
	}
	return strings.Join(lines, "\n")
}

func renderScreening(result *screening.ScreeningResult) string {
	lines := []string{headingStyle.Render("Screening")}
	switch {
	case result == nil:
		lines = append(lines, mutedStyle.Render(NoScreeningText))
	case result.HitCount == 0:
		lines = append(lines, okStyle.Render(NoHitsText))
	default:
		lines = append(lines, hitStyle.Render(fmt.Sprintf("%d hit(s) for %q", result.HitCount, result.Query)))
		for _, hit := range result.Hits {
			tags := strings.Join(append(append([]string{}, hit.Topics...), hit.Datasets...), ", ")
			lines = append(lines, fmt.Sprintf("- %s (%s, similarity %.2f) %s",
				hit.Name, formatOptional(hit.Schema), hit.Similarity, labelStyle.Render(tags)))
		}
	}
	return strings.Join(lines, "\n")
}

// RenderLicenses renders one line per license.
func RenderLicenses(records []licenses.LicenseRecord) string {
	lines := []string{headingStyle.Render("Licenses")}
	if len(records) == 0 {
		lines = append(lines, mutedStyle.Render(NoLicensesText))
	}
	for _, r := range records {
		lines = append(lines, fmt.Sprintf("- %s [%s] %s to %s",
			deref(r.Type), deref(r.Status), deref(r.ValidFrom), deref(r.ValidTo)))
	}
	return strings.Join(lines, "\n")
}

func deref(s *string) string {
	if s == nil {
		return Placeholder
	}
	return formatOptional(*s)
}
