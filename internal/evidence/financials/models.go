package financials

// FinancialStatement is the flattened view of the latest filing for an
// entity. Every field is optional: nil means the filing did not report it.
type FinancialStatement struct {
	// Period metadata
	FiscalYear    *int    `json:"fiscal_year"`
	PeriodFrom    *string `json:"period_from"`
	PeriodTo      *string `json:"period_to"`
	Currency      *string `json:"currency"`
	LayoutPlan    *string `json:"layout_plan"`
	IsLiquidation *bool   `json:"is_liquidation"`
	StatementType *string `json:"statement_type"`
	FilingID      *int64  `json:"filing_id"`
	JournalNumber *string `json:"journal_number"`

	// Business and accounting principles
	BusinessOrgNumber *string `json:"business_orgnr"`
	BusinessLegalForm *string `json:"business_legal_form"`
	ParentCompany     *bool   `json:"parent_company"`
	Employees         *int64  `json:"employees"`
	SmallEnterprise   *bool   `json:"small_enterprise"`
	AccountingRules   *string `json:"accounting_rules"`

	// Income statement
	SalesRevenue            *float64 `json:"sales_revenue"`
	OperatingRevenue        *float64 `json:"operating_revenue"`
	PayrollExpenses         *float64 `json:"payroll_expenses"`
	OperatingExpenses       *float64 `json:"operating_expenses"`
	OperatingResult         *float64 `json:"operating_result"`
	FinancialIncome         *float64 `json:"financial_income"`
	GroupInterestExpenses   *float64 `json:"group_interest_expenses"`
	OtherInterestExpenses   *float64 `json:"other_interest_expenses"`
	FinancialExpenses       *float64 `json:"financial_expenses"`
	NetFinancialResult      *float64 `json:"net_financial_result"`
	OrdinaryResultBeforeTax *float64 `json:"ordinary_result_before_tax"`
	OrdinaryResultTax       *float64 `json:"ordinary_result_tax"`
	ExtraordinaryItems      *float64 `json:"extraordinary_items"`
	ExtraordinaryResultTax  *float64 `json:"extraordinary_result_tax"`
	AnnualResult            *float64 `json:"annual_result"`
	TotalResult             *float64 `json:"total_result"`

	// Balance sheet
	TotalEquityAndLiabilities *float64 `json:"total_equity_and_liabilities"`
	Equity                    *float64 `json:"equity"`
	PaidInEquity              *float64 `json:"paid_in_equity"`
	RetainedEarnings          *float64 `json:"retained_earnings"`
	TotalLiabilities          *float64 `json:"total_liabilities"`
	CurrentLiabilities        *float64 `json:"current_liabilities"`
	LongTermLiabilities       *float64 `json:"long_term_liabilities"`
	TotalAssets               *float64 `json:"total_assets"`
	CurrentAssets             *float64 `json:"current_assets"`
	FixedAssets               *float64 `json:"fixed_assets"`
	Inventory                 *float64 `json:"inventory"`
	Receivables               *float64 `json:"receivables"`
	Investments               *float64 `json:"investments"`
	CashAndBank               *float64 `json:"cash_and_bank"`
	Goodwill                  *float64 `json:"goodwill"`
}
