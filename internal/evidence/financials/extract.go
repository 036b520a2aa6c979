package financials

import (
	"cmp"
	"slices"
	"strconv"
)

// yearKey is the period-end year of a filing, or 0 when it cannot be parsed.
func yearKey(f filing) int {
	if year, ok := periodEndYear(f); ok {
		return year
	}
	return 0
}

func periodEndYear(f filing) (int, bool) {
	p := orEmpty(f.Regnskapsperiode)
	to := p.TilDato.get()
	if to == nil || len(*to) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi((*to)[:4])
	if err != nil {
		return 0, false
	}
	return year, true
}

// selectLatest stable-sorts filings by period-end year and returns the last
// one. Filings with unparsable dates sort first.
func selectLatest(fs []filing) (filing, bool) {
	if len(fs) == 0 {
		return filing{}, false
	}
	sorted := slices.Clone(fs)
	slices.SortStableFunc(sorted, func(a, b filing) int {
		return cmp.Compare(yearKey(a), yearKey(b))
	})
	return sorted[len(sorted)-1], true
}

// flatten folds the nested filing groups into a FinancialStatement. Missing
// groups are treated as empty at every level.
func flatten(f filing) FinancialStatement {
	p := orEmpty(f.Regnskapsperiode)
	biz := orEmpty(f.Virksomhet)
	rules := f.Regnkapsprinsipper
	if rules.get() == nil {
		rules = f.Regnskapsprinsipper
	}
	principles := orEmpty(rules)

	res := orEmpty(f.Resultat)
	ops := orEmpty(res.Driftsresultat)
	opsIncome := orEmpty(ops.Driftsinntekter)
	opsCost := orEmpty(ops.Driftskostnad)
	fin := orEmpty(res.Finansresultat)
	finIncome := orEmpty(fin.Finansinntekt)
	finCost := orEmpty(fin.Finanskostnad)

	bal := orEmpty(f.EgenkapitalGjeld)
	eq := orEmpty(bal.Egenkapital)
	paid := orEmpty(eq.InnskuttEgenkapital)
	earned := orEmpty(eq.OpptjentEgenkapital)
	liab := orEmpty(bal.GjeldOversikt)
	short := orEmpty(liab.KortsiktigGjeld)
	long := orEmpty(liab.LangsiktigGjeld)

	ast := orEmpty(f.Eiendeler)
	current := orEmpty(ast.Omloepsmidler)
	fixed := orEmpty(ast.Anleggsmidler)

	var fiscalYear *int
	if year, ok := periodEndYear(f); ok {
		fiscalYear = &year
	}

	return FinancialStatement{
		FiscalYear:    fiscalYear,
		PeriodFrom:    p.FraDato.get(),
		PeriodTo:      p.TilDato.get(),
		Currency:      f.Valuta.get(),
		LayoutPlan:    f.Oppstillingsplan.get(),
		IsLiquidation: f.Avviklingsregnskap.get(),
		StatementType: f.Regnskapstype.get(),
		FilingID:      f.ID.get(),
		JournalNumber: f.Journalnr.get(),

		BusinessOrgNumber: biz.Organisasjonsnummer.get(),
		BusinessLegalForm: biz.Organisasjonsform.get(),
		ParentCompany:     biz.Morselskap.get(),
		Employees:         biz.AntallAnsatte.get(),
		SmallEnterprise:   principles.SmaaForetak.get(),
		AccountingRules:   principles.Regnskapsregler.get(),

		SalesRevenue:            opsIncome.Salgsinntekter.get(),
		OperatingRevenue:        opsIncome.SumDriftsinntekter.get(),
		PayrollExpenses:         opsCost.Loennskostnad.get(),
		OperatingExpenses:       opsCost.SumDriftskostnad.get(),
		OperatingResult:         ops.Driftsresultat.get(),
		FinancialIncome:         finIncome.SumFinansinntekter.get(),
		GroupInterestExpenses:   finCost.RentekostnadSammeKonsern.get(),
		OtherInterestExpenses:   finCost.AnnenRentekostnad.get(),
		FinancialExpenses:       finCost.SumFinanskostnad.get(),
		NetFinancialResult:      fin.NettoFinans.get(),
		OrdinaryResultBeforeTax: res.OrdinaertResultatFoerSkattekostnad.get(),
		OrdinaryResultTax:       res.OrdinaertResultatSkattekostnad.get(),
		ExtraordinaryItems:      res.EkstraordinaerePoster.get(),
		ExtraordinaryResultTax:  res.SkattekostnadEkstraordinaertResultat.get(),
		AnnualResult:            res.Aarsresultat.get(),
		TotalResult:             res.Totalresultat.get(),

		TotalEquityAndLiabilities: bal.SumEgenkapitalGjeld.get(),
		Equity:                    eq.SumEgenkapital.get(),
		PaidInEquity:              paid.SumInnskuttEgenkapital.get(),
		RetainedEarnings:          earned.SumOpptjentEgenkapital.get(),
		TotalLiabilities:          liab.SumGjeld.get(),
		CurrentLiabilities:        short.SumKortsiktigGjeld.get(),
		LongTermLiabilities:       long.SumLangsiktigGjeld.get(),
		TotalAssets:               ast.SumEiendeler.get(),
		CurrentAssets:             current.SumOmloepsmidler.get(),
		FixedAssets:               fixed.SumAnleggsmidler.get(),
		Inventory:                 ast.SumVarer.get(),
		Receivables:               ast.SumFordringer.get(),
		Investments:               ast.SumInvesteringer.get(),
		CashAndBank:               ast.SumBankinnskuddOgKontanter.get(),
		Goodwill:                  ast.Goodwill.get(),
	}
}

func orEmpty[T any](l leaf[T]) T {
	if l.v == nil {
		var zero T
		return zero
	}
	return *l.v
}
