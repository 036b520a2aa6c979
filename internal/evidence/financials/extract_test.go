package financials

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filingFor(t *testing.T, raw string) filing {
	t.Helper()
	var f filing
	require.NoError(t, json.Unmarshal([]byte(raw), &f))
	return f
}

func TestYearKey(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"iso date", `{"regnskapsperiode":{"tilDato":"2022-12-31"}}`, 2022},
		{"year only", `{"regnskapsperiode":{"tilDato":"2019"}}`, 2019},
		{"too short", `{"regnskapsperiode":{"tilDato":"202"}}`, 0},
		{"not numeric", `{"regnskapsperiode":{"tilDato":"abcd-12-31"}}`, 0},
		{"missing date", `{"regnskapsperiode":{}}`, 0},
		{"missing period", `{}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, yearKey(filingFor(t, tt.raw)))
		})
	}
}

func TestSelectLatest(t *testing.T) {
	t.Run("empty list has no statement", func(t *testing.T) {
		_, ok := selectLatest(nil)
		assert.False(t, ok)
	})

	t.Run("picks 2022 over 2021 in either order", func(t *testing.T) {
		y2021 := filingFor(t, `{"id":1,"regnskapsperiode":{"tilDato":"2021-12-31"}}`)
		y2022 := filingFor(t, `{"id":2,"regnskapsperiode":{"tilDato":"2022-12-31"}}`)

		for _, order := range [][]filing{{y2021, y2022}, {y2022, y2021}} {
			chosen, ok := selectLatest(order)
			require.True(t, ok)
			assert.Equal(t, int64(2), *chosen.ID.get())
		}
	})

	t.Run("is order independent", func(t *testing.T) {
		fs := []filing{
			filingFor(t, `{"id":1,"regnskapsperiode":{"tilDato":"2018-12-31"}}`),
			filingFor(t, `{"id":2,"regnskapsperiode":{"tilDato":"bogus"}}`),
			filingFor(t, `{"id":3,"regnskapsperiode":{"tilDato":"2023-12-31"}}`),
			filingFor(t, `{"id":4}`),
			filingFor(t, `{"id":5,"regnskapsperiode":{"tilDato":"2020-06-30"}}`),
		}
		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 20; i++ {
			rng.Shuffle(len(fs), func(a, b int) { fs[a], fs[b] = fs[b], fs[a] })
			chosen, ok := selectLatest(fs)
			require.True(t, ok)
			assert.Equal(t, int64(3), *chosen.ID.get())
		}
	})

	t.Run("ties keep the last in input order", func(t *testing.T) {
		fs := []filing{
			filingFor(t, `{"id":1,"regnskapsperiode":{"tilDato":"2022-12-31"}}`),
			filingFor(t, `{"id":2,"regnskapsperiode":{"tilDato":"2022-06-30"}}`),
		}
		chosen, _ := selectLatest(fs)
		assert.Equal(t, int64(2), *chosen.ID.get())
	})

	t.Run("all unparsable still returns the last", func(t *testing.T) {
		fs := []filing{
			filingFor(t, `{"id":1}`),
			filingFor(t, `{"id":2,"regnskapsperiode":{"tilDato":"n/a"}}`),
			filingFor(t, `{"id":3,"regnskapsperiode":{}}`),
		}
		chosen, ok := selectLatest(fs)
		require.True(t, ok)
		assert.Equal(t, int64(3), *chosen.ID.get())
	})

	t.Run("does not reorder the caller's slice", func(t *testing.T) {
		fs := []filing{
			filingFor(t, `{"id":1,"regnskapsperiode":{"tilDato":"2023-12-31"}}`),
			filingFor(t, `{"id":2,"regnskapsperiode":{"tilDato":"2021-12-31"}}`),
		}
		_, _ = selectLatest(fs)
		assert.Equal(t, int64(1), *fs[0].ID.get())
	})
}

func TestFlatten(t *testing.T) {
	t.Run("missing groups leave every field nil", func(t *testing.T) {
		statement := flatten(filing{})
		assert.Equal(t, FinancialStatement{}, statement)
	})

	t.Run("maps nested groups", func(t *testing.T) {
		f := filingFor(t, `{
			"id": 123,
			"journalnr": "2023123456",
			"valuta": "NOK",
			"oppstillingsplan": "store",
			"avviklingsregnskap": false,
			"regnskapstype": "SELSKAP",
			"regnskapsperiode": {"fraDato": "2022-01-01", "tilDato": "2022-12-31"},
			"virksomhet": {"organisasjonsnummer": "923609016", "organisasjonsform": "ASA", "morselskap": true, "antallAnsatte": 21000},
			"regnkapsprinsipper": {"smaaForetak": false, "regnskapsregler": "IFRS"},
			"resultatregnskapResultat": {
				"ordinaertResultatFoerSkattekostnad": 900,
				"aarsresultat": 400,
				"totalresultat": 410,
				"driftsresultat": {
					"driftsresultat": 1000,
					"driftsinntekter": {"salgsinntekter": 140, "sumDriftsinntekter": 150},
					"driftskostnad": {"loennskostnad": 20, "sumDriftskostnad": 50}
				},
				"finansresultat": {
					"nettoFinans": -100,
					"finansinntekt": {"sumFinansinntekter": 10},
					"finanskostnad": {"annenRentekostnad": 30, "sumFinanskostnad": 110}
				}
			},
			"egenkapitalGjeld": {
				"sumEgenkapitalGjeld": 1000,
				"egenkapital": {
					"sumEgenkapital": 300,
					"innskuttEgenkapital": {"sumInnskuttEgenkaptial": 100},
					"opptjentEgenkapital": {"sumOpptjentEgenkapital": 200}
				},
				"gjeldOversikt": {
					"sumGjeld": 700,
					"kortsiktigGjeld": {"sumKortsiktigGjeld": 250},
					"langsiktigGjeld": {"sumLangsiktigGjeld": 450}
				}
			},
			"eiendeler": {
				"sumEiendeler": 1000,
				"omloepsmidler": {"sumOmloepsmidler": 400},
				"anleggsmidler": {"sumAnleggsmidler": 600},
				"sumVarer": 50,
				"sumFordringer": 150,
				"sumBankinnskuddOgKontanter": 200,
				"goodwill": 5
			}
		}`)

		s := flatten(f)

		require.NotNil(t, s.FiscalYear)
		assert.Equal(t, 2022, *s.FiscalYear)
		assert.Equal(t, "2022-01-01", *s.PeriodFrom)
		assert.Equal(t, "NOK", *s.Currency)
		assert.False(t, *s.IsLiquidation)
		assert.Equal(t, int64(123), *s.FilingID)
		assert.Equal(t, "2023123456", *s.JournalNumber)
		assert.Equal(t, int64(21000), *s.Employees)
		assert.True(t, *s.ParentCompany)
		assert.Equal(t, "IFRS", *s.AccountingRules)
		assert.Equal(t, 150.0, *s.OperatingRevenue)
		assert.Equal(t, 20.0, *s.PayrollExpenses)
		assert.Equal(t, 1000.0, *s.OperatingResult)
		assert.Equal(t, -100.0, *s.NetFinancialResult)
		assert.Nil(t, s.GroupInterestExpenses)
		assert.Equal(t, 400.0, *s.AnnualResult)
		assert.Equal(t, 300.0, *s.Equity)
		assert.Equal(t, 100.0, *s.PaidInEquity)
		assert.Equal(t, 450.0, *s.LongTermLiabilities)
		assert.Equal(t, 1000.0, *s.TotalAssets)
		assert.Equal(t, 5.0, *s.Goodwill)
		assert.Nil(t, s.Investments)
	})

	t.Run("accepts corrected principles spelling", func(t *testing.T) {
		s := flatten(filingFor(t, `{"regnskapsprinsipper": {"smaaForetak": true}}`))
		require.NotNil(t, s.SmallEnterprise)
		assert.True(t, *s.SmallEnterprise)
	})

	t.Run("unparsable period end leaves fiscal year nil", func(t *testing.T) {
		s := flatten(filingFor(t, `{"regnskapsperiode":{"tilDato":"unknown"}}`))
		assert.Nil(t, s.FiscalYear)
		assert.Equal(t, "unknown", *s.PeriodTo)
	})

	t.Run("mistyped values read as absent", func(t *testing.T) {
		s := flatten(filingFor(t, `{
			"id": "x-1",
			"valuta": 578,
			"virksomhet": {"antallAnsatte": 12.5, "morselskap": "ja"},
			"eiendeler": {"sumEiendeler": "1000", "goodwill": 5},
			"egenkapitalGjeld": [1, 2]
		}`))
		assert.Nil(t, s.FilingID)
		assert.Nil(t, s.Currency)
		assert.Nil(t, s.Employees)
		assert.Nil(t, s.ParentCompany)
		assert.Nil(t, s.TotalAssets)
		assert.Nil(t, s.Equity)
		require.NotNil(t, s.Goodwill)
		assert.Equal(t, 5.0, *s.Goodwill)
	})
}

func TestFilingsUnmarshal(t *testing.T) {
	t.Run("single object", func(t *testing.T) {
		var fs filings
		require.NoError(t, json.Unmarshal([]byte(`{"id": 7}`), &fs))
		require.Len(t, fs, 1)
		assert.Equal(t, int64(7), *fs[0].ID.get())
	})

	t.Run("list", func(t *testing.T) {
		var fs filings
		require.NoError(t, json.Unmarshal([]byte(` [{"id": 1}, {"id": 2}]`), &fs))
		assert.Len(t, fs, 2)
	})

	t.Run("empty list", func(t *testing.T) {
		var fs filings
		require.NoError(t, json.Unmarshal([]byte(`[]`), &fs))
		assert.Empty(t, fs)
	})

	t.Run("malformed", func(t *testing.T) {
		var fs filings
		assert.Error(t, json.Unmarshal([]byte(`"text"`), &fs))
	})
}
