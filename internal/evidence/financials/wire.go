package financials

import (
	"bytes"
	"encoding/json"
)

// filing mirrors one Regnskapsregisteret filing. Every group and every leaf
// is optional, and a value of the wrong JSON type reads as absent.
type filing struct {
	ID                  leaf[int64]      `json:"id"`
	Journalnr           leaf[string]     `json:"journalnr"`
	Valuta              leaf[string]     `json:"valuta"`
	Oppstillingsplan    leaf[string]     `json:"oppstillingsplan"`
	Avviklingsregnskap  leaf[bool]       `json:"avviklingsregnskap"`
	Regnskapstype       leaf[string]     `json:"regnskapstype"`
	Regnskapsperiode    leaf[period]     `json:"regnskapsperiode"`
	Virksomhet          leaf[business]   `json:"virksomhet"`
	Regnkapsprinsipper  leaf[principles] `json:"regnkapsprinsipper"`
	Regnskapsprinsipper leaf[principles] `json:"regnskapsprinsipper"`
	Resultat            leaf[result]     `json:"resultatregnskapResultat"`
	EgenkapitalGjeld    leaf[equityDebt] `json:"egenkapitalGjeld"`
	Eiendeler           leaf[assets]     `json:"eiendeler"`
}

type period struct {
	FraDato leaf[string] `json:"fraDato"`
	TilDato leaf[string] `json:"tilDato"`
}

type business struct {
	Organisasjonsnummer leaf[string] `json:"organisasjonsnummer"`
	Organisasjonsform   leaf[string] `json:"organisasjonsform"`
	Morselskap          leaf[bool]   `json:"morselskap"`
	AntallAnsatte       leaf[int64]  `json:"antallAnsatte"`
}

type principles struct {
	SmaaForetak     leaf[bool]   `json:"smaaForetak"`
	Regnskapsregler leaf[string] `json:"regnskapsregler"`
}

type result struct {
	Driftsresultat                       leaf[operatingResult] `json:"driftsresultat"`
	Finansresultat                       leaf[financeResult]   `json:"finansresultat"`
	OrdinaertResultatFoerSkattekostnad   leaf[float64]         `json:"ordinaertResultatFoerSkattekostnad"`
	OrdinaertResultatSkattekostnad       leaf[float64]         `json:"ordinaertResultatSkattekostnad"`
	EkstraordinaerePoster                leaf[float64]         `json:"ekstraordinaerePoster"`
	SkattekostnadEkstraordinaertResultat leaf[float64]         `json:"skattekostnadEkstraordinaertResultat"`
	Aarsresultat                         leaf[float64]         `json:"aarsresultat"`
	Totalresultat                        leaf[float64]         `json:"totalresultat"`
}

type operatingResult struct {
	Driftsresultat  leaf[float64]         `json:"driftsresultat"`
	Driftsinntekter leaf[operatingIncome] `json:"driftsinntekter"`
	Driftskostnad   leaf[operatingCost]   `json:"driftskostnad"`
}

type operatingIncome struct {
	Salgsinntekter     leaf[float64] `json:"salgsinntekter"`
	SumDriftsinntekter leaf[float64] `json:"sumDriftsinntekter"`
}

type operatingCost struct {
	Loennskostnad    leaf[float64] `json:"loennskostnad"`
	SumDriftskostnad leaf[float64] `json:"sumDriftskostnad"`
}

type financeResult struct {
	NettoFinans   leaf[float64]       `json:"nettoFinans"`
	Finansinntekt leaf[financeIncome] `json:"finansinntekt"`
	Finanskostnad leaf[financeCost]   `json:"finanskostnad"`
}

type financeIncome struct {
	SumFinansinntekter leaf[float64] `json:"sumFinansinntekter"`
}

type financeCost struct {
	RentekostnadSammeKonsern leaf[float64] `json:"rentekostnadSammeKonsern"`
	AnnenRentekostnad        leaf[float64] `json:"annenRentekostnad"`
	SumFinanskostnad         leaf[float64] `json:"sumFinanskostnad"`
}

type equityDebt struct {
	SumEgenkapitalGjeld leaf[float64] `json:"sumEgenkapitalGjeld"`
	Egenkapital         leaf[equity]  `json:"egenkapital"`
	GjeldOversikt       leaf[debt]    `json:"gjeldOversikt"`
}

type equity struct {
	SumEgenkapital      leaf[float64]  `json:"sumEgenkapital"`
	InnskuttEgenkapital leaf[paidIn]   `json:"innskuttEgenkapital"`
	OpptjentEgenkapital leaf[retained] `json:"opptjentEgenkapital"`
}

type paidIn struct {
	// upstream spelling
	SumInnskuttEgenkapital leaf[float64] `json:"sumInnskuttEgenkaptial"`
}

type retained struct {
	SumOpptjentEgenkapital leaf[float64] `json:"sumOpptjentEgenkapital"`
}

type debt struct {
	SumGjeld        leaf[float64]   `json:"sumGjeld"`
	KortsiktigGjeld leaf[shortTerm] `json:"kortsiktigGjeld"`
	LangsiktigGjeld leaf[longTerm]  `json:"langsiktigGjeld"`
}

type shortTerm struct {
	SumKortsiktigGjeld leaf[float64] `json:"sumKortsiktigGjeld"`
}

type longTerm struct {
	SumLangsiktigGjeld leaf[float64] `json:"sumLangsiktigGjeld"`
}

type assets struct {
	SumEiendeler               leaf[float64]       `json:"sumEiendeler"`
	Omloepsmidler              leaf[currentAssets] `json:"omloepsmidler"`
	Anleggsmidler              leaf[fixedAssets]   `json:"anleggsmidler"`
	SumVarer                   leaf[float64]       `json:"sumVarer"`
	SumFordringer              leaf[float64]       `json:"sumFordringer"`
	SumInvesteringer           leaf[float64]       `json:"sumInvesteringer"`
	SumBankinnskuddOgKontanter leaf[float64]       `json:"sumBankinnskuddOgKontanter"`
	Goodwill                   leaf[float64]       `json:"goodwill"`
}

type currentAssets struct {
	SumOmloepsmidler leaf[float64] `json:"sumOmloepsmidler"`
}

type fixedAssets struct {
	SumAnleggsmidler leaf[float64] `json:"sumAnleggsmidler"`
}

// filings accepts either a single filing object or a list of filings.
type filings []filing

func (f *filings) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*f = nil
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []filing
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return err
		}
		*f = list
		return nil
	}
	var single filing
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return err
	}
	*f = filings{single}
	return nil
}

// leaf is one optional value in a filing. Null, absent and mistyped values
// all leave it unset.
type leaf[T any] struct {
	v *T
}

func (l *leaf[T]) UnmarshalJSON(data []byte) error {
	*l = leaf[T]{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	l.v = &v
	return nil
}

func (l leaf[T]) get() *T {
	return l.v
}
