package entities

// EntitySummary is the compact, normalized view of one registered legal
// entity. Missing upstream fields are empty strings.
type EntitySummary struct {
	OrgNumber           string `json:"orgnr"`
	Name                string `json:"name"`
	LegalForm           string `json:"legal_form"`
	LegalFormCode       string `json:"legal_form_code"`
	Municipality        string `json:"municipality"`
	PostalCode          string `json:"postal_code"`
	Country             string `json:"country"`
	IndustryCode        string `json:"industry_code"`
	IndustryDescription string `json:"industry_description"`
}

// SearchQuery filters a free-text name search.
type SearchQuery struct {
	Name             string
	MunicipalityCode string
	Size             int
}

// enheterResponse is the HAL envelope returned by the entity registry.
type enheterResponse struct {
	Embedded *struct {
		Enheter  []rawEntity `json:"enheter"`
		Entities []rawEntity `json:"entities"`
	} `json:"_embedded"`
}

func (r enheterResponse) items() []rawEntity {
	if r.Embedded == nil {
		return nil
	}
	if len(r.Embedded.Enheter) > 0 {
		return r.Embedded.Enheter
	}
	return r.Embedded.Entities
}

type rawEntity struct {
	Organisasjonsnummer string           `json:"organisasjonsnummer"`
	Navn                string           `json:"navn"`
	Organisasjonsform   *codeDescription `json:"organisasjonsform"`
	Forretningsadresse  *address         `json:"forretningsadresse"`
	Naeringskode1       *codeDescription `json:"naeringskode1"`
}

type codeDescription struct {
	Kode        string `json:"kode"`
	Beskrivelse string `json:"beskrivelse"`
}

type address struct {
	Kommune    string `json:"kommune"`
	Postnummer string `json:"postnummer"`
	Land       string `json:"land"`
}
