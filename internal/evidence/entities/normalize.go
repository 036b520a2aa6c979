package entities

func normalize(e rawEntity) EntitySummary {
	form := orEmptyCode(e.Organisasjonsform)
	industry := orEmptyCode(e.Naeringskode1)
	addr := address{}
	if e.Forretningsadresse != nil {
		addr = *e.Forretningsadresse
	}

	return EntitySummary{
		OrgNumber:           e.Organisasjonsnummer,
		Name:                e.Navn,
		LegalForm:           form.Beskrivelse,
		LegalFormCode:       form.Kode,
		Municipality:        addr.Kommune,
		PostalCode:          addr.Postnummer,
		Country:             addr.Land,
		IndustryCode:        industry.Kode,
		IndustryDescription: industry.Beskrivelse,
	}
}

func orEmptyCode(c *codeDescription) codeDescription {
	if c == nil {
		return codeDescription{}
	}
	return *c
}
