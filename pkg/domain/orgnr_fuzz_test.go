package domain

import (
	"testing"
)

// FuzzParseOrgNumber checks that parsing never panics and that accepted
// values always round-trip.
func FuzzParseOrgNumber(f *testing.F) {
	f.Add("")
	f.Add("984851006")
	f.Add("000000000")
	f.Add("not-a-number")
	f.Add("'; DROP TABLE companies;--")
	f.Add(string([]byte{0x00, 0x01, 0x02}))
	f.Add("984851006\x00suffix")

	f.Fuzz(func(t *testing.T, input string) {
		orgnr, err := ParseOrgNumber(input)
		if err != nil {
			return
		}
		if len(orgnr.String()) != orgNumberLength {
			t.Errorf("accepted value has length %d", len(orgnr.String()))
		}
		roundTrip, err := ParseOrgNumber(orgnr.String())
		if err != nil {
			t.Errorf("valid orgnr failed round-trip: %v", err)
		}
		if roundTrip != orgnr {
			t.Error("round-trip changed value")
		}
	})
}
