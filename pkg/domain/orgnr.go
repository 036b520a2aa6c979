package domain

import (
	"strings"

	dErrors "broker/pkg/domain-errors"
)

// OrgNumber is a Norwegian organisation number: exactly nine ASCII digits.
// It is the join key across registry, financial, license and screening data.
type OrgNumber string

const orgNumberLength = 9

// ParseOrgNumber validates s at a trust boundary. Surrounding whitespace is
// trimmed; inner spaces are rejected.
func ParseOrgNumber(s string) (OrgNumber, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "orgnr is required")
	}
	if len(s) != orgNumberLength {
		return "", dErrors.New(dErrors.CodeInvalidInput, "orgnr must be 9 digits")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", dErrors.New(dErrors.CodeInvalidInput, "orgnr must be 9 digits")
		}
	}
	return OrgNumber(s), nil
}

// String returns the nine-digit representation.
func (o OrgNumber) String() string {
	return string(o)
}

// IsNil reports whether the organisation number is empty.
func (o OrgNumber) IsNil() bool {
	return o == ""
}
