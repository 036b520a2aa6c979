package dashboard

import (
	"strconv"
	"strings"
)

// Placeholder shown for absent figures.
const Placeholder = "–"

// FormatMNOK renders an amount in millions of NOK with one decimal and a
// space as thousands separator, e.g. 1234567890 -> "1 234.6 MNOK".
func FormatMNOK(value *float64) string {
	if value == nil {
		return Placeholder
	}
	return groupThousands(strconv.FormatFloat(*value/1_000_000, 'f', 1, 64)) + " MNOK"
}

// FormatRatio renders a fraction as a percentage with one decimal.
func FormatRatio(ratio *float64) string {
	if ratio == nil {
		return Placeholder
	}
	return groupThousands(strconv.FormatFloat(*ratio*100, 'f', 1, 64)) + " %"
}

func formatOptional(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}

// groupThousands inserts a space every three digits of the integer part of
// a decimal string produced by strconv.FormatFloat.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	if len(intPart) <= 3 {
		return sign + s
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return sign + b.String()
}
