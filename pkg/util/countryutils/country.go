package countryutils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// frenchNameToISO2 maps French-language country names (already lowercased and
// stripped of diacritics) to their ISO 3166-1 alpha-2 code.
var frenchNameToISO2 = map[string]string{
	"algerie":     "DZ",
	"france":      "FR",
	"espagne":     "ES",
	"italie":      "IT",
	"maroc":       "MA",
	"tunisie":     "TN",
	"belgique":    "BE",
	"suisse":      "CH",
	"allemagne":   "DE",
	"royaume-uni": "GB",
	"angleterre":  "GB",
	"etats-unis":  "US",
	"usa":         "US",
	"canada":      "CA",
}

// NormalizeISO2 maps a free-text country name to a two-letter ISO country code.
//
// An empty input yields an empty string. A two-letter input is assumed to
// already be a code and is uppercased as-is. Anything else is lowercased,
// stripped of diacritics and looked up in the known-name table; unknown names
// pass through trimmed but otherwise unchanged, since the weather provider may
// still accept them.
func NormalizeISO2(country string) string {
	trimmed := strings.TrimSpace(country)
	if trimmed == "" {
		return ""
	}

	if isTwoLetterCode(trimmed) {
		return strings.ToUpper(trimmed)
	}

	key := stripDiacritics(strings.ToLower(trimmed))
	if code, ok := frenchNameToISO2[key]; ok {
		return code
	}

	return trimmed
}

func isTwoLetterCode(s string) bool {
	r := []rune(s)
	if len(r) != 2 {
		return false
	}
	return unicode.IsLetter(r[0]) && unicode.IsLetter(r[1])
}

// stripDiacritics decomposes the string and drops combining marks, so
// "algérie" and "algerie" share one lookup key.
func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}
