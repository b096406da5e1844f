// Package normalize turns raw source text into canonical comparable values.
// Every cross-source match runs through these functions, so they must agree
// with what the catalog import stored.
package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Text collapses all whitespace variants (including non-breaking space) to
// single ascii spaces, applies Unicode compatibility composition and trims.
// Empty input stays empty.
func Text(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFKC.String(s)
	s = strings.ReplaceAll(s, " ", " ")
	s = whitespaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Position upper-cases and maps defense aliases to the canonical DEF code.
// Unknown values pass through unchanged.
func Position(s string) string {
	p := strings.ToUpper(Text(s))
	switch p {
	case "DST", "D/ST", "D-ST", "DEFENSE":
		return "DEF"
	}
	return p
}

// teamAliases resolves historical or alternate franchise abbreviations to the
// codes the Sleeper catalog uses. Unmapped codes pass through unchanged, so
// the table only needs the known cross-site differences plus their identity
// entries.
var teamAliases = map[string]string{
	"JAX": "JAC",
	"WSH": "WAS",
	"LA":  "LAR",
	"STL": "LAR",
	"SD":  "LAC",
	"OAK": "LV",
	"NOR": "NO",
	"NEP": "NE",
	"GBP": "GB",
	"SFO": "SF",
	"KCC": "KC",
	"TB":  "TB",
	"NO":  "NO",
	"JAC": "JAC",
	"WAS": "WAS",
	"LV":  "LV",
	"LAC": "LAC",
	"LAR": "LAR",
	"SF":  "SF",
	"KC":  "KC",
	"GB":  "GB",
	"NE":  "NE",
}

// Team upper-cases then applies the franchise alias table. The table is a
// total function: codes it does not know are returned as-is.
func Team(s string) string {
	t := strings.ToUpper(Text(s))
	if canonical, ok := teamAliases[t]; ok {
		return canonical
	}
	return t
}

// CleanFloat treats empty string, a lone dash and not-a-number sentinels as
// absent; anything else parses as a float, absent on parse failure. It never
// fails loudly: one malformed cell must not abort a whole batch.
func CleanFloat(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || s == "-" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// CleanInt composes CleanFloat with truncation.
func CleanInt(raw string) (int, bool) {
	f, ok := CleanFloat(raw)
	if !ok {
		return 0, false
	}
	return int(f), true
}
