package enrich

import (
	"strings"
	"unicode"
)

// maxAbbrevLen caps venue abbreviations.
const maxAbbrevLen = 10

// venuePriority lists the fields consulted for an abbreviation, in order.
var venuePriority = []string{"journal", "conference", "publisher"}

// Abbreviate derives a short venue tag from a venue name:
// "Institute of Electrical and Electronics Engineers" -> "IEEE".
// Any venue mentioning arXiv becomes the literal "arXiv". Returns ""
// when no abbreviation can be formed.
func Abbreviate(venue string) string {
	if venue == "" {
		return ""
	}

	if strings.Contains(strings.ToLower(venue), "arxiv") {
		return "arXiv"
	}

	var b strings.Builder
	for _, word := range strings.Fields(venue) {
		first := []rune(word)[0]
		if unicode.IsUpper(first) {
			b.WriteRune(first)
		}
	}

	abbr := []rune(b.String())
	if len(abbr) > maxAbbrevLen {
		abbr = abbr[:maxAbbrevLen]
	}
	return string(abbr)
}
