package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/candidate-scorer/internal/ingestion"
)

const (
	summarySectionChars  = 300
	summaryFallbackChars = 200
)

var summaryHeaderRe = regexp.MustCompile(`(?i)\b(?:professional summary|summary|profile|objective|about me)\b\s*[:\-]?`)

// ExtractSummary returns the text following the first summary-style header, or the opening
// of the document when no header is present.
func ExtractSummary(text string) string {
	if loc := summaryHeaderRe.FindStringIndex(text); loc != nil {
		if section := truncateRunes(ingestion.CollapseWhitespace(text[loc[1]:]), summarySectionChars); section != "" {
			return section
		}
	}
	return truncateRunes(ingestion.CollapseWhitespace(text), summaryFallbackChars)
}

// truncateRunes cuts s to at most limit runes without splitting a character
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimSpace(string(runes[:limit]))
}
