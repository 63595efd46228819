// Package ingestion turns raw document text into the normalized text the extractors work on.
package ingestion

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	inlineSpaceRe    = regexp.MustCompile(`[ \t]+`)
	excessBlankRe    = regexp.MustCompile(`\n\n\n+`)
	characterReplace = strings.NewReplacer(
		"\u00a0", " ", // non-breaking space
		"\u2007", " ",
		"\u202f", " ",
		"\u200b", "", // zero-width space
		"\u200c", "",
		"\u200d", "",
		"\ufeff", "", // byte order mark
		"\u2018", "'",
		"\u2019", "'",
		"\u201c", `"`,
		"\u201d", `"`,
		"\u2013", "-",
		"\u2014", "-",
		"\u2212", "-",
		"\u2022", "-", // bullet
		"\u25cf", "-",
		"\u25aa", "-",
		"\u00b7", "-",
		"\uf0b7", "-", // private-use bullet emitted by PDF extractors
	)
)

// CleanText cleans and normalizes document text while preserving line structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// 1. Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	// 2. Fold typographic characters onto plain ASCII equivalents
	content = NormalizeCharacters(content)

	// 3. Process each line
	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	// 4. Remove excessive blank lines (max 2 consecutive)
	result := excessBlankRe.ReplaceAllString(strings.Join(cleanedLines, "\n"), "\n\n")

	return strings.TrimSpace(result)
}

// NormalizeCharacters replaces typographic quotes, dashes, bullets and invisible characters,
// and drops remaining control characters other than newline and tab.
func NormalizeCharacters(content string) string {
	content = characterReplace.Replace(content)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			return -1
		}
		return r
	}, content)
}

// cleanLine collapses inline whitespace and trims the line
func cleanLine(line string) string {
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}
	return inlineSpaceRe.ReplaceAllString(line, " ")
}

// CollapseWhitespace joins all whitespace runs, newlines included, into single spaces.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
