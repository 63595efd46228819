package parsing

import (
	"regexp"
	"strings"
)

var (
	emailRe    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	linkedInRe = regexp.MustCompile(`(?i)(?:https?://)?(?:[a-z]{2,3}\.)?linkedin\.com/in/([A-Za-z0-9_%-]+)`)

	// phonePatterns are tried in order; the first valid match wins
	phonePatterns = []*regexp.Regexp{
		// Explicit country code followed by an unbroken subscriber number
		regexp.MustCompile(`(?:^|[^\d+])(\+\d{1,3}\s\d{8,12})(?:[^\d]|$)`),
		// US-style 3-3-4 grouping with optional country code and parentheses
		regexp.MustCompile(`(?:^|[^\d(+])((?:\+?1[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4})(?:[^\d]|$)`),
		// Bare international number, 10 to 12 digits
		regexp.MustCompile(`(?:^|[^\d+])(\+?\d{10,12})(?:[^\d]|$)`),
	}

	// yearRangeRe flags candidates such as "2019-2023" or "20152019" that are date ranges
	yearRangeRe = regexp.MustCompile(`(?:19|20)\d{2}\D{0,3}(?:19|20)\d{2}`)
)

// ExtractEmail returns the first email address in the text, or "".
func ExtractEmail(text string) string {
	return emailRe.FindString(text)
}

// ExtractPhone returns the first phone number in the text that is not a year range, or "".
func ExtractPhone(text string) string {
	for _, pattern := range phonePatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			candidate := strings.TrimSpace(match[1])
			if yearRangeRe.MatchString(candidate) {
				continue
			}
			return candidate
		}
	}
	return ""
}

// ExtractLinkedIn returns the candidate's LinkedIn profile URL in canonical https form, or "".
func ExtractLinkedIn(text string) string {
	match := linkedInRe.FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	return "https://www.linkedin.com/in/" + strings.TrimRight(match[1], "-")
}
