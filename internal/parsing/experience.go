package parsing

import (
	"regexp"
	"strconv"
	"time"
)

const (
	maxPlausibleYears = 60
	maxCareerSpan     = 50
)

var (
	// explicitYearsPatterns match statements such as "8+ years of professional experience"
	explicitYearsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\+?\s*(?:years?|yrs?)\s+(?:of\s+)?(?:[a-z-]+\s+)?experience`),
		regexp.MustCompile(`(?i)experience\s*(?:of|:|-)?\s*(\d+(?:\.\d+)?)\+?\s*(?:years?|yrs?)`),
	}
	calendarYearRe  = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
	presentMarkerRe = regexp.MustCompile(`(?i)\b(?:present|current)\b`)
)

// ExtractExperienceYears estimates total years of experience.
// Explicit statements win; otherwise the span between the earliest and latest calendar year
// is used, with "present"/"current" extending the span to now. Spans outside (0, 50) are
// rejected because they usually come from unrelated numbers. Returns nil when unknown.
func ExtractExperienceYears(text string, now time.Time) *float64 {
	for _, pattern := range explicitYearsPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			years, err := strconv.ParseFloat(match[1], 64)
			if err != nil || years <= 0 || years > maxPlausibleYears {
				continue
			}
			return &years
		}
	}

	matches := calendarYearRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	earliest, latest := 0, 0
	for i, match := range matches {
		year, _ := strconv.Atoi(match[1])
		if i == 0 || year < earliest {
			earliest = year
		}
		if year > latest {
			latest = year
		}
	}

	if presentMarkerRe.MatchString(text) && now.Year() > latest {
		latest = now.Year()
	}

	span := latest - earliest
	if span <= 0 || span >= maxCareerSpan {
		return nil
	}

	years := float64(span)
	return &years
}
