package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/candidate-scorer/internal/types"
)

var (
	// requiredYearsPatterns are tried in order against the job description
	requiredYearsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s+(?:of\s+)?experience`),
		regexp.MustCompile(`(?i)minimum\s+of\s+(\d+)\s+years?`),
		regexp.MustCompile(`(?i)at\s+least\s+(\d+)\s+years?`),
	}

	requiredDegreePatterns = []struct {
		tier    DegreeTier
		pattern *regexp.Regexp
	}{
		{TierPhD, regexp.MustCompile(`(?i)\b(?:ph\.?\s?d|doctorate)\b`)},
		{TierMaster, regexp.MustCompile(`(?i)\b(?:master'?s?|mba)\b`)},
		{TierBachelor, regexp.MustCompile(`(?i)\b(?:bachelor'?s?|degree)\b`)},
	}
)

// ParseJobRequirement derives the experience and degree requirements from a job description.
func ParseJobRequirement(description, title string) *types.JobRequirement {
	return &types.JobRequirement{
		Title:          strings.TrimSpace(title),
		Description:    description,
		RequiredYears:  ExtractRequiredYears(description),
		RequiredDegree: strings.ToLower(DegreeLabel(ExtractRequiredDegree(description))),
	}
}

// ExtractRequiredYears returns the first stated years-of-experience requirement, or nil.
func ExtractRequiredYears(description string) *float64 {
	for _, pattern := range requiredYearsPatterns {
		match := pattern.FindStringSubmatch(description)
		if match == nil {
			continue
		}
		years, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			continue
		}
		return &years
	}
	return nil
}

// ExtractRequiredDegree returns the highest degree tier the description mentions.
// A bare mention of "degree" counts as a bachelor's requirement.
func ExtractRequiredDegree(description string) DegreeTier {
	for _, candidate := range requiredDegreePatterns {
		if candidate.pattern.MatchString(description) {
			return candidate.tier
		}
	}
	return TierNone
}
