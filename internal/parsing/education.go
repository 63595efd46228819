package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/candidate-scorer/internal/ingestion"
	"github.com/jonathan/candidate-scorer/internal/types"
)

// DegreeTier orders degree levels so requirements can be compared
type DegreeTier int

// Degree tiers, lowest first
const (
	TierNone DegreeTier = iota
	TierAssociate
	TierBachelor
	TierMaster
	TierPhD
)

// Degree labels stored on education records
const (
	DegreePhD       = "PhD"
	DegreeMaster    = "Master"
	DegreeBachelor  = "Bachelor"
	DegreeAssociate = "Associate"
)

const educationContextChars = 150

// degreePatterns lists the regex variants per degree, highest tier first
var degreePatterns = []struct {
	label    string
	patterns []*regexp.Regexp
}{
	{DegreePhD, compileAll(
		`(?i)\bph\.?\s?d\b`,
		`(?i)\bdoctorate\b`,
		`(?i)\bdoctor of philosophy\b`,
	)},
	{DegreeMaster, compileAll(
		`(?i)\bmaster'?s?\b`,
		`(?i)\bm\.\s?sc?\.`,
		`(?i)\bmsc\b`,
		`(?i)\bmba\b`,
		`(?i)\bm\.?\s?tech\b`,
		`(?i)\bm\.a\.`,
	)},
	{DegreeBachelor, compileAll(
		`(?i)\bbachelor'?s?\b`,
		`(?i)\bb\.\s?sc?\.`,
		`(?i)\bbsc\b`,
		`(?i)\bb\.?\s?tech\b`,
		`(?i)\bb\.a\.`,
		`(?i)\bb\.e\.`,
	)},
	{DegreeAssociate, compileAll(
		`(?i)\bassociate'?s?\s+(?:degree|of)\b`,
	)},
}

// falseDegreePrefixes are phrases that put "master" in a job title rather than a degree
var falseDegreePrefixes = []string{"scrum ", "web", "quiz", "certified scrum "}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, pattern := range patterns {
		compiled[i] = regexp.MustCompile(pattern)
	}
	return compiled
}

// ExtractEducation returns at most one record per degree tier, highest tier first.
// Within a tier the earliest match in the text wins and supplies the context window.
func ExtractEducation(text string) []types.Education {
	education := make([]types.Education, 0)
	for _, degree := range degreePatterns {
		start := -1
		for _, pattern := range degree.patterns {
			for _, loc := range pattern.FindAllStringIndex(text, -1) {
				if degree.label == DegreeMaster && hasFalseDegreePrefix(text, loc[0]) {
					continue
				}
				if start < 0 || loc[0] < start {
					start = loc[0]
				}
				break
			}
		}
		if start < 0 {
			continue
		}
		education = append(education, types.Education{
			Degree:  degree.label,
			Context: contextWindow(text, start, educationContextChars),
		})
	}
	return education
}

func hasFalseDegreePrefix(text string, start int) bool {
	before := strings.ToLower(text[max(0, start-16):start])
	for _, prefix := range falseDegreePrefixes {
		if strings.HasSuffix(before, prefix) {
			return true
		}
	}
	return false
}

// contextWindow returns up to limit runes starting at byte offset start, whitespace-collapsed
func contextWindow(text string, start, limit int) string {
	runes := []rune(text[start:])
	if len(runes) > limit {
		runes = runes[:limit]
	}
	return ingestion.CollapseWhitespace(string(runes))
}

// DegreeTierOf maps a free-text degree label ("Masters", "B.S.", "PhD") onto a tier.
func DegreeTierOf(label string) DegreeTier {
	lower := strings.ToLower(strings.TrimSpace(label))
	if lower == "" || lower == "unknown" || lower == "none" {
		return TierNone
	}
	for _, degree := range degreePatterns {
		for _, pattern := range degree.patterns {
			if pattern.MatchString(lower) {
				return tierForLabel(degree.label)
			}
		}
	}
	switch {
	case strings.Contains(lower, "phd") || strings.Contains(lower, "doctor"):
		return TierPhD
	case strings.Contains(lower, "master") || strings.Contains(lower, "mba"):
		return TierMaster
	case strings.Contains(lower, "bachelor") || strings.HasPrefix(lower, "b."):
		return TierBachelor
	case strings.Contains(lower, "associate"):
		return TierAssociate
	}
	return TierNone
}

// HighestTier returns the highest degree tier across education records.
func HighestTier(education []types.Education) DegreeTier {
	highest := TierNone
	for _, record := range education {
		if tier := DegreeTierOf(record.Degree); tier > highest {
			highest = tier
		}
	}
	return highest
}

// DegreeLabel returns the record label for a tier, "" for TierNone.
func DegreeLabel(tier DegreeTier) string {
	switch tier {
	case TierPhD:
		return DegreePhD
	case TierMaster:
		return DegreeMaster
	case TierBachelor:
		return DegreeBachelor
	case TierAssociate:
		return DegreeAssociate
	default:
		return ""
	}
}

func tierForLabel(label string) DegreeTier {
	switch label {
	case DegreePhD:
		return TierPhD
	case DegreeMaster:
		return TierMaster
	case DegreeBachelor:
		return TierBachelor
	case DegreeAssociate:
		return TierAssociate
	default:
		return TierNone
	}
}

// String implements fmt.Stringer.
func (t DegreeTier) String() string {
	if label := DegreeLabel(t); label != "" {
		return label
	}
	return "None"
}
