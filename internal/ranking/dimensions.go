package ranking

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/candidate-scorer/internal/fusion"
	"github.com/jonathan/candidate-scorer/internal/parsing"
	"github.com/jonathan/candidate-scorer/internal/skills"
	"github.com/jonathan/candidate-scorer/internal/types"
)

// experienceBands score total years when the job states no requirement; first match wins
var experienceBands = []struct {
	below float64
	score float64
}{
	{1, 30},
	{2, 50},
	{4, 70},
	{7, 85},
}

// Scores relative to a stated years requirement
const (
	exceedsRequirementScore = 100.0
	meetsRequirementScore   = 95.0
	nearRequirementScore    = 75.0
	halfRequirementScore    = 50.0
	farBelowRequirement     = 20.0
	seniorExperienceScore   = 100.0
)

// educationScores when the job names no degree, keyed by the candidate's highest tier
var educationScores = map[parsing.DegreeTier]float64{
	parsing.TierPhD:      100,
	parsing.TierMaster:   90,
	parsing.TierBachelor: 80,
}

// adjacentEducationScores credit a candidate one tier below the required degree
var adjacentEducationScores = map[parsing.DegreeTier]float64{
	parsing.TierPhD:      80,
	parsing.TierMaster:   70,
	parsing.TierBachelor: 60,
}

const (
	educationMetScore     = 100.0
	educationBelowScore   = 60.0
	educationUnknownScore = 70.0
)

var keywordPattern = regexp.MustCompile(`\b\w{4,}\b`)

// keywordStopwords are four-plus letter words too common to signal a match
var keywordStopwords = map[string]bool{
	"will": true, "work": true, "with": true, "have": true,
	"this": true, "that": true, "from": true, "they": true,
	"been": true, "were": true, "your": true, "their": true,
}

// skillsScore counts candidate skills found in the job description and blends in the
// AI skills match score when one was reported.
func (s *Scorer) skillsScore(candidateSkills []string, jobDescription string, metrics fusion.Metrics) float64 {
	keyword := s.keywordSkillsScore(candidateSkills, jobDescription)
	if metrics.SkillsMatchScore == nil {
		return keyword
	}
	blend := s.cfg.Thresholds.AISkillBlend
	return clamp(*metrics.SkillsMatchScore*blend+keyword*(1-blend), 0, 100)
}

func (s *Scorer) keywordSkillsScore(candidateSkills []string, jobDescription string) float64 {
	if len(candidateSkills) == 0 {
		return 0
	}
	t := s.cfg.Thresholds
	jobLower := strings.ToLower(jobDescription)

	matched := 0
	for _, skill := range candidateSkills {
		if skills.MatchesJob(skill, jobLower) {
			matched++
		}
	}
	if matched == 0 {
		return 0
	}

	score := math.Min(float64(matched)*t.SkillPointsPerMatch, 100)
	ratio := float64(matched) / float64(len(candidateSkills))
	if len(candidateSkills) >= t.SkillDensityMinSkills && ratio > t.SkillDensityRatio {
		score = math.Min(score+t.SkillDensityBonus, 100)
	}
	return score
}

// experienceScore compares candidate years against the job requirement, or against
// general seniority bands when the job states none.
func (s *Scorer) experienceScore(years, required *float64) float64 {
	if years == nil {
		return clamp(s.cfg.NeutralScore, 0, 100)
	}
	y := *years

	if required == nil {
		for _, band := range experienceBands {
			if y < band.below {
				return band.score
			}
		}
		return seniorExperienceScore
	}

	req := *required
	switch {
	case y >= req+1:
		return exceedsRequirementScore
	case y >= req:
		return meetsRequirementScore
	case y >= req*0.75:
		return nearRequirementScore
	case y >= req*0.5:
		return halfRequirementScore
	default:
		return farBelowRequirement
	}
}

// educationScore compares the candidate's highest degree to the required tier.
func educationScore(education []types.Education, required parsing.DegreeTier) float64 {
	held := parsing.HighestTier(education)

	if required == parsing.TierNone {
		if score, ok := educationScores[held]; ok {
			return score
		}
		return educationUnknownScore
	}

	switch {
	case held >= required:
		return educationMetScore
	case held == required-1:
		if score, ok := adjacentEducationScores[required]; ok {
			return score
		}
	}
	return educationBelowScore
}

// keywordScore measures how much of the job description's vocabulary appears in the resume.
func (s *Scorer) keywordScore(resumeText, jobDescription string) float64 {
	jobWords := keywordSet(jobDescription)
	if len(jobWords) == 0 {
		return clamp(s.cfg.NeutralScore, 0, 100)
	}
	resumeWords := keywordSet(resumeText)

	common := 0
	for word := range jobWords {
		if resumeWords[word] {
			common++
		}
	}
	ratio := float64(common) / float64(len(jobWords))
	return math.Min(ratio*s.cfg.Thresholds.KeywordScale, 100)
}

func keywordSet(text string) map[string]bool {
	words := make(map[string]bool)
	for _, word := range keywordPattern.FindAllString(strings.ToLower(text), -1) {
		if !keywordStopwords[word] {
			words[word] = true
		}
	}
	return words
}
