package ranking

import (
	"fmt"
	"strings"

	"github.com/jonathan/candidate-scorer/internal/fusion"
	"github.com/jonathan/candidate-scorer/internal/types"
)

// ParsingFailedFeedback is the only feedback line given for unreadable resumes
const ParsingFailedFeedback = "⚠ Resume parsing failed - Manual review required"

// maxListedItems caps how many skills or certifications a feedback line names
const maxListedItems = 3

// remark holds the positive, neutral, and warning wording for one dimension
type remark struct {
	positive string
	neutral  string
	warning  string
}

var (
	skillsRemark = remark{
		positive: "✓ Excellent skill match with job requirements",
		neutral:  "• Good skill match, could improve in some areas",
		warning:  "⚠ Limited skill match - consider additional training",
	}
	experienceRemark = remark{
		positive: "✓ Strong experience level for this role",
		neutral:  "• Adequate experience, on track for this position",
		warning:  "⚠ May need more experience for this role",
	}
	educationRemark = remark{
		positive: "✓ Education requirements fully met",
		neutral:  "• Education level is acceptable",
		warning:  "⚠ Education may not fully meet requirements",
	}
)

// feedback builds the ordered human-readable explanation of a score.
func (s *Scorer) feedback(
	profile *types.CandidateProfile,
	breakdown types.ScoreBreakdown,
	metrics fusion.Metrics,
	penalties, bonuses []types.AppliedRule,
) []string {
	if profile.ParsingFailed {
		return []string{ParsingFailedFeedback}
	}
	t := s.cfg.Thresholds
	lines := make([]string, 0, 10)

	if len(metrics.RedFlags) > 0 {
		lines = append(lines, "⚠ Red Flags: "+strings.Join(metrics.RedFlags, "; "))
	}
	if len(metrics.MissingMustHaves) > 0 {
		lines = append(lines, "⚠ Missing Critical Skills: "+strings.Join(firstN(metrics.MissingMustHaves, maxListedItems), ", "))
	}

	lines = append(lines,
		s.pick(skillsRemark, breakdown.SkillsMatch),
		s.pick(experienceRemark, breakdown.Experience),
		s.pick(educationRemark, breakdown.Education),
	)

	if len(profile.Certifications) > 0 {
		lines = append(lines, "✓ Has relevant certifications: "+strings.Join(firstN(profile.Certifications, maxListedItems), ", "))
	}
	if len(profile.Skills) > t.DiverseSkills {
		lines = append(lines, fmt.Sprintf("✓ Diverse skill set with %d identified skills", len(profile.Skills)))
	}
	if metrics.AIGeneratedProbability > t.AIGeneratedModerate {
		lines = append(lines, fmt.Sprintf("⚠ High likelihood of AI-generated answers (%d%%)", int(metrics.AIGeneratedProbability)))
	}
	if len(bonuses) > 0 {
		lines = append(lines, "★ Bonuses: "+summarizeRules(bonuses))
	}
	if len(penalties) > 0 {
		lines = append(lines, "⚠ Penalties: "+summarizeRules(penalties))
	}

	return lines
}

func (s *Scorer) pick(r remark, score float64) string {
	switch {
	case score >= s.cfg.Thresholds.PositiveFeedback:
		return r.positive
	case score >= s.cfg.Thresholds.NeutralFeedback:
		return r.neutral
	default:
		return r.warning
	}
}

// summarizeRules renders rules as "Description (+5), Description (-2)"
func summarizeRules(rules []types.AppliedRule) string {
	parts := make([]string, 0, len(rules))
	for _, rule := range rules {
		parts = append(parts, fmt.Sprintf("%s (%+g)", rule.Description, rule.Points))
	}
	return strings.Join(parts, ", ")
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
