package ranking

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/candidate-scorer/internal/config"
	"github.com/jonathan/candidate-scorer/internal/fusion"
	"github.com/jonathan/candidate-scorer/internal/parsing"
	"github.com/jonathan/candidate-scorer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const linkedIn = "https://linkedin.com/in/jane-doe"

func ptr(v float64) *float64 {
	return &v
}

func bachelorProfile(skillList ...string) *types.CandidateProfile {
	return &types.CandidateProfile{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		LinkedInURL:     linkedIn,
		Skills:          skillList,
		ExperienceYears: ptr(5),
		Education:       []types.Education{{Degree: parsing.DegreeBachelor}},
	}
}

func analysisWith(data types.ExtractedData) *types.AIAnalysis {
	return &types.AIAnalysis{ExtractedData: &data}
}

func findRule(rules []types.AppliedRule, name string) (types.AppliedRule, bool) {
	for _, rule := range rules {
		if rule.Name == name {
			return rule, true
		}
	}
	return types.AppliedRule{}, false
}

func TestNewScorer_RejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	cfg.Weights.Relevance = 0.9

	scorer, err := NewScorer(cfg)
	assert.Error(t, err)
	assert.Nil(t, scorer)
}

func TestNewScorer_Default(t *testing.T) {
	scorer, err := NewScorer(config.DefaultScoringConfig())
	require.NoError(t, err)
	assert.Equal(t, config.DefaultScoringConfig(), scorer.Config())
}

func TestScore_SkillsExperienceEducation(t *testing.T) {
	scorer := NewDefaultScorer()
	jd := "Seeking Python and Java developer, 5+ years experience, Bachelor's required"

	result := scorer.Score(bachelorProfile("Python", "Java"), jd, "Backend Engineer", nil)

	// two of two skills named: 2*10 plus the density bonus
	assert.Equal(t, 25.0, result.Breakdown.SkillsMatch)
	assert.Equal(t, 95.0, result.Breakdown.Experience)
	assert.Equal(t, 100.0, result.Breakdown.Education)
}

func TestScore_OnlyNamedSkillsCount(t *testing.T) {
	scorer := NewDefaultScorer()
	jd := "Seeking Python developer, 5+ years experience, Bachelor's required"

	result := scorer.Score(bachelorProfile("Python", "Java"), jd, "", nil)

	// Java is not mentioned, so only one match counts
	assert.Equal(t, 10.0, result.Breakdown.SkillsMatch)
	assert.Equal(t, 95.0, result.Breakdown.Experience)
	assert.Equal(t, 100.0, result.Breakdown.Education)
}

func TestScore_SingleSkillDensityBonus(t *testing.T) {
	scorer := NewDefaultScorer()

	result := scorer.Score(bachelorProfile("Python"), "Python developer", "", nil)

	// one of one skills matched, so the ratio clears 0.5
	assert.Equal(t, 15.0, result.Breakdown.SkillsMatch)
}

func TestScore_WeightedTotalWithoutAIData(t *testing.T) {
	scorer := NewDefaultScorer()
	jd := "Seeking Python and Java developer, 5+ years experience, Bachelor's required"

	result := scorer.Score(bachelorProfile("Python", "Java"), jd, "", nil)

	// 25*.20 + 95*.10 + 100*.05 + 50*(.25+.15+.10+.05+.05) + 0*.05
	assert.InDelta(t, 49.5, result.TotalScore, 0.001)
	assert.Equal(t, "F", result.Grade)
	assert.Empty(t, result.Penalties)
	assert.Empty(t, result.Bonuses)
	assert.Nil(t, result.Insights)
	assert.Equal(t, types.DefaultStatus, result.Status)
}

func TestScore_PhDRequired(t *testing.T) {
	scorer := NewDefaultScorer()
	jd := "Research scientist. PhD in Computer Science required."

	result := scorer.Score(bachelorProfile("Python"), jd, "", nil)
	assert.Equal(t, 60.0, result.Breakdown.Education)

	master := bachelorProfile("Python")
	master.Education = []types.Education{{Degree: parsing.DegreeMaster}}
	result = scorer.Score(master, jd, "", nil)
	assert.Equal(t, 80.0, result.Breakdown.Education)
}

func TestScore_MissingMustHaves(t *testing.T) {
	scorer := NewDefaultScorer()
	jd := "Platform engineer with Kubernetes and Terraform"
	profile := bachelorProfile("Python")

	withMissing := scorer.Score(profile, jd, "", analysisWith(types.ExtractedData{
		MissingMustHaves: types.StringList{"Kubernetes", "Terraform"},
	}))
	without := scorer.Score(profile, jd, "", analysisWith(types.ExtractedData{}))

	rule, ok := findRule(withMissing.Penalties, RuleMissingMustHaves)
	require.True(t, ok)
	assert.Equal(t, -16.0, rule.Points)
	assert.InDelta(t, without.TotalScore-16, withMissing.TotalScore, 0.01)
	require.NotEmpty(t, withMissing.Feedback)
	assert.Equal(t, "⚠ Missing Critical Skills: Kubernetes, Terraform", withMissing.Feedback[0])
}

func TestScore_MissingMustHavesCapped(t *testing.T) {
	scorer := NewDefaultScorer()
	result := scorer.Score(bachelorProfile(), "", "", analysisWith(types.ExtractedData{
		MissingMustHaves: types.StringList{"a", "b", "c", "d", "e", "f"},
	}))

	rule, ok := findRule(result.Penalties, RuleMissingMustHaves)
	require.True(t, ok)
	assert.Equal(t, -35.0, rule.Points)
	assert.Equal(t, "⚠ Missing Critical Skills: a, b, c", result.Feedback[0])
}

func TestScore_AIGeneratedProbability(t *testing.T) {
	tests := []struct {
		probability float64
		rule        string
		points      float64
	}{
		{90, RuleAIGeneratedHigh, -12},
		{75, RuleAIGeneratedLikely, -5},
		{60, "", 0},
	}

	scorer := NewDefaultScorer()
	for _, tt := range tests {
		result := scorer.Score(bachelorProfile(), "", "", analysisWith(types.ExtractedData{
			AIGeneratedProbability: types.Float(tt.probability),
		}))

		_, high := findRule(result.Penalties, RuleAIGeneratedHigh)
		_, moderate := findRule(result.Penalties, RuleAIGeneratedLikely)
		if tt.rule == "" {
			assert.False(t, high || moderate, "probability %v", tt.probability)
			continue
		}
		rule, ok := findRule(result.Penalties, tt.rule)
		require.True(t, ok, "probability %v", tt.probability)
		assert.Equal(t, tt.points, rule.Points)
		assert.False(t, high && moderate)
	}
}

func TestScore_ParsingFailed(t *testing.T) {
	scorer := NewDefaultScorer()
	profile := parsing.Extract("", "jane_doe_resume.pdf")
	require.True(t, profile.ParsingFailed)

	result := scorer.Score(profile, "Python developer", "", nil)

	assert.True(t, result.ParsingFailed)
	assert.Equal(t, []string{ParsingFailedFeedback}, result.Feedback)
	assert.GreaterOrEqual(t, result.TotalScore, 0.0)
	assert.LessOrEqual(t, result.TotalScore, 100.0)
	assert.NotEmpty(t, result.Grade)
}

func TestScore_FarBelowRequiredYears(t *testing.T) {
	scorer := NewDefaultScorer()
	profile := bachelorProfile("Python")
	profile.ExperienceYears = ptr(3)

	result := scorer.Score(profile, "You need at least 10 years in distributed systems", "", nil)
	assert.Equal(t, 20.0, result.Breakdown.Experience)
}

func TestScore_ClampedAtZero(t *testing.T) {
	scorer := NewDefaultScorer()
	profile := &types.CandidateProfile{Name: "No Match"}
	analysis := analysisWith(types.ExtractedData{
		SkillsMatchScore:       types.Float(0),
		RelevanceScore:         types.Float(0),
		TechnicalDepthScore:    types.Float(0),
		CultureFitScore:        types.Float(0),
		ProjectComplexityScore: types.Float(0),
		CommunicationScore:     types.Float(0),
		AIGeneratedProbability: types.Float(100),
		MissingMustHaves:       types.StringList{"a", "b", "c", "d", "e"},
	})
	analysis.RedFlags = types.StringList{"x", "y", "z", "w", "v"}
	analysis.ScoreAdjustment = types.Float(-100)

	result := scorer.Score(profile, "Senior Go engineer, PhD required", "", analysis)

	assert.Equal(t, 0.0, result.TotalScore)
	assert.Equal(t, "F", result.Grade)
	adjustment, ok := findRule(result.Penalties, RuleAIAdjustment)
	require.True(t, ok)
	assert.Equal(t, -20.0, adjustment.Points)
}

func TestScore_ClampedAtHundred(t *testing.T) {
	scorer := NewDefaultScorer()
	profile := bachelorProfile("Go", "Kubernetes", "Docker")
	profile.RawText = "Senior Go engineer with Kubernetes and Docker"
	analysis := analysisWith(types.ExtractedData{
		SkillsMatchScore:       types.Float(100),
		RelevanceScore:         types.Float(100),
		TechnicalDepthScore:    types.Float(100),
		CultureFitScore:        types.Float(100),
		ProjectComplexityScore: types.Float(100),
		CommunicationScore:     types.Float(100),
		LeadershipScore:        types.Float(100),
		AIGeneratedProbability: types.Float(0),
		NiceToHavesPresent:     types.StringList{"gRPC", "Rust", "Terraform", "Kafka"},
		GrowthTrajectory:       "Rising",
	})
	analysis.ScoreAdjustment = types.Float(100)

	result := scorer.Score(profile, "Senior Go engineer with Kubernetes and Docker", "", analysis)

	assert.Equal(t, 100.0, result.TotalScore)
	assert.Equal(t, "A", result.Grade)

	for _, name := range []string{RuleUnicorn, RuleLeadership, RuleCommunication, RuleNiceToHaves, RuleRisingTrajectory, RuleAIAdjustment} {
		_, ok := findRule(result.Bonuses, name)
		assert.True(t, ok, name)
	}
	niceToHaves, _ := findRule(result.Bonuses, RuleNiceToHaves)
	assert.Equal(t, 6.0, niceToHaves.Points)
	adjustment, _ := findRule(result.Bonuses, RuleAIAdjustment)
	assert.Equal(t, 20.0, adjustment.Points)
}

func TestScore_BreakdownWithinBounds(t *testing.T) {
	scorer := NewDefaultScorer()
	profile := bachelorProfile("Python", "Java", "Go", "Docker", "AWS")
	profile.RawText = "Python Java Go Docker AWS engineer building scalable services"
	analysis := analysisWith(types.ExtractedData{
		SkillsMatchScore: types.Float(250),
		RelevanceScore:   types.Float(-40),
	})

	result := scorer.Score(profile, "Python Java Go Docker AWS engineer building scalable services", "", analysis)

	b := result.Breakdown
	for _, v := range []float64{b.SkillsMatch, b.Experience, b.Education, b.Relevance, b.TechnicalDepth,
		b.ProjectComplexity, b.Communication, b.CultureFit, b.Keywords} {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 100.0)
	}
}

func TestScore_Deterministic(t *testing.T) {
	scorer := NewDefaultScorer()
	profile := bachelorProfile("Python", "Docker")
	profile.RawText = "Python engineer shipping Docker services"
	analysis := analysisWith(types.ExtractedData{
		SkillsMatchScore: types.Float(70),
		RelevanceScore:   types.Float(65),
		Skills:           types.StringList{"golang"},
	})

	first := scorer.Score(profile, "Python engineer", "Engineer", analysis)
	second := scorer.Score(profile, "Python engineer", "Engineer", analysis)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"Python", "Docker"}, profile.Skills, "profile must not be mutated")
}

func TestScore_AISkillsBlend(t *testing.T) {
	scorer := NewDefaultScorer()
	jd := "Seeking Python and Java developer"

	result := scorer.Score(bachelorProfile("Python", "Java"), jd, "", analysisWith(types.ExtractedData{
		SkillsMatchScore: types.Float(90),
	}))

	// 0.8 * 90 + 0.2 * 25
	assert.InDelta(t, 77.0, result.Breakdown.SkillsMatch, 0.001)
}

func TestScore_PlaceholderAnalysisEqualsNone(t *testing.T) {
	scorer := NewDefaultScorer()
	jd := "Seeking Python developer"
	placeholder := &types.AIAnalysis{
		Pros:            types.StringList{"AI analysis unavailable"},
		ScoreAdjustment: types.Float(15),
		ExtractedData: &types.ExtractedData{
			RelevanceScore:   types.Float(95),
			MissingMustHaves: types.StringList{"Go"},
		},
	}

	withPlaceholder := scorer.Score(bachelorProfile("Python"), jd, "", placeholder)
	withNone := scorer.Score(bachelorProfile("Python"), jd, "", nil)

	assert.Equal(t, withNone.TotalScore, withPlaceholder.TotalScore)
	assert.Equal(t, withNone.Breakdown, withPlaceholder.Breakdown)
	assert.Equal(t, withNone.Feedback, withPlaceholder.Feedback)
	assert.Nil(t, withPlaceholder.Insights)
	assert.Same(t, placeholder, withPlaceholder.AIAnalysis)
}

func TestScore_InsightsFromAnalysis(t *testing.T) {
	scorer := NewDefaultScorer()
	analysis := analysisWith(types.ExtractedData{RelevanceScore: types.Float(70)})
	analysis.Pros = types.StringList{"Solid Go background"}
	analysis.Summary = "Good fit"
	analysis.ScoreAdjustment = types.Float(-4)

	result := scorer.Score(bachelorProfile("Go"), "Go developer", "", analysis)

	require.NotNil(t, result.Insights)
	assert.Equal(t, []string{"Solid Go background"}, result.Insights.Pros)
	assert.Empty(t, result.Insights.Cons)
	assert.Equal(t, "Good fit", result.Insights.Summary)
	assert.Equal(t, -4.0, result.Insights.Adjustment)

	adjustment, ok := findRule(result.Penalties, RuleAIAdjustment)
	require.True(t, ok)
	assert.Equal(t, -4.0, adjustment.Points)
}

func TestScore_RelevancePenalties(t *testing.T) {
	scorer := NewDefaultScorer()

	severe := scorer.Score(bachelorProfile(), "", "", analysisWith(types.ExtractedData{RelevanceScore: types.Float(20)}))
	rule, ok := findRule(severe.Penalties, RuleSevereLowRelevance)
	require.True(t, ok)
	assert.Equal(t, -25.0, rule.Points)
	_, low := findRule(severe.Penalties, RuleLowRelevance)
	assert.False(t, low)

	moderate := scorer.Score(bachelorProfile(), "", "", analysisWith(types.ExtractedData{RelevanceScore: types.Float(30)}))
	rule, ok = findRule(moderate.Penalties, RuleLowRelevance)
	require.True(t, ok)
	assert.Equal(t, -15.0, rule.Points)
}

func TestScore_MissingLinkedInAndName(t *testing.T) {
	scorer := NewDefaultScorer()
	profile := bachelorProfile("Python")
	profile.Name = ""
	profile.LinkedInURL = ""

	result := scorer.Score(profile, "Python developer", "", nil)

	rule, ok := findRule(result.Penalties, RuleMissingLinkedIn)
	require.True(t, ok)
	assert.Equal(t, -2.0, rule.Points)
	assert.Equal(t, types.UnknownCandidate, result.CandidateName)
}

func TestScore_RedFlags(t *testing.T) {
	scorer := NewDefaultScorer()
	analysis := analysisWith(types.ExtractedData{})
	analysis.RedFlags = types.StringList{"Frequent short tenures", "Unexplained gap"}

	result := scorer.Score(bachelorProfile("Python"), "Python developer", "", analysis)

	rule, ok := findRule(result.Penalties, RuleRedFlags)
	require.True(t, ok)
	assert.Equal(t, -10.0, rule.Points)
	assert.Equal(t, "⚠ Red Flags: Frequent short tenures; Unexplained gap", result.Feedback[0])
}

func TestScore_FeedbackOrder(t *testing.T) {
	scorer := NewDefaultScorer()
	profile := bachelorProfile("Python", "Java", "Go", "Docker", "AWS", "React")
	profile.Certifications = []string{"AWS Certified", "CKA", "PMP", "CISSP"}
	analysis := analysisWith(types.ExtractedData{
		MissingMustHaves:       types.StringList{"Kubernetes"},
		AIGeneratedProbability: types.Float(75),
		LeadershipScore:        types.Float(90),
	})
	analysis.RedFlags = types.StringList{"Gap in employment"}

	feedback := scorer.Score(profile, "Python developer", "", analysis).Feedback

	require.Len(t, feedback, 10)
	assert.Equal(t, "⚠ Red Flags: Gap in employment", feedback[0])
	assert.Equal(t, "⚠ Missing Critical Skills: Kubernetes", feedback[1])
	assert.Equal(t, skillsRemark.warning, feedback[2])
	assert.Equal(t, experienceRemark.positive, feedback[3])
	assert.Equal(t, educationRemark.positive, feedback[4])
	assert.Equal(t, "✓ Has relevant certifications: AWS Certified, CKA, PMP", feedback[5])
	assert.Equal(t, "✓ Diverse skill set with 6 identified skills", feedback[6])
	assert.Equal(t, "⚠ High likelihood of AI-generated answers (75%)", feedback[7])
	assert.Equal(t, "★ Bonuses: Strong leadership (+5)", feedback[8])
	assert.Equal(t, "⚠ Penalties: Missing 1 must-have skill(s) (-8), Answers possibly AI-generated (75%) (-5), 1 red flag(s) (-5)", feedback[9])
}

func TestScore_NonFiniteAnalysisNumbersIgnored(t *testing.T) {
	scorer := NewDefaultScorer()
	raw := `{"pros":["ok"],"score_adjustment":"Infinity","extracted_data":{"relevance_score":"NaN","technical_depth_score":"inf"}}`
	analysis, err := fusion.DecodeAnalysis([]byte(raw))
	require.NoError(t, err)

	result := scorer.Score(bachelorProfile("Python"), "Python developer", "", analysis)

	assert.Equal(t, 50.0, result.Breakdown.Relevance)
	assert.Equal(t, 50.0, result.Breakdown.TechnicalDepth)
	for _, name := range []string{RuleSevereLowRelevance, RuleLowRelevance, RuleAIAdjustment} {
		_, penalized := findRule(result.Penalties, name)
		assert.False(t, penalized, name)
		_, rewarded := findRule(result.Bonuses, name)
		assert.False(t, rewarded, name)
	}
	require.NotNil(t, result.Insights)
	assert.Equal(t, 0.0, result.Insights.Adjustment)

	_, err = json.Marshal(result)
	assert.NoError(t, err)
}

func TestScore_NilProfile(t *testing.T) {
	result := NewDefaultScorer().Score(nil, "Go developer", "", nil)

	assert.True(t, result.ParsingFailed)
	assert.Equal(t, []string{ParsingFailedFeedback}, result.Feedback)
}

func TestScore_CustomWeights(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	cfg.Weights = config.Weights{Education: 1}
	scorer, err := NewScorer(cfg)
	require.NoError(t, err)

	result := scorer.Score(bachelorProfile(), "", "", nil)

	// Only the education dimension counts: no JD tier, Bachelor held
	assert.Equal(t, 80.0, result.TotalScore)
	assert.Equal(t, "B", result.Grade)
}
