// Package fusion merges an externally supplied AI analysis into locally extracted candidate data.
// Missing or placeholder analyses are resolved to neutral defaults in one place, Normalize.
package fusion

import (
	"math"
	"strings"

	"github.com/jonathan/candidate-scorer/internal/config"
	"github.com/jonathan/candidate-scorer/internal/parsing"
	"github.com/jonathan/candidate-scorer/internal/types"
)

// placeholderMarkers appear in the pros/cons of analyses produced when the provider was
// unreachable or unconfigured
var placeholderMarkers = []string{
	"analysis unavailable",
	"error during ai analysis",
	"error during analysis",
	"could not parse",
	"could not perform ai analysis",
	"ai analysis failed",
}

// Metrics is the normalized form of an AI analysis. Every score is in [0, 100] and every
// list is non-nil, whether or not an analysis was supplied.
type Metrics struct {
	// Present is false when no usable analysis was supplied
	Present bool

	// SkillsMatchScore is nil unless the analysis reported one
	SkillsMatchScore *float64
	// YearsOfExperience is nil unless the analysis reported a positive value
	YearsOfExperience *float64
	Skills            []string
	EducationLevel    string

	Relevance              float64
	TechnicalDepth         float64
	CultureFit             float64
	ProjectComplexity      float64
	Communication          float64
	Leadership             float64
	AIGeneratedProbability float64

	MissingMustHaves   []string
	NiceToHavesPresent []string
	RedFlags           []string

	GrowthTrajectory      types.GrowthTrajectory
	OverallRecommendation string

	// Adjustment is the score adjustment clamped to the configured range
	Adjustment float64

	Pros    []string
	Cons    []string
	Summary string
}

// Neutral returns the metrics used when no AI analysis is available.
func Neutral(cfg config.ScoringConfig) Metrics {
	neutral := clampScore(cfg.NeutralScore)
	return Metrics{
		Skills:                 []string{},
		Relevance:              neutral,
		TechnicalDepth:         neutral,
		CultureFit:             neutral,
		ProjectComplexity:      neutral,
		Communication:          neutral,
		Leadership:             neutral,
		AIGeneratedProbability: neutral,
		MissingMustHaves:       []string{},
		NiceToHavesPresent:     []string{},
		RedFlags:               []string{},
		GrowthTrajectory:       types.TrajectoryUnknown,
		Pros:                   []string{},
		Cons:                   []string{},
	}
}

// Normalize resolves an optional AI analysis into Metrics. Nil and placeholder analyses
// yield Neutral. Missing numbers default to cfg.NeutralScore, missing lists to empty.
func Normalize(analysis *types.AIAnalysis, cfg config.ScoringConfig) Metrics {
	metrics := Neutral(cfg)
	if IsPlaceholder(analysis) {
		return metrics
	}

	data := analysis.ExtractedData
	neutral := metrics.Relevance

	metrics.Present = true
	if data.SkillsMatchScore.Valid {
		score := clampScore(data.SkillsMatchScore.Value)
		metrics.SkillsMatchScore = &score
	}
	if data.YearsOfExperience.Valid && data.YearsOfExperience.Value > 0 {
		years := data.YearsOfExperience.Value
		metrics.YearsOfExperience = &years
	}
	metrics.Skills = nonNil(data.Skills)
	metrics.EducationLevel = strings.TrimSpace(data.EducationLevel)

	metrics.Relevance = clampScore(data.RelevanceScore.Or(neutral))
	metrics.TechnicalDepth = clampScore(data.TechnicalDepthScore.Or(neutral))
	metrics.CultureFit = clampScore(data.CultureFitScore.Or(neutral))
	metrics.ProjectComplexity = clampScore(data.ProjectComplexityScore.Or(neutral))
	metrics.Communication = clampScore(data.CommunicationScore.Or(neutral))
	metrics.Leadership = clampScore(data.LeadershipScore.Or(neutral))
	metrics.AIGeneratedProbability = clampScore(data.AIGeneratedProbability.Or(neutral))

	metrics.MissingMustHaves = nonNil(data.MissingMustHaves)
	metrics.NiceToHavesPresent = nonNil(data.NiceToHavesPresent)
	metrics.RedFlags = nonNil(analysis.RedFlags)

	metrics.GrowthTrajectory = types.ParseGrowthTrajectory(data.GrowthTrajectory)
	metrics.OverallRecommendation = strings.TrimSpace(data.OverallRecommendation)

	metrics.Adjustment = clamp(analysis.ScoreAdjustment.Or(0), -cfg.MaxAdjustment, cfg.MaxAdjustment)

	metrics.Pros = nonNil(analysis.Pros)
	metrics.Cons = nonNil(analysis.Cons)
	metrics.Summary = strings.TrimSpace(analysis.Summary)

	return metrics
}

// IsPlaceholder reports whether an analysis carries no usable AI data: it is nil, has no
// extracted data, or its pros/cons say the analysis was unavailable or failed.
func IsPlaceholder(analysis *types.AIAnalysis) bool {
	if analysis == nil || analysis.ExtractedData == nil {
		return true
	}
	for _, list := range [][]string{analysis.Pros, analysis.Cons} {
		for _, item := range list {
			lower := strings.ToLower(item)
			for _, marker := range placeholderMarkers {
				if strings.Contains(lower, marker) {
					return true
				}
			}
		}
	}
	return false
}

// Fuse returns a copy of profile enriched with AI-reported data. Skills are unioned;
// experience and education are only back-filled when the profile has none.
func Fuse(profile *types.CandidateProfile, metrics Metrics) *types.CandidateProfile {
	if profile == nil {
		return nil
	}
	fused := profile.Clone()
	if !metrics.Present {
		return fused
	}

	fused.Skills = parsing.MergeSkills(profile.Skills, metrics.Skills)

	if (fused.ExperienceYears == nil || *fused.ExperienceYears == 0) && metrics.YearsOfExperience != nil {
		years := *metrics.YearsOfExperience
		fused.ExperienceYears = &years
	}

	if len(fused.Education) == 0 {
		if tier := parsing.DegreeTierOf(metrics.EducationLevel); tier != parsing.TierNone {
			fused.Education = []types.Education{{Degree: parsing.DegreeLabel(tier), Context: aiEducationContext}}
		}
	}

	return fused
}

// aiEducationContext marks education records that came from the AI analysis
const aiEducationContext = "reported by AI analysis"

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return append([]string{}, list...)
}

func clampScore(v float64) float64 {
	return clamp(v, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(lo, math.Min(hi, v))
}
