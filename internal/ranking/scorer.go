// Package ranking scores candidate profiles against a job description and orders them by total score.
package ranking

import (
	"fmt"
	"math"

	"github.com/jonathan/candidate-scorer/internal/config"
	"github.com/jonathan/candidate-scorer/internal/fusion"
	"github.com/jonathan/candidate-scorer/internal/parsing"
	"github.com/jonathan/candidate-scorer/internal/types"
)

// Scorer applies one immutable ScoringConfig. It is safe for concurrent use.
type Scorer struct {
	cfg config.ScoringConfig
}

// NewScorer validates cfg and returns a scorer bound to it.
func NewScorer(cfg config.ScoringConfig) (*Scorer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create scorer: %w", err)
	}
	return &Scorer{cfg: cfg}, nil
}

// NewDefaultScorer returns a scorer using config.DefaultScoringConfig.
func NewDefaultScorer() *Scorer {
	return &Scorer{cfg: config.DefaultScoringConfig()}
}

// Config returns a copy of the configuration the scorer applies.
func (s *Scorer) Config() config.ScoringConfig {
	return s.cfg
}

// Score evaluates one candidate against a job description. analysis may be nil.
// The result is fully computed even when the profile is marked as a parsing failure.
func (s *Scorer) Score(profile *types.CandidateProfile, jobDescription, jobTitle string, analysis *types.AIAnalysis) *types.ScoreResult {
	if profile == nil {
		profile = &types.CandidateProfile{ParsingFailed: true}
	}

	metrics := fusion.Normalize(analysis, s.cfg)
	fused := fusion.Fuse(profile, metrics)
	job := parsing.ParseJobRequirement(jobDescription, jobTitle)

	breakdown := s.breakdown(fused, job, metrics)
	total := s.weightedTotal(breakdown)

	penalties := s.penalties(fused, metrics)
	bonuses := s.bonuses(metrics)
	if adjustment := s.adjustment(metrics); adjustment != nil {
		if adjustment.Points < 0 {
			penalties = append(penalties, *adjustment)
		} else {
			bonuses = append(bonuses, *adjustment)
		}
	}
	for _, rule := range penalties {
		total += rule.Points
	}
	for _, rule := range bonuses {
		total += rule.Points
	}
	total = round2(clamp(total, 0, 100))

	result := &types.ScoreResult{
		CandidateID:    fused.CandidateID,
		TotalScore:     total,
		Breakdown:      roundBreakdown(breakdown),
		Grade:          s.cfg.Grades.Grade(total),
		Penalties:      penalties,
		Bonuses:        bonuses,
		CandidateName:  fused.Name,
		CandidateEmail: fused.Email,
		CandidatePhone: fused.Phone,
		LinkedInURL:    fused.LinkedInURL,
		FileName:       fused.FileName,
		ParsingFailed:  fused.ParsingFailed,
		Status:         types.DefaultStatus,
		AIAnalysis:     analysis,
	}
	if result.CandidateName == "" {
		result.CandidateName = types.UnknownCandidate
	}
	if metrics.Present {
		result.Insights = &types.AIInsights{
			Pros:       metrics.Pros,
			Cons:       metrics.Cons,
			Summary:    metrics.Summary,
			Adjustment: metrics.Adjustment,
		}
	}
	result.Feedback = s.feedback(fused, breakdown, metrics, penalties, bonuses)

	return result
}

// breakdown computes every dimension score, each in [0, 100]
func (s *Scorer) breakdown(profile *types.CandidateProfile, job *types.JobRequirement, metrics fusion.Metrics) types.ScoreBreakdown {
	return types.ScoreBreakdown{
		SkillsMatch:       s.skillsScore(profile.Skills, job.Description, metrics),
		Experience:        s.experienceScore(profile.ExperienceYears, job.RequiredYears),
		Education:         educationScore(profile.Education, parsing.DegreeTierOf(job.RequiredDegree)),
		Relevance:         metrics.Relevance,
		TechnicalDepth:    metrics.TechnicalDepth,
		ProjectComplexity: metrics.ProjectComplexity,
		Communication:     metrics.Communication,
		CultureFit:        metrics.CultureFit,
		Keywords:          s.keywordScore(profile.RawText, job.Description),
	}
}

func (s *Scorer) weightedTotal(b types.ScoreBreakdown) float64 {
	w := s.cfg.Weights
	return b.SkillsMatch*w.SkillsMatch +
		b.Experience*w.Experience +
		b.Education*w.Education +
		b.Relevance*w.Relevance +
		b.TechnicalDepth*w.TechnicalDepth +
		b.ProjectComplexity*w.ProjectComplexity +
		b.Communication*w.Communication +
		b.CultureFit*w.CultureFit +
		b.Keywords*w.Keywords
}

func roundBreakdown(b types.ScoreBreakdown) types.ScoreBreakdown {
	return types.ScoreBreakdown{
		SkillsMatch:       round2(b.SkillsMatch),
		Experience:        round2(b.Experience),
		Education:         round2(b.Education),
		Relevance:         round2(b.Relevance),
		TechnicalDepth:    round2(b.TechnicalDepth),
		ProjectComplexity: round2(b.ProjectComplexity),
		Communication:     round2(b.Communication),
		CultureFit:        round2(b.CultureFit),
		Keywords:          round2(b.Keywords),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
