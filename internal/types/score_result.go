// Package types provides type definitions for structured data used throughout the candidate-scorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "slices"

// DefaultStatus is the pipeline status assigned to freshly scored candidates
const DefaultStatus = "applied"

// ScoreBreakdown holds one 0-100 score per scoring dimension
type ScoreBreakdown struct {
	SkillsMatch       float64 `json:"skills_match"`
	Experience        float64 `json:"experience"`
	Education         float64 `json:"education"`
	Relevance         float64 `json:"relevance"`
	TechnicalDepth    float64 `json:"technical_depth"`
	ProjectComplexity float64 `json:"project_complexity"`
	Communication     float64 `json:"communication"`
	CultureFit        float64 `json:"culture_fit"`
	Keywords          float64 `json:"keywords"`
}

// AppliedRule records one penalty or bonus that changed the total score
type AppliedRule struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Points      float64 `json:"points"`
}

// ScoreResult is the immutable outcome of scoring one candidate against one job
type ScoreResult struct {
	CandidateID    string         `json:"candidate_id,omitempty"`
	TotalScore     float64        `json:"total_score"`
	Breakdown      ScoreBreakdown `json:"breakdown"`
	Feedback       []string       `json:"feedback"`
	Grade          string         `json:"grade"`
	Penalties      []AppliedRule  `json:"penalties"`
	Bonuses        []AppliedRule  `json:"bonuses"`
	CandidateName  string         `json:"candidate_name"`
	CandidateEmail string         `json:"candidate_email"`
	CandidatePhone string         `json:"candidate_phone"`
	LinkedInURL    string         `json:"linkedin_url,omitempty"`
	FileName       string         `json:"file_name,omitempty"`
	ParsingFailed  bool           `json:"parsing_failed"`
	Status         string         `json:"status"`
	Rank           int            `json:"rank,omitempty"`
	AIAnalysis     *AIAnalysis    `json:"ai_analysis,omitempty"`
	Insights       *AIInsights    `json:"ai_insights,omitempty"`
}

// Clone returns a deep copy of the result.
func (r *ScoreResult) Clone() *ScoreResult {
	if r == nil {
		return nil
	}
	clone := *r
	clone.Feedback = slices.Clone(r.Feedback)
	clone.Penalties = slices.Clone(r.Penalties)
	clone.Bonuses = slices.Clone(r.Bonuses)
	if r.Insights != nil {
		insights := *r.Insights
		insights.Pros = slices.Clone(r.Insights.Pros)
		insights.Cons = slices.Clone(r.Insights.Cons)
		clone.Insights = &insights
	}
	return &clone
}

// RankedCandidates is the JSON envelope written for a ranked batch
type RankedCandidates struct {
	JobTitle string         `json:"job_title"`
	Ranked   []*ScoreResult `json:"ranked"`
}
