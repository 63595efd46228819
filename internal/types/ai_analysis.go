// Package types provides type definitions for structured data used throughout the candidate-scorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// GrowthTrajectory is the AI-assessed direction of a candidate's career
type GrowthTrajectory string

// Growth trajectory values reported by the AI analysis provider
const (
	TrajectoryRising    GrowthTrajectory = "Rising"
	TrajectoryStable    GrowthTrajectory = "Stable"
	TrajectoryDeclining GrowthTrajectory = "Declining"
	TrajectoryUnknown   GrowthTrajectory = "Unknown"
)

// ParseGrowthTrajectory maps free text onto a known trajectory, defaulting to Unknown.
func ParseGrowthTrajectory(value string) GrowthTrajectory {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "rising":
		return TrajectoryRising
	case "stable":
		return TrajectoryStable
	case "declining":
		return TrajectoryDeclining
	default:
		return TrajectoryUnknown
	}
}

// AIAnalysis represents the structured analysis returned by an external AI provider.
// Every field is optional; missing data is resolved to neutral defaults by the fusion step.
type AIAnalysis struct {
	Pros            StringList     `json:"pros,omitempty"`
	Cons            StringList     `json:"cons,omitempty"`
	Summary         string         `json:"summary,omitempty"`
	ScoreAdjustment OptionalFloat  `json:"score_adjustment"`
	RedFlags        StringList     `json:"red_flags,omitempty"`
	ExtractedData   *ExtractedData `json:"extracted_data,omitempty"`
}

// ExtractedData holds the AI-derived candidate metrics. Numeric scores are on a 0-100 scale.
type ExtractedData struct {
	Skills                 StringList    `json:"skills,omitempty"`
	SkillsMatchScore       OptionalFloat `json:"skills_match_score"`
	YearsOfExperience      OptionalFloat `json:"years_of_experience"`
	EducationLevel         string        `json:"education_level,omitempty"`
	RelevanceScore         OptionalFloat `json:"relevance_score"`
	TechnicalDepthScore    OptionalFloat `json:"technical_depth_score"`
	CultureFitScore        OptionalFloat `json:"culture_fit_score"`
	ProjectComplexityScore OptionalFloat `json:"project_complexity_score"`
	CommunicationScore     OptionalFloat `json:"communication_score"`
	LeadershipScore        OptionalFloat `json:"leadership_score"`
	MissingMustHaves       StringList    `json:"missing_must_haves,omitempty"`
	NiceToHavesPresent     StringList    `json:"nice_to_haves_present,omitempty"`
	AIGeneratedProbability OptionalFloat `json:"ai_generated_probability"`
	GrowthTrajectory       string        `json:"growth_trajectory,omitempty"`
	OverallRecommendation  string        `json:"overall_recommendation,omitempty"`
	CurrentRole            string        `json:"current_role,omitempty"`
}

// AIInsights is the condensed view of an AI analysis carried on a score result
type AIInsights struct {
	Pros       []string `json:"pros"`
	Cons       []string `json:"cons"`
	Summary    string   `json:"summary"`
	Adjustment float64  `json:"adjustment"`
}

// OptionalFloat is a number that may be absent or malformed in the source JSON.
// Numeric strings are accepted; anything else decodes as absent instead of failing.
type OptionalFloat struct {
	Value float64
	Valid bool
}

// Float returns an OptionalFloat holding v.
func Float(v float64) OptionalFloat {
	return OptionalFloat{Value: v, Valid: true}
}

// Or returns the value when present, otherwise fallback.
func (f OptionalFloat) Or(fallback float64) float64 {
	if f.Valid {
		return f.Value
	}
	return fallback
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *OptionalFloat) UnmarshalJSON(data []byte) error {
	*f = OptionalFloat{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var number float64
	if err := json.Unmarshal(data, &number); err == nil {
		*f = finite(number)
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		text = strings.TrimSuffix(strings.TrimSpace(text), "%")
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
			*f = finite(parsed)
		}
	}
	return nil
}

// finite drops NaN and infinities, which cannot be scored or re-encoded as JSON.
func finite(v float64) OptionalFloat {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return OptionalFloat{}
	}
	return Float(v)
}

// MarshalJSON implements json.Marshaler.
func (f OptionalFloat) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// StringList is a list of strings that tolerates a bare string, mixed element types, or null.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	*l = nil
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if strings.TrimSpace(single) != "" {
			*l = StringList{strings.TrimSpace(single)}
		}
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	result := make(StringList, 0, len(items))
	for _, item := range items {
		var text string
		if err := json.Unmarshal(item, &text); err == nil {
			if text = strings.TrimSpace(text); text != "" {
				result = append(result, text)
			}
			continue
		}
		var number float64
		if err := json.Unmarshal(item, &number); err == nil {
			result = append(result, strconv.FormatFloat(number, 'f', -1, 64))
		}
	}
	*l = result
	return nil
}
