// Package config provides the scoring rule configuration and its loading and validation.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// weightSumTolerance is how far the dimension weights may drift from 1.0
const weightSumTolerance = 1e-9

// ScoringConfig holds every weight, penalty, bonus, and threshold used by the scorer.
// It is passed by value and never modified after validation.
type ScoringConfig struct {
	Weights    Weights      `json:"weights" yaml:"weights"`
	Penalties  Penalties    `json:"penalties" yaml:"penalties"`
	Bonuses    Bonuses      `json:"bonuses" yaml:"bonuses"`
	Thresholds Thresholds   `json:"thresholds" yaml:"thresholds"`
	Grades     GradeCutoffs `json:"grades" yaml:"grades"`

	// MaxAdjustment bounds the AI score adjustment to [-MaxAdjustment, +MaxAdjustment]
	MaxAdjustment float64 `json:"max_adjustment" yaml:"max_adjustment" validate:"gte=0,lte=100"`
	// NeutralScore is used for any metric the AI analysis does not supply
	NeutralScore float64 `json:"neutral_score" yaml:"neutral_score" validate:"gte=0,lte=100"`
}

// Weights is the share of each dimension in the weighted total. Must sum to 1.0.
type Weights struct {
	SkillsMatch       float64 `json:"skills_match" yaml:"skills_match" validate:"gte=0,lte=1"`
	Experience        float64 `json:"experience" yaml:"experience" validate:"gte=0,lte=1"`
	Education         float64 `json:"education" yaml:"education" validate:"gte=0,lte=1"`
	Relevance         float64 `json:"relevance" yaml:"relevance" validate:"gte=0,lte=1"`
	TechnicalDepth    float64 `json:"technical_depth" yaml:"technical_depth" validate:"gte=0,lte=1"`
	ProjectComplexity float64 `json:"project_complexity" yaml:"project_complexity" validate:"gte=0,lte=1"`
	Communication     float64 `json:"communication" yaml:"communication" validate:"gte=0,lte=1"`
	CultureFit        float64 `json:"culture_fit" yaml:"culture_fit" validate:"gte=0,lte=1"`
	Keywords          float64 `json:"keywords" yaml:"keywords" validate:"gte=0,lte=1"`
}

// Sum returns the total of all dimension weights.
func (w Weights) Sum() float64 {
	return w.SkillsMatch + w.Experience + w.Education + w.Relevance + w.TechnicalDepth +
		w.ProjectComplexity + w.Communication + w.CultureFit + w.Keywords
}

// Penalties are the points subtracted when a penalty rule fires
type Penalties struct {
	MissingMustHavePer  float64 `json:"missing_must_have_per" yaml:"missing_must_have_per" validate:"gte=0"`
	MissingMustHaveCap  float64 `json:"missing_must_have_cap" yaml:"missing_must_have_cap" validate:"gte=0"`
	SevereLowRelevance  float64 `json:"severe_low_relevance" yaml:"severe_low_relevance" validate:"gte=0"`
	LowRelevance        float64 `json:"low_relevance" yaml:"low_relevance" validate:"gte=0"`
	AIGeneratedHigh     float64 `json:"ai_generated_high" yaml:"ai_generated_high" validate:"gte=0"`
	AIGeneratedModerate float64 `json:"ai_generated_moderate" yaml:"ai_generated_moderate" validate:"gte=0"`
	MissingLinkedIn     float64 `json:"missing_linkedin" yaml:"missing_linkedin" validate:"gte=0"`
	RedFlagPer          float64 `json:"red_flag_per" yaml:"red_flag_per" validate:"gte=0"`
	RedFlagCap          float64 `json:"red_flag_cap" yaml:"red_flag_cap" validate:"gte=0"`
}

// Bonuses are the points added when a bonus rule fires
type Bonuses struct {
	Unicorn          float64 `json:"unicorn" yaml:"unicorn" validate:"gte=0"`
	Leadership       float64 `json:"leadership" yaml:"leadership" validate:"gte=0"`
	Communication    float64 `json:"communication" yaml:"communication" validate:"gte=0"`
	NiceToHavePer    float64 `json:"nice_to_have_per" yaml:"nice_to_have_per" validate:"gte=0"`
	NiceToHaveCap    float64 `json:"nice_to_have_cap" yaml:"nice_to_have_cap" validate:"gte=0"`
	RisingTrajectory float64 `json:"rising_trajectory" yaml:"rising_trajectory" validate:"gte=0"`
}

// Thresholds are the cut-off values that decide whether a rule fires.
// Metric thresholds are strict ("greater than" / "less than") comparisons on a 0-100 scale.
type Thresholds struct {
	SevereLowRelevance    float64 `json:"severe_low_relevance" yaml:"severe_low_relevance" validate:"gte=0,lte=100"`
	LowRelevance          float64 `json:"low_relevance" yaml:"low_relevance" validate:"gte=0,lte=100"`
	AIGeneratedHigh       float64 `json:"ai_generated_high" yaml:"ai_generated_high" validate:"gte=0,lte=100"`
	AIGeneratedModerate   float64 `json:"ai_generated_moderate" yaml:"ai_generated_moderate" validate:"gte=0,lte=100"`
	UnicornRelevance      float64 `json:"unicorn_relevance" yaml:"unicorn_relevance" validate:"gte=0,lte=100"`
	UnicornTechnicalDepth float64 `json:"unicorn_technical_depth" yaml:"unicorn_technical_depth" validate:"gte=0,lte=100"`
	Leadership            float64 `json:"leadership" yaml:"leadership" validate:"gte=0,lte=100"`
	Communication         float64 `json:"communication" yaml:"communication" validate:"gte=0,lte=100"`

	// Skills dimension
	SkillPointsPerMatch   float64 `json:"skill_points_per_match" yaml:"skill_points_per_match" validate:"gte=0,lte=100"`
	SkillDensityBonus     float64 `json:"skill_density_bonus" yaml:"skill_density_bonus" validate:"gte=0,lte=100"`
	SkillDensityRatio     float64 `json:"skill_density_ratio" yaml:"skill_density_ratio" validate:"gte=0,lte=1"`
	SkillDensityMinSkills int     `json:"skill_density_min_skills" yaml:"skill_density_min_skills" validate:"gte=0"`
	AISkillBlend          float64 `json:"ai_skill_blend" yaml:"ai_skill_blend" validate:"gte=0,lte=1"`

	// Keyword dimension
	KeywordScale float64 `json:"keyword_scale" yaml:"keyword_scale" validate:"gt=0"`

	// Feedback bands
	PositiveFeedback float64 `json:"positive_feedback" yaml:"positive_feedback" validate:"gte=0,lte=100"`
	NeutralFeedback  float64 `json:"neutral_feedback" yaml:"neutral_feedback" validate:"gte=0,lte=100,ltefield=PositiveFeedback"`
	DiverseSkills    int     `json:"diverse_skills" yaml:"diverse_skills" validate:"gte=0"`
}

// GradeCutoffs are the minimum total scores for each letter grade; anything lower is F
type GradeCutoffs struct {
	A float64 `json:"a" yaml:"a" validate:"gte=0,lte=100"`
	B float64 `json:"b" yaml:"b" validate:"gte=0,lte=100,ltefield=A"`
	C float64 `json:"c" yaml:"c" validate:"gte=0,lte=100,ltefield=B"`
	D float64 `json:"d" yaml:"d" validate:"gte=0,lte=100,ltefield=C"`
}

// Grade returns the letter grade for a total score.
func (g GradeCutoffs) Grade(score float64) string {
	switch {
	case score >= g.A:
		return "A"
	case score >= g.B:
		return "B"
	case score >= g.C:
		return "C"
	case score >= g.D:
		return "D"
	default:
		return "F"
	}
}

// DefaultScoringConfig returns the standard nine-dimension rule set.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		Weights: Weights{
			SkillsMatch:       0.20,
			Experience:        0.10,
			Education:         0.05,
			Relevance:         0.25,
			TechnicalDepth:    0.15,
			ProjectComplexity: 0.10,
			Communication:     0.05,
			CultureFit:        0.05,
			Keywords:          0.05,
		},
		Penalties: Penalties{
			MissingMustHavePer:  8,
			MissingMustHaveCap:  35,
			SevereLowRelevance:  25,
			LowRelevance:        15,
			AIGeneratedHigh:     12,
			AIGeneratedModerate: 5,
			MissingLinkedIn:     2,
			RedFlagPer:          5,
			RedFlagCap:          20,
		},
		Bonuses: Bonuses{
			Unicorn:          8,
			Leadership:       5,
			Communication:    3,
			NiceToHavePer:    2,
			NiceToHaveCap:    6,
			RisingTrajectory: 5,
		},
		Thresholds: Thresholds{
			SevereLowRelevance:    25,
			LowRelevance:          40,
			AIGeneratedHigh:       85,
			AIGeneratedModerate:   70,
			UnicornRelevance:      85,
			UnicornTechnicalDepth: 85,
			Leadership:            80,
			Communication:         85,
			SkillPointsPerMatch:   10,
			SkillDensityBonus:     5,
			SkillDensityRatio:     0.5,
			SkillDensityMinSkills: 0,
			AISkillBlend:          0.8,
			KeywordScale:          150,
			PositiveFeedback:      80,
			NeutralFeedback:       60,
			DiverseSkills:         5,
		},
		Grades: GradeCutoffs{
			A: 90,
			B: 80,
			C: 70,
			D: 60,
		},
		MaxAdjustment: 20,
		NeutralScore:  50,
	}
}

// ConfigError represents an invalid or unreadable scoring configuration
type ConfigError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	prefix := "config error"
	if e.Field != "" {
		prefix = fmt.Sprintf("config error in %s", e.Field)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Validate checks field ranges and that the weights sum to 1.0.
func (c ScoringConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		field := ""
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			field = fieldErrs[0].Namespace()
		}
		return &ConfigError{Field: field, Message: "invalid value", Cause: err}
	}

	if sum := c.Weights.Sum(); math.Abs(sum-1.0) > weightSumTolerance {
		return &ConfigError{
			Field:   "weights",
			Message: fmt.Sprintf("weights must sum to 1.0, got %.6f", sum),
		}
	}

	if c.Thresholds.SevereLowRelevance > c.Thresholds.LowRelevance {
		return &ConfigError{Field: "thresholds", Message: "severe_low_relevance must not exceed low_relevance"}
	}
	if c.Thresholds.AIGeneratedModerate > c.Thresholds.AIGeneratedHigh {
		return &ConfigError{Field: "thresholds", Message: "ai_generated_moderate must not exceed ai_generated_high"}
	}

	return nil
}

// LoadScoringConfig reads a JSON or YAML scoring profile layered over DefaultScoringConfig.
// Keys missing from the file keep their default values. The result is validated.
func LoadScoringConfig(path string) (ScoringConfig, error) {
	if path == "" {
		return ScoringConfig{}, &ConfigError{Message: "config path is empty"}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ScoringConfig{}, &ConfigError{Message: fmt.Sprintf("failed to read config file %s", path), Cause: err}
	}

	cfg, err := ParseScoringConfig(data, formatForPath(path))
	if err != nil {
		return ScoringConfig{}, err
	}
	return cfg, nil
}

// Format identifies the encoding of a scoring profile
type Format string

// Supported scoring profile encodings
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func formatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseScoringConfig decodes a scoring profile in the given format over the defaults and validates it.
func ParseScoringConfig(data []byte, format Format) (ScoringConfig, error) {
	cfg := DefaultScoringConfig()

	switch format {
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return ScoringConfig{}, &ConfigError{Message: "failed to parse config YAML", Cause: err}
		}
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return ScoringConfig{}, &ConfigError{Message: "failed to parse config JSON", Cause: err}
		}
	default:
		return ScoringConfig{}, &ConfigError{Message: fmt.Sprintf("unsupported config format %q", format)}
	}

	if err := cfg.Validate(); err != nil {
		return ScoringConfig{}, err
	}
	return cfg, nil
}
