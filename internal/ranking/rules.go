package ranking

import (
	"fmt"
	"math"

	"github.com/jonathan/candidate-scorer/internal/fusion"
	"github.com/jonathan/candidate-scorer/internal/types"
)

// Rule names recorded on applied penalties and bonuses
const (
	RuleMissingMustHaves   = "missing_must_haves"
	RuleSevereLowRelevance = "severe_low_relevance"
	RuleLowRelevance       = "low_relevance"
	RuleAIGeneratedHigh    = "ai_generated_high"
	RuleAIGeneratedLikely  = "ai_generated_moderate"
	RuleMissingLinkedIn    = "missing_linkedin"
	RuleRedFlags           = "red_flags"
	RuleAIAdjustment       = "ai_adjustment"

	RuleUnicorn          = "unicorn"
	RuleLeadership       = "leadership"
	RuleCommunication    = "communication"
	RuleNiceToHaves      = "nice_to_haves"
	RuleRisingTrajectory = "rising_trajectory"
)

// penalties returns the penalty rules that fire, in application order. Points are negative.
func (s *Scorer) penalties(profile *types.CandidateProfile, metrics fusion.Metrics) []types.AppliedRule {
	p := s.cfg.Penalties
	t := s.cfg.Thresholds
	rules := []types.AppliedRule{}

	if n := len(metrics.MissingMustHaves); n > 0 {
		rules = append(rules, penalty(RuleMissingMustHaves,
			fmt.Sprintf("Missing %d must-have skill(s)", n),
			math.Min(float64(n)*p.MissingMustHavePer, p.MissingMustHaveCap)))
	}

	switch {
	case metrics.Relevance < t.SevereLowRelevance:
		rules = append(rules, penalty(RuleSevereLowRelevance,
			fmt.Sprintf("Very low relevance (%g)", metrics.Relevance), p.SevereLowRelevance))
	case metrics.Relevance < t.LowRelevance:
		rules = append(rules, penalty(RuleLowRelevance,
			fmt.Sprintf("Low relevance (%g)", metrics.Relevance), p.LowRelevance))
	}

	switch {
	case metrics.AIGeneratedProbability > t.AIGeneratedHigh:
		rules = append(rules, penalty(RuleAIGeneratedHigh,
			fmt.Sprintf("Answers very likely AI-generated (%g%%)", metrics.AIGeneratedProbability), p.AIGeneratedHigh))
	case metrics.AIGeneratedProbability > t.AIGeneratedModerate:
		rules = append(rules, penalty(RuleAIGeneratedLikely,
			fmt.Sprintf("Answers possibly AI-generated (%g%%)", metrics.AIGeneratedProbability), p.AIGeneratedModerate))
	}

	if profile.LinkedInURL == "" {
		rules = append(rules, penalty(RuleMissingLinkedIn, "No LinkedIn profile", p.MissingLinkedIn))
	}

	if n := len(metrics.RedFlags); n > 0 {
		rules = append(rules, penalty(RuleRedFlags,
			fmt.Sprintf("%d red flag(s)", n),
			math.Min(float64(n)*p.RedFlagPer, p.RedFlagCap)))
	}

	return rules
}

// bonuses returns the bonus rules that fire, in application order
func (s *Scorer) bonuses(metrics fusion.Metrics) []types.AppliedRule {
	b := s.cfg.Bonuses
	t := s.cfg.Thresholds
	rules := []types.AppliedRule{}

	if metrics.Relevance > t.UnicornRelevance && metrics.TechnicalDepth > t.UnicornTechnicalDepth {
		rules = append(rules, bonus(RuleUnicorn, "High relevance and technical depth", b.Unicorn))
	}
	if metrics.Leadership > t.Leadership {
		rules = append(rules, bonus(RuleLeadership, "Strong leadership", b.Leadership))
	}
	if metrics.Communication > t.Communication {
		rules = append(rules, bonus(RuleCommunication, "Excellent communication", b.Communication))
	}
	if n := len(metrics.NiceToHavesPresent); n > 0 {
		rules = append(rules, bonus(RuleNiceToHaves,
			fmt.Sprintf("%d nice-to-have skill(s)", n),
			math.Min(float64(n)*b.NiceToHavePer, b.NiceToHaveCap)))
	}
	if metrics.GrowthTrajectory == types.TrajectoryRising {
		rules = append(rules, bonus(RuleRisingTrajectory, "Rising career trajectory", b.RisingTrajectory))
	}

	return rules
}

// adjustment returns the AI score adjustment as a rule, or nil when it is zero
func (s *Scorer) adjustment(metrics fusion.Metrics) *types.AppliedRule {
	if metrics.Adjustment == 0 {
		return nil
	}
	return &types.AppliedRule{
		Name:        RuleAIAdjustment,
		Description: "AI score adjustment",
		Points:      metrics.Adjustment,
	}
}

func penalty(name, description string, points float64) types.AppliedRule {
	return types.AppliedRule{Name: name, Description: description, Points: -points}
}

func bonus(name, description string, points float64) types.AppliedRule {
	return types.AppliedRule{Name: name, Description: description, Points: points}
}
