// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/candidate-scorer/internal/skills"
	"github.com/jonathan/candidate-scorer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(line))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad truncates or right-pads a line to the box's inner width, counting runes
func pad(line string) string {
	width := boxWidth - 4
	if utf8.RuneCountInString(line) > width {
		runes := []rune(line)
		line = string(runes[:width-3]) + "..."
	}
	return line + strings.Repeat(" ", width-utf8.RuneCountInString(line))
}

// PrintProfile outputs a human-readable summary of an extracted candidate profile, with
// skills grouped by taxonomy category.
func (p *Printer) PrintProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:       %s\n", orDash(profile.Name)))
	sb.WriteString(fmt.Sprintf("Email:      %s\n", orDash(profile.Email)))
	sb.WriteString(fmt.Sprintf("Phone:      %s\n", orDash(profile.Phone)))
	sb.WriteString(fmt.Sprintf("LinkedIn:   %s\n", orDash(profile.LinkedInURL)))
	if profile.ExperienceYears != nil {
		sb.WriteString(fmt.Sprintf("Experience: %g years\n", *profile.ExperienceYears))
	} else {
		sb.WriteString("Experience: -\n")
	}
	if profile.ParsingFailed {
		sb.WriteString(fmt.Sprintf("⚠ Parsing failed: %s\n", profile.Error))
	}

	if len(profile.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		grouped := make(map[skills.Category][]string)
		var other []string
		for _, skill := range profile.Skills {
			if category, ok := skills.CategoryOf(skill); ok {
				grouped[category] = append(grouped[category], skill)
			} else {
				other = append(other, skill)
			}
		}
		for _, category := range skills.CategoryOrder() {
			if names := grouped[category]; len(names) > 0 {
				sb.WriteString(fmt.Sprintf("  • %s: %s\n", category, strings.Join(names, ", ")))
			}
		}
		if len(other) > 0 {
			sb.WriteString(fmt.Sprintf("  • other: %s\n", strings.Join(other, ", ")))
		}
	}

	if len(profile.Education) > 0 {
		sb.WriteString("\nEducation:\n")
		for _, edu := range profile.Education {
			sb.WriteString(fmt.Sprintf("  • %s\n", edu.Degree))
		}
	}

	if len(profile.Certifications) > 0 {
		sb.WriteString(fmt.Sprintf("\nCertifications: %s\n", strings.Join(profile.Certifications, ", ")))
	}

	p.printBox("CANDIDATE PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoreResult outputs the score breakdown, applied rules, and feedback for one candidate.
func (p *Printer) PrintScoreResult(result *types.ScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidate: %s\n", result.CandidateName))
	sb.WriteString(fmt.Sprintf("Total:     %.2f (%s)\n", result.TotalScore, result.Grade))
	sb.WriteString("\n")

	b := result.Breakdown
	sb.WriteString("Breakdown:\n")
	for _, row := range []struct {
		label string
		value float64
	}{
		{"Skills match", b.SkillsMatch},
		{"Experience", b.Experience},
		{"Education", b.Education},
		{"Relevance", b.Relevance},
		{"Technical depth", b.TechnicalDepth},
		{"Project complexity", b.ProjectComplexity},
		{"Communication", b.Communication},
		{"Culture fit", b.CultureFit},
		{"Keywords", b.Keywords},
	} {
		sb.WriteString(fmt.Sprintf("  %-20s %6.2f\n", row.label, row.value))
	}

	if len(result.Penalties) > 0 || len(result.Bonuses) > 0 {
		sb.WriteString("\nAdjustments:\n")
		for _, rule := range append(append([]types.AppliedRule{}, result.Penalties...), result.Bonuses...) {
			sb.WriteString(fmt.Sprintf("  %+6g  %s\n", rule.Points, rule.Description))
		}
	}

	if len(result.Feedback) > 0 {
		sb.WriteString("\nFeedback:\n")
		for _, line := range result.Feedback {
			sb.WriteString(fmt.Sprintf("  %s\n", line))
		}
	}

	p.printBox("CANDIDATE SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs a ranked table of candidates, showing at most limit rows (0 shows all).
func (p *Printer) PrintRanking(ranked *types.RankedCandidates, limit int) {
	if ranked == nil {
		return
	}

	var sb strings.Builder
	if ranked.JobTitle != "" {
		sb.WriteString(fmt.Sprintf("Job: %s\n\n", ranked.JobTitle))
	}
	if len(ranked.Ranked) == 0 {
		sb.WriteString("No candidates")
		p.printBox("CANDIDATE RANKING", sb.String())
		return
	}

	count := len(ranked.Ranked)
	if limit > 0 && limit < count {
		count = limit
	}
	for i := 0; i < count; i++ {
		result := ranked.Ranked[i]
		marker := ""
		if result.ParsingFailed {
			marker = " ⚠"
		}
		sb.WriteString(fmt.Sprintf("%2d. %-30s %6.2f %s%s\n", result.Rank, result.CandidateName, result.TotalScore, result.Grade, marker))
	}
	if len(ranked.Ranked) > count {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(ranked.Ranked)-count))
	}

	p.printBox("CANDIDATE RANKING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTopFeedback outputs the first few feedback lines for each of the top candidates.
func (p *Printer) PrintTopFeedback(ranked []*types.ScoreResult, top int) {
	if len(ranked) == 0 {
		return
	}
	if top <= 0 || top > len(ranked) {
		top = len(ranked)
	}

	var sb strings.Builder
	for i := 0; i < top; i++ {
		result := ranked[i]
		sb.WriteString(fmt.Sprintf("#%d %s\n", result.Rank, result.CandidateName))
		count := min(len(result.Feedback), maxItemsToShow)
		for j := 0; j < count; j++ {
			sb.WriteString(fmt.Sprintf("  %s\n", result.Feedback[j]))
		}
		if i < top-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("TOP CANDIDATES", strings.TrimSuffix(sb.String(), "\n"))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
