package main

import (
	"context"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-scorer/internal/ingestion"
	"github.com/jonathan/candidate-scorer/internal/logging"
	"github.com/jonathan/candidate-scorer/internal/observability"
	"github.com/jonathan/candidate-scorer/internal/parsing"
	"github.com/jonathan/candidate-scorer/internal/pipeline"
	schemafiles "github.com/jonathan/candidate-scorer/schemas"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one candidate against a job description",
	Long:  "Extracts a resume, merges an optional AI analysis, and writes the ScoreResult JSON with breakdown, grade, applied penalties and bonuses, and feedback.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runScore(cmd.Context(), scoreOptions{
			ResumePath: scoreResume,
			JobPath:    scoreJob,
			Title:      scoreTitle,
			AIPath:     scoreAI,
			ConfigPath: configPath,
			OutPath:    scoreOutput,
			Verbose:    scoreVerbose,
		}, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

var (
	scoreResume  string
	scoreJob     string
	scoreTitle   string
	scoreAI      string
	scoreOutput  string
	scoreVerbose bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to the resume document (required)")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to the job description document (required)")
	scoreCmd.Flags().StringVarP(&scoreTitle, "title", "t", "", "Job title (default first line of the job description)")
	scoreCmd.Flags().StringVarP(&scoreAI, "ai", "a", "", "Path to an AI analysis JSON file")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output ScoreResult JSON file (default stdout)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a readable score breakdown")

	markRequired(scoreCmd, "resume", "job")

	rootCmd.AddCommand(scoreCmd)
}

type scoreOptions struct {
	ResumePath string
	JobPath    string
	Title      string
	AIPath     string
	ConfigPath string
	OutPath    string
	Verbose    bool
}

func runScore(ctx context.Context, opts scoreOptions, out, diag io.Writer) error {
	scorer, err := loadScorer(opts.ConfigPath)
	if err != nil {
		return err
	}
	job, err := pipeline.LoadJob(opts.JobPath, opts.Title)
	if err != nil {
		return err
	}

	profile := parsing.Extract(ingestion.ReadDocument(opts.ResumePath), filepath.Base(opts.ResumePath))
	analysis := loadAnalysis(ctx, opts.AIPath)
	result := scorer.Score(profile, job.Description, job.Title, analysis)

	logging.Ctx(ctx).Info().
		Str("candidate", result.CandidateName).
		Float64("total_score", result.TotalScore).
		Str("grade", result.Grade).
		Bool("ai_analysis", result.Insights != nil).
		Msg("candidate scored")

	if opts.Verbose {
		observability.NewPrinter(diag).PrintScoreResult(result)
	}

	return writeJSON(ctx, result, schemafiles.ScoreResult, opts.OutPath, out)
}
