package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-scorer/internal/logging"
	"github.com/jonathan/candidate-scorer/internal/observability"
	"github.com/jonathan/candidate-scorer/internal/pipeline"
	schemafiles "github.com/jonathan/candidate-scorer/schemas"
)

// topFeedbackRows is how many candidates get their feedback printed in verbose mode
const topFeedbackRows = 3

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Score and rank every resume in a directory",
	Long: "Scores every resume in a directory against one job description and writes the ranked " +
		"candidates as JSON. A resume named jane.txt picks up an AI analysis from jane.ai.json when present. " +
		"Candidates with equal scores keep file name order.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runRank(cmd.Context(), rankOptions{
			ResumesDir: rankResumes,
			JobPath:    rankJob,
			Title:      rankTitle,
			Workers:    rankWorkers,
			Top:        rankTop,
			ConfigPath: configPath,
			OutPath:    rankOutput,
			Verbose:    rankVerbose,
		}, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

var (
	rankResumes string
	rankJob     string
	rankTitle   string
	rankWorkers int
	rankTop     int
	rankOutput  string
	rankVerbose bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankResumes, "resumes", "d", "", "Directory of resume documents (required)")
	rankCmd.Flags().StringVarP(&rankJob, "job", "j", "", "Path to the job description document (required)")
	rankCmd.Flags().StringVarP(&rankTitle, "title", "t", "", "Job title (default first line of the job description)")
	rankCmd.Flags().IntVarP(&rankWorkers, "workers", "w", pipeline.DefaultWorkers, "Number of candidates processed concurrently")
	rankCmd.Flags().IntVar(&rankTop, "top", 0, "Rows shown in verbose output (0 shows all)")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output RankedCandidates JSON file (default stdout)")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print the ranking table and top feedback")

	markRequired(rankCmd, "resumes", "job")

	rootCmd.AddCommand(rankCmd)
}

type rankOptions struct {
	ResumesDir string
	JobPath    string
	Title      string
	Workers    int
	Top        int
	ConfigPath string
	OutPath    string
	Verbose    bool
}

func runRank(ctx context.Context, opts rankOptions, out, diag io.Writer) error {
	scorer, err := loadScorer(opts.ConfigPath)
	if err != nil {
		return err
	}
	logger := logging.Ctx(ctx)

	ranked, err := pipeline.Run(ctx, scorer, pipeline.RunOptions{
		JobPath:    opts.JobPath,
		JobTitle:   opts.Title,
		ResumesDir: opts.ResumesDir,
		Options: pipeline.Options{
			Workers: opts.Workers,
			OnProgress: func(event pipeline.ProgressEvent) {
				logger.Debug().Str("step", event.Step).Str("category", event.Category).Msg(event.Message)
			},
		},
	})
	if err != nil {
		return err
	}

	if opts.Verbose {
		printer := observability.NewPrinter(diag)
		printer.PrintRanking(ranked, opts.Top)
		feedbackRows := topFeedbackRows
		if opts.Top > 0 {
			feedbackRows = min(opts.Top, topFeedbackRows)
		}
		printer.PrintTopFeedback(ranked.Ranked, feedbackRows)
	}

	return writeJSON(ctx, ranked, schemafiles.RankedCandidates, opts.OutPath, out)
}
