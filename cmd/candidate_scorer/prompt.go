package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-scorer/internal/ingestion"
	"github.com/jonathan/candidate-scorer/internal/llm"
	"github.com/jonathan/candidate-scorer/internal/pipeline"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the AI analysis prompt for a candidate",
	Long: "Builds the candidate analysis prompt to send to an AI provider. The provider's JSON reply " +
		"can be passed to score with --ai, or saved next to the resume as <name>.ai.json for rank.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runPrompt(promptOptions{
			ResumePath:  promptResume,
			JobPath:     promptJob,
			Title:       promptTitle,
			AnswersPath: promptAnswers,
			ConfigPath:  configPath,
			OutPath:     promptOutput,
		}, cmd.OutOrStdout())
	},
}

var (
	promptResume  string
	promptJob     string
	promptTitle   string
	promptAnswers string
	promptOutput  string
)

func init() {
	promptCmd.Flags().StringVarP(&promptResume, "resume", "r", "", "Path to the resume document (required)")
	promptCmd.Flags().StringVarP(&promptJob, "job", "j", "", "Path to the job description document (required)")
	promptCmd.Flags().StringVarP(&promptTitle, "title", "t", "", "Job title (default first line of the job description)")
	promptCmd.Flags().StringVar(&promptAnswers, "answers", "", "Path to a JSON array of {question, answer} interview answers")
	promptCmd.Flags().StringVarP(&promptOutput, "out", "o", "", "Path to output prompt file (default stdout)")

	markRequired(promptCmd, "resume", "job")

	rootCmd.AddCommand(promptCmd)
}

type promptOptions struct {
	ResumePath  string
	JobPath     string
	Title       string
	AnswersPath string
	ConfigPath  string
	OutPath     string
}

func runPrompt(opts promptOptions, out io.Writer) error {
	scorer, err := loadScorer(opts.ConfigPath)
	if err != nil {
		return err
	}
	job, err := pipeline.LoadJob(opts.JobPath, opts.Title)
	if err != nil {
		return err
	}
	resumeText, err := ingestion.LoadDocument(opts.ResumePath)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	var answers []llm.InterviewAnswer
	if opts.AnswersPath != "" {
		content, err := os.ReadFile(opts.AnswersPath)
		if err != nil {
			return fmt.Errorf("failed to read interview answers file %s: %w", opts.AnswersPath, err)
		}
		if err := json.Unmarshal(content, &answers); err != nil {
			return fmt.Errorf("failed to unmarshal interview answers JSON: %w", err)
		}
	}

	prompt, err := llm.BuildAnalysisPrompt(llm.AnalysisRequest{
		JobTitle:         job.Title,
		JobDescription:   job.Description,
		ResumeText:       resumeText,
		InterviewAnswers: answers,
		MaxAdjustment:    scorer.Config().MaxAdjustment,
	})
	if err != nil {
		return err
	}

	if opts.OutPath == "" {
		_, err := fmt.Fprintln(out, prompt)
		return err
	}
	if dir := filepath.Dir(opts.OutPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(opts.OutPath, []byte(prompt+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write prompt to output file %s: %w", opts.OutPath, err)
	}
	return nil
}
