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
	schemafiles "github.com/jonathan/candidate-scorer/schemas"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract structured fields from a resume",
	Long:  "Reads a text, Markdown, HTML, PDF, or DOCX resume and writes the extracted CandidateProfile JSON. Unreadable documents produce a profile marked parsing_failed.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runExtract(cmd.Context(), extractOptions{
			ResumePath: extractResume,
			OutPath:    extractOutput,
			Verbose:    extractVerbose,
		}, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

var (
	extractResume  string
	extractOutput  string
	extractVerbose bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractResume, "resume", "r", "", "Path to the resume document (required)")
	extractCmd.Flags().StringVarP(&extractOutput, "out", "o", "", "Path to output CandidateProfile JSON file (default stdout)")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a readable summary of the profile")

	markRequired(extractCmd, "resume")

	rootCmd.AddCommand(extractCmd)
}

type extractOptions struct {
	ResumePath string
	OutPath    string
	Verbose    bool
}

func runExtract(ctx context.Context, opts extractOptions, out, diag io.Writer) error {
	text := ingestion.ReadDocument(opts.ResumePath)
	profile := parsing.Extract(text, filepath.Base(opts.ResumePath))

	if profile.ParsingFailed {
		logging.Ctx(ctx).Warn().Str("file", opts.ResumePath).Msg("no text could be extracted from resume")
	}
	if opts.Verbose {
		observability.NewPrinter(diag).PrintProfile(profile)
	}

	return writeJSON(ctx, profile, schemafiles.CandidateProfile, opts.OutPath, out)
}
