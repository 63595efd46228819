// Package main provides the entry point for the candidate scorer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-scorer/internal/logging"
)

// configEnvVar names a default scoring config file when --config is not given
const configEnvVar = "CANDIDATE_SCORER_CONFIG"

var (
	logLevel   string
	logFormat  string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "candidate_scorer",
	Short: "Resume field extraction and candidate scoring",
	Long: "candidate_scorer extracts structured fields from resumes, scores candidates against a job " +
		"description with a configurable multi-factor rule set, and ranks batches of candidates.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logging.Init(logging.Config{Level: logLevel, Format: logFormat})
		cmd.SetContext(logging.WithContext(cmd.Context()))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", logging.FormatPretty, "Log format (pretty or json)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Scoring config file, JSON or YAML (default $"+configEnvVar+")")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
