package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonathan/candidate-scorer/internal/config"
	"github.com/jonathan/candidate-scorer/internal/fusion"
	"github.com/jonathan/candidate-scorer/internal/logging"
	"github.com/jonathan/candidate-scorer/internal/ranking"
	"github.com/jonathan/candidate-scorer/internal/schemas"
	"github.com/jonathan/candidate-scorer/internal/types"
)

// loadScorer builds a scorer from the given config file, falling back to the file named by
// CANDIDATE_SCORER_CONFIG and then to the default rule set.
func loadScorer(path string) (*ranking.Scorer, error) {
	if path == "" {
		path = os.Getenv(configEnvVar)
	}
	if path == "" {
		return ranking.NewDefaultScorer(), nil
	}

	cfg, err := config.LoadScoringConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load scoring config: %w", err)
	}
	return ranking.NewScorer(cfg)
}

// loadAnalysis reads an optional AI analysis file. Unusable analyses are logged and treated
// as absent.
func loadAnalysis(ctx context.Context, path string) *types.AIAnalysis {
	if path == "" {
		return nil
	}
	logger := logging.Ctx(ctx)

	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Warn().Err(err).Str("file", path).Msg("could not read AI analysis, scoring without it")
		return nil
	}
	analysis, err := fusion.DecodeAnalysis(raw)
	if err != nil {
		logger.Warn().Err(err).Str("file", path).Msg("ignoring unusable AI analysis")
		return nil
	}
	return analysis
}

// writeJSON marshals value, checks it against an embedded schema, and writes it to outPath,
// or to out when outPath is empty. A schema mismatch is logged, not returned.
func writeJSON(ctx context.Context, value any, schemaName, outPath string, out io.Writer) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output JSON: %w", err)
	}

	// Output validation is a safety check, not a requirement
	if err := schemas.Validate(schemaName, data); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("schema", schemaName).Msg("output validation failed")
	}

	if outPath == "" {
		_, err := fmt.Fprintln(out, string(data))
		return err
	}

	outputDir := filepath.Dir(outPath)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outPath, err)
	}
	return nil
}

func markRequired(flags interface{ MarkFlagRequired(string) error }, names ...string) {
	for _, name := range names {
		if err := flags.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}
}
