package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-scorer/internal/schemas"
	schemafiles "github.com/jonathan/candidate-scorer/schemas"
)

const schemaSuffix = ".schema.json"

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON file against a bundled schema",
	Long: "Checks an AI analysis, candidate profile, score result, or ranking JSON file against its schema. " +
		"Schemas: " + strings.Join(schemaShortNames(), ", ") + ".",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runValidate(validateSchema, validateFile, cmd.OutOrStdout())
	},
}

var (
	validateSchema string
	validateFile   string
)

func init() {
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Schema name, e.g. ai_analysis (required)")
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Path to the JSON file (required)")

	markRequired(validateCmd, "schema", "file")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(schemaName, path string, out io.Writer) error {
	name := schemaName
	if !strings.HasSuffix(name, schemaSuffix) {
		name += schemaSuffix
	}

	if err := schemas.ValidateFile(name, path); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "✓ %s matches %s\n", path, name)
	return err
}

func schemaShortNames() []string {
	names := schemafiles.Names()
	for i, name := range names {
		names[i] = strings.TrimSuffix(name, schemaSuffix)
	}
	return names
}
