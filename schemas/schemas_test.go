package schemas_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/jonathan/candidate-scorer/internal/schemas"
	schemafiles "github.com/jonathan/candidate-scorer/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames_AllSchemasEmbedded(t *testing.T) {
	assert.Equal(t, []string{
		schemafiles.AIAnalysis,
		schemafiles.CandidateProfile,
		schemafiles.RankedCandidates,
		schemafiles.ScoreResult,
	}, schemafiles.Names())
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemafiles.Names() {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(schemaFile)
			require.NoError(t, err, "should be able to read schema file")

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj), "schema file should be valid JSON: %s", schemaFile)

			_, hasType := schemaObj["type"]
			_, hasSchema := schemaObj["$schema"]
			assert.True(t, hasType && hasSchema, "schema should declare $schema and type")
		})
	}
}

func TestLoad_MatchesFileOnDisk(t *testing.T) {
	for _, schemaFile := range schemafiles.Names() {
		embedded, err := schemafiles.Load(schemaFile)
		require.NoError(t, err)

		onDisk, err := os.ReadFile(schemaFile)
		require.NoError(t, err)

		assert.Equal(t, string(onDisk), embedded)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := schemafiles.Load("nope.schema.json")
	assert.Error(t, err)
}

func TestSchemas_CompileAgainstEmptyObject(t *testing.T) {
	// A schema that fails to compile surfaces as SchemaLoadError rather than ValidationError
	for _, schemaFile := range schemafiles.Names() {
		content, err := schemafiles.Load(schemaFile)
		require.NoError(t, err)

		err = schemas.ValidateWithSchema(content, []byte(`{}`))
		if err != nil {
			_, isLoadErr := err.(*schemas.SchemaLoadError)
			assert.False(t, isLoadErr, "schema %s failed to load: %v", schemaFile, err)
		}
	}
}

func TestCandidateProfileSchema_RejectsUnknownDegree(t *testing.T) {
	content, err := schemafiles.Load(schemafiles.CandidateProfile)
	require.NoError(t, err)

	doc := `{
		"raw_text": "x",
		"skills": [],
		"education": [{"degree": "Diploma"}],
		"experience_years": null,
		"certifications": [],
		"languages": [],
		"summary": "",
		"parsing_failed": false
	}`

	err = schemas.ValidateWithSchema(content, []byte(doc))
	require.Error(t, err)
	_, ok := err.(*schemas.ValidationError)
	assert.True(t, ok)
}
