package fusion

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/candidate-scorer/internal/llm"
	"github.com/jonathan/candidate-scorer/internal/schemas"
	"github.com/jonathan/candidate-scorer/internal/types"
	schemafiles "github.com/jonathan/candidate-scorer/schemas"
)

// DecodeError represents an AI analysis payload that could not be used
type DecodeError struct {
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode AI analysis: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("decode AI analysis: %s", e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// DecodeAnalysis parses a raw AI provider response into an AIAnalysis.
// Markdown fences and surrounding prose are stripped, the payload is checked against the
// AI analysis schema, and malformed numeric fields decode as absent. Callers should treat
// an error as "no AI data".
func DecodeAnalysis(raw []byte) (*types.AIAnalysis, error) {
	cleaned := llm.CleanJSONBlock(string(raw))
	if cleaned == "" {
		return nil, &DecodeError{Message: "response contains no JSON object"}
	}

	if err := schemas.Validate(schemafiles.AIAnalysis, []byte(cleaned)); err != nil {
		return nil, &DecodeError{Message: "response does not match the AI analysis schema", Cause: err}
	}

	var analysis types.AIAnalysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		return nil, &DecodeError{Message: "failed to parse response JSON", Cause: err}
	}

	return &analysis, nil
}
