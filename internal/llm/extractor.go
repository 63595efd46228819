// Package llm prepares prompts for an external AI analysis provider and cleans its responses.
// No provider is called from here; the rendered prompt is handed to whatever client the caller uses.
package llm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/candidate-scorer/internal/prompts"
)

const maxPromptTextChars = 3000

// ExtractionSchema defines the structure for AI-based content extraction.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "CandidateAnalysis")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint shown to the model
	Description string // Description for the model
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "\"string\""
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Base every judgment on the text, do not invent experience.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// CandidateAnalysisSchema returns the output schema requested from the AI analysis provider.
func CandidateAnalysisSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "CandidateAnalysis",
		Fields: []SchemaField{
			{Name: "pros", Type: `["string"]`, Description: "3-5 specific strengths relevant to the job requirements", Required: true},
			{Name: "cons", Type: `["string"]`, Description: "3-5 specific gaps or missing skills relative to the job", Required: true},
			{Name: "summary", Type: `"string"`, Description: "2-3 sentence executive summary of the candidate's fit", Required: true},
			{Name: "score_adjustment", Type: "integer", Description: "Overall adjustment to the computed score", Required: true},
			{Name: "red_flags", Type: `["string"]`, Description: "Concerning patterns such as frequent short tenures or unexplained gaps"},
			{Name: "extracted_data", Type: extractedDataHint, Description: "All scores are 0-100", Required: true},
		},
	}
}

const extractedDataHint = `{
    "skills": ["string"],
    "skills_match_score": number,
    "years_of_experience": number,
    "education_level": "PhD|Master|Bachelor|Unknown",
    "relevance_score": number,
    "technical_depth_score": number,
    "culture_fit_score": number,
    "project_complexity_score": number,
    "communication_score": number,
    "leadership_score": number,
    "missing_must_haves": ["string"],
    "nice_to_haves_present": ["string"],
    "ai_generated_probability": number,
    "growth_trajectory": "Rising|Stable|Declining|Unknown",
    "overall_recommendation": "string",
    "current_role": "string"
  }`

// InterviewAnswer is one question/answer pair from a screening questionnaire
type InterviewAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// AnalysisRequest holds the inputs for a candidate analysis prompt
type AnalysisRequest struct {
	JobTitle         string
	JobDescription   string
	ResumeText       string
	InterviewAnswers []InterviewAnswer
	MaxAdjustment    float64
}

// BuildAnalysisPrompt renders the candidate analysis prompt. Job description and resume text
// are truncated to keep the prompt within provider limits.
func BuildAnalysisPrompt(req AnalysisRequest) (string, error) {
	template, err := prompts.Get(prompts.AnalysisFile, prompts.CandidateAnalysis)
	if err != nil {
		return "", fmt.Errorf("failed to load analysis prompt: %w", err)
	}

	schema := CandidateAnalysisSchema()
	schema.Description, err = prompts.Render(template, map[string]string{
		"JobTitle":       strings.TrimSpace(req.JobTitle),
		"JobDescription": truncate(req.JobDescription, maxPromptTextChars),
		"MaxAdjustment":  strconv.FormatFloat(req.MaxAdjustment, 'f', -1, 64),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render analysis prompt: %w", err)
	}

	input := truncate(req.ResumeText, maxPromptTextChars)
	if len(req.InterviewAnswers) > 0 {
		header, err := prompts.Get(prompts.AnalysisFile, prompts.InterviewAnswersHeader)
		if err != nil {
			return "", fmt.Errorf("failed to load analysis prompt: %w", err)
		}
		var sb strings.Builder
		sb.WriteString(input)
		sb.WriteString("\n\n")
		sb.WriteString(header)
		sb.WriteString("\n")
		for _, qa := range req.InterviewAnswers {
			sb.WriteString(fmt.Sprintf("Q: %s\nA: %s\n", qa.Question, qa.Answer))
		}
		input = strings.TrimRight(sb.String(), "\n")
	}

	return BuildExtractionPrompt(schema, input), nil
}

// truncate cuts text to at most limit runes
func truncate(text string, limit int) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= limit {
		return string(runes)
	}
	return string(runes[:limit])
}
