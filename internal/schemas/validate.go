// Package schemas checks JSON artifacts (AI analyses, profiles, score results) against the
// bundled JSON Schema documents.
package schemas

import (
	"fmt"
	"os"
	"strings"
	"sync"

	schemafiles "github.com/jonathan/candidate-scorer/schemas"
	"github.com/xeipuuv/gojsonschema"
)

// adHocSchema names schemas passed in as content rather than by bundled name
const adHocSchema = "(inline schema)"

// FieldError represents a single violation at a specific field
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every violation of one document against one schema
type ValidationError struct {
	Schema string
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return fmt.Sprintf("document does not match %s (%d violation(s)): %s", e.Schema, len(e.Errors), strings.Join(parts, "; "))
}

// SchemaLoadError represents a schema that is missing or does not compile
type SchemaLoadError struct {
	Schema  string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("schema %s: %s: %v", e.Schema, e.Message, e.Cause)
	}
	return fmt.Sprintf("schema %s: %s", e.Schema, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// DocumentError represents a document that could not be read or is not JSON
type DocumentError struct {
	Path    string
	Message string
	Cause   error
}

func (e *DocumentError) Error() string {
	prefix := "document"
	if e.Path != "" {
		prefix = "document " + e.Path
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

var (
	compiledMu sync.Mutex
	compiled   = map[string]*gojsonschema.Schema{}
)

// Validate checks document against a bundled schema such as schemafiles.AIAnalysis.
// Bundled schemas are compiled once and reused.
func Validate(schemaName string, document []byte) error {
	schema, err := bundled(schemaName)
	if err != nil {
		return err
	}
	return check(schemaName, schema, gojsonschema.NewBytesLoader(document))
}

// ValidateFile checks a JSON file on disk against a bundled schema.
func ValidateFile(schemaName, path string) error {
	document, err := os.ReadFile(path)
	if err != nil {
		return &DocumentError{Path: path, Message: "failed to read file", Cause: err}
	}
	if err := Validate(schemaName, document); err != nil {
		if docErr, ok := err.(*DocumentError); ok {
			docErr.Path = path
		}
		return err
	}
	return nil
}

// ValidateWithSchema checks document against schema content that is not bundled.
func ValidateWithSchema(schemaContent string, document []byte) error {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaContent))
	if err != nil {
		return &SchemaLoadError{Schema: adHocSchema, Message: "schema does not compile", Cause: err}
	}
	return check(adHocSchema, schema, gojsonschema.NewBytesLoader(document))
}

func bundled(name string) (*gojsonschema.Schema, error) {
	compiledMu.Lock()
	defer compiledMu.Unlock()

	if schema, ok := compiled[name]; ok {
		return schema, nil
	}

	content, err := schemafiles.Load(name)
	if err != nil {
		return nil, &SchemaLoadError{Schema: name, Message: "schema not bundled", Cause: err}
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(content))
	if err != nil {
		return nil, &SchemaLoadError{Schema: name, Message: "schema does not compile", Cause: err}
	}

	compiled[name] = schema
	return schema, nil
}

func check(schemaName string, schema *gojsonschema.Schema, document gojsonschema.JSONLoader) error {
	result, err := schema.Validate(document)
	if err != nil {
		return &DocumentError{Message: "not valid JSON", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Schema: schemaName,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
