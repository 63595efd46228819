// Package prompts holds the templates sent to the external AI analysis provider.
// Templates live in JSON files embedded at compile time, keyed by template name.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
)

//go:embed *.json
var templateFiles embed.FS

// AnalysisFile is the template file used for candidate analysis
const AnalysisFile = "analysis.json"

// Template keys in AnalysisFile
const (
	CandidateAnalysis      = "candidate-analysis"
	InterviewAnswersHeader = "interview-answers-header"
)

var placeholderPattern = regexp.MustCompile(`\{\{\.(\w+)\}\}`)

var (
	loadMu sync.Mutex
	loaded = map[string]map[string]string{}
)

// Get returns the template stored under key in file.
func Get(file, key string) (string, error) {
	templates, err := load(file)
	if err != nil {
		return "", err
	}
	template, ok := templates[key]
	if !ok {
		return "", fmt.Errorf("prompt template %q not found in %s", key, file)
	}
	return template, nil
}

// Keys returns the template keys defined in file, sorted.
func Keys(file string) ([]string, error) {
	templates, err := load(file)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(templates))
	for key := range templates {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

// Placeholders lists the distinct {{.Name}} placeholders of a template in order of first use.
func Placeholders(template string) []string {
	var names []string
	seen := map[string]bool{}
	for _, match := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		if !seen[match[1]] {
			seen[match[1]] = true
			names = append(names, match[1])
		}
	}
	return names
}

// Render substitutes every placeholder of template. A placeholder with no value is an
// error so a renamed field cannot leak a raw {{.Name}} into a prompt.
func Render(template string, values map[string]string) (string, error) {
	var missing []string
	for _, name := range Placeholders(template) {
		if _, ok := values[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("prompt template has no value for %s", strings.Join(missing, ", "))
	}

	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		return values[placeholderPattern.FindStringSubmatch(match)[1]]
	}), nil
}

func load(file string) (map[string]string, error) {
	loadMu.Lock()
	defer loadMu.Unlock()

	if templates, ok := loaded[file]; ok {
		return templates, nil
	}

	data, err := templateFiles.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", file, err)
	}
	var templates map[string]string
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", file, err)
	}

	loaded[file] = templates
	return templates, nil
}
