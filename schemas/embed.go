// Package schemas holds the JSON Schema documents for the candidate scorer's JSON artifacts.
package schemas

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

// Schema file names
const (
	AIAnalysis       = "ai_analysis.schema.json"
	CandidateProfile = "candidate_profile.schema.json"
	ScoreResult      = "score_result.schema.json"
	RankedCandidates = "ranked_candidates.schema.json"
)

//go:embed *.schema.json
var files embed.FS

// Load returns the content of an embedded schema.
func Load(name string) (string, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read embedded schema %s: %w", name, err)
	}
	return string(data), nil
}

// Names lists every embedded schema, sorted.
func Names() []string {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}
