package skills

import "strings"

// synonyms maps a skill abbreviation to its accepted long forms
var synonyms = map[string][]string{
	"js":    {"javascript"},
	"ts":    {"typescript"},
	"py":    {"python"},
	"cpp":   {"c++"},
	"c#":    {"csharp", "c sharp"},
	"ml":    {"machine learning"},
	"ai":    {"artificial intelligence"},
	"dl":    {"deep learning"},
	"fe":    {"frontend", "front-end"},
	"be":    {"backend", "back-end"},
	"fs":    {"fullstack", "full-stack"},
	"react": {"reactjs", "react.js"},
	"node":  {"nodejs", "node.js"},
	"vue":   {"vuejs", "vue.js"},
	"k8s":   {"kubernetes"},
	"go":    {"golang"},
}

// synonymOrder fixes the reverse-lookup order
var synonymOrder = []string{
	"js", "ts", "py", "cpp", "c#", "ml", "ai", "dl", "fe", "be", "fs", "react", "node", "vue", "k8s", "go",
}

// Synonyms returns the long forms registered for an abbreviation.
func Synonyms(abbreviation string) []string {
	return append([]string(nil), synonyms[strings.ToLower(abbreviation)]...)
}

// MatchesJob reports whether a candidate skill, or a known variant of it, appears in the
// lower-cased job description.
func MatchesJob(skill string, jobLower string) bool {
	skillLower := strings.ToLower(strings.TrimSpace(skill))
	if skillLower == "" || jobLower == "" {
		return false
	}

	if ContainsTerm(jobLower, skillLower) {
		return true
	}

	for _, variant := range synonyms[skillLower] {
		if ContainsTerm(jobLower, variant) {
			return true
		}
	}

	// Skill is a long form; look for the abbreviation as a standalone word
	for _, short := range synonymOrder {
		for _, long := range synonyms[short] {
			if long == skillLower && ContainsTerm(jobLower, short) {
				return true
			}
		}
	}

	return false
}

// ContainsTerm reports whether term occurs in text delimited by non-alphanumeric characters.
// Both arguments are expected to be lower-cased. Terms may contain symbols such as "c++" or "node.js".
func ContainsTerm(text, term string) bool {
	if term == "" {
		return false
	}
	offset := 0
	for {
		idx := strings.Index(text[offset:], term)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(term)
		if isBoundary(text, start-1) && isBoundary(text, end) {
			return true
		}
		offset = start + 1
	}
}

// isBoundary reports whether the byte at i is outside the text or not a letter or digit
func isBoundary(text string, i int) bool {
	if i < 0 || i >= len(text) {
		return true
	}
	c := text[i]
	return !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9')
}
