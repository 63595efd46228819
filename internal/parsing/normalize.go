package parsing

import (
	"sort"
	"strings"

	"github.com/jonathan/candidate-scorer/internal/skills"
)

// skillNormalizations maps common skill name variants to canonical names
var skillNormalizations = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"react.js":   "React",
	"reactjs":    "React",
	"vue.js":     "Vue",
	"vuejs":      "Vue",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"node":       "Node.js",
	"py":         "Python",
	"cpp":        "C++",
	"csharp":     "C#",
	"ml":         "Machine Learning",
	"postgres":   "PostgreSQL",
}

// NormalizeSkillName normalizes a skill name to its canonical, title-cased form
func NormalizeSkillName(skillName string) string {
	normalized := strings.Join(strings.Fields(skillName), " ")
	if normalized == "" {
		return ""
	}

	lower := strings.ToLower(normalized)
	if canonical, ok := skillNormalizations[lower]; ok {
		return canonical
	}

	// Taxonomy terms have a conventional spelling (AWS, PostgreSQL, iOS)
	if display := skills.DisplayName(lower); display != skills.TitleCase(lower) {
		return display
	}

	// Mixed case was chosen deliberately, keep it
	if normalized != strings.ToUpper(normalized) && normalized != lower {
		return normalized
	}

	return skills.TitleCase(lower)
}

// MergeSkills unions skill lists case-insensitively, normalizing every name.
// The result is sorted so merges are independent of input order.
func MergeSkills(lists ...[]string) []string {
	seen := make(map[string]struct{})
	merged := make([]string, 0)
	for _, list := range lists {
		for _, skill := range list {
			name := NormalizeSkillName(skill)
			if name == "" {
				continue
			}
			key := strings.ToLower(name)
			if _, exists := seen[key]; exists {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, name)
		}
	}
	sort.Slice(merged, func(i, j int) bool {
		return strings.ToLower(merged[i]) < strings.ToLower(merged[j])
	})
	return merged
}
