// Package skills provides the categorized skill vocabulary and the matching rules shared by
// resume extraction and job scoring.
package skills

import (
	"strings"
	"unicode"
)

// Category names a group of related skills in the taxonomy
type Category string

// Taxonomy categories
const (
	CategoryLanguage     Category = "language"
	CategoryWebFramework Category = "web_framework"
	CategoryDatabase     Category = "database"
	CategoryCloudDevOps  Category = "cloud_devops"
	CategoryAIData       Category = "ai_data_science"
	CategoryMobile       Category = "mobile"
	CategorySoftSkill    Category = "soft_skill"
)

// categoryOrder fixes the scan order so extraction output never depends on map iteration
var categoryOrder = []Category{
	CategoryLanguage,
	CategoryWebFramework,
	CategoryDatabase,
	CategoryCloudDevOps,
	CategoryAIData,
	CategoryMobile,
	CategorySoftSkill,
}

// taxonomy holds lower-cased keywords per category
var taxonomy = map[Category][]string{
	CategoryLanguage: {
		"python", "java", "javascript", "typescript", "c++", "c#", "golang", "ruby", "php",
		"swift", "kotlin", "scala", "rust", "perl", "bash",
	},
	CategoryWebFramework: {
		"react", "angular", "vue", "node.js", "express", "django", "flask", "fastapi", "spring",
		"spring boot", "rails", "laravel", "next.js", ".net", "asp.net", "html", "css",
		"rest api", "graphql", "microservices",
	},
	CategoryDatabase: {
		"sql", "nosql", "mysql", "postgresql", "mongodb", "redis", "oracle", "sqlite",
		"cassandra", "elasticsearch", "dynamodb",
	},
	CategoryCloudDevOps: {
		"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins", "git", "ci/cd",
		"ansible", "linux", "unix", "windows server", "networking", "security", "devops",
	},
	CategoryAIData: {
		"machine learning", "deep learning", "ai", "data science", "tensorflow", "pytorch",
		"scikit-learn", "pandas", "numpy", "nlp", "computer vision", "spark", "hadoop",
		"tableau", "power bi", "data analysis",
	},
	CategoryMobile: {
		"android", "ios", "react native", "flutter", "xamarin",
	},
	CategorySoftSkill: {
		"leadership", "communication", "teamwork", "problem solving", "critical thinking",
		"project management", "collaboration", "adaptability", "agile", "scrum", "mentoring",
	},
}

// displayNames overrides plain title casing for terms with conventional spellings
var displayNames = map[string]string{
	"javascript":    "JavaScript",
	"typescript":    "TypeScript",
	"c++":           "C++",
	"c#":            "C#",
	"golang":        "Go",
	"php":           "PHP",
	"node.js":       "Node.js",
	"next.js":       "Next.js",
	"fastapi":       "FastAPI",
	".net":          ".NET",
	"asp.net":       "ASP.NET",
	"html":          "HTML",
	"css":           "CSS",
	"rest api":      "REST API",
	"graphql":       "GraphQL",
	"sql":           "SQL",
	"nosql":         "NoSQL",
	"mysql":         "MySQL",
	"postgresql":    "PostgreSQL",
	"mongodb":       "MongoDB",
	"sqlite":        "SQLite",
	"dynamodb":      "DynamoDB",
	"aws":           "AWS",
	"gcp":           "GCP",
	"ci/cd":         "CI/CD",
	"devops":        "DevOps",
	"ai":            "AI",
	"tensorflow":    "TensorFlow",
	"pytorch":       "PyTorch",
	"scikit-learn":  "Scikit-Learn",
	"numpy":         "NumPy",
	"nlp":           "NLP",
	"ios":           "iOS",
	"power bi":      "Power BI",
	"elasticsearch": "Elasticsearch",
}

// Categories returns a copy of the taxonomy keyed by category.
func Categories() map[Category][]string {
	out := make(map[Category][]string, len(taxonomy))
	for category, terms := range taxonomy {
		out[category] = append([]string(nil), terms...)
	}
	return out
}

// CategoryOrder returns the categories in scan order.
func CategoryOrder() []Category {
	return append([]Category(nil), categoryOrder...)
}

// CategoryOf returns the category a skill belongs to, or false when it is not in the taxonomy.
func CategoryOf(skill string) (Category, bool) {
	lower := strings.ToLower(strings.TrimSpace(skill))
	for _, category := range categoryOrder {
		for _, term := range taxonomy[category] {
			if term == lower || strings.EqualFold(DisplayName(term), skill) {
				return category, true
			}
		}
	}
	return "", false
}

// FindInText scans lower-cased text for every taxonomy term and returns the display names found,
// in taxonomy order and without duplicates.
func FindInText(textLower string) []string {
	found := make([]string, 0)
	seen := make(map[string]struct{})
	for _, category := range categoryOrder {
		for _, term := range taxonomy[category] {
			if !ContainsTerm(textLower, term) {
				continue
			}
			name := DisplayName(term)
			key := strings.ToLower(name)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			found = append(found, name)
		}
	}
	return found
}

// DisplayName returns the conventional spelling of a term, title-casing unknown terms.
func DisplayName(term string) string {
	lower := strings.ToLower(strings.TrimSpace(term))
	if lower == "" {
		return ""
	}
	if name, ok := displayNames[lower]; ok {
		return name
	}
	return TitleCase(lower)
}

// TitleCase upper-cases the first letter of every space-separated word.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
