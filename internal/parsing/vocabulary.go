package parsing

import (
	"strings"

	"github.com/jonathan/candidate-scorer/internal/skills"
)

// certificationTerms is the fixed certification vocabulary, with display names
var certificationTerms = []struct {
	term    string
	display string
}{
	{"aws certified", "AWS Certified"},
	{"azure certified", "Azure Certified"},
	{"google cloud certified", "Google Cloud Certified"},
	{"pmp", "PMP"},
	{"cissp", "CISSP"},
	{"comptia", "CompTIA"},
	{"ccna", "CCNA"},
	{"ccnp", "CCNP"},
	{"certified scrum master", "Certified Scrum Master"},
	{"csm", "CSM"},
	{"cka", "CKA"},
	{"ckad", "CKAD"},
	{"tensorflow developer", "TensorFlow Developer"},
	{"oracle certified", "Oracle Certified"},
}

// spokenLanguages is the fixed vocabulary of spoken languages
var spokenLanguages = []string{
	"english", "spanish", "french", "german", "chinese", "mandarin", "japanese",
	"korean", "arabic", "hindi", "portuguese", "russian", "italian", "dutch",
}

// ExtractSkills returns the taxonomy skills mentioned in the text, normalized and sorted.
func ExtractSkills(text string) []string {
	return MergeSkills(skills.FindInText(strings.ToLower(text)))
}

// ExtractCertifications returns the known certifications mentioned in the text.
func ExtractCertifications(text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0)
	for _, cert := range certificationTerms {
		if skills.ContainsTerm(lower, cert.term) {
			found = append(found, cert.display)
		}
	}
	return found
}

// ExtractLanguages returns the spoken languages mentioned in the text.
func ExtractLanguages(text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0)
	for _, language := range spokenLanguages {
		if skills.ContainsTerm(lower, language) {
			found = append(found, skills.TitleCase(language))
		}
	}
	return found
}
