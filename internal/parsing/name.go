package parsing

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/candidate-scorer/internal/skills"
	"github.com/jonathan/candidate-scorer/internal/types"
)

const nameScanWords = 10

var fileNameSeparatorRe = regexp.MustCompile(`[\s_\-.()\[\]]+`)

// genericFileWords never form part of a candidate's name in an upload file name
var genericFileWords = map[string]bool{
	"resume": true, "resumes": true, "cv": true, "curriculum": true, "vitae": true,
	"final": true, "updated": true, "latest": true, "copy": true, "draft": true,
	"new": true, "doc": true, "my": true, "of": true, "the": true, "version": true,
}

// headerWords are capitalized words that open a resume without being a name
var headerWords = map[string]bool{
	"resume": true, "curriculum": true, "vitae": true, "cv": true, "profile": true,
	"summary": true, "contact": true, "objective": true, "experience": true,
	"education": true, "skills": true, "name": true, "personal": true, "information": true,
	"details": true, "professional": true, "about": true, "me": true, "page": true,
	"email": true, "phone": true, "mobile": true, "address": true, "linkedin": true,
}

// ExtractName determines the candidate's name from the upload file name or the top of the document.
// Returns types.UnknownCandidate when neither source yields a name.
func ExtractName(text, filename string) string {
	if name := nameFromFileName(filename); name != "" {
		return name
	}
	if name := nameFromText(text); name != "" {
		return name
	}
	return types.UnknownCandidate
}

// nameFromFileName accepts a stem of two or more alphabetic, non-generic words
func nameFromFileName(filename string) string {
	base := filepath.Base(filename)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	words := make([]string, 0)
	for _, part := range fileNameSeparatorRe.Split(stem, -1) {
		if part == "" || genericFileWords[strings.ToLower(part)] {
			continue
		}
		if !isAlphabetic(part) {
			return ""
		}
		words = append(words, skills.TitleCase(strings.ToLower(part)))
	}

	if len(words) < 2 || len(words) > 4 {
		return ""
	}
	return strings.Join(words, " ")
}

// nameFromText takes the first run of capitalized words near the top of the text, at most two
func nameFromText(text string) string {
	words := strings.Fields(text)
	if len(words) > nameScanWords {
		words = words[:nameScanWords]
	}

	run := make([]string, 0, 2)
	for _, word := range words {
		token := strings.Trim(word, ",.:;|/\\•-")
		if isNameToken(token) {
			run = append(run, normalizeNameToken(token))
			if len(run) == 2 {
				break
			}
			continue
		}
		if len(run) > 0 {
			break
		}
	}

	return strings.Join(run, " ")
}

func isNameToken(token string) bool {
	if len([]rune(token)) < 2 || !isAlphabetic(token) || headerWords[strings.ToLower(token)] {
		return false
	}
	return unicode.IsUpper([]rune(token)[0])
}

// normalizeNameToken title-cases tokens written in all caps ("JANE" -> "Jane")
func normalizeNameToken(token string) string {
	if token == strings.ToUpper(token) {
		return skills.TitleCase(strings.ToLower(token))
	}
	return token
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && r != '\'' {
			return false
		}
	}
	return true
}
