// Package parsing extracts structured candidate fields from resume text using regex and
// keyword heuristics. Each field has its own strategy function; Extract composes them.
package parsing

import (
	"strings"
	"time"

	"github.com/jonathan/candidate-scorer/internal/ingestion"
	"github.com/jonathan/candidate-scorer/internal/types"
)

// NoTextError is the error marker stored on profiles built from empty documents
const NoTextError = "could not extract text from resume"

// Extractor builds candidate profiles. Now supplies the current year for "present" date ranges.
type Extractor struct {
	Now func() time.Time
}

// NewExtractor creates an Extractor that uses the wall clock.
func NewExtractor() *Extractor {
	return &Extractor{Now: time.Now}
}

// Extract builds a profile from raw document text using the wall clock.
func Extract(rawText, filename string) *types.CandidateProfile {
	return NewExtractor().Extract(rawText, filename)
}

// Extract builds a profile from raw document text. It never fails: empty input produces a
// profile marked ParsingFailed that carries an error marker instead of populated fields.
func (e *Extractor) Extract(rawText, filename string) *types.CandidateProfile {
	text := ingestion.CleanText(rawText)
	meta := ingestion.NewMetadata(filename, text)

	profile := &types.CandidateProfile{
		CandidateID:    meta.CandidateID,
		FileName:       meta.FileName,
		RawText:        text,
		Skills:         []string{},
		Education:      []types.Education{},
		Certifications: []string{},
		Languages:      []string{},
	}
	if filename == "" {
		profile.FileName = ""
	}

	if strings.TrimSpace(text) == "" {
		profile.Name = ExtractName("", filename)
		profile.ParsingFailed = true
		profile.Error = NoTextError
		return profile
	}

	now := time.Now
	if e != nil && e.Now != nil {
		now = e.Now
	}

	profile.Name = ExtractName(text, filename)
	profile.Email = ExtractEmail(text)
	profile.Phone = ExtractPhone(text)
	profile.LinkedInURL = ExtractLinkedIn(text)
	profile.Skills = ExtractSkills(text)
	profile.Education = ExtractEducation(text)
	profile.ExperienceYears = ExtractExperienceYears(text, now())
	profile.Certifications = ExtractCertifications(text)
	profile.Languages = ExtractLanguages(text)
	profile.Summary = ExtractSummary(text)

	return profile
}
