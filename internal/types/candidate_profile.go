// Package types provides type definitions for structured data used throughout the candidate-scorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "slices"

// UnknownCandidate is the name used when no name can be extracted from a resume.
const UnknownCandidate = "Unknown Candidate"

// CandidateProfile represents the structured fields extracted from one resume document
type CandidateProfile struct {
	CandidateID     string      `json:"candidate_id,omitempty"`
	FileName        string      `json:"file_name,omitempty"`
	RawText         string      `json:"raw_text"`
	Name            string      `json:"name,omitempty"`
	Email           string      `json:"email,omitempty"`
	Phone           string      `json:"phone,omitempty"`
	LinkedInURL     string      `json:"linkedin_url,omitempty"`
	Skills          []string    `json:"skills"`
	Education       []Education `json:"education"`
	ExperienceYears *float64    `json:"experience_years"`
	Certifications  []string    `json:"certifications"`
	Languages       []string    `json:"languages"`
	Summary         string      `json:"summary"`
	ParsingFailed   bool        `json:"parsing_failed"`
	Error           string      `json:"error,omitempty"`
}

// Education represents one detected degree and the surrounding text it was found in
type Education struct {
	Degree  string `json:"degree"`            // PhD, Master, Bachelor, or Associate
	Context string `json:"context,omitempty"` // Text window around the match
}

// Clone returns a deep copy of the profile so callers can merge data without mutating the original.
func (p *CandidateProfile) Clone() *CandidateProfile {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Skills = slices.Clone(p.Skills)
	clone.Education = slices.Clone(p.Education)
	clone.Certifications = slices.Clone(p.Certifications)
	clone.Languages = slices.Clone(p.Languages)
	if p.ExperienceYears != nil {
		years := *p.ExperienceYears
		clone.ExperienceYears = &years
	}
	return &clone
}
