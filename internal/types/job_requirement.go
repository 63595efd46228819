// Package types provides type definitions for structured data used throughout the candidate-scorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobRequirement represents a job description plus the requirements derived from its text
type JobRequirement struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RequiredYears  *float64 `json:"required_years,omitempty"`  // nil when the description states no figure
	RequiredDegree string   `json:"required_degree,omitempty"` // phd, master, bachelor, or empty
}
