package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRequiredYears(t *testing.T) {
	tests := []struct {
		name        string
		description string
		expected    *float64
	}{
		{"plus years", "Seeking Python developer, 5+ years experience", ptr(5)},
		{"years of experience", "3 years of experience with Go", ptr(3)},
		{"minimum of", "A minimum of 4 years in industry", ptr(4)},
		{"at least", "at least 10 years building systems", ptr(10)},
		{"none", "Junior role, mentoring provided", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractRequiredYears(tt.description)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.expected, *got)
		})
	}
}

func TestExtractRequiredDegree(t *testing.T) {
	assert.Equal(t, TierPhD, ExtractRequiredDegree("PhD in statistics or equivalent"))
	assert.Equal(t, TierPhD, ExtractRequiredDegree("Doctorate preferred, Master's required"))
	assert.Equal(t, TierMaster, ExtractRequiredDegree("MBA a plus"))
	assert.Equal(t, TierBachelor, ExtractRequiredDegree("Bachelor's required"))
	assert.Equal(t, TierBachelor, ExtractRequiredDegree("Degree in computer science"))
	assert.Equal(t, TierNone, ExtractRequiredDegree("No formal education needed"))
}

func TestParseJobRequirement(t *testing.T) {
	job := ParseJobRequirement("Seeking Python developer, 5+ years experience, Bachelor's required", "  Backend Engineer ")

	assert.Equal(t, "Backend Engineer", job.Title)
	require.NotNil(t, job.RequiredYears)
	assert.Equal(t, 5.0, *job.RequiredYears)
	assert.Equal(t, "bachelor", job.RequiredDegree)
}

func TestParseJobRequirement_Empty(t *testing.T) {
	job := ParseJobRequirement("", "")

	assert.Nil(t, job.RequiredYears)
	assert.Empty(t, job.RequiredDegree)
}
