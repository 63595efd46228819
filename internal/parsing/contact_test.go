package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEmail(t *testing.T) {
	assert.Equal(t, "jane.doe+jobs@mail.example.co", ExtractEmail("Contact: jane.doe+jobs@mail.example.co, or phone"))
	assert.Equal(t, "first@example.com", ExtractEmail("first@example.com second@example.com"))
	assert.Empty(t, ExtractEmail("no address here @ all"))
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"parenthesized US", "Phone: (555) 123-4567", "(555) 123-4567"},
		{"dotted US", "Call 555.123.4567 anytime", "555.123.4567"},
		{"US with country code", "Mobile +1 555-123-4567", "+1 555-123-4567"},
		{"bare international", "Tel +447911123456", "+447911123456"},
		{"country code with space", "Tel +44 7911123456", "+44 7911123456"},
		{"date ranges are not phones", "Acme 2019-2023, Globex 2015-2019", ""},
		{"concatenated year range rejected", "Employed 201920192023", ""},
		{"number after year range", "Employed 201920192023, call 555-987-6543", "555-987-6543"},
		{"short numbers ignored", "Room 1234, zip 94107", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractPhone(tt.text))
		})
	}
}

func TestExtractLinkedIn(t *testing.T) {
	assert.Equal(t, "https://www.linkedin.com/in/jane-doe", ExtractLinkedIn("see https://www.linkedin.com/in/jane-doe/ for more"))
	assert.Equal(t, "https://www.linkedin.com/in/jdoe", ExtractLinkedIn("LinkedIn: linkedin.com/in/jdoe"))
	assert.Equal(t, "https://www.linkedin.com/in/jdoe", ExtractLinkedIn("uk.linkedin.com/in/jdoe"))
	assert.Empty(t, ExtractLinkedIn("github.com/jdoe"))
}
