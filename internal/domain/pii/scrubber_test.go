package pii

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Jane", "J***"},
		{"Ömer", "Ö***"},
		{"j", "j***"},
		{"", "***"},
		{"   ", "***"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, RedactName(tt.in), tt.in)
	}
}

func TestRedactName_Idempotent(t *testing.T) {
	once := RedactName("Jane")
	assert.Equal(t, once, RedactName(once))
	assert.Equal(t, "***", RedactName("***"))
}

func TestAnonymizeEmail(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"jane.doe@firm.com", "j***@firm.com"},
		{"a@b.org", "a***@b.org"},
		{"@firm.com", "***@firm.com"},
		{"not-an-email", "***@***.com"},
		{"", "***@***.com"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, AnonymizeEmail(tt.in), tt.in)
	}
}

func TestAnonymizeEmail_Idempotent(t *testing.T) {
	once := AnonymizeEmail("jane.doe@firm.com")
	assert.Equal(t, once, AnonymizeEmail(once))
}

func TestScrubText(t *testing.T) {
	s := NewScrubber()

	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{
			name:     "email and phone",
			in:       "contact jane@firm.com or 555-123-4567",
			expected: "contact [EMAIL_REDACTED] or [PHONE_REDACTED]",
		},
		{
			name:     "ssn",
			in:       "SSN on file: 123-45-6789",
			expected: "SSN on file: [SSN_REDACTED]",
		},
		{
			name:     "card number with spaces",
			in:       "card 4111 1111 1111 1111 expires soon",
			expected: "card [CARD_REDACTED] expires soon",
		},
		{
			name:     "international phone",
			in:       "call +44 20 7946 0958",
			expected: "call [PHONE_REDACTED]",
		},
		{
			name:     "html markup is stripped before redaction",
			in:       "<p>reach me at <b>jane@firm.com</b></p>",
			expected: "reach me at [EMAIL_REDACTED]",
		},
		{
			name:     "clean text is untouched",
			in:       "prefers a standing desk",
			expected: "prefers a standing desk",
		},
		{
			name:     "empty",
			in:       "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s.ScrubText(tt.in))
		})
	}
}

func TestScrubText_Idempotent(t *testing.T) {
	s := NewScrubber()
	once := s.ScrubText("jane@firm.com / 555-123-4567 / 123-45-6789")
	assert.Equal(t, once, s.ScrubText(once))
}

func TestScrubEmployee(t *testing.T) {
	s := NewScrubber()

	got := s.ScrubEmployee(RawEmployee{
		ID:         "emp-1",
		FirstName:  "Jane",
		LastName:   "Doe",
		Email:      "jane.doe@firm.com",
		Department: "Engineering",
		JobTitle:   "Staff Engineer",
		Status:     "active",
		Notes:      "backup contact jane@firm.com, cell 555-123-4567",
	})

	assert.Equal(t, "emp-1", got.ID)
	assert.Equal(t, "J***", got.FirstName)
	assert.Equal(t, "D***", got.LastName)
	assert.Equal(t, "j***@firm.com", got.Email)
	assert.Equal(t, "Engineering", got.Department)
	assert.Equal(t, "Staff Engineer", got.JobTitle)
	assert.Equal(t, "active", got.Status)
	assert.Equal(t, "backup contact [EMAIL_REDACTED], cell [PHONE_REDACTED]", got.Notes)
}

func TestScrubAddress_DropsStreetLevelFields(t *testing.T) {
	s := NewScrubber()
	lat, lng := 43.65, -79.38

	got := s.ScrubAddress(RawAddress{
		ID:         "addr-1",
		Street:     "123 Main Street",
		Street2:    "Unit 4",
		PostalCode: "M5V 2T6",
		City:       "Toronto",
		Region:     "Ontario",
		Country:    "Canada",
		Latitude:   &lat,
		Longitude:  &lng,
	})

	assert.Equal(t, SanitizedAddress{
		ID:        "addr-1",
		City:      "Toronto",
		Region:    "Ontario",
		Country:   "Canada",
		Latitude:  &lat,
		Longitude: &lng,
	}, got)
}
