package pii

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// RawEmployee is a pre-scrub personnel record as fetched from the provider.
// It must never be persisted or logged.
type RawEmployee struct {
	ID         string
	FirstName  string
	LastName   string
	Email      string
	Department string
	JobTitle   string
	Status     string
	Notes      string
	AddressID  string
}

// SanitizedEmployee is the storage-safe shape of an employee record.
type SanitizedEmployee struct {
	ID         string
	FirstName  string
	LastName   string
	Email      string
	Department string
	JobTitle   string
	Status     string
	Notes      string
	AddressID  string
}

// RawAddress is a pre-scrub location record. Street-level fields exist only
// on this shape: scrubbing drops them entirely rather than masking them.
type RawAddress struct {
	ID         string
	Street     string
	Street2    string
	PostalCode string
	City       string
	Region     string
	Country    string
	Latitude   *float64
	Longitude  *float64
}

// SanitizedAddress is the storage-safe shape of an address record.
// There are no street or postal fields to leak.
type SanitizedAddress struct {
	ID        string
	City      string
	Region    string
	Country   string
	Latitude  *float64
	Longitude *float64
}

// Scrubber applies the field-specific PII transforms. All transforms are
// idempotent: re-scrubbing an already-sanitized record leaves it unchanged.
type Scrubber struct {
	markup *bluemonday.Policy
}

// NewScrubber creates a scrubber. Provider note fields occasionally carry
// HTML markup, which is stripped before pattern redaction so tags cannot
// split a PII substring across text nodes.
func NewScrubber() *Scrubber {
	return &Scrubber{markup: bluemonday.StrictPolicy()}
}

// RedactName reduces a name to its leading character plus a fixed mask.
// Empty input yields the bare mask. Stable under re-application.
func RedactName(name string) string {
	runes := []rune(strings.TrimSpace(name))
	if len(runes) == 0 {
		return "***"
	}
	return string(runes[0]) + "***"
}

// AnonymizeEmail reduces an email to the leading character of the local part
// plus a fixed mask, keeping the original domain. The mask character is
// outside the email address character set, so an anonymized email can never
// re-match the bare email pattern. Stable under re-application.
func AnonymizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return "***@***.com"
	}
	parts := strings.SplitN(email, "@", 2)
	local, domain := parts[0], parts[1]
	if local == "" {
		return "***@" + domain
	}
	return string([]rune(local)[0]) + "***@" + domain
}

// ScrubText strips markup and replaces every matched email, phone,
// national-id and card-number substring with its fixed redaction token.
func (s *Scrubber) ScrubText(text string) string {
	if text == "" {
		return text
	}
	text = s.markup.Sanitize(text)
	for _, p := range textPatterns {
		text = p.re.ReplaceAllString(text, p.replace)
	}
	return text
}

// ScrubEmployee transforms a raw employee record into its storage-safe shape.
func (s *Scrubber) ScrubEmployee(raw RawEmployee) SanitizedEmployee {
	return SanitizedEmployee{
		ID:         raw.ID,
		FirstName:  RedactName(raw.FirstName),
		LastName:   RedactName(raw.LastName),
		Email:      AnonymizeEmail(raw.Email),
		Department: s.ScrubText(raw.Department),
		JobTitle:   s.ScrubText(raw.JobTitle),
		Status:     raw.Status,
		Notes:      s.ScrubText(raw.Notes),
		AddressID:  raw.AddressID,
	}
}

// ScrubAddress reduces an address to city/region/country plus coordinates.
// Street lines and postal codes are not masked; they are absent from the
// output shape entirely.
func (s *Scrubber) ScrubAddress(raw RawAddress) SanitizedAddress {
	return SanitizedAddress{
		ID:        raw.ID,
		City:      s.ScrubText(raw.City),
		Region:    s.ScrubText(raw.Region),
		Country:   s.ScrubText(raw.Country),
		Latitude:  raw.Latitude,
		Longitude: raw.Longitude,
	}
}
