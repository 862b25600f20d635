package pii

import "strings"

// Validator is the pre-persistence gate. It re-scans the scrub-owned fields
// of a sanitized record with the same pattern set the scrubber applies; any
// match means the scrub transforms missed something and the record must not
// be written.
type Validator struct{}

// NewValidator creates a validator.
func NewValidator() *Validator {
	return &Validator{}
}

// ScanViolations returns the labels of every pattern that still matches the
// given text. Labels are safe to log; matched substrings are not, so they
// are never returned.
func (v *Validator) ScanViolations(text string) []string {
	if text == "" {
		return nil
	}
	var labels []string
	for _, p := range textPatterns {
		if p.re.MatchString(text) {
			labels = append(labels, p.label)
		}
	}
	return labels
}

// ValidateEmployee reports whether a sanitized employee record is safe to
// persist, plus the pattern labels found when it is not. Only the fields
// the scrubber owns are scanned; identifiers and status enums are not
// free text and cannot carry PII.
func (v *Validator) ValidateEmployee(e SanitizedEmployee) (bool, []string) {
	labels := v.ScanViolations(strings.Join([]string{
		e.FirstName,
		e.LastName,
		e.Email,
		e.Department,
		e.JobTitle,
		e.Notes,
	}, "\n"))
	return len(labels) == 0, labels
}

// ValidateAddress reports whether a sanitized address record is safe to
// persist, plus the pattern labels found when it is not.
func (v *Validator) ValidateAddress(a SanitizedAddress) (bool, []string) {
	labels := v.ScanViolations(strings.Join([]string{
		a.City,
		a.Region,
		a.Country,
	}, "\n"))
	return len(labels) == 0, labels
}
