// Package pii provides the scrubbing transforms and the pattern-based
// validation gate applied to every record before persistence.
//
// The pattern set is the single source of truth for both scrub and validate:
// the two must never drift apart, so neither defines patterns of its own.
// Pattern matching is a regression guard against known PII shapes, not a
// proof of absence.
package pii

import "regexp"

// PatternSetVersion identifies the active pattern set. Bump on any change to
// the patterns below so stored audit logs can be interpreted.
const PatternSetVersion = "v2"

// Redaction tokens substituted for matched PII substrings in free-text fields.
const (
	RedactedEmail = "[EMAIL_REDACTED]"
	RedactedPhone = "[PHONE_REDACTED]"
	RedactedSSN   = "[SSN_REDACTED]"
	RedactedCard  = "[CARD_REDACTED]"
)

// namedPattern couples a PII pattern with its redaction token and a label
// used when reporting validation findings.
type namedPattern struct {
	label   string
	re      *regexp.Regexp
	replace string
}

// textPatterns are applied in order to free-text fields. Order matters:
// card numbers are redacted before the looser phone patterns can consume a
// prefix of the digit run, and national IDs before the international phone
// pattern that would also match them.
var textPatterns = []namedPattern{
	{
		label:   "email",
		re:      regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		replace: RedactedEmail,
	},
	{
		label:   "card_number",
		re:      regexp.MustCompile(`\b\d{4}[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{4}\b`),
		replace: RedactedCard,
	},
	{
		label:   "national_id",
		re:      regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
		replace: RedactedSSN,
	},
	{
		label:   "phone",
		re:      regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`),
		replace: RedactedPhone,
	},
	{
		label:   "phone_intl",
		re:      regexp.MustCompile(`\+\d{1,3}[-.\s]?\(?\d{1,4}\)?[-.\s]?\d{1,4}[-.\s]?\d{1,9}\b`),
		replace: RedactedPhone,
	},
}
