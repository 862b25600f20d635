package asset

import (
	"regexp"
	"strings"
)

// perfPredicate is the performance condition a premium-line match must also
// satisfy before the premium label is assigned.
type perfPredicate func(spec DeviceSpec, description string) bool

// classificationRule is one row of the ordered decision table. Rules are
// evaluated first-match-wins on the family signature; within a matched rule,
// exclusion tokens are checked before inclusion tokens and short-circuit to
// the standard label. Lexical overlap between entry-line and premium-line
// model codes makes this ordering load-bearing.
type classificationRule struct {
	name          string
	signature     *regexp.Regexp
	exclusions    []string
	inclusions    []string
	premium       perfPredicate
	premiumLabel  DeviceClass
	standardLabel DeviceClass
}

// RuleSet is the versioned classification decision table together with the
// tunable memory thresholds. Token lists ship with the binary; thresholds are
// configuration because they are revised more often than the lists.
type RuleSet struct {
	Version string

	// PremiumMemoryGB is the memory size at or above which a Windows-family
	// premium line qualifies as enhanced tier.
	PremiumMemoryGB int

	// MacPremiumMemoryGB is the memory size a premium-chip Mac must reach
	// to qualify as enhanced tier.
	MacPremiumMemoryGB int

	rules []classificationRule
}

const (
	defaultPremiumMemoryGB    = 32
	defaultMacPremiumMemoryGB = 32
)

var (
	macSignatureRe     = regexp.MustCompile(`(?i)\b(?:macbook|imac|mac\s+mini|mac\s+studio|apple)\b`)
	windowsSignatureRe = regexp.MustCompile(`(?i)\bdell\b`)

	// Premium chip sub-generation marker for the Mac family (Max/Ultra tiers).
	macPremiumChipRe = regexp.MustCompile(`(?i)\bm\d\s+(?:max|ultra)\b`)
)

// DefaultRuleSet returns the built-in classification rule table.
// Pass zero thresholds to Classifier config overrides to keep these values.
func DefaultRuleSet() *RuleSet {
	rs := &RuleSet{
		Version:            "v1",
		PremiumMemoryGB:    defaultPremiumMemoryGB,
		MacPremiumMemoryGB: defaultMacPremiumMemoryGB,
	}

	rs.rules = []classificationRule{
		{
			// Mac-family rule is first: a Mac signature can never fall
			// through to the Windows branch.
			name:      "mac_family",
			signature: macSignatureRe,
			premium: func(spec DeviceSpec, description string) bool {
				return macPremiumChipRe.MatchString(description) &&
					spec.MemoryGB >= rs.MacPremiumMemoryGB
			},
			premiumLabel:  DeviceClassEnhancedTierB,
			standardLabel: DeviceClassStandardTierB,
		},
		{
			name:      "windows_family",
			signature: windowsSignatureRe,
			// Entry/business lines. Checked before inclusions: a standard
			// model code can be a literal substring of a premium line name,
			// so an exclusion match ends classification immediately.
			exclusions: []string{"latitude", "vostro", "inspiron", "optiplex"},
			inclusions: []string{"xps", "alienware"},
			premium: func(spec DeviceSpec, description string) bool {
				return spec.MemoryGB >= rs.PremiumMemoryGB ||
					highEndProcessorRe.MatchString(description)
			},
			premiumLabel:  DeviceClassEnhancedTierA,
			standardLabel: DeviceClassStandardTierA,
		},
	}

	return rs
}

// WithMemoryThresholds returns a copy of the rule set with overridden memory
// thresholds. Zero values keep the existing thresholds.
func (rs *RuleSet) WithMemoryThresholds(premiumMemoryGB, macPremiumMemoryGB int) *RuleSet {
	out := DefaultRuleSet()
	out.Version = rs.Version
	if premiumMemoryGB > 0 {
		out.PremiumMemoryGB = premiumMemoryGB
	} else {
		out.PremiumMemoryGB = rs.PremiumMemoryGB
	}
	if macPremiumMemoryGB > 0 {
		out.MacPremiumMemoryGB = macPremiumMemoryGB
	} else {
		out.MacPremiumMemoryGB = rs.MacPremiumMemoryGB
	}
	return out
}

// containsToken reports a case-insensitive substring match.
func containsToken(description, token string) bool {
	return strings.Contains(strings.ToLower(description), strings.ToLower(token))
}
