package asset

// Classifier assigns a performance tier to an asset description by walking
// the ordered rule table. Classification is pure, deterministic and total:
// every input maps to exactly one of the five DeviceClass labels.
type Classifier struct {
	rules *RuleSet
}

// NewClassifier creates a classifier over the given rule set.
// A nil rule set uses the built-in default table.
func NewClassifier(rules *RuleSet) *Classifier {
	if rules == nil {
		rules = DefaultRuleSet()
	}
	return &Classifier{rules: rules}
}

// Rules returns the active rule set.
func (c *Classifier) Rules() *RuleSet {
	return c.rules
}

// RuleSetVersion returns the version of the active rule set.
func (c *Classifier) RuleSetVersion() string {
	return c.rules.Version
}

// Classify derives the device class from a free-text description.
//
// Evaluation order per rule: family signature, then exclusion tokens
// (immediate standard label, regardless of any premium token elsewhere in
// the string), then inclusion tokens combined with the performance
// condition. A matched family that satisfies neither branch fails toward
// the standard label, never toward premium. No family signature at all
// yields DeviceClassOther.
func (c *Classifier) Classify(description string) DeviceClass {
	spec := ExtractSpec(description)

	for _, rule := range c.rules.rules {
		if !rule.signature.MatchString(description) {
			continue
		}

		for _, token := range rule.exclusions {
			if containsToken(description, token) {
				return rule.standardLabel
			}
		}

		if rule.premium != nil && matchesAnyToken(description, rule.inclusions) &&
			rule.premium(spec, description) {
			return rule.premiumLabel
		}

		return rule.standardLabel
	}

	return DeviceClassOther
}

// matchesAnyToken reports whether any token matches, or true when the rule
// declares no inclusion tokens (the performance predicate then decides alone).
func matchesAnyToken(description string, tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}
	for _, token := range tokens {
		if containsToken(description, token) {
			return true
		}
	}
	return false
}
