package asset

import (
	"regexp"
	"strconv"
	"strings"
)

// DeviceSpec is the structured specification derived from a free-text,
// comma-delimited product description. It is produced transiently and never
// persisted. Absent fields stay zero-valued: extraction never fails.
type DeviceSpec struct {
	Manufacturer string `json:"manufacturer,omitempty"`
	ModelFamily  string `json:"model_family,omitempty"`
	MemoryRaw    string `json:"memory_raw,omitempty"`
	MemoryGB     int    `json:"memory_gb,omitempty"`
	Processor    string `json:"processor,omitempty"`
	IsHighTier   bool   `json:"is_high_tier"`
}

var (
	// Any <int>GB token; whether it is RAM-like is decided by the word that follows.
	memoryTokenRe = regexp.MustCompile(`(?i)\b(\d{1,4})\s*GB\b`)
	// Word immediately following a memory token that marks it as storage, not RAM.
	storageUnitRe = regexp.MustCompile(`(?i)^\s*(ssd|hdd|nvme|emmc|storage|disk|drive)\b`)

	// First substring starting with a known processor vendor prefix followed by
	// a model token. Trailing word characters keep the match inside the
	// comma-delimited segment.
	processorRe = regexp.MustCompile(`(?i)\b(?:intel|amd|apple|qualcomm)\s+[a-z0-9][a-z0-9 .\-]*[a-z0-9]`)

	// High-end processor markers used for the high tier hint.
	highEndProcessorRe = regexp.MustCompile(`(?i)\b(?:i9-?\w*|ultra\s*9[\s-]?\w*|ryzen\s*9\b\w*|m\d\s+(?:max|ultra)\b|\w+hx\b)`)
)

// premiumHintTokens are model family names associated with premium product
// lines; presence of any of them sets the IsHighTier hint.
var premiumHintTokens = []string{"xps", "alienware", "macbook pro"}

// highTierMemoryGB is the memory size at or above which the IsHighTier hint
// fires regardless of model tokens.
const highTierMemoryGB = 32

// ExtractSpec parses a free-text description into a DeviceSpec.
// The function is pure and total: malformed input yields an empty spec,
// never an error.
func ExtractSpec(description string) DeviceSpec {
	spec := DeviceSpec{}

	parts := strings.Split(description, ",")
	if len(parts) > 0 {
		spec.Manufacturer = strings.TrimSpace(parts[0])
	}
	if len(parts) > 1 {
		spec.ModelFamily = strings.TrimSpace(parts[1])
	}

	spec.MemoryRaw, spec.MemoryGB = extractMemory(description)
	spec.Processor = extractProcessor(description)
	spec.IsHighTier = isHighTierHint(description, spec)

	return spec
}

// extractMemory returns the first <int>GB token that reads like a RAM size.
// A token immediately followed by a storage unit word (SSD, HDD, ...) is
// treated as storage capacity and skipped.
func extractMemory(description string) (raw string, gb int) {
	for _, loc := range memoryTokenRe.FindAllStringSubmatchIndex(description, -1) {
		rest := description[loc[1]:]
		if storageUnitRe.MatchString(rest) {
			continue
		}
		raw = description[loc[0]:loc[1]]
		parsed, err := strconv.Atoi(description[loc[2]:loc[3]])
		if err != nil {
			continue
		}
		return raw, parsed
	}
	return "", 0
}

func extractProcessor(description string) string {
	return strings.TrimSpace(processorRe.FindString(description))
}

// isHighTierHint reports whether the description carries any marker of a
// premium product line. This is a hint consumed by the classifier, not a
// final verdict.
func isHighTierHint(description string, spec DeviceSpec) bool {
	lower := strings.ToLower(description)
	for _, token := range premiumHintTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	if spec.MemoryGB >= highTierMemoryGB {
		return true
	}
	return highEndProcessorRe.MatchString(description)
}
