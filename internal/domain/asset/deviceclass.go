package asset

// DeviceClass is the performance tier assigned to an asset, derived on demand
// from its free-text description. It is never persisted: the rule set may
// change between deploys and recomputation is cheap.
type DeviceClass string

const (
	// DeviceClassEnhancedTierA is a premium Windows-family machine
	DeviceClassEnhancedTierA DeviceClass = "enhanced_tier_a"
	// DeviceClassStandardTierA is a standard Windows-family machine
	DeviceClassStandardTierA DeviceClass = "standard_tier_a"
	// DeviceClassEnhancedTierB is a premium Mac-family machine
	DeviceClassEnhancedTierB DeviceClass = "enhanced_tier_b"
	// DeviceClassStandardTierB is a standard Mac-family machine
	DeviceClassStandardTierB DeviceClass = "standard_tier_b"
	// DeviceClassOther is everything that matches neither family signature
	DeviceClassOther DeviceClass = "other"
)

// IsValid checks if the device class is one of the five labels
func (c DeviceClass) IsValid() bool {
	switch c {
	case DeviceClassEnhancedTierA, DeviceClassStandardTierA,
		DeviceClassEnhancedTierB, DeviceClassStandardTierB, DeviceClassOther:
		return true
	default:
		return false
	}
}

// String returns the string representation of the device class
func (c DeviceClass) String() string {
	return string(c)
}
