// Package asset provides domain models and business logic for hardware assets.
// It covers the asset aggregate, device specification extraction from free-text
// descriptions, performance tier classification, and the in-memory search engine.
package asset

// LifecycleStatus represents the lifecycle state of an asset.
// The provider vocabulary is open: unrecognized values normalize to unknown
// instead of being rejected, so a new provider status never drops an asset.
type LifecycleStatus string

const (
	// LifecycleStatusAvailable indicates the asset is in stock and assignable
	LifecycleStatusAvailable LifecycleStatus = "available"
	// LifecycleStatusAssigned indicates the asset is held by an employee
	LifecycleStatusAssigned LifecycleStatus = "assigned"
	// LifecycleStatusInTransit indicates the asset is being shipped
	LifecycleStatusInTransit LifecycleStatus = "in_transit"
	// LifecycleStatusRetired indicates the asset is decommissioned but retained for audit
	LifecycleStatusRetired LifecycleStatus = "retired"
	// LifecycleStatusUnknown indicates the provider reported no recognizable status
	LifecycleStatusUnknown LifecycleStatus = "unknown"
)

// IsValid checks if the lifecycle status is one of the known values
func (s LifecycleStatus) IsValid() bool {
	switch s {
	case LifecycleStatusAvailable, LifecycleStatusAssigned, LifecycleStatusInTransit,
		LifecycleStatusRetired, LifecycleStatusUnknown:
		return true
	default:
		return false
	}
}

// String returns the string representation of the lifecycle status
func (s LifecycleStatus) String() string {
	return string(s)
}

// NormalizeLifecycleStatus maps an arbitrary provider status string to a
// known lifecycle status, falling back to unknown.
func NormalizeLifecycleStatus(raw string) LifecycleStatus {
	switch LifecycleStatus(raw) {
	case LifecycleStatusAvailable, LifecycleStatusAssigned, LifecycleStatusInTransit,
		LifecycleStatusRetired:
		return LifecycleStatus(raw)
	default:
		return LifecycleStatusUnknown
	}
}
