package sync

import "context"

// Alerter notifies operators when the PII gate blocks a record. The blocked
// record itself is never included; only the record kind, its ID, and the
// pattern labels that matched.
type Alerter interface {
	GateBlocked(ctx context.Context, recordKind, recordID string, labels []string) error
}

// NopAlerter discards alerts. Used when alerting is disabled in config.
type NopAlerter struct{}

// GateBlocked does nothing
func (NopAlerter) GateBlocked(_ context.Context, _, _ string, _ []string) error {
	return nil
}
