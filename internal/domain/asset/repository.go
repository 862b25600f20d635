package asset

import "context"

// Repository defines the interface for asset persistence operations.
// Sync performs idempotent upserts keyed by the asset ID; assets are never
// hard-deleted (retained for audit).
type Repository interface {
	// Upsert creates or updates an asset keyed by ID
	Upsert(ctx context.Context, a *Asset) error

	// GetByID retrieves an asset by ID
	GetByID(ctx context.Context, id string) (*Asset, error)

	// List retrieves all assets
	List(ctx context.Context) ([]*Asset, error)

	// Count returns the number of assets
	Count(ctx context.Context) (int64, error)
}
