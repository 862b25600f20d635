package address

import "context"

// Repository defines the interface for address persistence operations
type Repository interface {
	// Upsert creates or updates an address keyed by ID
	Upsert(ctx context.Context, a *Address) error

	// GetByID retrieves an address by ID
	GetByID(ctx context.Context, id string) (*Address, error)

	// List retrieves all addresses
	List(ctx context.Context) ([]*Address, error)
}
