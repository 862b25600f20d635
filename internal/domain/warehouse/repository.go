package warehouse

import "context"

// Repository defines the interface for warehouse persistence operations
type Repository interface {
	// Upsert creates or updates a warehouse keyed by ID
	Upsert(ctx context.Context, w *Warehouse) error

	// GetByID retrieves a warehouse by ID
	GetByID(ctx context.Context, id string) (*Warehouse, error)

	// GetByCode retrieves a warehouse by its short code
	GetByCode(ctx context.Context, code string) (*Warehouse, error)

	// List retrieves all warehouses
	List(ctx context.Context) ([]*Warehouse, error)
}
