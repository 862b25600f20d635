package employee

import "context"

// Repository defines the interface for employee persistence operations
type Repository interface {
	// Upsert creates or updates an employee keyed by ID
	Upsert(ctx context.Context, e *Employee) error

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (*Employee, error)

	// List retrieves all employees
	List(ctx context.Context) ([]*Employee, error)
}
