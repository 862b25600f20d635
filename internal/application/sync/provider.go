// Package sync implements the provider-to-cache write path: fetch, scrub,
// validate, upsert. Every record passes through the PII gate before it is
// handed to a repository; nothing in this package persists raw provider data.
package sync

import (
	"context"
	"time"

	"quartermaster/internal/domain/pii"
)

// ProviderAsset is a hardware record as returned by the inventory provider.
// Descriptions are product text, not personal data.
type ProviderAsset struct {
	ID                 string
	SerialNumber       string
	Name               string
	Description        string
	Category           string
	Status             string
	AssignedEmployeeID *string
	WarehouseID        *string
	OfficeID           *string
	PurchaseDate       *time.Time
}

// ProviderWarehouse is a storage facility record as returned by the provider.
// ServiceCountries is empty for most records; the sync backfills it from the
// static service table.
type ProviderWarehouse struct {
	ID               string
	Name             string
	Code             string
	AddressID        *string
	Status           string
	ServiceCountries []string
}

// Provider fetches inventory data from the upstream system. Implementations
// handle pagination internally and return complete collections.
type Provider interface {
	// Assets fetches all hardware asset records
	Assets(ctx context.Context) ([]ProviderAsset, error)

	// Employees fetches all personnel records. Returned records carry raw
	// PII and must go through the scrubber before leaving this package.
	Employees(ctx context.Context) ([]pii.RawEmployee, error)

	// EmployeeAddress fetches the address of one employee. A missing
	// address is returned as (nil, nil).
	EmployeeAddress(ctx context.Context, employeeID string) (*pii.RawAddress, error)

	// Warehouses fetches all storage facility records
	Warehouses(ctx context.Context) ([]ProviderWarehouse, error)
}
