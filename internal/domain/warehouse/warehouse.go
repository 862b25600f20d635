// Package warehouse provides the domain model for storage facilities and the
// facility-to-country service mapping used by asset search.
package warehouse

import (
	"fmt"
	"time"
)

// Status represents the operational status of a warehouse
type Status string

const (
	// StatusActive indicates the warehouse is fulfilling orders
	StatusActive Status = "active"
	// StatusInactive indicates the warehouse is closed or paused
	StatusInactive Status = "inactive"
)

// IsValid checks if the status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status
func (s Status) String() string {
	return string(s)
}

// Warehouse represents a storage facility. Each warehouse carries a static
// list of countries it fulfills orders for, independent of its own physical
// location; a warehouse may service several countries.
type Warehouse struct {
	id               string
	name             string
	code             string
	addressID        *string
	status           Status
	serviceCountries []string
	createdAt        time.Time
	updatedAt        time.Time
}

// NewWarehouse creates a new warehouse
func NewWarehouse(
	id string,
	name string,
	code string,
	addressID *string,
	status Status,
	serviceCountries []string,
) (*Warehouse, error) {
	if id == "" {
		return nil, fmt.Errorf("warehouse ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid warehouse status: %s", status)
	}

	now := time.Now()
	return &Warehouse{
		id:               id,
		name:             name,
		code:             code,
		addressID:        addressID,
		status:           status,
		serviceCountries: append([]string(nil), serviceCountries...),
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// ReconstructWarehouse reconstructs a warehouse from persistence
func ReconstructWarehouse(
	id string,
	name string,
	code string,
	addressID *string,
	status Status,
	serviceCountries []string,
	createdAt, updatedAt time.Time,
) (*Warehouse, error) {
	if id == "" {
		return nil, fmt.Errorf("warehouse ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid warehouse status: %s", status)
	}

	return &Warehouse{
		id:               id,
		name:             name,
		code:             code,
		addressID:        addressID,
		status:           status,
		serviceCountries: append([]string(nil), serviceCountries...),
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

// ID returns the warehouse ID
func (w *Warehouse) ID() string {
	return w.id
}

// Name returns the warehouse name
func (w *Warehouse) Name() string {
	return w.name
}

// Code returns the short warehouse code
func (w *Warehouse) Code() string {
	return w.code
}

// AddressID returns the linked address ID, if any
func (w *Warehouse) AddressID() *string {
	return w.addressID
}

// Status returns the operational status
func (w *Warehouse) Status() Status {
	return w.status
}

// ServiceCountries returns the list of countries the warehouse services.
// The returned slice is a copy.
func (w *Warehouse) ServiceCountries() []string {
	return append([]string(nil), w.serviceCountries...)
}

// Services reports whether the warehouse fulfills orders for the given
// country. Matching is exact and case-sensitive; normalization is the
// caller's concern.
func (w *Warehouse) Services(country string) bool {
	for _, c := range w.serviceCountries {
		if c == country {
			return true
		}
	}
	return false
}

// CreatedAt returns when the warehouse was first synced
func (w *Warehouse) CreatedAt() time.Time {
	return w.createdAt
}

// UpdatedAt returns when the warehouse was last synced
func (w *Warehouse) UpdatedAt() time.Time {
	return w.updatedAt
}
