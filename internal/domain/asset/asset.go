package asset

import (
	"fmt"
	"time"
)

// Asset represents the hardware asset aggregate root.
// Records are cached from the external inventory provider: created on first
// sync, updated on every subsequent sync, and never hard-deleted.
type Asset struct {
	id                 string
	serialNumber       string
	name               string
	description        string
	category           string
	status             LifecycleStatus
	assignedEmployeeID *string
	warehouseID        *string
	officeID           *string
	purchaseDate       *time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

// NewAsset creates a new asset from provider data.
// An asset has exactly one or zero current locations: at most one of
// assignedEmployeeID, warehouseID and officeID may be set.
func NewAsset(
	id string,
	serialNumber string,
	name string,
	description string,
	category string,
	status LifecycleStatus,
	assignedEmployeeID *string,
	warehouseID *string,
	officeID *string,
	purchaseDate *time.Time,
) (*Asset, error) {
	if id == "" {
		return nil, fmt.Errorf("asset ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid lifecycle status: %s", status)
	}
	if err := validateSingleLocation(assignedEmployeeID, warehouseID, officeID); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Asset{
		id:                 id,
		serialNumber:       serialNumber,
		name:               name,
		description:        description,
		category:           category,
		status:             status,
		assignedEmployeeID: assignedEmployeeID,
		warehouseID:        warehouseID,
		officeID:           officeID,
		purchaseDate:       purchaseDate,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

// ReconstructAsset reconstructs an asset from persistence
func ReconstructAsset(
	id string,
	serialNumber string,
	name string,
	description string,
	category string,
	status LifecycleStatus,
	assignedEmployeeID *string,
	warehouseID *string,
	officeID *string,
	purchaseDate *time.Time,
	createdAt, updatedAt time.Time,
) (*Asset, error) {
	if id == "" {
		return nil, fmt.Errorf("asset ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid lifecycle status: %s", status)
	}
	if err := validateSingleLocation(assignedEmployeeID, warehouseID, officeID); err != nil {
		return nil, err
	}

	return &Asset{
		id:                 id,
		serialNumber:       serialNumber,
		name:               name,
		description:        description,
		category:           category,
		status:             status,
		assignedEmployeeID: assignedEmployeeID,
		warehouseID:        warehouseID,
		officeID:           officeID,
		purchaseDate:       purchaseDate,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func validateSingleLocation(assignedEmployeeID, warehouseID, officeID *string) error {
	locations := 0
	if assignedEmployeeID != nil && *assignedEmployeeID != "" {
		locations++
	}
	if warehouseID != nil && *warehouseID != "" {
		locations++
	}
	if officeID != nil && *officeID != "" {
		locations++
	}
	if locations > 1 {
		return fmt.Errorf("asset can have at most one location, got %d", locations)
	}
	return nil
}

// ID returns the asset ID
func (a *Asset) ID() string {
	return a.id
}

// SerialNumber returns the asset serial number
func (a *Asset) SerialNumber() string {
	return a.serialNumber
}

// Name returns the asset name
func (a *Asset) Name() string {
	return a.name
}

// Description returns the free-text product description.
// This is the sole source of manufacturer, model, memory and processor
// information for most records.
func (a *Asset) Description() string {
	return a.description
}

// Category returns the optional category label
func (a *Asset) Category() string {
	return a.category
}

// Status returns the lifecycle status
func (a *Asset) Status() LifecycleStatus {
	return a.status
}

// AssignedEmployeeID returns the assigned employee ID, if any
func (a *Asset) AssignedEmployeeID() *string {
	return a.assignedEmployeeID
}

// WarehouseID returns the storage warehouse ID, if any
func (a *Asset) WarehouseID() *string {
	return a.warehouseID
}

// OfficeID returns the office ID, if any
func (a *Asset) OfficeID() *string {
	return a.officeID
}

// PurchaseDate returns the purchase date, if known
func (a *Asset) PurchaseDate() *time.Time {
	return a.purchaseDate
}

// CreatedAt returns when the asset was first synced
func (a *Asset) CreatedAt() time.Time {
	return a.createdAt
}

// UpdatedAt returns when the asset was last synced
func (a *Asset) UpdatedAt() time.Time {
	return a.updatedAt
}

// IsAssigned returns true if the asset is held by an employee
func (a *Asset) IsAssigned() bool {
	return a.assignedEmployeeID != nil && *a.assignedEmployeeID != ""
}

// IsAvailable returns true if the asset is in stock and assignable
func (a *Asset) IsAvailable() bool {
	return a.status == LifecycleStatusAvailable
}

// AssignToEmployee assigns the asset to an employee, clearing other locations
func (a *Asset) AssignToEmployee(employeeID string) error {
	if employeeID == "" {
		return fmt.Errorf("employee ID is required")
	}
	a.assignedEmployeeID = &employeeID
	a.warehouseID = nil
	a.officeID = nil
	a.status = LifecycleStatusAssigned
	a.updatedAt = time.Now()
	return nil
}

// StoreInWarehouse places the asset in a warehouse, clearing other locations
func (a *Asset) StoreInWarehouse(warehouseID string) error {
	if warehouseID == "" {
		return fmt.Errorf("warehouse ID is required")
	}
	a.warehouseID = &warehouseID
	a.assignedEmployeeID = nil
	a.officeID = nil
	a.status = LifecycleStatusAvailable
	a.updatedAt = time.Now()
	return nil
}

// PlaceInOffice places the asset in an office, clearing other locations
func (a *Asset) PlaceInOffice(officeID string) error {
	if officeID == "" {
		return fmt.Errorf("office ID is required")
	}
	a.officeID = &officeID
	a.assignedEmployeeID = nil
	a.warehouseID = nil
	a.updatedAt = time.Now()
	return nil
}

// Retire marks the asset as decommissioned. Retired assets are kept for audit.
func (a *Asset) Retire() {
	a.status = LifecycleStatusRetired
	a.updatedAt = time.Now()
}
