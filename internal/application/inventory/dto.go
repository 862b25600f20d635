package inventory

import (
	"time"

	"quartermaster/internal/domain/asset"
	"quartermaster/internal/domain/warehouse"
)

// AssetDTO is the read-model shape of an asset. DeviceClass and DeviceSpec
// are derived at read time and are never stored.
type AssetDTO struct {
	ID                 string           `json:"id"`
	SerialNumber       string           `json:"serial_number,omitempty"`
	Name               string           `json:"name"`
	Description        string           `json:"description"`
	Category           string           `json:"category,omitempty"`
	Status             string           `json:"status"`
	AssignedEmployeeID *string          `json:"assigned_employee_id,omitempty"`
	WarehouseID        *string          `json:"warehouse_id,omitempty"`
	OfficeID           *string          `json:"office_id,omitempty"`
	PurchaseDate       *time.Time       `json:"purchase_date,omitempty"`
	DeviceClass        string           `json:"device_class"`
	DeviceSpec         asset.DeviceSpec `json:"device_spec"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// ClassificationDTO is the result of classifying a single description
type ClassificationDTO struct {
	DeviceClass    string           `json:"device_class"`
	DeviceSpec     asset.DeviceSpec `json:"device_spec"`
	RuleSetVersion string           `json:"rule_set_version"`
}

// WarehouseDTO is the read-model shape of a warehouse
type WarehouseDTO struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Code             string   `json:"code"`
	Status           string   `json:"status"`
	ServiceCountries []string `json:"service_countries"`
}

func assetToDTO(r asset.Result) AssetDTO {
	a := r.Asset
	return AssetDTO{
		ID:                 a.ID(),
		SerialNumber:       a.SerialNumber(),
		Name:               a.Name(),
		Description:        a.Description(),
		Category:           a.Category(),
		Status:             a.Status().String(),
		AssignedEmployeeID: a.AssignedEmployeeID(),
		WarehouseID:        a.WarehouseID(),
		OfficeID:           a.OfficeID(),
		PurchaseDate:       a.PurchaseDate(),
		DeviceClass:        r.Class.String(),
		DeviceSpec:         r.Spec,
		UpdatedAt:          a.UpdatedAt(),
	}
}

func warehouseToDTO(w *warehouse.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		ID:               w.ID(),
		Name:             w.Name(),
		Code:             w.Code(),
		Status:           w.Status().String(),
		ServiceCountries: w.ServiceCountries(),
	}
}
