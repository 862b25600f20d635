package models

import (
	"time"

	"quartermaster/internal/shared/constants"
)

// AssetModel represents the database persistence model for hardware assets.
// This is the anti-corruption layer between domain and database.
// Note: device class and extracted specs are derived at read time and have
// no columns here.
type AssetModel struct {
	ID                 string  `gorm:"primarykey;size:64"`
	SerialNumber       string  `gorm:"size:100;index:idx_assets_serial"`
	Name               string  `gorm:"not null;size:255"`
	Description        string  `gorm:"not null;type:text"`
	Category           string  `gorm:"size:100;index:idx_assets_category"`
	Status             string  `gorm:"not null;default:unknown;size:20;index:idx_assets_status"` // available, assigned, in_transit, retired, unknown
	AssignedEmployeeID *string `gorm:"size:64;index:idx_assets_employee"`
	WarehouseID        *string `gorm:"size:64;index:idx_assets_warehouse"`
	OfficeID           *string `gorm:"size:64"`
	PurchaseDate       *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the table name for GORM
func (AssetModel) TableName() string {
	return constants.TableAssets
}
