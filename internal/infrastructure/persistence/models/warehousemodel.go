package models

import (
	"time"

	"gorm.io/datatypes"

	"quartermaster/internal/shared/constants"
)

// WarehouseModel represents the database persistence model for warehouses.
// ServiceCountries holds the JSON-encoded list of countries the facility
// fulfills orders for.
type WarehouseModel struct {
	ID               string  `gorm:"primarykey;size:64"`
	Name             string  `gorm:"not null;size:255"`
	Code             string  `gorm:"not null;uniqueIndex:idx_warehouses_code;size:20"`
	AddressID        *string `gorm:"size:64"`
	Status           string  `gorm:"not null;default:active;size:20"` // active, inactive
	ServiceCountries datatypes.JSON
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the table name for GORM
func (WarehouseModel) TableName() string {
	return constants.TableWarehouses
}
