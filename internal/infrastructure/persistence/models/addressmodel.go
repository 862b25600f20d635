package models

import (
	"time"

	"quartermaster/internal/shared/constants"
)

// AddressModel represents the database persistence model for addresses.
// The schema has no street or postal columns: scrubbing drops those fields
// before persistence, so they cannot be stored even by mistake.
type AddressModel struct {
	ID        string `gorm:"primarykey;size:64"`
	City      string `gorm:"size:100"`
	Region    string `gorm:"size:100"`
	Country   string `gorm:"size:100;index:idx_addresses_country"`
	Latitude  *float64
	Longitude *float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (AddressModel) TableName() string {
	return constants.TableAddresses
}
