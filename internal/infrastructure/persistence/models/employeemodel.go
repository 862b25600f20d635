package models

import (
	"time"

	"quartermaster/internal/shared/constants"
)

// EmployeeModel represents the database persistence model for employees.
// Every row has passed the PII gate: names are redacted and the email is
// anonymized before a record reaches this layer.
type EmployeeModel struct {
	ID         string  `gorm:"primarykey;size:64"`
	FirstName  string  `gorm:"size:100"`
	LastName   string  `gorm:"size:100"`
	Email      string  `gorm:"size:255"`
	Department string  `gorm:"size:100;index:idx_employees_department"`
	JobTitle   string  `gorm:"size:100"`
	Status     string  `gorm:"not null;default:inactive;size:20;index:idx_employees_status"` // active, inactive
	AddressID  *string `gorm:"size:64;index:idx_employees_address"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (EmployeeModel) TableName() string {
	return constants.TableEmployees
}
