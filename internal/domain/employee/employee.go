// Package employee provides the domain model for scrubbed personnel records.
// Employees enter the system exclusively through the PII scrubbing pipeline:
// by the time a record reaches this aggregate, names are redacted and the
// email is anonymized.
package employee

import (
	"fmt"
	"time"
)

// Status represents the employment status of an employee
type Status string

const (
	// StatusActive indicates a current employee
	StatusActive Status = "active"
	// StatusInactive indicates a deactivated employee
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

// Employee represents a scrubbed personnel record.
// Invariant: no field contains a recoverable name, email, or free-form
// contact string. The write path enforces this with the PII validation gate
// before any employee is persisted.
type Employee struct {
	id         string
	firstName  string
	lastName   string
	email      string
	department string
	jobTitle   string
	status     Status
	addressID  *string
	createdAt  time.Time
	updatedAt  time.Time
}

// NewEmployee creates a new employee from already-sanitized fields
func NewEmployee(
	id string,
	firstName string,
	lastName string,
	email string,
	department string,
	jobTitle string,
	status Status,
	addressID *string,
) (*Employee, error) {
	if id == "" {
		return nil, fmt.Errorf("employee ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid employee status: %s", status)
	}

	now := time.Now()
	return &Employee{
		id:         id,
		firstName:  firstName,
		lastName:   lastName,
		email:      email,
		department: department,
		jobTitle:   jobTitle,
		status:     status,
		addressID:  addressID,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructEmployee reconstructs an employee from persistence
func ReconstructEmployee(
	id string,
	firstName string,
	lastName string,
	email string,
	department string,
	jobTitle string,
	status Status,
	addressID *string,
	createdAt, updatedAt time.Time,
) (*Employee, error) {
	if id == "" {
		return nil, fmt.Errorf("employee ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid employee status: %s", status)
	}

	return &Employee{
		id:         id,
		firstName:  firstName,
		lastName:   lastName,
		email:      email,
		department: department,
		jobTitle:   jobTitle,
		status:     status,
		addressID:  addressID,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

// ID returns the employee ID
func (e *Employee) ID() string {
	return e.id
}

// FirstName returns the redacted first name
func (e *Employee) FirstName() string {
	return e.firstName
}

// LastName returns the redacted last name
func (e *Employee) LastName() string {
	return e.lastName
}

// Email returns the anonymized email
func (e *Employee) Email() string {
	return e.email
}

// Department returns the department name
func (e *Employee) Department() string {
	return e.department
}

// JobTitle returns the job title
func (e *Employee) JobTitle() string {
	return e.jobTitle
}

// Status returns the employment status
func (e *Employee) Status() Status {
	return e.status
}

// AddressID returns the linked address ID, if any
func (e *Employee) AddressID() *string {
	return e.addressID
}

// CreatedAt returns when the employee was first synced
func (e *Employee) CreatedAt() time.Time {
	return e.createdAt
}

// UpdatedAt returns when the employee was last synced
func (e *Employee) UpdatedAt() time.Time {
	return e.updatedAt
}

// IsActive returns true for a current employee
func (e *Employee) IsActive() bool {
	return e.status == StatusActive
}
