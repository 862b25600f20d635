// Package address provides the domain model for scrubbed location records.
// The type deliberately has no street-level fields: street lines are dropped
// during scrubbing, not masked, so they cannot survive into persistence.
package address

import (
	"fmt"
	"time"
)

// Address represents a city/region/country level location record
type Address struct {
	id        string
	city      string
	region    string
	country   string
	latitude  *float64
	longitude *float64
	createdAt time.Time
	updatedAt time.Time
}

// NewAddress creates a new address
func NewAddress(
	id string,
	city string,
	region string,
	country string,
	latitude *float64,
	longitude *float64,
) (*Address, error) {
	if id == "" {
		return nil, fmt.Errorf("address ID is required")
	}

	now := time.Now()
	return &Address{
		id:        id,
		city:      city,
		region:    region,
		country:   country,
		latitude:  latitude,
		longitude: longitude,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructAddress reconstructs an address from persistence
func ReconstructAddress(
	id string,
	city string,
	region string,
	country string,
	latitude *float64,
	longitude *float64,
	createdAt, updatedAt time.Time,
) (*Address, error) {
	if id == "" {
		return nil, fmt.Errorf("address ID is required")
	}

	return &Address{
		id:        id,
		city:      city,
		region:    region,
		country:   country,
		latitude:  latitude,
		longitude: longitude,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// ID returns the address ID
func (a *Address) ID() string {
	return a.id
}

// City returns the city name
func (a *Address) City() string {
	return a.city
}

// Region returns the region or state name
func (a *Address) Region() string {
	return a.region
}

// Country returns the country name
func (a *Address) Country() string {
	return a.country
}

// Latitude returns the latitude, if known
func (a *Address) Latitude() *float64 {
	return a.latitude
}

// Longitude returns the longitude, if known
func (a *Address) Longitude() *float64 {
	return a.longitude
}

// CreatedAt returns when the address was first synced
func (a *Address) CreatedAt() time.Time {
	return a.createdAt
}

// UpdatedAt returns when the address was last synced
func (a *Address) UpdatedAt() time.Time {
	return a.updatedAt
}
