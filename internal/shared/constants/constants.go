// Package constants defines shared constant values used across layers.
package constants

// Database table names
const (
	TableAssets     = "assets"
	TableEmployees  = "employees"
	TableAddresses  = "addresses"
	TableWarehouses = "warehouses"
)

// Context keys
const (
	ContextKeyRequestID = "request_id"
)
