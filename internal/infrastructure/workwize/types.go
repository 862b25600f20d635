package workwize

// Wire types for the provider API. Collection endpoints wrap their payload
// in a data envelope with laravel-style pagination metadata.

type pageMeta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

type pageLinks struct {
	Next *string `json:"next"`
}

type assetPage struct {
	Data  []assetRecord `json:"data"`
	Meta  pageMeta      `json:"meta"`
	Links pageLinks     `json:"links"`
}

type assetRecord struct {
	ID           string  `json:"id"`
	SerialNumber string  `json:"serial_number"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Status       string  `json:"status"`
	EmployeeID   *string `json:"employee_id"`
	WarehouseID  *string `json:"warehouse_id"`
	OfficeID     *string `json:"office_id"`
	PurchaseDate *string `json:"purchase_date"`
}

type employeePage struct {
	Data  []employeeRecord `json:"data"`
	Meta  pageMeta         `json:"meta"`
	Links pageLinks        `json:"links"`
}

type employeeRecord struct {
	ID         string `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	JobTitle   string `json:"job_title"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
}

type addressEnvelope struct {
	Data addressRecord `json:"data"`
}

type addressRecord struct {
	ID         string   `json:"id"`
	Street     string   `json:"street"`
	Street2    string   `json:"street_2"`
	PostalCode string   `json:"postal_code"`
	City       string   `json:"city"`
	Region     string   `json:"region"`
	Country    string   `json:"country"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}

type warehousePage struct {
	Data  []warehouseRecord `json:"data"`
	Meta  pageMeta          `json:"meta"`
	Links pageLinks         `json:"links"`
}

type warehouseRecord struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Code             string   `json:"code"`
	AddressID        *string  `json:"address_id"`
	Status           string   `json:"status"`
	ServiceCountries []string `json:"service_countries"`
}
