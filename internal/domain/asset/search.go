package asset

import (
	"quartermaster/internal/domain/address"
	"quartermaster/internal/domain/employee"
	"quartermaster/internal/domain/warehouse"
	"quartermaster/internal/shared/utils/setutil"
)

// FilterSpec narrows the candidate set during a search. Every field is
// independently optional; unset fields impose no constraint and set fields
// combine with AND semantics.
type FilterSpec struct {
	// Country matches assets whose assigned employee resolves to an address
	// in the country OR whose warehouse services the country. The union is
	// intentional: operators expect both holdings to count as "assets in X".
	Country string

	// WarehouseID / WarehouseCode match the storage warehouse exactly.
	// A code is resolved to an ID against the warehouse table first.
	WarehouseID   string
	WarehouseCode string

	// Statuses matches any of the supplied lifecycle statuses.
	Statuses []LifecycleStatus

	// Category matches the asset category exactly.
	Category string

	// Manufacturer is a substring match against the description.
	Manufacturer string

	// MinMemoryGB compares against the extracted memory size. Assets whose
	// description yields no memory token never match a positive value.
	MinMemoryGB int

	// AssignedOnly keeps only assets held by an employee;
	// AvailableOnly keeps only assets with the available status.
	AssignedOnly  bool
	AvailableOnly bool

	// DeviceClass is applied last, after all cheaper predicates, because
	// classification performs extraction.
	DeviceClass DeviceClass
}

// IsZero reports whether no constraint is set.
func (f FilterSpec) IsZero() bool {
	return f.Country == "" && f.WarehouseID == "" && f.WarehouseCode == "" &&
		len(f.Statuses) == 0 && f.Category == "" && f.Manufacturer == "" &&
		f.MinMemoryGB == 0 && !f.AssignedOnly && !f.AvailableOnly &&
		f.DeviceClass == ""
}

// Result is an asset annotated with its derived class and spec. The derived
// fields exist only at query time and are never written back to storage.
type Result struct {
	Asset *Asset
	Class DeviceClass
	Spec  DeviceSpec
}

// SearchEngine applies a FilterSpec over in-memory record collections.
// It holds no mutable state; concurrent searches need no coordination as
// long as each call is given a consistent snapshot of the collections.
type SearchEngine struct {
	classifier *Classifier
}

// NewSearchEngine creates a search engine using the given classifier.
// A nil classifier uses the default rule set.
func NewSearchEngine(classifier *Classifier) *SearchEngine {
	if classifier == nil {
		classifier = NewClassifier(nil)
	}
	return &SearchEngine{classifier: classifier}
}

// Search filters the asset collection and annotates every surviving asset
// with its device class and spec. Results preserve the input order; the
// input collections are never mutated. An all-unset filter returns every
// asset, annotated.
func (e *SearchEngine) Search(
	assets []*Asset,
	employees []*employee.Employee,
	addresses []*address.Address,
	warehouses []*warehouse.Warehouse,
	filter FilterSpec,
) []Result {
	employeeByID := make(map[string]*employee.Employee, len(employees))
	for _, emp := range employees {
		employeeByID[emp.ID()] = emp
	}
	addressByID := make(map[string]*address.Address, len(addresses))
	for _, addr := range addresses {
		addressByID[addr.ID()] = addr
	}

	warehouseID := filter.WarehouseID
	if warehouseID == "" && filter.WarehouseCode != "" {
		warehouseID = resolveWarehouseCode(warehouses, filter.WarehouseCode)
		if warehouseID == "" {
			// Unknown code: user error surfaced as zero results.
			return []Result{}
		}
	}

	countryFacilities := warehouse.FacilitiesServicing(warehouses, filter.Country)

	statuses := make(map[LifecycleStatus]bool, len(filter.Statuses))
	for _, s := range filter.Statuses {
		statuses[s] = true
	}

	// Cheap predicates first; extraction and classification run only for
	// candidates that survive them.
	candidates := make([]*Asset, 0, len(assets))
	for _, a := range assets {
		if filter.Country != "" && !matchesCountry(a, filter.Country, employeeByID, addressByID, countryFacilities) {
			continue
		}
		if warehouseID != "" && (a.WarehouseID() == nil || *a.WarehouseID() != warehouseID) {
			continue
		}
		if len(statuses) > 0 && !statuses[a.Status()] {
			continue
		}
		if filter.Category != "" && a.Category() != filter.Category {
			continue
		}
		if filter.Manufacturer != "" && !containsToken(a.Description(), filter.Manufacturer) {
			continue
		}
		if filter.AssignedOnly && !a.IsAssigned() {
			continue
		}
		if filter.AvailableOnly && !a.IsAvailable() {
			continue
		}
		candidates = append(candidates, a)
	}

	results := make([]Result, 0, len(candidates))
	for _, a := range candidates {
		spec := ExtractSpec(a.Description())
		if filter.MinMemoryGB > 0 && spec.MemoryGB < filter.MinMemoryGB {
			continue
		}
		results = append(results, Result{Asset: a, Spec: spec})
	}

	// Classification last: the most expensive predicate must not run for
	// records already excluded by cheaper filters.
	for i := range results {
		results[i].Class = e.classifier.Classify(results[i].Asset.Description())
	}
	if filter.DeviceClass != "" {
		filtered := results[:0:0]
		for _, r := range results {
			if r.Class == filter.DeviceClass {
				filtered = append(filtered, r)
			}
		}
		results = filtered
	}

	return results
}

// matchesCountry implements the union predicate: an asset is "in" a country
// either because its assigned employee's address is there, or because it
// sits in a warehouse servicing that country.
func matchesCountry(
	a *Asset,
	country string,
	employeeByID map[string]*employee.Employee,
	addressByID map[string]*address.Address,
	countryFacilities *setutil.StringSet,
) bool {
	if a.AssignedEmployeeID() != nil {
		if emp, ok := employeeByID[*a.AssignedEmployeeID()]; ok && emp.AddressID() != nil {
			if addr, ok := addressByID[*emp.AddressID()]; ok && addr.Country() == country {
				return true
			}
		}
	}
	if a.WarehouseID() != nil && countryFacilities.Has(*a.WarehouseID()) {
		return true
	}
	return false
}

func resolveWarehouseCode(warehouses []*warehouse.Warehouse, code string) string {
	for _, w := range warehouses {
		if w.Code() == code {
			return w.ID()
		}
	}
	return ""
}
