package warehouse

import "quartermaster/internal/shared/utils/setutil"

// FacilitiesServicing returns the IDs of the warehouses that service the
// given country. Matching is exact and case-sensitive. An unrecognized
// country yields an empty set; that is a normal outcome, not an error.
//
// Countries happen to be serviced by exactly one warehouse in current data,
// but the mapping is treated as many-to-many.
func FacilitiesServicing(warehouses []*Warehouse, country string) *setutil.StringSet {
	ids := setutil.NewStringSet()
	if country == "" {
		return ids
	}
	for _, w := range warehouses {
		if w.Services(country) {
			ids.Add(w.ID())
		}
	}
	return ids
}

// DefaultServiceCountries is the static facility-to-country service table,
// keyed by warehouse code. It backfills warehouses whose provider record
// carries no service-country list. Revised by hand when fulfillment
// routing changes.
var DefaultServiceCountries = map[string][]string{
	"WH1": {"United States"},
	"WH2": {"United Kingdom", "Ireland"},
	"WH3": {"Germany", "Austria", "Switzerland"},
	"WH4": {"Netherlands", "Belgium", "Luxembourg"},
	"WH5": {"France"},
	"WH6": {"Spain", "Portugal"},
	"WH7": {"Australia", "New Zealand"},
	"WH8": {"Canada"},
}
