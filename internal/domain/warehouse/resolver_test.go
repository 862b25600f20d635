package warehouse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWarehouses(t *testing.T) []*Warehouse {
	t.Helper()

	specs := []struct {
		id, code  string
		countries []string
	}{
		{"wh-1", "WH1", []string{"United States"}},
		{"wh-2", "WH2", []string{"United Kingdom", "Ireland"}},
		{"wh-8", "WH8", []string{"Canada"}},
	}

	warehouses := make([]*Warehouse, 0, len(specs))
	for _, s := range specs {
		w, err := NewWarehouse(s.id, "warehouse "+s.code, s.code, nil, StatusActive, s.countries)
		require.NoError(t, err)
		warehouses = append(warehouses, w)
	}
	return warehouses
}

func TestFacilitiesServicing(t *testing.T) {
	warehouses := testWarehouses(t)

	ids := FacilitiesServicing(warehouses, "Ireland")
	assert.Equal(t, 1, ids.Len())
	assert.True(t, ids.Has("wh-2"))

	ids = FacilitiesServicing(warehouses, "Canada")
	assert.True(t, ids.Has("wh-8"))
	assert.False(t, ids.Has("wh-1"))
}

func TestFacilitiesServicing_UnknownCountryIsEmpty(t *testing.T) {
	warehouses := testWarehouses(t)

	// Unrecognized country is a normal outcome, not an error.
	assert.Equal(t, 0, FacilitiesServicing(warehouses, "Atlantis").Len())
	assert.Equal(t, 0, FacilitiesServicing(warehouses, "").Len())

	// Matching is exact and case-sensitive; normalization happens upstream.
	assert.Equal(t, 0, FacilitiesServicing(warehouses, "canada").Len())
}

func TestWarehouse_Services(t *testing.T) {
	w, err := NewWarehouse("wh-2", "London", "WH2", nil, StatusActive, []string{"United Kingdom", "Ireland"})
	require.NoError(t, err)

	assert.True(t, w.Services("Ireland"))
	assert.False(t, w.Services("France"))
}

func TestWarehouse_ServiceCountriesIsCopy(t *testing.T) {
	w, err := NewWarehouse("wh-1", "Dallas", "WH1", nil, StatusActive, []string{"United States"})
	require.NoError(t, err)

	countries := w.ServiceCountries()
	countries[0] = "mutated"
	assert.Equal(t, []string{"United States"}, w.ServiceCountries())
}

func TestDefaultServiceCountries(t *testing.T) {
	// Every code in the static table maps to at least one country and no
	// country appears under two codes.
	seen := map[string]string{}
	for code, countries := range DefaultServiceCountries {
		assert.NotEmpty(t, countries, code)
		for _, c := range countries {
			prev, dup := seen[c]
			assert.False(t, dup, "country %s appears under %s and %s", c, prev, code)
			seen[c] = code
		}
	}
	assert.Equal(t, []string{"Canada"}, DefaultServiceCountries["WH8"])
}
