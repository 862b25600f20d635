package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAsset_SingleLocationInvariant(t *testing.T) {
	tests := []struct {
		name        string
		employeeID  *string
		warehouseID *string
		officeID    *string
		wantErr     bool
	}{
		{"no location", nil, nil, nil, false},
		{"employee only", strPtr("emp-1"), nil, nil, false},
		{"warehouse only", nil, strPtr("wh-1"), nil, false},
		{"office only", nil, nil, strPtr("off-1"), false},
		{"employee and warehouse", strPtr("emp-1"), strPtr("wh-1"), nil, true},
		{"warehouse and office", nil, strPtr("wh-1"), strPtr("off-1"), true},
		{"all three", strPtr("emp-1"), strPtr("wh-1"), strPtr("off-1"), true},
		{"empty strings count as unset", strPtr(""), strPtr(""), strPtr("off-1"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAsset("a-1", "SN", "name", "desc", "laptop",
				LifecycleStatusAvailable, tt.employeeID, tt.warehouseID, tt.officeID, nil)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewAsset_Validation(t *testing.T) {
	_, err := NewAsset("", "SN", "name", "desc", "laptop", LifecycleStatusAvailable, nil, nil, nil, nil)
	assert.Error(t, err)

	_, err = NewAsset("a-1", "SN", "name", "desc", "laptop", LifecycleStatus("bogus"), nil, nil, nil, nil)
	assert.Error(t, err)
}

func TestAsset_LocationTransitionsClearOthers(t *testing.T) {
	a, err := NewAsset("a-1", "SN", "name", "desc", "laptop", LifecycleStatusAvailable, nil, strPtr("wh-1"), nil, nil)
	require.NoError(t, err)

	require.NoError(t, a.AssignToEmployee("emp-1"))
	assert.Equal(t, "emp-1", *a.AssignedEmployeeID())
	assert.Nil(t, a.WarehouseID())
	assert.Equal(t, LifecycleStatusAssigned, a.Status())
	assert.True(t, a.IsAssigned())

	require.NoError(t, a.StoreInWarehouse("wh-2"))
	assert.Nil(t, a.AssignedEmployeeID())
	assert.Equal(t, "wh-2", *a.WarehouseID())
	assert.Equal(t, LifecycleStatusAvailable, a.Status())
	assert.True(t, a.IsAvailable())

	require.NoError(t, a.PlaceInOffice("off-1"))
	assert.Nil(t, a.WarehouseID())
	assert.Equal(t, "off-1", *a.OfficeID())

	a.Retire()
	assert.Equal(t, LifecycleStatusRetired, a.Status())
}

func TestNormalizeLifecycleStatus(t *testing.T) {
	assert.Equal(t, LifecycleStatusAvailable, NormalizeLifecycleStatus("available"))
	assert.Equal(t, LifecycleStatusAssigned, NormalizeLifecycleStatus("assigned"))
	assert.Equal(t, LifecycleStatusInTransit, NormalizeLifecycleStatus("in_transit"))
	assert.Equal(t, LifecycleStatusRetired, NormalizeLifecycleStatus("retired"))

	// Unrecognized provider vocabulary normalizes instead of being rejected.
	assert.Equal(t, LifecycleStatusUnknown, NormalizeLifecycleStatus("on_loan"))
	assert.Equal(t, LifecycleStatusUnknown, NormalizeLifecycleStatus(""))
}
