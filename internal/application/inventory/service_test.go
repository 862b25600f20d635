package inventory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quartermaster/internal/domain/address"
	"quartermaster/internal/domain/asset"
	"quartermaster/internal/domain/employee"
	"quartermaster/internal/domain/warehouse"
	apperrors "quartermaster/internal/shared/errors"
	"quartermaster/internal/shared/logger"
	"quartermaster/internal/shared/query"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func strPtr(s string) *string { return &s }

func mustAsset(t *testing.T, id, description string, status asset.LifecycleStatus, warehouseID *string) *asset.Asset {
	t.Helper()
	a, err := asset.NewAsset(id, "SN-"+id, "asset "+id, description, "laptop", status, nil, warehouseID, nil, nil)
	require.NoError(t, err)
	return a
}

type fakeAssetRepo struct {
	assets  []*asset.Asset
	byID    map[string]*asset.Asset
	listErr error
	calls   int
}

func (r *fakeAssetRepo) Upsert(_ context.Context, _ *asset.Asset) error { return nil }
func (r *fakeAssetRepo) GetByID(_ context.Context, id string) (*asset.Asset, error) {
	return r.byID[id], nil
}
func (r *fakeAssetRepo) List(_ context.Context) ([]*asset.Asset, error) {
	r.calls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.assets, nil
}
func (r *fakeAssetRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.assets)), nil
}

type fakeEmployeeRepo struct{ employees []*employee.Employee }

func (r *fakeEmployeeRepo) Upsert(_ context.Context, _ *employee.Employee) error { return nil }
func (r *fakeEmployeeRepo) GetByID(_ context.Context, _ string) (*employee.Employee, error) {
	return nil, nil
}
func (r *fakeEmployeeRepo) List(_ context.Context) ([]*employee.Employee, error) {
	return r.employees, nil
}

type fakeAddressRepo struct{ addresses []*address.Address }

func (r *fakeAddressRepo) Upsert(_ context.Context, _ *address.Address) error { return nil }
func (r *fakeAddressRepo) GetByID(_ context.Context, _ string) (*address.Address, error) {
	return nil, nil
}
func (r *fakeAddressRepo) List(_ context.Context) ([]*address.Address, error) {
	return r.addresses, nil
}

type fakeWarehouseRepo struct{ warehouses []*warehouse.Warehouse }

func (r *fakeWarehouseRepo) Upsert(_ context.Context, _ *warehouse.Warehouse) error { return nil }
func (r *fakeWarehouseRepo) GetByID(_ context.Context, _ string) (*warehouse.Warehouse, error) {
	return nil, nil
}
func (r *fakeWarehouseRepo) GetByCode(_ context.Context, _ string) (*warehouse.Warehouse, error) {
	return nil, nil
}
func (r *fakeWarehouseRepo) List(_ context.Context) ([]*warehouse.Warehouse, error) {
	return r.warehouses, nil
}

type fakeSnapshotStore struct {
	snapshot *Collections
	getErr   error
	gets     int
	sets     int
}

func (s *fakeSnapshotStore) Get(_ context.Context) (*Collections, error) {
	s.gets++
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.snapshot, nil
}

func (s *fakeSnapshotStore) Set(_ context.Context, c *Collections) error {
	s.sets++
	s.snapshot = c
	return nil
}

func (s *fakeSnapshotStore) Invalidate(_ context.Context) error {
	s.snapshot = nil
	return nil
}

func testAssets(t *testing.T) []*asset.Asset {
	t.Helper()
	return []*asset.Asset{
		mustAsset(t, "a-1", `Dell, XPS 16 9640, Intel Core Ultra 9-185H, 32GB RAM, 1TB SSD`, asset.LifecycleStatusAvailable, strPtr("wh-1")),
		mustAsset(t, "a-2", `Dell, Latitude 5520, Intel Core i7, 16GB RAM, 512GB SSD`, asset.LifecycleStatusAvailable, strPtr("wh-1")),
		mustAsset(t, "a-3", `Apple, MacBook Pro 16", Apple M3 Max, 36GB RAM`, asset.LifecycleStatusAvailable, strPtr("wh-1")),
	}
}

func TestService_SearchAssets_Pagination(t *testing.T) {
	assetRepo := &fakeAssetRepo{assets: testAssets(t)}
	svc := NewService(assetRepo, &fakeEmployeeRepo{}, &fakeAddressRepo{}, &fakeWarehouseRepo{}, nil, nil, testLogger())

	dtos, total, err := svc.SearchAssets(context.Background(), asset.FilterSpec{}, query.PageFilter{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, dtos, 2)
	assert.Equal(t, "a-1", dtos[0].ID)
	assert.Equal(t, "enhanced_tier_a", dtos[0].DeviceClass)
	assert.Equal(t, 32, dtos[0].DeviceSpec.MemoryGB)

	dtos, total, err = svc.SearchAssets(context.Background(), asset.FilterSpec{}, query.PageFilter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, dtos, 1)
	assert.Equal(t, "a-3", dtos[0].ID)

	// A page past the end is empty but the total still reflects all matches.
	dtos, total, err = svc.SearchAssets(context.Background(), asset.FilterSpec{}, query.PageFilter{Page: 5, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Empty(t, dtos)
}

func TestService_SearchAssets_UsesSnapshotCache(t *testing.T) {
	assetRepo := &fakeAssetRepo{assets: testAssets(t)}
	snapshots := &fakeSnapshotStore{}
	svc := NewService(assetRepo, &fakeEmployeeRepo{}, &fakeAddressRepo{}, &fakeWarehouseRepo{}, snapshots, nil, testLogger())

	_, _, err := svc.SearchAssets(context.Background(), asset.FilterSpec{}, query.PageFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, assetRepo.calls)
	assert.Equal(t, 1, snapshots.sets)

	// Second search is served from the snapshot without touching the repos.
	_, _, err = svc.SearchAssets(context.Background(), asset.FilterSpec{}, query.PageFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, assetRepo.calls)
	assert.Equal(t, 2, snapshots.gets)
}

func TestService_SearchAssets_CacheFailureFallsBack(t *testing.T) {
	assetRepo := &fakeAssetRepo{assets: testAssets(t)}
	snapshots := &fakeSnapshotStore{getErr: errors.New("connection refused")}
	svc := NewService(assetRepo, &fakeEmployeeRepo{}, &fakeAddressRepo{}, &fakeWarehouseRepo{}, snapshots, nil, testLogger())

	dtos, total, err := svc.SearchAssets(context.Background(), asset.FilterSpec{}, query.PageFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, dtos, 3)
	assert.Equal(t, 1, assetRepo.calls)
}

func TestService_GetAsset(t *testing.T) {
	a := mustAsset(t, "a-1", `Apple, MacBook Pro 16", Apple M3 Max, 36GB RAM`, asset.LifecycleStatusAvailable, strPtr("wh-1"))
	assetRepo := &fakeAssetRepo{byID: map[string]*asset.Asset{"a-1": a}}
	svc := NewService(assetRepo, &fakeEmployeeRepo{}, &fakeAddressRepo{}, &fakeWarehouseRepo{}, nil, nil, testLogger())

	dto, err := svc.GetAsset(context.Background(), "a-1")
	require.NoError(t, err)
	assert.Equal(t, "a-1", dto.ID)
	assert.Equal(t, "enhanced_tier_b", dto.DeviceClass)
	assert.Equal(t, "Apple", dto.DeviceSpec.Manufacturer)
}

func TestService_GetAsset_NotFound(t *testing.T) {
	svc := NewService(&fakeAssetRepo{}, &fakeEmployeeRepo{}, &fakeAddressRepo{}, &fakeWarehouseRepo{}, nil, nil, testLogger())

	dto, err := svc.GetAsset(context.Background(), "missing")
	assert.Nil(t, dto)
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
}

func TestService_ClassifyDescription(t *testing.T) {
	svc := NewService(&fakeAssetRepo{}, &fakeEmployeeRepo{}, &fakeAddressRepo{}, &fakeWarehouseRepo{}, nil, nil, testLogger())

	dto := svc.ClassifyDescription(`Dell, Latitude 5520, Intel Core i7, 16GB RAM, 512GB SSD`)
	assert.Equal(t, "standard_tier_a", dto.DeviceClass)
	assert.Equal(t, "Dell", dto.DeviceSpec.Manufacturer)
	assert.Equal(t, 16, dto.DeviceSpec.MemoryGB)
	assert.Equal(t, "v1", dto.RuleSetVersion)

	// Classification is total: garbage still yields a class.
	dto = svc.ClassifyDescription("")
	assert.Equal(t, "other", dto.DeviceClass)
}

func TestService_WarehousesServicingCountry(t *testing.T) {
	whCA, err := warehouse.NewWarehouse("wh-8", "Toronto Fulfillment", "WH8", nil, warehouse.StatusActive, []string{"Canada"})
	require.NoError(t, err)
	whUS, err := warehouse.NewWarehouse("wh-1", "Dallas Fulfillment", "WH1", nil, warehouse.StatusActive, []string{"United States"})
	require.NoError(t, err)
	repo := &fakeWarehouseRepo{warehouses: []*warehouse.Warehouse{whCA, whUS}}

	svc := NewService(&fakeAssetRepo{}, &fakeEmployeeRepo{}, &fakeAddressRepo{}, repo, nil, nil, testLogger())

	dtos, err := svc.WarehousesServicingCountry(context.Background(), "Canada")
	require.NoError(t, err)
	require.Len(t, dtos, 1)
	assert.Equal(t, "WH8", dtos[0].Code)

	dtos, err = svc.WarehousesServicingCountry(context.Background(), "Atlantis")
	require.NoError(t, err)
	assert.Empty(t, dtos)

	all, err := svc.ListWarehouses(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
