// Package inventory implements the read path: search, single-asset lookup,
// on-demand classification, and warehouse queries. Reads operate on full
// collection snapshots so that one search sees one consistent data set.
package inventory

import (
	"context"

	"quartermaster/internal/domain/address"
	"quartermaster/internal/domain/asset"
	"quartermaster/internal/domain/employee"
	"quartermaster/internal/domain/warehouse"
	"quartermaster/internal/shared/errors"
	"quartermaster/internal/shared/logger"
	"quartermaster/internal/shared/query"
)

// Collections is one consistent snapshot of every synced collection
type Collections struct {
	Assets     []*asset.Asset
	Employees  []*employee.Employee
	Addresses  []*address.Address
	Warehouses []*warehouse.Warehouse
}

// SnapshotStore caches collection snapshots between syncs. Get returns
// (nil, nil) on a miss. Only raw synced records are cached; derived device
// classes never enter the store.
type SnapshotStore interface {
	Get(ctx context.Context) (*Collections, error)
	Set(ctx context.Context, c *Collections) error
	Invalidate(ctx context.Context) error
}

// Service answers inventory queries
type Service struct {
	assetRepo     asset.Repository
	employeeRepo  employee.Repository
	addressRepo   address.Repository
	warehouseRepo warehouse.Repository
	snapshots     SnapshotStore
	engine        *asset.SearchEngine
	classifier    *asset.Classifier
	logger        logger.Interface
}

// NewService creates a new inventory service. A nil snapshot store disables
// caching; a nil classifier uses the default rule set.
func NewService(
	assetRepo asset.Repository,
	employeeRepo employee.Repository,
	addressRepo address.Repository,
	warehouseRepo warehouse.Repository,
	snapshots SnapshotStore,
	classifier *asset.Classifier,
	log logger.Interface,
) *Service {
	if classifier == nil {
		classifier = asset.NewClassifier(nil)
	}
	return &Service{
		assetRepo:     assetRepo,
		employeeRepo:  employeeRepo,
		addressRepo:   addressRepo,
		warehouseRepo: warehouseRepo,
		snapshots:     snapshots,
		engine:        asset.NewSearchEngine(classifier),
		classifier:    classifier,
		logger:        log,
	}
}

// SearchAssets runs a filtered search over the full collection snapshot and
// paginates the annotated results. The returned total counts matches before
// pagination.
func (s *Service) SearchAssets(ctx context.Context, filter asset.FilterSpec, page query.PageFilter) ([]AssetDTO, int64, error) {
	c, err := s.collections(ctx)
	if err != nil {
		return nil, 0, err
	}

	results := s.engine.Search(c.Assets, c.Employees, c.Addresses, c.Warehouses, filter)
	total := int64(len(results))

	offset, limit := page.Offset(), page.Limit()
	if offset >= len(results) {
		return []AssetDTO{}, total, nil
	}
	end := offset + limit
	if end > len(results) {
		end = len(results)
	}

	dtos := make([]AssetDTO, 0, end-offset)
	for _, r := range results[offset:end] {
		dtos = append(dtos, assetToDTO(r))
	}
	return dtos, total, nil
}

// GetAsset returns a single asset with its derived class and spec
func (s *Service) GetAsset(ctx context.Context, id string) (*AssetDTO, error) {
	a, err := s.assetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, errors.NewNotFoundError("asset not found")
	}
	dto := assetToDTO(asset.Result{
		Asset: a,
		Class: s.classifier.Classify(a.Description()),
		Spec:  asset.ExtractSpec(a.Description()),
	})
	return &dto, nil
}

// ClassifyDescription classifies an arbitrary description without touching
// storage. Classification is total: any input yields a class.
func (s *Service) ClassifyDescription(description string) ClassificationDTO {
	return ClassificationDTO{
		DeviceClass:    s.classifier.Classify(description).String(),
		DeviceSpec:     asset.ExtractSpec(description),
		RuleSetVersion: s.classifier.RuleSetVersion(),
	}
}

// ListWarehouses returns all warehouses
func (s *Service) ListWarehouses(ctx context.Context) ([]WarehouseDTO, error) {
	warehouses, err := s.warehouseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]WarehouseDTO, 0, len(warehouses))
	for _, w := range warehouses {
		dtos = append(dtos, warehouseToDTO(w))
	}
	return dtos, nil
}

// WarehousesServicingCountry returns the warehouses that fulfill orders for
// the given country. An unrecognized country yields an empty list.
func (s *Service) WarehousesServicingCountry(ctx context.Context, country string) ([]WarehouseDTO, error) {
	warehouses, err := s.warehouseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := warehouse.FacilitiesServicing(warehouses, country)
	dtos := make([]WarehouseDTO, 0, ids.Len())
	for _, w := range warehouses {
		if ids.Has(w.ID()) {
			dtos = append(dtos, warehouseToDTO(w))
		}
	}
	return dtos, nil
}

// collections loads one consistent snapshot, preferring the cache.
func (s *Service) collections(ctx context.Context) (*Collections, error) {
	if s.snapshots != nil {
		c, err := s.snapshots.Get(ctx)
		if err != nil {
			s.logger.Warnw("snapshot cache read failed, falling back to database", "error", err)
		} else if c != nil {
			return c, nil
		}
	}

	c := &Collections{}
	var err error
	if c.Assets, err = s.assetRepo.List(ctx); err != nil {
		return nil, err
	}
	if c.Employees, err = s.employeeRepo.List(ctx); err != nil {
		return nil, err
	}
	if c.Addresses, err = s.addressRepo.List(ctx); err != nil {
		return nil, err
	}
	if c.Warehouses, err = s.warehouseRepo.List(ctx); err != nil {
		return nil, err
	}

	if s.snapshots != nil {
		if err := s.snapshots.Set(ctx, c); err != nil {
			s.logger.Warnw("snapshot cache write failed", "error", err)
		}
	}
	return c, nil
}
