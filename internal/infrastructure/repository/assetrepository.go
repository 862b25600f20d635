// Package repository contains the GORM-backed implementations of the domain
// repository interfaces. Sync traffic is upsert-only: records are keyed by
// provider ID and never hard-deleted.
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quartermaster/internal/domain/asset"
	"quartermaster/internal/infrastructure/persistence/models"
	"quartermaster/internal/shared/logger"
)

// AssetRepositoryImpl implements the asset.Repository interface
type AssetRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewAssetRepository creates a new asset repository instance
func NewAssetRepository(db *gorm.DB, logger logger.Interface) asset.Repository {
	return &AssetRepositoryImpl{db: db, logger: logger}
}

// Upsert creates or updates an asset keyed by its provider ID
func (r *AssetRepositoryImpl) Upsert(ctx context.Context, a *asset.Asset) error {
	model := assetToModel(a)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert asset", "asset_id", a.ID(), "error", err)
		return fmt.Errorf("failed to upsert asset: %w", err)
	}
	return nil
}

// GetByID retrieves an asset by ID; (nil, nil) when not found
func (r *AssetRepositoryImpl) GetByID(ctx context.Context, id string) (*asset.Asset, error) {
	var model models.AssetModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get asset", "asset_id", id, "error", err)
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return assetToDomain(&model)
}

// List retrieves all assets ordered by ID for stable results
func (r *AssetRepositoryImpl) List(ctx context.Context) ([]*asset.Asset, error) {
	var records []models.AssetModel
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		r.logger.Errorw("failed to list assets", "error", err)
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	assets := make([]*asset.Asset, 0, len(records))
	for i := range records {
		a, err := assetToDomain(&records[i])
		if err != nil {
			r.logger.Warnw("skipping unmappable asset row", "asset_id", records[i].ID, "error", err)
			continue
		}
		assets = append(assets, a)
	}
	return assets, nil
}

// Count returns the number of assets
func (r *AssetRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AssetModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count assets: %w", err)
	}
	return count, nil
}

func assetToModel(a *asset.Asset) *models.AssetModel {
	return &models.AssetModel{
		ID:                 a.ID(),
		SerialNumber:       a.SerialNumber(),
		Name:               a.Name(),
		Description:        a.Description(),
		Category:           a.Category(),
		Status:             a.Status().String(),
		AssignedEmployeeID: a.AssignedEmployeeID(),
		WarehouseID:        a.WarehouseID(),
		OfficeID:           a.OfficeID(),
		PurchaseDate:       a.PurchaseDate(),
		CreatedAt:          a.CreatedAt(),
		UpdatedAt:          a.UpdatedAt(),
	}
}

func assetToDomain(m *models.AssetModel) (*asset.Asset, error) {
	return asset.ReconstructAsset(
		m.ID,
		m.SerialNumber,
		m.Name,
		m.Description,
		m.Category,
		asset.NormalizeLifecycleStatus(m.Status),
		m.AssignedEmployeeID,
		m.WarehouseID,
		m.OfficeID,
		m.PurchaseDate,
		m.CreatedAt,
		m.UpdatedAt,
	)
}
