package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quartermaster/internal/domain/warehouse"
	"quartermaster/internal/infrastructure/persistence/models"
	"quartermaster/internal/shared/logger"
)

// WarehouseRepositoryImpl implements the warehouse.Repository interface
type WarehouseRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewWarehouseRepository creates a new warehouse repository instance
func NewWarehouseRepository(db *gorm.DB, logger logger.Interface) warehouse.Repository {
	return &WarehouseRepositoryImpl{db: db, logger: logger}
}

// Upsert creates or updates a warehouse keyed by its provider ID
func (r *WarehouseRepositoryImpl) Upsert(ctx context.Context, w *warehouse.Warehouse) error {
	model, err := warehouseToModel(w)
	if err != nil {
		return fmt.Errorf("failed to map warehouse: %w", err)
	}
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert warehouse", "warehouse_id", w.ID(), "error", err)
		return fmt.Errorf("failed to upsert warehouse: %w", err)
	}
	return nil
}

// GetByID retrieves a warehouse by ID; (nil, nil) when not found
func (r *WarehouseRepositoryImpl) GetByID(ctx context.Context, id string) (*warehouse.Warehouse, error) {
	var model models.WarehouseModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get warehouse", "warehouse_id", id, "error", err)
		return nil, fmt.Errorf("failed to get warehouse: %w", err)
	}
	return warehouseToDomain(&model)
}

// GetByCode retrieves a warehouse by its short code; (nil, nil) when not found
func (r *WarehouseRepositoryImpl) GetByCode(ctx context.Context, code string) (*warehouse.Warehouse, error) {
	var model models.WarehouseModel
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get warehouse by code", "code", code, "error", err)
		return nil, fmt.Errorf("failed to get warehouse by code: %w", err)
	}
	return warehouseToDomain(&model)
}

// List retrieves all warehouses ordered by code for stable results
func (r *WarehouseRepositoryImpl) List(ctx context.Context) ([]*warehouse.Warehouse, error) {
	var records []models.WarehouseModel
	if err := r.db.WithContext(ctx).Order("code").Find(&records).Error; err != nil {
		r.logger.Errorw("failed to list warehouses", "error", err)
		return nil, fmt.Errorf("failed to list warehouses: %w", err)
	}

	warehouses := make([]*warehouse.Warehouse, 0, len(records))
	for i := range records {
		w, err := warehouseToDomain(&records[i])
		if err != nil {
			r.logger.Warnw("skipping unmappable warehouse row", "warehouse_id", records[i].ID, "error", err)
			continue
		}
		warehouses = append(warehouses, w)
	}
	return warehouses, nil
}

func warehouseToModel(w *warehouse.Warehouse) (*models.WarehouseModel, error) {
	countries, err := json.Marshal(w.ServiceCountries())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal service countries: %w", err)
	}
	return &models.WarehouseModel{
		ID:               w.ID(),
		Name:             w.Name(),
		Code:             w.Code(),
		AddressID:        w.AddressID(),
		Status:           w.Status().String(),
		ServiceCountries: datatypes.JSON(countries),
		CreatedAt:        w.CreatedAt(),
		UpdatedAt:        w.UpdatedAt(),
	}, nil
}

func warehouseToDomain(m *models.WarehouseModel) (*warehouse.Warehouse, error) {
	var countries []string
	if len(m.ServiceCountries) > 0 {
		if err := json.Unmarshal(m.ServiceCountries, &countries); err != nil {
			return nil, fmt.Errorf("failed to unmarshal service countries: %w", err)
		}
	}
	return warehouse.ReconstructWarehouse(
		m.ID,
		m.Name,
		m.Code,
		m.AddressID,
		warehouse.Status(m.Status),
		countries,
		m.CreatedAt,
		m.UpdatedAt,
	)
}
