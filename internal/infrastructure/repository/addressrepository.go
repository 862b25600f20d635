package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quartermaster/internal/domain/address"
	"quartermaster/internal/infrastructure/persistence/models"
	"quartermaster/internal/shared/logger"
)

// AddressRepositoryImpl implements the address.Repository interface
type AddressRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewAddressRepository creates a new address repository instance
func NewAddressRepository(db *gorm.DB, logger logger.Interface) address.Repository {
	return &AddressRepositoryImpl{db: db, logger: logger}
}

// Upsert creates or updates an address keyed by its provider ID
func (r *AddressRepositoryImpl) Upsert(ctx context.Context, a *address.Address) error {
	model := addressToModel(a)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert address", "address_id", a.ID(), "error", err)
		return fmt.Errorf("failed to upsert address: %w", err)
	}
	return nil
}

// GetByID retrieves an address by ID; (nil, nil) when not found
func (r *AddressRepositoryImpl) GetByID(ctx context.Context, id string) (*address.Address, error) {
	var model models.AddressModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get address", "address_id", id, "error", err)
		return nil, fmt.Errorf("failed to get address: %w", err)
	}
	return addressToDomain(&model)
}

// List retrieves all addresses ordered by ID for stable results
func (r *AddressRepositoryImpl) List(ctx context.Context) ([]*address.Address, error) {
	var records []models.AddressModel
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		r.logger.Errorw("failed to list addresses", "error", err)
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	addresses := make([]*address.Address, 0, len(records))
	for i := range records {
		a, err := addressToDomain(&records[i])
		if err != nil {
			r.logger.Warnw("skipping unmappable address row", "address_id", records[i].ID, "error", err)
			continue
		}
		addresses = append(addresses, a)
	}
	return addresses, nil
}

func addressToModel(a *address.Address) *models.AddressModel {
	return &models.AddressModel{
		ID:        a.ID(),
		City:      a.City(),
		Region:    a.Region(),
		Country:   a.Country(),
		Latitude:  a.Latitude(),
		Longitude: a.Longitude(),
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
	}
}

func addressToDomain(m *models.AddressModel) (*address.Address, error) {
	return address.ReconstructAddress(
		m.ID,
		m.City,
		m.Region,
		m.Country,
		m.Latitude,
		m.Longitude,
		m.CreatedAt,
		m.UpdatedAt,
	)
}
