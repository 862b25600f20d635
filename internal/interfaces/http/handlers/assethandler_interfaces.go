package handlers

import (
	"context"

	"quartermaster/internal/application/inventory"
	"quartermaster/internal/domain/asset"
	"quartermaster/internal/shared/query"
)

// Service interfaces for AssetHandler

type assetSearchService interface {
	SearchAssets(ctx context.Context, filter asset.FilterSpec, page query.PageFilter) ([]inventory.AssetDTO, int64, error)
	GetAsset(ctx context.Context, id string) (*inventory.AssetDTO, error)
	ClassifyDescription(description string) inventory.ClassificationDTO
}
