package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"quartermaster/internal/application/inventory"
	"quartermaster/internal/shared/errors"
	"quartermaster/internal/shared/logger"
	"quartermaster/internal/shared/utils"
)

type warehouseQueryService interface {
	ListWarehouses(ctx context.Context) ([]inventory.WarehouseDTO, error)
	WarehousesServicingCountry(ctx context.Context, country string) ([]inventory.WarehouseDTO, error)
}

type WarehouseHandler struct {
	service warehouseQueryService
	logger  logger.Interface
}

func NewWarehouseHandler(service warehouseQueryService, log logger.Interface) *WarehouseHandler {
	return &WarehouseHandler{
		service: service,
		logger:  log,
	}
}

// ListWarehouses handles GET /api/warehouses
func (h *WarehouseHandler) ListWarehouses(c *gin.Context) {
	items, err := h.service.ListWarehouses(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// WarehousesByCountry handles GET /api/countries/:name/warehouses.
// An unrecognized country is a normal query with an empty result, not a 404.
func (h *WarehouseHandler) WarehousesByCountry(c *gin.Context) {
	name := NormalizeCountryName(c.Param("name"))
	if name == "" {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("country name is required"))
		return
	}

	items, err := h.service.WarehousesServicingCountry(c.Request.Context(), name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}
