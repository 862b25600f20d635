package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"quartermaster/internal/domain/asset"
	"quartermaster/internal/shared/errors"
	"quartermaster/internal/shared/logger"
	"quartermaster/internal/shared/query"
	"quartermaster/internal/shared/utils"
)

type AssetHandler struct {
	service assetSearchService
	logger  logger.Interface
}

func NewAssetHandler(service assetSearchService, log logger.Interface) *AssetHandler {
	return &AssetHandler{
		service: service,
		logger:  log,
	}
}

type ClassifyRequest struct {
	Description string `json:"description" validate:"required,max=2000"`
}

// ListAssets handles GET /api/assets. Every filter is an optional query
// parameter; unset parameters impose no constraint.
func (h *AssetHandler) ListAssets(c *gin.Context) {
	filter, err := h.parseFilter(c)
	if err != nil {
		h.logger.Warnw("invalid asset filter", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	page := query.PageFilter{Page: 1, PageSize: 20}
	if raw := c.Query("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page.Page = v
		}
	}
	if raw := c.Query("page_size"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page.PageSize = v
		}
	}

	items, total, err := h.service.SearchAssets(c.Request.Context(), filter, page)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, page.Page, page.Limit())
}

// GetAsset handles GET /api/assets/:id
func (h *AssetHandler) GetAsset(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("asset ID is required"))
		return
	}

	dto, err := h.service.GetAsset(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

// GetAssetClassification handles GET /api/assets/:id/classification.
// The class is derived on every call; nothing is read from a cache.
func (h *AssetHandler) GetAssetClassification(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("asset ID is required"))
		return
	}

	dto, err := h.service.GetAsset(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", h.service.ClassifyDescription(dto.Description))
}

// ClassifyDescription handles POST /api/classify for ad-hoc classification
// of descriptions that are not in the inventory.
func (h *AssetHandler) ClassifyDescription(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for classify", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", h.service.ClassifyDescription(req.Description))
}

func (h *AssetHandler) parseFilter(c *gin.Context) (asset.FilterSpec, error) {
	filter := asset.FilterSpec{
		Country:       NormalizeCountryName(c.Query("country")),
		WarehouseID:   c.Query("warehouse_id"),
		WarehouseCode: c.Query("warehouse_code"),
		Category:      c.Query("category"),
		Manufacturer:  c.Query("manufacturer"),
	}

	if raw := c.Query("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			filter.Statuses = append(filter.Statuses, asset.NormalizeLifecycleStatus(strings.TrimSpace(s)))
		}
	}

	if raw := c.Query("min_memory_gb"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return asset.FilterSpec{}, errors.NewBadRequestError("min_memory_gb must be a non-negative integer")
		}
		filter.MinMemoryGB = v
	}

	filter.AssignedOnly = c.Query("assigned") == "true"
	filter.AvailableOnly = c.Query("available") == "true"

	if raw := c.Query("device_class"); raw != "" {
		class := asset.DeviceClass(raw)
		if !class.IsValid() {
			return asset.FilterSpec{}, errors.NewBadRequestError("unknown device_class: " + raw)
		}
		filter.DeviceClass = class
	}

	return filter, nil
}
