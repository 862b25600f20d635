package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quartermaster/internal/application/inventory"
	"quartermaster/internal/domain/asset"
	"quartermaster/internal/shared/errors"
	"quartermaster/internal/shared/logger"
	"quartermaster/internal/shared/query"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeAssetService struct {
	lastFilter asset.FilterSpec
	lastPage   query.PageFilter
	searchOut  []inventory.AssetDTO
	searchN    int64
	getOut     *inventory.AssetDTO
	getErr     error
}

func (s *fakeAssetService) SearchAssets(_ context.Context, filter asset.FilterSpec, page query.PageFilter) ([]inventory.AssetDTO, int64, error) {
	s.lastFilter = filter
	s.lastPage = page
	return s.searchOut, s.searchN, nil
}

func (s *fakeAssetService) GetAsset(_ context.Context, _ string) (*inventory.AssetDTO, error) {
	return s.getOut, s.getErr
}

func (s *fakeAssetService) ClassifyDescription(description string) inventory.ClassificationDTO {
	return inventory.ClassificationDTO{
		DeviceClass:    "standard_tier_a",
		DeviceSpec:     asset.ExtractSpec(description),
		RuleSetVersion: "v1",
	}
}

func newAssetRouter(svc *fakeAssetService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAssetHandler(svc, testLogger())
	r := gin.New()
	r.GET("/api/assets", h.ListAssets)
	r.GET("/api/assets/:id", h.GetAsset)
	r.GET("/api/assets/:id/classification", h.GetAssetClassification)
	r.POST("/api/classify", h.ClassifyDescription)
	return r
}

func TestAssetHandler_ListAssets_ParsesFilter(t *testing.T) {
	svc := &fakeAssetService{searchOut: []inventory.AssetDTO{}, searchN: 0}
	router := newAssetRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/assets?country=united%20states&warehouse_code=WH8&status=available,%20retired&category=laptop&manufacturer=dell&min_memory_gb=32&assigned=true&device_class=enhanced_tier_a&page=2&page_size=10", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "United States", svc.lastFilter.Country)
	assert.Equal(t, "WH8", svc.lastFilter.WarehouseCode)
	assert.Equal(t, []asset.LifecycleStatus{asset.LifecycleStatusAvailable, asset.LifecycleStatusRetired}, svc.lastFilter.Statuses)
	assert.Equal(t, "laptop", svc.lastFilter.Category)
	assert.Equal(t, "dell", svc.lastFilter.Manufacturer)
	assert.Equal(t, 32, svc.lastFilter.MinMemoryGB)
	assert.True(t, svc.lastFilter.AssignedOnly)
	assert.False(t, svc.lastFilter.AvailableOnly)
	assert.Equal(t, asset.DeviceClassEnhancedTierA, svc.lastFilter.DeviceClass)
	assert.Equal(t, 2, svc.lastPage.Page)
	assert.Equal(t, 10, svc.lastPage.PageSize)
}

func TestAssetHandler_ListAssets_NoParamsImposeNoConstraint(t *testing.T) {
	svc := &fakeAssetService{}
	router := newAssetRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/assets", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, asset.FilterSpec{}, svc.lastFilter)
	assert.Equal(t, 1, svc.lastPage.Page)
}

func TestAssetHandler_ListAssets_RejectsBadParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"unknown device class", "device_class=super_fast"},
		{"negative memory", "min_memory_gb=-1"},
		{"non-numeric memory", "min_memory_gb=lots"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAssetRouter(&fakeAssetService{})
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/assets?"+tt.query, nil))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAssetHandler_GetAsset_NotFound(t *testing.T) {
	svc := &fakeAssetService{getErr: errors.NewNotFoundError("asset not found")}
	router := newAssetRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/assets/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Type string `json:"type"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "not_found", resp.Error.Type)
}

func TestAssetHandler_ClassifyDescription(t *testing.T) {
	router := newAssetRouter(&fakeAssetService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/classify",
		strings.NewReader(`{"description": "Dell, Latitude 5520, Intel Core i7, 16GB RAM"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			DeviceClass    string `json:"device_class"`
			RuleSetVersion string `json:"rule_set_version"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "standard_tier_a", resp.Data.DeviceClass)
	assert.Equal(t, "v1", resp.Data.RuleSetVersion)
}

func TestAssetHandler_ClassifyDescription_RequiresDescription(t *testing.T) {
	router := newAssetRouter(&fakeAssetService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/classify", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssetHandler_GetAssetClassification(t *testing.T) {
	svc := &fakeAssetService{
		getOut: &inventory.AssetDTO{
			ID:          "a-1",
			Description: "Dell, Latitude 5520, Intel Core i7, 16GB RAM",
		},
	}
	router := newAssetRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/assets/a-1/classification", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			DeviceClass string `json:"device_class"`
			DeviceSpec  struct {
				Manufacturer string `json:"manufacturer"`
			} `json:"device_spec"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "standard_tier_a", resp.Data.DeviceClass)
	assert.Equal(t, "Dell", resp.Data.DeviceSpec.Manufacturer)
}
