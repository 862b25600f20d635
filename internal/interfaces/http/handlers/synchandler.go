package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	appsync "quartermaster/internal/application/sync"
	"quartermaster/internal/shared/logger"
	"quartermaster/internal/shared/utils"
)

type syncRunner interface {
	SyncAll(ctx context.Context) (*appsync.Report, error)
}

type SyncHandler struct {
	service syncRunner
	logger  logger.Interface
}

func NewSyncHandler(service syncRunner, log logger.Interface) *SyncHandler {
	return &SyncHandler{
		service: service,
		logger:  log,
	}
}

// TriggerSync handles POST /api/sync. The sync runs synchronously and the
// response carries the run report, including the blocked-record count.
func (h *SyncHandler) TriggerSync(c *gin.Context) {
	report, err := h.service.SyncAll(c.Request.Context())
	if err != nil {
		h.logger.Errorw("sync run failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "sync completed", report)
}

// HealthCheck handles GET /health
func (h *SyncHandler) HealthCheck(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
}
