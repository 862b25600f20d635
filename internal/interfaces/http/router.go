// Package http wires the HTTP surface of the service: dependency
// construction, middleware, and route registration.
package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"quartermaster/internal/application/inventory"
	appsync "quartermaster/internal/application/sync"
	"quartermaster/internal/domain/asset"
	"quartermaster/internal/infrastructure/cache"
	"quartermaster/internal/infrastructure/config"
	"quartermaster/internal/infrastructure/email"
	"quartermaster/internal/infrastructure/repository"
	"quartermaster/internal/infrastructure/workwize"
	"quartermaster/internal/interfaces/http/handlers"
	"quartermaster/internal/interfaces/http/middleware"
	"quartermaster/internal/shared/logger"
)

// Router holds the gin engine and the wired handlers
type Router struct {
	engine           *gin.Engine
	assetHandler     *handlers.AssetHandler
	warehouseHandler *handlers.WarehouseHandler
	syncHandler      *handlers.SyncHandler
	allowedOrigins   []string
}

// NewRouter builds the full dependency graph from config and database handles
func NewRouter(cfg *config.Config, db *gorm.DB, log logger.Interface) *Router {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	assetRepo := repository.NewAssetRepository(db, log)
	employeeRepo := repository.NewEmployeeRepository(db, log)
	addressRepo := repository.NewAddressRepository(db, log)
	warehouseRepo := repository.NewWarehouseRepository(db, log)

	classifier := asset.NewClassifier(
		asset.DefaultRuleSet().WithMemoryThresholds(
			cfg.Classification.PremiumMemoryGB,
			cfg.Classification.MacPremiumMemoryGB,
		),
	)

	var snapshots inventory.SnapshotStore
	if cfg.Cache.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		snapshots = cache.NewRedisSnapshotStore(
			redisClient,
			time.Duration(cfg.Cache.TTLSeconds)*time.Second,
			log.Named("snapshot-cache"),
		)
	}

	inventoryService := inventory.NewService(
		assetRepo, employeeRepo, addressRepo, warehouseRepo,
		snapshots, classifier, log.Named("inventory"),
	)

	provider := workwize.NewClient(&cfg.Provider, log.Named("workwize"))

	var alerter appsync.Alerter
	if cfg.Alerts.Enabled && cfg.Alerts.SMTPHost != "" {
		alerter = email.NewSMTPAlerter(&cfg.Alerts, log.Named("alerts"))
	}

	var invalidator appsync.SnapshotInvalidator
	if snapshots != nil {
		invalidator = snapshots
	}
	syncService := appsync.NewService(
		provider, assetRepo, employeeRepo, addressRepo, warehouseRepo,
		alerter, invalidator, log.Named("sync"),
	)

	return &Router{
		engine:           engine,
		assetHandler:     handlers.NewAssetHandler(inventoryService, log),
		warehouseHandler: handlers.NewWarehouseHandler(inventoryService, log),
		syncHandler:      handlers.NewSyncHandler(syncService, log),
		allowedOrigins:   cfg.Server.AllowedOrigins,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	log := logger.NewLogger()
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.allowedOrigins))

	r.engine.GET("/health", r.syncHandler.HealthCheck)

	api := r.engine.Group("/api")
	{
		api.GET("/assets", r.assetHandler.ListAssets)
		api.GET("/assets/:id", r.assetHandler.GetAsset)
		api.GET("/assets/:id/classification", r.assetHandler.GetAssetClassification)
		api.POST("/classify", r.assetHandler.ClassifyDescription)

		api.GET("/warehouses", r.warehouseHandler.ListWarehouses)
		api.GET("/countries/:name/warehouses", r.warehouseHandler.WarehousesByCountry)

		api.POST("/sync", r.syncHandler.TriggerSync)
	}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
