// Package sync implements the one-shot provider sync CLI command.
package sync

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	appsync "quartermaster/internal/application/sync"
	"quartermaster/internal/infrastructure/cache"
	"quartermaster/internal/infrastructure/config"
	"quartermaster/internal/infrastructure/database"
	"quartermaster/internal/infrastructure/email"
	"quartermaster/internal/infrastructure/repository"
	"quartermaster/internal/infrastructure/workwize"
	"quartermaster/internal/shared/logger"
)

var (
	env     string
	timeout time.Duration
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Run a full provider sync",
		Long:  `Fetch all assets, employees, addresses and warehouses from the inventory provider, scrub personnel data, and upsert the results into the local cache.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Minute, "Overall sync timeout")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()
	log.Infow("starting provider sync", "environment", env)

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	assetRepo := repository.NewAssetRepository(database.Get(), log)
	employeeRepo := repository.NewEmployeeRepository(database.Get(), log)
	addressRepo := repository.NewAddressRepository(database.Get(), log)
	warehouseRepo := repository.NewWarehouseRepository(database.Get(), log)

	provider := workwize.NewClient(&cfg.Provider, log.Named("workwize"))

	var alerter appsync.Alerter
	if cfg.Alerts.Enabled && cfg.Alerts.SMTPHost != "" {
		alerter = email.NewSMTPAlerter(&cfg.Alerts, log.Named("alerts"))
	}

	var invalidator appsync.SnapshotInvalidator
	if cfg.Cache.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		invalidator = cache.NewRedisSnapshotStore(
			redisClient,
			time.Duration(cfg.Cache.TTLSeconds)*time.Second,
			log.Named("snapshot-cache"),
		)
	}

	service := appsync.NewService(
		provider, assetRepo, employeeRepo, addressRepo, warehouseRepo,
		alerter, invalidator, log.Named("sync"),
	)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	report, err := service.SyncAll(ctx)
	if err != nil {
		log.Errorw("sync failed", "error", err)
		return fmt.Errorf("sync failed: %w", err)
	}

	fmt.Printf("\nSync Report:\n")
	fmt.Printf("  Assets:     %d\n", report.AssetsUpserted)
	fmt.Printf("  Employees:  %d\n", report.EmployeesUpserted)
	fmt.Printf("  Addresses:  %d\n", report.AddressesUpserted)
	fmt.Printf("  Warehouses: %d\n", report.WarehousesUpserted)
	fmt.Printf("  Blocked:    %d\n", report.RecordsBlocked)
	fmt.Printf("  Duration:   %s\n", report.FinishedAt.Sub(report.StartedAt))

	return nil
}
