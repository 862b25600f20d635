package sync

import (
	"context"
	"fmt"
	"strings"
	"time"

	"quartermaster/internal/domain/address"
	"quartermaster/internal/domain/asset"
	"quartermaster/internal/domain/employee"
	"quartermaster/internal/domain/pii"
	"quartermaster/internal/domain/warehouse"
	"quartermaster/internal/shared/logger"
)

// SnapshotInvalidator drops cached collection snapshots after a sync so
// reads observe the new data immediately.
type SnapshotInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Report summarizes one sync run
type Report struct {
	AssetsUpserted     int       `json:"assets_upserted"`
	EmployeesUpserted  int       `json:"employees_upserted"`
	AddressesUpserted  int       `json:"addresses_upserted"`
	WarehousesUpserted int       `json:"warehouses_upserted"`
	RecordsBlocked     int       `json:"records_blocked"`
	StartedAt          time.Time `json:"started_at"`
	FinishedAt         time.Time `json:"finished_at"`
}

// Service orchestrates the full provider sync
type Service struct {
	provider      Provider
	assetRepo     asset.Repository
	employeeRepo  employee.Repository
	addressRepo   address.Repository
	warehouseRepo warehouse.Repository
	scrubber      *pii.Scrubber
	validator     *pii.Validator
	alerter       Alerter
	snapshots     SnapshotInvalidator
	logger        logger.Interface
}

// NewService creates a new sync service. A nil alerter disables alerting;
// a nil invalidator disables cache invalidation.
func NewService(
	provider Provider,
	assetRepo asset.Repository,
	employeeRepo employee.Repository,
	addressRepo address.Repository,
	warehouseRepo warehouse.Repository,
	alerter Alerter,
	snapshots SnapshotInvalidator,
	log logger.Interface,
) *Service {
	if alerter == nil {
		alerter = NopAlerter{}
	}
	return &Service{
		provider:      provider,
		assetRepo:     assetRepo,
		employeeRepo:  employeeRepo,
		addressRepo:   addressRepo,
		warehouseRepo: warehouseRepo,
		scrubber:      pii.NewScrubber(),
		validator:     pii.NewValidator(),
		alerter:       alerter,
		snapshots:     snapshots,
		logger:        log,
	}
}

// SyncAll fetches every collection from the provider, scrubs and validates
// personnel data, and upserts the results. A record that fails the PII gate
// is skipped and counted, never persisted; the run itself continues. The
// snapshot cache is invalidated once at the end.
func (s *Service) SyncAll(ctx context.Context) (*Report, error) {
	report := &Report{StartedAt: time.Now()}

	if err := s.syncWarehouses(ctx, report); err != nil {
		return nil, fmt.Errorf("sync warehouses: %w", err)
	}
	if err := s.syncEmployees(ctx, report); err != nil {
		return nil, fmt.Errorf("sync employees: %w", err)
	}
	if err := s.syncAssets(ctx, report); err != nil {
		return nil, fmt.Errorf("sync assets: %w", err)
	}

	if s.snapshots != nil {
		if err := s.snapshots.Invalidate(ctx); err != nil {
			// Stale cache entries expire on their own TTL; not fatal.
			s.logger.Warnw("failed to invalidate snapshot cache", "error", err)
		}
	}

	report.FinishedAt = time.Now()
	s.logger.Infow("sync completed",
		"assets", report.AssetsUpserted,
		"employees", report.EmployeesUpserted,
		"addresses", report.AddressesUpserted,
		"warehouses", report.WarehousesUpserted,
		"blocked", report.RecordsBlocked,
		"duration", report.FinishedAt.Sub(report.StartedAt).String(),
	)
	return report, nil
}

func (s *Service) syncWarehouses(ctx context.Context, report *Report) error {
	records, err := s.provider.Warehouses(ctx)
	if err != nil {
		return err
	}
	for _, rec := range records {
		countries := rec.ServiceCountries
		if len(countries) == 0 {
			// Provider records rarely carry the list; fall back to the
			// static service table keyed by warehouse code.
			countries = warehouse.DefaultServiceCountries[rec.Code]
		}
		w, err := warehouse.NewWarehouse(
			rec.ID,
			rec.Name,
			rec.Code,
			rec.AddressID,
			normalizeOperationalStatus(rec.Status),
			countries,
		)
		if err != nil {
			s.logger.Warnw("skipping invalid warehouse record", "warehouse_id", rec.ID, "error", err)
			continue
		}
		if err := s.warehouseRepo.Upsert(ctx, w); err != nil {
			return fmt.Errorf("upsert warehouse %s: %w", rec.ID, err)
		}
		report.WarehousesUpserted++
	}
	return nil
}

func (s *Service) syncEmployees(ctx context.Context, report *Report) error {
	records, err := s.provider.Employees(ctx)
	if err != nil {
		return err
	}
	for _, raw := range records {
		addressID, err := s.syncEmployeeAddress(ctx, raw.ID, report)
		if err != nil {
			return err
		}

		sanitized := s.scrubber.ScrubEmployee(raw)
		sanitized.AddressID = addressID
		if ok, labels := s.validator.ValidateEmployee(sanitized); !ok {
			s.blockRecord(ctx, report, "employee", raw.ID, labels)
			continue
		}

		var addrRef *string
		if sanitized.AddressID != "" {
			addrRef = &sanitized.AddressID
		}
		e, err := employee.NewEmployee(
			sanitized.ID,
			sanitized.FirstName,
			sanitized.LastName,
			sanitized.Email,
			sanitized.Department,
			sanitized.JobTitle,
			normalizeEmploymentStatus(sanitized.Status),
			addrRef,
		)
		if err != nil {
			s.logger.Warnw("skipping invalid employee record", "employee_id", raw.ID, "error", err)
			continue
		}
		if err := s.employeeRepo.Upsert(ctx, e); err != nil {
			return fmt.Errorf("upsert employee %s: %w", raw.ID, err)
		}
		report.EmployeesUpserted++
	}
	return nil
}

// syncEmployeeAddress fetches, scrubs, gates and upserts one employee's
// address, returning the persisted address ID ("" when the employee has no
// address or the record was blocked).
func (s *Service) syncEmployeeAddress(ctx context.Context, employeeID string, report *Report) (string, error) {
	raw, err := s.provider.EmployeeAddress(ctx, employeeID)
	if err != nil {
		return "", fmt.Errorf("fetch address for employee %s: %w", employeeID, err)
	}
	if raw == nil {
		return "", nil
	}

	sanitized := s.scrubber.ScrubAddress(*raw)
	if ok, labels := s.validator.ValidateAddress(sanitized); !ok {
		s.blockRecord(ctx, report, "address", raw.ID, labels)
		return "", nil
	}

	a, err := address.NewAddress(
		sanitized.ID,
		sanitized.City,
		sanitized.Region,
		sanitized.Country,
		sanitized.Latitude,
		sanitized.Longitude,
	)
	if err != nil {
		s.logger.Warnw("skipping invalid address record", "address_id", raw.ID, "error", err)
		return "", nil
	}
	if err := s.addressRepo.Upsert(ctx, a); err != nil {
		return "", fmt.Errorf("upsert address %s: %w", raw.ID, err)
	}
	report.AddressesUpserted++
	return a.ID(), nil
}

func (s *Service) syncAssets(ctx context.Context, report *Report) error {
	records, err := s.provider.Assets(ctx)
	if err != nil {
		return err
	}
	for _, rec := range records {
		a, err := asset.NewAsset(
			rec.ID,
			rec.SerialNumber,
			rec.Name,
			rec.Description,
			rec.Category,
			asset.NormalizeLifecycleStatus(rec.Status),
			rec.AssignedEmployeeID,
			rec.WarehouseID,
			rec.OfficeID,
			rec.PurchaseDate,
		)
		if err != nil {
			s.logger.Warnw("skipping invalid asset record", "asset_id", rec.ID, "error", err)
			continue
		}
		if err := s.assetRepo.Upsert(ctx, a); err != nil {
			return fmt.Errorf("upsert asset %s: %w", rec.ID, err)
		}
		report.AssetsUpserted++
	}
	return nil
}

// blockRecord handles a PII gate failure: count it, log the pattern labels
// (never the record), and alert operators.
func (s *Service) blockRecord(ctx context.Context, report *Report, kind, id string, labels []string) {
	report.RecordsBlocked++
	s.logger.Errorw("record blocked by PII gate",
		"record_kind", kind,
		"record_id", id,
		"patterns", strings.Join(labels, ","),
		"pattern_set", pii.PatternSetVersion,
	)
	if err := s.alerter.GateBlocked(ctx, kind, id, labels); err != nil {
		s.logger.Warnw("failed to send gate alert", "record_kind", kind, "record_id", id, "error", err)
	}
}

func normalizeEmploymentStatus(raw string) employee.Status {
	if employee.Status(raw) == employee.StatusActive {
		return employee.StatusActive
	}
	return employee.StatusInactive
}

func normalizeOperationalStatus(raw string) warehouse.Status {
	if warehouse.Status(raw) == warehouse.StatusInactive {
		return warehouse.StatusInactive
	}
	return warehouse.StatusActive
}
