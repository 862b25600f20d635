// Package cache holds the redis-backed collection snapshot store. Only raw
// synced records are cached; device classes are derived per request and are
// never written here.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"quartermaster/internal/application/inventory"
	"quartermaster/internal/domain/address"
	"quartermaster/internal/domain/asset"
	"quartermaster/internal/domain/employee"
	"quartermaster/internal/domain/warehouse"
	"quartermaster/internal/shared/logger"
)

const (
	snapshotKey        = "inventory:snapshot"
	defaultSnapshotTTL = 60 * time.Second
)

// assetEntry is the cache wire shape of an asset
type assetEntry struct {
	ID                 string     `json:"id"`
	SerialNumber       string     `json:"serial_number"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	Category           string     `json:"category"`
	Status             string     `json:"status"`
	AssignedEmployeeID *string    `json:"assigned_employee_id,omitempty"`
	WarehouseID        *string    `json:"warehouse_id,omitempty"`
	OfficeID           *string    `json:"office_id,omitempty"`
	PurchaseDate       *time.Time `json:"purchase_date,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type employeeEntry struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	JobTitle   string    `json:"job_title"`
	Status     string    `json:"status"`
	AddressID  *string   `json:"address_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type addressEntry struct {
	ID        string    `json:"id"`
	City      string    `json:"city"`
	Region    string    `json:"region"`
	Country   string    `json:"country"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type warehouseEntry struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Code             string    `json:"code"`
	AddressID        *string   `json:"address_id,omitempty"`
	Status           string    `json:"status"`
	ServiceCountries []string  `json:"service_countries"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type snapshot struct {
	Assets     []assetEntry     `json:"assets"`
	Employees  []employeeEntry  `json:"employees"`
	Addresses  []addressEntry   `json:"addresses"`
	Warehouses []warehouseEntry `json:"warehouses"`
	CachedAt   time.Time        `json:"cached_at"`
}

// RedisSnapshotStore implements inventory.SnapshotStore on redis
type RedisSnapshotStore struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

// NewRedisSnapshotStore creates a new redis-backed snapshot store.
// A non-positive TTL uses the default.
func NewRedisSnapshotStore(client *redis.Client, ttl time.Duration, logger logger.Interface) *RedisSnapshotStore {
	if ttl <= 0 {
		ttl = defaultSnapshotTTL
	}
	return &RedisSnapshotStore{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached snapshot, or (nil, nil) on a miss
func (s *RedisSnapshotStore) Get(ctx context.Context) (*inventory.Collections, error) {
	payload, err := s.client.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot from cache: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode cached snapshot: %w", err)
	}

	c, err := snapshotToCollections(&snap)
	if err != nil {
		// A snapshot that no longer maps to the domain is worthless;
		// drop it so the next read repopulates.
		s.logger.Warnw("dropping unmappable cached snapshot", "error", err)
		_ = s.client.Del(ctx, snapshotKey).Err()
		return nil, nil
	}

	s.logger.Debugw("snapshot cache hit",
		"assets", len(c.Assets),
		"cached_at", snap.CachedAt,
	)
	return c, nil
}

// Set stores a snapshot with the configured TTL
func (s *RedisSnapshotStore) Set(ctx context.Context, c *inventory.Collections) error {
	snap := collectionsToSnapshot(c)
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := s.client.Set(ctx, snapshotKey, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set snapshot in cache: %w", err)
	}

	s.logger.Debugw("snapshot cached",
		"assets", len(c.Assets),
		"ttl", s.ttl,
	)
	return nil
}

// Invalidate removes the cached snapshot
func (s *RedisSnapshotStore) Invalidate(ctx context.Context) error {
	if err := s.client.Del(ctx, snapshotKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate snapshot cache: %w", err)
	}
	s.logger.Debugw("snapshot cache invalidated")
	return nil
}

func collectionsToSnapshot(c *inventory.Collections) *snapshot {
	snap := &snapshot{CachedAt: time.Now()}

	snap.Assets = make([]assetEntry, 0, len(c.Assets))
	for _, a := range c.Assets {
		snap.Assets = append(snap.Assets, assetEntry{
			ID:                 a.ID(),
			SerialNumber:       a.SerialNumber(),
			Name:               a.Name(),
			Description:        a.Description(),
			Category:           a.Category(),
			Status:             a.Status().String(),
			AssignedEmployeeID: a.AssignedEmployeeID(),
			WarehouseID:        a.WarehouseID(),
			OfficeID:           a.OfficeID(),
			PurchaseDate:       a.PurchaseDate(),
			CreatedAt:          a.CreatedAt(),
			UpdatedAt:          a.UpdatedAt(),
		})
	}

	snap.Employees = make([]employeeEntry, 0, len(c.Employees))
	for _, e := range c.Employees {
		snap.Employees = append(snap.Employees, employeeEntry{
			ID:         e.ID(),
			FirstName:  e.FirstName(),
			LastName:   e.LastName(),
			Email:      e.Email(),
			Department: e.Department(),
			JobTitle:   e.JobTitle(),
			Status:     e.Status().String(),
			AddressID:  e.AddressID(),
			CreatedAt:  e.CreatedAt(),
			UpdatedAt:  e.UpdatedAt(),
		})
	}

	snap.Addresses = make([]addressEntry, 0, len(c.Addresses))
	for _, a := range c.Addresses {
		snap.Addresses = append(snap.Addresses, addressEntry{
			ID:        a.ID(),
			City:      a.City(),
			Region:    a.Region(),
			Country:   a.Country(),
			Latitude:  a.Latitude(),
			Longitude: a.Longitude(),
			CreatedAt: a.CreatedAt(),
			UpdatedAt: a.UpdatedAt(),
		})
	}

	snap.Warehouses = make([]warehouseEntry, 0, len(c.Warehouses))
	for _, w := range c.Warehouses {
		snap.Warehouses = append(snap.Warehouses, warehouseEntry{
			ID:               w.ID(),
			Name:             w.Name(),
			Code:             w.Code(),
			AddressID:        w.AddressID(),
			Status:           w.Status().String(),
			ServiceCountries: w.ServiceCountries(),
			CreatedAt:        w.CreatedAt(),
			UpdatedAt:        w.UpdatedAt(),
		})
	}

	return snap
}

func snapshotToCollections(snap *snapshot) (*inventory.Collections, error) {
	c := &inventory.Collections{
		Assets:     make([]*asset.Asset, 0, len(snap.Assets)),
		Employees:  make([]*employee.Employee, 0, len(snap.Employees)),
		Addresses:  make([]*address.Address, 0, len(snap.Addresses)),
		Warehouses: make([]*warehouse.Warehouse, 0, len(snap.Warehouses)),
	}

	for _, e := range snap.Assets {
		a, err := asset.ReconstructAsset(
			e.ID, e.SerialNumber, e.Name, e.Description, e.Category,
			asset.NormalizeLifecycleStatus(e.Status),
			e.AssignedEmployeeID, e.WarehouseID, e.OfficeID,
			e.PurchaseDate, e.CreatedAt, e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("asset %s: %w", e.ID, err)
		}
		c.Assets = append(c.Assets, a)
	}

	for _, e := range snap.Employees {
		emp, err := employee.ReconstructEmployee(
			e.ID, e.FirstName, e.LastName, e.Email, e.Department, e.JobTitle,
			employee.Status(e.Status), e.AddressID, e.CreatedAt, e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("employee %s: %w", e.ID, err)
		}
		c.Employees = append(c.Employees, emp)
	}

	for _, e := range snap.Addresses {
		a, err := address.ReconstructAddress(
			e.ID, e.City, e.Region, e.Country,
			e.Latitude, e.Longitude, e.CreatedAt, e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("address %s: %w", e.ID, err)
		}
		c.Addresses = append(c.Addresses, a)
	}

	for _, e := range snap.Warehouses {
		w, err := warehouse.ReconstructWarehouse(
			e.ID, e.Name, e.Code, e.AddressID,
			warehouse.Status(e.Status), e.ServiceCountries,
			e.CreatedAt, e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("warehouse %s: %w", e.ID, err)
		}
		c.Warehouses = append(c.Warehouses, w)
	}

	return c, nil
}
