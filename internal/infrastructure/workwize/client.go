// Package workwize implements the sync.Provider interface against the
// Workwize public API. All collection endpoints are paginated; the client
// follows pagination internally and returns complete collections.
package workwize

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	appsync "quartermaster/internal/application/sync"
	"quartermaster/internal/domain/pii"
	"quartermaster/internal/shared/config"
	"quartermaster/internal/shared/logger"
)

const (
	defaultTimeout  = 30 * time.Second
	defaultPageSize = 100
)

// Client calls the provider API with bearer-token authentication
type Client struct {
	baseURL    string
	token      string
	pageDelay  time.Duration
	httpClient *http.Client
	logger     logger.Interface
}

// NewClient creates a new provider API client
func NewClient(cfg *config.ProviderConfig, log logger.Interface) *Client {
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		pageDelay:  time.Duration(cfg.PageDelayMs) * time.Millisecond,
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
	}
}

// Assets fetches all asset records, following pagination
func (c *Client) Assets(ctx context.Context) ([]appsync.ProviderAsset, error) {
	var out []appsync.ProviderAsset
	err := c.fetchPages(ctx, "/assets", func(body []byte) (pageMeta, pageLinks, error) {
		var page assetPage
		if err := json.Unmarshal(body, &page); err != nil {
			return pageMeta{}, pageLinks{}, err
		}
		for _, rec := range page.Data {
			out = append(out, appsync.ProviderAsset{
				ID:                 rec.ID,
				SerialNumber:       rec.SerialNumber,
				Name:               rec.Name,
				Description:        rec.Description,
				Category:           rec.Category,
				Status:             rec.Status,
				AssignedEmployeeID: rec.EmployeeID,
				WarehouseID:        rec.WarehouseID,
				OfficeID:           rec.OfficeID,
				PurchaseDate:       parseDate(rec.PurchaseDate),
			})
		}
		return page.Meta, page.Links, nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch assets: %w", err)
	}
	return out, nil
}

// Employees fetches all employee records, following pagination.
// Returned records carry raw PII and must go straight into the scrubber.
func (c *Client) Employees(ctx context.Context) ([]pii.RawEmployee, error) {
	var out []pii.RawEmployee
	err := c.fetchPages(ctx, "/employees", func(body []byte) (pageMeta, pageLinks, error) {
		var page employeePage
		if err := json.Unmarshal(body, &page); err != nil {
			return pageMeta{}, pageLinks{}, err
		}
		for _, rec := range page.Data {
			out = append(out, pii.RawEmployee{
				ID:         rec.ID,
				FirstName:  rec.FirstName,
				LastName:   rec.LastName,
				Email:      rec.Email,
				Department: rec.Department,
				JobTitle:   rec.JobTitle,
				Status:     rec.Status,
				Notes:      rec.Notes,
			})
		}
		return page.Meta, page.Links, nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch employees: %w", err)
	}
	return out, nil
}

// EmployeeAddress fetches one employee's address. The provider returns 404
// for employees without an address; that is mapped to (nil, nil).
func (c *Client) EmployeeAddress(ctx context.Context, employeeID string) (*pii.RawAddress, error) {
	body, status, err := c.get(ctx, fmt.Sprintf("/employees/%s/addresses", url.PathEscape(employeeID)))
	if err != nil {
		return nil, fmt.Errorf("fetch employee address: %w", err)
	}
	if status == http.StatusNotFound {
		return nil, nil
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("fetch employee address: unexpected status %d", status)
	}

	var envelope addressEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode employee address: %w", err)
	}
	rec := envelope.Data
	if rec.ID == "" {
		return nil, nil
	}
	return &pii.RawAddress{
		ID:         rec.ID,
		Street:     rec.Street,
		Street2:    rec.Street2,
		PostalCode: rec.PostalCode,
		City:       rec.City,
		Region:     rec.Region,
		Country:    rec.Country,
		Latitude:   rec.Latitude,
		Longitude:  rec.Longitude,
	}, nil
}

// Warehouses fetches all warehouse records, following pagination
func (c *Client) Warehouses(ctx context.Context) ([]appsync.ProviderWarehouse, error) {
	var out []appsync.ProviderWarehouse
	err := c.fetchPages(ctx, "/warehouses", func(body []byte) (pageMeta, pageLinks, error) {
		var page warehousePage
		if err := json.Unmarshal(body, &page); err != nil {
			return pageMeta{}, pageLinks{}, err
		}
		for _, rec := range page.Data {
			out = append(out, appsync.ProviderWarehouse{
				ID:               rec.ID,
				Name:             rec.Name,
				Code:             rec.Code,
				AddressID:        rec.AddressID,
				Status:           rec.Status,
				ServiceCountries: rec.ServiceCountries,
			})
		}
		return page.Meta, page.Links, nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch warehouses: %w", err)
	}
	return out, nil
}

// fetchPages walks a paginated collection endpoint. Iteration stops when the
// response reports no next link and the current page is the last one.
func (c *Client) fetchPages(ctx context.Context, path string, decode func(body []byte) (pageMeta, pageLinks, error)) error {
	for page := 1; ; page++ {
		body, status, err := c.get(ctx, fmt.Sprintf("%s?page=%d&per_page=%d", path, page, defaultPageSize))
		if err != nil {
			return err
		}
		if status != http.StatusOK {
			return fmt.Errorf("unexpected status %d for %s page %d", status, path, page)
		}

		meta, links, err := decode(body)
		if err != nil {
			return fmt.Errorf("decode %s page %d: %w", path, page, err)
		}

		c.logger.Debugw("fetched provider page",
			"path", path,
			"page", meta.CurrentPage,
			"last_page", meta.LastPage,
		)

		if links.Next == nil || (meta.LastPage > 0 && meta.CurrentPage >= meta.LastPage) {
			return nil
		}

		// Spacing between pages keeps the client under the provider's
		// rate limit during full syncs.
		if c.pageDelay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.pageDelay):
			}
		}
	}
}

func (c *Client) get(ctx context.Context, path string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read response body: %w", err)
	}
	return body, resp.StatusCode, nil
}

func parseDate(raw *string) *time.Time {
	if raw == nil || *raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, *raw); err == nil {
			return &t
		}
	}
	return nil
}
