// Package company resolves counterparties against the member registry, with
// an optional Redis read-through cache in front of the HTTP client.
package company

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"

	"creditlines/internal/disclosure/ports"
	id "creditlines/pkg/domain"
	dErrors "creditlines/pkg/domain-errors"
)

// RegistryClient fetches company records from the member registry service.
type RegistryClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures a RegistryClient.
type ClientOption func(*RegistryClient)

// WithHTTPClient overrides the HTTP client, mainly for tests.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *RegistryClient) {
		c.httpClient = client
	}
}

// WithClientLogger sets the logger.
func WithClientLogger(logger *slog.Logger) ClientOption {
	return func(c *RegistryClient) {
		c.logger = logger
	}
}

// NewRegistryClient builds a registry client against the given base URL.
func NewRegistryClient(baseURL string, opts ...ClientOption) *RegistryClient {
	c := &RegistryClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type registryCompany struct {
	StaticID               id.StaticID `json:"staticId"`
	CommonName             string      `json:"x500Name"`
	IsFinancialInstitution bool        `json:"isFinancialInstitution"`
}

// GetCompany resolves one company by static ID.
func (c *RegistryClient) GetCompany(ctx context.Context, staticID id.StaticID) (*ports.Company, error) {
	endpoint := fmt.Sprintf("%s/v0/registry/cache?companyData=%s",
		c.baseURL, url.QueryEscape(fmt.Sprintf(`{"staticId":%q}`, staticID)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to build registry request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "member registry unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, dErrors.Newf(dErrors.CodeInternal, "member registry returned status %d", resp.StatusCode)
	}

	var records []registryCompany
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to decode registry response")
	}
	if len(records) == 0 {
		return nil, &ports.InvalidDataError{Message: fmt.Sprintf("company %s not found in registry", staticID)}
	}

	record := records[0]
	return &ports.Company{
		StaticID:               record.StaticID,
		Name:                   record.CommonName,
		IsFinancialInstitution: record.IsFinancialInstitution,
	}, nil
}

// ValidateFinancialInstitution resolves the company and rejects it when it
// is not a financial institution.
func (c *RegistryClient) ValidateFinancialInstitution(ctx context.Context, staticID id.StaticID) (*ports.Company, error) {
	company, err := c.GetCompany(ctx, staticID)
	if err != nil {
		return nil, err
	}
	if !company.IsFinancialInstitution {
		return nil, &ports.InvalidDataError{Message: fmt.Sprintf("company %s is not a financial institution", staticID)}
	}
	return company, nil
}

// CachedRegistry layers a Redis read-through cache over a registry. Cache
// failures degrade to direct lookups.
type CachedRegistry struct {
	inner  ports.CompanyRegistry
	client redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedRegistry wraps inner with a cache. A nil client disables caching.
func NewCachedRegistry(inner ports.CompanyRegistry, client redis.Cmdable, ttl time.Duration, logger *slog.Logger) *CachedRegistry {
	return &CachedRegistry{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func cacheKey(staticID id.StaticID) string {
	return "creditlines:company:" + string(staticID)
}

func (r *CachedRegistry) GetCompany(ctx context.Context, staticID id.StaticID) (*ports.Company, error) {
	if r.client == nil {
		return r.inner.GetCompany(ctx, staticID)
	}

	raw, err := r.client.Get(ctx, cacheKey(staticID)).Bytes()
	if err == nil {
		var company ports.Company
		if err := json.Unmarshal(raw, &company); err == nil {
			return &company, nil
		}
		// Unparseable entry, fall through and refresh it.
	} else if err != redis.Nil {
		r.logger.WarnContext(ctx, "company cache read failed", "static_id", staticID, "error", err)
	}

	company, err := r.inner.GetCompany(ctx, staticID)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(company); err == nil {
		if err := r.client.Set(ctx, cacheKey(staticID), encoded, r.ttl).Err(); err != nil {
			r.logger.WarnContext(ctx, "company cache write failed", "static_id", staticID, "error", err)
		}
	}
	return company, nil
}

func (r *CachedRegistry) ValidateFinancialInstitution(ctx context.Context, staticID id.StaticID) (*ports.Company, error) {
	company, err := r.GetCompany(ctx, staticID)
	if err != nil {
		return nil, err
	}
	if !company.IsFinancialInstitution {
		return nil, &ports.InvalidDataError{Message: fmt.Sprintf("company %s is not a financial institution", staticID)}
	}
	return company, nil
}
