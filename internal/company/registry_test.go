package company

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creditlines/internal/disclosure/ports"
)

func registryServer(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v0/registry/cache", r.URL.Path)
		assert.NotEmpty(t, r.URL.Query().Get("companyData"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestGetCompanyResolvesRecord(t *testing.T) {
	srv := registryServer(t, `[{"staticId":"bank-001","x500Name":"First National","isFinancialInstitution":true}]`, http.StatusOK)
	defer srv.Close()

	client := NewRegistryClient(srv.URL)
	company, err := client.GetCompany(context.Background(), "bank-001")

	require.NoError(t, err)
	assert.Equal(t, "First National", company.Name)
	assert.True(t, company.IsFinancialInstitution)
}

func TestGetCompanyUnknownIsInvalidData(t *testing.T) {
	srv := registryServer(t, `[]`, http.StatusOK)
	defer srv.Close()

	client := NewRegistryClient(srv.URL)
	_, err := client.GetCompany(context.Background(), "ghost")

	var invalid *ports.InvalidDataError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Message, "ghost")
}

func TestValidateFinancialInstitutionRejectsCorporate(t *testing.T) {
	srv := registryServer(t, `[{"staticId":"corp-001","x500Name":"Acme Trading","isFinancialInstitution":false}]`, http.StatusOK)
	defer srv.Close()

	client := NewRegistryClient(srv.URL)
	_, err := client.ValidateFinancialInstitution(context.Background(), "corp-001")

	var invalid *ports.InvalidDataError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Message, "not a financial institution")
}

func TestGetCompanyServerErrorIsRetryable(t *testing.T) {
	srv := registryServer(t, `oops`, http.StatusInternalServerError)
	defer srv.Close()

	client := NewRegistryClient(srv.URL)
	_, err := client.GetCompany(context.Background(), "bank-001")

	require.Error(t, err)
	var invalid *ports.InvalidDataError
	assert.NotErrorAs(t, err, &invalid)
}

func TestCachedRegistryFallsThroughWithoutClient(t *testing.T) {
	srv := registryServer(t, `[{"staticId":"bank-001","x500Name":"First National","isFinancialInstitution":true}]`, http.StatusOK)
	defer srv.Close()

	registry := NewCachedRegistry(NewRegistryClient(srv.URL), nil, 0, nil)
	company, err := registry.GetCompany(context.Background(), "bank-001")

	require.NoError(t, err)
	assert.Equal(t, "First National", company.Name)
}
