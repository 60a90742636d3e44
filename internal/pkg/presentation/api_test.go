package presentation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/debtstats/api-ids/internal/pkg/application/services/catalogs"
	"github.com/debtstats/api-ids/internal/pkg/infrastructure/clients/worldbank"
	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
)

func TestHealthEndpointReturnsOK(t *testing.T) {
	is := is.New(t)
	ts := setupMockAPI(t)

	resp, err := http.Get(ts.URL + "/health")
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusOK)
}

func TestCatalogRoutesAreRegistered(t *testing.T) {
	is := is.New(t)
	ts := setupMockAPI(t)

	resp, err := http.Get(ts.URL + "/api/catalogs")
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusOK)
}

func TestOpenAPIEndpointReturns404WhenNoSpecIsLoaded(t *testing.T) {
	is := is.New(t)
	ts := setupMockAPI(t)

	resp, err := http.Get(ts.URL + "/api/openapi")
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func setupMockAPI(t *testing.T) *httptest.Server {
	svc := &catalogs.CatalogServiceMock{
		ApiURLFunc: func() string { return worldbank.DefaultApiURL },
		NamesFunc:  func() []string { return []string{} },
		GetByNameFunc: func(ctx context.Context, name string) (*worldbank.CatalogResult, error) {
			return nil, catalogs.ErrNoSuchCatalog
		},
	}

	r := chi.NewRouter()
	newIdsAPI(r, context.Background(), svc, nil)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	return ts
}
