package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/debtstats/api-ids/internal/pkg/application/services/catalogs"
	"github.com/debtstats/api-ids/internal/pkg/infrastructure/clients/worldbank"
	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestGetCatalogsListsNamesAndCounts(t *testing.T) {
	is, r, ts := setupTest(t)
	svc := mockCatalogSvc()

	r.Get("/api/catalogs", NewRetrieveCatalogsHandler(zerolog.Logger{}, svc))
	resp, body := newGetRequest(is, ts, "application/json", "/api/catalogs", nil)

	is.Equal(resp.StatusCode, http.StatusOK)

	const expectation string = `{"data":[{"name":"debtors","count":2,"total":2}]}`
	is.Equal(body, expectation)
}

func TestGetCatalogAsJSON(t *testing.T) {
	is, r, ts := setupTest(t)
	svc := mockCatalogSvc()

	r.Get("/api/catalogs/{name}", NewRetrieveCatalogByNameHandler(zerolog.Logger{}, svc))
	resp, body := newGetRequest(is, ts, "application/json", "/api/catalogs/debtors", nil)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(len(svc.GetByNameCalls()), 1)

	const expectation string = `{"data":[{"code":"AFG","name":"Afghanistan"},{"code":"ALB","name":"Albania"}],"total":2}`
	is.Equal(body, expectation)
}

func TestGetCatalogAsTextCSV(t *testing.T) {
	is, r, ts := setupTest(t)
	svc := mockCatalogSvc()

	r.Get("/api/catalogs/{name}", NewRetrieveCatalogByNameHandler(zerolog.Logger{}, svc))
	resp, body := newGetRequest(is, ts, "text/csv", "/api/catalogs/debtors", nil)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, "code;name\r\nAFG;\"Afghanistan\"\r\nALB;\"Albania\"")
}

func TestGetUnknownCatalogReturns404(t *testing.T) {
	is, r, ts := setupTest(t)
	svc := mockCatalogSvc()

	r.Get("/api/catalogs/{name}", NewRetrieveCatalogByNameHandler(zerolog.Logger{}, svc))
	resp, _ := newGetRequest(is, ts, "application/json", "/api/catalogs/creditors", nil)

	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestGetCatalogRecordIncludesMetadata(t *testing.T) {
	is, r, ts := setupTest(t)
	svc := mockCatalogSvc()

	r.Get("/api/catalogs/{name}/{code}", NewRetrieveCatalogRecordHandler(zerolog.Logger{}, svc))
	resp, body := newGetRequest(is, ts, "application/json", "/api/catalogs/indicators/DT.DOD.DLXF.CD", nil)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(len(svc.GetRecordCalls()), 1)

	const expectation string = `{"data":{"code":"DT.DOD.DLXF.CD","name":"External debt stocks, long-term (DOD, current US$)","metadata":{"sourceNote":"Long-term debt is debt that has an original or extended maturity of more than one year."}}}`
	is.Equal(body, expectation)
}

func TestGetUnknownCatalogRecordReturns404(t *testing.T) {
	is, r, ts := setupTest(t)
	svc := mockCatalogSvc()

	r.Get("/api/catalogs/{name}/{code}", NewRetrieveCatalogRecordHandler(zerolog.Logger{}, svc))
	resp, _ := newGetRequest(is, ts, "application/json", "/api/catalogs/debtors/XXX", nil)

	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func mockCatalogSvc() *catalogs.CatalogServiceMock {
	debtors := &worldbank.CatalogResult{
		Records: []worldbank.CatalogRecord{
			{Code: "AFG", Name: "Afghanistan"},
			{Code: "ALB", Name: "Albania"},
		},
		Total: 2,
	}

	longTermDebt := &worldbank.CatalogRecord{
		Code: "DT.DOD.DLXF.CD",
		Name: "External debt stocks, long-term (DOD, current US$)",
		Extra: map[string]string{
			"sourceNote": "Long-term debt is debt that has an original or extended maturity of more than one year.",
		},
	}

	return &catalogs.CatalogServiceMock{
		NamesFunc: func() []string {
			return []string{"debtors"}
		},
		GetByNameFunc: func(ctx context.Context, name string) (*worldbank.CatalogResult, error) {
			if name != "debtors" {
				return nil, catalogs.ErrNoSuchCatalog
			}
			return debtors, nil
		},
		GetRecordFunc: func(ctx context.Context, name, code string) (*worldbank.CatalogRecord, error) {
			if name == "indicators" && code == longTermDebt.Code {
				return longTermDebt, nil
			}
			for i := range debtors.Records {
				if name == "debtors" && debtors.Records[i].Code == code {
					return &debtors.Records[i], nil
				}
			}
			return nil, worldbank.ErrNotFound
		},
	}
}

func newGetRequest(is *is.I, ts *httptest.Server, accept, path string, body io.Reader) (*http.Response, string) {
	req, err := http.NewRequest(http.MethodGet, ts.URL+path, body)
	is.NoErr(err)

	req.Header.Add("Accept", accept)

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err) // http request failed
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	is.NoErr(err) // failed to read response body

	return resp, string(respBody)
}

func setupTest(t *testing.T) (*is.I, *chi.Mux, *httptest.Server) {
	is := is.New(t)
	r := chi.NewRouter()
	ts := httptest.NewServer(r)

	return is, r, ts
}
