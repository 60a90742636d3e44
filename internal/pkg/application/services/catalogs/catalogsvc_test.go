package catalogs

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/debtstats/api-ids/internal/pkg/infrastructure/clients/worldbank"
	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestLoadConfiguration(t *testing.T) {
	is := is.New(t)

	cfgs, err := LoadConfiguration(bytes.NewBufferString(configFile))
	is.NoErr(err)
	is.Equal(len(cfgs), 3)

	is.Equal(cfgs[0].Name, "indicators")
	is.Equal(cfgs[0].PerPage, 500)
	is.Equal(cfgs[1].Schema, "nested")
	is.Equal(cfgs[2].PerPage, DefaultPageSize) // page size defaults when omitted
}

func TestLoadConfigurationRejectsUnknownSchema(t *testing.T) {
	is := is.New(t)

	_, err := LoadConfiguration(bytes.NewBufferString(`
catalogs:
  - name: indicators
    path: indicator
    schema: sideways
`))
	is.True(err != nil)
}

func TestCatalogServiceRefreshesAndServesRecords(t *testing.T) {
	is, ms := testSetup(t, http.StatusOK, sourcesJson)
	ctx := context.Background()

	svc := NewCatalogService(ctx, zerolog.Logger{}, ms.URL(), []CatalogConfig{
		{Name: "sources", Path: "sources", Schema: "flat", PerPage: 10},
	})

	count, err := svc.Refresh(ctx)
	is.NoErr(err)
	is.Equal(count, 2)

	result, err := svc.GetByName(ctx, "sources")
	is.NoErr(err)
	is.Equal(result.Total, 2)

	record, err := svc.GetRecord(ctx, "sources", "6")
	is.NoErr(err)
	is.Equal(record.Name, "International Debt Statistics")

	note, err := svc.GetMetadata(ctx, "sources", "6", "lastupdated")
	is.NoErr(err)
	is.Equal(note, "2021-01-21")
}

func TestCatalogServiceReportsMissingCatalogsAndCodes(t *testing.T) {
	is, ms := testSetup(t, http.StatusOK, sourcesJson)
	ctx := context.Background()

	svc := NewCatalogService(ctx, zerolog.Logger{}, ms.URL(), []CatalogConfig{
		{Name: "sources", Path: "sources", Schema: "flat", PerPage: 10},
	})

	_, err := svc.Refresh(ctx)
	is.NoErr(err)

	_, err = svc.GetByName(ctx, "creditors")
	is.True(errors.Is(err, ErrNoSuchCatalog))

	_, err = svc.GetRecord(ctx, "sources", "999")
	is.True(errors.Is(err, worldbank.ErrNotFound))
}

func TestCatalogServiceKeepsOldDataOnFailedRefresh(t *testing.T) {
	is, ms := testSetup(t, http.StatusOK, sourcesJson)
	ctx := context.Background()

	svc := NewCatalogService(ctx, zerolog.Logger{}, ms.URL(), []CatalogConfig{
		{Name: "sources", Path: "sources", Schema: "flat", PerPage: 10},
	})

	_, err := svc.Refresh(ctx)
	is.NoErr(err)

	failing := svc.(*catalogSvc)
	failing.client = worldbank.NewClient("http://localhost:0")

	_, err = failing.Refresh(ctx)
	is.True(err != nil)

	result, err := svc.GetByName(ctx, "sources")
	is.NoErr(err)
	is.Equal(len(result.Records), 2)
}

func testSetup(t *testing.T, statusCode int, responseBody string) (*is.I, testutils.MockService) {
	is := is.New(t)

	ms := testutils.NewMockServiceThat(
		testutils.Expects(is, expects.AnyInput()),
		testutils.Returns(
			response.Code(statusCode),
			response.ContentType("application/json"),
			response.Body([]byte(responseBody)),
		),
	)

	return is, ms
}

const configFile string = `
catalogs:
  - name: indicators
    path: indicator
    schema: flat
    source: 6
    perPage: 500
  - name: debtors
    path: sources/6/country
    schema: nested
    perPage: 500
  - name: sources
    path: sources
    schema: flat
`

const sourcesJson string = `[
	{"page":1,"pages":1,"per_page":"10","total":2},
	[
		{
			"id": "2",
			"name": "World Development Indicators",
			"code": "WDI",
			"lastupdated": "2021-03-19",
			"dataavailability": "Y",
			"metadataavailability": "Y"
		},
		{
			"id": "6",
			"name": "International Debt Statistics",
			"code": "IDS",
			"lastupdated": "2021-01-21",
			"dataavailability": "Y",
			"metadataavailability": "Y"
		}
	]
]`
