package worldbank

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"strings"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const DefaultApiURL string = "http://api.worldbank.org"

// Client retrieves and flattens paginated catalog lists and indicator series
// from the World Bank Data API. All calls are single blocking round trips:
// the requested page size is the only pagination mechanism, so a catalog
// larger than PerPage comes back silently truncated. Callers that need
// completeness call TotalCount first and size PerPage accordingly.
type Client interface {
	ApiURL() string

	TotalCount(ctx context.Context, req CatalogRequest) (int, error)
	FetchAll(ctx context.Context, req CatalogRequest) (*CatalogResult, error)
	FetchSeries(ctx context.Context, req SeriesRequest) (*SeriesResult, error)
}

func NewClient(apiURL string) Client {
	return &wbClient{
		apiURL: strings.TrimSuffix(apiURL, "/"),
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   30 * time.Second,
		},
	}
}

type wbClient struct {
	apiURL     string
	httpClient http.Client
}

func (c *wbClient) ApiURL() string {
	return c.apiURL
}

func (c *wbClient) TotalCount(ctx context.Context, req CatalogRequest) (int, error) {
	if req.ResourcePath == "" {
		return 0, fmt.Errorf("no resource path supplied in catalog request")
	}

	body, err := c.get(ctx, c.catalogURL(req, 1))
	if err != nil {
		return 0, err
	}

	return parseTotal(body, req.Schema)
}

func (c *wbClient) FetchAll(ctx context.Context, req CatalogRequest) (*CatalogResult, error) {
	if req.ResourcePath == "" {
		return nil, fmt.Errorf("no resource path supplied in catalog request")
	}

	if req.PerPage <= 0 {
		return nil, fmt.Errorf("catalog request page size must be positive")
	}

	body, err := c.get(ctx, c.catalogURL(req, req.PerPage))
	if err != nil {
		return nil, err
	}

	records, total, err := extractRecords(body, req.Schema)
	if err != nil {
		return nil, err
	}

	return &CatalogResult{Records: records, Total: total}, nil
}

func (c *wbClient) FetchSeries(ctx context.Context, req SeriesRequest) (*SeriesResult, error) {
	if req.Indicator == "" {
		return nil, fmt.Errorf("no indicator supplied in series request")
	}

	if req.PerPage <= 0 {
		return nil, fmt.Errorf("series request page size must be positive")
	}

	locations := "all"
	if len(req.Locations) > 0 {
		locations = strings.Join(req.Locations, ";")
	}

	requestURL := fmt.Sprintf(
		"%s/v2/country/%s/indicator/%s?per_page=%d&format=json",
		c.apiURL, locations, req.Indicator, req.PerPage,
	)

	if req.FromYear > 0 {
		toYear := req.ToYear
		if toYear < req.FromYear {
			toYear = req.FromYear
		}
		requestURL = fmt.Sprintf("%s&date=%d:%d", requestURL, req.FromYear, toYear)
	}

	if req.SourceID > 0 {
		requestURL = fmt.Sprintf("%s&source=%d", requestURL, req.SourceID)
	}

	body, err := c.get(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	return extractObservations(body)
}

func (c *wbClient) catalogURL(req CatalogRequest, perPage int) string {
	requestURL := fmt.Sprintf(
		"%s/v2/%s?per_page=%d&format=json",
		c.apiURL, req.ResourcePath, perPage,
	)

	if req.SourceID > 0 {
		requestURL = fmt.Sprintf("%s&source=%d", requestURL, req.SourceID)
	}

	return requestURL
}

func (c *wbClient) get(ctx context.Context, requestURL string) ([]byte, error) {
	logger := logging.GetFromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %s", err.Error())
	}

	req.Header.Add("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("failed to read response body: %s", err.Error())}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		reqbytes, _ := httputil.DumpRequest(req, false)
		respbytes, _ := httputil.DumpResponse(resp, false)

		logger.Error().Str("request", string(reqbytes)).Str("response", string(respbytes)).Msg("request failed")
		return nil, &NetworkError{Err: fmt.Errorf("request failed with status %d", resp.StatusCode)}
	}

	if resp.StatusCode != http.StatusOK {
		contentType := resp.Header.Get("Content-Type")
		return nil, &NetworkError{Err: fmt.Errorf(
			"api returned status code %d (content-type: %s, body: %s)",
			resp.StatusCode, contentType, string(respBody),
		)}
	}

	return respBody, nil
}

// extractRecords maps the raw response body onto a flat record sequence. The
// schema decides where the records live and which keys carry code and name.
func extractRecords(body []byte, schema ResponseSchema) ([]CatalogRecord, int, error) {
	if schema == SchemaNestedVariable {
		return extractNestedRecords(body)
	}

	return extractFlatRecords(body)
}

func extractFlatRecords(body []byte) ([]CatalogRecord, int, error) {
	var envelope []json.RawMessage

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, 0, &ParseError{Field: "envelope", Err: err}
	}

	if len(envelope) < 1 {
		return nil, 0, &ParseError{Field: "paging"}
	}

	total, err := parseFlatTotal(envelope[0])
	if err != nil {
		return nil, 0, err
	}

	if len(envelope) < 2 {
		return nil, 0, &ParseError{Field: "records"}
	}

	var rawRecords []map[string]json.RawMessage
	err = json.Unmarshal(envelope[1], &rawRecords)
	if err != nil {
		return nil, 0, &ParseError{Field: "records", Err: err}
	}

	records := make([]CatalogRecord, 0, len(rawRecords))

	for _, raw := range rawRecords {
		code, ok := stringField(raw, "id")
		if !ok || code == "" {
			return nil, 0, &ParseError{Field: "id"}
		}

		// most list endpoints carry the display name in "name", but some
		// use "value" instead
		name, ok := stringField(raw, "name")
		if !ok {
			name, ok = stringField(raw, "value")
		}
		if !ok {
			return nil, 0, &ParseError{Field: "name"}
		}

		record := CatalogRecord{Code: code, Name: name}

		for key := range raw {
			if key == "id" || key == "name" || key == "value" {
				continue
			}

			if extra, isString := stringField(raw, key); isString && extra != "" {
				if record.Extra == nil {
					record.Extra = map[string]string{}
				}
				record.Extra[key] = extra
			}
		}

		records = append(records, record)
	}

	return records, total, nil
}

func extractNestedRecords(body []byte) ([]CatalogRecord, int, error) {
	envelope := struct {
		Total  *int `json:"total"`
		Source []struct {
			Concept []struct {
				Variable []struct {
					ID    *string `json:"id"`
					Value *string `json:"value"`
				} `json:"variable"`
			} `json:"concept"`
		} `json:"source"`
	}{}

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, 0, &ParseError{Field: "envelope", Err: err}
	}

	if envelope.Total == nil {
		return nil, 0, &ParseError{Field: "total"}
	}

	if len(envelope.Source) == 0 {
		return nil, 0, &ParseError{Field: "source"}
	}

	if len(envelope.Source[0].Concept) == 0 {
		return nil, 0, &ParseError{Field: "concept"}
	}

	variables := envelope.Source[0].Concept[0].Variable
	records := make([]CatalogRecord, 0, len(variables))

	for _, v := range variables {
		if v.ID == nil || *v.ID == "" {
			return nil, 0, &ParseError{Field: "id"}
		}

		if v.Value == nil {
			return nil, 0, &ParseError{Field: "value"}
		}

		records = append(records, CatalogRecord{Code: *v.ID, Name: *v.Value})
	}

	return records, *envelope.Total, nil
}

func extractObservations(body []byte) (*SeriesResult, error) {
	var envelope []json.RawMessage

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, &ParseError{Field: "envelope", Err: err}
	}

	if len(envelope) < 1 {
		return nil, &ParseError{Field: "paging"}
	}

	total, err := parseFlatTotal(envelope[0])
	if err != nil {
		return nil, err
	}

	if len(envelope) < 2 {
		return nil, &ParseError{Field: "records"}
	}

	var rawObservations []struct {
		Indicator struct {
			ID    string `json:"id"`
			Value string `json:"value"`
		} `json:"indicator"`
		Country struct {
			ID    string `json:"id"`
			Value string `json:"value"`
		} `json:"country"`
		CountryISO3Code string   `json:"countryiso3code"`
		Date            string   `json:"date"`
		Value           *float64 `json:"value"`
	}

	err = json.Unmarshal(envelope[1], &rawObservations)
	if err != nil {
		return nil, &ParseError{Field: "records", Err: err}
	}

	observations := make([]SeriesObservation, 0, len(rawObservations))

	for _, raw := range rawObservations {
		// the api reports years without data as explicit nulls
		if raw.Value == nil {
			continue
		}

		locationCode := raw.CountryISO3Code
		if locationCode == "" {
			locationCode = raw.Country.ID
		}

		observations = append(observations, SeriesObservation{
			Indicator:    raw.Indicator.ID,
			Location:     raw.Country.Value,
			LocationCode: locationCode,
			Year:         raw.Date,
			Value:        *raw.Value,
		})
	}

	return &SeriesResult{Observations: observations, Total: total}, nil
}

func parseTotal(body []byte, schema ResponseSchema) (int, error) {
	if schema == SchemaNestedVariable {
		paging := struct {
			Total *int `json:"total"`
		}{}

		err := json.Unmarshal(body, &paging)
		if err != nil {
			return 0, &ParseError{Field: "envelope", Err: err}
		}

		if paging.Total == nil {
			return 0, &ParseError{Field: "total"}
		}

		return *paging.Total, nil
	}

	var envelope []json.RawMessage

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return 0, &ParseError{Field: "envelope", Err: err}
	}

	if len(envelope) < 1 {
		return 0, &ParseError{Field: "paging"}
	}

	return parseFlatTotal(envelope[0])
}

func parseFlatTotal(raw json.RawMessage) (int, error) {
	paging := struct {
		Total *int `json:"total"`
	}{}

	err := json.Unmarshal(raw, &paging)
	if err != nil {
		return 0, &ParseError{Field: "paging", Err: err}
	}

	if paging.Total == nil {
		return 0, &ParseError{Field: "total"}
	}

	return *paging.Total, nil
}

func stringField(raw map[string]json.RawMessage, key string) (string, bool) {
	rm, ok := raw[key]
	if !ok || len(rm) == 0 {
		return "", false
	}

	var value string
	if err := json.Unmarshal(rm, &value); err != nil {
		return "", false
	}

	return value, true
}
