package worldbank

// ResponseSchema tells the envelope parser where the record list lives.
// The v2 API uses two shapes for list endpoints: most return a two element
// array with the records in the second element, but the source concept
// endpoints (sources/{id}/country et al) nest the records under
// source[0].concept[0].variable instead.
type ResponseSchema int

const (
	SchemaFlatArray ResponseSchema = iota
	SchemaNestedVariable
)

// CatalogRequest identifies one list endpoint and how to page it. PerPage
// must be positive and ResourcePath non-empty. A SourceID of 0 means no
// source filter is appended.
type CatalogRequest struct {
	ResourcePath string
	Schema       ResponseSchema
	SourceID     int
	PerPage      int
}

// CatalogRecord is one flattened catalog entry. Extra holds any additional
// string valued fields from the raw record, such as sourceNote. Records are
// never mutated after parsing.
type CatalogRecord struct {
	Code  string            `json:"code"`
	Name  string            `json:"name"`
	Extra map[string]string `json:"metadata,omitempty"`
}

// CatalogResult is the flattened record sequence from a single fetched page,
// in server order. Total is the count the server reported, which exceeds
// len(Records) whenever the requested page size was too small to hold the
// full catalog.
type CatalogResult struct {
	Records []CatalogRecord
	Total   int
}

// SeriesRequest identifies one indicator series query over a set of
// locations and a year range.
type SeriesRequest struct {
	Indicator string
	Locations []string
	FromYear  int
	ToYear    int
	SourceID  int
	PerPage   int
}

// SeriesObservation is a single dated data point of an indicator series.
type SeriesObservation struct {
	Indicator    string  `json:"indicator"`
	Location     string  `json:"location"`
	LocationCode string  `json:"locationCode"`
	Year         string  `json:"year"`
	Value        float64 `json:"value"`
}

// SeriesResult holds the observations from a single fetched page. The same
// single page policy applies as for catalogs: Total is the server reported
// count and may exceed len(Observations).
type SeriesResult struct {
	Observations []SeriesObservation
	Total        int
}
