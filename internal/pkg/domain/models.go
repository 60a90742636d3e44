package domain

import "math"

// CatalogEntry is the presentation form of one catalog record.
type CatalogEntry struct {
	Code     string            `json:"code"`
	Name     string            `json:"name"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// CatalogSummary describes one served catalog. Count is the number of
// records actually held, Total the count the upstream api reported. The two
// differ when the configured page size truncated the fetch.
type CatalogSummary struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Total int    `json:"total"`
}

// DebtObservation is a single dated value of a debt indicator series.
type DebtObservation struct {
	Indicator    string  `json:"indicator"`
	Location     string  `json:"location"`
	LocationCode string  `json:"locationCode"`
	Year         string  `json:"year"`
	Value        float64 `json:"value"`
}

// ToBillions converts a current US$ amount to billions, rounded to one
// decimal.
func ToBillions(value float64) float64 {
	return math.Round(value/1e9*10) / 10
}
