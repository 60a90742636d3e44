package catalogs

import (
	"fmt"
	"io"

	"github.com/debtstats/api-ids/internal/pkg/infrastructure/clients/worldbank"
	yaml "gopkg.in/yaml.v2"
)

const DefaultPageSize int = 500

// CatalogConfig describes one catalog to fetch and serve: which list
// endpoint to call, which envelope shape it uses, and how large a page to
// request. The page size doubles as the truncation limit, since fetches
// never span more than one page.
type CatalogConfig struct {
	Name    string `yaml:"name"`
	Path    string `yaml:"path"`
	Schema  string `yaml:"schema"`
	Source  int    `yaml:"source"`
	PerPage int    `yaml:"perPage"`
}

// LoadConfiguration reads the catalog registry from a yaml document.
func LoadConfiguration(input io.Reader) ([]CatalogConfig, error) {
	buf, err := io.ReadAll(input)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog configuration: %s", err.Error())
	}

	cfg := struct {
		Catalogs []CatalogConfig `yaml:"catalogs"`
	}{}

	err = yaml.Unmarshal(buf, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog configuration: %s", err.Error())
	}

	if len(cfg.Catalogs) == 0 {
		return nil, fmt.Errorf("catalog configuration contains no catalogs")
	}

	for i, c := range cfg.Catalogs {
		if c.Name == "" {
			return nil, fmt.Errorf("catalog at position %d has no name", i)
		}

		if c.Path == "" {
			return nil, fmt.Errorf("catalog %s has no resource path", c.Name)
		}

		if c.Schema != "flat" && c.Schema != "nested" {
			return nil, fmt.Errorf("catalog %s has unknown schema %s (expected flat or nested)", c.Name, c.Schema)
		}

		if c.PerPage == 0 {
			cfg.Catalogs[i].PerPage = DefaultPageSize
		} else if c.PerPage < 0 {
			return nil, fmt.Errorf("catalog %s has a negative page size", c.Name)
		}
	}

	return cfg.Catalogs, nil
}

func (c CatalogConfig) request() worldbank.CatalogRequest {
	schema := worldbank.SchemaFlatArray
	if c.Schema == "nested" {
		schema = worldbank.SchemaNestedVariable
	}

	return worldbank.CatalogRequest{
		ResourcePath: c.Path,
		Schema:       schema,
		SourceID:     c.Source,
		PerPage:      c.PerPage,
	}
}
