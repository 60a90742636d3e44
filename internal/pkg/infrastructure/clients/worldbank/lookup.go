package worldbank

// Lookup scans a fetched catalog for the record with the given code. The
// match is exact and case sensitive. Codes are expected to be unique within
// one catalog; should the server ever violate that, the first match wins.
func Lookup(result *CatalogResult, code string) (*CatalogRecord, error) {
	if result == nil {
		return nil, ErrNotFound
	}

	for i := range result.Records {
		if result.Records[i].Code == code {
			return &result.Records[i], nil
		}
	}

	return nil, ErrNotFound
}

// FindMetadata returns one metadata field, such as sourceNote, from the
// record with the given code.
func FindMetadata(result *CatalogResult, code, field string) (string, error) {
	record, err := Lookup(result, code)
	if err != nil {
		return "", err
	}

	value, ok := record.Extra[field]
	if !ok {
		return "", ErrNotFound
	}

	return value, nil
}
