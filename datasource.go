package calendars

import (
	"sort"

	"golang.org/x/text/language"
)

// DataRequest identifies one piece of calendar data.
type DataRequest struct {
	Key    SchemaKey
	Locale language.Tag
}

// DataResponse is what a DataSource returns for a request. The payload is
// owned by the caller.
type DataResponse struct {
	Payload []byte
}

// DataSource serves versioned calendar data keyed by schema key and locale.
// Implementations own any caching or locking policy.
type DataSource interface {
	// Load returns the payload for req or a *DataError.
	Load(req DataRequest) (DataResponse, error)
}

// DataSourceFunc adapters allow bare functions to implement DataSource
type DataSourceFunc func(req DataRequest) (DataResponse, error)

// Load implements DataSource for DataSourceFunc
func (fn DataSourceFunc) Load(req DataRequest) (DataResponse, error) {
	return fn(req)
}

// DataSet maps schema key and locale string to raw payloads.
type DataSet map[SchemaKey]map[string][]byte

// StaticDataSource is an in memory source, read only after construction
type StaticDataSource struct {
	entries map[SchemaKey]map[string][]byte
	keys    []SchemaKey
}

var _ DataSource = &StaticDataSource{}

// NewStaticDataSource builds an immutable snapshot from the given data
func NewStaticDataSource(data DataSet) *StaticDataSource {
	if len(data) == 0 {
		return &StaticDataSource{entries: make(map[SchemaKey]map[string][]byte)}
	}

	entries := make(map[SchemaKey]map[string][]byte, len(data))
	keys := make([]SchemaKey, 0, len(data))

	for key, locales := range data {
		if locales == nil {
			continue
		}
		clone := make(map[string][]byte, len(locales))
		for locale, payload := range locales {
			clone[storageLocale(locale)] = append([]byte(nil), payload...)
		}
		entries[key] = clone
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return &StaticDataSource{
		entries: entries,
		keys:    keys,
	}
}

// Load returns a copy of the stored payload.
func (s *StaticDataSource) Load(req DataRequest) (DataResponse, error) {
	if s == nil {
		return DataResponse{}, &DataError{Key: req.Key, Locale: req.Locale, Err: ErrUnsupportedSchema}
	}

	locales, ok := s.entries[req.Key]
	if !ok {
		return DataResponse{}, &DataError{Key: req.Key, Locale: req.Locale, Err: ErrUnsupportedSchema}
	}

	payload, ok := locales[LocaleKey(req.Locale)]
	if !ok {
		return DataResponse{}, &DataError{Key: req.Key, Locale: req.Locale, Err: ErrDataUnavailable}
	}

	return DataResponse{Payload: append([]byte(nil), payload...)}, nil
}

// Keys returns the schema keys known to the source
func (s *StaticDataSource) Keys() []SchemaKey {
	if s == nil || len(s.keys) == 0 {
		return nil
	}
	out := make([]SchemaKey, len(s.keys))
	copy(out, s.keys)
	return out
}
