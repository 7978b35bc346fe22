package calendars

import (
	"fmt"
	"strconv"
	"strings"
)

// Category names a shape of calendar data.
type Category string

const (
	CategoryLengths Category = "datelengths"
	CategorySymbols Category = "datesymbols"

	// Available only when built with the experimental tag.
	CategoryYearNames   Category = "years"
	CategoryMonthNames  Category = "months"
	CategoryDatePattern Category = "datepattern"
)

const schemaVersion = 1

// SchemaKey is an opaque versioned identifier of a data shape, laid out as
// datetime/<calendar>/<category>@<version>. Kinds that share data share keys.
type SchemaKey string

func newSchemaKey(slug string, category Category) SchemaKey {
	return SchemaKey(fmt.Sprintf("datetime/%s/%s@%d", slug, category, schemaVersion))
}

// Category returns the data category encoded in the key.
func (k SchemaKey) Category() Category {
	path := k.path()
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return Category(path[idx+1:])
	}
	return ""
}

// Calendar returns the calendar data slug encoded in the key, e.g. "islamic".
func (k SchemaKey) Calendar() string {
	parts := strings.Split(k.path(), "/")
	if len(parts) != 3 {
		return ""
	}
	return parts[1]
}

// Version returns the schema version, or 0 when the key is malformed.
func (k SchemaKey) Version() int {
	idx := strings.LastIndex(string(k), "@")
	if idx < 0 {
		return 0
	}
	v, err := strconv.Atoi(string(k)[idx+1:])
	if err != nil {
		return 0
	}
	return v
}

func (k SchemaKey) String() string {
	return string(k)
}

func (k SchemaKey) path() string {
	if idx := strings.LastIndex(string(k), "@"); idx >= 0 {
		return string(k)[:idx]
	}
	return string(k)
}

// ParseCategory accepts either the category value or its long name
// ("lengths", "symbols", "year-names", "month-names", "date-pattern").
func ParseCategory(raw string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "lengths", string(CategoryLengths):
		return CategoryLengths, nil
	case "symbols", string(CategorySymbols):
		return CategorySymbols, nil
	case "year-names", string(CategoryYearNames):
		return CategoryYearNames, nil
	case "month-names", string(CategoryMonthNames):
		return CategoryMonthNames, nil
	case "date-pattern", string(CategoryDatePattern):
		return CategoryDatePattern, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownCategory, raw)
	}
}
