//go:build !experimental

package calendars

import (
	"fmt"

	"golang.org/x/text/language"
)

// experimentalSchemaKey rejects year, month and pattern categories outside experimental builds.
func experimentalSchemaKey(_ *registryEntry, category Category) (SchemaKey, error) {
	switch category {
	case CategoryYearNames, CategoryMonthNames, CategoryDatePattern:
		return "", fmt.Errorf("%w: %s", ErrExperimentalCategory, category)
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownCategory, category)
	}
}

func loadExperimentalForKind(_ DataSource, _ Kind, category Category, _ language.Tag) (ErasedPayload, error) {
	return ErasedPayload{}, fmt.Errorf("%w: %s", ErrExperimentalCategory, category)
}
