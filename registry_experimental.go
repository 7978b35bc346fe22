//go:build experimental

package calendars

import (
	"fmt"

	"golang.org/x/text/language"
)

func experimentalSchemaKey(entry *registryEntry, category Category) (SchemaKey, error) {
	switch category {
	case CategoryYearNames, CategoryMonthNames, CategoryDatePattern:
		return newSchemaKey(entry.skeleton, category), nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownCategory, category)
	}
}

// LoadYearNames loads era/cyclic year names for C.
func LoadYearNames[C Calendar](src DataSource, locale language.Tag) (ErasedPayload, error) {
	return loadErased[C](src, CategoryYearNames, locale)
}

// LoadMonthNames loads month names for C.
func LoadMonthNames[C Calendar](src DataSource, locale language.Tag) (ErasedPayload, error) {
	return loadErased[C](src, CategoryMonthNames, locale)
}

// LoadDatePattern loads the single date pattern for C.
func LoadDatePattern[C Calendar](src DataSource, locale language.Tag) (ErasedPayload, error) {
	return loadErased[C](src, CategoryDatePattern, locale)
}

var experimentalLoaders = map[Kind]func(DataSource, Category, language.Tag) (ErasedPayload, error){
	KindBuddhist:             loadErased[Buddhist],
	KindChinese:              loadErased[Chinese],
	KindCoptic:               loadErased[Coptic],
	KindDangi:                loadErased[Dangi],
	KindEthiopian:            loadErased[Ethiopian],
	KindEthiopianAmeteAlem:   loadErased[Ethiopian],
	KindGregorian:            loadErased[Gregorian],
	KindHebrew:               loadErased[Hebrew],
	KindIndian:               loadErased[Indian],
	KindIslamicCivil:         loadErased[IslamicCivil],
	KindIslamicObservational: loadErased[IslamicObservational],
	KindIslamicTabular:       loadErased[IslamicTabular],
	KindIslamicUmmAlQura:     loadErased[IslamicUmmAlQura],
	KindJapanese:             loadErased[Japanese],
	KindJapaneseExtended:     loadErased[JapaneseExtended],
	KindPersian:              loadErased[Persian],
	KindRoc:                  loadErased[Roc],
}

func loadExperimentalForKind(src DataSource, kind Kind, category Category, locale language.Tag) (ErasedPayload, error) {
	load, ok := experimentalLoaders[kind]
	if !ok {
		return ErasedPayload{}, &UnsupportedKindError{Kind: kind}
	}
	return load(src, category, locale)
}
