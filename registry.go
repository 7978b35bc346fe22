package calendars

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// RegistryEntry is the immutable metadata recorded for one calendar kind.
type RegistryEntry struct {
	Kind Kind
	// Identifier is the BCP-47 calendar value that names this kind.
	Identifier string
	// Skeleton is the identifier used for default (skeleton) data loading.
	// Kinds that share data share a skeleton, e.g. all Islamic kinds use "islamic".
	Skeleton string
	Lengths  SchemaKey
	Symbols  SchemaKey
}

type registryEntry struct {
	calendar   Calendar
	identifier string
	skeleton   string
}

var registry = newRegistry([]registryEntry{
	{calendar: Buddhist{}, identifier: "buddhist", skeleton: "buddhist"},
	{calendar: Chinese{}, identifier: "chinese", skeleton: "chinese"},
	{calendar: Coptic{}, identifier: "coptic", skeleton: "coptic"},
	{calendar: Dangi{}, identifier: "dangi", skeleton: "dangi"},
	{calendar: Ethiopian{}, identifier: "ethiopic", skeleton: "ethiopic"},
	{calendar: EthiopianAmeteAlem{}, identifier: "ethiopic-amete-alem", skeleton: "ethiopic"},
	{calendar: Gregorian{}, identifier: "gregory", skeleton: "gregory"},
	{calendar: Hebrew{}, identifier: "hebrew", skeleton: "hebrew"},
	{calendar: Indian{}, identifier: "indian", skeleton: "indian"},
	{calendar: IslamicCivil{}, identifier: "islamic-civil", skeleton: "islamic"},
	{calendar: IslamicObservational{}, identifier: "islamic", skeleton: "islamic"},
	{calendar: IslamicTabular{}, identifier: "islamic-tbla", skeleton: "islamic"},
	{calendar: IslamicUmmAlQura{}, identifier: "islamic-umalqura", skeleton: "islamic"},
	{calendar: Japanese{}, identifier: "japanese", skeleton: "japanese"},
	{calendar: JapaneseExtended{}, identifier: "japanext", skeleton: "japanext"},
	{calendar: Persian{}, identifier: "persian", skeleton: "persian"},
	{calendar: Roc{}, identifier: "roc", skeleton: "roc"},
})

type calendarRegistry struct {
	entries [len(kindNames)]*registryEntry
}

func newRegistry(entries []registryEntry) *calendarRegistry {
	r := &calendarRegistry{}
	for i := range entries {
		entry := &entries[i]
		kind := entry.calendar.Kind()
		if !kind.Valid() {
			panic(fmt.Sprintf("calendars: registry entry with invalid kind %d", uint8(kind)))
		}
		if r.entries[kind] != nil {
			panic(fmt.Sprintf("calendars: duplicate registry entry for %s", kind))
		}
		r.entries[kind] = entry
	}
	for _, kind := range Kinds() {
		if r.entries[kind] == nil {
			panic(fmt.Sprintf("calendars: registry entry missing for %s", kind))
		}
	}
	return r
}

func (r *calendarRegistry) lookup(kind Kind) (*registryEntry, bool) {
	if !kind.Valid() {
		return nil, false
	}
	entry := r.entries[kind]
	return entry, entry != nil
}

func (e *registryEntry) accepts(identifier string) bool {
	if matcher, ok := e.calendar.(identifierMatcher); ok {
		return matcher.IsIdentifierAllowed(identifier)
	}
	return identifier == e.identifier
}

func (e *registryEntry) export() RegistryEntry {
	return RegistryEntry{
		Kind:       e.calendar.Kind(),
		Identifier: e.identifier,
		Skeleton:   e.skeleton,
		Lengths:    newSchemaKey(e.skeleton, CategoryLengths),
		Symbols:    newSchemaKey(e.skeleton, CategorySymbols),
	}
}

// CanonicalIdentifier returns the BCP-47 calendar identifier naming kind, or
// "" when kind is not a member of the closed set. The Islamic kinds each have
// their own identifier; callers that need the shared "islamic" data name use
// SkeletonIdentifier.
func CanonicalIdentifier(kind Kind) string {
	entry, ok := registry.lookup(kind)
	if !ok {
		return ""
	}
	return entry.identifier
}

// SkeletonIdentifier returns the identifier used to load default skeleton data.
func SkeletonIdentifier(kind Kind) string {
	entry, ok := registry.lookup(kind)
	if !ok {
		return ""
	}
	return entry.skeleton
}

// Accepts reports whether identifier may be used with kind. It validates the
// pair only; several kinds can share a skeleton so no kind is inferred.
func Accepts(kind Kind, identifier string) bool {
	entry, ok := registry.lookup(kind)
	if !ok {
		return false
	}
	return entry.accepts(identifier)
}

// Entry returns the registry record for kind.
func Entry(kind Kind) (RegistryEntry, bool) {
	entry, ok := registry.lookup(kind)
	if !ok {
		return RegistryEntry{}, false
	}
	return entry.export(), true
}

// Entries returns the records of every kind in declaration order.
func Entries() []RegistryEntry {
	kinds := Kinds()
	out := make([]RegistryEntry, 0, len(kinds))
	for _, kind := range kinds {
		out = append(out, registry.entries[kind].export())
	}
	return out
}

// LocaleCalendar returns the calendar named by the locale's -u-ca- extension.
// Multi-subtag types such as "islamic-civil" are returned whole.
func LocaleCalendar(locale language.Tag) (string, bool) {
	ext, ok := locale.Extension('u')
	if !ok {
		return "", false
	}
	return calendarType(ext.Tokens())
}

// calendarType collects the subtags following the "ca" key up to the next
// key. Keys are two characters, type subtags three to eight.
func calendarType(tokens []string) (string, bool) {
	var parts []string
	inCalendar := false
	for _, token := range tokens {
		token = strings.ToLower(token)
		switch {
		case len(token) == 1:
			continue
		case len(token) == 2:
			if inCalendar {
				return strings.Join(parts, "-"), len(parts) > 0
			}
			inCalendar = token == "ca"
		case inCalendar:
			parts = append(parts, token)
		}
	}
	return strings.Join(parts, "-"), len(parts) > 0
}

// CheckLocale verifies that a calendar named by locale, if any, is accepted by kind.
func CheckLocale(kind Kind, locale language.Tag) error {
	if _, ok := registry.lookup(kind); !ok {
		return &UnsupportedKindError{Kind: kind}
	}
	identifier, ok := LocaleCalendar(locale)
	if !ok {
		return nil
	}
	if !Accepts(kind, identifier) {
		return &MismatchedCalendarError{Kind: kind, Identifier: identifier}
	}
	return nil
}

// SchemaKeyFor returns the key used to request category data for kind.
// Lengths and symbols are always available.
func SchemaKeyFor(kind Kind, category Category) (SchemaKey, error) {
	entry, ok := registry.lookup(kind)
	if !ok {
		return "", &UnsupportedKindError{Kind: kind}
	}
	switch category {
	case CategoryLengths, CategorySymbols:
		return newSchemaKey(entry.skeleton, category), nil
	default:
		return experimentalSchemaKey(entry, category)
	}
}
