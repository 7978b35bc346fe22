package calendars

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestAcceptsCanonicalIdentifier(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			id := CanonicalIdentifier(kind)
			require.NotEmpty(t, id)
			assert.True(t, Accepts(kind, id), "%s must accept %q", kind, id)
		})
	}
}

func TestAcceptsIslamicPartition(t *testing.T) {
	tests := []struct {
		kind     Kind
		accepted []string
		rejected []string
	}{
		{
			kind:     KindIslamicCivil,
			accepted: []string{"islamic-civil", "islamicc"},
			rejected: []string{"islamic", "islamic-tbla", "islamic-umalqura", "islamic-civil-x", "Islamic-civil", "civil"},
		},
		{
			kind:     KindIslamicObservational,
			accepted: []string{"islamic"},
			rejected: []string{"islamic-civil", "islamicc", "islamic-tbla", "islamic-umalqura", "islamic-rgsa"},
		},
		{
			kind:     KindIslamicTabular,
			accepted: []string{"islamic-tbla"},
			rejected: []string{"islamic", "islamic-civil", "islamicc", "islamic-umalqura", "islamic-tbla-x"},
		},
		{
			kind:     KindIslamicUmmAlQura,
			accepted: []string{"islamic-umalqura"},
			rejected: []string{"islamic", "islamic-civil", "islamic-tbla", "umalqura", "islamic-umalqura-"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			for _, id := range tt.accepted {
				assert.True(t, Accepts(tt.kind, id), "expected %q to be accepted", id)
			}
			for _, id := range tt.rejected {
				assert.False(t, Accepts(tt.kind, id), "expected %q to be rejected", id)
			}
			assert.Equal(t, "islamic", SkeletonIdentifier(tt.kind))
		})
	}
}

func TestIslamicIdentifiers(t *testing.T) {
	tests := map[Kind]string{
		KindIslamicCivil:         "islamic-civil",
		KindIslamicObservational: "islamic",
		KindIslamicTabular:       "islamic-tbla",
		KindIslamicUmmAlQura:     "islamic-umalqura",
	}
	for kind, want := range tests {
		assert.Equal(t, want, CanonicalIdentifier(kind))
		assert.Equal(t, "islamic", SkeletonIdentifier(kind))
	}
}

func TestAcceptsEthiopian(t *testing.T) {
	assert.True(t, Accepts(KindEthiopian, "ethiopic"))
	assert.True(t, Accepts(KindEthiopian, "ethioaa"))
	assert.False(t, Accepts(KindEthiopian, "ethiopic-amete-alem"))
	assert.False(t, Accepts(KindEthiopian, "coptic"))

	assert.True(t, Accepts(KindEthiopianAmeteAlem, "ethiopic-amete-alem"))
	assert.False(t, Accepts(KindEthiopianAmeteAlem, "ethioaa"))
	assert.False(t, Accepts(KindEthiopianAmeteAlem, "ethiopic"))
}

func TestAcceptsDefaultIsExactMatch(t *testing.T) {
	assert.True(t, Accepts(KindGregorian, "gregory"))
	assert.False(t, Accepts(KindGregorian, "gregorian"))
	assert.False(t, Accepts(KindGregorian, "GREGORY"))
	assert.False(t, Accepts(KindJapanese, "japanext"))
	assert.True(t, Accepts(KindJapaneseExtended, "japanext"))
}

func TestRegistryOutOfRangeKinds(t *testing.T) {
	for _, kind := range []Kind{0, Kind(len(kindNames)), 200} {
		assert.Empty(t, CanonicalIdentifier(kind))
		assert.Empty(t, SkeletonIdentifier(kind))
		assert.False(t, Accepts(kind, ""))
		assert.False(t, Accepts(kind, "gregory"))

		_, ok := Entry(kind)
		assert.False(t, ok)

		_, err := SchemaKeyFor(kind, CategoryLengths)
		var unsupported *UnsupportedKindError
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, kind, unsupported.Kind)
		assert.ErrorIs(t, err, ErrUnsupportedCalendarKind)
	}
}

func TestEntries(t *testing.T) {
	entries := Entries()
	require.Len(t, entries, len(Kinds()))

	seen := make(map[Kind]bool, len(entries))
	for i, entry := range entries {
		assert.Equal(t, Kinds()[i], entry.Kind)
		assert.False(t, seen[entry.Kind], "duplicate entry for %s", entry.Kind)
		seen[entry.Kind] = true

		assert.Equal(t, CategoryLengths, entry.Lengths.Category())
		assert.Equal(t, CategorySymbols, entry.Symbols.Category())
		assert.Equal(t, entry.Skeleton, entry.Lengths.Calendar())
	}

	greg, ok := Entry(KindGregorian)
	require.True(t, ok)
	assert.Equal(t, "gregory", greg.Identifier)
	assert.Equal(t, SchemaKey("datetime/gregory/datelengths@1"), greg.Lengths)
	assert.Equal(t, SchemaKey("datetime/gregory/datesymbols@1"), greg.Symbols)
}

func TestSchemaKeysShareData(t *testing.T) {
	eth, err := SchemaKeyFor(KindEthiopian, CategorySymbols)
	require.NoError(t, err)
	amete, err := SchemaKeyFor(KindEthiopianAmeteAlem, CategorySymbols)
	require.NoError(t, err)
	assert.Equal(t, eth, amete)

	civil, err := SchemaKeyFor(KindIslamicCivil, CategoryLengths)
	require.NoError(t, err)
	umalqura, err := SchemaKeyFor(KindIslamicUmmAlQura, CategoryLengths)
	require.NoError(t, err)
	assert.Equal(t, civil, umalqura)

	japanese, err := SchemaKeyFor(KindJapanese, CategoryLengths)
	require.NoError(t, err)
	japanext, err := SchemaKeyFor(KindJapaneseExtended, CategoryLengths)
	require.NoError(t, err)
	assert.NotEqual(t, japanese, japanext)
}

func TestSchemaKeyForUnknownCategory(t *testing.T) {
	_, err := SchemaKeyFor(KindGregorian, Category("numbers"))
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestNewRegistryPanics(t *testing.T) {
	assert.Panics(t, func() {
		newRegistry([]registryEntry{
			{calendar: Gregorian{}, identifier: "gregory", skeleton: "gregory"},
			{calendar: Gregorian{}, identifier: "gregory", skeleton: "gregory"},
		})
	}, "duplicate kind")

	assert.Panics(t, func() {
		newRegistry([]registryEntry{
			{calendar: Gregorian{}, identifier: "gregory", skeleton: "gregory"},
		})
	}, "missing kinds")
}

func TestLocaleCalendar(t *testing.T) {
	id, ok := LocaleCalendar(language.MustParse("th-TH-u-ca-buddhist"))
	require.True(t, ok)
	assert.Equal(t, "buddhist", id)

	_, ok = LocaleCalendar(language.MustParse("en-US"))
	assert.False(t, ok)

	tests := map[string]string{
		"ar-SA-u-ca-islamic-civil":            "islamic-civil",
		"ar-u-ca-islamic-tbla":                "islamic-tbla",
		"ar-SA-u-ca-islamic-umalqura-nu-arab": "islamic-umalqura",
		"am-u-ca-ethiopic-amete-alem":         "ethiopic-amete-alem",
		"ja-JP-u-nu-jpan-ca-japanese":         "japanese",
		"en-u-ca-gregory-x-private":           "gregory",
	}
	for locale, want := range tests {
		t.Run(locale, func(t *testing.T) {
			id, ok := LocaleCalendar(language.MustParse(locale))
			require.True(t, ok)
			assert.Equal(t, want, id)
		})
	}

	_, ok = LocaleCalendar(language.MustParse("th-u-nu-thai"))
	assert.False(t, ok)
}

func TestCalendarType(t *testing.T) {
	id, ok := calendarType([]string{"u", "ca", "islamic", "civil", "nu", "arab"})
	require.True(t, ok)
	assert.Equal(t, "islamic-civil", id)

	id, ok = calendarType([]string{"ca", "ethiopic", "amete", "alem"})
	require.True(t, ok)
	assert.Equal(t, "ethiopic-amete-alem", id)

	_, ok = calendarType([]string{"u", "nu", "thai"})
	assert.False(t, ok)

	_, ok = calendarType(nil)
	assert.False(t, ok)
}

func TestCheckLocale(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		locale  string
		wantErr error
	}{
		{name: "no_extension", kind: KindGregorian, locale: "en-US"},
		{name: "matching", kind: KindBuddhist, locale: "th-u-ca-buddhist"},
		{name: "islamic_civil", kind: KindIslamicCivil, locale: "ar-SA-u-ca-islamic-civil"},
		{name: "ethioaa_on_ethiopian", kind: KindEthiopian, locale: "am-ET-u-ca-ethioaa"},
		{name: "islamic_tabular", kind: KindIslamicTabular, locale: "ar-u-ca-islamic-tbla"},
		{name: "islamic_umalqura", kind: KindIslamicUmmAlQura, locale: "ar-SA-u-ca-islamic-umalqura"},
		{name: "islamic_observational", kind: KindIslamicObservational, locale: "ar-u-ca-islamic"},
		{name: "amete_alem", kind: KindEthiopianAmeteAlem, locale: "am-u-ca-ethiopic-amete-alem"},
		{name: "tabular_is_not_observational", kind: KindIslamicObservational, locale: "ar-u-ca-islamic-tbla", wantErr: ErrMismatchedCalendar},
		{name: "civil_is_not_umalqura", kind: KindIslamicUmmAlQura, locale: "ar-SA-u-ca-islamic-civil", wantErr: ErrMismatchedCalendar},
		{name: "amete_alem_is_not_ethiopian", kind: KindEthiopian, locale: "am-u-ca-ethiopic-amete-alem", wantErr: ErrMismatchedCalendar},
		{name: "mismatch", kind: KindGregorian, locale: "ja-JP-u-ca-japanese", wantErr: ErrMismatchedCalendar},
		{name: "skeleton_is_not_accepted", kind: KindIslamicTabular, locale: "ar-u-ca-islamic", wantErr: ErrMismatchedCalendar},
		{name: "invalid_kind", kind: 0, locale: "en", wantErr: ErrUnsupportedCalendarKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckLocale(tt.kind, language.MustParse(tt.locale))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			var mismatch *MismatchedCalendarError
			if errors.Is(tt.wantErr, ErrMismatchedCalendar) {
				require.ErrorAs(t, err, &mismatch)
				assert.Equal(t, tt.kind, mismatch.Kind)
			}
		})
	}
}
