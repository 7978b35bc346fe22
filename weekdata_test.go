package calendars

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/text/language"
)

func TestResolveWeekAttributeFallback(t *testing.T) {
	tests := []struct {
		locale    string
		attribute WeekAttribute
		want      int
	}{
		{locale: "und", attribute: AttrFirstDay, want: int(time.Monday)},
		{locale: "und", attribute: AttrMinDays, want: 1},
		{locale: "und-FR", attribute: AttrMinDays, want: 4},
		{locale: "und-FR", attribute: AttrFirstDay, want: int(time.Monday)},
		// IQ only defines firstDay; minDays comes from 001.
		{locale: "und-IQ", attribute: AttrFirstDay, want: int(time.Saturday)},
		{locale: "und-IQ", attribute: AttrMinDays, want: 1},
		// GG only defines minDays; firstDay comes from 001.
		{locale: "und-GG", attribute: AttrMinDays, want: 4},
		{locale: "und-GG", attribute: AttrFirstDay, want: int(time.Monday)},
		{locale: "en-US", attribute: AttrFirstDay, want: int(time.Sunday)},
		{locale: "dv-MV", attribute: AttrFirstDay, want: int(time.Friday)},
		{locale: "und-IR", attribute: AttrWeekendStart, want: int(time.Friday)},
		{locale: "und-IR", attribute: AttrWeekendEnd, want: int(time.Friday)},
	}

	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.attribute.String(), func(t *testing.T) {
			got, err := ResolveWeekAttribute(tt.attribute, language.MustParse(tt.locale))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveSparseTableFallback(t *testing.T) {
	data := &WeekData{
		FirstDay: map[Territory]time.Weekday{
			DefaultTerritory: time.Monday,
			"IQ":             time.Saturday,
		},
		MinDays: map[Territory]uint8{
			DefaultTerritory: 1,
			"FR":             4,
			"GG":             4,
		},
	}

	tests := []struct {
		locale    string
		attribute WeekAttribute
		want      int
		fallback  bool
	}{
		{locale: "und", attribute: AttrFirstDay, want: int(time.Monday)},
		{locale: "und", attribute: AttrMinDays, want: 1},
		{locale: "und-FR", attribute: AttrMinDays, want: 4},
		{locale: "und-FR", attribute: AttrFirstDay, want: int(time.Monday), fallback: true},
		{locale: "und-IQ", attribute: AttrFirstDay, want: int(time.Saturday)},
		{locale: "und-IQ", attribute: AttrMinDays, want: 1, fallback: true},
		{locale: "und-GG", attribute: AttrMinDays, want: 4},
		{locale: "und-GG", attribute: AttrFirstDay, want: int(time.Monday), fallback: true},
	}

	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.attribute.String(), func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			resolver := NewWeekResolver(data, "sparse", WithWeekLogger(zap.New(core)))

			got, err := resolver.Resolve(tt.attribute, language.MustParse(tt.locale))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			fallbacks := logs.FilterMessage("week attribute uses default territory").Len()
			if tt.fallback {
				assert.Equal(t, 1, fallbacks)
			} else {
				assert.Zero(t, fallbacks)
			}
		})
	}
}

func TestLocaleWithoutRegionUsesDefault(t *testing.T) {
	// "fr" implies FR through likely subtags, but only explicit regions count.
	resolver := DefaultWeekResolver()
	minDays, err := resolver.MinWeekDays(language.MustParse("fr"))
	require.NoError(t, err)
	assert.Equal(t, uint8(1), minDays)

	minDays, err = resolver.MinWeekDays(language.MustParse("fr-FR"))
	require.NoError(t, err)
	assert.Equal(t, uint8(4), minDays)
}

func TestWeekInfo(t *testing.T) {
	resolver := DefaultWeekResolver()

	tests := []struct {
		locale string
		want   WeekInfo
	}{
		{
			locale: "und",
			want:   WeekInfo{FirstWeekday: time.Monday, MinWeekDays: 1, Weekend: NewWeekdaySet(time.Saturday, time.Sunday)},
		},
		{
			locale: "ar-IQ",
			want:   WeekInfo{FirstWeekday: time.Saturday, MinWeekDays: 1, Weekend: NewWeekdaySet(time.Friday, time.Saturday)},
		},
		{
			locale: "fa-IR",
			want:   WeekInfo{FirstWeekday: time.Saturday, MinWeekDays: 1, Weekend: NewWeekdaySet(time.Friday)},
		},
		{
			locale: "en-GG",
			want:   WeekInfo{FirstWeekday: time.Monday, MinWeekDays: 4, Weekend: NewWeekdaySet(time.Saturday, time.Sunday)},
		},
		{
			locale: "hi-IN",
			want:   WeekInfo{FirstWeekday: time.Sunday, MinWeekDays: 1, Weekend: NewWeekdaySet(time.Sunday)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			got, err := resolver.WeekInfo(language.MustParse(tt.locale))
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("week info mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMissingDefaultEntry(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	data := &WeekData{
		FirstDay: map[Territory]time.Weekday{"US": time.Sunday},
		MinDays:  map[Territory]uint8{DefaultTerritory: 1},
	}
	resolver := NewWeekResolver(data, "broken.json", WithWeekLogger(zap.New(core)))

	got, err := resolver.Resolve(AttrFirstDay, language.MustParse("en-US"))
	require.NoError(t, err)
	assert.Equal(t, int(time.Sunday), got)

	_, err = resolver.Resolve(AttrFirstDay, language.MustParse("de-DE"))
	var missing *MissingDefaultEntryError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, AttrFirstDay, missing.Attribute)
	assert.Equal(t, "broken.json", missing.Source)
	assert.ErrorIs(t, err, ErrMissingDefaultEntry)
	assert.Contains(t, err.Error(), "firstDay")

	_, err = resolver.Weekend(language.MustParse("en-US"))
	assert.ErrorIs(t, err, ErrMissingDefaultEntry)

	_, err = resolver.WeekInfo(language.MustParse("en-US"))
	assert.ErrorIs(t, err, ErrMissingDefaultEntry)

	assert.Equal(t, 3, logs.Len())
}

func TestResolveUnknownAttribute(t *testing.T) {
	_, err := ResolveWeekAttribute(WeekAttribute(9), language.Und)
	assert.Error(t, err)
	assert.Equal(t, "WeekAttribute(9)", WeekAttribute(9).String())
}

func TestParseWeekAttribute(t *testing.T) {
	attr, err := ParseWeekAttribute("weekendStart")
	require.NoError(t, err)
	assert.Equal(t, AttrWeekendStart, attr)

	_, err = ParseWeekAttribute("weekOfPreference")
	assert.Error(t, err)
}

const weekDataJSON = `{
  "supplemental": {
    "version": {"_unicodeVersion": "15.1.0"},
    "weekData": {
      "minDays": {"001": "1", "GB": "4", "GG": "4"},
      "firstDay": {"001": "mon", "GB": "mon", "GB-alt-variant": "sun", "IQ": "sat"},
      "weekendStart": {"001": "sat", "IR": "fri"},
      "weekendEnd": {"001": "sun", "IR": "fri"},
      "weekOfPreference": {"001": "weekOfYear"}
    }
  }
}`

func TestReadWeekDataJSON(t *testing.T) {
	data, err := ReadWeekData("weekData.json", []byte(weekDataJSON))
	require.NoError(t, err)

	want := &WeekData{
		FirstDay:     map[Territory]time.Weekday{"001": time.Monday, "GB": time.Monday, "IQ": time.Saturday},
		MinDays:      map[Territory]uint8{"001": 1, "GB": 4, "GG": 4},
		WeekendStart: map[Territory]time.Weekday{"001": time.Saturday, "IR": time.Friday},
		WeekendEnd:   map[Territory]time.Weekday{"001": time.Sunday, "IR": time.Friday},
	}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Fatalf("week data mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, []Territory{"GB", "GG", "IQ"}, data.Territories())
}

func TestReadWeekDataYAML(t *testing.T) {
	input := `
supplemental:
  weekData:
    minDays:
      "001": "1"
      "PT": "4"
    firstDay:
      "001": "mon"
      "PT": "sun"
`
	data, err := ReadWeekData("week.yaml", []byte(input))
	require.NoError(t, err)

	resolver := NewWeekResolver(data, "week.yaml")
	first, err := resolver.FirstWeekday(language.MustParse("pt-PT"))
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, first)

	_, err = resolver.Weekend(language.MustParse("pt-PT"))
	assert.ErrorIs(t, err, ErrMissingDefaultEntry)
}

func TestReadWeekDataInvalid(t *testing.T) {
	tests := map[string]string{
		"empty":        "",
		"bad_json":     `{"supplemental": `,
		"bad_weekday":  `{"supplemental": {"weekData": {"firstDay": {"001": "someday"}}}}`,
		"bad_min_days": `{"supplemental": {"weekData": {"minDays": {"001": "9"}}}}`,
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ReadWeekData(name, []byte(input))
			assert.Error(t, err)
		})
	}
}

func TestLoadWeekDataFilesMerges(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "weekData.json")
	override := filepath.Join(dir, "override.yaml")
	require.NoError(t, os.WriteFile(base, []byte(weekDataJSON), 0o644))
	require.NoError(t, os.WriteFile(override, []byte("supplemental:\n  weekData:\n    firstDay:\n      \"GB\": \"sun\"\n"), 0o644))

	data, err := LoadWeekDataFiles(base, override)
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, data.FirstDay["GB"])
	assert.Equal(t, time.Saturday, data.FirstDay["IQ"])
	assert.Equal(t, uint8(4), data.MinDays["GB"])

	_, err = LoadWeekDataFiles()
	assert.Error(t, err)

	_, err = LoadWeekDataFiles(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestDefaultWeekDataIsCopy(t *testing.T) {
	data := DefaultWeekData()
	data.FirstDay[DefaultTerritory] = time.Wednesday

	got, err := ResolveWeekAttribute(AttrFirstDay, language.Und)
	require.NoError(t, err)
	assert.Equal(t, int(time.Monday), got)

	for _, table := range []int{len(data.FirstDay), len(data.MinDays), len(data.WeekendStart), len(data.WeekendEnd)} {
		assert.Positive(t, table)
	}
	assert.Contains(t, data.Territories(), Territory("FR"))
	assert.NotContains(t, data.Territories(), DefaultTerritory)
}

func TestWeekdaySet(t *testing.T) {
	set := NewWeekdaySet(time.Saturday, time.Friday, time.Saturday, time.Weekday(9))
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains(time.Friday))
	assert.False(t, set.Contains(time.Sunday))
	assert.False(t, set.Contains(time.Weekday(-1)))
	assert.Equal(t, []time.Weekday{time.Friday, time.Saturday}, set.Days())
	assert.Equal(t, "{Friday, Saturday}", set.String())

	assert.Equal(t, NewWeekdaySet(time.Sunday, time.Saturday), NewWeekdaySet(time.Saturday, time.Sunday))
	assert.Equal(t, "{}", WeekdaySet(0).String())
}
