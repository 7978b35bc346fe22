package calendars

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	require.NotNil(t, cfg.Loader())
	require.NotNil(t, cfg.WeekResolver())
	assert.IsType(t, &StaticDataSource{}, cfg.Source)
	assert.Equal(t, defaultWeekDataSource, cfg.WeekResolver().Source())

	_, err = cfg.Loader().LoadLengths(KindGregorian, language.English)
	assert.ErrorIs(t, err, ErrUnsupportedSchema)

	info, err := cfg.WeekResolver().WeekInfo(language.MustParse("en-US"))
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, info.FirstWeekday)
}

func TestNewConfigWithDataDir(t *testing.T) {
	root := t.TempDir()
	writePayload(t, root, "datetime/indian/datelengths@1", "hi-IN.yaml", "date: {short: d/M/yy}")

	cfg, err := NewConfig(
		WithDataDir(root),
		WithSupportedKeys("datetime/indian/datelengths@1"),
	)
	require.NoError(t, err)

	src, ok := cfg.Source.(*FileDataSource)
	require.True(t, ok)
	assert.Equal(t, root, src.Root())

	payload, err := cfg.Loader().LoadLengths(KindIndian, language.MustParse("hi-IN-u-ca-indian"))
	require.NoError(t, err)
	assert.Equal(t, "date: {short: d/M/yy}", string(payload.Bytes()))

	_, err = cfg.Loader().LoadSymbols(KindIndian, language.MustParse("hi-IN"))
	assert.ErrorIs(t, err, ErrUnsupportedSchema)
}

func TestNewConfigExplicitSourceWins(t *testing.T) {
	src := NewStaticDataSource(nil)
	cfg, err := NewConfig(WithDataDir(t.TempDir()), WithDataSource(src))
	require.NoError(t, err)
	assert.Same(t, src, cfg.Source)
}

func TestNewConfigWeekDataFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "week.yaml")
	require.NoError(t, os.WriteFile(path, []byte("supplemental:\n  weekData:\n    firstDay:\n      \"FR\": \"sun\"\n"), 0o644))

	cfg, err := NewConfig(WithWeekDataFiles(path))
	require.NoError(t, err)

	first, err := cfg.WeekResolver().FirstWeekday(language.MustParse("fr-FR"))
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, first)

	minDays, err := cfg.WeekResolver().MinWeekDays(language.MustParse("fr-FR"))
	require.NoError(t, err)
	assert.Equal(t, uint8(4), minDays, "embedded table still applies")

	assert.Contains(t, cfg.WeekResolver().Source(), path)
}

func TestNewConfigWeekDataErrors(t *testing.T) {
	_, err := NewConfig(WithWeekDataFiles(filepath.Join(t.TempDir(), "missing.json")))
	assert.Error(t, err)

	_, err = NewConfig(WithWeekData(nil, "nil"))
	assert.Error(t, err)

	_, err = NewConfig(WithWeekData(&WeekData{}, "empty"), WithWeekDataFiles("week.json"))
	assert.Error(t, err)

	_, err = NewConfig(WithDataDir("  "))
	assert.Error(t, err)
}

func TestNewConfigExplicitWeekData(t *testing.T) {
	data := &WeekData{FirstDay: map[Territory]time.Weekday{DefaultTerritory: time.Sunday}}
	cfg, err := NewConfig(WithWeekData(data, "custom"))
	require.NoError(t, err)

	data.FirstDay[DefaultTerritory] = time.Tuesday

	first, err := cfg.WeekResolver().FirstWeekday(language.Und)
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, first)

	_, err = cfg.WeekResolver().MinWeekDays(language.Und)
	var missing *MissingDefaultEntryError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "custom", missing.Source)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "calendars.yaml")
	content := `
data_dir: ` + dir + `
supported_keys:
  - datetime/gregory/datelengths@1
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	fc, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, dir, fc.DataDir)

	level, err := fc.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, level)

	cfg, err := NewConfig(fc.Options()...)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, []SchemaKey{"datetime/gregory/datelengths@1"}, cfg.SupportedKeys)

	_, err = LoadConfigFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = (&FileConfig{LogLevel: "loud"}).Level()
	assert.Error(t, err)

	level, err = (*FileConfig)(nil).Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, level)
}
