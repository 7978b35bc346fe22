package calendars

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config captures data source and week data setup
type Config struct {
	Source        DataSource
	DataDir       string
	SupportedKeys []SchemaKey
	WeekDataFiles []string
	Logger        *zap.Logger

	weekData   *WeekData
	weekSource string
	loader     *DataLoader
	resolver   *WeekResolver
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	if cfg.Source == nil {
		if cfg.DataDir != "" {
			cfg.Source = NewFileDataSource(cfg.DataDir).WithSupportedKeys(cfg.SupportedKeys...)
		} else {
			cfg.Source = NewStaticDataSource(nil)
		}
	}

	if err := cfg.applyWeekData(); err != nil {
		return nil, err
	}

	cfg.loader = NewDataLoader(cfg.Source, WithLoaderLogger(cfg.Logger.Named("loader")))
	cfg.resolver = NewWeekResolver(cfg.weekData, cfg.weekSource, WithWeekLogger(cfg.Logger.Named("week")))

	return cfg, nil
}

// WithDataSource sets the source used for lengths and symbols
func WithDataSource(source DataSource) Option {
	return func(c *Config) error {
		c.Source = source
		return nil
	}
}

// WithDataDir serves payloads from a FileDataSource rooted at dir
func WithDataDir(dir string) Option {
	return func(c *Config) error {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			return fmt.Errorf("calendars: empty data directory")
		}
		c.DataDir = dir
		return nil
	}
}

func WithSupportedKeys(keys ...SchemaKey) Option {
	return func(c *Config) error {
		c.SupportedKeys = append(c.SupportedKeys, keys...)
		return nil
	}
}

// WithWeekDataFiles merges week data files over the embedded CLDR table
func WithWeekDataFiles(paths ...string) Option {
	return func(c *Config) error {
		c.WeekDataFiles = append(c.WeekDataFiles, paths...)
		return nil
	}
}

// WithWeekData replaces the week table entirely. source names it in errors.
func WithWeekData(data *WeekData, source string) Option {
	return func(c *Config) error {
		if data == nil {
			return fmt.Errorf("calendars: nil week data")
		}
		c.weekData = data.Clone()
		c.weekSource = source
		return nil
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// Loader returns the dynamic loader bound to the configured source
func (cfg *Config) Loader() *DataLoader {
	return cfg.loader
}

// WeekResolver returns the resolver over the configured week data
func (cfg *Config) WeekResolver() *WeekResolver {
	return cfg.resolver
}

func (cfg *Config) applyWeekData() error {
	if cfg.weekData != nil {
		if len(cfg.WeekDataFiles) > 0 {
			return fmt.Errorf("calendars: week data files cannot be combined with an explicit week table")
		}
		return nil
	}

	cfg.weekData = DefaultWeekData()
	cfg.weekSource = defaultWeekDataSource

	if len(cfg.WeekDataFiles) == 0 {
		return nil
	}

	overrides, err := LoadWeekDataFiles(cfg.WeekDataFiles...)
	if err != nil {
		return err
	}
	cfg.weekData.Merge(overrides)
	cfg.weekSource = strings.Join(append([]string{defaultWeekDataSource}, cfg.WeekDataFiles...), ",")
	return nil
}

// FileConfig is the YAML shape read by LoadConfigFile.
type FileConfig struct {
	DataDir       string   `yaml:"data_dir"`
	WeekData      []string `yaml:"week_data"`
	SupportedKeys []string `yaml:"supported_keys"`
	LogLevel      string   `yaml:"log_level"`
}

// LoadConfigFile reads a YAML configuration file.
func LoadConfigFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("calendars: read config %s: %w", path, err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("calendars: yaml parse error in %s: %w", path, err)
	}
	return &fc, nil
}

// Options converts the file settings to Config options.
func (fc *FileConfig) Options() []Option {
	if fc == nil {
		return nil
	}
	var opts []Option
	if fc.DataDir != "" {
		opts = append(opts, WithDataDir(fc.DataDir))
	}
	if len(fc.SupportedKeys) > 0 {
		keys := make([]SchemaKey, 0, len(fc.SupportedKeys))
		for _, key := range fc.SupportedKeys {
			keys = append(keys, SchemaKey(strings.TrimSpace(key)))
		}
		opts = append(opts, WithSupportedKeys(keys...))
	}
	if len(fc.WeekData) > 0 {
		opts = append(opts, WithWeekDataFiles(fc.WeekData...))
	}
	return opts
}

// Level parses LogLevel, defaulting to info.
func (fc *FileConfig) Level() (zapcore.Level, error) {
	if fc == nil || fc.LogLevel == "" {
		return zapcore.InfoLevel, nil
	}
	level, err := zapcore.ParseLevel(fc.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("calendars: log_level: %w", err)
	}
	return level, nil
}
