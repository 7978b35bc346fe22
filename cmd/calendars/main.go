package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	calendars "github.com/goliatone/go-calendars"
	"github.com/goliatone/go-calendars/sqlsource"
)

var (
	// Global flags
	verbose       bool
	configPath    string
	dataDir       string
	sqlitePath    string
	weekDataFiles []string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "calendars",
	Short: "Inspect calendar kinds and load calendar locale data",
	Long: `calendars resolves calendar systems named by locales and loads their
versioned date lengths, symbols and week conventions.

Data is read from a directory tree (--data-dir) or a SQLite database (--sqlite).
Week data defaults to the embedded CLDR table.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zapcore.InfoLevel
		if configPath != "" {
			fc, err := calendars.LoadConfigFile(configPath)
			if err != nil {
				return err
			}
			if level, err = fc.Level(); err != nil {
				return err
			}
		}

		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory holding <schema key>/<locale>.yaml payloads")
	rootCmd.PersistentFlags().StringVar(&sqlitePath, "sqlite", "", "SQLite database holding the calendar_data table")
	rootCmd.PersistentFlags().StringSliceVar(&weekDataFiles, "week-data", nil, "Week data files merged over the embedded CLDR table")

	rootCmd.AddCommand(kindsCmd)
	rootCmd.AddCommand(acceptsCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(genCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildConfig assembles library options from the config file and flags.
// Flags win over file settings. The returned cleanup closes any database.
func buildConfig() (*calendars.Config, func(), error) {
	cleanup := func() {}
	var opts []calendars.Option

	if configPath != "" {
		fc, err := calendars.LoadConfigFile(configPath)
		if err != nil {
			return nil, cleanup, err
		}
		opts = append(opts, fc.Options()...)
	}

	if dataDir != "" {
		opts = append(opts, calendars.WithDataDir(dataDir))
	}

	if sqlitePath != "" {
		src, err := sqlsource.Open(sqlitePath)
		if err != nil {
			return nil, cleanup, err
		}
		cleanup = func() {
			if err := src.Close(); err != nil {
				currentLogger().Warn("close sqlite source", zap.Error(err))
			}
		}
		opts = append(opts, calendars.WithDataSource(src))
	}

	if len(weekDataFiles) > 0 {
		opts = append(opts, calendars.WithWeekDataFiles(weekDataFiles...))
	}

	opts = append(opts, calendars.WithLogger(currentLogger()))

	cfg, err := calendars.NewConfig(opts...)
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}
	return cfg, cleanup, nil
}

func currentLogger() *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
