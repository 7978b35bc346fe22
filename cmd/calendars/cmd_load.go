package main

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	calendars "github.com/goliatone/go-calendars"
)

var (
	loadKind     string
	loadAll      bool
	loadLocale   string
	loadCategory string
	loadWorkers  int
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load calendar data for a kind (or every kind) and locale",
	Long: `load resolves the schema key for a kind and category and requests it from
the configured source. With --all every kind is loaded concurrently and a
summary is printed; a missing payload is reported per kind.`,
	Args: cobra.NoArgs,
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().StringVarP(&loadKind, "kind", "k", "", "Calendar kind, e.g. Gregorian or IslamicCivil")
	loadCmd.Flags().BoolVar(&loadAll, "all", false, "Load every calendar kind")
	loadCmd.Flags().StringVarP(&loadLocale, "locale", "l", "und", "BCP-47 locale")
	loadCmd.Flags().StringVar(&loadCategory, "category", "lengths", "Data category: lengths, symbols, year-names, month-names, date-pattern")
	loadCmd.Flags().IntVar(&loadWorkers, "workers", 4, "Concurrent loads with --all")
}

type loadResult struct {
	kind    calendars.Kind
	payload calendars.ErasedPayload
	err     error
}

func runLoad(cmd *cobra.Command, args []string) error {
	if loadAll == (loadKind != "") {
		return errors.New("exactly one of --kind or --all is required")
	}

	locale, err := language.Parse(loadLocale)
	if err != nil {
		return fmt.Errorf("invalid locale %q: %w", loadLocale, err)
	}
	category, err := calendars.ParseCategory(loadCategory)
	if err != nil {
		return err
	}

	cfg, cleanup, err := buildConfig()
	if err != nil {
		return err
	}
	defer cleanup()

	if !loadAll {
		kind, err := calendars.ParseKind(loadKind)
		if err != nil {
			return err
		}
		if err := calendars.CheckLocale(kind, locale); err != nil {
			return err
		}
		payload, err := cfg.Loader().Load(kind, category, locale)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(payload.Bytes())
		return err
	}

	results, err := loadAllKinds(cmd, cfg.Loader(), category, locale)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tKEY\tBYTES\tERROR")
	failed := 0
	for _, res := range results {
		if res.err != nil {
			failed++
			fmt.Fprintf(w, "%s\t-\t-\t%v\n", res.kind, res.err)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t\n", res.kind, res.payload.Key(), len(res.payload.Bytes()))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	currentLogger().Info("Loaded calendar data",
		zap.String("category", string(category)),
		zap.Stringer("locale", locale),
		zap.Int("kinds", len(results)),
		zap.Int("failed", failed))
	return nil
}

// loadAllKinds loads category for every kind. Per kind errors are recorded in
// the result; only cancellation aborts the group.
func loadAllKinds(cmd *cobra.Command, loader *calendars.DataLoader, category calendars.Category, locale language.Tag) ([]loadResult, error) {
	kinds := calendars.Kinds()
	results := make([]loadResult, len(kinds))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	eg, egCtx := errgroup.WithContext(ctx)
	if loadWorkers > 0 {
		eg.SetLimit(loadWorkers)
	}

	for i, kind := range kinds {
		i, kind := i, kind
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			payload, err := loader.Load(kind, category, locale)
			results[i] = loadResult{kind: kind, payload: payload, err: err}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
