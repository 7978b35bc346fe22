package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var weekCmd = &cobra.Command{
	Use:   "week <locale>...",
	Short: "Resolve first weekday, minimal days and weekend for locales",
	Long: `week resolves each attribute from the locale's region, falling back to the
world region (001) per attribute. A locale without a region uses 001.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWeek,
}

func runWeek(cmd *cobra.Command, args []string) error {
	cfg, cleanup, err := buildConfig()
	if err != nil {
		return err
	}
	defer cleanup()

	resolver := cfg.WeekResolver()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LOCALE\tFIRST DAY\tMIN DAYS\tWEEKEND")
	for _, raw := range args {
		locale, err := language.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid locale %q: %w", raw, err)
		}
		info, err := resolver.WeekInfo(locale)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", locale, info.FirstWeekday, info.MinWeekDays, info.Weekend)
	}
	return w.Flush()
}
