package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	cldr "golang.org/x/text/unicode/cldr"
)

type weekGenConfig struct {
	pkg      string
	out      string
	cldrPath string
	format   string
}

var genWeek weekGenConfig

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate embedded data from CLDR sources",
}

var genWeekDataCmd = &cobra.Command{
	Use:   "weekdata",
	Short: "Generate the week data table from CLDR supplementalData.xml",
	Long: `weekdata reads weekData from a CLDR core checkout and writes either the
Go table embedded by the calendars package (--format go) or a cldr-json style
weekData.json accepted by --week-data (--format json).`,
	Args: cobra.NoArgs,
	RunE: runGenWeekData,
}

func init() {
	genWeekDataCmd.Flags().StringVar(&genWeek.pkg, "pkg", "calendars", "package name for generated file")
	genWeekDataCmd.Flags().StringVar(&genWeek.out, "out", "weekdata_cldr_data.go", "path to generated file")
	genWeekDataCmd.Flags().StringVar(&genWeek.cldrPath, "cldr", "", "path to CLDR core data directory (expects supplemental/)")
	genWeekDataCmd.Flags().StringVar(&genWeek.format, "format", "go", "output format: go or json")

	genCmd.AddCommand(genWeekDataCmd)
}

// weekTables maps attribute name to territory to CLDR value ("mon", "4").
type weekTables struct {
	MinDays      map[string]string `json:"minDays"`
	FirstDay     map[string]string `json:"firstDay"`
	WeekendStart map[string]string `json:"weekendStart"`
	WeekendEnd   map[string]string `json:"weekendEnd"`
}

// territoryValue is one weekData element flattened out of the CLDR structs.
type territoryValue struct {
	value       string
	territories string
	alt         string
}

func runGenWeekData(cmd *cobra.Command, args []string) error {
	cfg := genWeek
	if cfg.cldrPath == "" {
		cfg.cldrPath = os.Getenv("CLDR_CORE_DIR")
	}
	if cfg.cldrPath == "" {
		return errors.New("missing CLDR data directory (set --cldr or CLDR_CORE_DIR)")
	}

	data, err := loadCLDR(cfg.cldrPath)
	if err != nil {
		return err
	}

	tables, err := extractWeekData(data.Supplemental())
	if err != nil {
		return err
	}

	var source []byte
	switch cfg.format {
	case "go":
		source, err = renderWeekDataSource(cfg.pkg, tables)
	case "json":
		source, err = renderWeekDataJSON(tables)
	default:
		err = fmt.Errorf("unknown format %q", cfg.format)
	}
	if err != nil {
		return err
	}

	if err := ensureDir(cfg.out); err != nil {
		return err
	}
	if err := os.WriteFile(cfg.out, source, 0o644); err != nil {
		return err
	}

	currentLogger().Info("Generated week data",
		zap.String("out", cfg.out),
		zap.String("format", cfg.format),
		zap.Int("first_day", len(tables.FirstDay)),
		zap.Int("min_days", len(tables.MinDays)))
	return nil
}

func loadCLDR(path string) (*cldr.CLDR, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat CLDR directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("CLDR path %q is not a directory", path)
	}

	var decoder cldr.Decoder
	decoder.SetSectionFilter("supplemental")

	data, err := decoder.DecodePath(path)
	if err != nil {
		return nil, fmt.Errorf("decode CLDR data: %w", err)
	}
	return data, nil
}

func extractWeekData(supplemental *cldr.SupplementalData) (weekTables, error) {
	if supplemental == nil || supplemental.WeekData == nil {
		return weekTables{}, errors.New("CLDR data has no supplemental weekData")
	}
	week := supplemental.WeekData

	var minDays, firstDay, weekendStart, weekendEnd []territoryValue
	for _, e := range week.MinDays {
		if e != nil {
			minDays = append(minDays, territoryValue{value: e.Count, territories: e.Territories, alt: e.Alt})
		}
	}
	for _, e := range week.FirstDay {
		if e != nil {
			firstDay = append(firstDay, territoryValue{value: e.Day, territories: e.Territories, alt: e.Alt})
		}
	}
	for _, e := range week.WeekendStart {
		if e != nil {
			weekendStart = append(weekendStart, territoryValue{value: e.Day, territories: e.Territories, alt: e.Alt})
		}
	}
	for _, e := range week.WeekendEnd {
		if e != nil {
			weekendEnd = append(weekendEnd, territoryValue{value: e.Day, territories: e.Territories, alt: e.Alt})
		}
	}

	tables := weekTables{
		MinDays:      expandTerritories(minDays),
		FirstDay:     expandTerritories(firstDay),
		WeekendStart: expandTerritories(weekendStart),
		WeekendEnd:   expandTerritories(weekendEnd),
	}

	for name, table := range map[string]map[string]string{
		"minDays":      tables.MinDays,
		"firstDay":     tables.FirstDay,
		"weekendStart": tables.WeekendStart,
		"weekendEnd":   tables.WeekendEnd,
	} {
		if _, ok := table["001"]; !ok {
			return weekTables{}, fmt.Errorf("weekData %s has no 001 entry", name)
		}
	}
	return tables, nil
}

// expandTerritories flattens space separated territory lists. Alternate
// variants are skipped.
func expandTerritories(entries []territoryValue) map[string]string {
	out := make(map[string]string)
	for _, entry := range entries {
		if entry.alt != "" {
			continue
		}
		for _, territory := range strings.Fields(entry.territories) {
			out[strings.ToUpper(territory)] = strings.TrimSpace(entry.value)
		}
	}
	return out
}

var goWeekdays = map[string]string{
	"sun": "time.Sunday",
	"mon": "time.Monday",
	"tue": "time.Tuesday",
	"wed": "time.Wednesday",
	"thu": "time.Thursday",
	"fri": "time.Friday",
	"sat": "time.Saturday",
}

func renderWeekDataSource(pkg string, tables weekTables) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by calendars gen weekdata. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	buf.WriteString("import \"time\"\n\n")
	buf.WriteString("const defaultWeekDataSource = \"cldr supplemental/supplementalData.xml#weekData\"\n\n")
	buf.WriteString("var defaultWeekData = &WeekData{\n")

	weekdayBlock := func(name string, table map[string]string) error {
		fmt.Fprintf(&buf, "\t%s: map[Territory]time.Weekday{\n", name)
		for _, territory := range sortedKeys(table) {
			day, ok := goWeekdays[table[territory]]
			if !ok {
				return fmt.Errorf("%s for %s: unknown weekday %q", name, territory, table[territory])
			}
			fmt.Fprintf(&buf, "\t\t%q: %s,\n", territory, day)
		}
		buf.WriteString("\t},\n")
		return nil
	}

	if err := weekdayBlock("FirstDay", tables.FirstDay); err != nil {
		return nil, err
	}

	buf.WriteString("\tMinDays: map[Territory]uint8{\n")
	for _, territory := range sortedKeys(tables.MinDays) {
		fmt.Fprintf(&buf, "\t\t%q: %s,\n", territory, tables.MinDays[territory])
	}
	buf.WriteString("\t},\n")

	if err := weekdayBlock("WeekendStart", tables.WeekendStart); err != nil {
		return nil, err
	}
	if err := weekdayBlock("WeekendEnd", tables.WeekendEnd); err != nil {
		return nil, err
	}
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}

func renderWeekDataJSON(tables weekTables) ([]byte, error) {
	doc := map[string]any{
		"supplemental": map[string]any{
			"weekData": tables,
		},
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
