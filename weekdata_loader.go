package calendars

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// cldrWeekDataFile mirrors supplemental/weekData.json from cldr-json.
type cldrWeekDataFile struct {
	Supplemental struct {
		WeekData cldrWeekData `json:"weekData" yaml:"weekData"`
	} `json:"supplemental" yaml:"supplemental"`
}

type cldrWeekData struct {
	MinDays      map[string]string `json:"minDays" yaml:"minDays"`
	FirstDay     map[string]string `json:"firstDay" yaml:"firstDay"`
	WeekendStart map[string]string `json:"weekendStart" yaml:"weekendStart"`
	WeekendEnd   map[string]string `json:"weekendEnd" yaml:"weekendEnd"`
}

var cldrWeekdays = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// ReadWeekData decodes CLDR week data. JSON input follows cldr-json's
// supplemental/weekData.json; YAML input uses the same keys. Alternate
// variants such as "GB-alt-variant" are skipped. name is used in errors.
func ReadWeekData(name string, data []byte) (*WeekData, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("calendars: empty week data %s", name)
	}

	var raw cldrWeekDataFile
	if trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, fmt.Errorf("calendars: decode %s: %w", name, err)
		}
	} else {
		if err := yaml.Unmarshal(trimmed, &raw); err != nil {
			return nil, fmt.Errorf("calendars: yaml parse error in %s: %w", name, err)
		}
	}

	src := raw.Supplemental.WeekData
	out := &WeekData{}
	var err error

	if out.FirstDay, err = readWeekdayTable(AttrFirstDay, src.FirstDay); err != nil {
		return nil, fmt.Errorf("calendars: %s: %w", name, err)
	}
	if out.WeekendStart, err = readWeekdayTable(AttrWeekendStart, src.WeekendStart); err != nil {
		return nil, fmt.Errorf("calendars: %s: %w", name, err)
	}
	if out.WeekendEnd, err = readWeekdayTable(AttrWeekendEnd, src.WeekendEnd); err != nil {
		return nil, fmt.Errorf("calendars: %s: %w", name, err)
	}
	if out.MinDays, err = readMinDaysTable(src.MinDays); err != nil {
		return nil, fmt.Errorf("calendars: %s: %w", name, err)
	}

	return out, nil
}

// LoadWeekDataFiles reads and merges week data files; later files win per territory.
func LoadWeekDataFiles(paths ...string) (*WeekData, error) {
	if len(paths) == 0 {
		return nil, errors.New("calendars: no week data paths configured")
	}

	merged := &WeekData{}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("calendars: read %s: %w", path, err)
		}
		parsed, err := ReadWeekData(filepath.Base(path), data)
		if err != nil {
			return nil, err
		}
		merged.Merge(parsed)
	}
	return merged, nil
}

func readWeekdayTable(attribute WeekAttribute, raw map[string]string) (map[Territory]time.Weekday, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[Territory]time.Weekday, len(raw))
	for key, value := range raw {
		territory, ok := parseTerritoryKey(key)
		if !ok {
			continue
		}
		day, ok := cldrWeekdays[strings.ToLower(strings.TrimSpace(value))]
		if !ok {
			return nil, fmt.Errorf("%s for %s: unknown weekday %q", attribute, key, value)
		}
		out[territory] = day
	}
	return out, nil
}

func readMinDaysTable(raw map[string]string) (map[Territory]uint8, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[Territory]uint8, len(raw))
	for key, value := range raw {
		territory, ok := parseTerritoryKey(key)
		if !ok {
			continue
		}
		n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 8)
		if err != nil || n < 1 || n > 7 {
			return nil, fmt.Errorf("%s for %s: invalid value %q", AttrMinDays, key, value)
		}
		out[territory] = uint8(n)
	}
	return out, nil
}

// parseTerritoryKey rejects alternate variants.
func parseTerritoryKey(key string) (Territory, bool) {
	key = strings.TrimSpace(key)
	if key == "" || strings.Contains(key, "-alt-") {
		return "", false
	}
	return Territory(strings.ToUpper(key)), true
}
