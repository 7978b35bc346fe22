package calendars

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Territory is an upper-case region code or DefaultTerritory.
type Territory string

// DefaultTerritory is the CLDR world region used when a locale has no region
// or the region has no entry of its own.
const DefaultTerritory Territory = "001"

// WeekAttribute names one supplemental week convention.
type WeekAttribute uint8

const (
	AttrFirstDay WeekAttribute = iota + 1
	AttrMinDays
	AttrWeekendStart
	AttrWeekendEnd
)

var weekAttributeNames = [...]string{
	AttrFirstDay:     "firstDay",
	AttrMinDays:      "minDays",
	AttrWeekendStart: "weekendStart",
	AttrWeekendEnd:   "weekendEnd",
}

func (a WeekAttribute) String() string {
	if a >= AttrFirstDay && int(a) < len(weekAttributeNames) {
		return weekAttributeNames[a]
	}
	return fmt.Sprintf("WeekAttribute(%d)", uint8(a))
}

// ParseWeekAttribute accepts the CLDR attribute names.
func ParseWeekAttribute(raw string) (WeekAttribute, error) {
	for i := AttrFirstDay; int(i) < len(weekAttributeNames); i++ {
		if weekAttributeNames[i] == raw {
			return i, nil
		}
	}
	return 0, fmt.Errorf("calendars: unknown week attribute %q", raw)
}

// WeekData holds the supplemental week tables, one map per attribute. Each
// attribute falls back to DefaultTerritory independently.
type WeekData struct {
	FirstDay     map[Territory]time.Weekday
	MinDays      map[Territory]uint8
	WeekendStart map[Territory]time.Weekday
	WeekendEnd   map[Territory]time.Weekday
}

// Clone returns a deep copy of d.
func (d *WeekData) Clone() *WeekData {
	if d == nil {
		return nil
	}
	return &WeekData{
		FirstDay:     cloneTerritoryMap(d.FirstDay),
		MinDays:      cloneTerritoryMap(d.MinDays),
		WeekendStart: cloneTerritoryMap(d.WeekendStart),
		WeekendEnd:   cloneTerritoryMap(d.WeekendEnd),
	}
}

// Merge copies every entry of src into d, replacing existing territories.
func (d *WeekData) Merge(src *WeekData) {
	if d == nil || src == nil {
		return
	}
	d.FirstDay = mergeTerritoryMap(d.FirstDay, src.FirstDay)
	d.MinDays = mergeTerritoryMap(d.MinDays, src.MinDays)
	d.WeekendStart = mergeTerritoryMap(d.WeekendStart, src.WeekendStart)
	d.WeekendEnd = mergeTerritoryMap(d.WeekendEnd, src.WeekendEnd)
}

// Territories returns the regions that carry first day or minimum days data,
// excluding the default, sorted.
func (d *WeekData) Territories() []Territory {
	if d == nil {
		return nil
	}
	seen := make(map[Territory]struct{}, len(d.FirstDay)+len(d.MinDays))
	for t := range d.FirstDay {
		seen[t] = struct{}{}
	}
	for t := range d.MinDays {
		seen[t] = struct{}{}
	}
	delete(seen, DefaultTerritory)

	out := make([]Territory, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func cloneTerritoryMap[V any](in map[Territory]V) map[Territory]V {
	if in == nil {
		return nil
	}
	out := make(map[Territory]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func mergeTerritoryMap[V any](dst, src map[Territory]V) map[Territory]V {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[Territory]V, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// WeekInfo is the resolved week convention for one locale.
type WeekInfo struct {
	FirstWeekday time.Weekday
	MinWeekDays  uint8
	Weekend      WeekdaySet
}

// WeekResolver resolves week attributes for locales by region then default lookup.
type WeekResolver struct {
	data   *WeekData
	source string
	logger *zap.Logger
}

// WeekResolverOption configures a WeekResolver
type WeekResolverOption func(*WeekResolver)

func WithWeekLogger(logger *zap.Logger) WeekResolverOption {
	return func(r *WeekResolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewWeekResolver wraps data. source identifies the data in error messages,
// typically the file it was read from.
func NewWeekResolver(data *WeekData, source string, opts ...WeekResolverOption) *WeekResolver {
	if data == nil {
		data = &WeekData{}
	}
	r := &WeekResolver{
		data:   data,
		source: source,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Source returns the identity of the resolver's data.
func (r *WeekResolver) Source() string {
	return r.source
}

// Resolve returns the value of attribute for locale. Weekdays are returned as
// time.Weekday values, minimum days as a count.
func (r *WeekResolver) Resolve(attribute WeekAttribute, locale language.Tag) (int, error) {
	territory := r.territory(locale)
	switch attribute {
	case AttrFirstDay:
		v, err := r.weekday(attribute, r.data.FirstDay, territory)
		return int(v), err
	case AttrMinDays:
		v, err := lookupTerritory(r, attribute, r.data.MinDays, territory)
		return int(v), err
	case AttrWeekendStart:
		v, err := r.weekday(attribute, r.data.WeekendStart, territory)
		return int(v), err
	case AttrWeekendEnd:
		v, err := r.weekday(attribute, r.data.WeekendEnd, territory)
		return int(v), err
	default:
		return 0, fmt.Errorf("calendars: unknown week attribute %s", attribute)
	}
}

func (r *WeekResolver) FirstWeekday(locale language.Tag) (time.Weekday, error) {
	return r.weekday(AttrFirstDay, r.data.FirstDay, r.territory(locale))
}

func (r *WeekResolver) MinWeekDays(locale language.Tag) (uint8, error) {
	return lookupTerritory(r, AttrMinDays, r.data.MinDays, r.territory(locale))
}

// Weekend returns the set made of the weekend start and end days. Start and
// end resolve independently, so a region may inherit either from the default.
func (r *WeekResolver) Weekend(locale language.Tag) (WeekdaySet, error) {
	territory := r.territory(locale)
	start, err := r.weekday(AttrWeekendStart, r.data.WeekendStart, territory)
	if err != nil {
		return 0, err
	}
	end, err := r.weekday(AttrWeekendEnd, r.data.WeekendEnd, territory)
	if err != nil {
		return 0, err
	}
	return NewWeekdaySet(start, end), nil
}

// WeekInfo resolves every attribute for locale.
func (r *WeekResolver) WeekInfo(locale language.Tag) (WeekInfo, error) {
	first, err := r.FirstWeekday(locale)
	if err != nil {
		return WeekInfo{}, err
	}
	minDays, err := r.MinWeekDays(locale)
	if err != nil {
		return WeekInfo{}, err
	}
	weekend, err := r.Weekend(locale)
	if err != nil {
		return WeekInfo{}, err
	}
	return WeekInfo{FirstWeekday: first, MinWeekDays: minDays, Weekend: weekend}, nil
}

func (r *WeekResolver) territory(locale language.Tag) Territory {
	if territory, ok := territoryOf(locale); ok {
		return territory
	}
	return DefaultTerritory
}

func (r *WeekResolver) weekday(attribute WeekAttribute, table map[Territory]time.Weekday, territory Territory) (time.Weekday, error) {
	return lookupTerritory(r, attribute, table, territory)
}

// lookupTerritory reads territory from table, retrying with DefaultTerritory.
func lookupTerritory[V any](r *WeekResolver, attribute WeekAttribute, table map[Territory]V, territory Territory) (V, error) {
	if v, ok := table[territory]; ok {
		return v, nil
	}
	if v, ok := table[DefaultTerritory]; ok {
		if territory != DefaultTerritory {
			r.logger.Debug("week attribute uses default territory",
				zap.Stringer("attribute", attribute),
				zap.String("territory", string(territory)),
			)
		}
		return v, nil
	}

	r.logger.Error("week data has no default entry",
		zap.Stringer("attribute", attribute),
		zap.String("source", r.source),
	)
	var zero V
	return zero, &MissingDefaultEntryError{Attribute: attribute, Source: r.source}
}

var defaultWeekResolver = NewWeekResolver(defaultWeekData, defaultWeekDataSource)

// ResolveWeekAttribute resolves attribute for locale against the embedded CLDR table.
func ResolveWeekAttribute(attribute WeekAttribute, locale language.Tag) (int, error) {
	return defaultWeekResolver.Resolve(attribute, locale)
}

// DefaultWeekResolver returns a resolver over the embedded CLDR table.
func DefaultWeekResolver() *WeekResolver {
	return defaultWeekResolver
}

// DefaultWeekData returns a copy of the embedded CLDR week table.
func DefaultWeekData() *WeekData {
	return defaultWeekData.Clone()
}
