package calendars

import "fmt"

// DateLengths contains the length patterns for one calendar and locale
type DateLengths struct {
	Date     LengthPatterns `json:"date" yaml:"date"`
	Time     LengthPatterns `json:"time" yaml:"time"`
	DateTime LengthPatterns `json:"datetime" yaml:"datetime"`
}

// LengthPatterns holds CLDR patterns by length. DateTime patterns are glue
// patterns with {0} for the time and {1} for the date.
type LengthPatterns struct {
	Full   string `json:"full" yaml:"full"`
	Long   string `json:"long" yaml:"long"`
	Medium string `json:"medium" yaml:"medium"`
	Short  string `json:"short" yaml:"short"`
}

// DateSymbols contains month, weekday and era names for one calendar and locale
type DateSymbols struct {
	Months   SymbolContexts `json:"months" yaml:"months"`
	Weekdays SymbolContexts `json:"weekdays" yaml:"weekdays"`
	Eras     EraNames       `json:"eras" yaml:"eras"`
}

// SymbolContexts splits symbols by formatting context.
type SymbolContexts struct {
	Format     SymbolWidths  `json:"format" yaml:"format"`
	StandAlone *SymbolWidths `json:"stand_alone,omitempty" yaml:"stand_alone,omitempty"`
}

type SymbolWidths struct {
	Abbreviated []string `json:"abbreviated" yaml:"abbreviated"`
	Narrow      []string `json:"narrow" yaml:"narrow"`
	Short       []string `json:"short,omitempty" yaml:"short,omitempty"`
	Wide        []string `json:"wide" yaml:"wide"`
}

// EraNames maps era codes (e.g. "ce", "bce", "reiwa") to display names.
type EraNames struct {
	Names  map[string]string `json:"names" yaml:"names"`
	Abbr   map[string]string `json:"abbr" yaml:"abbr"`
	Narrow map[string]string `json:"narrow" yaml:"narrow"`
}

// Month returns the wide format name for a 1-based month, falling back to
// the stand-alone form.
func (s *DateSymbols) Month(month int) (string, bool) {
	if s == nil || month < 1 {
		return "", false
	}
	if month <= len(s.Months.Format.Wide) {
		return s.Months.Format.Wide[month-1], true
	}
	if s.Months.StandAlone != nil && month <= len(s.Months.StandAlone.Wide) {
		return s.Months.StandAlone.Wide[month-1], true
	}
	return "", false
}

// DecodeLengths reads an erased lengths payload.
func DecodeLengths(p ErasedPayload) (*DateLengths, error) {
	if category := p.Key().Category(); category != CategoryLengths {
		return nil, fmt.Errorf("%w: %s holds %s", ErrPayloadMismatch, p.Key(), category)
	}
	var lengths DateLengths
	if err := p.Decode(&lengths); err != nil {
		return nil, err
	}
	return &lengths, nil
}

// DecodeSymbols reads an erased symbols payload.
func DecodeSymbols(p ErasedPayload) (*DateSymbols, error) {
	if category := p.Key().Category(); category != CategorySymbols {
		return nil, fmt.Errorf("%w: %s holds %s", ErrPayloadMismatch, p.Key(), category)
	}
	var symbols DateSymbols
	if err := p.Decode(&symbols); err != nil {
		return nil, err
	}
	return &symbols, nil
}
