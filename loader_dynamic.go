package calendars

import (
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

type loadFunc func(src DataSource, locale language.Tag) (ErasedPayload, error)

type kindLoaders struct {
	lengths loadFunc
	symbols loadFunc
}

// dynamicLoaders must list every Kind. Amete Alem shares the Ethiopian data.
var dynamicLoaders = map[Kind]kindLoaders{
	KindBuddhist:             {LoadLengths[Buddhist], LoadSymbols[Buddhist]},
	KindChinese:              {LoadLengths[Chinese], LoadSymbols[Chinese]},
	KindCoptic:               {LoadLengths[Coptic], LoadSymbols[Coptic]},
	KindDangi:                {LoadLengths[Dangi], LoadSymbols[Dangi]},
	KindEthiopian:            {LoadLengths[Ethiopian], LoadSymbols[Ethiopian]},
	KindEthiopianAmeteAlem:   {LoadLengths[Ethiopian], LoadSymbols[Ethiopian]},
	KindGregorian:            {LoadLengths[Gregorian], LoadSymbols[Gregorian]},
	KindHebrew:               {LoadLengths[Hebrew], LoadSymbols[Hebrew]},
	KindIndian:               {LoadLengths[Indian], LoadSymbols[Indian]},
	KindIslamicCivil:         {LoadLengths[IslamicCivil], LoadSymbols[IslamicCivil]},
	KindIslamicObservational: {LoadLengths[IslamicObservational], LoadSymbols[IslamicObservational]},
	KindIslamicTabular:       {LoadLengths[IslamicTabular], LoadSymbols[IslamicTabular]},
	KindIslamicUmmAlQura:     {LoadLengths[IslamicUmmAlQura], LoadSymbols[IslamicUmmAlQura]},
	KindJapanese:             {LoadLengths[Japanese], LoadSymbols[Japanese]},
	KindJapaneseExtended:     {LoadLengths[JapaneseExtended], LoadSymbols[JapaneseExtended]},
	KindPersian:              {LoadLengths[Persian], LoadSymbols[Persian]},
	KindRoc:                  {LoadLengths[Roc], LoadSymbols[Roc]},
}

// LoadLengthsForKind is the runtime counterpart of LoadLengths. It returns the
// same payload LoadLengths[C] would for the calendar type of kind.
func LoadLengthsForKind(src DataSource, kind Kind, locale language.Tag) (ErasedPayload, error) {
	loaders, ok := dynamicLoaders[kind]
	if !ok {
		return ErasedPayload{}, &UnsupportedKindError{Kind: kind}
	}
	return loaders.lengths(src, locale)
}

// LoadSymbolsForKind is the runtime counterpart of LoadSymbols.
func LoadSymbolsForKind(src DataSource, kind Kind, locale language.Tag) (ErasedPayload, error) {
	loaders, ok := dynamicLoaders[kind]
	if !ok {
		return ErasedPayload{}, &UnsupportedKindError{Kind: kind}
	}
	return loaders.symbols(src, locale)
}

// LoadForKind dispatches on category as well as kind.
func LoadForKind(src DataSource, kind Kind, category Category, locale language.Tag) (ErasedPayload, error) {
	switch category {
	case CategoryLengths:
		return LoadLengthsForKind(src, kind, locale)
	case CategorySymbols:
		return LoadSymbolsForKind(src, kind, locale)
	default:
		if _, ok := dynamicLoaders[kind]; !ok {
			return ErasedPayload{}, &UnsupportedKindError{Kind: kind}
		}
		_, err := SchemaKeyFor(kind, category)
		if err != nil {
			return ErasedPayload{}, err
		}
		return loadExperimentalForKind(src, kind, category, locale)
	}
}

// DataLoader loads data for runtime kinds from one source and logs each
// request. It holds no mutable state and never retries.
type DataLoader struct {
	source DataSource
	logger *zap.Logger
}

// DataLoaderOption configures a DataLoader
type DataLoaderOption func(*DataLoader)

// WithLoaderLogger sets the logger used for request diagnostics.
func WithLoaderLogger(logger *zap.Logger) DataLoaderOption {
	return func(l *DataLoader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

func NewDataLoader(source DataSource, opts ...DataLoaderOption) *DataLoader {
	l := &DataLoader{
		source: source,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// Source returns the underlying data source.
func (l *DataLoader) Source() DataSource {
	return l.source
}

func (l *DataLoader) LoadLengths(kind Kind, locale language.Tag) (ErasedPayload, error) {
	return l.observe(kind, CategoryLengths, locale, LoadLengthsForKind)
}

func (l *DataLoader) LoadSymbols(kind Kind, locale language.Tag) (ErasedPayload, error) {
	return l.observe(kind, CategorySymbols, locale, LoadSymbolsForKind)
}

// Load loads any category, including experimental ones when built with the
// experimental tag.
func (l *DataLoader) Load(kind Kind, category Category, locale language.Tag) (ErasedPayload, error) {
	return l.observe(kind, category, locale, func(src DataSource, kind Kind, locale language.Tag) (ErasedPayload, error) {
		return LoadForKind(src, kind, category, locale)
	})
}

func (l *DataLoader) observe(kind Kind, category Category, locale language.Tag, fn func(DataSource, Kind, language.Tag) (ErasedPayload, error)) (ErasedPayload, error) {
	payload, err := fn(l.source, kind, locale)
	if err != nil {
		l.logger.Warn("calendar data load failed",
			zap.Stringer("kind", kind),
			zap.String("category", string(category)),
			zap.Stringer("locale", locale),
			zap.Error(err),
		)
		return ErasedPayload{}, err
	}
	l.logger.Debug("calendar data loaded",
		zap.Stringer("kind", kind),
		zap.Stringer("key", payload.Key()),
		zap.Stringer("locale", locale),
		zap.Int("bytes", len(payload.Bytes())),
	)
	return payload, nil
}
