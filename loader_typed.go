package calendars

import "golang.org/x/text/language"

// LoadLengths loads date/time length patterns for the calendar C.
//
//	payload, err := calendars.LoadLengths[calendars.Gregorian](src, language.MustParse("en-US"))
func LoadLengths[C Calendar](src DataSource, locale language.Tag) (ErasedPayload, error) {
	return loadErased[C](src, CategoryLengths, locale)
}

// LoadSymbols loads month, weekday and era symbols for the calendar C.
func LoadSymbols[C Calendar](src DataSource, locale language.Tag) (ErasedPayload, error) {
	return loadErased[C](src, CategorySymbols, locale)
}

// loadErased issues exactly one request to src. Source errors are returned
// unchanged.
func loadErased[C Calendar](src DataSource, category Category, locale language.Tag) (ErasedPayload, error) {
	payload, err := load[C](src, category, locale)
	if err != nil {
		return ErasedPayload{}, err
	}
	return payload.Erase(), nil
}

func load[C Calendar](src DataSource, category Category, locale language.Tag) (DataPayload[C], error) {
	var cal C
	key, err := SchemaKeyFor(cal.Kind(), category)
	if err != nil {
		return DataPayload[C]{}, err
	}

	resp, err := src.Load(DataRequest{Key: key, Locale: locale})
	if err != nil {
		return DataPayload[C]{}, err
	}

	return DataPayload[C]{key: key, data: resp.Payload}, nil
}
