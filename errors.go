package calendars

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// ErrDataUnavailable indicates that the data source has no entry for schema key/locale.
var ErrDataUnavailable = errors.New("calendars: data unavailable")

// ErrUnsupportedSchema indicates that a data source does not serve the requested schema key.
var ErrUnsupportedSchema = errors.New("calendars: unsupported schema key")

// ErrUnsupportedCalendarKind is matched by errors returned when dynamic dispatch
// receives a kind it has no loader for.
var ErrUnsupportedCalendarKind = errors.New("calendars: unsupported calendar for data loading")

// ErrMissingDefaultEntry marks supplemental data without a default territory entry.
var ErrMissingDefaultEntry = errors.New("calendars: missing default entry")

// ErrMismatchedCalendar is returned when a locale names a calendar the kind does not accept.
var ErrMismatchedCalendar = errors.New("calendars: mismatched calendar")

// ErrExperimentalCategory marks data categories only available with the experimental build tag
var ErrExperimentalCategory = errors.New("calendars: category requires experimental build")

var ErrUnknownCategory = errors.New("calendars: unknown data category")

// ErrPayloadMismatch is returned when an erased payload is read as the wrong shape.
var ErrPayloadMismatch = errors.New("calendars: payload mismatch")

// DataError reports a failed data source request.
type DataError struct {
	Key    SchemaKey
	Locale language.Tag
	Err    error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("%v: %s/%s", e.Err, e.Key, e.Locale)
}

func (e *DataError) Unwrap() error {
	return e.Err
}

// UnsupportedKindError carries the kind rejected by dynamic dispatch.
type UnsupportedKindError struct {
	Kind Kind
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("%v: %s", ErrUnsupportedCalendarKind, e.Kind)
}

func (e *UnsupportedKindError) Is(target error) bool {
	return target == ErrUnsupportedCalendarKind
}

// MissingDefaultEntryError reports a supplemental attribute that has neither a
// territory entry nor a default one. It signals malformed source data.
type MissingDefaultEntryError struct {
	Attribute WeekAttribute
	Source    string
}

func (e *MissingDefaultEntryError) Error() string {
	return fmt.Sprintf("%v for %s in %s", ErrMissingDefaultEntry, e.Attribute, e.Source)
}

func (e *MissingDefaultEntryError) Is(target error) bool {
	return target == ErrMissingDefaultEntry
}

type MismatchedCalendarError struct {
	Kind       Kind
	Identifier string
}

func (e *MismatchedCalendarError) Error() string {
	return fmt.Sprintf("%v: %s does not accept %q", ErrMismatchedCalendar, e.Kind, e.Identifier)
}

func (e *MismatchedCalendarError) Is(target error) bool {
	return target == ErrMismatchedCalendar
}
