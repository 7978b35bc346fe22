package calendars

import "strings"

// Calendar is implemented by one zero-size type per kind. Callers that know
// their calendar at compile time pass the type to LoadLengths/LoadSymbols so
// the schema key is fixed by instantiation.
type Calendar interface {
	Kind() Kind
}

// identifierMatcher is implemented by calendars whose accepted identifiers
// differ from their canonical one.
type identifierMatcher interface {
	IsIdentifierAllowed(identifier string) bool
}

type (
	Buddhist             struct{}
	Chinese              struct{}
	Coptic               struct{}
	Dangi                struct{}
	Ethiopian            struct{}
	EthiopianAmeteAlem   struct{}
	Gregorian            struct{}
	Hebrew               struct{}
	Indian               struct{}
	IslamicCivil         struct{}
	IslamicObservational struct{}
	IslamicTabular       struct{}
	IslamicUmmAlQura     struct{}
	Japanese             struct{}
	JapaneseExtended     struct{}
	Persian              struct{}
	Roc                  struct{}
)

func (Buddhist) Kind() Kind             { return KindBuddhist }
func (Chinese) Kind() Kind              { return KindChinese }
func (Coptic) Kind() Kind               { return KindCoptic }
func (Dangi) Kind() Kind                { return KindDangi }
func (Ethiopian) Kind() Kind            { return KindEthiopian }
func (EthiopianAmeteAlem) Kind() Kind   { return KindEthiopianAmeteAlem }
func (Gregorian) Kind() Kind            { return KindGregorian }
func (Hebrew) Kind() Kind               { return KindHebrew }
func (Indian) Kind() Kind               { return KindIndian }
func (IslamicCivil) Kind() Kind         { return KindIslamicCivil }
func (IslamicObservational) Kind() Kind { return KindIslamicObservational }
func (IslamicTabular) Kind() Kind       { return KindIslamicTabular }
func (IslamicUmmAlQura) Kind() Kind     { return KindIslamicUmmAlQura }
func (Japanese) Kind() Kind             { return KindJapanese }
func (JapaneseExtended) Kind() Kind     { return KindJapaneseExtended }
func (Persian) Kind() Kind              { return KindPersian }
func (Roc) Kind() Kind                  { return KindRoc }

// IsIdentifierAllowed accepts the canonical "ethiopic" and the Amete Alem
// display variant "ethioaa".
func (Ethiopian) IsIdentifierAllowed(identifier string) bool {
	return identifier == "ethiopic" || identifier == "ethioaa"
}

// "islamic" is only the skeleton identifier for the civil, tabular and Umm
// al-Qura calendars; it is not accepted by them.

func (IslamicCivil) IsIdentifierAllowed(identifier string) bool {
	return identifier == "islamicc" || isIslamicSubcalendar(identifier, "civil")
}

func (IslamicTabular) IsIdentifierAllowed(identifier string) bool {
	return isIslamicSubcalendar(identifier, "tbla")
}

func (IslamicUmmAlQura) IsIdentifierAllowed(identifier string) bool {
	return isIslamicSubcalendar(identifier, "umalqura")
}

// isIslamicSubcalendar reports whether identifier is exactly islamic-<subcal>.
func isIslamicSubcalendar(identifier, subcal string) bool {
	parts := strings.Split(identifier, "-")
	if len(parts) != 2 {
		return false
	}
	return parts[0] == "islamic" && parts[1] == subcal
}
