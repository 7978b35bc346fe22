package calendars

import (
	"fmt"
	"strings"
)

// Kind identifies one of the calendar systems with CLDR date data.
// The set is closed; the zero value is not a valid kind.
type Kind uint8

const (
	KindBuddhist Kind = iota + 1
	KindChinese
	KindCoptic
	KindDangi
	KindEthiopian
	KindEthiopianAmeteAlem
	KindGregorian
	KindHebrew
	KindIndian
	KindIslamicCivil
	KindIslamicObservational
	KindIslamicTabular
	KindIslamicUmmAlQura
	KindJapanese
	KindJapaneseExtended
	KindPersian
	KindRoc
)

var kindNames = [...]string{
	KindBuddhist:             "Buddhist",
	KindChinese:              "Chinese",
	KindCoptic:               "Coptic",
	KindDangi:                "Dangi",
	KindEthiopian:            "Ethiopian",
	KindEthiopianAmeteAlem:   "EthiopianAmeteAlem",
	KindGregorian:            "Gregorian",
	KindHebrew:               "Hebrew",
	KindIndian:               "Indian",
	KindIslamicCivil:         "IslamicCivil",
	KindIslamicObservational: "IslamicObservational",
	KindIslamicTabular:       "IslamicTabular",
	KindIslamicUmmAlQura:     "IslamicUmmAlQura",
	KindJapanese:             "Japanese",
	KindJapaneseExtended:     "JapaneseExtended",
	KindPersian:              "Persian",
	KindRoc:                  "Roc",
}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames)-1)
	for k := KindBuddhist; int(k) < len(kindNames); k++ {
		out = append(out, k)
	}
	return out
}

// Valid reports whether k is a member of the closed set.
func (k Kind) Valid() bool {
	return k >= KindBuddhist && int(k) < len(kindNames)
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// ParseKind resolves a kind from its name, ignoring case. It does not accept
// BCP-47 calendar identifiers; use Accepts to validate those.
func ParseKind(name string) (Kind, error) {
	trimmed := strings.TrimSpace(name)
	for _, k := range Kinds() {
		if strings.EqualFold(kindNames[k], trimmed) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("calendars: unknown calendar kind %q", name)
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("calendars: invalid calendar kind %d", uint8(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
