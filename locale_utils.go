package calendars

import (
	"strings"

	"golang.org/x/text/language"
)

// normalizeLocale normalizes a single locale identifier by replacing
// underscores with hyphens and trimming whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// LocaleKey returns the string data sources store payloads under. Unicode and
// private use extensions are dropped so en-US-u-ca-buddhist and en-US share data.
func LocaleKey(locale language.Tag) string {
	base, _ := locale.SetTypeForKey("ca", "")
	value := base.String()
	if idx := strings.Index(value, "-u-"); idx > 0 {
		value = value[:idx]
	}
	if idx := strings.Index(value, "-x-"); idx > 0 {
		value = value[:idx]
	}
	return value
}

// territoryOf returns the explicit region subtag of locale. Regions inferred
// by likely subtags do not count.
func territoryOf(locale language.Tag) (Territory, bool) {
	region, confidence := locale.Region()
	if confidence != language.Exact {
		return "", false
	}
	code := region.String()
	if code == "" || code == "ZZ" {
		return "", false
	}
	return Territory(code), true
}

// storageLocale canonicalizes a locale string the way LocaleKey formats tags.
func storageLocale(raw string) string {
	normalized := normalizeLocale(raw)
	tag, err := language.Parse(normalized)
	if err != nil {
		return normalized
	}
	return LocaleKey(tag)
}
