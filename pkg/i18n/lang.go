package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is the language used when none is requested.
const DefaultLanguage = "en"

// MatchLanguage picks the supported language that best matches preferred,
// which may be a single tag ("de-AT", "pt_BR") or an Accept-Language list.
// It returns fallback when nothing matches.
func MatchLanguage(preferred string, supported []string, fallback string) string {
	if preferred == "" || len(supported) == 0 {
		return fallback
	}

	wanted, _, err := language.ParseAcceptLanguage(strings.ReplaceAll(preferred, "_", "-"))
	if err != nil || len(wanted) == 0 {
		return fallback
	}

	tags := make([]language.Tag, 0, len(supported))
	names := make([]string, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		names = append(names, s)
	}
	if len(tags) == 0 {
		return fallback
	}

	_, idx, confidence := language.NewMatcher(tags).Match(wanted...)
	if confidence == language.No {
		return fallback
	}
	return names[idx]
}
