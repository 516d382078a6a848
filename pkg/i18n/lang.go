package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is the default language code used when no language is detected
const DefaultLanguage = "en"

// maxAcceptLanguageLength caps the header before parsing; 4KB is generous for
// legitimate headers.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage picks the supported language that best serves an
// Accept-Language header, honoring quality values and falling back from
// regional tags to their base language (en-US is served by en). It returns
// defaultLang when nothing matches or the header is malformed.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return defaultLang
	}
	return newLangMatcher(supportedLangs).match(defaultLang, tags...)
}

// langMatcher maps requested tags onto a fixed list of supported codes.
type langMatcher struct {
	supported []string
	matcher   language.Matcher
}

func newLangMatcher(supported []string) *langMatcher {
	m := &langMatcher{}
	tags := make([]language.Tag, 0, len(supported))
	for _, code := range supported {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		m.supported = append(m.supported, strings.ToLower(code))
	}
	if len(tags) > 0 {
		m.matcher = language.NewMatcher(tags)
	}
	return m
}

func (m *langMatcher) match(fallback string, tags ...language.Tag) string {
	if m.matcher == nil || len(tags) == 0 {
		return fallback
	}
	_, idx, conf := m.matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(m.supported) {
		return fallback
	}
	return m.supported[idx]
}

func (m *langMatcher) matchCode(code, fallback string) string {
	if len(code) > maxLangCodeLength {
		return fallback
	}
	normalized := strings.ToLower(strings.TrimSpace(code))
	for _, s := range m.supported {
		if s == normalized {
			return s
		}
	}
	tag, err := language.Parse(normalized)
	if err != nil {
		return fallback
	}
	return m.match(fallback, tag)
}
