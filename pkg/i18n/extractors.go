package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// RFC 5646 caps practical tags at 35 characters.
const maxLangCodeLength = 35

// ExtractorConfig names the request sources DefaultLangExtractor consults.
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
	SupportedLangs []string
}

type ExtractorOption func(*ExtractorConfig)

// WithCookieName overrides the "lang" cookie.
func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

// WithQueryParamName overrides the "lang" query parameter.
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// WithSupportedLanguages restricts results to langs, matching regional
// variants to their base language.
func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(langs) > 0 {
			c.SupportedLangs = langs
		}
	}
}

// DefaultLangExtractor reads, in order: the cookie, the query parameter,
// the Language header and Accept-Language. The first usable code wins; ""
// lets Middleware apply its default.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	cfg := ExtractorConfig{CookieName: "lang", QueryParamName: "lang"}
	for _, opt := range opts {
		opt(&cfg)
	}

	restricted := len(cfg.SupportedLangs) > 0
	matcher := newLangMatcher(cfg.SupportedLangs)
	normalize := func(code string) string {
		code = strings.TrimSpace(code)
		switch {
		case code == "" || len(code) > maxLangCodeLength:
			return ""
		case restricted:
			return matcher.matchCode(code, "")
		default:
			return strings.ToLower(code)
		}
	}

	explicit := []func(r *http.Request) string{
		func(r *http.Request) string {
			if cfg.CookieName == "" {
				return ""
			}
			c, err := r.Cookie(cfg.CookieName)
			if err != nil {
				return ""
			}
			return c.Value
		},
		func(r *http.Request) string {
			if cfg.QueryParamName == "" {
				return ""
			}
			return r.URL.Query().Get(cfg.QueryParamName)
		},
		func(r *http.Request) string { return r.Header.Get("Language") },
	}

	return func(r *http.Request) string {
		for _, source := range explicit {
			if lang := normalize(source(r)); lang != "" {
				return lang
			}
		}
		return negotiate(r.Header.Get("Accept-Language"), cfg.SupportedLangs)
	}
}

func negotiate(header string, supported []string) string {
	if header == "" {
		return ""
	}
	if len(supported) > 0 {
		return ParseAcceptLanguage(header, supported, "")
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}
	return strings.ToLower(tags[0].String())
}
