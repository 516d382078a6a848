package i18n

import "net/http"

// Middleware stores the negotiated language in the request context. A nil
// extractor means DefaultLangExtractor; an empty result means DefaultLanguage.
func Middleware(extract LangExtractor) func(http.Handler) http.Handler {
	if extract == nil {
		extract = DefaultLangExtractor()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := extract(r)
			if lang == "" {
				lang = DefaultLanguage
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
