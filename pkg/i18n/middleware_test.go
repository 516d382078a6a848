package i18n_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/valtree/pkg/i18n"
)

func TestLocaleContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, i18n.DefaultLanguage, i18n.GetLocale(ctx))

	_, ok := i18n.LocaleFromContext(ctx)
	assert.False(t, ok)

	ctx = i18n.SetLocale(ctx, "de")
	assert.Equal(t, "de", i18n.GetLocale(ctx))
	locale, ok := i18n.LocaleFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "de", locale)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = i18n.GetLocale(r.Context())
	})

	t.Run("uses extractor result", func(t *testing.T) {
		mw := i18n.Middleware(func(*http.Request) string { return "de" })
		mw(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, "de", got)
	})

	t.Run("falls back to default language", func(t *testing.T) {
		mw := i18n.Middleware(func(*http.Request) string { return "" })
		mw(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, i18n.DefaultLanguage, got)
	})

	t.Run("nil extractor uses the default one", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Accept-Language", "de-DE")
		i18n.Middleware(nil)(handler).ServeHTTP(httptest.NewRecorder(), r)
		assert.Equal(t, "de-de", got)
	})
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := i18n.LoggerExtractor()
	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(i18n.SetLocale(context.Background(), "fr"))
	assert.True(t, ok)
	assert.Equal(t, "locale", attr.Key)
	assert.Equal(t, "fr", attr.Value.String())
}
