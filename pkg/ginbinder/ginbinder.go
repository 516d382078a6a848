// Package ginbinder runs the binder extractors inside gin handlers.
package ginbinder

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrymomot/valtree/pkg/binder"
	"github.com/dmitrymomot/valtree/pkg/environment"
	"github.com/dmitrymomot/valtree/pkg/i18n"
	"github.com/dmitrymomot/valtree/pkg/validator"
)

// Extractor is the shape of binder.JSON and binder.Query.
type Extractor[T any] func(b *binder.Binder, r *http.Request) (T, error)

// Binder couples a binder with the way rejections are localized.
type Binder struct {
	binder     *binder.Binder
	translator *i18n.Translator
}

// Option configures a Binder.
type Option func(*Binder)

// WithTranslator localizes rejection bodies with the locale stored in the
// request context (see Locale).
func WithTranslator(t *i18n.Translator) Option {
	return func(gb *Binder) { gb.translator = t }
}

// New wraps b. A nil b gets a default binder.
func New(b *binder.Binder, opts ...Option) *Binder {
	if b == nil {
		b = binder.New()
	}
	gb := &Binder{binder: b}
	for _, opt := range opts {
		opt(gb)
	}
	return gb
}

// Bind runs extract on the request. On failure it writes the rejection,
// aborts the chain and returns false.
func Bind[T any](gb *Binder, c *gin.Context, extract Extractor[T]) (T, bool) {
	v, err := extract(gb.binder, c.Request)
	if err != nil {
		gb.Abort(c, err)
		return v, false
	}
	return v, true
}

// JSON binds the request body.
func JSON[T any](gb *Binder, c *gin.Context) (T, bool) {
	return Bind[T](gb, c, binder.JSON[T])
}

// Query binds the query string.
func Query[T any](gb *Binder, c *gin.Context) (T, bool) {
	return Bind[T](gb, c, binder.Query[T])
}

// Handle returns a handler that binds a T with extract and passes it to fn.
func Handle[T any](gb *Binder, extract Extractor[T], fn func(c *gin.Context, v T)) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := Bind(gb, c, extract)
		if !ok {
			return
		}
		fn(c, v)
	}
}

// Abort writes err in the binder wire format and stops the handler chain.
func (gb *Binder) Abort(c *gin.Context, err error) {
	var loc validator.Localizer
	if gb.translator != nil {
		loc = gb.translator.LocalizerFromContext(c.Request.Context())
	}
	verbose := environment.FromContext(c.Request.Context()).Verbose()
	resp, encErr := gb.binder.Render(c.Request.Context(), err, loc, verbose)
	if encErr != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(resp.Status, "application/json; charset=utf-8", resp.Body)
	c.Abort()
}

// Locale stores the language picked by extr in the request context, the gin
// counterpart of i18n.Middleware.
func Locale(extr i18n.LangExtractor) gin.HandlerFunc {
	if extr == nil {
		extr = i18n.DefaultLangExtractor()
	}
	return func(c *gin.Context) {
		lang := extr(c.Request)
		if lang == "" {
			lang = i18n.DefaultLanguage
		}
		c.Request = c.Request.WithContext(i18n.SetLocale(c.Request.Context(), lang))
		c.Next()
	}
}
