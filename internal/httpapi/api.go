package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/valtree/pkg/binder"
	"github.com/dmitrymomot/valtree/pkg/clientip"
	"github.com/dmitrymomot/valtree/pkg/environment"
	"github.com/dmitrymomot/valtree/pkg/httpserver"
	"github.com/dmitrymomot/valtree/pkg/i18n"
	"github.com/dmitrymomot/valtree/pkg/logger"
	"github.com/dmitrymomot/valtree/pkg/requestid"
	"github.com/dmitrymomot/valtree/pkg/schema"
)

var errNoTranslations = errors.New("no translations loaded")

// API serves the demo types over HTTP.
type API struct {
	translator *i18n.Translator
	schemas    *schema.Cache
	binder     *binder.Binder
	logger     *slog.Logger
	env        environment.Environment
	precheck   bool
	maxBody    int64
}

// Option configures an API.
type Option func(*API)

// WithLogger sets the logger for request logs and rejections.
func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithEnvironment sets the environment stored in every request context.
func WithEnvironment(env environment.Environment) Option {
	return func(a *API) { a.env = env }
}

// WithSchemaPrecheck toggles the JSON Schema stage of the body binder.
func WithSchemaPrecheck(enabled bool) Option {
	return func(a *API) { a.precheck = enabled }
}

// WithMaxBodyBytes limits request bodies.
func WithMaxBodyBytes(n int64) Option {
	return func(a *API) { a.maxBody = n }
}

// New wires the translator, schema cache and binder.
func New(tr *i18n.Translator, opts ...Option) *API {
	a := &API{
		translator: tr,
		logger:     logger.Discard(),
		env:        environment.Development,
		precheck:   true,
		maxBody:    binder.DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.schemas = schema.New(schema.WithLogger(a.logger))
	bopts := []binder.Option{binder.WithLogger(a.logger), binder.WithMaxBodyBytes(a.maxBody)}
	if a.precheck {
		bopts = append(bopts, binder.WithSchemaCache(a.schemas))
	}
	a.binder = binder.New(bopts...)
	return a
}

// FromConfig builds an API from cfg.
func FromConfig(cfg Config, tr *i18n.Translator, log *slog.Logger) *API {
	return New(tr,
		WithLogger(log),
		WithEnvironment(cfg.Environment()),
		WithSchemaPrecheck(cfg.SchemaPrecheck),
		WithMaxBodyBytes(cfg.MaxBodyBytes),
	)
}

// Handler returns the router:
//
//	GET  /healthz
//	GET  /readyz
//	GET  /v1/types
//	POST /v1/validate/{type}
//	GET  /v1/schema/{type}
//	GET  /v1/translations/{lang}
func (a *API) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(environment.Middleware(a.env))
	r.Use(i18n.Middleware(a.langExtractor()))
	r.Use(a.logRequests)

	r.Get("/healthz", httpserver.HealthCheckHandler(a.logger))
	r.Get("/readyz", httpserver.HealthCheckHandler(a.logger, httpserver.Check{
		Name: "translations",
		Func: a.translationsLoaded,
	}))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/types", a.listTypes)
		r.Post("/validate/{type}", a.validate)
		r.Get("/schema/{type}", a.schema)
		r.Get("/translations/{lang}", a.translations)
	})
	return r
}

// langExtractor negotiates among the loaded languages and falls back to the
// translator's default instead of the package default.
func (a *API) langExtractor() i18n.LangExtractor {
	extract := i18n.DefaultLangExtractor(i18n.WithSupportedLanguages(a.translator.SupportedLanguages()...))
	return func(r *http.Request) string {
		if lang := extract(r); lang != "" {
			return lang
		}
		return a.translator.DefaultLanguage()
	}
}

func (a *API) translationsLoaded(context.Context) error {
	if len(a.translator.SupportedLanguages()) == 0 {
		return errNoTranslations
	}
	return nil
}
