package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/valtree/internal/demo"
	"github.com/dmitrymomot/valtree/internal/httpapi"
	"github.com/dmitrymomot/valtree/pkg/clientip"
	"github.com/dmitrymomot/valtree/pkg/config"
	"github.com/dmitrymomot/valtree/pkg/httpserver"
	"github.com/dmitrymomot/valtree/pkg/i18n"
	"github.com/dmitrymomot/valtree/pkg/logger"
	"github.com/dmitrymomot/valtree/pkg/requestid"
)

type serveOverrides struct {
	addr         string
	env          string
	logLevel     string
	locale       string
	translations string
	noPrecheck   bool
	envFiles     []string
}

func newServeCmd() *cobra.Command {
	o := &serveOverrides{}
	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the validation HTTP API",
		Long: `Run the HTTP API. Configuration is read from VALTREE_* environment
variables (and ./.env); flags override them.

Endpoints:
  POST /v1/validate/{type}    validate a JSON body
  GET  /v1/schema/{type}      derived JSON Schema
  GET  /v1/translations/{lang} message bundle
  GET  /v1/types              registered types
  GET  /healthz, /readyz      probes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadServeConfig(cmd, o)
			if err != nil {
				return err
			}
			return runServe(cmd, cfg)
		},
	}

	f := c.Flags()
	f.StringVar(&o.addr, "addr", "", "listen address (VALTREE_ADDR)")
	f.StringVar(&o.env, "env", "", "environment: development, staging or production (VALTREE_ENV)")
	f.StringVar(&o.logLevel, "log-level", "", "log level (VALTREE_LOG_LEVEL)")
	f.StringVar(&o.locale, "locale", "", "default locale (VALTREE_DEFAULT_LOCALE)")
	f.StringVar(&o.translations, "translations", "", "directory of translation bundles (VALTREE_TRANSLATIONS_DIR)")
	f.BoolVar(&o.noPrecheck, "no-precheck", false, "skip the JSON Schema stage (VALTREE_SCHEMA_PRECHECK=false)")
	f.StringSliceVar(&o.envFiles, "env-file", nil, "extra .env files loaded before the environment is read")
	return c
}

func loadServeConfig(cmd *cobra.Command, o *serveOverrides) (httpapi.Config, error) {
	var cfg httpapi.Config
	if len(o.envFiles) > 0 {
		if err := config.LoadEnv(o.envFiles...); err != nil {
			return cfg, err
		}
	}
	if err := config.Load(&cfg); err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.HTTP.Addr = o.addr
	}
	if flags.Changed("env") {
		cfg.Env = o.env
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("locale") {
		cfg.DefaultLocale = o.locale
	}
	if flags.Changed("translations") {
		cfg.TranslationsDir = o.translations
	}
	if flags.Changed("no-precheck") {
		cfg.SchemaPrecheck = !o.noPrecheck
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, cfg httpapi.Config) error {
	ctx := cmd.Context()
	log := logger.New(
		logger.WithEnvironment(cfg.Environment(), cfg.Service),
		logger.WithLevel(cfg.Level()),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			i18n.LoggerExtractor(),
		),
	)

	tr, err := demo.NewTranslator(ctx, cfg.TranslationsDir,
		i18n.WithDefaultLanguage(cfg.DefaultLocale),
		i18n.WithLogger(log),
	)
	if err != nil {
		log.ErrorContext(ctx, "loading translations failed", logger.Component("cli"), logger.Error(err))
		return err
	}

	api := httpapi.FromConfig(cfg, tr, log)
	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, api.Handler())
}
