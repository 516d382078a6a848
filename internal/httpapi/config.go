package httpapi

import (
	"log/slog"

	"github.com/dmitrymomot/valtree/pkg/environment"
	"github.com/dmitrymomot/valtree/pkg/httpserver"
	"github.com/dmitrymomot/valtree/pkg/logger"
	"github.com/dmitrymomot/valtree/pkg/validator"
)

// Config is the server configuration, loaded from VALTREE_* variables.
type Config struct {
	Env             string            `env:"VALTREE_ENV" envDefault:"development"`
	LogLevel        string            `env:"VALTREE_LOG_LEVEL" envDefault:"info"`
	Service         string            `env:"VALTREE_SERVICE" envDefault:"valtree"`
	DefaultLocale   string            `env:"VALTREE_DEFAULT_LOCALE" envDefault:"en"`
	TranslationsDir string            `env:"VALTREE_TRANSLATIONS_DIR"`
	SchemaPrecheck  bool              `env:"VALTREE_SCHEMA_PRECHECK" envDefault:"true"`
	MaxBodyBytes    int64             `env:"VALTREE_MAX_BODY_BYTES" envDefault:"1048576"`
	HTTP            httpserver.Config `envPrefix:"VALTREE_"`
}

var (
	knownEnvironment = validator.Custom(func(name string) error {
		_, err := environment.Parse(name)
		return err
	})
	knownLevel = validator.Custom(func(name string) error {
		_, err := logger.ParseLevel(name)
		return err
	})
)

// Validate implements validator.Validatable; errors are keyed by variable name.
func (c Config) Validate() error {
	return validator.NewObject().
		Field("VALTREE_ENV", validator.Value(c.Env, knownEnvironment)).
		Field("VALTREE_LOG_LEVEL", validator.Value(c.LogLevel, knownLevel)).
		Field("VALTREE_SERVICE", validator.Value(c.Service, validator.MinLength(1))).
		Field("VALTREE_DEFAULT_LOCALE", validator.Value(c.DefaultLocale, validator.MinLength(2), validator.MaxLength(35))).
		Field("VALTREE_MAX_BODY_BYTES", validator.Value(c.MaxBodyBytes, validator.Minimum[int64](1))).
		Field("VALTREE_ADDR", validator.Value(c.HTTP.Addr, validator.MinLength(1))).
		Err()
}

// Environment returns the parsed environment, Development when unknown.
func (c Config) Environment() environment.Environment {
	env, err := environment.Parse(c.Env)
	if err != nil {
		return environment.Development
	}
	return env
}

// Level returns the parsed log level, Info when unknown.
func (c Config) Level() slog.Level {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}
