package i18n

import (
	"log/slog"

	"github.com/dmitrymomot/valtree/pkg/logger"
)

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when the requested one is not loaded.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey makes T return the message id for unknown ids
// (default true). Localize always reports a miss.
func WithFallbackToKey(enabled bool) Option {
	return func(t *Translator) { t.fallbackToKey = enabled }
}

// WithLogger sets the translator logger; nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithMissingTranslationsLogging logs a warning for every miss. Off by default.
func WithMissingTranslationsLogging(enabled bool) Option {
	return func(t *Translator) { t.missingLogMode = enabled }
}

// WithNoLogging silences the translator entirely.
func WithNoLogging() Option {
	return func(t *Translator) {
		t.logger, t.missingLogMode = logger.Discard(), false
	}
}
