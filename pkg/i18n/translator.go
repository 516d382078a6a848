package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/valtree/pkg/logger"
	"github.com/dmitrymomot/valtree/pkg/validator"
)

// Translator holds loaded bundles and resolves message ids per language.
// It is safe for concurrent use; Reload swaps bundles atomically.
type Translator struct {
	translations   map[string]map[string]any
	matcher        *langMatcher
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
	adapter        TranslationAdapter
}

// NewTranslator creates a new Translator instance with the given adapter and options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
		adapter:       adapter,
	}
	for _, option := range options {
		option(t)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload fetches bundles from the adapter again and replaces the loaded set.
// On error the previous bundles stay in place.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}
	if err := t.validateTranslations(ctx, translations); err != nil {
		return err
	}

	langs := sortedKeys(translations)

	t.mu.Lock()
	t.translations = translations
	t.matcher = newLangMatcher(langs)
	t.mu.Unlock()

	t.logger.InfoContext(ctx, "translations loaded", "languages", langs)
	return nil
}

func (t *Translator) validateTranslations(ctx context.Context, trans map[string]map[string]any) error {
	if len(trans) == 0 {
		t.logger.WarnContext(ctx, "no translations provided")
		return nil
	}
	for lang, messages := range trans {
		if lang == "" {
			return fmt.Errorf("%w: empty language code", ErrInvalidBundleStructure)
		}
		if messages == nil {
			return fmt.Errorf("%w: nil translations map for language %s", ErrInvalidBundleStructure, lang)
		}
	}
	return nil
}

func sortedKeys(m map[string]map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return sortedKeys(t.translations)
}

// DefaultLanguage returns the language used when no better match exists.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Resolve maps any language code or tag onto a loaded language: an exact
// match, then the closest supported tag (de-AT is served by de), then the
// default language.
func (t *Translator) Resolve(lang string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.resolve(lang)
}

func (t *Translator) resolve(lang string) string {
	if _, ok := t.translations[lang]; ok {
		return lang
	}
	if t.matcher == nil {
		return t.defaultLang
	}
	return t.matcher.matchCode(lang, t.defaultLang)
}

// Match negotiates an Accept-Language header against the loaded languages.
func (t *Translator) Match(acceptLanguage string) string {
	return ParseAcceptLanguage(acceptLanguage, t.SupportedLanguages(), t.defaultLang)
}

// HasTranslation checks if a translation exists for the given language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	messages, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(messages, key)
	return ok
}

// Localize resolves id for lang, substituting %{name} placeholders from args
// given as key/value pairs. Lookup falls back from the resolved language to
// the default language; an id found in neither yields an error wrapping
// validator.ErrMessageNotFound.
func (t *Translator) Localize(lang, id string, args ...string) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	resolved := t.resolve(lang)
	for _, candidate := range []string{resolved, t.defaultLang} {
		messages, ok := t.translations[candidate]
		if !ok {
			continue
		}
		if tmpl, ok := lookupString(messages, id); ok {
			return namedSprintf(tmpl, args), nil
		}
	}

	if t.missingLogMode {
		t.logger.Warn("translation not found", "lang", lang, "resolved", resolved, "key", id)
	}
	return "", fmt.Errorf("%w: %q (lang %s)", validator.ErrMessageNotFound, id, resolved)
}

// T translates a key for the given language.
// Example: translator.T("en", "welcome", "name", "John") substitutes "%{name}".
//
// If the translation is missing and fallback to key is enabled (the default),
// the key itself is returned, formatted with args. Otherwise T returns "".
func (t *Translator) T(lang, key string, args ...string) string {
	s, err := t.Localize(lang, key, args...)
	if err == nil {
		return s
	}
	if t.fallbackToKey {
		return namedSprintf(key, args)
	}
	return ""
}

// Td translates a key with an explicit fallback text.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	s, err := t.Localize(lang, key, args...)
	if err != nil {
		return namedSprintf(defaultValue, args)
	}
	return s
}

// Tc translates a key using the language stored in ctx by Middleware.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

// ExportJSON returns all translations for a language as a JSON string.
func (t *Translator) ExportJSON(lang string) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	translations, ok := t.translations[lang]
	if !ok {
		return "", &ErrLanguageNotSupported{Lang: lang}
	}

	data, err := json.Marshal(translations)
	if err != nil {
		return "", errors.Join(ErrFailedToMarshalJSON, err)
	}
	return string(data), nil
}

// Localizer binds the translator to one language so it can render
// validation messages.
func (t *Translator) Localizer(lang string) Localizer {
	return Localizer{t: t, lang: t.Resolve(lang)}
}

// LocalizerFromContext binds the translator to the language stored in ctx.
func (t *Translator) LocalizerFromContext(ctx context.Context) Localizer {
	return t.Localizer(GetLocale(ctx))
}

// Localizer is a Translator bound to a language. It implements
// validator.Localizer.
type Localizer struct {
	t    *Translator
	lang string
}

var _ validator.Localizer = Localizer{}

// Localize implements validator.Localizer.
func (l Localizer) Localize(id string, args ...string) (string, error) {
	if l.t == nil {
		return "", validator.ErrNoLocalizer
	}
	return l.t.Localize(l.lang, id, args...)
}

// Lang returns the resolved language.
func (l Localizer) Lang() string {
	return l.lang
}

// lookup finds key in a bundle, first as a flat key and then as a
// dot-separated path: "validation.minimum" reads m["validation"]["minimum"].
func lookup(m map[string]any, key string) (any, bool) {
	if v, ok := m[key]; ok {
		return v, true
	}

	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		next, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return next, true
		}
		switch group := next.(type) {
		case map[string]any:
			current = group
		case map[any]any:
			current = make(map[string]any, len(group))
			for k, v := range group {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}
	return nil, false
}

func lookupString(m map[string]any, key string) (string, bool) {
	val, ok := lookup(m, key)
	if !ok {
		return "", false
	}
	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

// paramRegex finds named parameters in the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// namedSprintf substitutes %{key} placeholders from key/value args. Unknown
// placeholders are kept; a trailing odd argument is ignored.
func namedSprintf(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		if _, seen := params[args[i]]; !seen {
			params[args[i]] = args[i+1]
		}
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
